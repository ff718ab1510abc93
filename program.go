package main

import (
	"context"
	"fmt"
	"strings"

	"git.lost.host/meutraa/timbre/internal/config"
	"git.lost.host/meutraa/timbre/internal/controller"
	"git.lost.host/meutraa/timbre/internal/game"
	"git.lost.host/meutraa/timbre/internal/render"
	"git.lost.host/meutraa/timbre/internal/theme"
	"github.com/eiannone/keyboard"
	log "github.com/sirupsen/logrus"
)

// Program turns key presses into controller calls and draws the result.
type Program struct {
	Controller *controller.Controller
	Renderer   render.Renderer
	Theme      theme.Theme

	tonality game.Tonality
	message  string
	verdict  string
	counts   string
	over     bool
}

// Init starts a new game in tonality, or resumes the last unfinished one
// when tonality is nil. With nothing to resume the first key is used.
func (p *Program) Init(ctx context.Context, tonality *game.Tonality) error {
	if nil == tonality {
		snap, err := p.Controller.LoadGame(ctx)
		if nil != err {
			return err
		}
		if nil != snap {
			p.tonality, _ = p.Controller.Tonality()
			log.WithField("session", snap.SessionID).Info("resumed session")
			p.message = "Resumed. Space for the next note."
			p.Controller.PlayTonalCenter()
			return nil
		}
		tonality = &game.Tonalities[0]
	}
	return p.newGame(ctx, *tonality)
}

func (p *Program) newGame(ctx context.Context, tonality game.Tonality) error {
	if err := p.Controller.NewGame(ctx, tonality); nil != err {
		return err
	}
	p.tonality = tonality
	p.over = false
	p.verdict = ""
	p.message = "Listen to the key, then name the note."
	p.Controller.PlayTonalCenter()
	return p.Controller.PlayNextNote(ctx)
}

func (p *Program) CountChanged(c controller.Counter) {
	p.counts = p.Theme.RenderCounts(c.RightCount(), c.TotalCount())
}

func (p *Program) NextExercise(ex game.Exercise) {
	p.message = fmt.Sprintf("Exercise %d unlocked!", ex.Num)
	p.Controller.PlayTonalCenter()
}

func (p *Program) GameOver() {
	p.over = true
	p.message = fmt.Sprintf("Game over: %d of %d right. Space to play again, esc to quit.",
		p.Controller.RightCount(), p.Controller.TotalCount())
}

// Update handles one key press. It returns false when the program should
// exit.
func (p *Program) Update(ctx context.Context, key keyboard.KeyEvent) (bool, error) {
	switch key.Key {
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return false, nil
	case keyboard.KeySpace, keyboard.KeyEnter:
		if p.over {
			return true, p.newGame(ctx, p.tonality)
		}
		p.verdict = ""
		return true, p.Controller.PlayNextNote(ctx)
	}

	switch string(key.Rune) {
	case *config.RepeatKey:
		p.Controller.RepeatNote()
		return true, nil
	case *config.TonalCenterKey:
		p.Controller.PlayTonalCenter()
		return true, nil
	}

	index := config.KeyIndex(key.Rune)
	if index < 0 {
		return true, nil
	}
	right, answered := p.Controller.CheckAnswers(game.Keyboard[index].Answers()...)
	if !answered {
		p.message = "Space for the next note."
		return true, nil
	}
	p.verdict = p.Theme.RenderVerdict(right)
	if !right {
		note, _ := p.Controller.CurrentNote()
		p.verdict += " It was " + note.Pitch.String()
	}
	return true, nil
}

// Quit saves an unfinished game so that it can be resumed.
func (p *Program) Quit(ctx context.Context) error {
	if p.Controller.IsFinished() {
		return nil
	}
	return p.Controller.SaveState(ctx)
}

func (p *Program) Render() {
	r := p.Renderer
	_, rows := r.Size()
	r.Clear()

	ex, _ := p.Controller.Exercise()
	octaves := make([]string, len(ex.Octaves))
	for i, o := range ex.Octaves {
		octaves[i] = o.String()
	}
	r.Fill(2, 4, fmt.Sprintf("%v  exercise %d of %d  (octaves %v)",
		p.tonality, ex.Num, len(game.Exercises), strings.Join(octaves, " ")))
	r.Fill(4, 4, "Score:  "+p.counts)
	r.Fill(5, 4, fmt.Sprintf("Left:   %3v", p.Controller.Remaining()))
	r.Fill(7, 4, p.verdict)
	r.Fill(8, 4, p.message)

	for i, key := range game.Keyboard {
		r.Fill(10+i, 6, p.Theme.RenderKey(key, config.Keys[i]))
	}

	help := fmt.Sprintf("space next   %v repeat   %v key   esc quit",
		*config.RepeatKey, *config.TonalCenterKey)
	r.Fill(rows-1, 4, help)
	if err := r.Flush(); nil != err {
		log.WithError(err).Warn("unable to draw")
	}
}
