package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"git.lost.host/meutraa/timbre/internal/audio"
	"git.lost.host/meutraa/timbre/internal/config"
	"git.lost.host/meutraa/timbre/internal/controller"
	"git.lost.host/meutraa/timbre/internal/render"
	"git.lost.host/meutraa/timbre/internal/store"
	"git.lost.host/meutraa/timbre/internal/theme"
	"github.com/eiannone/keyboard"
	log "github.com/sirupsen/logrus"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

// The screen belongs to the renderer, so logs go to a file next to the
// database.
func openLog() (*os.File, error) {
	path := filepath.Join(filepath.Dir(config.DatabasePath), "timbre.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); nil != err {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

func run() error {
	if err := config.Parse(); nil != err {
		return err
	}
	if *config.Verbose {
		log.SetLevel(log.DebugLevel)
	}
	logFile, err := openLog()
	if nil != err {
		return fmt.Errorf("unable to open log file: %w", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	// Ensure our Default implementations are used as interfaces
	var s store.Store = &store.DefaultStore{Path: config.DatabasePath}
	var r render.Renderer = &render.DefaultRenderer{}
	var th theme.Theme = &theme.DefaultTheme{}
	var player audio.Player = &audio.DefaultPlayer{
		NotesPath:        config.NotesPath,
		TonalCentersPath: config.TonalCentersPath,
		Extension:        config.Extension,
	}

	if err := s.Init(); nil != err {
		return err
	}
	defer s.Deinit()

	dispatcher := audio.NewDispatcher(player)
	defer dispatcher.Close()

	keyChannel, err := keyboard.GetKeys(128)
	if nil != err {
		return fmt.Errorf("unable to open keyboard: %w", err)
	}
	defer func() {
		if err := keyboard.Close(); nil != err {
			log.Println("unable to close keyboard", err)
		}
	}()

	p := &Program{Renderer: r, Theme: th}
	p.Controller = controller.New(s, dispatcher,
		controller.WithCountObserver(p.CountChanged),
		controller.WithNextExerciseObserver(p.NextExercise),
		controller.WithGameOverObserver(p.GameOver),
	)

	ctx := context.Background()
	if err := p.Init(ctx, config.Tonality); nil != err {
		return err
	}

	// Clear the screen and hide the cursor
	if err := r.Init(); nil != err {
		return err
	}
	defer func() {
		// Restore the terminal state
		r.Deinit()
	}()

	p.Render()
	for key := range keyChannel {
		if nil != key.Err {
			return fmt.Errorf("unable to read keyboard: %w", key.Err)
		}
		cont, err := p.Update(ctx, key)
		if nil != err {
			// Persistence failures end the session action, not the program
			log.WithError(err).Error("update failed")
			p.message = "Error: " + err.Error()
		}
		if !cont {
			break
		}
		p.Render()
	}

	return p.Quit(ctx)
}
