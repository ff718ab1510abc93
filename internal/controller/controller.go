// Package controller runs an ear-training game: it draws notes, sends
// them to the audio queue, checks answers and keeps the score persisted.
//
// A Controller is not safe for concurrent use. It is meant to be owned by
// the goroutine that handles user input; playback happens elsewhere, behind
// the audio.Queue.
package controller

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"git.lost.host/meutraa/timbre/internal/audio"
	"git.lost.host/meutraa/timbre/internal/game"
	"git.lost.host/meutraa/timbre/internal/store"
	log "github.com/sirupsen/logrus"
)

// Counter is the read only view handed to count observers.
type Counter interface {
	RightCount() int
	TotalCount() int
}

type Option func(*Controller)

func WithRand(rng *rand.Rand) Option {
	return func(c *Controller) {
		c.rng = rng
	}
}

func WithCountObserver(f func(Counter)) Option {
	return func(c *Controller) {
		c.AddCountObserver(f)
	}
}

func WithNextExerciseObserver(f func(game.Exercise)) Option {
	return func(c *Controller) {
		c.OnNextExercise(f)
	}
}

func WithGameOverObserver(f func()) Option {
	return func(c *Controller) {
		c.OnGameOver(f)
	}
}

type Controller struct {
	store store.Store
	queue audio.Queue
	rng   *rand.Rand

	state   *game.State
	session *store.Session

	countObservers       []func(Counter)
	nextExerciseObserver func(game.Exercise)
	gameOverObserver     func()
}

func New(s store.Store, q audio.Queue, opts ...Option) *Controller {
	c := &Controller{store: s, queue: q}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) NewGame(ctx context.Context, tonality game.Tonality) error {
	state, err := game.NewState(tonality, *game.FirstExercise(), c.rng)
	if nil != err {
		return err
	}
	session, err := c.store.InsertSession(ctx, tonality.String())
	if nil != err {
		return err
	}
	c.session = session
	c.setState(state)
	return nil
}

func (c *Controller) setState(state *game.State) {
	c.state = state
	c.countChanged()
}

// LoadGame resumes the newest unfinished session. It returns nil and leaves
// the controller untouched when there is nothing to resume.
func (c *Controller) LoadGame(ctx context.Context) (*store.Snapshot, error) {
	session, err := c.store.CurrentSession(ctx)
	if nil != err || nil == session {
		return nil, err
	}
	snap, err := c.store.Snapshot(ctx, session)
	if nil != err || nil == snap {
		return nil, err
	}
	state, err := game.LoadState(snap.Snapshot, c.rng)
	if nil != err {
		return nil, fmt.Errorf("unable to load session %d: %w", session.ID, err)
	}
	c.session = session
	c.setState(state)
	return snap, nil
}

func (c *Controller) currentSession(ctx context.Context) (*store.Session, error) {
	if nil != c.session {
		return c.session, nil
	}
	session, err := c.store.CurrentSession(ctx)
	if nil != err {
		return nil, err
	}
	if nil == session {
		return nil, store.ErrNoSession
	}
	c.session = session
	return session, nil
}

// SaveState writes the current state against the current session, creating
// the session first if the store has none.
func (c *Controller) SaveState(ctx context.Context) error {
	if nil == c.state {
		return nil
	}
	session, err := c.currentSession(ctx)
	if errors.Is(err, store.ErrNoSession) {
		session, err = c.store.InsertSession(ctx, c.state.Tonality.String())
		c.session = session
	}
	if nil != err {
		return err
	}
	return c.store.UpsertSnapshot(ctx, session, c.state.Snapshot())
}

func (c *Controller) FinishGame(ctx context.Context) (*store.Session, error) {
	session, err := c.currentSession(ctx)
	if nil != err {
		return nil, err
	}
	finished, err := c.store.MarkFinished(ctx, session)
	if nil != err {
		return nil, err
	}
	c.session = finished
	return finished, nil
}

// IsFinished is true when there is no game or its pool is exhausted.
func (c *Controller) IsFinished() bool {
	return nil == c.state || len(c.state.Notes) == 0
}

func (c *Controller) PlayTonalCenter() {
	if nil == c.state {
		return
	}
	c.queue.Enqueue(audio.TonalCenterOf(c.state.Tonality))
}

// PlayNextNote draws and plays the next note. When the exercise is over
// with a perfect score the next exercise is unlocked, otherwise the game
// is saved, marked finished and the game over observer is called.
func (c *Controller) PlayNextNote(ctx context.Context) error {
	if nil == c.state || c.over() {
		return nil
	}
	s := c.state

	note, ok := s.NextNote()
	if !ok && s.Perfect() {
		// Looks like this exercise is over, try to unlock the next one
		if ex, unlocked := s.NextExercise(); unlocked {
			log.WithField("exercise", ex.Num).Info("next exercise")
			if nil != c.nextExerciseObserver {
				c.nextExerciseObserver(*ex)
			}
			note, ok = s.NextNote()
		}
	}

	if !ok {
		return c.gameOver(ctx)
	}

	log.WithField("note", note).Debug("next note")
	c.queue.Enqueue(audio.NoteOf(note))
	s.TotalCount++
	s.AttemptsLeft = 1
	c.countChanged()
	return nil
}

func (c *Controller) over() bool {
	return nil != c.session && nil != c.session.FinishedAt
}

func (c *Controller) gameOver(ctx context.Context) error {
	log.WithFields(log.Fields{
		"right": c.state.RightCount,
		"total": c.state.TotalCount,
	}).Info("game over")
	if err := c.SaveState(ctx); nil != err {
		return err
	}
	if _, err := c.FinishGame(ctx); nil != err {
		return err
	}
	if nil != c.gameOverObserver {
		c.gameOverObserver()
	}
	return nil
}

func (c *Controller) RepeatNote() {
	if note, ok := c.CurrentNote(); ok {
		c.queue.Enqueue(audio.NoteOf(note))
	}
}

// CheckAnswers spends the attempt on the current note. The answer is right
// when any candidate names the pitch of the note, in any octave; several
// candidates let enharmonic spellings count alike. answered is false when
// no attempt was left.
func (c *Controller) CheckAnswers(candidates ...string) (right bool, answered bool) {
	if nil == c.state || nil == c.state.Note || c.state.AttemptsLeft == 0 {
		return false, false
	}
	c.state.AttemptsLeft--

	for _, candidate := range candidates {
		pitch, err := game.ParsePitch(candidate)
		if nil != err {
			log.WithError(err).Warn("ignoring answer")
			continue
		}
		if pitch == c.state.Note.Pitch {
			right = true
			break
		}
	}

	if right {
		c.state.RightCount++
		c.countChanged()
	}
	return right, true
}

func (c *Controller) CurrentNote() (game.Note, bool) {
	if nil == c.state || nil == c.state.Note {
		return game.Note{}, false
	}
	return *c.state.Note, true
}

func (c *Controller) Tonality() (game.Tonality, bool) {
	if nil == c.state {
		return game.Tonality{}, false
	}
	return c.state.Tonality, true
}

func (c *Controller) Exercise() (game.Exercise, bool) {
	if nil == c.state {
		return game.Exercise{}, false
	}
	return c.state.Exercise, true
}

// AttemptsLeft is the number of answers still accepted for the current note.
func (c *Controller) AttemptsLeft() int {
	if nil == c.state {
		return 0
	}
	return c.state.AttemptsLeft
}

// Remaining is the number of notes left in the pool.
func (c *Controller) Remaining() int {
	if nil == c.state {
		return 0
	}
	return len(c.state.Notes)
}
