package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"git.lost.host/meutraa/timbre/internal/game"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func newStore(t *testing.T) *DefaultStore {
	t.Helper()
	clock := &fakeClock{t: time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)}
	s := &DefaultStore{
		Path: filepath.Join(t.TempDir(), "data", "timbre.db"),
		Now:  clock.Now,
	}
	if err := s.Init(); nil != err {
		t.Fatalf("init store: %v", err)
	}
	t.Cleanup(s.Deinit)
	return s
}

func TestCurrentSession(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	current, err := s.CurrentSession(ctx)
	if nil != err || nil != current {
		t.Fatalf("empty store: %v %v", current, err)
	}

	first, err := s.InsertSession(ctx, "Cmaj")
	if nil != err {
		t.Fatal(err)
	}
	second, err := s.InsertSession(ctx, "Gmaj")
	if nil != err {
		t.Fatal(err)
	}
	if !second.CreatedAt.After(first.CreatedAt) {
		t.Fatalf("sessions must be created in order: %v %v", first.CreatedAt, second.CreatedAt)
	}

	current, err = s.CurrentSession(ctx)
	if nil != err {
		t.Fatal(err)
	}
	if current.ID != second.ID || current.Tonality != "Gmaj" || !current.CreatedAt.Equal(second.CreatedAt) {
		t.Errorf("expected the newest session, got %+v", current)
	}

	finished, err := s.MarkFinished(ctx, second)
	if nil != err {
		t.Fatal(err)
	}
	if nil == finished.FinishedAt || !finished.FinishedAt.After(second.CreatedAt) {
		t.Errorf("finished session has no finish time: %+v", finished)
	}

	current, err = s.CurrentSession(ctx)
	if nil != err {
		t.Fatal(err)
	}
	if nil == current || current.ID != first.ID {
		t.Errorf("expected the older unfinished session, got %+v", current)
	}
}

func TestUpsertSnapshot(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	session, _ := s.InsertSession(ctx, "Dmaj")

	snap, err := s.Snapshot(ctx, session)
	if nil != err || nil != snap {
		t.Fatalf("expected no snapshot: %v %v", snap, err)
	}

	in := game.Snapshot{
		Tonality:   "Dmaj",
		Exercise:   1,
		Note:       "F#4",
		Notes:      "D4,E4,F#4",
		RightCount: 4,
		TotalCount: 5,
	}
	if err := s.UpsertSnapshot(ctx, session, in); nil != err {
		t.Fatal(err)
	}
	in.Exercise, in.Note, in.Notes, in.RightCount = 2, "", "", 5
	if err := s.UpsertSnapshot(ctx, session, in); nil != err {
		t.Fatal(err)
	}

	snap, err = s.Snapshot(ctx, session)
	if nil != err {
		t.Fatal(err)
	}
	if snap.SessionID != session.ID || snap.Snapshot != in {
		t.Log("out     ", snap)
		t.Log("expected", in)
		t.Fail()
	}
}

func TestMarkFinishedUnknownSession(t *testing.T) {
	s := newStore(t)
	_, err := s.MarkFinished(context.Background(), &Session{ID: 42})
	if !errors.Is(err, ErrNoSession) {
		t.Errorf("expected ErrNoSession, got %v", err)
	}
}
