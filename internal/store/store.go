package store

import (
	"context"
	"errors"
	"time"

	"git.lost.host/meutraa/timbre/internal/game"
)

var ErrNoSession = errors.New("no current session")

// Store keeps game sessions and their latest state snapshot.
type Store interface {
	Init() error
	Deinit()

	// The newest session that has not been finished, nil if there is none
	CurrentSession(ctx context.Context) (*Session, error)

	// The snapshot saved for a session, nil if none was saved yet
	Snapshot(ctx context.Context, session *Session) (*Snapshot, error)

	InsertSession(ctx context.Context, tonality string) (*Session, error)
	UpsertSnapshot(ctx context.Context, session *Session, snapshot game.Snapshot) error
	MarkFinished(ctx context.Context, session *Session) (*Session, error)
}

type Session struct {
	ID         int64
	Tonality   string
	CreatedAt  time.Time
	FinishedAt *time.Time
}

type Snapshot struct {
	ID        int64
	SessionID int64
	game.Snapshot
}
