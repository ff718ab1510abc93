package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"git.lost.host/meutraa/timbre/internal/game"
	_ "github.com/mattn/go-sqlite3"
)

// Fixed width so that text ordering matches time ordering.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

type DefaultStore struct {
	Path string
	Now  func() time.Time

	db *sql.DB
}

func (s *DefaultStore) now() time.Time {
	if nil != s.Now {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *DefaultStore) Init() error {
	if dir := filepath.Dir(s.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); nil != err {
			return fmt.Errorf("unable to create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", s.Path)
	if err != nil {
		return fmt.Errorf("unable to open database: %w", err)
	}

	initStatement := `
	create table if not exists octave_games
	  (
		  id integer not null primary key,
		  tonality text not null,
		  created_at text not null,
		  finished_at text
	  );
	create table if not exists octave_game_states
	  (
		  id integer not null primary key,
		  tonality text not null,
		  exercise integer not null,
		  note text not null,
		  notes text not null,
		  right_count integer not null,
		  total_count integer not null,
		  game_id integer not null unique references octave_games(id)
	  );
	`
	if _, err = db.Exec(initStatement); nil != err {
		db.Close()
		return fmt.Errorf("unable to create tables: %w", err)
	}

	s.db = db
	return nil
}

func (s *DefaultStore) Deinit() {
	if nil != s.db {
		s.db.Close()
	}
}

func scanSession(row *sql.Row) (*Session, error) {
	var session Session
	var created string
	var finished sql.NullString
	if err := row.Scan(&session.ID, &session.Tonality, &created, &finished); nil != err {
		return nil, err
	}
	t, err := time.Parse(timeLayout, created)
	if nil != err {
		return nil, err
	}
	session.CreatedAt = t
	if finished.Valid {
		t, err := time.Parse(timeLayout, finished.String)
		if nil != err {
			return nil, err
		}
		session.FinishedAt = &t
	}
	return &session, nil
}

func (s *DefaultStore) CurrentSession(ctx context.Context) (*Session, error) {
	row := s.db.QueryRowContext(ctx, `
	select id, tonality, created_at, finished_at from octave_games
	where finished_at is null
	order by created_at desc, id desc
	limit 1`)
	session, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if nil != err {
		return nil, fmt.Errorf("unable to load current session: %w", err)
	}
	return session, nil
}

func (s *DefaultStore) session(ctx context.Context, id int64) (*Session, error) {
	row := s.db.QueryRowContext(ctx,
		"select id, tonality, created_at, finished_at from octave_games where id = ?", id)
	session, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSession
	}
	return session, err
}

func (s *DefaultStore) Snapshot(ctx context.Context, session *Session) (*Snapshot, error) {
	var snap Snapshot
	err := s.db.QueryRowContext(ctx, `
	select id, tonality, exercise, note, notes, right_count, total_count, game_id
	from octave_game_states where game_id = ?`, session.ID).Scan(
		&snap.ID,
		&snap.Tonality,
		&snap.Exercise,
		&snap.Note,
		&snap.Notes,
		&snap.RightCount,
		&snap.TotalCount,
		&snap.SessionID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if nil != err {
		return nil, fmt.Errorf("unable to load snapshot: %w", err)
	}
	return &snap, nil
}

func (s *DefaultStore) InsertSession(ctx context.Context, tonality string) (*Session, error) {
	created := s.now()
	res, err := s.db.ExecContext(ctx,
		"insert into octave_games(tonality, created_at) values(?, ?)",
		tonality, created.Format(timeLayout))
	if nil != err {
		return nil, fmt.Errorf("unable to save session: %w", err)
	}
	id, err := res.LastInsertId()
	if nil != err {
		return nil, fmt.Errorf("unable to save session: %w", err)
	}
	created, _ = time.Parse(timeLayout, created.Format(timeLayout))
	return &Session{ID: id, Tonality: tonality, CreatedAt: created}, nil
}

func (s *DefaultStore) UpsertSnapshot(ctx context.Context, session *Session, snap game.Snapshot) error {
	_, err := s.db.ExecContext(ctx, `
	insert into octave_game_states(tonality, exercise, note, notes, right_count, total_count, game_id)
	values(?, ?, ?, ?, ?, ?, ?)
	on conflict(game_id) do update set
	  tonality=excluded.tonality,
	  exercise=excluded.exercise,
	  note=excluded.note,
	  notes=excluded.notes,
	  right_count=excluded.right_count,
	  total_count=excluded.total_count`,
		snap.Tonality,
		snap.Exercise,
		snap.Note,
		snap.Notes,
		snap.RightCount,
		snap.TotalCount,
		session.ID,
	)
	if nil != err {
		return fmt.Errorf("unable to save snapshot: %w", err)
	}
	return nil
}

func (s *DefaultStore) MarkFinished(ctx context.Context, session *Session) (*Session, error) {
	res, err := s.db.ExecContext(ctx,
		"update octave_games set finished_at = ? where id = ?",
		s.now().Format(timeLayout), session.ID)
	if nil != err {
		return nil, fmt.Errorf("unable to finish session: %w", err)
	}
	if n, err := res.RowsAffected(); nil == err && n == 0 {
		return nil, ErrNoSession
	}
	finished, err := s.session(ctx, session.ID)
	if nil != err {
		return nil, fmt.Errorf("unable to load finished session: %w", err)
	}
	return finished, nil
}
