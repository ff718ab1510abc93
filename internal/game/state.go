package game

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// State is the mutable part of one game: the notes still to be asked in the
// current exercise and the score so far. Notes keeps the current note until
// the following draw removes it.
type State struct {
	Tonality     Tonality
	Exercise     Exercise
	Note         *Note
	Notes        []Note
	RightCount   int
	TotalCount   int
	AttemptsLeft int

	rng *rand.Rand
}

// Snapshot is the persisted form of a State.
type Snapshot struct {
	Tonality   string
	Exercise   int
	Note       string // empty when no note has been drawn
	Notes      string // comma separated
	RightCount int
	TotalCount int
}

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// NewState starts a game in the given tonality and exercise. A nil rng
// draws from a time seeded source.
func NewState(tonality Tonality, exercise Exercise, rng *rand.Rand) (*State, error) {
	if nil == rng {
		rng = newRand()
	}
	s := &State{
		Tonality: tonality,
		Exercise: exercise,
		rng:      rng,
	}
	if err := s.generateNotes(); nil != err {
		return nil, err
	}
	return s, nil
}

// GeneratePool lists the notes of an exercise in a tonality: each octave's
// scale followed by the key note of the octave above, without repeats.
func GeneratePool(tonality Tonality, exercise Exercise) ([]Note, error) {
	gamut, ok := GamutFor(tonality.Key)
	if !ok {
		return nil, fmt.Errorf("%w %v", ErrNoGamut, tonality)
	}

	notes := make([]Note, 0, len(exercise.Octaves)*(len(gamut.Scale)+1))
	for _, octave := range exercise.Octaves {
		for _, pitch := range gamut.Scale {
			notes = append(notes, Note{Octave: octave, Pitch: pitch})
		}
		if next, ok := octave.Next(); ok {
			notes = append(notes, Note{Octave: next, Pitch: gamut.Key})
		}
	}

	seen := make(map[Note]bool, len(notes))
	pool := notes[:0]
	for _, n := range notes {
		if seen[n] {
			continue
		}
		seen[n] = true
		pool = append(pool, n)
	}
	return pool, nil
}

func (s *State) generateNotes() error {
	notes, err := GeneratePool(s.Tonality, s.Exercise)
	if nil != err {
		return err
	}
	s.Notes = notes
	return nil
}

// NextNote drops the current note from the pool and draws a new one at
// random. It returns false once the pool is exhausted.
func (s *State) NextNote() (Note, bool) {
	s.dropNote()
	if len(s.Notes) == 0 {
		s.Note = nil
		return Note{}, false
	}
	n := s.Notes[s.rng.Intn(len(s.Notes))]
	s.Note = &n
	return n, true
}

func (s *State) dropNote() {
	if nil == s.Note {
		return
	}
	for i, n := range s.Notes {
		if n == *s.Note {
			s.Notes = append(s.Notes[:i], s.Notes[i+1:]...)
			return
		}
	}
	panic(fmt.Sprintf("current note %v is missing from the pool", *s.Note))
}

// NextExercise moves to the exercise after the current one and refills the
// pool. Counters carry over. It returns false after the last exercise.
func (s *State) NextExercise() (*Exercise, bool) {
	ex, ok := ExerciseByNumber(s.Exercise.Num + 1)
	if !ok {
		return nil, false
	}
	notes, err := GeneratePool(s.Tonality, *ex)
	if nil != err {
		// The tonality was accepted by NewState or LoadState.
		panic(err)
	}
	s.Exercise = *ex
	s.Notes = notes
	s.Note = nil
	return ex, true
}

// Perfect reports whether every note asked so far was answered right.
func (s *State) Perfect() bool {
	return s.RightCount == s.TotalCount
}

func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Tonality:   s.Tonality.String(),
		Exercise:   s.Exercise.Num,
		RightCount: s.RightCount,
		TotalCount: s.TotalCount,
	}
	if nil != s.Note {
		snap.Note = s.Note.String()
	}
	names := make([]string, len(s.Notes))
	for i, n := range s.Notes {
		names[i] = n.String()
	}
	snap.Notes = strings.Join(names, ",")
	return snap
}

// LoadState rebuilds a State from a snapshot. No attempt is granted until
// the next note is played.
func LoadState(snap Snapshot, rng *rand.Rand) (*State, error) {
	tonality, err := ParseTonality(snap.Tonality)
	if nil != err {
		return nil, err
	}
	if _, ok := GamutFor(tonality.Key); !ok {
		return nil, fmt.Errorf("%w %v", ErrNoGamut, tonality)
	}
	exercise, ok := ExerciseByNumber(snap.Exercise)
	if !ok {
		return nil, &ParseError{Kind: "exercise", Input: strconv.Itoa(snap.Exercise)}
	}

	var note *Note
	if snap.Note != "" {
		n, err := ParseNote(snap.Note)
		if nil != err {
			return nil, err
		}
		note = &n
	}

	notes := []Note{}
	if snap.Notes != "" {
		for _, field := range strings.Split(snap.Notes, ",") {
			n, err := ParseNote(field)
			if nil != err {
				return nil, err
			}
			notes = append(notes, n)
		}
	}

	if nil != note && !contains(notes, *note) {
		return nil, fmt.Errorf("unable to load snapshot: note %v is not in the pool", *note)
	}

	if nil == rng {
		rng = newRand()
	}
	return &State{
		Tonality:   tonality,
		Exercise:   *exercise,
		Note:       note,
		Notes:      notes,
		RightCount: snap.RightCount,
		TotalCount: snap.TotalCount,
		rng:        rng,
	}, nil
}

func contains(notes []Note, note Note) bool {
	for _, n := range notes {
		if n == note {
			return true
		}
	}
	return false
}
