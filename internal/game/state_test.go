package game

import (
	"errors"
	"math/rand"
	"sort"
	"testing"
)

func cMajor(octave Octave) []Note {
	notes := []Note{}
	for _, p := range []Pitch{C, D, E, F, G, A, B} {
		notes = append(notes, Note{Octave: octave, Pitch: p})
	}
	return notes
}

func equalNotes(p, q []Note) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

func TestGeneratePool(t *testing.T) {
	c := Tonality{Key: C}
	tests := map[int][]Note{
		1: append(cMajor(First), Note{Octave: Second, Pitch: C}),
		2: append(append(cMajor(First), cMajor(Second)...), Note{Octave: Third, Pitch: C}),
	}
	for num, expected := range tests {
		ex, _ := ExerciseByNumber(num)
		state, err := NewState(c, *ex, rand.New(rand.NewSource(1)))
		if nil != err {
			t.Fatal(err)
		}
		if !equalNotes(state.Notes, expected) {
			t.Log("exercise", num)
			t.Log("out     ", state.Notes)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

func TestGeneratePoolSizes(t *testing.T) {
	// n octaves contribute 7 notes each plus the key note above the last.
	for _, tonality := range Tonalities {
		for _, ex := range Exercises {
			pool, err := GeneratePool(tonality, ex)
			if nil != err {
				t.Fatal(err)
			}
			expected := 7*len(ex.Octaves) + 1
			if len(pool) != expected {
				t.Errorf("%v exercise %d: pool size %d, expected %d", tonality, ex.Num, len(pool), expected)
			}
			again, _ := GeneratePool(tonality, ex)
			if !equalNotes(pool, again) {
				t.Errorf("%v exercise %d: generation is not reproducible", tonality, ex.Num)
			}
		}
	}
}

func TestGeneratePoolWithoutGamut(t *testing.T) {
	_, err := NewState(Tonality{Key: Cflat}, *FirstExercise(), nil)
	if !errors.Is(err, ErrNoGamut) {
		t.Errorf("expected ErrNoGamut, got %v", err)
	}
}

func TestNextNoteExhaustsPool(t *testing.T) {
	for _, num := range []int{1, 2, 7} {
		ex, _ := ExerciseByNumber(num)
		state, err := NewState(Tonality{Key: C}, *ex, rand.New(rand.NewSource(int64(num))))
		if nil != err {
			t.Fatal(err)
		}
		if nil != state.Note {
			t.Fatal("a fresh state has no current note")
		}
		expected := append([]Note{}, state.Notes...)

		drawn := []Note{}
		for {
			n, ok := state.NextNote()
			if !ok {
				break
			}
			drawn = append(drawn, n)
			if len(drawn) > len(expected) {
				t.Fatalf("exercise %d: drew more notes than the pool holds", num)
			}
		}
		if nil != state.Note || len(state.Notes) != 0 {
			t.Errorf("exercise %d: exhausted state still holds %v %v", num, state.Note, state.Notes)
		}
		if _, ok := state.NextNote(); ok {
			t.Errorf("exercise %d: draw after exhaustion returned a note", num)
		}

		sort.Sort(Notes(drawn))
		sort.Sort(Notes(expected))
		if !equalNotes(drawn, expected) {
			t.Log("exercise", num)
			t.Log("drawn   ", drawn)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

func TestNextNoteKeepsCurrentInPool(t *testing.T) {
	state, _ := NewState(Tonality{Key: G}, *FirstExercise(), rand.New(rand.NewSource(3)))
	size := len(state.Notes)
	n, _ := state.NextNote()
	if len(state.Notes) != size || !contains(state.Notes, n) {
		t.Error("the current note leaves the pool on the following draw")
	}
	state.NextNote()
	if len(state.Notes) != size-1 || contains(state.Notes, n) {
		t.Error("the previous note must be dropped")
	}
}

func TestDropMissingNotePanics(t *testing.T) {
	state, _ := NewState(Tonality{Key: C}, *FirstExercise(), nil)
	state.Note = &Note{Octave: Fourth, Pitch: Bsharp}
	defer func() {
		if nil == recover() {
			t.Error("expected a panic")
		}
	}()
	state.NextNote()
}

func TestNextExercise(t *testing.T) {
	state, _ := NewState(Tonality{Key: D}, *FirstExercise(), nil)
	state.RightCount, state.TotalCount = 8, 8
	for state.Exercise.Num < len(Exercises) {
		num := state.Exercise.Num
		ex, ok := state.NextExercise()
		if !ok || ex.Num != num+1 {
			t.Fatalf("expected exercise %d, got %v", num+1, ex)
		}
		if len(state.Notes) != 7*len(ex.Octaves)+1 {
			t.Errorf("exercise %d: pool size %d", ex.Num, len(state.Notes))
		}
	}
	if state.RightCount != 8 || state.TotalCount != 8 {
		t.Error("counters carry over between exercises")
	}
	if _, ok := state.NextExercise(); ok {
		t.Error("there is no exercise after the last one")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	ex, _ := ExerciseByNumber(3)
	state, _ := NewState(Tonality{Key: Eflat}, *ex, nil)
	state.NextNote()
	state.NextNote()
	state.RightCount, state.TotalCount = 1, 2

	snap := state.Snapshot()
	if snap.Tonality != "Ebmaj" || snap.Exercise != 3 || snap.Note != state.Note.String() {
		t.Fatalf("unexpected snapshot %+v", snap)
	}

	loaded, err := LoadState(snap, nil)
	if nil != err {
		t.Fatal(err)
	}
	if loaded.Tonality != state.Tonality || loaded.Exercise.Num != 3 ||
		*loaded.Note != *state.Note || !equalNotes(loaded.Notes, state.Notes) ||
		loaded.RightCount != 1 || loaded.TotalCount != 2 || loaded.AttemptsLeft != 0 {
		t.Log("out     ", loaded)
		t.Log("expected", state)
		t.Fail()
	}
}

func TestLoadStateWithoutNote(t *testing.T) {
	state, _ := NewState(Tonality{Key: A}, *FirstExercise(), nil)
	loaded, err := LoadState(state.Snapshot(), nil)
	if nil != err {
		t.Fatal(err)
	}
	if nil != loaded.Note || len(loaded.Notes) != 8 {
		t.Errorf("unexpected state %+v", loaded)
	}

	exhausted, err := LoadState(Snapshot{Tonality: "Amaj", Exercise: 1}, nil)
	if nil != err {
		t.Fatal(err)
	}
	if len(exhausted.Notes) != 0 {
		t.Error("an empty notes field is an empty pool")
	}
}

var badSnapshots = []Snapshot{
	{Tonality: "Hmaj", Exercise: 1},
	{Tonality: "Cbmaj", Exercise: 1},
	{Tonality: "Cmaj", Exercise: 0},
	{Tonality: "Cmaj", Exercise: 1, Note: "X4", Notes: "C4"},
	{Tonality: "Cmaj", Exercise: 1, Notes: "C4,,D4"},
	{Tonality: "Cmaj", Exercise: 1, Note: "E4", Notes: "C4,D4"},
}

func TestLoadStateErrors(t *testing.T) {
	for _, snap := range badSnapshots {
		if _, err := LoadState(snap, nil); nil == err {
			t.Errorf("expected an error for %+v", snap)
		}
	}
}

var result []Note

func BenchmarkGeneratePool(b *testing.B) {
	ex := Exercises[len(Exercises)-1]
	tonality := Tonality{Key: Fsharp}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		result, _ = GeneratePool(tonality, ex)
	}
}
