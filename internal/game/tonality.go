package game

import "strings"

const majorSuffix = "maj"

// Tonality is a major key identified by its root pitch.
type Tonality struct {
	Key Pitch
}

func (t Tonality) String() string {
	return t.Key.String() + majorSuffix
}

func ParseTonality(s string) (Tonality, error) {
	if !strings.HasSuffix(s, majorSuffix) {
		return Tonality{}, &ParseError{Kind: "tonality", Input: s}
	}
	key, err := ParsePitch(strings.TrimSuffix(s, majorSuffix))
	if nil != err {
		return Tonality{}, &ParseError{Kind: "tonality", Input: s}
	}
	return Tonality{Key: key}, nil
}

// Tonalities are the keys a session can be started in. Every entry has a
// row in Gamuts.
var Tonalities = []Tonality{
	{C}, {G}, {D}, {A}, {E}, {B},
	{F}, {Bflat}, {Eflat}, {Aflat}, {Dflat}, {Fsharp},
}

// Scale lists the degrees I to VII of a major scale.
type Scale [7]Pitch

type Gamut struct {
	Key   Pitch
	Scale Scale
}

// Gamuts is the scale table for every selectable tonality. The F# row
// ends on F, not E#.
var Gamuts = []Gamut{
	{Key: C, Scale: Scale{C, D, E, F, G, A, B}},
	{Key: G, Scale: Scale{G, A, B, C, D, E, Fsharp}},
	{Key: D, Scale: Scale{D, E, Fsharp, G, A, B, Csharp}},
	{Key: A, Scale: Scale{A, B, Csharp, D, E, Fsharp, Gsharp}},
	{Key: E, Scale: Scale{E, Fsharp, Gsharp, A, B, Csharp, Dsharp}},
	{Key: B, Scale: Scale{B, Csharp, Dsharp, E, Fsharp, Gsharp, Asharp}},

	{Key: F, Scale: Scale{F, G, A, Bflat, C, D, E}},
	{Key: Bflat, Scale: Scale{Bflat, C, D, Eflat, F, G, A}},
	{Key: Eflat, Scale: Scale{Eflat, F, G, Aflat, Bflat, C, D}},
	{Key: Aflat, Scale: Scale{Aflat, Bflat, C, Dflat, Eflat, F, G}},
	{Key: Dflat, Scale: Scale{Dflat, Eflat, F, Gflat, Aflat, Bflat, C}},
	{Key: Fsharp, Scale: Scale{Fsharp, Gsharp, Asharp, B, Csharp, Dsharp, F}},
}

func GamutFor(key Pitch) (*Gamut, bool) {
	for i := range Gamuts {
		if Gamuts[i].Key == key {
			return &Gamuts[i], true
		}
	}
	return nil, false
}

// Key is one of the 12 keys of a piano octave, with the spellings that
// name it. An answer given on a black key is correct for either spelling.
type Key struct {
	Spellings []Pitch
}

func (k Key) Black() bool {
	return len(k.Spellings) > 1
}

// Answers are the spellings as strings, ready for answer checking.
func (k Key) Answers() []string {
	answers := make([]string, len(k.Spellings))
	for i, p := range k.Spellings {
		answers[i] = p.String()
	}
	return answers
}

func (k Key) String() string {
	return strings.Join(k.Answers(), "/")
}

// Keyboard is one octave of piano keys from C to B.
var Keyboard = [12]Key{
	{[]Pitch{C}},
	{[]Pitch{Csharp, Dflat}},
	{[]Pitch{D}},
	{[]Pitch{Dsharp, Eflat}},
	{[]Pitch{E}},
	{[]Pitch{F}},
	{[]Pitch{Fsharp, Gflat}},
	{[]Pitch{G}},
	{[]Pitch{Gsharp, Aflat}},
	{[]Pitch{A}},
	{[]Pitch{Asharp, Bflat}},
	{[]Pitch{B}},
}
