package game

import (
	"fmt"
	"strings"
)

// Pitch is one of the 21 chromatic spellings: every natural with a flat,
// natural or sharp accidental. The declaration order is the sort order.
type Pitch uint8

const (
	Cflat Pitch = iota
	C
	Csharp
	Dflat
	D
	Dsharp
	Eflat
	E
	Esharp
	Fflat
	F
	Fsharp
	Gflat
	G
	Gsharp
	Aflat
	A
	Asharp
	Bflat
	B
	Bsharp
)

// Pitches holds every Pitch in declaration order.
var Pitches = [...]Pitch{
	Cflat, C, Csharp,
	Dflat, D, Dsharp,
	Eflat, E, Esharp,
	Fflat, F, Fsharp,
	Gflat, G, Gsharp,
	Aflat, A, Asharp,
	Bflat, B, Bsharp,
}

const (
	sharpSign = "#"
	flatSign  = "b"
)

var pitchNames = [...]string{
	"Cb", "C", "C#",
	"Db", "D", "D#",
	"Eb", "E", "E#",
	"Fb", "F", "F#",
	"Gb", "G", "G#",
	"Ab", "A", "A#",
	"Bb", "B", "B#",
}

func (p Pitch) String() string {
	if int(p) >= len(pitchNames) {
		return fmt.Sprintf("Pitch(%d)", uint8(p))
	}
	return pitchNames[p]
}

// Letter is the natural name of the pitch, without any accidental.
func (p Pitch) Letter() string {
	return strings.TrimRight(p.String(), sharpSign+flatSign)
}

func (p Pitch) Sharp() bool {
	return strings.HasSuffix(p.String(), sharpSign)
}

func (p Pitch) Flat() bool {
	return len(p.String()) == 2 && strings.HasSuffix(p.String(), flatSign)
}

func ParsePitch(s string) (Pitch, error) {
	for i, name := range pitchNames {
		if name == s {
			return Pitch(i), nil
		}
	}
	return 0, &ParseError{Kind: "pitch", Input: s}
}
