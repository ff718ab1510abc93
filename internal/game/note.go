package game

import (
	"strconv"
)

// Octave uses scientific pitch notation numbers, which are also the
// display suffix of a Note.
type Octave uint8

const (
	Great  Octave = 2
	Small  Octave = 3
	First  Octave = 4
	Second Octave = 5
	Third  Octave = 6
	Fourth Octave = 7
)

// Next returns the octave above o, false for the top octave.
func (o Octave) Next() (Octave, bool) {
	if !o.Valid() || o == Fourth {
		return 0, false
	}
	return o + 1, true
}

func (o Octave) Valid() bool {
	return o >= Great && o <= Fourth
}

func (o Octave) String() string {
	return strconv.Itoa(int(o))
}

// Note is a pitch from a particular octave.
type Note struct {
	Octave Octave
	Pitch  Pitch
}

func (n Note) String() string {
	return n.Pitch.String() + n.Octave.String()
}

// Less orders notes by octave first, then by pitch declaration order.
func (n Note) Less(o Note) bool {
	if n.Octave != o.Octave {
		return n.Octave < o.Octave
	}
	return n.Pitch < o.Pitch
}

func ParseNote(s string) (Note, error) {
	if len(s) < 2 {
		return Note{}, &ParseError{Kind: "note", Input: s}
	}
	digit := s[len(s)-1]
	if digit < '0' || digit > '9' {
		return Note{}, &ParseError{Kind: "note", Input: s}
	}
	octave := Octave(digit - '0')
	if !octave.Valid() {
		return Note{}, &ParseError{Kind: "note", Input: s}
	}
	pitch, err := ParsePitch(s[:len(s)-1])
	if nil != err {
		return Note{}, &ParseError{Kind: "note", Input: s}
	}
	return Note{Octave: octave, Pitch: pitch}, nil
}

// Notes sorts by Note.Less, used to compare pools regardless of draw order.
type Notes []Note

func (p Notes) Len() int {
	return len(p)
}

func (p Notes) Less(i, j int) bool {
	return p[i].Less(p[j])
}

func (p Notes) Swap(i, j int) {
	p[i], p[j] = p[j], p[i]
}
