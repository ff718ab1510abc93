package audio

import (
	"git.lost.host/meutraa/timbre/internal/game"
)

type Kind uint8

const (
	NoteSample Kind = iota
	TonalCenterSample
)

// Sample names a recording. Where it lives on disk is up to the Player.
type Sample struct {
	Kind Kind
	Name string
}

func (s Sample) String() string {
	return s.Name
}

// Note samples are named after the note, e.g. C4.
func NoteOf(n game.Note) Sample {
	return Sample{Kind: NoteSample, Name: n.String()}
}

// Tonal centers are a I-IV-V-I perfect authentic cadence in the key.
func TonalCenterOf(t game.Tonality) Sample {
	return Sample{Kind: TonalCenterSample, Name: "IIVVIPAC - " + t.String()}
}
