package theme

import (
	"fmt"

	"git.lost.host/meutraa/timbre/internal/game"
)

type Color struct {
	R, G, B uint8
}

type DefaultTheme struct {
}

func paint(c Color, s string) string {
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, s)
}

// RenderKey draws a piano key label with its key binding. Black keys are
// dimmed and show both spellings.
func (t *DefaultTheme) RenderKey(key game.Key, binding rune) string {
	label := fmt.Sprintf("[%c] %-5v", binding, key)
	if key.Black() {
		return paint(blackKey, label)
	}
	return paint(getPitchColor(key.Spellings[0]), label)
}

func (t *DefaultTheme) RenderVerdict(right bool) string {
	if right {
		return paint(rightColor, rightSym+" Right!")
	}
	return paint(wrongColor, wrongSym+" Wrong!")
}

func (t *DefaultTheme) RenderCounts(right, total int) string {
	ratio := 0.0
	if total > 0 {
		ratio = float64(right) / float64(total)
	}
	c := wrongColor
	switch {
	case ratio == 1:
		c = rightColor
	case ratio >= 0.75:
		c = goodColor
	}
	return paint(c, fmt.Sprintf("%3v / %-3v", right, total))
}

const (
	rightSym = "✔"
	wrongSym = "⨯"
)

var (
	rightColor = Color{0, 236, 128}
	goodColor  = Color{236, 195, 0}
	wrongColor = Color{236, 30, 0}
	blackKey   = Color{106, 106, 106}

	// One colour per natural, in the order of the rainbow from C
	pitchColors = map[string]Color{
		"C":  {236, 30, 0},    // red
		"D":  {236, 128, 0},   // orange
		"E":  {236, 195, 0},   // yellow
		"F":  {0, 236, 128},   // green
		"G":  {173, 236, 236}, // light blue
		"A":  {0, 118, 236},   // blue
		"B":  {106, 0, 236},   // purple
		"-1": {255, 255, 255}, // other white
	}
)

func getPitchColor(p game.Pitch) Color {
	col, ok := pitchColors[p.Letter()]
	if !ok || p.Sharp() || p.Flat() {
		return pitchColors["-1"]
	}
	return col
}
