package theme

import "git.lost.host/meutraa/timbre/internal/game"

type Theme interface {
	RenderKey(key game.Key, binding rune) string
	RenderVerdict(right bool) string
	RenderCounts(right, total int) string
}
