package controller

import "git.lost.host/meutraa/timbre/internal/game"

// AddCountObserver registers f to be called whenever the right or total
// count changes, including the reset of a new game.
func (c *Controller) AddCountObserver(f func(Counter)) {
	c.countObservers = append(c.countObservers, f)
}

func (c *Controller) OnNextExercise(f func(game.Exercise)) {
	c.nextExerciseObserver = f
}

func (c *Controller) OnGameOver(f func()) {
	c.gameOverObserver = f
}

func (c *Controller) countChanged() {
	for _, f := range c.countObservers {
		f(c)
	}
}

func (c *Controller) RightCount() int {
	if nil == c.state {
		return 0
	}
	return c.state.RightCount
}

func (c *Controller) TotalCount() int {
	if nil == c.state {
		return 0
	}
	return c.state.TotalCount
}
