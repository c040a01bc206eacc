package tui

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// counterDuration is how long the HUD takes to roll up to a new score.
const counterDuration = 0.25 // seconds

// scoreCounter eases the displayed HUD score toward the real one.
type scoreCounter struct {
	tween  *gween.Tween
	target int
	shown  float32
}

// Set starts rolling toward v from the currently displayed value.
func (c *scoreCounter) Set(v int) {
	if v == c.target {
		return
	}
	c.target = v
	c.tween = gween.New(c.shown, float32(v), counterDuration, ease.OutCubic)
}

// Reset jumps straight to v.
func (c *scoreCounter) Reset(v int) {
	c.tween = nil
	c.target = v
	c.shown = float32(v)
}

// Update advances the tween by dt.
func (c *scoreCounter) Update(dt time.Duration) {
	if c.tween == nil {
		return
	}
	cur, done := c.tween.Update(float32(dt.Seconds()))
	c.shown = cur
	if done {
		c.tween = nil
		c.shown = float32(c.target)
	}
}

// Value returns the score to display.
func (c *scoreCounter) Value() int {
	return int(math.Round(float64(c.shown)))
}
