package runner

import (
	"time"

	"github.com/solarlune/resolv"

	"github.com/usmanser71/runner-game-pro/internal/config"
	"github.com/usmanser71/runner-game-pro/internal/core"
)

// Player is the kinematic state of the runner.
// Y grows downward; the player rests on the ground when Y+H == groundY.
type Player struct {
	X, Y           float64
	VY             float64 // Vertical velocity in px/s, negative is up
	W, H           float64
	OnGround       bool
	Sliding        bool
	SlideRemaining time.Duration

	standH float64 // Height when not sliding
	body   *resolv.Object
}

// Rect returns the player's collision box.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Bottom returns the y-coordinate of the player's feet.
func (p Player) Bottom() float64 {
	return p.Y + p.H
}

// resetPlayer places a standing player on the ground.
func resetPlayer(cfg config.Runner) Player {
	return Player{
		X:        cfg.Player.X,
		Y:        cfg.World.GroundY - cfg.Player.Height,
		W:        cfg.Player.Width,
		H:        cfg.Player.Height,
		OnGround: true,
		standH:   cfg.Player.Height,
	}
}

// integrate applies gravity with semi-implicit Euler: velocity first,
// then position with the new velocity. A falling player that reaches the
// ground is clamped onto it.
func (p *Player) integrate(gravity, groundY, secs float64) {
	if p.OnGround {
		return
	}
	p.VY += gravity * secs
	p.Y += p.VY * secs
	if p.VY >= 0 && p.Bottom() >= groundY {
		p.Y = groundY - p.H
		p.VY = 0
		p.OnGround = true
	}
}

// jump starts a jump from the ground. Airborne calls are ignored.
func (p *Player) jump(impulse float64) bool {
	if !p.OnGround {
		return false
	}
	p.VY = impulse
	p.OnGround = false
	return true
}

// startSlide shrinks the box from the top so the feet stay where they are.
func (p *Player) startSlide(scale float64, d time.Duration) bool {
	if p.Sliding {
		return false
	}
	slid := p.standH * scale
	p.Y += p.standH - slid
	p.H = slid
	p.Sliding = true
	p.SlideRemaining = d
	return true
}

// updateSlide counts the slide down and restores the standing box once.
func (p *Player) updateSlide(dt time.Duration) {
	if !p.Sliding {
		return
	}
	p.SlideRemaining -= dt
	if p.SlideRemaining > 0 {
		return
	}
	p.Y -= p.standH - p.H
	p.H = p.standH
	p.Sliding = false
	p.SlideRemaining = 0
}
