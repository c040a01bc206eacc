package runner

import (
	"time"

	"github.com/usmanser71/runner-game-pro/internal/core"
)

// RenderState is everything a renderer needs to draw one frame.
// It holds copies, so it stays valid after further ticks.
type RenderState struct {
	Player    core.Rect
	Obstacles []core.Rect
	Coins     []core.Rect

	Score      int
	Speed      float64
	TotalCoins int
	Best       int
	Skin       string
	Elapsed    time.Duration

	State    State
	OnGround bool
	Sliding  bool
}

// Snapshot captures the current state for rendering.
func (l *Loop) Snapshot() RenderState {
	rs := RenderState{
		Player:     l.player.Rect(),
		Obstacles:  make([]core.Rect, 0, len(l.obstacles)),
		Coins:      make([]core.Rect, 0, len(l.coins)),
		Score:      l.score,
		Speed:      l.speed,
		TotalCoins: l.profile.TotalCoins,
		Best:       l.profile.BestScore,
		Skin:       l.profile.SkinID,
		Elapsed:    l.elapsed,
		State:      l.state,
		OnGround:   l.player.OnGround,
		Sliding:    l.player.Sliding,
	}
	for _, o := range l.obstacles {
		rs.Obstacles = append(rs.Obstacles, o.Rect())
	}
	for _, c := range l.coins {
		rs.Coins = append(rs.Coins, c.Rect())
	}
	return rs
}
