package runner

import (
	"context"
	"time"

	"github.com/usmanser71/runner-game-pro/internal/config"
	"github.com/usmanser71/runner-game-pro/internal/core"
)

// Autopilot plays the game without a human. It times each jump so the
// apex lands over the nearest obstacle ahead.
type Autopilot struct {
	cfg config.Runner
}

// NewAutopilot creates an autopilot tuned to cfg.
func NewAutopilot(cfg config.Runner) Autopilot {
	return Autopilot{cfg: cfg}
}

// Decide returns ActionJump when it is time to jump, ActionNone otherwise.
func (a Autopilot) Decide(rs RenderState) core.Action {
	if rs.State != StateRunning || !rs.OnGround {
		return core.ActionNone
	}

	px, _ := rs.Player.Center()
	apex := -a.cfg.Physics.JumpImpulse / a.cfg.Physics.Gravity // seconds to the top of a jump
	lead := rs.Speed * apex

	for _, o := range rs.Obstacles {
		if o.Right() < rs.Player.X {
			continue // already behind
		}
		ox, _ := o.Center()
		if ox-px <= lead {
			return core.ActionJump
		}
		break // obstacles are ordered by spawn time, so the first ahead is nearest
	}
	return core.ActionNone
}

// Summary is the outcome of a headless run.
type Summary struct {
	Seed    int64
	Score   int
	Coins   int
	Ticks   int
	Elapsed time.Duration
	Crashed bool
}

// RunHeadless plays one run with the autopilot at a fixed step until the
// player crashes, maxTicks is reached or ctx is cancelled.
func RunHeadless(ctx context.Context, cfg config.Runner, seed int64, maxTicks int, dt time.Duration) (Summary, error) {
	loop := New(NewSource(seed), Profile{})
	if _, err := loop.Start(cfg); err != nil {
		return Summary{}, err
	}
	pilot := NewAutopilot(cfg)

	sum := Summary{Seed: seed}
	for sum.Ticks < maxTicks {
		if sum.Ticks%256 == 0 {
			if err := ctx.Err(); err != nil {
				return sum, err
			}
		}
		if pilot.Decide(loop.Snapshot()) == core.ActionJump {
			loop.Jump()
		}
		res := loop.Tick(dt)
		sum.Ticks++
		if res.State == StateOver {
			sum.Crashed = true
			break
		}
	}

	s := loop.Session()
	sum.Score = s.Score
	sum.Coins = s.CoinsEarned
	sum.Elapsed = s.Elapsed
	return sum, nil
}
