package config

import (
	"errors"
	"fmt"
	"math"
)

// FieldError describes a single invalid configuration value.
type FieldError struct {
	Field  string // yaml path, e.g. "physics.gravity"
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("config: %s %s", e.Field, e.Reason)
}

// Validate checks that every tunable is present and well-formed.
// All problems are reported at once, joined with errors.Join.
func (r Runner) Validate() error {
	var errs []error
	bad := func(field, reason string) {
		errs = append(errs, &FieldError{Field: field, Reason: reason})
	}
	// finite rejects NaN and infinities.
	finite := func(field string, v float64) bool {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			bad(field, "must be a finite number")
			return false
		}
		return true
	}
	positive := func(field string, v float64) {
		if finite(field, v) && v <= 0 {
			bad(field, "must be positive")
		}
	}

	positive("world.width", r.World.Width)
	positive("world.height", r.World.Height)
	positive("world.ground_y", r.World.GroundY)
	if r.World.GroundY > r.World.Height {
		bad("world.ground_y", "must not be below the world height")
	}

	positive("physics.gravity", r.Physics.Gravity)
	if finite("physics.jump_impulse", r.Physics.JumpImpulse) && r.Physics.JumpImpulse >= 0 {
		bad("physics.jump_impulse", "must be negative (upward)")
	}
	positive("physics.initial_speed", r.Physics.InitialSpeed)

	if finite("player.x", r.Player.X) && r.Player.X < 0 {
		bad("player.x", "must not be negative")
	}
	positive("player.width", r.Player.Width)
	positive("player.height", r.Player.Height)
	if r.Player.Height >= r.World.GroundY {
		bad("player.height", "must fit above the ground")
	}
	positive("player.slide_ms", float64(r.Player.SlideMS))
	switch {
	case !finite("player.slide_scale", r.Player.SlideScale):
	case r.Player.SlideScale <= 0 || r.Player.SlideScale >= 1:
		bad("player.slide_scale", "must be between 0 and 1 (exclusive)")
	}

	positive("obstacles.width", r.Obstacles.Width)
	positive("obstacles.min_height", r.Obstacles.MinHeight)
	switch {
	case !finite("obstacles.max_height", r.Obstacles.MaxHeight):
	case r.Obstacles.MaxHeight < r.Obstacles.MinHeight:
		bad("obstacles.max_height", "must not be less than min_height")
	case r.Obstacles.MaxHeight > r.World.GroundY:
		bad("obstacles.max_height", "must fit above the ground")
	}
	positive("obstacles.spawn_min_ms", float64(r.Obstacles.SpawnMinMS))
	if r.Obstacles.SpawnMaxMS < r.Obstacles.SpawnMinMS {
		bad("obstacles.spawn_max_ms", "must not be less than spawn_min_ms")
	}
	if finite("obstacles.spawn_margin", r.Obstacles.SpawnMargin) && r.Obstacles.SpawnMargin < 0 {
		bad("obstacles.spawn_margin", "must not be negative")
	}

	positive("coins.size", r.Coins.Size)
	switch {
	case !finite("coins.spawn_chance", r.Coins.SpawnChance):
	case r.Coins.SpawnChance <= 0 || r.Coins.SpawnChance > 1:
		bad("coins.spawn_chance", "must be in (0, 1]")
	}
	if r.Coins.MinY < 0 {
		bad("coins.min_y", "must not be negative")
	}
	if r.Coins.MaxY < r.Coins.MinY {
		bad("coins.max_y", "must not be less than min_y")
	}
	if float64(r.Coins.MaxY)+r.Coins.Size > r.World.GroundY {
		bad("coins.max_y", "must keep coins above the ground")
	}
	positive("coins.value", float64(r.Coins.Value))
	positive("coins.score_bonus", float64(r.Coins.ScoreBonus))

	positive("scoring.score_period_ms", float64(r.Scoring.ScorePeriodMS))
	positive("scoring.ramp_period_ms", float64(r.Scoring.RampPeriodMS))
	positive("scoring.speed_step", r.Scoring.SpeedStep)
	switch {
	case !finite("scoring.max_speed", r.Scoring.MaxSpeed):
	case r.Scoring.MaxSpeed < 0:
		bad("scoring.max_speed", "must not be negative")
	case r.Scoring.MaxSpeed > 0 && r.Scoring.MaxSpeed < r.Physics.InitialSpeed:
		bad("scoring.max_speed", "must be 0 (uncapped) or at least initial_speed")
	}

	if r.Shop.DefaultSkin == "" {
		bad("shop.default_skin", "is required")
	}
	seen := make(map[string]bool, len(r.Shop.Items))
	for i, item := range r.Shop.Items {
		field := fmt.Sprintf("shop.items[%d]", i)
		if item.ID == "" {
			bad(field+".id", "is required")
		} else if seen[item.ID] || item.ID == r.Shop.DefaultSkin {
			bad(field+".id", fmt.Sprintf("%q is duplicated", item.ID))
		}
		seen[item.ID] = true
		if item.Price < 0 {
			bad(field+".price", "must not be negative")
		}
	}

	return errors.Join(errs...)
}
