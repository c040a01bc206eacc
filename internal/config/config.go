// Package config provides YAML-based game configuration loading,
// validation and difficulty presets for the runner.
package config

import "time"

// Runner contains all configuration for the endless runner.
type Runner struct {
	World     World     `yaml:"world"`
	Physics   Physics   `yaml:"physics"`
	Player    Player    `yaml:"player"`
	Obstacles Obstacles `yaml:"obstacles"`
	Coins     Coins     `yaml:"coins"`
	Scoring   Scoring   `yaml:"scoring"`
	Shop      Shop      `yaml:"shop"`
}

// World defines the playfield in world pixels. The origin is the top-left
// corner and Y grows downward.
type World struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	GroundY float64 `yaml:"ground_y"` // Y of the ground surface
}

// Physics defines the kinematic constants.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`       // px/s², applied while airborne
	JumpImpulse  float64 `yaml:"jump_impulse"`  // px/s, negative is up
	InitialSpeed float64 `yaml:"initial_speed"` // px/s scroll speed at run start
}

// Player defines the player's box and slide behaviour.
type Player struct {
	X          float64 `yaml:"x"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	SlideMS    int     `yaml:"slide_ms"`
	SlideScale float64 `yaml:"slide_scale"` // Height factor while sliding, in (0, 1)
}

// Obstacles defines obstacle size and spawn timing.
type Obstacles struct {
	Width       float64 `yaml:"width"`
	MinHeight   float64 `yaml:"min_height"`
	MaxHeight   float64 `yaml:"max_height"`
	SpawnMinMS  int     `yaml:"spawn_min_ms"`
	SpawnMaxMS  int     `yaml:"spawn_max_ms"`
	SpawnMargin float64 `yaml:"spawn_margin"` // Distance right of the world edge where entities appear
}

// Coins defines collectible placement and value.
type Coins struct {
	Size        float64 `yaml:"size"`
	SpawnChance float64 `yaml:"spawn_chance"` // Probability per obstacle spawn, in (0, 1]
	MinY        int     `yaml:"min_y"`        // Vertical band for the coin's top edge
	MaxY        int     `yaml:"max_y"`
	Value       int     `yaml:"value"`       // Coins awarded per pickup
	ScoreBonus  int     `yaml:"score_bonus"` // Score awarded per pickup
}

// Scoring defines the score clock and the speed ramp.
type Scoring struct {
	ScorePeriodMS int     `yaml:"score_period_ms"`
	RampPeriodMS  int     `yaml:"ramp_period_ms"`
	SpeedStep     float64 `yaml:"speed_step"`
	MaxSpeed      float64 `yaml:"max_speed"` // 0 means uncapped
}

// Shop lists purchasable cosmetic skins.
type Shop struct {
	DefaultSkin  string     `yaml:"default_skin"`
	DefaultColor string     `yaml:"default_color"`
	Items        []ShopItem `yaml:"items"`
}

// ShopItem is a single skin in the shop.
type ShopItem struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
	Price int    `yaml:"price"`
}

// SlideDuration returns how long a slide lasts.
func (p Player) SlideDuration() time.Duration {
	return time.Duration(p.SlideMS) * time.Millisecond
}

// SpawnInterval returns the bounds of the randomized spawn threshold.
func (o Obstacles) SpawnInterval() (min, max time.Duration) {
	return time.Duration(o.SpawnMinMS) * time.Millisecond, time.Duration(o.SpawnMaxMS) * time.Millisecond
}

// ScorePeriod returns how often the score clock awards a point.
func (s Scoring) ScorePeriod() time.Duration {
	return time.Duration(s.ScorePeriodMS) * time.Millisecond
}

// RampPeriod returns how often the scroll speed increases.
func (s Scoring) RampPeriod() time.Duration {
	return time.Duration(s.RampPeriodMS) * time.Millisecond
}

// SpawnX returns the x-coordinate where new obstacles and coins appear.
func (r Runner) SpawnX() float64 {
	return r.World.Width + r.Obstacles.SpawnMargin
}
