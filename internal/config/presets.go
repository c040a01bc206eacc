package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// presetScale holds the multipliers a preset applies to the base config.
type presetScale struct {
	speed float64 // initial scroll speed
	ramp  float64 // speed step per ramp period
	spawn float64 // spawn interval bounds (smaller is denser)
}

var presetScales = map[DifficultyPreset]presetScale{
	DifficultyEasy:   {speed: 0.8, ramp: 0.5, spawn: 1.25},
	DifficultyNormal: {speed: 1.0, ramp: 1.0, spawn: 1.0},
	DifficultyHard:   {speed: 1.25, ramp: 1.5, spawn: 0.8},
}

// ParsePreset converts a CLI string into a preset. Empty means "use the config as is".
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return "", nil
	}
	p := DifficultyPreset(s)
	if _, ok := presetScales[p]; !ok {
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
	return p, nil
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
// Unknown or empty presets leave the config untouched.
func ApplyRunnerPreset(cfg *Runner, preset DifficultyPreset) {
	scale, ok := presetScales[preset]
	if !ok {
		return
	}
	cfg.Physics.InitialSpeed *= scale.speed
	cfg.Scoring.SpeedStep *= scale.ramp
	cfg.Obstacles.SpawnMinMS = int(float64(cfg.Obstacles.SpawnMinMS) * scale.spawn)
	cfg.Obstacles.SpawnMaxMS = int(float64(cfg.Obstacles.SpawnMaxMS) * scale.spawn)
}
