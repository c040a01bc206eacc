package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultSkin is the skin every new profile starts with.
const DefaultSkin = "player_default"

// DefaultRunner returns the default runner configuration.
// It mirrors defaults/runner.yaml and is used when the embedded file cannot be parsed.
func DefaultRunner() Runner {
	return Runner{
		World: World{
			Width:   900,
			Height:  500,
			GroundY: 460,
		},
		Physics: Physics{
			Gravity:      1400,
			JumpImpulse:  -520,
			InitialSpeed: 320,
		},
		Player: Player{
			X:          120,
			Width:      40,
			Height:     68,
			SlideMS:    420,
			SlideScale: 0.6,
		},
		Obstacles: Obstacles{
			Width:       40,
			MinHeight:   40,
			MaxHeight:   100,
			SpawnMinMS:  1000,
			SpawnMaxMS:  1400,
			SpawnMargin: 60,
		},
		Coins: Coins{
			Size:        24,
			SpawnChance: 0.6,
			MinY:        268,
			MaxY:        348,
			Value:       5,
			ScoreBonus:  25,
		},
		Scoring: Scoring{
			ScorePeriodMS: 200,
			RampPeriodMS:  2000,
			SpeedStep:     8,
			MaxSpeed:      0,
		},
		Shop: Shop{
			DefaultSkin:  DefaultSkin,
			DefaultColor: "#ffffff",
			Items: []ShopItem{
				{ID: "skin_blue", Name: "Neon Blue", Color: "#7c3aed", Price: 30},
				{ID: "skin_cyan", Name: "Cyber Cyan", Color: "#06b6d4", Price: 60},
				{ID: "skin_gold", Name: "Gold", Color: "#ffd166", Price: 120},
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
