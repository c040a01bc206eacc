package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var embedded Runner
	if err := yaml.Unmarshal(DefaultYAML(), &embedded); err != nil {
		t.Fatalf("embedded runner.yaml does not parse: %v", err)
	}

	if !reflect.DeepEqual(embedded, DefaultRunner()) {
		t.Errorf("embedded defaults differ from DefaultRunner():\nembedded: %+v\ndefault:  %+v", embedded, DefaultRunner())
	}
}

func TestDefaultRunnerIsValid(t *testing.T) {
	if err := DefaultRunner().Validate(); err != nil {
		t.Errorf("DefaultRunner().Validate() = %v, expected nil", err)
	}
}

func TestLoadRunnerCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	data := []byte("physics:\n  gravity: 2000\nscoring:\n  speed_step: 12\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}

	if cfg.Physics.Gravity != 2000 {
		t.Errorf("Gravity = %v, expected 2000", cfg.Physics.Gravity)
	}
	if cfg.Scoring.SpeedStep != 12 {
		t.Errorf("SpeedStep = %v, expected 12", cfg.Scoring.SpeedStep)
	}
	// Untouched keys keep their defaults
	if cfg.Physics.JumpImpulse != -520 {
		t.Errorf("JumpImpulse = %v, expected default -520", cfg.Physics.JumpImpulse)
	}
	if len(cfg.Shop.Items) != 3 {
		t.Errorf("Shop items = %d, expected 3 defaults", len(cfg.Shop.Items))
	}
}

func TestLoadRunnerCustomPathErrors(t *testing.T) {
	if _, err := LoadRunner(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadRunner() with missing file should fail")
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("physics: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRunner(path); err == nil {
		t.Error("LoadRunner() with broken YAML should fail")
	}
}

func TestLoadRunnerFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadRunner("")
	if err != nil {
		t.Fatalf("LoadRunner(\"\") failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultRunner()) {
		t.Errorf("LoadRunner(\"\") = %+v, expected defaults", cfg)
	}
}

func TestLoadRunnerPrefersLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "runner.yaml"), []byte("coins:\n  value: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner("")
	if err != nil {
		t.Fatalf("LoadRunner(\"\") failed: %v", err)
	}
	if cfg.Coins.Value != 9 {
		t.Errorf("Coins.Value = %d, expected 9 from ./configs/runner.yaml", cfg.Coins.Value)
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultRunner()
	cfg.Physics.Gravity = 0
	cfg.Physics.JumpImpulse = 520
	cfg.Player.SlideScale = 1.5
	cfg.Obstacles.SpawnMaxMS = 10
	cfg.Coins.SpawnChance = 0
	cfg.Physics.InitialSpeed = math.Inf(1)
	cfg.Shop.Items = append(cfg.Shop.Items, ShopItem{ID: "skin_blue", Price: -1})

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}

	wantFields := []string{
		"physics.gravity",
		"physics.jump_impulse",
		"player.slide_scale",
		"obstacles.spawn_max_ms",
		"coins.spawn_chance",
		"physics.initial_speed",
		"shop.items[3].id",
		"shop.items[3].price",
	}
	for _, field := range wantFields {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("Validate() error should mention %s, got: %v", field, err)
		}
	}

	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Error("Validate() error should unwrap to *FieldError")
	}
}

func TestValidateRejectsNonFinite(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)

	tests := []struct {
		field string
		set   func(r *Runner)
	}{
		{"world.width", func(r *Runner) { r.World.Width = inf }},
		{"world.ground_y", func(r *Runner) { r.World.GroundY = nan }},
		{"physics.gravity", func(r *Runner) { r.Physics.Gravity = nan }},
		{"physics.jump_impulse", func(r *Runner) { r.Physics.JumpImpulse = -inf }},
		{"physics.initial_speed", func(r *Runner) { r.Physics.InitialSpeed = inf }},
		{"player.x", func(r *Runner) { r.Player.X = nan }},
		{"player.slide_scale", func(r *Runner) { r.Player.SlideScale = nan }},
		{"obstacles.max_height", func(r *Runner) { r.Obstacles.MaxHeight = nan }},
		{"obstacles.spawn_margin", func(r *Runner) { r.Obstacles.SpawnMargin = inf }},
		{"coins.size", func(r *Runner) { r.Coins.Size = nan }},
		{"coins.spawn_chance", func(r *Runner) { r.Coins.SpawnChance = nan }},
		{"scoring.speed_step", func(r *Runner) { r.Scoring.SpeedStep = inf }},
		{"scoring.max_speed", func(r *Runner) { r.Scoring.MaxSpeed = inf }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			cfg := DefaultRunner()
			tt.set(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatalf("Validate() = nil, expected an error for %s", tt.field)
			}
			want := tt.field + " must be a finite number"
			if !strings.Contains(err.Error(), want) {
				t.Errorf("Validate() error = %v, expected it to contain %q", err, want)
			}
		})
	}
}

func TestValidateZeroValue(t *testing.T) {
	if err := (Runner{}).Validate(); err == nil {
		t.Error("zero Runner should not validate")
	}
}

func TestValidateMaxSpeed(t *testing.T) {
	cfg := DefaultRunner()
	cfg.Scoring.MaxSpeed = cfg.Physics.InitialSpeed - 1
	if err := cfg.Validate(); err == nil {
		t.Error("max_speed below initial_speed should be rejected")
	}

	cfg.Scoring.MaxSpeed = cfg.Physics.InitialSpeed * 2
	if err := cfg.Validate(); err != nil {
		t.Errorf("max_speed above initial_speed should be accepted, got %v", err)
	}
}

func TestDurations(t *testing.T) {
	cfg := DefaultRunner()

	if d := cfg.Player.SlideDuration(); d != 420*time.Millisecond {
		t.Errorf("SlideDuration() = %v, expected 420ms", d)
	}
	lo, hi := cfg.Obstacles.SpawnInterval()
	if lo != time.Second || hi != 1400*time.Millisecond {
		t.Errorf("SpawnInterval() = (%v, %v), expected (1s, 1.4s)", lo, hi)
	}
	if cfg.Scoring.ScorePeriod() != 200*time.Millisecond {
		t.Errorf("ScorePeriod() = %v, expected 200ms", cfg.Scoring.ScorePeriod())
	}
	if cfg.Scoring.RampPeriod() != 2*time.Second {
		t.Errorf("RampPeriod() = %v, expected 2s", cfg.Scoring.RampPeriod())
	}
	if cfg.SpawnX() != 960 {
		t.Errorf("SpawnX() = %v, expected 960", cfg.SpawnX())
	}
}

func TestApplyRunnerPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		speed     float64
		speedStep float64
		spawnMin  int
	}{
		{DifficultyEasy, 256, 4, 1250},
		{DifficultyNormal, 320, 8, 1000},
		{DifficultyHard, 400, 12, 800},
		{"", 320, 8, 1000},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultRunner()
			ApplyRunnerPreset(&cfg, tc.preset)

			if cfg.Physics.InitialSpeed != tc.speed {
				t.Errorf("InitialSpeed = %v, expected %v", cfg.Physics.InitialSpeed, tc.speed)
			}
			if cfg.Scoring.SpeedStep != tc.speedStep {
				t.Errorf("SpeedStep = %v, expected %v", cfg.Scoring.SpeedStep, tc.speedStep)
			}
			if cfg.Obstacles.SpawnMinMS != tc.spawnMin {
				t.Errorf("SpawnMinMS = %d, expected %d", cfg.Obstacles.SpawnMinMS, tc.spawnMin)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset %q produced invalid config: %v", tc.preset, err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = (%q, %v), expected (hard, nil)", p, err)
	}
	if p, err := ParsePreset(""); err != nil || p != "" {
		t.Errorf("ParsePreset(\"\") = (%q, %v), expected (\"\", nil)", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(nightmare) should fail")
	}
}
