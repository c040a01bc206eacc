package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/usmanser71/runner-game-pro/internal/audio"
	"github.com/usmanser71/runner-game-pro/internal/core"
	"github.com/usmanser71/runner-game-pro/internal/platform/tui"
	"github.com/usmanser71/runner-game-pro/internal/shop"
)

var (
	flagMute    bool
	flagVolume  float64
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively",
	Long: `Start the game with a menu, the skin shop and the high score list.

Controls:
  Space/Up/W   - Jump (or click / swipe up)
  Down/S       - Slide (or swipe down)
  P            - Pause
  R/Enter      - Restart after game over
  Tab          - Skin shop after game over
  Esc          - Pause, or back to menu when paused or over
  Q/Ctrl+C     - Quit

Examples:
  runner play
  runner play --difficulty easy
  runner play --store savedata
  runner play --config ./my-runner.yaml --log-file runner.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addProfileFlags(playCmd)
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 1.0, "Master volume (0-1)")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (logs are discarded otherwise)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadRunnerConfig()
	if err != nil {
		fail("%v", err)
	}

	// Logs must not reach the alt screen
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fail("cannot open log file: %v", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, "runner")

	b, err := openBackend(logger)
	if err != nil {
		fail("%v", err)
	}
	defer b.Close()

	var sound audio.Player = audio.Nop{}
	if !flagMute {
		beeper := audio.NewBeeper(flagVolume)
		if err := beeper.Initialize(); err != nil {
			logger.Warn("audio disabled", "error", err)
		} else {
			defer beeper.Close()
			sound = beeper
		}
	}

	host, err := b.newHost(cfg, sound, logger)
	if err != nil {
		fail("%v", err)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Host:    host,
		Catalog: shop.NewCatalog(cfg.Shop),
		Player:  flagPlayer,
		Config: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
		},
	}
	if b.db != nil {
		opts.History = b.db
	}

	if err := tui.Run(opts); err != nil {
		logger.Error("game ended with error", "error", err)
		b.Close()
		fail("%v", err)
	}
}
