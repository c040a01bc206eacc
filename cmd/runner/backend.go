package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/usmanser71/runner-game-pro/internal/audio"
	"github.com/usmanser71/runner-game-pro/internal/config"
	"github.com/usmanser71/runner-game-pro/internal/runner"
	"github.com/usmanser71/runner-game-pro/internal/session"
	"github.com/usmanser71/runner-game-pro/internal/storage"
)

var (
	flagStore  string
	flagPlayer string
)

// addProfileFlags registers the flags that pick where the profile lives.
func addProfileFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagStore, "store", "sqlite", "Profile backend: sqlite or savedata")
	cmd.Flags().StringVar(&flagPlayer, "player", storage.LocalPlayer, "Profile name in the sqlite database")
}

// backend is an opened profile store plus the optional run history.
type backend struct {
	profile session.ProfileStore
	runs    session.RunRecorder
	db      *storage.Store // nil when the database could not be opened
}

// openBackend opens the profile store chosen by --store. Run history
// always lives in sqlite; with the savedata backend it is optional.
func openBackend(logger *log.Logger) (*backend, error) {
	b := &backend{}

	db, dbErr := storage.Open(flagDBPath)
	if dbErr == nil {
		b.db = db
	}

	switch flagStore {
	case "sqlite":
		if dbErr != nil {
			return nil, dbErr
		}
		p := db.Profile(flagPlayer)
		b.profile, b.runs = p, p

	case "savedata":
		sd, err := storage.OpenSaveData(storage.DefaultAppName)
		if err != nil {
			b.Close()
			return nil, err
		}
		b.profile = sd
		if dbErr != nil {
			logger.Warn("run history disabled", "error", dbErr)
		} else {
			b.runs = db.Profile(flagPlayer)
		}

	default:
		b.Close()
		return nil, fmt.Errorf("unknown profile store %q (use sqlite or savedata)", flagStore)
	}
	return b, nil
}

// Close releases the database.
func (b *backend) Close() {
	if b.db != nil {
		b.db.Close()
	}
}

// newHost creates a session host on the backend.
func (b *backend) newHost(cfg config.Runner, sound audio.Player, logger *log.Logger) (*session.Host, error) {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return session.New(cfg, session.Options{
		Store:  b.profile,
		Runs:   b.runs,
		Sound:  sound,
		Logger: logger,
		Source: runner.NewSource(seed),
	})
}
