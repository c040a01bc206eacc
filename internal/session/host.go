// Package session hosts a runner.Loop: it loads the player's profile,
// drives the loop and applies its events to persistence, audio and
// run history. The loop itself never touches those collaborators.
package session

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/usmanser71/runner-game-pro/internal/audio"
	"github.com/usmanser71/runner-game-pro/internal/config"
	"github.com/usmanser71/runner-game-pro/internal/runner"
)

// ProfileStore persists the three profile values.
// Each save is called as soon as the value changes.
type ProfileStore interface {
	LoadProfile() (runner.Profile, error)
	SaveBestScore(score int) error
	SaveTotalCoins(coins int) error
	SaveSkin(skinID string) error
}

// RunRecorder keeps a history of finished runs.
type RunRecorder interface {
	SaveRun(score, coins int, d time.Duration) error
}

// Options configures a Host. Only Store is required.
type Options struct {
	Store  ProfileStore
	Runs   RunRecorder  // nil disables run history
	Sound  audio.Player // nil plays nothing
	Logger *log.Logger  // nil discards logs
	Source runner.Source
}

// Host owns a Loop and its collaborators for one player.
type Host struct {
	loop   *runner.Loop
	cfg    config.Runner
	store  ProfileStore
	runs   RunRecorder
	sound  audio.Player
	logger *log.Logger

	lastOver runner.GameOver
	err      error
}

// New loads the profile from opts.Store and creates a host around a fresh loop.
// A profile that cannot be loaded is reported and replaced by an empty one,
// so the game stays playable.
func New(cfg config.Runner, opts Options) (*Host, error) {
	if opts.Store == nil {
		return nil, errors.New("session: profile store is required")
	}
	if opts.Sound == nil {
		opts.Sound = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Source == nil {
		opts.Source = runner.NewSource(time.Now().UnixNano())
	}

	h := &Host{
		cfg:    cfg,
		store:  opts.Store,
		runs:   opts.Runs,
		sound:  opts.Sound,
		logger: opts.Logger,
	}

	profile, err := opts.Store.LoadProfile()
	if err != nil {
		h.fail("load profile", err)
		profile = runner.Profile{}
	}
	h.loop = runner.New(opts.Source, profile)
	h.logger.Debug("profile loaded", "best", profile.BestScore, "coins", profile.TotalCoins, "skin", profile.SkinID)

	return h, nil
}

// Start begins a run.
func (h *Host) Start() error {
	if _, err := h.loop.Start(h.cfg); err != nil {
		return err
	}
	h.lastOver = runner.GameOver{}
	h.logger.Debug("run started")
	return nil
}

// Tick advances the loop and applies its events.
func (h *Host) Tick(dt time.Duration) runner.StepResult {
	res := h.loop.Tick(dt)
	h.Apply(res.Events)
	return res
}

// Jump forwards the intent to the loop.
func (h *Host) Jump() bool {
	ok := h.loop.Jump()
	h.Apply(h.loop.Events())
	return ok
}

// Slide forwards the intent to the loop.
func (h *Host) Slide() bool {
	return h.loop.Slide()
}

// TogglePause pauses or resumes the run.
func (h *Host) TogglePause() {
	h.loop.TogglePause()
}

// Purchase buys and equips a skin, persisting the new balance and skin.
func (h *Host) Purchase(skinID string, cost int) error {
	err := h.loop.PurchaseSkin(skinID, cost)
	h.Apply(h.loop.Events())
	return err
}

// Apply hands each event to the collaborators that care about it.
func (h *Host) Apply(events []runner.Event) {
	for _, e := range events {
		switch ev := e.(type) {
		case runner.Jumped:
			h.sound.Play(audio.CueJump)

		case runner.CoinCollected:
			h.sound.Play(audio.CueCoin)
			h.save("save coins", h.store.SaveTotalCoins(ev.TotalCoins))

		case runner.SkinEquipped:
			h.save("save coins", h.store.SaveTotalCoins(ev.TotalCoins))
			h.save("save skin", h.store.SaveSkin(ev.SkinID))
			h.logger.Info("skin equipped", "skin", ev.SkinID, "cost", ev.Cost, "coins", ev.TotalCoins)

		case runner.GameOver:
			h.lastOver = ev
			h.sound.Play(audio.CueHit)
			if ev.NewBest {
				h.save("save best score", h.store.SaveBestScore(ev.Best))
			}
			h.recordRun(ev)
			h.logger.Info("game over", "score", ev.FinalScore, "best", ev.Best, "new_best", ev.NewBest)

		case runner.ScoreChanged:
			// The HUD reads the score from snapshots.
		}
	}
}

func (h *Host) recordRun(ev runner.GameOver) {
	if h.runs == nil || ev.FinalScore <= 0 {
		return
	}
	s := h.loop.Session()
	h.save("record run", h.runs.SaveRun(ev.FinalScore, s.CoinsEarned, s.Elapsed))
}

func (h *Host) save(what string, err error) {
	if err != nil {
		h.fail(what, err)
	}
}

func (h *Host) fail(what string, err error) {
	h.err = fmt.Errorf("session: %s: %w", what, err)
	h.logger.Warn("persistence failed", "op", what, "error", err)
}

// Err returns the most recent persistence failure, or nil.
func (h *Host) Err() error {
	return h.err
}

// ClearErr forgets the last persistence failure.
func (h *Host) ClearErr() {
	h.err = nil
}

// LastGameOver returns the most recent GameOver event of the current run.
func (h *Host) LastGameOver() runner.GameOver {
	return h.lastOver
}

// Snapshot returns the loop's render state.
func (h *Host) Snapshot() runner.RenderState {
	return h.loop.Snapshot()
}

// Session returns the current run summary.
func (h *Host) Session() runner.RunSession {
	return h.loop.Session()
}

// Profile returns the in-memory profile.
func (h *Host) Profile() runner.Profile {
	return h.loop.Profile()
}

// Balance returns the player's coin balance.
func (h *Host) Balance() int {
	return h.loop.Profile().TotalCoins
}

// Equipped returns the id of the worn skin.
func (h *Host) Equipped() string {
	return h.loop.Profile().SkinID
}

// State returns the loop state.
func (h *Host) State() runner.State {
	return h.loop.State()
}

// Config returns the runner configuration the host starts runs with.
func (h *Host) Config() config.Runner {
	return h.cfg
}
