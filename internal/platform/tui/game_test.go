package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/usmanser71/runner-game-pro/internal/config"
	"github.com/usmanser71/runner-game-pro/internal/core"
	"github.com/usmanser71/runner-game-pro/internal/runner"
	"github.com/usmanser71/runner-game-pro/internal/session"
	"github.com/usmanser71/runner-game-pro/internal/shop"
	"github.com/usmanser71/runner-game-pro/internal/storage"
)

var testScreen = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}

func newTestHost(t *testing.T, p runner.Profile) *session.Host {
	t.Helper()
	h, err := session.New(config.DefaultRunner(), session.Options{
		Store:  storage.NewMemory(p),
		Source: runner.NewSource(1),
	})
	if err != nil {
		t.Fatalf("session.New() failed: %v", err)
	}
	return h
}

func newTestGame(t *testing.T, host *session.Host) GameModel {
	t.Helper()
	g, err := NewGameModel(host, shop.NewCatalog(config.DefaultRunner().Shop), testScreen)
	if err != nil {
		t.Fatalf("NewGameModel() failed: %v", err)
	}
	return g
}

func stepGame(t *testing.T, g GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := g.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected GameModel", next)
	}
	return gm
}

func TestGameStartsRun(t *testing.T) {
	host := newTestHost(t, runner.Profile{})
	g := newTestGame(t, host)

	if host.State() != runner.StateRunning {
		t.Errorf("State() = %v, expected Running", host.State())
	}
	if g.screen.Height() != testScreen.ScreenH-chromeRows {
		t.Errorf("playfield height = %d, expected %d", g.screen.Height(), testScreen.ScreenH-chromeRows)
	}
	if !strings.Contains(g.View(), "Score 0") {
		t.Error("HUD should show the score")
	}
}

func TestGameKeyJumpAppliesOnTick(t *testing.T) {
	host := newTestHost(t, runner.Profile{})
	g := newTestGame(t, host)

	g = stepGame(t, g, tea.KeyMsg{Type: tea.KeySpace})
	if !host.Snapshot().OnGround {
		t.Fatal("jump should wait for the next tick")
	}

	t0 := time.Unix(1000, 0)
	g = stepGame(t, g, TickMsg(t0))
	g = stepGame(t, g, TickMsg(t0.Add(16*time.Millisecond)))
	if host.Snapshot().OnGround {
		t.Error("player should be airborne after a jump tick")
	}
	_ = g
}

func TestGameSwipeDownSlides(t *testing.T) {
	host := newTestHost(t, runner.Profile{})
	g := newTestGame(t, host)
	now := time.Unix(1000, 0)
	g.now = func() time.Time { return now }

	g = stepGame(t, g, tea.MouseMsg{X: 10, Y: 8, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	now = now.Add(100 * time.Millisecond)
	g = stepGame(t, g, tea.MouseMsg{X: 10, Y: 12, Action: tea.MouseActionRelease})
	g = stepGame(t, g, TickMsg(now))

	if !host.Snapshot().Sliding {
		t.Error("a quick downward swipe should slide")
	}
}

func TestGamePauseAndBack(t *testing.T) {
	host := newTestHost(t, runner.Profile{})
	g := newTestGame(t, host)

	g = stepGame(t, g, tea.KeyMsg{Type: tea.KeyEsc})
	if host.State() != runner.StatePaused {
		t.Fatalf("esc while running should pause, state = %v", host.State())
	}
	if g.BackToMenu() {
		t.Fatal("esc while running should not leave the game")
	}
	if !strings.Contains(g.View(), "PAUSED") {
		t.Error("paused view should show the pause overlay")
	}

	g = stepGame(t, g, tea.KeyMsg{Type: tea.KeyEsc})
	if !g.BackToMenu() {
		t.Error("esc while paused should go back to the menu")
	}
}

func TestGameOverRestartAndShop(t *testing.T) {
	host := newTestHost(t, runner.Profile{})
	g := newTestGame(t, host)

	t0 := time.Unix(1000, 0)
	for i := 0; i < 2000 && host.State() == runner.StateRunning; i++ {
		g = stepGame(t, g, TickMsg(t0.Add(time.Duration(i)*16*time.Millisecond)))
	}
	if host.State() != runner.StateOver {
		t.Fatalf("idle player should crash, state = %v", host.State())
	}
	if !strings.Contains(g.View(), "GAME OVER") {
		t.Error("game over view should show the overlay")
	}

	g = stepGame(t, g, tea.KeyMsg{Type: tea.KeyTab})
	if !g.WantsShop() {
		t.Error("tab after game over should ask for the shop")
	}

	g = stepGame(t, g, runeKey("r"))
	g = stepGame(t, g, TickMsg(t0.Add(time.Hour)))
	if host.State() != runner.StateRunning {
		t.Errorf("r after game over should restart, state = %v", host.State())
	}
	if host.Session().Score != 0 {
		t.Errorf("Score = %d after restart, expected 0", host.Session().Score)
	}
}

func TestGameQuit(t *testing.T) {
	g := newTestGame(t, newTestHost(t, runner.Profile{}))
	g = stepGame(t, g, runeKey("q"))
	if !g.IsQuitting() || g.View() != "" {
		t.Error("q should quit and blank the view")
	}
}
