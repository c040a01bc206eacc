package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/usmanser71/runner-game-pro/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{"space jumps", tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump, false},
		{"up jumps", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump, false},
		{"w jumps", runeKey("w"), core.ActionJump, false},
		{"down slides", tea.KeyMsg{Type: tea.KeyDown}, core.ActionSlide, false},
		{"s slides", runeKey("s"), core.ActionSlide, false},
		{"p pauses", runeKey("p"), core.ActionPause, false},
		{"r restarts", runeKey("r"), core.ActionRestart, false},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"tab opens shop", tea.KeyMsg{Type: tea.KeyTab}, core.ActionShop, false},
		{"q quits", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"x is ignored", runeKey("x"), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.expected || quit != tc.quit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tc.msg.String(), action, quit, tc.expected, tc.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey("q"), MenuActionQuit},
		{runeKey("z"), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}

func TestFrameDelta(t *testing.T) {
	t0 := time.Unix(1000, 0)

	tests := []struct {
		name     string
		prev     time.Time
		now      time.Time
		expected time.Duration
	}{
		{"first tick", time.Time{}, t0, 0},
		{"normal frame", t0, t0.Add(16 * time.Millisecond), 16 * time.Millisecond},
		{"clock went back", t0, t0.Add(-time.Second), 0},
		{"stall is capped", t0, t0.Add(3 * time.Second), maxFrameDelta},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := frameDelta(tc.prev, tc.now); got != tc.expected {
				t.Errorf("frameDelta() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestScoreCounter(t *testing.T) {
	c := &scoreCounter{}

	c.Set(100)
	c.Update(50 * time.Millisecond)
	if v := c.Value(); v <= 0 || v >= 100 {
		t.Errorf("Value() mid-tween = %d, expected between 0 and 100", v)
	}

	c.Update(time.Second)
	if c.Value() != 100 {
		t.Errorf("Value() after tween = %d, expected 100", c.Value())
	}

	c.Reset(0)
	if c.Value() != 0 {
		t.Errorf("Value() after Reset = %d, expected 0", c.Value())
	}
}
