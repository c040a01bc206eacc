package core

import (
	"testing"
	"time"
)

func TestClassifySwipe(t *testing.T) {
	tests := []struct {
		name     string
		dx, dy   float64
		dt       time.Duration
		expected Action
	}{
		{"quick swipe up", 2, -60, 120 * time.Millisecond, ActionJump},
		{"quick swipe down", -5, 45, 200 * time.Millisecond, ActionSlide},
		{"tap", 0, 0, 80 * time.Millisecond, ActionJump},
		{"slow drag down is a tap", 0, 80, 400 * time.Millisecond, ActionJump},
		{"short drag down is a tap", 0, 30, 100 * time.Millisecond, ActionJump},
		{"horizontal swipe is a tap", 90, 40, 100 * time.Millisecond, ActionJump},
		{"diagonal with equal travel is a tap", 50, 50, 100 * time.Millisecond, ActionJump},
		{"just under duration limit", 0, 31, 399 * time.Millisecond, ActionSlide},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifySwipe(tc.dx, tc.dy, tc.dt)
			if got != tc.expected {
				t.Errorf("ClassifySwipe(%v, %v, %v) = %v, expected %v", tc.dx, tc.dy, tc.dt, got, tc.expected)
			}
		})
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionJump) {
		t.Error("new frame should be empty")
	}

	f.Set(ActionJump)
	f.Set(ActionSlide)
	if !f.Has(ActionJump) || !f.Has(ActionSlide) {
		t.Error("Set actions should be reported by Has")
	}

	f.Clear()
	if f.Has(ActionJump) || f.Has(ActionSlide) {
		t.Error("Clear should remove all actions")
	}

	var zero InputFrame
	if zero.Has(ActionPause) {
		t.Error("zero frame should report no actions")
	}
	zero.Set(ActionPause)
	if !zero.Has(ActionPause) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionSlide.String() != "Slide" {
		t.Errorf("ActionSlide.String() = %q, expected Slide", ActionSlide.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
