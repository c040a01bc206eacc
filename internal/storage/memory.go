package storage

import (
	"sync"

	"github.com/usmanser71/runner-game-pro/internal/config"
	"github.com/usmanser71/runner-game-pro/internal/runner"
)

// Memory is a profile store that lives only as long as the process.
// It backs headless runs and tests.
type Memory struct {
	mu      sync.Mutex
	profile runner.Profile
	writes  int
}

// NewMemory creates a memory store seeded with p.
func NewMemory(p runner.Profile) *Memory {
	if p.SkinID == "" {
		p.SkinID = config.DefaultSkin
	}
	return &Memory{profile: p}
}

// LoadProfile returns the stored profile.
func (m *Memory) LoadProfile() (runner.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.profile, nil
}

// SaveBestScore stores the best score.
func (m *Memory) SaveBestScore(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profile.BestScore = score
	m.writes++
	return nil
}

// SaveTotalCoins stores the coin balance.
func (m *Memory) SaveTotalCoins(coins int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profile.TotalCoins = coins
	m.writes++
	return nil
}

// SaveSkin stores the equipped skin.
func (m *Memory) SaveSkin(skinID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profile.SkinID = skinID
	m.writes++
	return nil
}

// Writes returns how many save calls the store has received.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
