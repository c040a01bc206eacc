package storage

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quasilyte/gdata"

	"github.com/usmanser71/runner-game-pro/internal/config"
	"github.com/usmanser71/runner-game-pro/internal/runner"
)

// Save data keys. Each holds one value as plain text.
const (
	KeyBestScore  = "tr_best"
	KeyTotalCoins = "tr_coins"
	KeySkin       = "tr_skin"
)

// DefaultAppName names the save data directory.
const DefaultAppName = "timerunner"

// SaveData stores the profile as three small items in the user's game data
// directory. Absent or unreadable numbers count as zero.
type SaveData struct {
	m *gdata.Manager
}

// OpenSaveData opens (creating if needed) the save data for appName.
func OpenSaveData(appName string) (*SaveData, error) {
	if appName == "" {
		appName = DefaultAppName
	}
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open save data: %w", err)
	}
	return &SaveData{m: m}, nil
}

// LoadProfile reads the three profile keys.
func (d *SaveData) LoadProfile() (runner.Profile, error) {
	best, err := d.loadInt(KeyBestScore)
	if err != nil {
		return runner.Profile{}, err
	}
	coins, err := d.loadInt(KeyTotalCoins)
	if err != nil {
		return runner.Profile{}, err
	}
	skin, err := d.loadString(KeySkin)
	if err != nil {
		return runner.Profile{}, err
	}
	if skin == "" {
		skin = config.DefaultSkin
	}
	return runner.Profile{BestScore: best, TotalCoins: coins, SkinID: skin}, nil
}

// SaveBestScore stores the best score.
func (d *SaveData) SaveBestScore(score int) error {
	return d.save(KeyBestScore, strconv.Itoa(score))
}

// SaveTotalCoins stores the coin balance.
func (d *SaveData) SaveTotalCoins(coins int) error {
	return d.save(KeyTotalCoins, strconv.Itoa(coins))
}

// SaveSkin stores the equipped skin.
func (d *SaveData) SaveSkin(skinID string) error {
	return d.save(KeySkin, skinID)
}

func (d *SaveData) save(key, value string) error {
	if err := d.m.SaveItem(key, []byte(value)); err != nil {
		return fmt.Errorf("storage: cannot save %s: %w", key, err)
	}
	return nil
}

func (d *SaveData) loadString(key string) (string, error) {
	data, err := d.m.LoadItem(key)
	if err != nil {
		return "", fmt.Errorf("storage: cannot load %s: %w", key, err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (d *SaveData) loadInt(key string) (int, error) {
	s, err := d.loadString(key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, nil
	}
	return n, nil
}
