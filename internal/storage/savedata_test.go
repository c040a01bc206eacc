package storage

import (
	"testing"

	"github.com/usmanser71/runner-game-pro/internal/config"
	"github.com/usmanser71/runner-game-pro/internal/runner"
)

// isolateHome points every per-user data location at a temp dir.
func isolateHome(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", home)
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("APPDATA", home)
}

func TestSaveDataDefaults(t *testing.T) {
	isolateHome(t)

	d, err := OpenSaveData("timerunner_test_defaults")
	if err != nil {
		t.Fatalf("OpenSaveData() failed: %v", err)
	}

	p, err := d.LoadProfile()
	if err != nil {
		t.Fatalf("LoadProfile() failed: %v", err)
	}
	want := runner.Profile{SkinID: config.DefaultSkin}
	if p != want {
		t.Errorf("LoadProfile() = %+v, expected %+v", p, want)
	}
}

func TestSaveDataRoundTrip(t *testing.T) {
	isolateHome(t)

	d, err := OpenSaveData("timerunner_test_roundtrip")
	if err != nil {
		t.Fatalf("OpenSaveData() failed: %v", err)
	}

	if err := d.SaveBestScore(1234); err != nil {
		t.Fatalf("SaveBestScore() failed: %v", err)
	}
	if err := d.SaveTotalCoins(65); err != nil {
		t.Fatalf("SaveTotalCoins() failed: %v", err)
	}
	if err := d.SaveSkin("skin_blue"); err != nil {
		t.Fatalf("SaveSkin() failed: %v", err)
	}

	// A second manager sees what the first one wrote
	again, err := OpenSaveData("timerunner_test_roundtrip")
	if err != nil {
		t.Fatal(err)
	}
	p, err := again.LoadProfile()
	if err != nil {
		t.Fatalf("LoadProfile() failed: %v", err)
	}
	want := runner.Profile{BestScore: 1234, TotalCoins: 65, SkinID: "skin_blue"}
	if p != want {
		t.Errorf("LoadProfile() = %+v, expected %+v", p, want)
	}
}

func TestSaveDataIgnoresGarbage(t *testing.T) {
	isolateHome(t)

	d, err := OpenSaveData("timerunner_test_garbage")
	if err != nil {
		t.Fatal(err)
	}
	if err := d.save(KeyTotalCoins, "lots"); err != nil {
		t.Fatal(err)
	}
	if err := d.save(KeyBestScore, "-7"); err != nil {
		t.Fatal(err)
	}

	p, err := d.LoadProfile()
	if err != nil {
		t.Fatal(err)
	}
	if p.TotalCoins != 0 || p.BestScore != 0 {
		t.Errorf("LoadProfile() = %+v, expected unreadable numbers to count as zero", p)
	}
}

func TestMemoryStore(t *testing.T) {
	m := NewMemory(runner.Profile{TotalCoins: 3})

	p, _ := m.LoadProfile()
	if p.SkinID != config.DefaultSkin || p.TotalCoins != 3 {
		t.Errorf("LoadProfile() = %+v", p)
	}

	m.SaveBestScore(10)
	m.SaveTotalCoins(8)
	m.SaveSkin("skin_gold")

	p, _ = m.LoadProfile()
	want := runner.Profile{BestScore: 10, TotalCoins: 8, SkinID: "skin_gold"}
	if p != want {
		t.Errorf("LoadProfile() = %+v, expected %+v", p, want)
	}
	if m.Writes() != 3 {
		t.Errorf("Writes() = %d, expected 3", m.Writes())
	}
}
