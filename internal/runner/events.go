package runner

// Event is something the loop reports to its collaborators
// (persistence, audio, HUD). Events are queued during a tick and
// handed out by Tick or Events.
type Event interface {
	runnerEvent()
}

// GameOver is emitted exactly once per run, on the first obstacle hit.
type GameOver struct {
	FinalScore int
	Best       int  // Best score after this run
	NewBest    bool // FinalScore beat the previous best
}

func (GameOver) runnerEvent() {}

// CoinCollected is emitted for every coin the player touches.
type CoinCollected struct {
	Value      int // Coins awarded
	TotalCoins int // Profile total after the pickup
	Score      int // Run score after the bonus
}

func (CoinCollected) runnerEvent() {}

// ScoreChanged is emitted by the score clock.
type ScoreChanged struct {
	Score int
}

func (ScoreChanged) runnerEvent() {}

// SkinEquipped is emitted after a successful purchase.
type SkinEquipped struct {
	SkinID     string
	Cost       int
	TotalCoins int // Profile total after the charge
}

func (SkinEquipped) runnerEvent() {}

// Jumped is emitted when a jump actually leaves the ground.
type Jumped struct{}

func (Jumped) runnerEvent() {}
