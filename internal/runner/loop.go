// Package runner implements the endless-runner simulation: player physics,
// obstacle and coin spawning, collision, the speed ramp and the coin economy.
//
// A Loop is a plain value owned by its caller. It performs no I/O; it
// reports what happened through events and exposes snapshots for drawing.
// Independent loops share no state and may run on separate goroutines,
// but a single Loop must not be used concurrently.
package runner

import (
	"math"
	"time"

	"github.com/solarlune/resolv"

	"github.com/usmanser71/runner-game-pro/internal/config"
)

// State is the lifecycle state of a Loop.
type State int

const (
	StateReady   State = iota // No run started yet
	StateRunning              // Simulation advances on Tick
	StatePaused               // Tick is a no-op until Resume
	StateOver                 // The player hit an obstacle
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateReady:
		return "Ready"
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateOver:
		return "Over"
	default:
		return "Unknown"
	}
}

// Profile is the persistent part of a player: best score, coin balance
// and equipped skin. The loop works on a copy; persisting it is the host's job.
type Profile struct {
	BestScore  int
	TotalCoins int
	SkinID     string
}

// RunSession summarizes the current run.
type RunSession struct {
	Score       int
	CoinsEarned int // Coins collected during this run
	TotalCoins  int // Profile balance, including CoinsEarned
	Speed       float64
	Running     bool
	State       State
	Elapsed     time.Duration // Simulated time spent running
}

// StepResult is returned by Tick.
type StepResult struct {
	State  State
	Events []Event // Events raised since the previous drain, in order
}

// Loop is the runner simulation.
type Loop struct {
	cfg     config.Runner
	src     Source
	profile Profile
	state   State

	player    Player
	obstacles []*Obstacle
	coins     []*Coin
	space     *resolv.Space

	score       int
	coinsEarned int
	speed       float64
	elapsed     time.Duration

	spawnAcc       time.Duration
	spawnThreshold time.Duration
	scoreAcc       time.Duration
	rampAcc        time.Duration

	events []Event
}

// New creates a loop in the Ready state for the given profile.
// Negative balances are treated as zero and an empty skin as the default skin.
func New(src Source, profile Profile) *Loop {
	if profile.BestScore < 0 {
		profile.BestScore = 0
	}
	if profile.TotalCoins < 0 {
		profile.TotalCoins = 0
	}
	if profile.SkinID == "" {
		profile.SkinID = config.DefaultSkin
	}
	return &Loop{
		src:     src,
		profile: profile,
		state:   StateReady,
	}
}

// Start begins a new run, discarding any previous one.
// It fails with *ConfigError if cfg does not validate; the loop is left untouched then.
func (l *Loop) Start(cfg config.Runner) (RunSession, error) {
	if err := cfg.Validate(); err != nil {
		return RunSession{}, &ConfigError{Err: err}
	}

	l.cfg = cfg
	l.space = newSpace(cfg)
	l.player = resetPlayer(cfg)
	l.player.body = newBody(l.space, l.player.X, l.player.Y, l.player.W, l.player.H, tagPlayer)
	l.obstacles = nil
	l.coins = nil
	l.score = 0
	l.coinsEarned = 0
	l.speed = cfg.Physics.InitialSpeed
	l.elapsed = 0
	l.spawnAcc = 0
	l.scoreAcc = 0
	l.rampAcc = 0
	l.events = nil
	l.spawnThreshold = l.drawThreshold()
	l.state = StateRunning

	return l.Session(), nil
}

// Restart starts a new run with the configuration of the previous one.
func (l *Loop) Restart() (RunSession, error) {
	return l.Start(l.cfg)
}

// Tick advances the simulation by dt. Negative durations are treated as zero.
// Outside the Running state nothing moves, but queued events are still returned.
//
// Order within a tick: player physics, slide timer, scroll and cull,
// spawner, obstacle collision, coin pickup, score and speed clocks.
// A collision ends the tick.
func (l *Loop) Tick(dt time.Duration) StepResult {
	if dt < 0 {
		dt = 0
	}
	if l.state != StateRunning {
		return l.drain()
	}

	secs := dt.Seconds()
	l.player.integrate(l.cfg.Physics.Gravity, l.cfg.World.GroundY, secs)
	l.player.updateSlide(dt)
	syncBody(l.player.body, l.player.X, l.player.Y, l.player.W, l.player.H)

	l.scroll(l.speed * secs)
	l.advanceSpawner(dt)

	if l.hitObstacle() {
		l.gameOver()
		return l.drain()
	}

	for _, c := range l.touchedCoins() {
		l.collect(c)
	}

	l.elapsed += dt
	l.advanceClocks(dt)

	return l.drain()
}

// advanceClocks runs the score clock and the speed ramp on accumulated time.
func (l *Loop) advanceClocks(dt time.Duration) {
	period := l.cfg.Scoring.ScorePeriod()
	l.scoreAcc += dt
	for l.scoreAcc >= period {
		l.scoreAcc -= period
		l.score++
		l.emit(ScoreChanged{Score: l.score})
	}

	ramp := l.cfg.Scoring.RampPeriod()
	l.rampAcc += dt
	for l.rampAcc >= ramp {
		l.rampAcc -= ramp
		l.speed += l.cfg.Scoring.SpeedStep
		if max := l.cfg.Scoring.MaxSpeed; max > 0 {
			l.speed = math.Min(l.speed, max)
		}
	}
}

func (l *Loop) collect(c *Coin) {
	l.removeCoin(c)
	value := l.cfg.Coins.Value
	l.profile.TotalCoins += value
	l.coinsEarned += value
	l.score += l.cfg.Coins.ScoreBonus
	l.emit(CoinCollected{
		Value:      value,
		TotalCoins: l.profile.TotalCoins,
		Score:      l.score,
	})
}

func (l *Loop) gameOver() {
	l.state = StateOver
	newBest := l.score > l.profile.BestScore
	if newBest {
		l.profile.BestScore = l.score
	}
	l.emit(GameOver{
		FinalScore: l.score,
		Best:       l.profile.BestScore,
		NewBest:    newBest,
	})
}

// Jump makes the player jump if the run is active and the player is on the ground.
// It reports whether a jump started.
func (l *Loop) Jump() bool {
	if l.state != StateRunning {
		return false
	}
	if !l.player.jump(l.cfg.Physics.JumpImpulse) {
		return false
	}
	l.emit(Jumped{})
	return true
}

// Slide starts a slide if the run is active and the player is not already sliding.
func (l *Loop) Slide() bool {
	if l.state != StateRunning {
		return false
	}
	if !l.player.startSlide(l.cfg.Player.SlideScale, l.cfg.Player.SlideDuration()) {
		return false
	}
	syncBody(l.player.body, l.player.X, l.player.Y, l.player.W, l.player.H)
	return true
}

// Pause suspends a running game. It is a no-op in any other state.
func (l *Loop) Pause() {
	if l.state == StateRunning {
		l.state = StatePaused
	}
}

// Resume continues a paused game. It is a no-op in any other state.
func (l *Loop) Resume() {
	if l.state == StatePaused {
		l.state = StateRunning
	}
}

// TogglePause switches between Running and Paused.
func (l *Loop) TogglePause() {
	switch l.state {
	case StateRunning:
		l.state = StatePaused
	case StatePaused:
		l.state = StateRunning
	}
}

// PurchaseSkin charges cost coins and equips the skin.
// It may be called in any state. On failure the profile is unchanged.
func (l *Loop) PurchaseSkin(id string, cost int) error {
	if id == "" || cost < 0 {
		return ErrInvalidPurchase
	}
	if l.profile.TotalCoins < cost {
		return &InsufficientFundsError{SkinID: id, Cost: cost, Have: l.profile.TotalCoins}
	}
	l.profile.TotalCoins -= cost
	l.profile.SkinID = id
	l.emit(SkinEquipped{SkinID: id, Cost: cost, TotalCoins: l.profile.TotalCoins})
	return nil
}

// Events returns and clears the queued events.
func (l *Loop) Events() []Event {
	return l.drain().Events
}

// State returns the current lifecycle state.
func (l *Loop) State() State {
	return l.state
}

// Profile returns a copy of the loop's profile.
func (l *Loop) Profile() Profile {
	return l.profile
}

// Player returns a copy of the player state.
func (l *Loop) Player() Player {
	p := l.player
	p.body = nil
	return p
}

// Config returns the configuration of the current run.
func (l *Loop) Config() config.Runner {
	return l.cfg
}

// Session returns the current run summary.
func (l *Loop) Session() RunSession {
	return RunSession{
		Score:       l.score,
		CoinsEarned: l.coinsEarned,
		TotalCoins:  l.profile.TotalCoins,
		Speed:       l.speed,
		Running:     l.state == StateRunning,
		State:       l.state,
		Elapsed:     l.elapsed,
	}
}

func (l *Loop) emit(e Event) {
	l.events = append(l.events, e)
}

func (l *Loop) drain() StepResult {
	events := l.events
	l.events = nil
	return StepResult{State: l.state, Events: events}
}
