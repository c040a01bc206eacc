package runner

import (
	"time"

	"github.com/solarlune/resolv"

	"github.com/usmanser71/runner-game-pro/internal/core"
)

// Obstacle is an immovable block standing on the ground.
type Obstacle struct {
	X, Y float64
	W, H float64

	body *resolv.Object
}

// Rect returns the obstacle's collision box.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.W, o.H)
}

// Coin is a collectible floating above the ground.
type Coin struct {
	X, Y float64
	Size float64

	body *resolv.Object
}

// Rect returns the coin's collision box.
func (c Coin) Rect() core.Rect {
	return core.NewRect(c.X, c.Y, c.Size, c.Size)
}

// drawThreshold picks the accumulated time the next spawn waits for.
func (l *Loop) drawThreshold() time.Duration {
	min := l.cfg.Obstacles.SpawnMinMS
	max := l.cfg.Obstacles.SpawnMaxMS
	return time.Duration(between(l.src, min, max)) * time.Millisecond
}

// advanceSpawner adds dt to the spawn accumulator and spawns at most one
// obstacle (and possibly a coin) once the threshold is reached.
func (l *Loop) advanceSpawner(dt time.Duration) {
	l.spawnAcc += dt
	if l.spawnAcc < l.spawnThreshold {
		return
	}
	l.spawnAcc = 0
	l.spawnObstacle()
	if l.src.Float64() < l.cfg.Coins.SpawnChance {
		l.spawnCoin()
	}
	l.spawnThreshold = l.drawThreshold()
}

func (l *Loop) spawnObstacle() {
	oc := l.cfg.Obstacles
	h := float64(between(l.src, int(oc.MinHeight), int(oc.MaxHeight)))
	o := &Obstacle{
		X: l.cfg.SpawnX(),
		Y: l.cfg.World.GroundY - h,
		W: oc.Width,
		H: h,
	}
	o.body = newBody(l.space, o.X, o.Y, o.W, o.H, tagObstacle)
	l.obstacles = append(l.obstacles, o)
}

func (l *Loop) spawnCoin() {
	cc := l.cfg.Coins
	c := &Coin{
		X:    l.cfg.SpawnX(),
		Y:    float64(between(l.src, cc.MinY, cc.MaxY)),
		Size: cc.Size,
	}
	c.body = newBody(l.space, c.X, c.Y, c.Size, c.Size, tagCoin)
	l.coins = append(l.coins, c)
}

// scroll moves every entity left by dx and drops the ones whose right
// edge has reached the left boundary.
func (l *Loop) scroll(dx float64) {
	live := l.obstacles[:0]
	for _, o := range l.obstacles {
		o.X -= dx
		if o.X+o.W <= 0 {
			l.space.Remove(o.body)
			continue
		}
		syncBody(o.body, o.X, o.Y, o.W, o.H)
		live = append(live, o)
	}
	clearTail(l.obstacles, len(live))
	l.obstacles = live

	coins := l.coins[:0]
	for _, c := range l.coins {
		c.X -= dx
		if c.X+c.Size <= 0 {
			l.space.Remove(c.body)
			continue
		}
		syncBody(c.body, c.X, c.Y, c.Size, c.Size)
		coins = append(coins, c)
	}
	clearTail(l.coins, len(coins))
	l.coins = coins
}

// removeCoin drops a collected coin from the live set.
func (l *Loop) removeCoin(c *Coin) {
	for i, live := range l.coins {
		if live == c {
			l.space.Remove(c.body)
			l.coins = append(l.coins[:i], l.coins[i+1:]...)
			return
		}
	}
}

// clearTail nils out pointers past n so filtered entities can be collected.
func clearTail[T any](s []*T, n int) {
	for i := n; i < len(s); i++ {
		s[i] = nil
	}
}
