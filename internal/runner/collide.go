package runner

import (
	"math"

	"github.com/solarlune/resolv"

	"github.com/usmanser71/runner-game-pro/internal/config"
)

// Collision tags.
const (
	tagPlayer   = "player"
	tagObstacle = "obstacle"
	tagCoin     = "coin"
)

const spaceCellSize = 32

// newSpace builds the broad-phase grid. It covers the visible world plus
// the spawn strip to the right, where new entities appear.
func newSpace(cfg config.Runner) *resolv.Space {
	w := cfg.SpawnX() + math.Max(cfg.Obstacles.Width, cfg.Coins.Size) + spaceCellSize
	h := cfg.World.Height + spaceCellSize
	return resolv.NewSpace(int(math.Ceil(w)), int(math.Ceil(h)), spaceCellSize, spaceCellSize)
}

// newBody creates a rectangle object and registers it in the space.
func newBody(space *resolv.Space, x, y, w, h float64, tag string) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	space.Add(obj)
	return obj
}

// syncBody copies a box into its resolv object and refreshes its cells.
func syncBody(obj *resolv.Object, x, y, w, h float64) {
	if obj.W != w || obj.H != h {
		obj.W, obj.H = w, h
		obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	}
	obj.X, obj.Y = x, y
	obj.Update()
}

// hitObstacle reports whether the player overlaps any live obstacle.
// The space narrows the candidates; the exact test is core.Rect.Intersects.
func (l *Loop) hitObstacle() bool {
	check := l.player.body.Check(0, 0, tagObstacle)
	if check == nil {
		return false
	}
	pr := l.player.Rect()
	for _, obj := range check.ObjectsByTags(tagObstacle) {
		for _, o := range l.obstacles {
			if o.body == obj && pr.Intersects(o.Rect()) {
				return true
			}
		}
	}
	return false
}

// touchedCoins returns every live coin overlapping the player.
func (l *Loop) touchedCoins() []*Coin {
	check := l.player.body.Check(0, 0, tagCoin)
	if check == nil {
		return nil
	}
	pr := l.player.Rect()
	var touched []*Coin
	for _, c := range l.coins {
		for _, obj := range check.ObjectsByTags(tagCoin) {
			if c.body == obj && pr.Intersects(c.Rect()) {
				touched = append(touched, c)
				break
			}
		}
	}
	return touched
}
