// Package sim implements the fixed-timestep simulation core: avatar physics,
// obstacle spawning, scoring, and collision detection. The package is pure
// and single-owner; it has no timers of its own. The host drives it through
// exactly three entry points (Tick, SpawnObstaclePair, RequestImpulse) plus
// Reset, and observes it through Snapshot.
package sim

import (
	"math/rand"

	"flaptty/internal/core"
)

// World owns the complete game state. All mutation happens on the caller's
// goroutine; the world is not safe for concurrent use.
type World struct {
	p Params

	avatarY  int
	avatarVY int

	// Insertion order = spawn order = screen order.
	obstacles []Obstacle

	score float64
	over  bool
	ticks uint64

	rng *rand.Rand
}

// New creates a world with the given parameters and RNG seed. The same seed
// and the same call sequence always produce the same state.
func New(p Params, seed int64) *World {
	return &World{
		p:         p,
		avatarY:   p.AvatarStartY,
		obstacles: make([]Obstacle, 0, 8),
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Params returns the world's parameters.
func (w *World) Params() Params {
	return w.p
}

// Tick advances the simulation by one step. It is a no-op once the run has
// ended: the host may keep its timer going and the frozen state stays
// observable until Reset.
func (w *World) Tick() {
	if w.over {
		return
	}
	w.ticks++

	// Integrate gravity, then position. The avatar cannot rise above the
	// top boundary.
	w.avatarVY += w.p.Gravity
	w.avatarY = core.Max(w.avatarY+w.avatarVY, 0)

	avatar := w.AvatarRect()
	for i := range w.obstacles {
		o := &w.obstacles[i]
		o.X -= w.p.ScrollSpeed

		if !o.Passed && w.p.AvatarX > o.X+o.W {
			o.Passed = true
			w.score += 0.5
		}

		if Collides(avatar, o.Rect()) {
			w.over = true
		}
	}

	if w.avatarY > w.p.BoardH {
		w.over = true
	}

	w.compact()
}

// compact drops obstacles whose trailing edge is fully left of the visible
// region. An obstacle is always passed (and scored) before it becomes
// eligible, so compaction never affects the score.
func (w *World) compact() {
	kept := w.obstacles[:0]
	for _, o := range w.obstacles {
		if o.X+o.W > 0 {
			kept = append(kept, o)
		}
	}
	w.obstacles = kept
}

// RequestImpulse sets the avatar's vertical velocity to the impulse constant,
// overriding whatever gravity has accumulated. After a game over the same
// input restarts the run and applies the impulse: the genre's tap-to-restart
// convention.
func (w *World) RequestImpulse() {
	if w.over {
		w.Reset()
	}
	w.avatarVY = w.p.Impulse
}

// SpawnObstaclePair appends one top/bottom obstacle pair just off the right
// edge of the board. The pair shares a random vertical offset anchored near
// the board's midpoint; the opening between the halves is always exactly
// GapHeight.
func (w *World) SpawnObstaclePair() {
	topY := -w.p.ObstacleH/4 - w.rng.Intn(w.p.ObstacleH/2)
	bottomY := topY + w.p.ObstacleH + w.p.GapHeight()

	w.obstacles = append(w.obstacles,
		Obstacle{X: w.p.BoardW, Y: topY, W: w.p.ObstacleW, H: w.p.ObstacleH, Role: RoleTop},
		Obstacle{X: w.p.BoardW, Y: bottomY, W: w.p.ObstacleW, H: w.p.ObstacleH, Role: RoleBottom},
	)
}

// Reset returns the world to its initial state: avatar back at the start
// position with zero velocity, obstacles cleared, score zeroed, terminal
// flag cleared. The RNG stream is deliberately not reseeded so that
// consecutive runs in one session see fresh obstacle layouts.
func (w *World) Reset() {
	w.avatarY = w.p.AvatarStartY
	w.avatarVY = 0
	w.obstacles = w.obstacles[:0]
	w.score = 0
	w.over = false
	w.ticks = 0
}

// AvatarRect returns the avatar's bounding box.
func (w *World) AvatarRect() core.Rect {
	return core.NewRect(w.p.AvatarX, w.avatarY, w.p.AvatarW, w.p.AvatarH)
}

// Score returns the current score. Each cleared half-obstacle is worth 0.5,
// so a full pair scores one point.
func (w *World) Score() float64 {
	return w.score
}

// Over reports whether the run has ended.
func (w *World) Over() bool {
	return w.over
}

// Ticks returns the number of simulation steps since the last reset.
func (w *World) Ticks() uint64 {
	return w.ticks
}

// Collides reports whether two boxes strictly overlap on both axes. Pure
// geometric test, symmetric in its arguments.
func Collides(a, b core.Rect) bool {
	return a.Intersects(b)
}
