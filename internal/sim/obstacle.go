package sim

import "flaptty/internal/core"

// Role tells the renderer which half of a pair an obstacle is.
type Role int

const (
	RoleTop Role = iota
	RoleBottom
)

// String returns a human-readable name for the role.
func (r Role) String() string {
	if r == RoleTop {
		return "top"
	}
	return "bottom"
}

// Obstacle is a single rectangular barrier. Obstacles are always created in
// vertically-opposed pairs sharing one gap; each half scrolls and scores
// independently.
type Obstacle struct {
	X      int  // Left edge, mutable (scrolls left each tick)
	Y      int  // Top edge, fixed at spawn
	W, H   int
	Role   Role
	Passed bool // Set once the avatar clears the trailing edge; never reverts
}

// Rect returns the obstacle's bounding box.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.W, o.H)
}
