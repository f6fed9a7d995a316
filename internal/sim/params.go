package sim

// Params holds every constant the simulation depends on. All values are in
// world units on a fixed virtual board; the renderer scales them to the
// terminal. Passing these explicitly (instead of package-level globals) keeps
// worlds independently configurable and testable.
type Params struct {
	BoardW int // Board width in world units
	BoardH int // Board height in world units

	AvatarX      int // Fixed horizontal position of the avatar's left edge
	AvatarStartY int // Vertical position at start and after reset
	AvatarW      int // Avatar hitbox width
	AvatarH      int // Avatar hitbox height

	ObstacleW int // Obstacle width
	ObstacleH int // Obstacle height (each half of a pair)

	ScrollSpeed int // World units obstacles move left per tick
	Gravity     int // Downward acceleration per tick
	Impulse     int // Vertical velocity set by a flap (negative = up)
}

// DefaultParams returns the reference tuning: a 360x640 board, gravity 1,
// impulse -9, scroll 4.
func DefaultParams() Params {
	return Params{
		BoardW:       360,
		BoardH:       640,
		AvatarX:      45,
		AvatarStartY: 180,
		AvatarW:      34,
		AvatarH:      24,
		ObstacleW:    64,
		ObstacleH:    512,
		ScrollSpeed:  4,
		Gravity:      1,
		Impulse:      -9,
	}
}

// GapHeight is the vertical opening between the two halves of an obstacle
// pair. It is a fixed quarter of the board height for every pair.
func (p Params) GapHeight() int {
	return p.BoardH / 4
}
