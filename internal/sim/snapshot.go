package sim

import (
	"fmt"

	"flaptty/internal/core"
)

// ObstacleView is one obstacle box plus its visual role.
type ObstacleView struct {
	Box  core.Rect
	Role Role
}

// Snapshot is a read-only view of the world for rendering. The renderer must
// not reach back into the world; the only way input flows in is
// RequestImpulse.
type Snapshot struct {
	Avatar    core.Rect
	Obstacles []ObstacleView // In spawn order, which is also screen order
	Score     float64
	GameOver  bool
	Ticks     uint64
}

// Snapshot captures the current state. The obstacle slice is a copy; holding
// it across ticks is safe.
func (w *World) Snapshot() Snapshot {
	views := make([]ObstacleView, len(w.obstacles))
	for i, o := range w.obstacles {
		views[i] = ObstacleView{Box: o.Rect(), Role: o.Role}
	}
	return Snapshot{
		Avatar:    w.AvatarRect(),
		Obstacles: views,
		Score:     w.score,
		GameOver:  w.over,
		Ticks:     w.ticks,
	}
}

// ScoreLabel formats the score for display: the truncated integer while
// playing, "Game Over: <score>" once the run has ended.
func (s Snapshot) ScoreLabel() string {
	if s.GameOver {
		return fmt.Sprintf("Game Over: %d", int(s.Score))
	}
	return fmt.Sprintf("%d", int(s.Score))
}
