package sim

import (
	"testing"

	"flaptty/internal/core"
)

// noGravity returns params with gravity disabled so the avatar holds still
// while scroll/scoring behavior is under test.
func noGravity() Params {
	p := DefaultParams()
	p.Gravity = 0
	return p
}

func TestGravityAccumulation(t *testing.T) {
	w := New(DefaultParams(), 1)
	w.avatarY = 0
	w.avatarVY = 0

	w.Tick()
	if w.avatarVY != 1 {
		t.Errorf("after 1 tick, velocity = %d, expected 1", w.avatarVY)
	}
	if w.avatarY != 1 {
		t.Errorf("after 1 tick, y = %d, expected 1", w.avatarY)
	}

	// Eight more ticks: velocity reaches 9, position is the sum 1..9 = 45.
	for i := 0; i < 8; i++ {
		w.Tick()
	}
	if w.avatarVY != 9 {
		t.Errorf("after 9 ticks, velocity = %d, expected 9", w.avatarVY)
	}
	if w.avatarY != 45 {
		t.Errorf("after 9 ticks, y = %d, expected 45", w.avatarY)
	}
}

func TestImpulseOverridesVelocity(t *testing.T) {
	w := New(DefaultParams(), 1)

	w.avatarVY = 20
	w.RequestImpulse()
	if w.avatarVY != -9 {
		t.Errorf("impulse should set velocity to -9 regardless of prior value, got %d", w.avatarVY)
	}

	w.avatarVY = -3
	w.RequestImpulse()
	if w.avatarVY != -9 {
		t.Errorf("impulse should set velocity to -9, got %d", w.avatarVY)
	}
}

func TestAvatarClampedAtTop(t *testing.T) {
	w := New(DefaultParams(), 1)
	w.avatarY = 5
	w.avatarVY = -50

	for i := 0; i < 10; i++ {
		w.Tick()
		if w.Over() {
			break
		}
		if w.avatarY < 0 {
			t.Fatalf("avatar y = %d, must never go below 0", w.avatarY)
		}
		w.RequestImpulse() // keep pushing up
	}
}

func TestSpawnPairGap(t *testing.T) {
	w := New(DefaultParams(), 42)

	for i := 0; i < 50; i++ {
		w.SpawnObstaclePair()
	}

	if len(w.obstacles) != 100 {
		t.Fatalf("expected 100 obstacles after 50 spawns, got %d", len(w.obstacles))
	}

	for i := 0; i < len(w.obstacles); i += 2 {
		top, bottom := w.obstacles[i], w.obstacles[i+1]

		if top.Role != RoleTop || bottom.Role != RoleBottom {
			t.Fatalf("pair %d: roles are %v/%v, expected top/bottom", i/2, top.Role, bottom.Role)
		}
		if top.X != 360 || bottom.X != 360 {
			t.Errorf("pair %d: both halves must spawn at x=360, got %d/%d", i/2, top.X, bottom.X)
		}

		// Opening between the top half's bottom edge and the bottom half's
		// top edge is exactly boardH/4 = 160, independent of the offset.
		gap := bottom.Y - (top.Y + top.H)
		if gap != 160 {
			t.Errorf("pair %d: gap = %d, expected 160", i/2, gap)
		}

		// Offset stays anchored near the board's vertical midpoint.
		if top.Y > -128 || top.Y < -383 {
			t.Errorf("pair %d: top offset %d outside expected range [-383, -128]", i/2, top.Y)
		}
	}
}

func TestCollides(t *testing.T) {
	obstacle := core.NewRect(100, 100, 64, 512)

	tests := []struct {
		name     string
		avatar   core.Rect
		expected bool
	}{
		{"avatar fully inside obstacle", core.NewRect(110, 110, 34, 24), true},
		{"left of obstacle, full y-overlap", core.NewRect(20, 110, 34, 24), false},
		{"right of obstacle", core.NewRect(200, 110, 34, 24), false},
		{"above obstacle", core.NewRect(110, 50, 34, 24), false},
		{"partial overlap at corner", core.NewRect(80, 90, 34, 24), true},
		{"edges touching only", core.NewRect(66, 110, 34, 24), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Collides(tc.avatar, obstacle); got != tc.expected {
				t.Errorf("Collides() = %v, expected %v", got, tc.expected)
			}
			// Pure geometric test: symmetric under swapping the boxes.
			if got := Collides(obstacle, tc.avatar); got != tc.expected {
				t.Errorf("Collides() (swapped) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestPassedScoresOnceAndNeverReverts(t *testing.T) {
	w := New(noGravity(), 7)

	// Place one pair just about to be cleared, vertically out of the
	// avatar's way so no collision can interfere.
	w.obstacles = append(w.obstacles,
		Obstacle{X: -14, Y: -400, W: 64, H: 512, Role: RoleTop},
		Obstacle{X: -14, Y: 272, W: 64, H: 512, Role: RoleBottom},
	)

	// avatarX=45, trailing edge after one tick at -18+64=46: not yet passed.
	w.Tick()
	if w.score != 0 {
		t.Fatalf("score = %v before trailing edge is crossed, expected 0", w.score)
	}

	// One more tick crosses the trailing edge: both halves score 0.5.
	w.Tick()
	if w.score != 1.0 {
		t.Fatalf("score = %v after clearing a pair, expected 1.0", w.score)
	}
	for i, o := range w.obstacles {
		if !o.Passed {
			t.Errorf("obstacle %d should be marked passed", i)
		}
	}

	// Further ticks must not score the same pair again or revert the flag.
	for i := 0; i < 5; i++ {
		w.Tick()
	}
	if w.score != 1.0 {
		t.Errorf("score = %v after extra ticks, expected it to stay 1.0", w.score)
	}
}

func TestCompactionDropsOffscreenObstacles(t *testing.T) {
	w := New(noGravity(), 7)

	w.obstacles = append(w.obstacles,
		Obstacle{X: -62, Y: -400, W: 64, H: 512, Role: RoleTop, Passed: true},
		Obstacle{X: -62, Y: 272, W: 64, H: 512, Role: RoleBottom, Passed: true},
		Obstacle{X: 300, Y: -400, W: 64, H: 512, Role: RoleTop},
		Obstacle{X: 300, Y: 272, W: 64, H: 512, Role: RoleBottom},
	)
	w.score = 1.0

	// One tick moves the old pair to x=-66; its trailing edge (-2) is now
	// fully off-screen and the pair is dropped.
	w.Tick()

	if len(w.obstacles) != 2 {
		t.Fatalf("expected 2 obstacles after compaction, got %d", len(w.obstacles))
	}
	for _, o := range w.obstacles {
		if o.X != 296 {
			t.Errorf("surviving obstacle at x=%d, expected 296", o.X)
		}
	}
	if w.score != 1.0 {
		t.Errorf("compaction must not affect the score, got %v", w.score)
	}
}

func TestCollisionEndsRun(t *testing.T) {
	w := New(noGravity(), 7)

	// Obstacle overlapping the avatar's fixed column after one scroll step.
	w.obstacles = append(w.obstacles,
		Obstacle{X: w.p.AvatarX + 2, Y: w.avatarY - 100, W: 64, H: 512, Role: RoleTop},
	)

	w.Tick()
	if !w.Over() {
		t.Fatal("overlapping an obstacle should end the run")
	}
}

func TestFallingOffBoardEndsRun(t *testing.T) {
	w := New(DefaultParams(), 7)
	w.avatarY = 640
	w.avatarVY = 10

	w.Tick()
	if !w.Over() {
		t.Fatal("falling below the board should end the run")
	}
}

func TestTickFreezesWhenOver(t *testing.T) {
	w := New(DefaultParams(), 7)
	w.SpawnObstaclePair()
	w.avatarY = 700
	w.Tick()
	if !w.Over() {
		t.Fatal("expected run to be over")
	}

	before := w.Snapshot()
	for i := 0; i < 10; i++ {
		w.Tick()
	}
	after := w.Snapshot()

	if after.Avatar != before.Avatar {
		t.Errorf("avatar moved while terminal: %+v -> %+v", before.Avatar, after.Avatar)
	}
	if after.Score != before.Score {
		t.Errorf("score changed while terminal: %v -> %v", before.Score, after.Score)
	}
	if len(after.Obstacles) != len(before.Obstacles) {
		t.Fatalf("obstacle count changed while terminal: %d -> %d", len(before.Obstacles), len(after.Obstacles))
	}
	for i := range after.Obstacles {
		if after.Obstacles[i] != before.Obstacles[i] {
			t.Errorf("obstacle %d moved while terminal", i)
		}
	}
}

func TestResetRestoresInitialBehavior(t *testing.T) {
	w := New(DefaultParams(), 7)
	w.SpawnObstaclePair()
	for !w.Over() {
		w.Tick()
	}

	w.Reset()

	if w.Score() != 0 {
		t.Errorf("score = %v after reset, expected 0", w.Score())
	}
	if len(w.obstacles) != 0 {
		t.Errorf("obstacles not cleared by reset: %d left", len(w.obstacles))
	}
	if w.Over() {
		t.Error("terminal flag not cleared by reset")
	}
	if w.Ticks() != 0 {
		t.Errorf("tick counter = %d after reset, expected 0", w.Ticks())
	}

	// The first tick after a reset behaves exactly like the first tick
	// after construction.
	fresh := New(DefaultParams(), 7)
	w.Tick()
	fresh.Tick()
	if w.Snapshot().Avatar != fresh.Snapshot().Avatar {
		t.Errorf("first tick after reset diverges from a fresh world: %+v vs %+v",
			w.Snapshot().Avatar, fresh.Snapshot().Avatar)
	}
}

func TestImpulseRestartsAfterGameOver(t *testing.T) {
	w := New(DefaultParams(), 7)
	w.avatarY = 700
	w.Tick()
	if !w.Over() {
		t.Fatal("expected run to be over")
	}
	w.score = 3.0

	// The flap input doubles as the restart trigger once terminal.
	w.RequestImpulse()

	if w.Over() {
		t.Error("impulse after game over should reset the terminal flag")
	}
	if w.Score() != 0 {
		t.Errorf("score = %v after restart, expected 0", w.Score())
	}
	if w.avatarVY != -9 {
		t.Errorf("velocity = %d after restart impulse, expected -9", w.avatarVY)
	}
}

func TestDeterminism(t *testing.T) {
	// Same seed and the same tick-indexed event schedule must produce
	// identical worlds.
	run := func() Snapshot {
		w := New(DefaultParams(), 12345)
		for tick := 1; tick <= 400; tick++ {
			if tick%90 == 0 {
				w.SpawnObstaclePair()
			}
			if tick%13 == 0 {
				w.RequestImpulse()
			}
			w.Tick()
		}
		return w.Snapshot()
	}

	a, b := run(), run()

	if a.Score != b.Score || a.GameOver != b.GameOver || a.Ticks != b.Ticks || a.Avatar != b.Avatar {
		t.Errorf("runs diverged: %+v vs %+v", a, b)
	}
	if len(a.Obstacles) != len(b.Obstacles) {
		t.Fatalf("obstacle counts diverged: %d vs %d", len(a.Obstacles), len(b.Obstacles))
	}
	for i := range a.Obstacles {
		if a.Obstacles[i] != b.Obstacles[i] {
			t.Errorf("obstacle %d diverged: %+v vs %+v", i, a.Obstacles[i], b.Obstacles[i])
		}
	}
}

func TestScoreLabel(t *testing.T) {
	s := Snapshot{Score: 3.5}
	if s.ScoreLabel() != "3" {
		t.Errorf("ScoreLabel() = %q, expected truncated %q", s.ScoreLabel(), "3")
	}

	s.GameOver = true
	if s.ScoreLabel() != "Game Over: 3" {
		t.Errorf("ScoreLabel() = %q, expected %q", s.ScoreLabel(), "Game Over: 3")
	}
}
