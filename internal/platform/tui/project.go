package tui

import (
	"flaptty/internal/core"
	"flaptty/internal/sim"
)

// Visual characters for rendering
const (
	avatarChar    = '▶'
	avatarBody    = '●'
	pipeChar      = '█'
	pipeCapTop    = '▄'
	pipeCapBottom = '▀'
)

// Projector maps the fixed world-unit board onto the terminal cell grid.
// The simulation never learns the terminal size; resizing only changes how
// the same snapshot is drawn.
type Projector struct {
	boardW int
	boardH int
}

// NewProjector creates a projector for the given board dimensions.
func NewProjector(boardW, boardH int) *Projector {
	return &Projector{boardW: boardW, boardH: boardH}
}

// cellRect scales a world-unit box to screen cells. Boxes with nonzero area
// always occupy at least one cell so small hitboxes stay visible.
func (p *Projector) cellRect(box core.Rect, dst *core.Screen) core.Rect {
	x0 := box.X * dst.Width() / p.boardW
	y0 := box.Y * dst.Height() / p.boardH
	x1 := box.Right() * dst.Width() / p.boardW
	y1 := box.Bottom() * dst.Height() / p.boardH

	w := core.Max(x1-x0, 1)
	h := core.Max(y1-y0, 1)
	return core.NewRect(x0, y0, w, h)
}

// Draw renders a snapshot into the screen buffer. The buffer is cleared
// first; the HUD is drawn last so it stays readable over obstacles.
func (p *Projector) Draw(snap sim.Snapshot, dst *core.Screen) {
	dst.Clear()

	for _, o := range snap.Obstacles {
		p.drawObstacle(o, dst)
	}

	p.drawAvatar(snap.Avatar, dst)

	dst.DrawTextColored(2, 0, " "+snap.ScoreLabel()+" ", core.ColorBrightYellow)
}

// drawObstacle renders one barrier half, with a cap row on its gap-facing edge.
func (p *Projector) drawObstacle(o sim.ObstacleView, dst *core.Screen) {
	r := p.cellRect(o.Box, dst)
	dst.DrawRect(r, pipeChar, core.ColorGreen)

	// Cap the edge that faces the opening.
	if o.Role == sim.RoleTop {
		dst.DrawHLine(r.X, r.Bottom()-1, r.W, pipeCapTop, core.ColorBrightGreen)
	} else {
		dst.DrawHLine(r.X, r.Y, r.W, pipeCapBottom, core.ColorBrightGreen)
	}
}

// drawAvatar renders the avatar with a beak on its leading edge.
func (p *Projector) drawAvatar(box core.Rect, dst *core.Screen) {
	r := p.cellRect(box, dst)
	dst.DrawRect(r, avatarBody, core.ColorYellow)
	dst.SetCell(r.Right()-1, r.Y, avatarChar, core.ColorBrightYellow)
}

// drawCenteredMessage draws a boxed two-line message in the screen's center.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
