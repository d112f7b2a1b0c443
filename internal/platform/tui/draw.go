package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/runner"
)

// Visual characters for rendering
const (
	DinoBody    = '█'
	DinoDuck    = '▄'
	DinoDead    = '✕'
	CactusChar  = '▓'
	BirdUp      = '▀'
	BirdDown    = '▄'
	CloudChar   = '░'
	GroundChar  = '═'
	GroundSpeck = '·'
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// painter maps world coordinates onto a screen playfield.
type painter struct {
	dst    *core.Screen
	world  config.World
	fieldH int
}

func newPainter(dst *core.Screen, world config.World, fieldH int) painter {
	return painter{dst: dst, world: world, fieldH: fieldH}
}

func (p painter) cellX(x float64) int {
	return int(math.Floor(x * float64(p.dst.Width()) / p.world.Width))
}

func (p painter) cellY(y float64) int {
	return hudRows + int(math.Floor(y*float64(p.fieldH)/p.world.Height))
}

// fill paints a world rectangle. Anything with area gets at least one cell.
func (p painter) fill(r core.Rect, ch rune, c core.Color) {
	x0, x1 := p.cellX(r.X), p.cellX(r.Right())
	y0, y1 := p.cellY(r.Y), p.cellY(r.Bottom())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	// Keep sprites off the HUD and out of the ground row.
	groundRow := p.cellY(p.world.GroundY)
	y0 = core.Clamp(y0, hudRows, groundRow-1)
	y1 = core.Clamp(y1, y0+1, groundRow)
	p.dst.FillRect(x0, y0, x1-x0, y1-y0, ch, c)
}

// RenderFrame draws a snapshot onto a fresh width x height screen and
// returns it without colors. Headless runs use it to show a frame.
func RenderFrame(cfg config.Config, snap runner.Snapshot, width, height int) string {
	screen := core.NewScreen(width, height)
	drawSnapshot(screen, cfg, snap, false)
	return screen.String()
}

// drawSnapshot renders one frame of the simulation.
func drawSnapshot(dst *core.Screen, cfg config.Config, snap runner.Snapshot, paused bool) {
	dst.Clear()
	fieldH := dst.Height() - hudRows
	if fieldH <= 0 || dst.Width() <= 0 {
		return
	}
	p := newPainter(dst, cfg.World, fieldH)

	for _, c := range snap.Clouds {
		p.fill(c, CloudChar, core.ColorGray)
	}

	drawGround(p, snap.World.GroundX)

	for _, ob := range snap.Obstacles {
		drawObstacle(p, ob)
	}

	drawPlayer(p, snap.Player)

	drawHUD(dst, snap)

	switch {
	case snap.World.Phase == runner.PhaseGameOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R or Space to restart", snap.World.Score))
	case paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func drawGround(p painter, groundX float64) {
	y := p.cellY(p.world.GroundY)
	p.dst.DrawHLine(0, y, p.dst.Width(), GroundChar, core.ColorWhite)

	// Specks below the line scroll with the world.
	const spacing = 7
	offset := ((p.cellX(-groundX) % spacing) + spacing) % spacing
	for x := spacing - offset; x < p.dst.Width(); x += spacing {
		p.dst.SetColored(x, y+1, GroundSpeck, core.ColorGray)
	}
}

func drawObstacle(p painter, ob runner.ObstacleView) {
	switch ob.Kind {
	case runner.KindBird:
		ch := BirdUp
		if ob.Frame%2 == 1 {
			ch = BirdDown
		}
		p.fill(ob.Bounds, ch, core.ColorYellow)
	default:
		p.fill(ob.Bounds, CactusChar, core.ColorGreen)
	}
}

func drawPlayer(p painter, pl runner.PlayerView) {
	switch pl.State {
	case runner.StateDead:
		p.fill(pl.Bounds, DinoDead, core.ColorRed)
	case runner.StateDucking:
		p.fill(pl.Bounds, DinoDuck, core.ColorBrightGreen)
	default:
		p.fill(pl.Bounds, DinoBody, core.ColorBrightGreen)
	}

	// Alternate the legs while running.
	if pl.State == runner.StateRunning {
		x0 := p.cellX(pl.Bounds.X)
		y := p.cellY(pl.Bounds.Bottom()) - 1
		leg := x0 + pl.Frame%2
		p.dst.SetColored(leg, y, ' ', core.ColorDefault)
	}
}

func drawHUD(dst *core.Screen, snap runner.Snapshot) {
	left := fmt.Sprintf(" Score: %d  Best: %d ", snap.World.Score, snap.Best)
	dst.DrawText(1, 0, left)

	right := fmt.Sprintf(" Spd: %.1f ", snap.World.Speed)
	dst.DrawText(dst.Width()-len(right)-1, 0, right)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}
