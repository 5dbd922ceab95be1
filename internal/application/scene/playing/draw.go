package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/pirate/internal/application/state"
	"github.com/younwookim/pirate/internal/domain/entity"
)

// Colors for rendering
var (
	colorSea      = color.RGBA{20, 40, 70, 255}
	colorWall     = color.RGBA{120, 84, 50, 255}
	colorPlatform = color.RGBA{160, 120, 70, 255}
	colorPlayer   = color.RGBA{100, 200, 100, 255}
	colorAirborne = color.RGBA{130, 220, 230, 255}
	colorFacing   = color.RGBA{255, 255, 255, 220}
	colorLeak     = color.RGBA{80, 160, 255, 255}
	colorRepair   = color.RGBA{255, 215, 0, 255}
	colorHealthBG = color.RGBA{60, 60, 60, 255}
	colorHealthFG = color.RGBA{100, 200, 100, 255}
	colorHealthLo = color.RGBA{220, 70, 60, 255}
	colorOverlay  = color.RGBA{0, 0, 0, 150}
	colorSunk     = color.RGBA{0, 20, 60, 190}
)

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorSea)

	camX, camY := p.camera()
	p.drawTiles(screen, camX, camY)
	p.drawLeaks(screen, camX, camY)
	p.drawPlayer(screen, camX, camY)
	p.drawUI(screen)

	if ebiten.IsKeyPressed(ebiten.KeyTab) {
		p.drawDebug(screen)
	}

	switch p.state {
	case state.StateMenu:
		p.drawMenu(screen)
	case state.StateSunk:
		p.drawSunk(screen)
	case state.StateReplayEnded:
		ebitenutil.DebugPrintAt(screen, "REPLAY FINISHED", p.screenW/2-45, p.screenH/2)
	}
}

// camera centers the player and clamps to the stage bounds
func (p *Playing) camera() (float64, float64) {
	stage := p.sim.Stage()
	w, h := stage.PixelSize()
	center := p.sim.Body().Collider().Center()

	camX := clampCam(center.X-float64(p.screenW)/2, float64(w-p.screenW))
	camY := clampCam(center.Y-float64(p.screenH)/2, float64(h-p.screenH))
	return camX, camY
}

func clampCam(v, maxV float64) float64 {
	if v > maxV {
		v = maxV
	}
	if v < 0 {
		v = 0
	}
	return v
}

func (p *Playing) drawTiles(screen *ebiten.Image, camX, camY float64) {
	stage := p.sim.Stage()
	ts := stage.TileSize
	startX := int(camX) / ts
	startY := int(camY) / ts
	endX := (int(camX)+p.screenW)/ts + 1
	endY := (int(camY)+p.screenH)/ts + 1

	for ty := startY; ty <= endY && ty < stage.Height; ty++ {
		for tx := startX; tx <= endX && tx < stage.Width; tx++ {
			tile := stage.GetTile(tx, ty)
			x := float32(float64(tx*ts) - camX)
			y := float32(float64(ty*ts) - camY)

			switch tile.Type {
			case entity.TileWall:
				vector.FillRect(screen, x, y, float32(ts), float32(ts), colorWall, false)
			case entity.TilePlatform:
				vector.FillRect(screen, x, y, float32(ts), float32(ts), colorPlatform, false)
			}
		}
	}
}

func (p *Playing) drawLeaks(screen *ebiten.Image, camX, camY float64) {
	for _, leak := range p.sim.Leaks().Active() {
		x := float32(leak.Pos.X - camX)
		y := float32(leak.Pos.Y - camY)
		vector.DrawFilledCircle(screen, x, y-3, 4, colorLeak, true)
		if leak.Progress > 0 {
			vector.StrokeRect(screen, x-8, y-14, 16, 3, 1, colorOverlay, false)
			vector.FillRect(screen, x-8, y-14, float32(16*leak.Progress), 3, colorRepair, false)
		}
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, camX, camY float64) {
	r := p.sim.Body().Collider()
	x := float32(r.X - camX)
	y := float32(r.Y - camY)

	c := colorPlayer
	if !p.sim.Player().Grounded() {
		c = colorAirborne
	}
	vector.FillRect(screen, x, y, float32(r.W), float32(r.H), c, false)

	// facing marker at eye height
	eyeY := y + float32(r.H)/4
	if p.sim.Player().FacingRight() {
		vector.StrokeLine(screen, x+float32(r.W)/2, eyeY, x+float32(r.W)+3, eyeY, 2, colorFacing, false)
	} else {
		vector.StrokeLine(screen, x+float32(r.W)/2, eyeY, x-3, eyeY, 2, colorFacing, false)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	// Health bar
	barX := float32(10)
	barY := float32(p.screenH - 20)
	barW := float32(100)
	barH := float32(10)

	health := p.sim.Health()
	fg := colorHealthFG
	if health.Normalized() < 0.3 {
		fg = colorHealthLo
	}
	vector.FillRect(screen, barX, barY, barW, barH, colorHealthBG, false)
	vector.FillRect(screen, barX, barY, barW*float32(health.Normalized()), barH, fg, false)

	// Repair progress next to the health bar
	if fill := p.sim.RepairProgress(); fill > 0 {
		cx, cy := barX+barW+16, barY+barH/2
		vector.StrokeCircle(screen, cx, cy, 6, 1, colorHealthBG, true)
		vector.DrawFilledCircle(screen, cx, cy, float32(6*fill), colorRepair, true)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Points: %d  Leaks: %d", p.sim.Points(), p.sim.Leaks().Count()), 10, p.screenH-35)

	keys := p.cfg.Keys
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s/%s: Move | %s: Jump | %s: Repair | %s: Menu",
		keys.Left, keys.Right, keys.Up, keys.Repair, keys.Menu))
}

func (p *Playing) drawDebug(screen *ebiten.Image) {
	player := p.sim.Player()
	v := player.Velocity()
	stats := p.sim.Stats()
	text := fmt.Sprintf("%s grounded=%t ceiling=%t\nv=(%.0f, %.0f) steps=%d dropped=%d",
		player.Intent(), player.Grounded(), player.CeilingContact(), v.X, v.Y, stats.Steps, stats.Dropped)
	ebitenutil.DebugPrintAt(screen, text, 10, 20)
}

func (p *Playing) drawMenu(screen *ebiten.Image) {
	vector.FillRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), colorOverlay, false)

	text := fmt.Sprintf("MENU\n\nThe boat keeps sinking!\n\nRelease %s to close", p.cfg.Keys.Menu)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-70, p.screenH/2-30)
}

func (p *Playing) drawSunk(screen *ebiten.Image) {
	vector.FillRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), colorSunk, false)

	text := fmt.Sprintf("THE BOAT SANK\n\nPoints: %d", p.sim.Points())
	if p.opts.Replay == nil {
		text += fmt.Sprintf("\n\nPress %s to set sail again", p.cfg.Keys.Up)
	}
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-70, p.screenH/2-30)
}
