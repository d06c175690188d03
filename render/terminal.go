package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orbit-defense/game"
	"github.com/lixenwraith/orbit-defense/status"
	"github.com/lixenwraith/orbit-defense/vmath"
)

// Glyphs
const (
	glyphBody       = '#'
	glyphSmall      = 'o'
	glyphMedium     = 'O'
	glyphLarge      = '@'
	glyphProjectile = '+'
	glyphImpact     = '*'
)

var bossGlyphs = []rune{'B', 'b', '%'}

// Styles
var (
	styleDefault    = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleBody       = styleDefault.Foreground(tcell.ColorDodgerBlue)
	styleHazard     = styleDefault.Foreground(tcell.ColorRed)
	styleBenign     = styleDefault.Foreground(tcell.ColorGreen)
	styleBoss       = styleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
	styleProjectile = styleDefault.Foreground(tcell.ColorYellow)
	styleImpact     = styleDefault.Foreground(tcell.ColorOrange).Bold(true)
	styleStatus     = styleDefault.Reverse(true)
	styleBanner     = styleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// TerminalRenderer draws simulation frames onto a tcell screen
// The bottom row is the status bar, the rest is the playfield
type TerminalRenderer struct {
	screen     tcell.Screen
	camera     Camera
	viewRadius float64
}

// NewTerminalRenderer fits viewRadius world units into the screen's playfield
func NewTerminalRenderer(screen tcell.Screen, viewRadius float64) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen, viewRadius: viewRadius}
	r.Resize()
	return r
}

// Resize refits the camera to the current screen size
func (r *TerminalRenderer) Resize() {
	w, h := r.screen.Size()
	r.camera = NewCamera(w, max(h-1, 1), r.viewRadius)
}

// Camera returns the playfield camera for input mapping
func (r *TerminalRenderer) Camera() Camera {
	return r.camera
}

// AimAt converts a clicked cell into aim input, ok is false on the status bar
func (r *TerminalRenderer) AimAt(x, y int) (game.AimInput, bool) {
	if y >= r.camera.Height {
		return game.AimInput{}, false
	}
	nx, ny := r.camera.NormalizedFromCell(x, y)
	return game.AimInput{X: nx, Y: ny, Ray: r.camera.Ray(nx, ny)}, true
}

// Draw renders one frame
func (r *TerminalRenderer) Draw(views []game.EntityView, hud status.HUD, defendedRadius float64) {
	r.screen.Fill(' ', styleDefault)

	r.drawBody(defendedRadius)
	for _, v := range views {
		switch v.Kind {
		case game.KindThreat:
			r.drawThreat(v)
		case game.KindProjectile:
			r.put(v.Position, glyphProjectile, styleProjectile)
		}
	}
	r.drawStatus(hud)
	r.drawBanner(hud)

	r.screen.Show()
}

func (r *TerminalRenderer) drawBody(radius float64) {
	cx, cy, _ := r.camera.Project(vmath.Vec3{})
	cols := r.camera.Columns(radius)
	rows := max(cols/int(CellAspect), 1)
	for dy := -rows; dy <= rows; dy++ {
		for dx := -cols; dx <= cols; dx++ {
			fx := float64(dx) / float64(cols)
			fy := float64(dy) / float64(rows)
			if fx*fx+fy*fy <= 1 {
				r.set(cx+dx, cy+dy, glyphBody, styleBody)
			}
		}
	}
}

func (r *TerminalRenderer) drawThreat(v game.EntityView) {
	if v.Impacting {
		r.put(v.Position, glyphImpact, styleImpact)
		return
	}
	if v.Generation >= 0 {
		g := bossGlyphs[min(v.Generation, len(bossGlyphs)-1)]
		r.put(v.Position, g, styleBoss)
		return
	}

	glyph := glyphMedium
	switch v.SizeClass {
	case "small":
		glyph = glyphSmall
	case "large":
		glyph = glyphLarge
	}
	style := styleBenign
	if v.Hazardous {
		style = styleHazard
	}
	r.put(v.Position, glyph, style)
}

func (r *TerminalRenderer) drawStatus(hud status.HUD) {
	w, h := r.screen.Size()
	line := fmt.Sprintf(" Wave %d  Score %d  Health %d  Threats %d  Destroyed %d",
		hud.Wave, hud.Score, hud.Health, hud.LiveThreats, hud.DestroyedCount)
	if hud.BossActive {
		line += fmt.Sprintf("  Boss %d/%d", hud.BossPartsDestroyed, hud.BossPartsTotal)
	}
	if hud.Paused {
		line += "  [PAUSED]"
	}
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, h-1, ' ', nil, styleStatus)
	}
	r.text(0, h-1, line, styleStatus)
}

func (r *TerminalRenderer) drawBanner(hud status.HUD) {
	var msg string
	switch {
	case hud.Outcome == "victory":
		msg = "VICTORY - press r to play again"
	case hud.Outcome == "defeat":
		msg = "DEFEAT - press r to play again"
	case hud.CutscenePending:
		msg = "Something large approaches - press Enter"
	case !hud.Started:
		msg = "Press s to start"
	default:
		return
	}
	x := (r.camera.Width - len(msg)) / 2
	r.text(max(x, 0), r.camera.Height/4, msg, styleBanner)
}

// put draws a glyph at a world position when on screen
func (r *TerminalRenderer) put(p vmath.Vec3, glyph rune, style tcell.Style) {
	if x, y, ok := r.camera.Project(p); ok {
		r.screen.SetContent(x, y, glyph, nil, style)
	}
}

func (r *TerminalRenderer) set(x, y int, glyph rune, style tcell.Style) {
	if x >= 0 && x < r.camera.Width && y >= 0 && y < r.camera.Height {
		r.screen.SetContent(x, y, glyph, nil, style)
	}
}

func (r *TerminalRenderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
