package defender

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-defender/internal/core"
	"github.com/vovakirdan/tui-defender/internal/ecs"
	"github.com/vovakirdan/tui-defender/internal/world"
)

// Glyphs
const (
	glyphShipRight = '►'
	glyphShipLeft  = '◄'
	glyphLander    = 'Ж'
	glyphMutant    = 'Ѫ'
	glyphPerson    = 'λ'
	glyphOrb       = '•'
	glyphSpark     = '·'
	glyphLaser     = '─'
	glyphGround    = '▔'
	glyphMapDot    = '▪'
	glyphSeparator = '━'
)

// layout maps world coordinates onto a character screen. Row 0 is the HUD,
// the minimap sits below it, and the playfield fills the rest down to the
// ground row.
type layout struct {
	w, h      int
	mapTop    int
	mapRows   int
	fieldTop  int
	fieldRows int
	left      float64 // world x at column 0
	winW      float64
	top       float64 // world y at the first playfield row
}

func (w *World) layout(dst *core.Screen) layout {
	l := layout{w: dst.Width(), h: dst.Height(), winW: w.cfg.Window.Width, top: w.playfieldTop()}
	l.mapTop = 1
	l.mapRows = max(2, int(math.Round(float64(l.h)*w.cfg.Window.MinimapHeight)))
	l.fieldTop = l.mapTop + l.mapRows + 1
	l.fieldRows = max(1, l.h-l.fieldTop-1)
	l.left = w.camera.X - l.winW/2
	return l
}

func (l layout) col(x float64) int {
	return int(math.Floor((x - l.left) / l.winW * float64(l.w)))
}

func (l layout) row(y float64) int {
	f := 1 - core.ClampF(y/l.top, 0, 1)
	return l.fieldTop + int(math.Round(f*float64(l.fieldRows-1)))
}

// Render draws the HUD, minimap, playfield and ground.
func (w *World) Render(dst *core.Screen) {
	l := w.layout(dst)
	if l.h < 6 || l.w < 20 {
		dst.DrawTextCentered(l.h/2, "window too small", core.ColorBrightRed)
		return
	}

	hud := fmt.Sprintf(" SCORE %06d  WAVE %d  ENEMIES %d  PERSONS %d", w.score, w.wave, w.count, w.persons.Len())
	dst.DrawTextColor(0, 0, hud, core.ColorBrightWhite)

	w.renderMinimap(dst, l)
	dst.DrawHLine(0, l.mapTop+l.mapRows, l.w, glyphSeparator, core.ColorBlue)
	dst.DrawHLine(0, l.h-1, l.w, glyphGround, core.ColorOrange)

	w.persons.Each(func(e ecs.Entity, p *Person) {
		pos, _ := w.position(e)
		c := core.ColorBrightYellow
		if p.State == Falling {
			c = core.ColorYellow
		}
		w.plot(dst, l, pos, glyphPerson, c)
	})
	w.enemies.Each(func(e ecs.Entity, en *Enemy) {
		pos, _ := w.position(e)
		glyph, c := glyphLander, core.ColorBrightGreen
		if en.Variant == Mutant {
			glyph, c = glyphMutant, core.ColorBrightMagenta
		}
		w.plot(dst, l, pos, glyph, c)
	})
	w.projectiles.Each(func(e ecs.Entity, p *Projectile) {
		pos, _ := w.position(e)
		switch p.Kind {
		case KindLaser:
			half := p.Bound.X / 2
			from, to := l.col(pos.X-half), l.col(pos.X+half)
			r := l.row(pos.Y)
			for x := max(0, from); x <= min(l.w-1, to); x++ {
				dst.SetColor(x, r, glyphLaser, p.Color)
			}
		case KindOrb:
			w.plot(dst, l, pos, glyphOrb, p.Color)
		case KindSpark:
			w.plot(dst, l, pos, glyphSpark, p.Color)
		}
	})
	if pos, ok := w.PlayerPos(); ok {
		glyph := glyphShipRight
		if w.ship.Facing < 0 {
			glyph = glyphShipLeft
		}
		w.plot(dst, l, pos, glyph, core.ColorBrightCyan)
	}
}

func (w *World) plot(dst *core.Screen, l layout, pos core.Vec2, r rune, c core.Color) {
	x, y := l.col(pos.X), l.row(pos.Y)
	if x < 0 || x >= l.w {
		return
	}
	dst.SetColor(x, y, r, c)
}

// renderMinimap draws every entity on a strip showing the whole world with
// the camera in the middle.
func (w *World) renderMinimap(dst *core.Screen, l layout) {
	m := world.NewMinimap(w.size, w.camera.X, w.cfg.Window.Height)
	top := w.playfieldTop() / w.cfg.Window.Height
	dot := func(pos core.Vec2, c core.Color) {
		x := int(m.X(pos.X) * float64(l.w))
		f := 1 - core.ClampF(m.Y(pos.Y)/top, 0, 1)
		y := l.mapTop + int(math.Round(f*float64(l.mapRows-1)))
		dst.SetColor(x, y, glyphMapDot, c)
	}

	span := int(l.winW / w.size * float64(l.w) / 2)
	mid := l.w / 2
	for y := l.mapTop; y < l.mapTop+l.mapRows; y++ {
		dst.SetColor(mid-span-1, y, '[', core.ColorGray)
		dst.SetColor(mid+span+1, y, ']', core.ColorGray)
	}

	w.persons.Each(func(e ecs.Entity, _ *Person) {
		pos, _ := w.position(e)
		dot(pos, core.ColorYellow)
	})
	w.enemies.Each(func(e ecs.Entity, en *Enemy) {
		pos, _ := w.position(e)
		dot(pos, traitsOf(w.cfg, en.Variant).MapColor)
	})
	if pos, ok := w.PlayerPos(); ok {
		dot(pos, core.ColorBrightWhite)
	}
}
