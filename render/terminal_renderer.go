package render

import (
	"math"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-slicer/component"
	"github.com/lixenwraith/vi-slicer/engine"
	"github.com/lixenwraith/vi-slicer/input"
	"github.com/lixenwraith/vi-slicer/parameter"
	"github.com/lixenwraith/vi-slicer/parameter/visual"
	"github.com/lixenwraith/vi-slicer/scoreboard"
	"github.com/lixenwraith/vi-slicer/vmath"
)

// View is everything drawn in one frame
type View struct {
	Snapshot *engine.Snapshot
	// Trail is the pointer trail, nil when the pointer is unused
	Trail *input.Trail
	// Now is the time trail samples are faded against, Snapshot.Time when zero
	Now time.Time
	// Scores is the difficulty table listed on the game-over screen
	Scores []scoreboard.Entry
	// ShowKeys labels objects with their slice key
	ShowKeys bool
	Muted    bool
}

// TerminalRenderer draws round snapshots onto a tcell screen
// The play area is scaled onto the whole grid, the HUD overlays the top row
type TerminalRenderer struct {
	screen   tcell.Screen
	viewport vmath.Viewport
	palette  *Palette
	text     *Text
	bg       tcell.Style
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen, text *Text) *TerminalRenderer {
	if text == nil {
		text = NewText(defaultLanguage)
	}
	r := &TerminalRenderer{
		screen:  screen,
		palette: DefaultPalette,
		text:    text,
	}
	r.bg = tcell.StyleDefault.Background(Tcell(r.palette.Background)).Foreground(Tcell(r.palette.Text))
	cols, rows := screen.Size()
	r.Resize(cols, rows)
	return r
}

// Resize updates the cell mapping after a terminal resize
func (r *TerminalRenderer) Resize(cols, rows int) {
	r.viewport = vmath.NewViewport(cols, rows, parameter.PlayWidth, parameter.PlayHeight)
}

// Viewport returns the current cell mapping
func (r *TerminalRenderer) Viewport() vmath.Viewport {
	return r.viewport
}

// RenderFrame renders the entire frame and shows it
func (r *TerminalRenderer) RenderFrame(v View) {
	r.screen.Fill(' ', r.bg)

	if r.viewport.Cols < parameter.MinCols || r.viewport.Rows < parameter.MinRows {
		r.drawCentered(r.viewport.Rows/2, r.text.Get(TextTooSmall), r.fg(r.palette.Danger))
		r.screen.Show()
		return
	}

	snap := v.Snapshot
	if snap == nil {
		r.screen.Show()
		return
	}
	now := v.Now
	if now.IsZero() {
		now = snap.Time
	}

	for i := range snap.Objects {
		r.drawObject(&snap.Objects[i], snap.Time, v.ShowKeys)
	}
	if v.Trail != nil {
		r.drawTrail(v.Trail, now)
	}

	r.drawHUD(snap, v.Muted)

	if snap.Terminal && snap.Result != nil {
		r.drawGameOver(snap, v.Scores)
	}

	r.screen.Show()
}

func (r *TerminalRenderer) fg(c colorful.Color) tcell.Style {
	return r.bg.Foreground(Tcell(c))
}

func (r *TerminalRenderer) setCell(col, row int, ch rune, style tcell.Style) {
	if col < 0 || row < 0 || col >= r.viewport.Cols || row >= r.viewport.Rows {
		return
	}
	r.screen.SetContent(col, row, ch, nil, style)
}

// fillDisc paints every cell whose center lies within radius of center
// The cell containing center is always painted so small bodies stay visible
func (r *TerminalRenderer) fillDisc(center vmath.Vec2, radius float64, ch rune, style tcell.Style) {
	vp := r.viewport
	c0, r0, _ := vp.ToCell(vmath.Vec2{X: center.X - radius, Y: center.Y - radius})
	c1, r1, _ := vp.ToCell(vmath.Vec2{X: center.X + radius, Y: center.Y + radius})
	c0, r0 = max(c0, 0), max(r0, 0)
	c1, r1 = min(c1, vp.Cols-1), min(r1, vp.Rows-1)

	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if vmath.V2Dist(vp.ToPlay(col, row), center) <= radius {
				r.setCell(col, row, ch, style)
			}
		}
	}
	if col, row, ok := vp.ToCell(center); ok {
		r.setCell(col, row, ch, style)
	}
}

func (r *TerminalRenderer) drawObject(o *component.Object, now time.Time, showKeys bool) {
	switch o.State {
	case component.StateFalling:
		r.drawBody(o, showKeys)
	case component.StateSliced, component.StateDecaying:
		r.drawRemnants(o, now)
	}
}

func (r *TerminalRenderer) drawBody(o *component.Object, showKeys bool) {
	skin := r.palette.Skin(o)
	radius := o.Size / 2

	switch o.Payload.(type) {
	case component.Bomb:
		r.fillDisc(o.Pos, radius, visual.CharBomb, r.fg(skin))
		// Fuse spins with the body
		tip := vmath.V2Add(o.Pos, vmath.Vec2{
			X: math.Cos(o.Rotation) * radius,
			Y: math.Sin(o.Rotation) * radius,
		})
		if col, row, ok := r.viewport.ToCell(tip); ok {
			r.setCell(col, row, visual.CharFuse, r.fg(r.palette.Fuse))
		}
	case component.Ice:
		r.fillDisc(o.Pos, radius, visual.CharIce, r.fg(skin))
	default:
		r.fillDisc(o.Pos, radius, visual.CharFruit, r.fg(skin))
	}

	if showKeys && o.Key != 0 {
		if col, row, ok := r.viewport.ToCell(o.Pos); ok {
			label := r.bg.Foreground(Tcell(r.palette.Background)).Background(Tcell(skin)).Bold(true)
			r.setCell(col, row, unicode.ToUpper(o.Key), label)
		}
	}
}

func (r *TerminalRenderer) drawRemnants(o *component.Object, now time.Time) {
	progress := float64(now.Sub(o.SlicedAt)) / float64(parameter.DecayDelay)
	strength := 1 - min(max(progress, 0), 1)
	inner := r.palette.Inner(o)

	if _, ok := o.Payload.(component.Bomb); ok {
		// Burst grows while it fades
		radius := o.Size / 2 * (0.5 + progress)
		r.fillDisc(o.Pos, radius, visual.CharFuse, r.fg(r.palette.Fade(inner, strength)))
		return
	}

	partStyle := r.fg(r.palette.Fade(inner, strength))
	for i := range o.Parts {
		p := &o.Parts[i]
		ch := visual.HalfChars[0]
		if int(p.Side) < len(visual.HalfChars) {
			ch = visual.HalfChars[p.Side]
		}
		r.fillDisc(p.Pos, o.Size/4, ch, partStyle)
	}

	for i := range o.Particles {
		p := &o.Particles[i]
		if !p.Alive(now) {
			continue
		}
		life := 1 - float64(now.Sub(p.Born))/float64(p.Lifetime)
		if col, row, ok := r.viewport.ToCell(p.Pos); ok {
			r.setCell(col, row, visual.CharJuice, r.fg(r.palette.Fade(inner, life)))
		}
	}
}

// drawTrail rasterizes the segments between consecutive samples
// Each segment takes the fade of its newer end
func (r *TerminalRenderer) drawTrail(trail *input.Trail, now time.Time) {
	points := trail.Points()
	if len(points) == 0 {
		return
	}
	step := math.Min(r.viewport.CellW(), r.viewport.CellH()) / 2

	for i := 1; i < len(points); i++ {
		fade := trail.Fade(points[i], now)
		if fade < parameter.TrailMinFade {
			continue
		}
		style := r.fg(r.palette.Fade(r.palette.Trail, fade))
		a, b := points[i-1].Pos, points[i].Pos
		n := int(math.Ceil(vmath.V2Dist(a, b) / step))
		for k := 0; k <= n; k++ {
			t := 1.0
			if n > 0 {
				t = float64(k) / float64(n)
			}
			if col, row, ok := r.viewport.ToCell(vmath.V2Lerp(a, b, t)); ok {
				r.setCell(col, row, visual.CharTrail, style)
			}
		}
	}

	head := points[len(points)-1]
	if fade := trail.Fade(head, now); fade >= parameter.TrailMinFade {
		if col, row, ok := r.viewport.ToCell(head.Pos); ok {
			r.setCell(col, row, visual.CharTrailHead, r.fg(r.palette.Fade(r.palette.Trail, fade)))
		}
	}
}

// drawText draws s from col and returns the column after it
func (r *TerminalRenderer) drawText(col, row int, s string, style tcell.Style) int {
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		r.setCell(col, row, ch, style)
		col += w
	}
	return col
}

// drawCentered draws s horizontally centered on row
func (r *TerminalRenderer) drawCentered(row int, s string, style tcell.Style) {
	col := (r.viewport.Cols - runewidth.StringWidth(s)) / 2
	r.drawText(max(col, 0), row, s, style)
}
