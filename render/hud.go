package render

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-slicer/engine"
	"github.com/lixenwraith/vi-slicer/parameter"
	"github.com/lixenwraith/vi-slicer/parameter/visual"
	"github.com/lixenwraith/vi-slicer/scoreboard"
)

// hudField is one colored status segment
type hudField struct {
	text  string
	color colorful.Color
	bold  bool
}

// drawHUD draws score and strikes on the left, round status on the right
func (r *TerminalRenderer) drawHUD(snap *engine.Snapshot, muted bool) {
	row := parameter.HUDRow

	left := []hudField{
		{text: r.text.Format(TextScore, snap.Score), color: r.palette.Text, bold: true},
		{text: r.text.Format(TextBest, snap.HighScore), color: r.palette.Dim},
	}
	if snap.ComboSize >= 2 {
		combo := r.text.Format(TextCombo, snap.ComboSize)
		if snap.ComboLabel != "" {
			combo += " " + r.text.Get("combo."+snap.ComboLabel)
		}
		left = append(left, hudField{text: combo, color: r.palette.Medal(snap.ComboMedal), bold: true})
	}

	col := 1
	for _, f := range left {
		col = r.drawField(col, row, f) + parameter.HUDGap
	}
	r.drawStrikes(col, row, snap.Strikes, snap.MaxStrikes)

	var right []hudField
	if snap.Frozen {
		color := r.palette.Ice
		if snap.FreezeRemaining < parameter.FreezeBlinkThreshold &&
			(snap.FreezeRemaining/parameter.FreezeBlinkInterval)%2 == 1 {
			color = r.palette.Dim
		}
		right = append(right, hudField{text: r.text.Format(TextFrozen, snap.FreezeRemaining.Seconds()), color: color})
	}
	if snap.Paused {
		right = append(right, hudField{text: r.text.Get(TextPaused), color: r.palette.Accent, bold: true})
	}
	if muted {
		right = append(right, hudField{text: r.text.Get(TextMuted), color: r.palette.Dim})
	}

	col = r.viewport.Cols - 1
	for i := len(right) - 1; i >= 0; i-- {
		col -= runewidth.StringWidth(right[i].text)
		r.drawField(col, row, right[i])
		col -= parameter.HUDGap
	}
}

func (r *TerminalRenderer) drawField(col, row int, f hudField) int {
	style := r.fg(f.color)
	if f.bold {
		style = style.Bold(true)
	}
	return r.drawText(col, row, f.text, style)
}

// drawStrikes draws used strikes as crosses and remaining ones as circles
func (r *TerminalRenderer) drawStrikes(col, row, strikes, maxStrikes int) int {
	for i := 0; i < maxStrikes; i++ {
		if i < strikes {
			r.setCell(col, row, visual.CharStrike, r.fg(r.palette.Danger).Bold(true))
		} else {
			r.setCell(col, row, visual.CharStrikeLeft, r.fg(r.palette.Dim))
		}
		col++
	}
	return col
}

// drawGameOver draws the result box with the difficulty score table
func (r *TerminalRenderer) drawGameOver(snap *engine.Snapshot, scores []scoreboard.Entry) {
	res := snap.Result
	width := max(int(float64(r.viewport.Cols)*parameter.OverlayWidthPercent), 20)
	inner := width - 4

	type line struct {
		text  string
		color colorful.Color
		bold  bool
	}
	lines := []line{
		{text: r.text.Get(TextGameOver), color: r.palette.Danger, bold: true},
		{text: r.text.Get("reason." + res.Reason.String()), color: r.palette.Text},
		{text: r.text.Format(TextScore, res.Score), color: r.palette.Text, bold: true},
	}
	if res.NewHighScore {
		lines = append(lines, line{text: r.text.Get(TextNewHigh), color: r.palette.Good, bold: true})
	}
	if snap.BestMedal > 0 {
		medal := r.text.Get("medal." + snap.BestMedal.String())
		lines = append(lines, line{text: fmt.Sprintf("%s ★ %d", medal, snap.BestCombo), color: r.palette.Medal(snap.BestMedal)})
	}
	switch {
	case res.Err != nil:
		lines = append(lines, line{text: r.text.Get(TextSaveFailed), color: r.palette.Danger})
	case res.Rank > 0:
		lines = append(lines, line{text: r.text.Format(TextRank, res.Rank), color: r.palette.Accent})
	default:
		lines = append(lines, line{text: r.text.Get(TextNotRanked), color: r.palette.Dim})
	}

	if len(scores) > 0 {
		lines = append(lines, line{}, line{
			text:  r.text.Format(TextScoresTitle, r.difficultyName(snap.Difficulty)),
			color: r.palette.Text,
			bold:  true,
		})
		for i, e := range scores {
			if i >= parameter.OverlayMaxEntries {
				break
			}
			color := r.palette.Dim
			if e.ID == res.Entry.ID {
				color = r.palette.Accent
			}
			lines = append(lines, line{text: scoreLine(i+1, e, inner), color: color})
		}
	}
	lines = append(lines, line{}, line{text: r.text.Get(TextRestartHint), color: r.palette.Dim})

	height := len(lines) + 2*parameter.OverlayPaddingY
	top := max((r.viewport.Rows-height)/2, parameter.HUDRow+1)
	left := (r.viewport.Cols - width) / 2
	box := r.bg.Background(Tcell(r.palette.Fade(r.palette.Dim, 0.25)))
	for row := top; row < top+height; row++ {
		for col := left; col < left+width; col++ {
			r.setCell(col, row, ' ', box)
		}
	}

	row := top + parameter.OverlayPaddingY
	for _, l := range lines {
		if l.text != "" {
			style := box.Foreground(Tcell(l.color))
			if l.bold {
				style = style.Bold(true)
			}
			r.drawCentered(row, runewidth.Truncate(l.text, inner, "…"), style)
		}
		row++
	}
}

// scoreLine formats a ranked entry as "rank. name....score" in width cells
func scoreLine(rank int, e scoreboard.Entry, width int) string {
	score := fmt.Sprintf("%d", e.Score)
	prefix := fmt.Sprintf("%2d. ", rank)
	nameWidth := width - runewidth.StringWidth(prefix) - runewidth.StringWidth(score) - 1
	if nameWidth < 1 {
		return prefix + score
	}
	name := runewidth.Truncate(e.Name, nameWidth, "…")
	dots := nameWidth - runewidth.StringWidth(name)
	return prefix + name + " " + strings.Repeat(".", dots) + score
}

func (r *TerminalRenderer) difficultyName(name string) string {
	if s, ok := r.text.Lookup("difficulty." + name); ok {
		return s
	}
	return name
}
