package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-slicer/parameter"
	"github.com/lixenwraith/vi-slicer/vmath"
)

// Machine parses tcell events into Intents
// Mouse cells are mapped to play space through the current viewport
type Machine struct {
	viewport vmath.Viewport
	dragging bool
}

// NewMachine creates a machine for a cols×rows terminal
func NewMachine(cols, rows int) *Machine {
	return &Machine{
		viewport: vmath.NewViewport(cols, rows, parameter.PlayWidth, parameter.PlayHeight),
	}
}

// Viewport returns the current cell mapping
func (m *Machine) Viewport() vmath.Viewport {
	return m.viewport
}

// Process parses a terminal event and returns an Intent
// Returns nil for events with no game meaning
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	case *tcell.EventResize:
		cols, rows := ev.Size()
		m.viewport = vmath.NewViewport(cols, rows, parameter.PlayWidth, parameter.PlayHeight)
		return &Intent{Type: IntentResize}
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return &Intent{Type: IntentQuit}
	case tcell.KeyRune:
	default:
		return nil
	}

	r := unicode.ToLower(ev.Rune())
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		if r == 'c' {
			return &Intent{Type: IntentQuit}
		}
		return nil
	}
	switch r {
	case parameter.QuitKey:
		return &Intent{Type: IntentQuit}
	case parameter.PauseKey:
		return &Intent{Type: IntentPause}
	case parameter.RestartKey:
		return &Intent{Type: IntentRestart}
	case parameter.MuteKey:
		return &Intent{Type: IntentToggleMute}
	}
	if !unicode.IsPrint(r) || r == ' ' {
		return nil
	}
	return &Intent{Type: IntentKey, Key: r}
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	if ev.Buttons()&tcell.Button1 != 0 {
		m.dragging = true
		col, row := ev.Position()
		return &Intent{Type: IntentPoint, Point: m.viewport.ToPlay(col, row)}
	}
	if m.dragging {
		m.dragging = false
		return &Intent{Type: IntentPenUp}
	}
	return nil
}
