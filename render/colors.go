package render

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/vi-slicer/component"
	"github.com/lixenwraith/vi-slicer/parameter/visual"
	"github.com/lixenwraith/vi-slicer/system"
)

// Palette holds the parsed display colors
type Palette struct {
	Background colorful.Color
	Text       colorful.Color
	Dim        colorful.Color
	Accent     colorful.Color
	Danger     colorful.Color
	Good       colorful.Color

	Fruit []colorful.Color
	Flesh []colorful.Color

	Bomb     colorful.Color
	Fuse     colorful.Color
	Ice      colorful.Color
	IceShard colorful.Color
	Trail    colorful.Color

	// Medals indexed by system.Medal, MedalNone uses Text
	Medals [4]colorful.Color
}

// DefaultPalette is the built-in color scheme
var DefaultPalette = NewPalette()

// NewPalette parses the hex definitions of the visual package
func NewPalette() *Palette {
	p := &Palette{
		Background: mustHex(visual.HexBackground),
		Text:       mustHex(visual.HexText),
		Dim:        mustHex(visual.HexDim),
		Accent:     mustHex(visual.HexAccent),
		Danger:     mustHex(visual.HexDanger),
		Good:       mustHex(visual.HexGood),
		Bomb:       mustHex(visual.HexBomb),
		Fuse:       mustHex(visual.HexBombFuse),
		Ice:        mustHex(visual.HexIce),
		IceShard:   mustHex(visual.HexIceShard),
		Trail:      mustHex(visual.HexTrail),
	}
	for _, h := range visual.FruitHex {
		p.Fruit = append(p.Fruit, mustHex(h))
	}
	for _, h := range visual.FleshHex {
		p.Flesh = append(p.Flesh, mustHex(h))
	}
	p.Medals = [4]colorful.Color{
		p.Text,
		mustHex(visual.HexBronze),
		mustHex(visual.HexSilver),
		mustHex(visual.HexGold),
	}
	return p
}

// mustHex parses a compile-time hex constant
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("render: bad hex color " + s + ": " + err.Error())
	}
	return c
}

// Skin returns the body color of an object
func (p *Palette) Skin(o *component.Object) colorful.Color {
	switch pl := o.Payload.(type) {
	case component.Fruit:
		if int(pl.Variant) < len(p.Fruit) {
			return p.Fruit[pl.Variant]
		}
		return p.Fruit[0]
	case component.Bomb:
		return p.Bomb
	default:
		return p.Ice
	}
}

// Inner returns the color of cut halves and juice
func (p *Palette) Inner(o *component.Object) colorful.Color {
	switch pl := o.Payload.(type) {
	case component.Fruit:
		if int(pl.Variant) < len(p.Flesh) {
			return p.Flesh[pl.Variant]
		}
		return p.Flesh[0]
	case component.Bomb:
		return p.Fuse
	default:
		return p.IceShard
	}
}

// Medal returns the display color of a medal
func (p *Palette) Medal(m system.Medal) colorful.Color {
	if int(m) >= len(p.Medals) {
		return p.Text
	}
	return p.Medals[m]
}

// Fade blends c toward the background, strength 1 keeps c and 0 is background
func (p *Palette) Fade(c colorful.Color, strength float64) colorful.Color {
	strength = min(max(strength, 0), 1)
	return p.Background.BlendRgb(c, strength).Clamped()
}

// Tcell converts a colorful color to a truecolor tcell color
func Tcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
