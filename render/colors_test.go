package render

import (
	"testing"

	"github.com/lixenwraith/vi-slicer/component"
	"github.com/lixenwraith/vi-slicer/parameter/visual"
	"github.com/lixenwraith/vi-slicer/system"
)

func TestPaletteTablesMatchVariants(t *testing.T) {
	p := NewPalette()
	if len(p.Fruit) != component.VariantCount {
		t.Errorf("Expected %d fruit colors, got %d", component.VariantCount, len(p.Fruit))
	}
	if len(p.Flesh) != component.VariantCount {
		t.Errorf("Expected %d flesh colors, got %d", component.VariantCount, len(p.Flesh))
	}
}

func TestPaletteSkinByKind(t *testing.T) {
	p := NewPalette()
	tests := []struct {
		name    string
		payload component.Payload
		want    string
	}{
		{"apple", component.Fruit{Variant: component.VariantApple}, visual.HexApple},
		{"watermelon", component.Fruit{Variant: component.VariantWatermelon}, visual.HexWatermelon},
		{"bomb", component.Bomb{}, visual.HexBomb},
		{"ice", component.Ice{}, visual.HexIce},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := component.NewObject(1, tt.payload, component.Kinetic{}, 0)
			if got := p.Skin(o).Hex(); got != tt.want {
				t.Errorf("Expected skin %s, got %s", tt.want, got)
			}
		})
	}
}

func TestPaletteInnerByKind(t *testing.T) {
	p := NewPalette()
	fruit := component.NewObject(1, component.Fruit{Variant: component.VariantOrange}, component.Kinetic{}, 0)
	if got := p.Inner(fruit).Hex(); got != visual.HexOrangeFlesh {
		t.Errorf("Expected orange flesh %s, got %s", visual.HexOrangeFlesh, got)
	}
	ice := component.NewObject(2, component.Ice{}, component.Kinetic{}, 0)
	if got := p.Inner(ice).Hex(); got != visual.HexIceShard {
		t.Errorf("Expected ice shard %s, got %s", visual.HexIceShard, got)
	}
}

func TestPaletteFade(t *testing.T) {
	p := NewPalette()
	c := mustHex("#ffffff")

	if got := p.Fade(c, 1).Hex(); got != "#ffffff" {
		t.Errorf("Expected full strength to keep color, got %s", got)
	}
	if got := p.Fade(c, 0).Hex(); got != visual.HexBackground {
		t.Errorf("Expected zero strength to be background %s, got %s", visual.HexBackground, got)
	}
	if got := p.Fade(c, -1).Hex(); got != visual.HexBackground {
		t.Errorf("Expected negative strength clamped to background, got %s", got)
	}

	half := p.Fade(c, 0.5)
	bg := p.Background
	if half.R <= bg.R || half.R >= 1 {
		t.Errorf("Expected half fade between background and white, got R=%f", half.R)
	}
}

func TestPaletteMedal(t *testing.T) {
	p := NewPalette()
	if got := p.Medal(system.MedalGold).Hex(); got != visual.HexGold {
		t.Errorf("Expected gold %s, got %s", visual.HexGold, got)
	}
	if got := p.Medal(system.MedalNone); got != p.Text {
		t.Errorf("Expected no medal to use text color, got %s", got.Hex())
	}
	if got := p.Medal(system.Medal(99)); got != p.Text {
		t.Errorf("Expected unknown medal to use text color, got %s", got.Hex())
	}
}

func TestTcellConversion(t *testing.T) {
	c := mustHex("#102030")
	r, g, b := Tcell(c).RGB()
	if r != 0x10 || g != 0x20 || b != 0x30 {
		t.Errorf("Expected (16,32,48), got (%d,%d,%d)", r, g, b)
	}
}

func TestMustHexRejectsMalformed(t *testing.T) {
	if got := mustHex("#1a1b26").Hex(); got != "#1a1b26" {
		t.Errorf("Expected #1a1b26, got %s", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected panic on malformed hex")
		}
	}()
	mustHex("1a1b26zz")
}
