package component

import "github.com/lixenwraith/vi-slicer/parameter"

// Kind identifies the object class
type Kind uint8

const (
	KindFruit Kind = iota // Scored, missed fruit cost a strike
	KindBomb              // Ends the round when sliced
	KindIce               // Freezes spawn and motion when sliced
	kindCount
)

// KindCount is the number of object kinds, used to size weight tables
const KindCount = int(kindCount)

func (k Kind) String() string {
	switch k {
	case KindFruit:
		return "fruit"
	case KindBomb:
		return "bomb"
	case KindIce:
		return "ice"
	default:
		return "unknown"
	}
}

// Variant is the fruit species, only meaningful for fruit
type Variant uint8

const (
	VariantApple Variant = iota
	VariantBanana
	VariantOrange
	VariantStrawberry
	VariantWatermelon
	VariantPineapple
	variantCount
)

// VariantCount is the number of fruit species
const VariantCount = int(variantCount)

var variantNames = [variantCount]string{
	"apple", "banana", "orange", "strawberry", "watermelon", "pineapple",
}

var variantSizes = [variantCount]float64{
	parameter.SizeApple,
	parameter.SizeBanana,
	parameter.SizeOrange,
	parameter.SizeStrawberry,
	parameter.SizeWatermelon,
	parameter.SizePineapple,
}

func (v Variant) String() string {
	if v >= variantCount {
		return "unknown"
	}
	return variantNames[v]
}

// Size returns the collision diameter of the species
func (v Variant) Size() float64 {
	if v >= variantCount {
		return parameter.SizeApple
	}
	return variantSizes[v]
}

// Payload carries the kind-specific data of an object
// Implemented only by Fruit, Bomb and Ice; switch on the concrete type
// wherever behavior differs by kind
type Payload interface {
	Kind() Kind
	// Size is the collision diameter, fixed at creation
	Size() float64
	// CutDivisor turns Size into the slice threshold
	CutDivisor() float64
	sealed()
}

// Fruit is a sliceable, scored object
type Fruit struct {
	Variant Variant
}

func (Fruit) Kind() Kind          { return KindFruit }
func (f Fruit) Size() float64     { return f.Variant.Size() }
func (Fruit) CutDivisor() float64 { return parameter.CutDivisorDefault }
func (Fruit) sealed()             {}

// Bomb terminates the round when cut; it needs a more precise pass
type Bomb struct{}

func (Bomb) Kind() Kind          { return KindBomb }
func (Bomb) Size() float64       { return parameter.SizeBomb }
func (Bomb) CutDivisor() float64 { return parameter.CutDivisorBomb }
func (Bomb) sealed()             {}

// Ice freezes the round when cut
type Ice struct{}

func (Ice) Kind() Kind          { return KindIce }
func (Ice) Size() float64       { return parameter.SizeIce }
func (Ice) CutDivisor() float64 { return parameter.CutDivisorDefault }
func (Ice) sealed()             {}
