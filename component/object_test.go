package component

import (
	"testing"
	"time"

	"github.com/lixenwraith/vi-slicer/parameter"
	"github.com/lixenwraith/vi-slicer/vmath"
)

func newTestObject(p Payload) *Object {
	return NewObject(1, p, Kinetic{Pos: vmath.Vec2{X: 400, Y: 300}}, 'a')
}

// TestObjectStateTransitions verifies only forward transitions are accepted
func TestObjectStateTransitions(t *testing.T) {
	now := time.Unix(100, 0)
	o := newTestObject(Fruit{Variant: VariantApple})

	if o.State != StateFalling {
		t.Fatalf("Expected new object to be falling, got %s", o.State)
	}
	if o.Decay() {
		t.Error("Falling object must not decay")
	}
	if !o.Slice(now) {
		t.Fatal("Expected falling object to slice")
	}
	if !o.SlicedAt.Equal(now) {
		t.Errorf("Expected SlicedAt=%v, got %v", now, o.SlicedAt)
	}
	if o.Slice(now.Add(time.Second)) {
		t.Error("Sliced object must not slice twice")
	}
	if o.Remove() {
		t.Error("Sliced object must decay before removal")
	}
	if !o.Decay() {
		t.Fatal("Expected sliced object to decay")
	}
	if o.SlicedAt.IsZero() {
		t.Error("Decaying object must keep SlicedAt")
	}
	if !o.Remove() {
		t.Fatal("Expected decaying object to be removed")
	}
	if !o.SlicedAt.IsZero() {
		t.Error("Removed object must clear SlicedAt")
	}
	if o.Live() {
		t.Error("Removed object must not be live")
	}
	if o.Slice(now) {
		t.Error("Removed object must never return to sliced")
	}
}

// TestFallingObjectRemoval verifies the off-screen path Falling → Removed
func TestFallingObjectRemoval(t *testing.T) {
	o := newTestObject(Bomb{})
	if !o.Remove() {
		t.Fatal("Expected falling object to be removable")
	}
	if o.State != StateRemoved {
		t.Errorf("Expected removed, got %s", o.State)
	}
}

// TestCutThreshold verifies the bomb asymmetry
func TestCutThreshold(t *testing.T) {
	tests := []struct {
		payload Payload
		want    float64
	}{
		{Fruit{Variant: VariantWatermelon}, parameter.SizeWatermelon / 2},
		{Ice{}, parameter.SizeIce / 2},
		{Bomb{}, parameter.SizeBomb / 3},
	}
	for _, tc := range tests {
		o := newTestObject(tc.payload)
		if got := o.CutThreshold(); got != tc.want {
			t.Errorf("%s: expected threshold %f, got %f", tc.payload.Kind(), tc.want, got)
		}
	}
}

func TestVariantNames(t *testing.T) {
	for v := Variant(0); int(v) < VariantCount; v++ {
		if v.String() == "unknown" {
			t.Errorf("Variant %d has no name", v)
		}
		if v.Size() <= 0 {
			t.Errorf("Variant %s has no size", v)
		}
	}
	if Variant(200).String() != "unknown" {
		t.Error("Expected out of range variant to be unknown")
	}
}
