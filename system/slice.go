package system

import (
	"time"

	"github.com/lixenwraith/vi-slicer/component"
	"github.com/lixenwraith/vi-slicer/parameter"
	"github.com/lixenwraith/vi-slicer/vmath"
)

// SliceDetector finds falling objects cut by a pointer segment or a key press
type SliceDetector struct {
	minMovement float64
}

// NewSliceDetector creates a detector with the default jitter threshold
func NewSliceDetector() *SliceDetector {
	return &SliceDetector{minMovement: parameter.MinSliceMovement}
}

// MatchSegment returns falling objects cut by prev→cur
// Segments shorter than the movement threshold never match
func (d *SliceDetector) MatchSegment(objects []*component.Object, prev, cur vmath.Vec2) []*component.Object {
	if vmath.V2Dist(prev, cur) < d.minMovement {
		return nil
	}

	var hits []*component.Object
	for _, o := range objects {
		if o == nil || o.State != component.StateFalling {
			continue
		}
		if vmath.SegmentHits(o.Pos, prev, cur, o.CutThreshold()) {
			hits = append(hits, o)
		}
	}
	return hits
}

// MatchKey returns falling objects bound to key
func (d *SliceDetector) MatchKey(objects []*component.Object, key rune) []*component.Object {
	if key == 0 {
		return nil
	}

	var hits []*component.Object
	for _, o := range objects {
		if o == nil || o.State != component.StateFalling {
			continue
		}
		if o.Key == key {
			hits = append(hits, o)
		}
	}
	return hits
}

// SlicePath tests every consecutive pair of points and cuts the matches
// Each object appears at most once in the result
func (d *SliceDetector) SlicePath(objects []*component.Object, points []vmath.Vec2, now time.Time, lc *Lifecycle) []*component.Object {
	var sliced []*component.Object
	for i := 1; i < len(points); i++ {
		for _, o := range d.MatchSegment(objects, points[i-1], points[i]) {
			if lc.Slice(o, now) {
				sliced = append(sliced, o)
			}
		}
	}
	return sliced
}

// SliceKeys cuts every falling object bound to any of the pressed keys
func (d *SliceDetector) SliceKeys(objects []*component.Object, keys []rune, now time.Time, lc *Lifecycle) []*component.Object {
	var sliced []*component.Object
	for _, key := range keys {
		for _, o := range d.MatchKey(objects, key) {
			if lc.Slice(o, now) {
				sliced = append(sliced, o)
			}
		}
	}
	return sliced
}
