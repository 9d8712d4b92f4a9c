package scene

import (
	"image"

	"github.com/milk9111/isometric/depth"
)

// Image is an opaque handle to pixel data. Only its bounds are read here.
type Image interface {
	Bounds() image.Rectangle
}

// Kind tags what an entity was emitted for. Ordering never looks at it.
type Kind int

const (
	KindFloor Kind = iota
	KindElevated
	KindRamp
	KindUnderlay
	KindActor
)

func (k Kind) String() string {
	switch k {
	case KindFloor:
		return "floor"
	case KindElevated:
		return "elevated"
	case KindRamp:
		return "ramp"
	case KindUnderlay:
		return "underlay"
	case KindActor:
		return "actor"
	}
	return "unknown"
}

// Entity is one thing to paint this frame. Entities are identified by their
// index in the batch returned from Collect.
type Entity struct {
	Kind    Kind
	Grid    depth.GridPos
	ScreenX float64
	ScreenY float64
	Image   Image
}

// Keys extracts the grid positions the resolver orders by.
func Keys(entities []Entity) []depth.GridPos {
	keys := make([]depth.GridPos, len(entities))
	for i, e := range entities {
		keys[i] = e.Grid
	}
	return keys
}
