package actor

import (
	"github.com/milk9111/isometric/common"
	"github.com/milk9111/isometric/scene"
)

// Input is the held state of the movement keys for one frame.
type Input struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
}

// Actor is the player-controlled figure walking the grid.
type Actor struct {
	X      float64
	Y      float64
	Tier   int
	Facing Direction
	Speed  float64
	Frames FrameTable
}

// New places an actor at (x, y) on the ground tier.
func New(x, y float64, facing Direction, speed float64, frames FrameTable) *Actor {
	return &Actor{
		X:      x,
		Y:      y,
		Facing: facing,
		Speed:  speed,
		Frames: frames,
	}
}

// Update moves the actor one step along at most one axis and recomputes its
// elevation tier. Left wins over right, right over up, up over down.
func (a *Actor) Update(in Input, layout *scene.Layout) {
	if a == nil {
		return
	}

	x, y := a.X, a.Y
	switch {
	case in.Left:
		x -= a.Speed
		a.Facing = Left
	case in.Right:
		x += a.Speed
		a.Facing = Right
	case in.Up:
		y -= a.Speed
		a.Facing = Up
	case in.Down:
		y += a.Speed
		a.Facing = Down
	}

	if layout == nil {
		a.X, a.Y = x, y
		return
	}
	// stay on the map
	if layout.InBounds(common.CellAt(x), common.CellAt(y)) {
		a.X, a.Y = x, y
	}
	a.Tier = layout.TierAt(a.X, a.Y)
}

// State snapshots the actor for scene collection.
func (a *Actor) State() scene.ActorState {
	return scene.ActorState{
		X:     a.X,
		Y:     a.Y,
		Tier:  a.Tier,
		Image: a.Frames.Frame(a.Facing),
	}
}
