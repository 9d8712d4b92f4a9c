package scene

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/isometric/depth"
	"github.com/milk9111/isometric/iso"
)

func courtyardCells() []Cell {
	return []Cell{
		{X: 0, Y: -1, Z: 1, Kind: CellRamp, Image: "ramp_right.png", Underlay: "floor.png"},
		{X: 0, Y: -2, Z: 1, Image: "floor_ice.png"},
		{X: 1, Y: -2, Z: 1, Image: "floor_ice.png"},
		{X: 1, Y: -1, Z: 1, Image: "floor_ice.png"},
	}
}

func courtyard(t *testing.T) *Layout {
	t.Helper()
	l, err := NewLayout("courtyard", 8, 8, "floor.png", courtyardCells())
	require.NoError(t, err)
	return l
}

func fakeImages(sizes map[string]image.Rectangle) ImageSource {
	return func(name string) (Image, error) {
		r, ok := sizes[name]
		if !ok {
			return nil, errors.New("not found")
		}
		return image.NewRGBA(r), nil
	}
}

var tileSizes = map[string]image.Rectangle{
	"floor.png":      image.Rect(0, 0, 64, 64),
	"floor_ice.png":  image.Rect(0, 0, 64, 64),
	"ramp_right.png": image.Rect(0, 0, 64, 64),
}

func newCollector(t *testing.T) *Collector {
	t.Helper()
	c, err := NewCollector(courtyard(t), iso.NewProjector(64, 64, 800, 600), fakeImages(tileSizes))
	require.NoError(t, err)
	return c
}

func actorImage() Image {
	return image.NewRGBA(image.Rect(0, 0, 16, 22))
}

func findAt(entities []Entity, kind Kind, pos depth.GridPos) (int, bool) {
	for i, e := range entities {
		if e.Kind == kind && e.Grid == pos {
			return i, true
		}
	}
	return -1, false
}

func TestCollectCounts(t *testing.T) {
	c := newCollector(t)
	entities := c.Collect(Frame{Actor: ActorState{X: -2, Y: -2, Image: actorImage()}})

	counts := map[Kind]int{}
	for _, e := range entities {
		counts[e.Kind]++
	}
	assert.Equal(t, 17*17-4, counts[KindFloor])
	assert.Equal(t, 3, counts[KindElevated])
	assert.Equal(t, 1, counts[KindRamp])
	assert.Equal(t, 1, counts[KindUnderlay])
	assert.Equal(t, 1, counts[KindActor])
	assert.Len(t, entities, 17*17-4+3+1+1+1)
}

func TestCollectScreenPositions(t *testing.T) {
	c := newCollector(t)
	entities := c.Collect(Frame{Actor: ActorState{X: -2, Y: -2, Image: actorImage()}})

	tests := []struct {
		name   string
		kind   Kind
		pos    depth.GridPos
		sx, sy float64
	}{
		{"floor_origin", KindFloor, depth.Pos(0, 0, 0), 368, 300},
		{"floor_corner", KindFloor, depth.Pos(8, -8, 0), 880, 300},
		{"elevated", KindElevated, depth.Pos(0, -2, 1), 432, 252},
		{"ramp_lifted", KindRamp, depth.Pos(0, -1, 1), 400, 268},
		{"underlay_on_ground", KindUnderlay, depth.Pos(0, -1, 1), 400, 284},
		{"actor_centered", KindActor, depth.GridPos{X: -2, Y: -2}, 392, 225},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i, ok := findAt(entities, tt.kind, tt.pos)
			require.True(t, ok, "no %s at %v", tt.kind, tt.pos)
			assert.Equal(t, tt.sx, entities[i].ScreenX)
			assert.Equal(t, tt.sy, entities[i].ScreenY)
		})
	}
}

func TestCollectSkipsFloorUnderElevatedCells(t *testing.T) {
	c := newCollector(t)
	entities := c.Collect(Frame{Actor: ActorState{Image: actorImage()}})
	for _, cell := range courtyardCells() {
		_, ok := findAt(entities, KindFloor, depth.Pos(cell.X, cell.Y, 0))
		assert.False(t, ok, "floor emitted under (%d, %d)", cell.X, cell.Y)
	}
}

func TestCollectActorLiftNearElevated(t *testing.T) {
	c := newCollector(t)
	tests := []struct {
		name   string
		actor  ActorState
		lifted bool
	}{
		{"open_floor", ActorState{X: -2, Y: -2}, false},
		{"ground_next_to_block", ActorState{X: 2, Y: -1}, false},
		{"tier_next_to_block", ActorState{X: 2, Y: -1, Tier: 1}, true},
		{"tier_beside_on_y", ActorState{X: 1, Y: 0, Tier: 1}, true},
		{"tier_diagonal", ActorState{X: 2, Y: 0, Tier: 1}, false},
		{"tier_drifted_float", ActorState{X: 2.0000000001, Y: -1, Tier: 1}, true},
	}

	proj := c.Projector()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.actor.Image = actorImage()
			entities := c.Collect(Frame{Actor: tt.actor})
			actor := entities[len(entities)-1]
			require.Equal(t, KindActor, actor.Kind)

			_, sy := proj.Project(tt.actor.X, tt.actor.Y)
			want := sy - 11
			if tt.lifted {
				want -= proj.QuarterHeight()
			}
			assert.InDelta(t, want, actor.ScreenY, 1e-9)
			assert.Equal(t, float64(tt.actor.Tier), actor.Grid.Z)
		})
	}
}

func TestCollectedRampUnderlayPaintsFirst(t *testing.T) {
	c := newCollector(t)
	entities := c.Collect(Frame{Actor: ActorState{X: 0.4, Y: -1.2, Tier: 1, Image: actorImage()}})

	for _, s := range []depth.Strategy{depth.StrategyAllPairs, depth.StrategyLinked} {
		t.Run(s.String(), func(t *testing.T) {
			order, err := depth.NewResolver(s).Resolve(Keys(entities))
			require.NoError(t, err)
			require.Len(t, order, len(entities))

			pos := make(map[int]int, len(order))
			for p, idx := range order {
				pos[idx] = p
			}
			underlay, ok := findAt(entities, KindUnderlay, depth.Pos(0, -1, 1))
			require.True(t, ok)
			ramp, ok := findAt(entities, KindRamp, depth.Pos(0, -1, 1))
			require.True(t, ok)
			assert.Less(t, pos[underlay], pos[ramp])

			// the actor at (0.4, -1.2, 1) sits after the ramp's column
			actor, ok := findAt(entities, KindActor, depth.GridPos{X: 0.4, Y: -1.2, Z: 1})
			require.True(t, ok)
			assert.Less(t, pos[ramp], pos[actor])
		})
	}
}

func TestNewCollectorMissingImage(t *testing.T) {
	tests := []struct {
		name    string
		have    []string
		missing string
	}{
		{"ramp_first", []string{"floor.png"}, "ramp_right.png"},
		{"elevated_last", []string{"floor.png", "ramp_right.png"}, "floor_ice.png"},
		{"floor", nil, "floor.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sizes := make(map[string]image.Rectangle, len(tt.have))
			for _, name := range tt.have {
				sizes[name] = tileSizes[name]
			}
			_, err := NewCollector(courtyard(t), iso.NewProjector(64, 64, 800, 600), fakeImages(sizes))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "resolve tile "+tt.missing+":")
		})
	}
}

func TestKeys(t *testing.T) {
	entities := []Entity{{Grid: depth.Pos(1, 2, 0)}, {Grid: depth.Pos(0, 0, 1)}}
	assert.Equal(t, []depth.GridPos{depth.Pos(1, 2, 0), depth.Pos(0, 0, 1)}, Keys(entities))
}
