package scene

import (
	"fmt"

	"github.com/milk9111/isometric/depth"
	"github.com/milk9111/isometric/iso"
)

// ImageSource resolves a tile name to an image.
type ImageSource func(name string) (Image, error)

// ActorState is the actor snapshot a frame is collected for.
type ActorState struct {
	X     float64
	Y     float64
	Tier  int
	Image Image
}

// Frame is the per-frame input to Collect.
type Frame struct {
	Actor ActorState
}

// Collector gathers the drawable entities of a scene.
type Collector struct {
	layout *Layout
	proj   iso.Projector
	images map[string]Image
}

// NewCollector resolves every tile image the layout uses. A missing image is
// returned as an error; there is no fallback art.
func NewCollector(layout *Layout, proj iso.Projector, images ImageSource) (*Collector, error) {
	if layout == nil {
		return nil, fmt.Errorf("%w: nil layout", ErrInvalidLayout)
	}
	if images == nil {
		return nil, fmt.Errorf("scene: nil image source")
	}

	c := &Collector{
		layout: layout,
		proj:   proj,
		images: make(map[string]Image),
	}
	for _, name := range layout.Images() {
		img, err := images(name)
		if err != nil {
			return nil, fmt.Errorf("scene: resolve tile %s: %w", name, err)
		}
		if img == nil {
			return nil, fmt.Errorf("scene: resolve tile %s: nil image", name)
		}
		c.images[name] = img
	}
	return c, nil
}

// Layout returns the layout the collector was built for.
func (c *Collector) Layout() *Layout {
	return c.layout
}

// Projector returns the projection used for screen positions.
func (c *Collector) Projector() iso.Projector {
	return c.proj
}

// Collect returns every entity to paint for the frame. Emission order only
// matters between entities sharing a grid position.
func (c *Collector) Collect(frame Frame) []Entity {
	l := c.layout
	cols := 2*l.HalfWidth + 1
	rows := 2*l.HalfHeight + 1
	out := make([]Entity, 0, cols*rows+2*len(l.Cells)+1)

	out = c.appendFloor(out)
	out = c.appendElevated(out)
	out = append(out, c.actorEntity(frame.Actor))
	return out
}

func (c *Collector) appendFloor(out []Entity) []Entity {
	l := c.layout
	img := c.images[l.FloorImage]
	for x := -l.HalfWidth; x <= l.HalfWidth; x++ {
		for y := -l.HalfHeight; y <= l.HalfHeight; y++ {
			if _, elevated := l.Elevated(x, y); elevated {
				continue
			}
			sx, sy := c.tileOrigin(x, y)
			out = append(out, Entity{
				Kind:    KindFloor,
				Grid:    depth.Pos(x, y, 0),
				ScreenX: sx,
				ScreenY: sy,
				Image:   img,
			})
		}
	}
	return out
}

func (c *Collector) appendElevated(out []Entity) []Entity {
	for _, cell := range c.layout.Cells {
		sx, sy := c.tileOrigin(cell.X, cell.Y)
		grid := depth.Pos(cell.X, cell.Y, cell.Z)
		lift := float64(cell.Z) * c.proj.QuarterHeight()

		kind := KindElevated
		if cell.Kind == CellRamp {
			// underlay first: it shares the ramp's grid position
			out = append(out, Entity{
				Kind:    KindUnderlay,
				Grid:    grid,
				ScreenX: sx,
				ScreenY: sy,
				Image:   c.images[cell.Underlay],
			})
			kind = KindRamp
		}
		out = append(out, Entity{
			Kind:    kind,
			Grid:    grid,
			ScreenX: sx,
			ScreenY: sy - lift,
			Image:   c.images[cell.Image],
		})
	}
	return out
}

func (c *Collector) actorEntity(a ActorState) Entity {
	sx, sy := c.proj.Project(a.X, a.Y)
	if a.Image != nil {
		b := a.Image.Bounds()
		sx -= float64(b.Dx() / 2)
		sy -= float64(b.Dy() / 2)
	}
	if c.layout.NearElevated(a.X, a.Y, a.Tier) {
		sy -= c.proj.QuarterHeight()
	}
	return Entity{
		Kind:    KindActor,
		Grid:    depth.GridPos{X: a.X, Y: a.Y, Z: float64(a.Tier)},
		ScreenX: sx,
		ScreenY: sy,
		Image:   a.Image,
	}
}

// tileOrigin is the top-left blit position of a ground-level tile at (x, y).
func (c *Collector) tileOrigin(x, y int) (float64, float64) {
	sx, sy := c.proj.Project(float64(x), float64(y))
	return sx - c.proj.HalfWidth(), sy
}
