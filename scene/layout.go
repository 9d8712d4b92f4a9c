package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/milk9111/isometric/common"
)

var ErrInvalidLayout = errors.New("scene: invalid layout")

// CellKind distinguishes plain elevated floor from ramp cells.
type CellKind int

const (
	CellElevated CellKind = iota
	CellRamp
)

func (k CellKind) String() string {
	if k == CellRamp {
		return "ramp"
	}
	return "elevated"
}

// Cell is an elevated grid cell. Ramp cells carry the image painted on the
// ground beneath them.
type Cell struct {
	X        int
	Y        int
	Z        int
	Kind     CellKind
	Image    string
	Underlay string
}

type cellKey struct {
	x, y int
}

// Layout is the static tile layout of a scene. Build it with NewLayout and
// treat Cells as read-only afterwards: the cell index is only built there.
type Layout struct {
	Name       string
	HalfWidth  int
	HalfHeight int
	FloorImage string
	Cells      []Cell

	byXY map[cellKey][]int
}

// NewLayout validates and indexes a layout.
func NewLayout(name string, halfWidth, halfHeight int, floorImage string, cells []Cell) (*Layout, error) {
	l := &Layout{
		Name:       name,
		HalfWidth:  halfWidth,
		HalfHeight: halfHeight,
		FloorImage: floorImage,
		Cells:      append([]Cell(nil), cells...),
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	l.index()
	return l, nil
}

// Validate checks bounds, image names and that no cell is declared twice.
func (l *Layout) Validate() error {
	if l.HalfWidth <= 0 || l.HalfHeight <= 0 {
		return fmt.Errorf("%w: grid bounds %dx%d", ErrInvalidLayout, l.HalfWidth, l.HalfHeight)
	}
	if l.FloorImage == "" {
		return fmt.Errorf("%w: empty floor image", ErrInvalidLayout)
	}

	seen := make(map[[3]int]struct{}, len(l.Cells))
	for i, c := range l.Cells {
		if c.Z < 0 {
			return fmt.Errorf("%w: cell %d has negative tier %d", ErrInvalidLayout, i, c.Z)
		}
		if c.Image == "" {
			return fmt.Errorf("%w: cell (%d, %d, %d) has no image", ErrInvalidLayout, c.X, c.Y, c.Z)
		}
		if c.Kind == CellRamp && c.Underlay == "" {
			return fmt.Errorf("%w: ramp (%d, %d, %d) has no underlay", ErrInvalidLayout, c.X, c.Y, c.Z)
		}
		k := [3]int{c.X, c.Y, c.Z}
		if _, dup := seen[k]; dup {
			return fmt.Errorf("%w: duplicate cell (%d, %d, %d)", ErrInvalidLayout, c.X, c.Y, c.Z)
		}
		seen[k] = struct{}{}
	}
	return nil
}

func (l *Layout) index() {
	l.byXY = make(map[cellKey][]int, len(l.Cells))
	for i, c := range l.Cells {
		k := cellKey{c.X, c.Y}
		l.byXY[k] = append(l.byXY[k], i)
	}
}

// InBounds reports whether (x, y) is part of the floor grid.
func (l *Layout) InBounds(x, y int) bool {
	return x >= -l.HalfWidth && x <= l.HalfWidth && y >= -l.HalfHeight && y <= l.HalfHeight
}

// Elevated returns the highest elevated cell at (x, y), if any.
func (l *Layout) Elevated(x, y int) (Cell, bool) {
	ids, ok := l.byXY[cellKey{x, y}]
	if !ok {
		return Cell{}, false
	}
	best := l.Cells[ids[0]]
	for _, id := range ids[1:] {
		if l.Cells[id].Z > best.Z {
			best = l.Cells[id]
		}
	}
	return best, true
}

// TierAt returns the elevation tier of the cell containing a continuous
// position, or 0 over ordinary floor.
func (l *Layout) TierAt(x, y float64) int {
	c, ok := l.Elevated(common.CellAt(x), common.CellAt(y))
	if !ok {
		return 0
	}
	return c.Z
}

// NearElevated reports whether (x, y) sits exactly one cell away along a single
// axis from an elevated cell on tier z.
func (l *Layout) NearElevated(x, y float64, z int) bool {
	for _, c := range l.Cells {
		if c.Z != z {
			continue
		}
		cx, cy := float64(c.X), float64(c.Y)
		if common.Approx(math.Abs(x-cx), 1) && common.Approx(y, cy) {
			return true
		}
		if common.Approx(math.Abs(y-cy), 1) && common.Approx(x, cx) {
			return true
		}
	}
	return false
}

// Images lists every tile image name the layout refers to, without repeats.
func (l *Layout) Images() []string {
	seen := map[string]struct{}{}
	var out []string
	add := func(name string) {
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	add(l.FloorImage)
	for _, c := range l.Cells {
		add(c.Image)
		add(c.Underlay)
	}
	return out
}
