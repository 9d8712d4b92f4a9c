package iso

// Projector maps logical grid coordinates to screen pixels for a fixed
// isometric camera.
type Projector struct {
	TileWidth  float64
	TileHeight float64
	CenterX    float64
	CenterY    float64
}

// NewProjector centers the grid origin in a viewport of the given size.
func NewProjector(tileWidth, tileHeight float64, viewportW, viewportH int) Projector {
	return Projector{
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
		CenterX:    float64(viewportW / 2),
		CenterY:    float64(viewportH / 2),
	}
}

// Project returns the screen position of grid point (x, y).
func (p Projector) Project(x, y float64) (float64, float64) {
	sx := (x-y)*p.HalfWidth() + p.CenterX
	sy := (x+y)*p.QuarterHeight() + p.CenterY
	return sx, sy
}

// HalfWidth is half a tile's on-screen width.
func (p Projector) HalfWidth() float64 {
	return p.TileWidth / 2
}

// QuarterHeight is the vertical screen step of one grid unit, and the lift of
// one elevation tier.
func (p Projector) QuarterHeight() float64 {
	return p.TileHeight / 4
}

// Point is a screen-space position.
type Point struct {
	X, Y float64
}

// Corners returns the top, right, bottom and left corners of cell (x, y).
func (p Projector) Corners(x, y int) [4]Point {
	fx, fy := float64(x), float64(y)
	var out [4]Point
	out[0].X, out[0].Y = p.Project(fx, fy)
	out[1].X, out[1].Y = p.Project(fx+1, fy)
	out[2].X, out[2].Y = p.Project(fx+1, fy+1)
	out[3].X, out[3].Y = p.Project(fx, fy+1)
	return out
}

// Segment is a screen-space line.
type Segment [2]Point

// GridOutline returns the edges of every cell in x ∈ [-halfW, halfW],
// y ∈ [-halfH, halfH], four per cell.
func (p Projector) GridOutline(halfW, halfH int) []Segment {
	if halfW < 0 || halfH < 0 {
		return nil
	}
	out := make([]Segment, 0, (2*halfW+1)*(2*halfH+1)*4)
	for x := -halfW; x <= halfW; x++ {
		for y := -halfH; y <= halfH; y++ {
			c := p.Corners(x, y)
			for i := range c {
				out = append(out, Segment{c[i], c[(i+1)%len(c)]})
			}
		}
	}
	return out
}
