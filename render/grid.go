package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/isometric/iso"
	"github.com/milk9111/isometric/scene"
	"golang.org/x/image/colornames"
)

// DrawGrid strokes the diamond of every floor cell.
func DrawGrid(screen *ebiten.Image, proj iso.Projector, layout *scene.Layout) {
	if screen == nil || layout == nil {
		return
	}
	for _, seg := range proj.GridOutline(layout.HalfWidth, layout.HalfHeight) {
		vector.StrokeLine(screen,
			float32(seg[0].X), float32(seg[0].Y),
			float32(seg[1].X), float32(seg[1].Y),
			1, colornames.White, false)
	}
}
