package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/isometric/scene"
)

// Paint blits entities in the given order at their precomputed positions.
// Entities whose image is not an *ebiten.Image are skipped.
func Paint(screen *ebiten.Image, entities []scene.Entity, order []int) {
	if screen == nil {
		return
	}
	for _, idx := range order {
		if idx < 0 || idx >= len(entities) {
			continue
		}
		e := entities[idx]
		img, ok := e.Image.(*ebiten.Image)
		if !ok || img == nil {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(e.ScreenX, e.ScreenY)
		screen.DrawImage(img, op)
	}
}
