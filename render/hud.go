package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

var (
	hudFace  = ebtext.NewGoXFace(basicfont.Face7x13)
	colorHUD = colornames.Black
)

// Stats is the per-frame diagnostics shown on the HUD.
type Stats struct {
	FPS      float64
	Entities int
	Strategy string
	ActorX   float64
	ActorY   float64
	Tier     int
	Facing   string
	Grid     bool
}

// Lines formats the HUD text, one entry per line.
func (s Stats) Lines() []string {
	return []string{
		fmt.Sprintf("FPS: %.1f", s.FPS),
		fmt.Sprintf("entities: %d  resolver: %s", s.Entities, s.Strategy),
		fmt.Sprintf("actor: (%.2f, %.2f, %d) %s", s.ActorX, s.ActorY, s.Tier, s.Facing),
		fmt.Sprintf("grid: %t", s.Grid),
	}
}

// DrawHUD prints the stats in the top-left corner.
func DrawHUD(screen *ebiten.Image, s Stats) {
	if screen == nil {
		return
	}
	lineHeight := float64(basicfont.Face7x13.Metrics().Height.Ceil())
	for i, line := range s.Lines() {
		op := &ebtext.DrawOptions{}
		op.GeoM.Translate(8, 8+float64(i)*lineHeight)
		op.ColorScale.ScaleWithColor(colorHUD)
		ebtext.Draw(screen, line, hudFace, op)
	}
}
