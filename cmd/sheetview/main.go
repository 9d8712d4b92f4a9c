package main

import (
	"flag"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/isometric/actor"
	"github.com/milk9111/isometric/prefabs"
	"github.com/milk9111/isometric/render"
)

const (
	viewWidth  = 512
	viewHeight = 256
	viewScale  = 2
)

// sheetView steps through every frame of the four directional actor sheets
// side by side.
type sheetView struct {
	sheets      [4][]*ebiten.Image
	labels      [4]string
	current     int
	tick        int
	ticksPerFrm int
	paused      bool
}

func (g *sheetView) frameCount() int {
	n := 0
	for _, frames := range g.sheets {
		if len(frames) > n {
			n = len(frames)
		}
	}
	return n
}

func (g *sheetView) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	n := g.frameCount()
	if n <= 1 || g.paused {
		return nil
	}
	g.tick++
	if g.tick >= g.ticksPerFrm {
		g.tick = 0
		g.current = (g.current + 1) % n
	}
	return nil
}

func (g *sheetView) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 173, G: 216, B: 230, A: 255})
	slot := viewWidth / len(g.sheets)
	for i, frames := range g.sheets {
		if len(frames) == 0 {
			continue
		}
		frame := frames[g.current%len(frames)]
		fw := frame.Bounds().Dx() * viewScale
		fh := frame.Bounds().Dy() * viewScale
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(viewScale, viewScale)
		op.GeoM.Translate(float64(i*slot+(slot-fw)/2), float64((viewHeight-fh)/2))
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(frame, op)
		ebitenutil.DebugPrintAt(screen, g.labels[i], i*slot+8, 8)
	}
}

func (g *sheetView) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewWidth, viewHeight
}

// splitSheet cuts a vertical sheet into frames of frameHeight rows.
func splitSheet(sheet *ebiten.Image, frameHeight int) []*ebiten.Image {
	b := sheet.Bounds()
	if frameHeight <= 0 || frameHeight >= b.Dy() {
		return []*ebiten.Image{sheet}
	}
	count := b.Dy() / frameHeight
	frames := make([]*ebiten.Image, count)
	for i := 0; i < count; i++ {
		r := image.Rect(b.Min.X, b.Min.Y+i*frameHeight, b.Max.X, b.Min.Y+(i+1)*frameHeight)
		frames[i] = sheet.SubImage(r).(*ebiten.Image)
	}
	return frames
}

func main() {
	actorName := flag.String("actor", "actor.yaml", "actor prefab in prefabs/ or a path to a YAML file")
	fps := flag.Int("fps", 4, "frames per second")
	flag.Parse()

	spec, err := prefabs.LoadActorSpec(*actorName)
	if err != nil {
		log.Fatal(err)
	}

	g := &sheetView{ticksPerFrm: 1}
	if *fps > 0 && *fps < 60 {
		g.ticksPerFrm = 60 / *fps
	}
	names := [4]string{spec.Sheets.Up, spec.Sheets.Down, spec.Sheets.Left, spec.Sheets.Right}
	for i, dir := range []actor.Direction{actor.Up, actor.Down, actor.Left, actor.Right} {
		sheet, err := render.LoadImage(names[i])
		if err != nil {
			log.Fatalf("%s sheet: %v", dir, err)
		}
		g.sheets[i] = splitSheet(sheet, spec.FrameHeight)
		g.labels[i] = dir.String()
	}

	ebiten.SetWindowSize(viewWidth*2, viewHeight*2)
	ebiten.SetWindowTitle("Actor Sheet Viewer")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
