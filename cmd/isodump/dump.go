package main

import (
	"fmt"
	"image"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/milk9111/isometric/actor"
	"github.com/milk9111/isometric/assets"
	"github.com/milk9111/isometric/config"
	"github.com/milk9111/isometric/depth"
	"github.com/milk9111/isometric/iso"
	"github.com/milk9111/isometric/prefabs"
	"github.com/milk9111/isometric/scene"
)

type options struct {
	settings config.Settings
	actorX   *float64
	actorY   *float64
	limit    int
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).PaddingBottom(1)
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	rowStyle    = lipgloss.NewStyle()
	actorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	columnWidths = []int{6, 10, 16, 16, 0}
)

// stubImages hands out blank images sized like the embedded art, so the
// paint order can be computed without a graphics context.
type stubImages struct {
	names map[scene.Image]string
}

func newStubImages() *stubImages {
	return &stubImages{names: make(map[scene.Image]string)}
}

func (s *stubImages) load(name string) (scene.Image, error) {
	cfg, err := assets.DecodeConfig(name)
	if err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	s.names[img] = name
	return img, nil
}

func (s *stubImages) name(img scene.Image) string {
	if img == nil {
		return "-"
	}
	if n, ok := s.names[img]; ok {
		return n
	}
	return "?"
}

// dump collects one frame of the configured scene and writes its paint
// order as a table.
func dump(w io.Writer, opts options) error {
	images := newStubImages()
	settings := opts.settings

	sceneSpec, err := prefabs.LoadSceneSpec(settings.Prefabs.Scene)
	if err != nil {
		return err
	}
	layout, err := sceneSpec.Layout()
	if err != nil {
		return err
	}
	proj := iso.NewProjector(settings.Tiles.Width, settings.Tiles.Height, settings.Window.Width, settings.Window.Height)
	collector, err := scene.NewCollector(layout, proj, images.load)
	if err != nil {
		return err
	}

	a, err := loadActor(settings.Prefabs.Actor, images)
	if err != nil {
		return err
	}
	if opts.actorX != nil {
		a.X = *opts.actorX
	}
	if opts.actorY != nil {
		a.Y = *opts.actorY
	}
	a.Tier = layout.TierAt(a.X, a.Y)

	resolver := depth.NewResolver(settings.Render.Resolver)
	entities := collector.Collect(scene.Frame{Actor: a.State()})
	order, err := resolver.Resolve(scene.Keys(entities))
	if err != nil {
		return err
	}

	title := fmt.Sprintf("%s: %d entities, resolver %s, actor at (%.2f, %.2f, %d)",
		layout.Name, len(entities), resolver.Strategy(), a.X, a.Y, a.Tier)
	fmt.Fprintln(w, titleStyle.Render(title))
	fmt.Fprintln(w, tableRow(headerStyle, "#", "kind", "grid", "screen", "image"))

	shown := order
	if opts.limit > 0 && opts.limit < len(order) {
		shown = order[:opts.limit]
	}
	for paint, idx := range shown {
		e := entities[idx]
		style := rowStyle
		if e.Kind == scene.KindActor {
			style = actorStyle
		}
		fmt.Fprintln(w, tableRow(style,
			strconv.Itoa(paint),
			e.Kind.String(),
			e.Grid.String(),
			fmt.Sprintf("(%.0f, %.0f)", e.ScreenX, e.ScreenY),
			images.name(e.Image),
		))
	}
	if rest := len(order) - len(shown); rest > 0 {
		fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("... %d more", rest)))
	}
	return nil
}

func loadActor(name string, images *stubImages) (*actor.Actor, error) {
	spec, err := prefabs.LoadActorSpec(name)
	if err != nil {
		return nil, err
	}
	facing, err := actor.ParseDirection(spec.Facing)
	if err != nil {
		return nil, err
	}

	var frames actor.FrameTable
	for dir, sheetName := range map[actor.Direction]string{
		actor.Up:    spec.Sheets.Up,
		actor.Down:  spec.Sheets.Down,
		actor.Left:  spec.Sheets.Left,
		actor.Right: spec.Sheets.Right,
	} {
		sheet, err := images.load(sheetName)
		if err != nil {
			return nil, err
		}
		frame, err := actor.FirstFrame(sheet, spec.FrameHeight)
		if err != nil {
			return nil, err
		}
		images.names[frame] = sheetName
		frames[dir] = frame
	}
	return actor.New(spec.Spawn.X, spec.Spawn.Y, facing, spec.Speed, frames), nil
}

func tableRow(style lipgloss.Style, cols ...string) string {
	cells := make([]string, len(cols))
	for i, c := range cols {
		s := style
		if i < len(columnWidths) && columnWidths[i] > 0 {
			s = s.Width(columnWidths[i])
		}
		cells[i] = s.Render(c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
