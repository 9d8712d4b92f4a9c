package main

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/isometric/actor"
	"github.com/milk9111/isometric/config"
	"github.com/milk9111/isometric/depth"
	"github.com/milk9111/isometric/iso"
	"github.com/milk9111/isometric/prefabs"
	"github.com/milk9111/isometric/render"
	"github.com/milk9111/isometric/scene"
)

var colorBackground = color.RGBA{R: 173, G: 216, B: 230, A: 255}

type Game struct {
	settings config.Settings

	input     *Input
	actor     *actor.Actor
	collector *scene.Collector
	resolver  *depth.Resolver

	watcher    *prefabs.Watcher
	sceneMod   time.Time
	sceneFile  string
	reloadNext bool

	entities []scene.Entity
	order    []int

	showGrid bool
	showHUD  bool
	paused   bool
	quit     bool
	pauseUI  *ebitenui.UI
}

func NewGame(settings config.Settings) (*Game, error) {
	input, err := NewInput(settings.Keys)
	if err != nil {
		return nil, err
	}

	layout, err := loadLayout(settings.Prefabs.Scene)
	if err != nil {
		return nil, err
	}
	proj := iso.NewProjector(settings.Tiles.Width, settings.Tiles.Height, settings.Window.Width, settings.Window.Height)
	collector, err := scene.NewCollector(layout, proj, render.SceneImage)
	if err != nil {
		return nil, err
	}

	a, err := loadActor(settings.Prefabs.Actor)
	if err != nil {
		return nil, err
	}
	a.Tier = layout.TierAt(a.X, a.Y)

	g := &Game{
		settings:  settings,
		input:     input,
		actor:     a,
		collector: collector,
		resolver:  depth.NewResolver(settings.Render.Resolver),
		sceneFile: settings.Prefabs.Scene,
		showGrid:  settings.Render.ShowGrid,
		showHUD:   settings.Render.ShowHUD,
	}
	g.pauseUI = NewPauseUI(g)

	if settings.Prefabs.HotReload {
		g.watchScene()
	}

	if err := g.resolveFrame(); err != nil {
		g.Close()
		return nil, err
	}
	return g, nil
}

func loadLayout(name string) (*scene.Layout, error) {
	spec, err := prefabs.LoadSceneSpec(name)
	if err != nil {
		return nil, err
	}
	return spec.Layout()
}

func loadActor(name string) (*actor.Actor, error) {
	spec, err := prefabs.LoadActorSpec(name)
	if err != nil {
		return nil, err
	}
	facing, err := actor.ParseDirection(spec.Facing)
	if err != nil {
		return nil, fmt.Errorf("actor %s: %w", name, err)
	}

	var frames actor.FrameTable
	sheets := map[actor.Direction]string{
		actor.Up:    spec.Sheets.Up,
		actor.Down:  spec.Sheets.Down,
		actor.Left:  spec.Sheets.Left,
		actor.Right: spec.Sheets.Right,
	}
	for dir, path := range sheets {
		sheet, err := render.LoadImage(path)
		if err != nil {
			return nil, err
		}
		frame, err := actor.FirstFrame(sheet, spec.FrameHeight)
		if err != nil {
			return nil, fmt.Errorf("actor %s: %s sheet: %w", name, dir, err)
		}
		frames[dir] = frame
	}

	return actor.New(spec.Spawn.X, spec.Spawn.Y, facing, spec.Speed, frames), nil
}

// watchScene starts watching the scene prefab's directory when it lives on
// disk. Embedded-only scenes are not watched.
func (g *Game) watchScene() {
	path, ok := prefabs.DiskPath(g.sceneFile)
	if !ok {
		return
	}
	w, err := prefabs.NewWatcher(filepath.Dir(path))
	if err != nil {
		log.Printf("prefab watcher disabled: %v", err)
		return
	}
	g.watcher = w
	g.sceneMod, _ = prefabs.ModTime(g.sceneFile)
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
		g.watcher = nil
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	g.input.Update()
	if g.input.Quit {
		return ebiten.Termination
	}
	if g.input.TogglePause {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		if g.quit {
			return ebiten.Termination
		}
		return nil
	}

	if g.input.ToggleGrid {
		g.showGrid = !g.showGrid
	}
	if g.input.ToggleHUD {
		g.showHUD = !g.showHUD
	}

	g.pollWatcher()
	if g.reloadNext {
		g.reloadNext = false
		g.reloadScene()
	}

	g.actor.Update(g.input.Move, g.collector.Layout())
	return g.resolveFrame()
}

// resolveFrame collects this tick's entities and computes their paint order.
func (g *Game) resolveFrame() error {
	g.entities = g.collector.Collect(scene.Frame{Actor: g.actor.State()})
	order, err := g.resolver.Resolve(scene.Keys(g.entities))
	if err != nil {
		return fmt.Errorf("resolve paint order: %w", err)
	}
	g.order = order
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if filepath.Base(name) == filepath.Base(g.sceneFile) {
				g.reloadNext = true
			}
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("prefab watcher: %v", err)
			}
		default:
			return
		}
	}
}

// reloadScene swaps in the edited scene. A scene that fails to load leaves
// the current one in place.
func (g *Game) reloadScene() {
	if mod, ok := prefabs.ModTime(g.sceneFile); ok {
		if !mod.After(g.sceneMod) {
			return
		}
		g.sceneMod = mod
	}

	layout, err := loadLayout(g.sceneFile)
	if err != nil {
		log.Printf("reload %s: %v", g.sceneFile, err)
		return
	}
	collector, err := scene.NewCollector(layout, g.collector.Projector(), render.SceneImage)
	if err != nil {
		log.Printf("reload %s: %v", g.sceneFile, err)
		return
	}
	g.collector = collector
	g.actor.Tier = layout.TierAt(g.actor.X, g.actor.Y)
	log.Printf("reloaded scene %s (%d cells)", layout.Name, len(layout.Cells))
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	render.Paint(screen, g.entities, g.order)

	if g.showGrid {
		render.DrawGrid(screen, g.collector.Projector(), g.collector.Layout())
	}
	if g.showHUD {
		render.DrawHUD(screen, render.Stats{
			FPS:      ebiten.ActualFPS(),
			Entities: len(g.entities),
			Strategy: g.resolver.Strategy().String(),
			ActorX:   g.actor.X,
			ActorY:   g.actor.Y,
			Tier:     g.actor.Tier,
			Facing:   g.actor.Facing.String(),
			Grid:     g.showGrid,
		})
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.settings.Window.Width, g.settings.Window.Height
}
