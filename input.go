package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/isometric/actor"
	"github.com/milk9111/isometric/config"
)

// Input holds the polled key state for one tick.
type Input struct {
	// Move is the held state of the four movement keys.
	Move actor.Input
	// Quit, ToggleGrid, ToggleHUD and TogglePause are true on the tick the
	// key went down.
	Quit        bool
	ToggleGrid  bool
	ToggleHUD   bool
	TogglePause bool

	quit, grid, hud, pause ebiten.Key
	left, right, up, down  ebiten.Key
}

// NewInput parses the configured key names.
func NewInput(k config.Keys) (*Input, error) {
	in := &Input{}
	bindings := []struct {
		name string
		dst  *ebiten.Key
	}{
		{k.Quit, &in.quit},
		{k.ToggleGrid, &in.grid},
		{k.ToggleHUD, &in.hud},
		{k.Pause, &in.pause},
		{k.Left, &in.left},
		{k.Right, &in.right},
		{k.Up, &in.up},
		{k.Down, &in.down},
	}
	for _, b := range bindings {
		if err := b.dst.UnmarshalText([]byte(b.name)); err != nil {
			return nil, fmt.Errorf("input: key %q: %w", b.name, err)
		}
	}
	return in, nil
}

// Update polls the keyboard and the first gamepad's d-pad.
func (i *Input) Update() {
	i.Move = actor.Input{
		Left:  ebiten.IsKeyPressed(i.left),
		Right: ebiten.IsKeyPressed(i.right),
		Up:    ebiten.IsKeyPressed(i.up),
		Down:  ebiten.IsKeyPressed(i.down),
	}
	i.Quit = inpututil.IsKeyJustPressed(i.quit)
	i.ToggleGrid = inpututil.IsKeyJustPressed(i.grid)
	i.ToggleHUD = inpututil.IsKeyJustPressed(i.hud)
	i.TogglePause = inpututil.IsKeyJustPressed(i.pause)

	ids := ebiten.GamepadIDs()
	if len(ids) == 0 {
		return
	}
	gid := ids[0]
	i.Move.Left = i.Move.Left || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftLeft)
	i.Move.Right = i.Move.Right || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftRight)
	i.Move.Up = i.Move.Up || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftTop)
	i.Move.Down = i.Move.Down || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftBottom)
	if inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight) {
		i.TogglePause = true
	}
}
