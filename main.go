package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/isometric/assets"
	"github.com/milk9111/isometric/config"
)

func main() {
	debug := flag.Bool("debug", false, "show the diagnostics HUD")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	settingsPath := flag.String("settings", "", "TOML settings file layered over the built-in defaults")
	sceneName := flag.String("scene", "", "scene prefab in prefabs/ or a path to a YAML file")
	flag.Parse()

	settings, err := config.Load(*settingsPath)
	if err != nil {
		log.Fatal(err)
	}
	if *sceneName != "" {
		settings.Prefabs.Scene = *sceneName
	}
	if *debug {
		settings.Render.ShowHUD = true
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle(settings.Window.Title)
	ebiten.SetTPS(settings.Window.TPS)

	game, err := NewGame(settings)
	if err != nil {
		var loadErr *assets.LoadError
		if errors.As(err, &loadErr) {
			log.Fatalf("could not load tile art %q (is it under assets/?): %v", loadErr.Path, loadErr.Err)
		}
		log.Fatal(err)
	}

	err = ebiten.RunGame(game)
	game.Close()
	if err != nil {
		log.Fatal(err)
	}
}
