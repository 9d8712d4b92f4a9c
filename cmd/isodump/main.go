package main

import (
	"flag"
	"log"
	"os"

	"github.com/milk9111/isometric/config"
	"github.com/milk9111/isometric/depth"
)

func main() {
	settingsPath := flag.String("settings", "", "TOML settings file layered over the built-in defaults")
	sceneName := flag.String("scene", "", "scene prefab in prefabs/ or a path to a YAML file")
	actorX := flag.Float64("x", 0, "actor x; defaults to the prefab spawn")
	actorY := flag.Float64("y", 0, "actor y; defaults to the prefab spawn")
	strategy := flag.String("resolver", "", "all_pairs or linked; defaults to the settings value")
	limit := flag.Int("n", 0, "print only the first n rows of the paint order (0 prints all)")
	flag.Parse()

	settings, err := config.Load(*settingsPath)
	if err != nil {
		log.Fatal(err)
	}
	if *sceneName != "" {
		settings.Prefabs.Scene = *sceneName
	}
	if *strategy != "" {
		s, err := depth.ParseStrategy(*strategy)
		if err != nil {
			log.Fatal(err)
		}
		settings.Render.Resolver = s
	}

	opts := options{settings: settings, limit: *limit}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "x":
			opts.actorX = actorX
		case "y":
			opts.actorY = actorY
		}
	})

	if err := dump(os.Stdout, opts); err != nil {
		log.Fatal(err)
	}
}
