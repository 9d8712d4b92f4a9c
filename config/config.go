package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/milk9111/isometric/depth"
)

//go:embed default.toml
var defaultSettings string

type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	TPS    int    `toml:"tps"`
}

type Tiles struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type Render struct {
	ShowGrid bool           `toml:"show_grid"`
	ShowHUD  bool           `toml:"show_hud"`
	Resolver depth.Strategy `toml:"resolver"`
}

type Prefabs struct {
	Scene     string `toml:"scene"`
	Actor     string `toml:"actor"`
	HotReload bool   `toml:"hot_reload"`
}

// Keys holds key names as understood by ebiten.Key.UnmarshalText.
type Keys struct {
	Quit       string `toml:"quit"`
	ToggleGrid string `toml:"toggle_grid"`
	ToggleHUD  string `toml:"toggle_hud"`
	Pause      string `toml:"pause"`
	Left       string `toml:"left"`
	Right      string `toml:"right"`
	Up         string `toml:"up"`
	Down       string `toml:"down"`
}

type Settings struct {
	Window  Window  `toml:"window"`
	Tiles   Tiles   `toml:"tiles"`
	Render  Render  `toml:"render"`
	Prefabs Prefabs `toml:"prefabs"`
	Keys    Keys    `toml:"keys"`
}

// Default returns the built-in settings.
func Default() (Settings, error) {
	var s Settings
	if _, err := toml.Decode(defaultSettings, &s); err != nil {
		return Settings{}, fmt.Errorf("config: decode defaults: %w", err)
	}
	return s, nil
}

// Load layers the TOML file at path over the defaults. An empty path returns
// the defaults.
func Load(path string) (Settings, error) {
	s, err := Default()
	if err != nil {
		return Settings{}, err
	}
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := s.Merge(string(data)); err != nil {
		return Settings{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return s, nil
}

// Merge decodes TOML over s. Keys absent from data keep their current values.
func (s *Settings) Merge(data string) error {
	md, err := toml.Decode(data, s)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown settings key %s", undecoded[0])
	}
	return s.Validate()
}

// Validate rejects settings the renderer cannot run with.
func (s Settings) Validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d", s.Window.Width, s.Window.Height)
	}
	if s.Window.TPS <= 0 {
		return fmt.Errorf("tps %d", s.Window.TPS)
	}
	if s.Tiles.Width <= 0 || s.Tiles.Height <= 0 {
		return fmt.Errorf("tile size %gx%g", s.Tiles.Width, s.Tiles.Height)
	}
	if s.Prefabs.Scene == "" || s.Prefabs.Actor == "" {
		return fmt.Errorf("scene and actor prefabs are required")
	}
	return nil
}
