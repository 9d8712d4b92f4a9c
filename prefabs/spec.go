package prefabs

import (
	"fmt"

	"github.com/milk9111/isometric/scene"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type GridSpec struct {
	HalfWidth  int `yaml:"half_width"`
	HalfHeight int `yaml:"half_height"`
}

type CellSpec struct {
	X        int    `yaml:"x"`
	Y        int    `yaml:"y"`
	Z        int    `yaml:"z"`
	Kind     string `yaml:"kind"`
	Image    string `yaml:"image"`
	Underlay string `yaml:"underlay"`
}

type SceneSpec struct {
	Name  string     `yaml:"name"`
	Grid  GridSpec   `yaml:"grid"`
	Floor string     `yaml:"floor"`
	Cells []CellSpec `yaml:"cells"`
}

// LoadSceneSpec loads a scene prefab and checks it against the scene schema
// before decoding.
func LoadSceneSpec(filename string) (*SceneSpec, error) {
	data, err := Load(filename)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	return ParseSceneSpec(filename, data)
}

// ParseSceneSpec validates and decodes scene prefab bytes.
func ParseSceneSpec(filename string, data []byte) (*SceneSpec, error) {
	if err := ValidateScene(data); err != nil {
		return nil, fmt.Errorf("prefabs: validate %s: %w", filename, err)
	}
	var spec SceneSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return &spec, nil
}

// Layout converts the prefab into a validated scene layout.
func (s *SceneSpec) Layout() (*scene.Layout, error) {
	cells := make([]scene.Cell, 0, len(s.Cells))
	for _, c := range s.Cells {
		kind := scene.CellElevated
		switch c.Kind {
		case "", "elevated":
		case "ramp":
			kind = scene.CellRamp
		default:
			return nil, fmt.Errorf("%w: cell (%d, %d, %d) has unknown kind %q", scene.ErrInvalidLayout, c.X, c.Y, c.Z, c.Kind)
		}
		cells = append(cells, scene.Cell{
			X:        c.X,
			Y:        c.Y,
			Z:        c.Z,
			Kind:     kind,
			Image:    c.Image,
			Underlay: c.Underlay,
		})
	}
	return scene.NewLayout(s.Name, s.Grid.HalfWidth, s.Grid.HalfHeight, s.Floor, cells)
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type SheetsSpec struct {
	Up    string `yaml:"up"`
	Down  string `yaml:"down"`
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

type ActorSpec struct {
	Name        string     `yaml:"name"`
	Spawn       PointSpec  `yaml:"spawn"`
	Facing      string     `yaml:"facing"`
	Speed       float64    `yaml:"speed"`
	FrameHeight int        `yaml:"frame_height"`
	Sheets      SheetsSpec `yaml:"sheets"`
}

func LoadActorSpec(filename string) (*ActorSpec, error) {
	spec, err := LoadSpec[ActorSpec](filename)
	if err != nil {
		return nil, err
	}
	if spec.Sheets.Up == "" || spec.Sheets.Down == "" || spec.Sheets.Left == "" || spec.Sheets.Right == "" {
		return nil, fmt.Errorf("prefabs: %s: all four directional sheets are required", filename)
	}
	return &spec, nil
}
