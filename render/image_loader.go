package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/isometric/assets"
	"github.com/milk9111/isometric/scene"
)

// images holds every tile and sheet uploaded so far, by asset name.
var images assets.Cache[*ebiten.Image]

// LoadImage decodes an embedded asset once and returns the uploaded image.
func LoadImage(name string) (*ebiten.Image, error) {
	return images.Load(name, func(path string) (*ebiten.Image, error) {
		decoded, err := assets.Decode(path)
		if err != nil {
			return nil, err
		}
		return ebiten.NewImageFromImage(decoded), nil
	})
}

// SceneImage adapts LoadImage to scene.ImageSource.
func SceneImage(name string) (scene.Image, error) {
	img, err := LoadImage(name)
	if err != nil {
		return nil, err
	}
	return img, nil
}
