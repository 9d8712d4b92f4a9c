package actor

import (
	"fmt"
	"image"

	"github.com/milk9111/isometric/scene"
)

// FrameTable holds one sprite frame per direction.
type FrameTable [directionCount]scene.Image

// Frame returns the frame for d, or nil for an unknown direction.
func (t *FrameTable) Frame(d Direction) scene.Image {
	if d < 0 || d >= directionCount {
		return nil
	}
	return t[d]
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// FirstFrame cuts the top frameHeight rows out of a vertical sprite sheet,
// keeping the sheet's full width.
func FirstFrame(sheet scene.Image, frameHeight int) (scene.Image, error) {
	if sheet == nil {
		return nil, fmt.Errorf("actor: nil sheet")
	}
	b := sheet.Bounds()
	if frameHeight <= 0 || frameHeight >= b.Dy() {
		return sheet, nil
	}
	s, ok := sheet.(subImager)
	if !ok {
		return nil, fmt.Errorf("actor: sheet %T cannot be sliced", sheet)
	}
	return s.SubImage(image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Min.Y+frameHeight)), nil
}
