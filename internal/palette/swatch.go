package palette

import (
	"image"
	goimgdraw "image/draw"

	"golang.org/x/image/draw"
)

// SwatchImage renders the full 256-color ANSI table as a 16x16 grid,
// upscaled with nearest-neighbor sampling so each slot becomes a solid
// cellSize x cellSize block that a theme author can eyeball in an image
// viewer.
func SwatchImage(cellSize int) image.Image {
	if cellSize < 1 {
		cellSize = 1
	}

	base := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for i := 0; i < 256; i++ {
		base.Set(i%16, i/16, ANSI256ToRGB(uint8(i)))
	}

	scaled := image.NewRGBA(image.Rect(0, 0, 16*cellSize, 16*cellSize))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), base, base.Bounds(), goimgdraw.Src, nil)
	return scaled
}
