package recording

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
	"gonum.org/v1/plot/vg"
)

// MaxImageSide caps each side of a resampled image, in pixels.
const MaxImageSide = 4096

// ResampleImage returns img scaled to the pixel size rect covers at dpi.
// Playback calls it so embedded rasters come out at the frame resolution
// regardless of how the image was produced. Samples stay sharp-edged
// (nearest neighbour) because recorded images are data maps, not photos.
func ResampleImage(img image.Image, rect vg.Rectangle, dpi float64) *image.NRGBA {
	size := rect.Size()
	w := pixelSide(size.X.Points(), dpi)
	h := pixelSide(size.Y.Points(), dpi)
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(out, out.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return out
}

func pixelSide(points, dpi float64) int {
	px := int(math.Ceil(math.Abs(points) / 72 * dpi))
	return max(1, min(px, MaxImageSide))
}
