package postfx

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
	xdraw "golang.org/x/image/draw"
)

// Process runs the uber fragment chain on the CPU over a whole image and
// returns the graded copy. It is the software twin of the GPU pass, used by
// the demo's software mode and as the reference for output checks.
func Process(src image.Image, s *Settings) *image.RGBA {
	bounds := src.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	xdraw.Draw(rgba, rgba.Bounds(), src, bounds.Min, xdraw.Src)

	for y := 0; y < rgba.Rect.Dy(); y++ {
		row := rgba.Pix[y*rgba.Stride : y*rgba.Stride+rgba.Rect.Dx()*4]
		for x := 0; x < len(row); x += 4 {
			c := mgl32.Vec4{
				float32(row[x]) / 255,
				float32(row[x+1]) / 255,
				float32(row[x+2]) / 255,
				float32(row[x+3]) / 255,
			}
			g := GradeColor(c, s)
			row[x] = uint8(g.X()*255 + 0.5)
			row[x+1] = uint8(g.Y()*255 + 0.5)
			row[x+2] = uint8(g.Z()*255 + 0.5)
			row[x+3] = uint8(g.W()*255 + 0.5)
		}
	}
	return rgba
}
