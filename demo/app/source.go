package app

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/cogentcore/webgpu/wgpu"
	xdraw "golang.org/x/image/draw"
)

// LoadSourceImage reads the scene color input from a PNG file.
func LoadSourceImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open source image: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode source image: %w", err)
	}
	return img, nil
}

// GradientImage builds a synthetic scene color input: a horizontal hue ramp
// with vertical brightness falloff, bright enough that the tonemap curve has
// something to chew on.
func GradientImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		fy := float64(y) / float64(h-1)
		for x := 0; x < w; x++ {
			fx := float64(x) / float64(w-1)
			i := y*img.Stride + x*4
			img.Pix[i] = uint8(255 * fx * (1 - fy))
			img.Pix[i+1] = uint8(255 * (1 - fx) * (1 - fy))
			img.Pix[i+2] = uint8(255 * fy)
			img.Pix[i+3] = 255
		}
	}
	return img
}

// uploadSource converts the source image to RGBA and uploads it as the
// scene color texture.
func (a *App) uploadSource(src image.Image) error {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(rgba, rgba.Bounds(), src, bounds.Min, xdraw.Src)

	extent := wgpu.Extent3D{Width: uint32(w), Height: uint32(h), DepthOrArrayLayers: 1}
	texture, err := a.Device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         "SceneColor",
		Size:          extent,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatRGBA8Unorm,
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
	})
	if err != nil {
		return err
	}

	err = a.Queue.WriteTexture(
		texture.AsImageCopy(),
		rgba.Pix,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(4 * w),
			RowsPerImage: uint32(h),
		},
		&extent,
	)
	if err != nil {
		texture.Release()
		return err
	}

	view, err := texture.CreateView(nil)
	if err != nil {
		texture.Release()
		return err
	}

	a.SourceTexture = texture
	a.SourceView = view
	return nil
}
