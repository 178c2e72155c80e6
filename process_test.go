package postfx

import (
	"image"
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestProcess_SolidRed(t *testing.T) {
	src := solidImage(4, 4, color.RGBA{255, 0, 0, 255})
	out := Process(src, &Settings{Tonemapping: TonemappingACES})

	wantR := uint8(ACESFilm(1)*255 + 0.5)
	got := out.RGBAAt(2, 2)

	assert.Equal(t, wantR, got.R)
	assert.Equal(t, uint8(0), got.G, "ACES(0) must stay 0")
	assert.Equal(t, uint8(0), got.B)
	assert.Equal(t, uint8(255), got.A, "alpha untouched")
}

func TestProcess_MatchesGradeColor(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 1))
	for x := 0; x < 8; x++ {
		src.SetRGBA(x, 0, color.RGBA{uint8(x * 32), uint8(255 - x*30), 128, 255})
	}

	s := &Settings{
		ChannelMixing: &ChannelMixing{
			Red:   mgl32.Vec3{0.5, 0.5, 0},
			Green: mgl32.Vec3{0, 1, 0},
			Blue:  mgl32.Vec3{0, 0, 1},
		},
		Tonemapping: TonemappingACES,
	}
	out := Process(src, s)

	for x := 0; x < 8; x++ {
		in := src.RGBAAt(x, 0)
		want := GradeColor(mgl32.Vec4{
			float32(in.R) / 255,
			float32(in.G) / 255,
			float32(in.B) / 255,
			float32(in.A) / 255,
		}, s)

		got := out.RGBAAt(x, 0)
		assert.InDelta(t, want.X()*255, float64(got.R), 1.0)
		assert.InDelta(t, want.Y()*255, float64(got.G), 1.0)
		assert.InDelta(t, want.Z()*255, float64(got.B), 1.0)
	}
}

func TestProcess_BloomFieldsInert(t *testing.T) {
	src := solidImage(8, 8, color.RGBA{200, 120, 40, 255})

	base := Process(src, &Settings{Tonemapping: TonemappingACES})
	loud := Process(src, &Settings{
		Bloom:       &Bloom{Threshold: 0.01, Intensity: 50, Scatter: 1, Tint: mgl32.Vec4{0, 1, 0, 1}, Clamp: 2},
		Tonemapping: TonemappingACES,
	})

	require.Equal(t, base.Pix, loud.Pix, "bloom fields are reserved and must not affect output")
}

func TestProcess_PreservesDimensions(t *testing.T) {
	src := solidImage(13, 7, color.RGBA{10, 20, 30, 255})
	out := Process(src, &Settings{})

	assert.Equal(t, 13, out.Rect.Dx())
	assert.Equal(t, 7, out.Rect.Dy())
}
