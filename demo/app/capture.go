package app

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/cogentcore/webgpu/wgpu"
)

// Capture renders the uber pass into the cached offscreen target for this
// view, reads the pixels back and writes them as PNG. The swapchain is left
// alone; capture uses its own color attachment.
func (a *App) Capture(path string) error {
	width, height := a.Config.Width, a.Config.Height
	target, err := a.Targets.Get(a.ViewId, width, height, a.Config.Format)
	if err != nil {
		return err
	}

	encoder, err := a.Device.CreateCommandEncoder(nil)
	if err != nil {
		return err
	}

	rPass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       target.View,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: wgpu.Color{R: 0, G: 0, B: 0, A: 1},
		}},
	})
	a.Pass.Draw(rPass)
	if err := rPass.End(); err != nil {
		return err
	}

	// Readback rows must be 256-byte aligned.
	paddedRow := (4*width + 255) &^ 255
	readback, err := a.Device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "CaptureReadback",
		Size:  uint64(paddedRow) * uint64(height),
		Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return err
	}
	defer readback.Release()

	encoder.CopyTextureToBuffer(
		target.Texture.AsImageCopy(),
		&wgpu.ImageCopyBuffer{
			Buffer: readback,
			Layout: wgpu.TextureDataLayout{
				Offset:       0,
				BytesPerRow:  paddedRow,
				RowsPerImage: height,
			},
		},
		&wgpu.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1},
	)

	cmd, err := encoder.Finish(nil)
	if err != nil {
		return err
	}
	a.Queue.Submit(cmd)

	var mapErr error
	mapped := false
	err = readback.MapAsync(wgpu.MapModeRead, 0, readback.GetSize(), func(status wgpu.BufferMapAsyncStatus) {
		if status != wgpu.BufferMapAsyncStatusSuccess {
			mapErr = fmt.Errorf("readback map failed: %v", status)
		}
		mapped = true
	})
	if err != nil {
		return err
	}
	for !mapped {
		a.Device.Poll(true, nil)
	}
	if mapErr != nil {
		return mapErr
	}
	defer readback.Unmap()

	data := readback.GetMappedRange(0, uint(readback.GetSize()))

	bgra := a.Config.Format == wgpu.TextureFormatBGRA8Unorm ||
		a.Config.Format == wgpu.TextureFormatBGRA8UnormSrgb
	img := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	for y := uint32(0); y < height; y++ {
		src := data[y*paddedRow : y*paddedRow+4*width]
		dst := img.Pix[int(y)*img.Stride : int(y)*img.Stride+int(4*width)]
		copy(dst, src)
		if bgra {
			for i := 0; i < len(dst); i += 4 {
				dst[i], dst[i+2] = dst[i+2], dst[i]
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
