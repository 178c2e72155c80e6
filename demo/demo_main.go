package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gekko3d/postfx"
	"github.com/gekko3d/postfx/demo/app"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "Path to YAML config")
	software := flag.Bool("software", false, "Run the CPU reference pipeline headless")
	inPath := flag.String("in", "", "Input PNG (overrides config)")
	outPath := flag.String("out", "out.png", "Output PNG for software mode")
	capturePath := flag.String("capture", "", "Capture one GPU frame to PNG, then keep running")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	log := postfx.NewDefaultLogger("postfx", *debug)

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = LoadConfig(*configPath)
		if err != nil {
			log.Errorf("%v", err)
			os.Exit(1)
		}
	}
	if *inPath != "" {
		cfg.Input.Image = *inPath
	}

	settings, err := cfg.Settings()
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}

	source := loadSource(cfg, log)

	if *software {
		if err := runSoftware(source, settings, *outPath); err != nil {
			log.Errorf("%v", err)
			os.Exit(1)
		}
		log.Infof("software output written to %s", *outPath)
		return
	}

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		panic(err)
	}
	defer window.Destroy()

	application := app.NewApp(window, settings, source, log)
	if err := application.Init(); err != nil {
		panic(err)
	}
	defer application.Release()
	application.CapturePath = *capturePath

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		application.Resize(width, height)
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	for !window.ShouldClose() {
		glfw.PollEvents()
		application.Update()
		if err := application.Render(); err != nil {
			log.Errorf("render: %v", err)
		}
	}
}

func loadSource(cfg *Config, log postfx.Logger) image.Image {
	if cfg.Input.Image != "" {
		img, err := app.LoadSourceImage(cfg.Input.Image)
		if err == nil {
			return img
		}
		log.Warnf("%v, falling back to gradient", err)
	}
	return app.GradientImage(cfg.Window.Width, cfg.Window.Height)
}

func runSoftware(source image.Image, settings *postfx.Settings, outPath string) error {
	out := postfx.Process(source, settings)

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()
	return png.Encode(f, out)
}
