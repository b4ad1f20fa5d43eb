// Package config holds the program defaults and command line parsing.
package config

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/olivierh59500/canvas-particles/internal/particle"
)

const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "Particles"

	ParticleCount = 100
	ParticleColor = "red"
	TPS           = 60

	// Headless rendering
	SnapshotFrames = 120
	SnapshotPath   = "frame.png"

	// Debug log location
	LogDir      = "logs"
	LogFileName = "particles.log"
)

// Backends
const (
	BackendWindow   = "window"
	BackendTerminal = "term"
	BackendPNG      = "png"
)

// Scenes
const (
	SceneParticles = "particles"
	SceneShapes    = "shapes"
	SceneBasic     = "basic"
	ScenePointer   = "pointer"
)

// namedColors covers the color keywords used by the drawing snippets.
var namedColors = map[string]string{
	"red":    "#ff0000",
	"green":  "#008000",
	"blue":   "#0000ff",
	"white":  "#ffffff",
	"black":  "#000000",
	"yellow": "#ffff00",
	"orange": "#ffa500",
	"purple": "#800080",
}

type Config struct {
	Backend string
	Scene   string

	Count  int
	Width  int
	Height int
	Color  string
	Trails bool
	FPS    int
	Seed   int64

	Frames int
	Out    string

	Debug bool
}

// Default returns the configuration used when no flags are given.
func Default() Config {
	return Config{
		Backend: BackendWindow,
		Scene:   SceneParticles,
		Count:   ParticleCount,
		Width:   WindowWidth,
		Height:  WindowHeight,
		Color:   ParticleColor,
		FPS:     TPS,
		Frames:  SnapshotFrames,
		Out:     SnapshotPath,
	}
}

// Parse reads flags from args (without the program name) on top of the
// defaults and validates the result.
func Parse(args []string, output io.Writer) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("particles", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.Backend, "backend", cfg.Backend, "Output: window, term, png")
	fs.StringVar(&cfg.Scene, "scene", cfg.Scene, "Scene: particles, shapes, basic, pointer")
	fs.IntVar(&cfg.Count, "count", cfg.Count, "Number of particles")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Surface width (window and png)")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Surface height (window and png)")
	fs.StringVar(&cfg.Color, "color", cfg.Color, "Particle color: name or #rrggbb")
	fs.BoolVar(&cfg.Trails, "trails", cfg.Trails, "Keep previous frames instead of clearing")
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "Frames per second")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed, 0 for time based")
	fs.IntVar(&cfg.Frames, "frames", cfg.Frames, "Frames to render (png)")
	fs.StringVar(&cfg.Out, "out", cfg.Out, "Output file (png)")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Write a debug log to "+LogDir+"/"+LogFileName)

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendWindow, BackendTerminal, BackendPNG:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	switch c.Scene {
	case SceneParticles, SceneShapes, SceneBasic, ScenePointer:
	default:
		return fmt.Errorf("unknown scene %q", c.Scene)
	}
	if c.Count < 0 {
		return errors.New("count must not be negative")
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", c.Width, c.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.Backend == BackendPNG {
		if c.Frames <= 0 {
			return fmt.Errorf("frames must be positive, got %d", c.Frames)
		}
		if c.Out == "" {
			return errors.New("png backend needs an output path")
		}
	}
	if _, err := ParseColor(c.Color); err != nil {
		return err
	}
	return nil
}

// FillColor resolves the configured color. Call after Validate; an invalid
// color falls back to the particle default.
func (c Config) FillColor() color.Color {
	clr, err := ParseColor(c.Color)
	if err != nil {
		return particle.DefaultColor
	}
	return clr
}

// ParseColor accepts a color name from namedColors or a #rrggbb / #rgb hex
// string.
func ParseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if hex, ok := namedColors[s]; ok {
		s = hex
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	cf, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("color %q: %w", s, err)
	}
	r, g, b := cf.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
