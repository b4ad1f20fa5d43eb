package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/olivierh59500/canvas-particles/internal/config"
	"github.com/olivierh59500/canvas-particles/internal/host"
	"github.com/olivierh59500/canvas-particles/internal/particle"
	"github.com/olivierh59500/canvas-particles/internal/scene"
)

var (
	logDir      = config.LogDir
	logFileName = config.LogFileName
)

func main() {
	cfg, err := config.Parse(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "particles: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "particles: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sc := newScene(cfg, seed)
	log.Printf("main: backend=%s scene=%s seed=%d", cfg.Backend, sc.Name(), seed)

	switch cfg.Backend {
	case config.BackendTerminal:
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("terminal: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("terminal: %w", err)
		}
		defer screen.Fini()
		return host.NewTerminal(screen, sc, cfg.FPS).Run(ctx)

	case config.BackendPNG:
		f, err := os.Create(cfg.Out)
		if err != nil {
			return err
		}
		h := host.NewHeadless(sc, cfg.Width, cfg.Height, cfg.Frames, seed)
		if err := h.WritePNG(ctx, f); err != nil {
			f.Close()
			return err
		}
		return f.Close()

	default:
		return host.NewWindow(ctx, sc, config.WindowTitle, cfg.Width, cfg.Height, cfg.FPS).Run()
	}
}

// newScene builds the configured scene. All randomness comes from one
// seeded source.
func newScene(cfg config.Config, seed int64) scene.Scene {
	switch cfg.Scene {
	case config.SceneShapes:
		return scene.NewShapes()
	case config.SceneBasic:
		return scene.NewBasic()
	case config.ScenePointer:
		return scene.NewPointer()
	}
	rng := rand.New(rand.NewSource(seed))
	field := particle.NewField(rng, cfg.FillColor())
	return scene.NewParticles(field, cfg.Count, !cfg.Trails)
}

// setupLogging sends the standard logger to a file under logDir when debug
// is set and discards it otherwise. The terminal backend owns stdout, so
// there is no console logging.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
