package host

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/olivierh59500/canvas-particles/internal/frame"
	"github.com/olivierh59500/canvas-particles/internal/scene"
	"github.com/olivierh59500/canvas-particles/internal/surface"
)

// Headless renders a fixed number of frames offscreen. Pointer scenes are
// fed from a Wanderer since there is no mouse.
type Headless struct {
	scene    scene.Scene
	raster   *surface.Raster
	queue    *frame.Queue
	wanderer *scene.Wanderer
	frames   int
}

func NewHeadless(sc scene.Scene, width, height, frames int, seed int64) *Headless {
	return &Headless{
		scene:    sc,
		raster:   surface.NewRaster(width, height),
		queue:    frame.NewQueue(),
		wanderer: scene.NewWanderer(seed),
		frames:   frames,
	}
}

// Raster exposes the surface being rendered to.
func (h *Headless) Raster() *surface.Raster {
	return h.raster
}

// Render starts the scene and flushes the configured number of frames. It
// stops early when ctx is done.
func (h *Headless) Render(ctx context.Context) error {
	if err := h.scene.Start(ctx, h.raster, h.queue); err != nil {
		return err
	}

	sink, _ := h.scene.(scene.PointerSink)
	w, ht := h.raster.Size()
	for i := 0; i < h.frames; i++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("headless: stopped at frame %d: %w", i, err)
		}
		if sink != nil {
			sink.Pointer(h.wanderer.Next(float64(w), float64(ht)))
		}
		h.queue.Flush()
	}
	log.Printf("headless: rendered %d frames of %s on %dx%d", h.frames, h.scene.Name(), w, ht)
	return nil
}

// WritePNG renders and encodes the last frame to out.
func (h *Headless) WritePNG(ctx context.Context, out io.Writer) error {
	if err := h.Render(ctx); err != nil {
		return err
	}
	return h.raster.WritePNG(out)
}
