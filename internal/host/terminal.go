package host

import (
	"context"
	"errors"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/olivierh59500/canvas-particles/internal/frame"
	"github.com/olivierh59500/canvas-particles/internal/scene"
	"github.com/olivierh59500/canvas-particles/internal/surface"
)

// Terminal runs a scene on a tcell screen. Events are read on their own
// goroutine and handed to the frame goroutine, so the scene is only touched
// from Run.
type Terminal struct {
	screen  tcell.Screen
	scene   scene.Scene
	fps     int
	surface *surface.Terminal
}

// NewTerminal wraps an initialized screen. The caller owns the screen and
// calls Fini after Run returns.
func NewTerminal(screen tcell.Screen, sc scene.Scene, fps int) *Terminal {
	return &Terminal{screen: screen, scene: sc, fps: fps}
}

// Run blocks until the user quits or ctx is done.
func (t *Terminal) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	t.screen.EnableMouse(tcell.MouseMotionEvents)
	t.screen.HideCursor()
	t.surface = surface.NewTerminal(t.screen)

	queue := frame.NewQueue()
	ticker := frame.NewTicker(queue, t.fps)
	if err := t.scene.Start(ctx, t.surface, queue); err != nil {
		return err
	}
	w, h := t.surface.Size()
	log.Printf("terminal: %s on %dx%d pixels", t.scene.Name(), w, h)

	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			ticker.Post(ctx, func() {
				if !t.handleEvent(ev) {
					cancel()
				}
			})
		}
	}()

	err := ticker.Run(ctx, func(int) { t.surface.Present() })
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// handleEvent returns false when the user asked to quit.
func (t *Terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			return !Apply(t.scene, KeyAction(ev.Rune()))
		}

	case *tcell.EventMouse:
		if sink, ok := t.scene.(scene.PointerSink); ok {
			col, row := ev.Position()
			x, y := cellCenter(col, row)
			sink.Pointer(x, y)
		}

	case *tcell.EventResize:
		t.screen.Sync()
		if t.surface.Sync() {
			w, h := t.surface.Size()
			log.Printf("terminal: resized to %dx%d pixels", w, h)
		}
	}
	return true
}

// cellCenter converts a cell to the pixel coordinates of its center.
func cellCenter(col, row int) (x, y float64) {
	return float64(col) + 0.5, float64(row*2) + 1
}
