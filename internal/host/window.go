package host

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/olivierh59500/canvas-particles/internal/frame"
	"github.com/olivierh59500/canvas-particles/internal/scene"
	"github.com/olivierh59500/canvas-particles/internal/surface"
)

// windowKeys maps ebiten keys to actions
var windowKeys = map[ebiten.Key]Action{
	ebiten.KeySpace:  ActionPause,
	ebiten.KeyR:      ActionReset,
	ebiten.KeyC:      ActionTrails,
	ebiten.KeyQ:      ActionQuit,
	ebiten.KeyEscape: ActionQuit,
}

// Window runs a scene in an ebiten window. Ebiten's Draw is the display
// refresh: every Draw binds the screen and flushes the frame queue.
type Window struct {
	ctx    context.Context
	scene  scene.Scene
	queue  *frame.Queue
	screen *surface.Screen

	title         string
	width, height int
	tps           int

	started  bool
	startErr error

	pointer pointerTracker
}

// NewWindow returns a window host for sc. Nothing opens until Run.
func NewWindow(ctx context.Context, sc scene.Scene, title string, width, height, tps int) *Window {
	return &Window{
		ctx:    ctx,
		scene:  sc,
		queue:  frame.NewQueue(),
		screen: surface.NewScreen(true),
		title:  title,
		width:  width,
		height: height,
		tps:    tps,
	}
}

// Run blocks until the window closes, the user quits or ctx is done.
func (w *Window) Run() error {
	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(w.tps)
	// clearing is the scene's job; trails rely on the screen persisting
	ebiten.SetScreenClearedEveryFrame(false)

	err := ebiten.RunGame(w)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update is called each tick by Ebitengine
func (w *Window) Update() error {
	if w.startErr != nil {
		return w.startErr
	}
	if w.ctx.Err() != nil {
		return ebiten.Termination
	}
	if w.handleInput() {
		return ebiten.Termination
	}
	return nil
}

// Draw is called each frame by Ebitengine
func (w *Window) Draw(screen *ebiten.Image) {
	w.screen.Bind(screen)
	if !w.start() {
		return
	}
	w.queue.Flush()
}

// start starts the scene once, on the first bound screen, and reports
// whether it is running. A failure is kept for Update to return.
func (w *Window) start() bool {
	if !w.started {
		w.started = true
		if err := w.scene.Start(w.ctx, w.screen, w.queue); err != nil {
			w.startErr = err
		}
	}
	return w.startErr == nil
}

// Layout follows the window, like a canvas sized to the viewport.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// handleInput processes keyboard and mouse input and reports a quit.
func (w *Window) handleInput() bool {
	for key, action := range windowKeys {
		if inpututil.IsKeyJustPressed(key) && Apply(w.scene, action) {
			return true
		}
	}

	sink, ok := w.scene.(scene.PointerSink)
	if !ok {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if w.pointer.update(mx, my, inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)) {
		sink.Pointer(float64(mx), float64(my))
	}
	return false
}

// pointerTracker turns polled cursor positions into pointer events. The
// first position only primes it, since ebiten reports a cursor even before
// the mouse has moved.
type pointerTracker struct {
	seen bool
	x, y int
}

// update records the cursor and reports whether it moved or was clicked.
func (p *pointerTracker) update(x, y int, clicked bool) bool {
	moved := p.seen && (x != p.x || y != p.y)
	p.seen = true
	p.x, p.y = x, y
	return moved || clicked
}
