package scene

import (
	"context"
	"fmt"
	"image/color"
	"math/rand"
	"testing"

	"github.com/olivierh59500/canvas-particles/internal/frame"
	"github.com/olivierh59500/canvas-particles/internal/particle"
)

// recCanvas records canvas calls as strings.
type recCanvas struct {
	w, h int
	ops  []string
}

func (c *recCanvas) Size() (int, int) { return c.w, c.h }

func (c *recCanvas) Clear() {
	c.ops = append(c.ops, "clear")
}

func (c *recCanvas) FillCircle(x, y, r float64, clr color.Color) {
	c.ops = append(c.ops, fmt.Sprintf("circle %g,%g r%g %v", x, y, r, clr))
}

func (c *recCanvas) FillRect(x, y, w, h float64, clr color.Color) {
	c.ops = append(c.ops, fmt.Sprintf("rect %g,%g %gx%g %v", x, y, w, h, clr))
}

func (c *recCanvas) StrokeCircle(x, y, r, width float64, clr color.Color) {
	c.ops = append(c.ops, fmt.Sprintf("ring %g,%g r%g w%g %v", x, y, r, width, clr))
}

func startScene(t *testing.T, s Scene, c *recCanvas) (*frame.Queue, context.CancelFunc) {
	t.Helper()
	q := frame.NewQueue()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	if err := s.Start(ctx, c, q); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return q, cancel
}

func equalOps(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("ops = %q\nwant %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("op %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestShapesDrawOnceUntilResize(t *testing.T) {
	c := &recCanvas{w: 800, h: 600}
	q, _ := startScene(t, NewShapes(), c)

	q.Flush()
	want := []string{
		fmt.Sprintf("circle 100,100 r50 %v", red),
		fmt.Sprintf("ring 200,200 r50 w5 %v", blue),
	}
	equalOps(t, c.ops, want)

	q.Flush()
	q.Flush()
	equalOps(t, c.ops, want)

	c.w = 1024
	q.Flush()
	equalOps(t, c.ops, append(want, want...))
}

func TestBasicRestoresFillStyle(t *testing.T) {
	c := &recCanvas{w: 800, h: 600}
	q, _ := startScene(t, NewBasic(), c)
	q.Flush()

	equalOps(t, c.ops, []string{
		fmt.Sprintf("rect 50,50 100x100 %v", blue),
		fmt.Sprintf("rect 70,70 50x50 %v", red),
		fmt.Sprintf("rect 90,90 30x30 %v", blue),
	})
}

func TestPenUnbalancedRestore(t *testing.T) {
	p := newPen(&recCanvas{}, red)
	p.restore()
	if p.fill != red {
		t.Errorf("fill = %v after empty restore", p.fill)
	}
	p.save()
	p.save()
	p.fill = blue
	p.restore()
	p.restore()
	if p.fill != red || len(p.saved) != 0 {
		t.Errorf("fill = %v, stack = %v", p.fill, p.saved)
	}
}

func TestStaticPause(t *testing.T) {
	c := &recCanvas{w: 800, h: 600}
	s := NewShapes()
	q, _ := startScene(t, s, c)

	s.SetPaused(true)
	if !s.Paused() || q.Len() != 0 {
		t.Fatalf("pause left %d requests", q.Len())
	}
	q.Flush()
	if len(c.ops) != 0 {
		t.Errorf("paused scene drew %q", c.ops)
	}

	s.SetPaused(false)
	q.Flush()
	if len(c.ops) != 2 {
		t.Errorf("resumed scene drew %q", c.ops)
	}
}

func TestPointerDrawsQueuedDotsOnce(t *testing.T) {
	c := &recCanvas{w: 800, h: 600}
	p := NewPointer()
	q, _ := startScene(t, p, c)

	p.Pointer(10, 20)
	p.Pointer(11, 21)
	if len(c.ops) != 0 {
		t.Fatal("pointer drew outside a frame")
	}
	q.Flush()
	q.Flush()

	equalOps(t, c.ops, []string{
		fmt.Sprintf("circle 10,20 r2 %v", PointerColor),
		fmt.Sprintf("circle 11,21 r2 %v", PointerColor),
	})
	if p.Pending() != 0 {
		t.Errorf("Pending() = %d", p.Pending())
	}
}

func TestPointerIgnoresInputWhilePaused(t *testing.T) {
	c := &recCanvas{w: 800, h: 600}
	p := NewPointer()
	q, _ := startScene(t, p, c)

	p.SetPaused(true)
	p.Pointer(1, 1)
	p.SetPaused(false)
	q.Flush()

	if len(c.ops) != 0 {
		t.Errorf("ops = %q, want none", c.ops)
	}
}

func TestSceneStopsWithContext(t *testing.T) {
	c := &recCanvas{w: 800, h: 600}
	p := NewPointer()
	q, cancel := startScene(t, p, c)

	cancel()
	p.Pointer(5, 5)
	q.Flush()

	if len(c.ops) != 0 || q.Len() != 0 {
		t.Errorf("cancelled scene drew %q, pending %d", c.ops, q.Len())
	}
}

func TestParticlesScene(t *testing.T) {
	c := &recCanvas{w: 800, h: 600}
	field := particle.NewField(rand.New(rand.NewSource(1)), nil)
	s := NewParticles(field, 3, true)
	q, _ := startScene(t, s, c)

	if field.Len() != 3 {
		t.Fatalf("field has %d particles, want 3", field.Len())
	}
	q.Flush()
	if len(c.ops) != 4 || c.ops[0] != "clear" {
		t.Fatalf("ops = %q, want clear + 3 circles", c.ops)
	}

	if !s.ToggleTrails() {
		t.Error("ToggleTrails() did not turn trails on")
	}
	q.Flush()
	if len(c.ops) != 7 {
		t.Errorf("ops = %q, want 3 more circles and no clear", c.ops)
	}

	s.SetPaused(true)
	if !s.Paused() {
		t.Error("Paused() = false")
	}
	q.Flush()
	if s.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", s.Frames())
	}
	s.SetPaused(false)
	q.Flush()
	if s.Frames() != 3 {
		t.Errorf("Frames() = %d after resume, want 3", s.Frames())
	}
}

func TestParticlesResetUsesCurrentSize(t *testing.T) {
	c := &recCanvas{w: 800, h: 600}
	field := particle.NewField(rand.New(rand.NewSource(2)), nil)
	s := NewParticles(field, 50, true)
	startScene(t, s, c)

	c.w, c.h = 10, 10
	if err := s.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	for _, p := range field.Particles() {
		if p.X >= 10 || p.Y >= 10 {
			t.Fatalf("particle at (%v, %v) outside the resized surface", p.X, p.Y)
		}
	}
}

func TestParticlesStartOnEmptySurface(t *testing.T) {
	field := particle.NewField(rand.New(rand.NewSource(2)), nil)
	s := NewParticles(field, 5, true)
	err := s.Start(context.Background(), &recCanvas{}, frame.NewQueue())
	if err == nil {
		t.Fatal("Start on a 0x0 surface succeeded")
	}
}

func TestWandererStaysInBounds(t *testing.T) {
	wd := NewWanderer(4)
	for i := 0; i < 5000; i++ {
		x, y := wd.Next(320, 200)
		if x < 0 || x >= 320 || y < 0 || y >= 200 {
			t.Fatalf("step %d: (%v, %v) outside 320x200", i, x, y)
		}
	}
}

func TestWandererDeterministic(t *testing.T) {
	a, b := NewWanderer(99), NewWanderer(99)
	moved := false
	var lx, ly float64
	for i := 0; i < 100; i++ {
		ax, ay := a.Next(800, 600)
		bx, by := b.Next(800, 600)
		if ax != bx || ay != by {
			t.Fatalf("step %d: (%v, %v) != (%v, %v)", i, ax, ay, bx, by)
		}
		if i > 0 && (ax != lx || ay != ly) {
			moved = true
		}
		lx, ly = ax, ay
	}
	if !moved {
		t.Error("wanderer never moved")
	}
}
