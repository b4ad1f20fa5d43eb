package host

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/canvas-particles/internal/particle"
	"github.com/olivierh59500/canvas-particles/internal/scene"
)

func TestPointerTracker(t *testing.T) {
	steps := []struct {
		x, y    int
		clicked bool
		want    bool
	}{
		{10, 10, false, false}, // first position only primes
		{10, 10, false, false},
		{11, 10, false, true},
		{11, 10, false, false},
		{11, 10, true, true},
		{3, 4, true, true},
		{3, 5, false, true},
	}
	var p pointerTracker
	for i, s := range steps {
		if got := p.update(s.x, s.y, s.clicked); got != s.want {
			t.Errorf("step %d: update(%d, %d, %v) = %v, want %v", i, s.x, s.y, s.clicked, got, s.want)
		}
	}
}

func TestPointerTrackerFirstClick(t *testing.T) {
	var p pointerTracker
	if !p.update(5, 5, true) {
		t.Error("click at the first position was dropped")
	}
}

func TestWindowLayoutFollowsOutside(t *testing.T) {
	w := NewWindow(context.Background(), scene.NewShapes(), "test", 800, 600, 60)
	if gw, gh := w.Layout(1024, 300); gw != 1024 || gh != 300 {
		t.Errorf("Layout(1024, 300) = %dx%d", gw, gh)
	}
}

func TestWindowStartsSceneOnce(t *testing.T) {
	w := NewWindow(context.Background(), scene.NewShapes(), "test", 800, 600, 60)

	if !w.start() || !w.start() {
		t.Fatal("start reported a failure")
	}
	if n := w.queue.Len(); n != 1 {
		t.Errorf("pending frames = %d, want 1 from a single start", n)
	}
}

func TestWindowStartErrorEndsUpdate(t *testing.T) {
	field := particle.NewField(rand.New(rand.NewSource(1)), nil)
	// an unbound screen has no size, so the field cannot be sampled
	w := NewWindow(context.Background(), scene.NewParticles(field, 4, true), "test", 800, 600, 60)

	if w.start() {
		t.Fatal("start succeeded on an unbound screen")
	}
	if err := w.Update(); !errors.Is(err, particle.ErrSurfaceNotReady) {
		t.Errorf("Update() = %v, want %v", err, particle.ErrSurfaceNotReady)
	}
	if w.start() {
		t.Error("start retried after a failure")
	}
}

func TestWindowUpdateEndsWhenContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w := NewWindow(ctx, scene.NewShapes(), "test", 800, 600, 60)

	if err := w.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update() = %v, want ebiten.Termination", err)
	}
}
