// Package host runs a scene on a concrete output: an ebiten window, a tcell
// terminal or an offscreen raster written to PNG.
package host

import (
	"log"
	"unicode"

	"github.com/olivierh59500/canvas-particles/internal/scene"
)

// Action is a user command shared by the interactive hosts.
type Action int

const (
	ActionNone Action = iota
	ActionPause
	ActionReset
	ActionTrails
	ActionQuit
)

// KeyAction maps a typed character to its action.
func KeyAction(r rune) Action {
	switch unicode.ToLower(r) {
	case ' ':
		return ActionPause
	case 'r':
		return ActionReset
	case 'c':
		return ActionTrails
	case 'q':
		return ActionQuit
	}
	return ActionNone
}

// Apply performs a on s and reports whether the host should quit. Actions
// the scene does not support are ignored.
func Apply(s scene.Scene, a Action) (quit bool) {
	switch a {
	case ActionPause:
		s.SetPaused(!s.Paused())
		log.Printf("host: %s paused=%v", s.Name(), s.Paused())
	case ActionReset:
		if r, ok := s.(scene.Resetter); ok {
			if err := r.Reset(); err != nil {
				log.Printf("host: reset %s: %v", s.Name(), err)
			}
		}
	case ActionTrails:
		if tt, ok := s.(scene.TrailToggler); ok {
			log.Printf("host: %s trails=%v", s.Name(), tt.ToggleTrails())
		}
	case ActionQuit:
		return true
	}
	return false
}
