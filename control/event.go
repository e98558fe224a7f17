// Package control turns raw pointer, wheel and key events into viewport
// changes and tracks the Julia parameter.
package control

import (
	"errors"
	"fmt"
)

// Kind names an input event. The values double as the wire names.
type Kind string

const (
	KindDown    Kind = "down"
	KindUp      Kind = "up"
	KindMove    Kind = "move"
	KindWheel   Kind = "wheel"
	KindToggle  Kind = "toggle"
	KindReset   Kind = "reset"
	KindGoto    Kind = "goto"
	KindPreview Kind = "preview"
)

// ButtonPrimary is the only button that drags.
const ButtonPrimary = 0

var (
	ErrUnknownEvent    = errors.New("unknown event kind")
	ErrUnknownLandmark = errors.New("unknown landmark")
)

// Event is one input event in grid pixel coordinates.
type Event struct {
	Kind   Kind    `json:"kind"`
	X      int     `json:"x,omitempty"`
	Y      int     `json:"y,omitempty"`
	Button int     `json:"button,omitempty"`
	DY     float64 `json:"dy,omitempty"` // wheel: > 0 scrolls up
	Name   string  `json:"name,omitempty"`
}

// Positional reports whether the event carries a pointer position.
func (e Event) Positional() bool {
	switch e.Kind {
	case KindDown, KindUp, KindMove, KindWheel:
		return true
	}
	return false
}

// Validate rejects events of unknown kind.
func (e Event) Validate() error {
	switch e.Kind {
	case KindDown, KindUp, KindMove, KindWheel, KindToggle, KindReset, KindGoto, KindPreview:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownEvent, e.Kind)
}

// Convenience constructors.

func Down(x, y int) Event { return Event{Kind: KindDown, X: x, Y: y, Button: ButtonPrimary} }
func Up(x, y int) Event   { return Event{Kind: KindUp, X: x, Y: y, Button: ButtonPrimary} }
func Move(x, y int) Event { return Event{Kind: KindMove, X: x, Y: y} }
func Toggle() Event       { return Event{Kind: KindToggle} }
func Reset() Event        { return Event{Kind: KindReset} }
func Preview() Event      { return Event{Kind: KindPreview} }
func Goto(name string) Event {
	return Event{Kind: KindGoto, Name: name}
}

// Wheel scrolls by dy at (x, y).
func Wheel(x, y int, dy float64) Event {
	return Event{Kind: KindWheel, X: x, Y: y, DY: dy}
}
