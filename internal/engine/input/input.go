// Package input polls SDL2 events and presents them to the editor loop as
// plain values, keeping SDL types out of the rest of the engine.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies a polled event.
type EventType int

const (
	EventQuit EventType = iota
	EventWindowResize
	EventPointerEnter
	EventPointerLeave
	EventKeyDown
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

// Mouse button identifiers.
const (
	ButtonLeft  = sdl.BUTTON_LEFT
	ButtonRight = sdl.BUTTON_RIGHT
)

// Keys the editor binds.
const (
	KeyEscape = sdl.K_ESCAPE
	KeyDelete = sdl.K_DELETE
	KeyE      = sdl.K_e
	KeyS      = sdl.K_s
)

// Event is a single polled input event. Fields are populated depending on
// the event type.
type Event struct {
	Type   EventType
	Key    sdl.Keycode
	X      int
	Y      int
	DeltaX int
	DeltaY int
	Button uint8
	WheelY float64
	Width  int
	Height int
}

// Input drains the SDL event queue once per frame.
type Input struct {
	events []Event
}

// New creates an input poller.
func New() *Input {
	return &Input{events: make([]Event, 0, 32)}
}

// Update polls all pending SDL events. The previous frame's events are
// discarded.
func (in *Input) Update() {
	in.events = in.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			in.events = append(in.events, Event{Type: EventQuit})

		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_SIZE_CHANGED:
				in.events = append(in.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			case sdl.WINDOWEVENT_ENTER:
				in.events = append(in.events, Event{Type: EventPointerEnter})
			case sdl.WINDOWEVENT_LEAVE:
				in.events = append(in.events, Event{Type: EventPointerLeave})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				in.events = append(in.events, Event{
					Type: EventKeyDown,
					Key:  e.Keysym.Sym,
				})
			}

		case *sdl.MouseMotionEvent:
			in.events = append(in.events, Event{
				Type:   EventMouseMove,
				X:      int(e.X),
				Y:      int(e.Y),
				DeltaX: int(e.XRel),
				DeltaY: int(e.YRel),
			})

		case *sdl.MouseButtonEvent:
			t := EventMouseDown
			if e.Type == sdl.MOUSEBUTTONUP {
				t = EventMouseUp
			}
			in.events = append(in.events, Event{
				Type:   t,
				X:      int(e.X),
				Y:      int(e.Y),
				Button: e.Button,
			})

		case *sdl.MouseWheelEvent:
			wheelY := float64(e.Y)
			if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
				wheelY = -wheelY
			}
			in.events = append(in.events, Event{
				Type:   EventMouseWheel,
				WheelY: wheelY,
			})
		}
	}
}

// Events returns the events polled by the last Update call.
func (in *Input) Events() []Event {
	return in.events
}
