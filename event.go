package cellui

// EventKind discriminates the closed set of input events a host surface can
// deliver. Switches over EventKind should be exhaustive.
type EventKind int

const (
	EventNone EventKind = iota
	EventPointerMove
	EventPointerDown
	EventPointerUp
	EventKeyDown
	EventKeyUp
	EventWheel
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "none"
	case EventPointerMove:
		return "pointer-move"
	case EventPointerDown:
		return "pointer-down"
	case EventPointerUp:
		return "pointer-up"
	case EventKeyDown:
		return "key-down"
	case EventKeyUp:
		return "key-up"
	case EventWheel:
		return "wheel"
	}
	return "?"
}

// Event is one discrete input event as delivered by a host surface. Pointer
// positions arrive in continuous cell coordinates (the host already applied
// its pixel-to-cell mapping); dispatch floors them to a discrete cell.
//
// An event is consumed at most once per render pass: a widget that handles it
// calls UI.StopEventPropagation, which hides it for the remainder of the pass
// and from the post-pass focus-advance fallback.
type Event struct {
	Kind EventKind

	// Pointer payload (move/down/up/wheel).
	CellX, CellY float32
	Button       MouseButton

	// Key payload (key-down/key-up). Rune carries the typed character for
	// text input on key-down, or 0 when the key produced no character.
	Key  Key
	Rune rune

	// Wheel payload.
	WheelX, WheelY float32

	// Modifiers.
	Shift, Ctrl, Alt bool

	suppressDefault bool
}

// DefaultSuppressed reports whether a widget asked the host to suppress its
// default handling of this event (e.g. forwarding a key to the game world).
// Hosts read this after Dispatch returns.
func (e *Event) DefaultSuppressed() bool { return e.suppressDefault }
