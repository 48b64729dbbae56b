package dropzone

// RawAction is what the platform reported for a contact.
type RawAction uint8

const (
	RawDown      RawAction = iota // button pressed / finger down
	RawMove                       // position changed while down
	RawUp                         // button released / finger lifted
	RawInterrupt                  // platform interrupted the contact (touchcancel, focus loss)
)

var rawActionNames = [...]string{"down", "move", "up", "interrupt"}

func (a RawAction) String() string {
	if int(a) < len(rawActionNames) {
		return rawActionNames[a]
	}
	return "unknown"
}

// RawInput is a platform input signal before normalization. Pointer input
// uses PointerID 0; touch input uses the platform's touch identifier.
//
// ItemID names the item under the contact for RawDown when the platform
// already knows it (e.g. a DOM target). When empty, the engine resolves the
// item through its item BoundsFunc.
type RawInput struct {
	Source    InputKind
	Action    RawAction
	Position  Vec2
	PointerID int
	ItemID    string
}

// Event is the normalized input event consumed by the state machine.
type Event struct {
	Kind      EventKind
	Position  Vec2
	PointerID int
	Input     InputKind
	ItemID    string // only meaningful for EventPress
}

// normalizer collapses pointer and touch signals into one Event stream and
// keeps a single contact in charge of the session.
type normalizer struct {
	active    bool
	input     InputKind
	pointerID int
}

// normalize converts raw into an Event. It returns false when the signal must
// be ignored: input from a second contact or from the other input model while
// a session is active (synthetic mouse events generated for a touch, extra
// fingers), or move/up/interrupt with no session to drive.
func (n *normalizer) normalize(raw RawInput) (Event, bool) {
	ev := Event{
		Position:  raw.Position,
		PointerID: raw.PointerID,
		Input:     raw.Source,
		ItemID:    raw.ItemID,
	}

	if !n.active {
		if raw.Action != RawDown {
			return Event{}, false
		}
		ev.Kind = EventPress
		return ev, true
	}

	if raw.Source != n.input || raw.PointerID != n.pointerID {
		return Event{}, false
	}

	switch raw.Action {
	case RawMove:
		ev.Kind = EventMove
	case RawUp:
		ev.Kind = EventRelease
	case RawInterrupt:
		ev.Kind = EventCancel
	default:
		// Repeated down for the contact already in charge.
		return Event{}, false
	}
	ev.ItemID = ""
	return ev, true
}

// sync binds the normalizer to the session's contact, or frees it once the
// session is back to idle.
func (n *normalizer) sync(s *GestureSession) {
	if s.Phase == PhaseIdle {
		n.active = false
		n.input = InputPointer
		n.pointerID = 0
		return
	}
	n.active = true
	n.input = s.Input
	n.pointerID = s.PointerID
}
