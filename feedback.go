package dropzone

import "time"

// Pattern is a haptic pattern: alternating vibrate and pause durations,
// starting with a vibrate.
type Pattern []time.Duration

// Built-in haptic patterns.
var (
	PatternShort     = Pattern{20 * time.Millisecond}
	PatternVeryShort = Pattern{10 * time.Millisecond}
	PatternTriple    = Pattern{30 * time.Millisecond, 50 * time.Millisecond, 30 * time.Millisecond, 50 * time.Millisecond, 30 * time.Millisecond}
	PatternLong      = Pattern{100 * time.Millisecond}
)

// Total returns the full length of the pattern including pauses.
func (p Pattern) Total() time.Duration {
	var d time.Duration
	for _, step := range p {
		d += step
	}
	return d
}

// Haptics is the platform's vibration primitive. Platforms without one pass
// nil to NewFeedbackCoordinator; the haptic channel then does nothing.
type Haptics interface {
	Vibrate(Pattern)
}

// Visual feedback defaults.
const (
	DragOpacity           = 0.5
	DragScale             = 0.95
	DefaultReturnDuration = 250 * time.Millisecond
)

// FeedbackCoordinator turns gesture transitions into haptic pulses and render
// commands. It keeps no gesture state of its own; every decision is made from
// the event it is handed.
type FeedbackCoordinator struct {
	haptics  Haptics
	renderer Renderer

	// ReturnDuration is how long a rejected item takes to slide back to
	// its origin.
	ReturnDuration time.Duration
}

// NewFeedbackCoordinator creates a coordinator. Either argument may be nil.
func NewFeedbackCoordinator(h Haptics, r Renderer) *FeedbackCoordinator {
	if r == nil {
		r = nopRenderer{}
	}
	return &FeedbackCoordinator{haptics: h, renderer: r, ReturnDuration: DefaultReturnDuration}
}

// Observe implements Observer.
func (f *FeedbackCoordinator) Observe(ev GestureEvent) {
	switch ev.Type {
	case GesturePress:
		f.pulse(PatternShort)

	case GestureDragStart:
		f.pulse(PatternShort)
		f.renderer.Apply(RenderCommand{
			Type:    CommandItemStyle,
			ItemID:  ev.Item.ID,
			Opacity: DragOpacity,
			Scale:   DragScale,
		})

	case GestureZoneEnter:
		f.pulse(PatternVeryShort)
		f.renderer.Apply(RenderCommand{Type: CommandZoneHighlight, ZoneID: ev.ZoneID, Highlight: true})

	case GestureZoneLeave:
		f.renderer.Apply(RenderCommand{Type: CommandZoneHighlight, ZoneID: ev.ZoneID, Highlight: false})

	case GestureDrop:
		f.pulse(PatternTriple)
		f.renderer.Apply(RenderCommand{Type: CommandZoneFilled, ZoneID: ev.ZoneID, ItemID: ev.Item.ID})
		f.renderer.Apply(RenderCommand{Type: CommandItemRemoved, ItemID: ev.Item.ID})

	case GestureDragEnd:
		if ev.Dropped {
			return
		}
		f.pulse(PatternLong)
		f.renderer.Apply(RenderCommand{
			Type:     CommandItemReturn,
			ItemID:   ev.Item.ID,
			From:     ev.Position,
			Position: ev.Origin,
			Opacity:  1,
			Scale:    1,
			Duration: f.ReturnDuration,
		})
	}
}

func (f *FeedbackCoordinator) pulse(p Pattern) {
	if f.haptics == nil {
		return
	}
	f.haptics.Vibrate(p)
}
