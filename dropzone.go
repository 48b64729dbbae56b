package dropzone

import "math"

// Vec2 is a 2D vector used for positions and offsets throughout the API.
// Coordinates are logical screen pixels with Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec2) float64 {
	return b.Sub(a).Len()
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// ContainsPoint is Contains for a Vec2.
func (r Rect) ContainsPoint(p Vec2) bool {
	return r.Contains(p.X, p.Y)
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// DraggableItem is something the user can pick up. Items are registered by
// the caller before interaction begins and are treated as immutable.
type DraggableItem struct {
	ID      string
	Payload any
	Label   string
}

// DropZone is a target an item can be dropped onto. Its bounds are not stored;
// they are fetched through the engine's zone BoundsFunc at hit-test time.
type DropZone struct {
	ID       string
	Label    string
	Occupied bool
}

// BoundsFunc maps an item or zone ID to its current screen rectangle.
// It returns false when the presentation layer has no bounds for the ID
// (e.g. the element is not laid out), in which case the ID is skipped.
type BoundsFunc func(id string) (Rect, bool)

// Phase is the state of the gesture session.
type Phase uint8

const (
	PhaseIdle     Phase = iota // no active gesture
	PhasePressed               // contact down, movement still within the threshold
	PhaseDragging              // movement exceeded the threshold
	PhaseReleased              // terminal; folds back to PhaseIdle immediately
)

var phaseNames = [...]string{"idle", "pressed", "dragging", "released"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// InputKind identifies the physical input model that produced an event.
type InputKind uint8

const (
	InputPointer InputKind = iota // mouse-like pointer
	InputTouch                    // touch contact
)

func (k InputKind) String() string {
	if k == InputTouch {
		return "touch"
	}
	return "pointer"
}

// EventKind identifies a normalized input event.
type EventKind uint8

const (
	EventPress   EventKind = iota // first contact
	EventMove                     // contact moved while down
	EventRelease                  // contact lifted
	EventCancel                   // platform interrupted the contact
)

var eventKindNames = [...]string{"press", "move", "release", "cancel"}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return "unknown"
}

// GestureType identifies a signal emitted to observers as the session moves
// through its phases.
type GestureType uint8

const (
	GesturePress     GestureType = iota // Idle -> Pressed
	GestureTap                          // Pressed -> Idle without crossing the threshold
	GestureDragStart                    // Pressed -> Dragging
	GestureDragMove                     // position update while Dragging
	GestureZoneEnter                    // hovered zone became ZoneID
	GestureZoneLeave                    // hovered zone ZoneID is no longer under the contact
	GestureDrop                         // Released over a zone
	GestureDragEnd                      // Released, fired after GestureDrop when there was one
)

var gestureTypeNames = [...]string{
	"press", "tap", "drag-start", "drag-move", "zone-enter", "zone-leave", "drop", "drag-end",
}

func (t GestureType) String() string {
	if int(t) < len(gestureTypeNames) {
		return gestureTypeNames[t]
	}
	return "unknown"
}

// GestureEvent is the transition data handed to observers (feedback,
// preview, ECS bridge).
type GestureEvent struct {
	Type     GestureType
	Item     DraggableItem
	ZoneID   string // set for zone enter/leave and drop; empty otherwise
	Position Vec2
	Origin   Vec2
	Input    InputKind
	// Dropped is valid for GestureDragEnd: whether the gesture resolved over a zone.
	Dropped bool
}

// Observer reacts to gesture transitions. Observers must not call back into
// the engine's registration methods while handling an event.
type Observer interface {
	Observe(GestureEvent)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(GestureEvent)

// Observe calls f(e).
func (f ObserverFunc) Observe(e GestureEvent) { f(e) }
