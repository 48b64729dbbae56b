package dropzone

import (
	"io"
	"os"
	"time"
)

const defaultDragThreshold = 5.0 // logical pixels

// Config holds engine tuning. Zero fields take their defaults in NewEngine.
type Config struct {
	// Threshold is the travel distance from the press origin that must be
	// strictly exceeded before a press becomes a drag. Default 5.
	Threshold float64
	// HitTestInterval is the minimum time between hit tests while dragging.
	// The release hit test ignores it. Default 100ms.
	HitTestInterval time.Duration
	// Now supplies timestamps for hit-test throttling. Default time.Now.
	Now func() time.Time
	// Debug enables transition logging (see SetDebugMode).
	Debug bool
}

func (c Config) withDefaults() Config {
	if c.Threshold <= 0 {
		c.Threshold = defaultDragThreshold
	}
	if c.HitTestInterval <= 0 {
		c.HitTestInterval = defaultHitTestInterval
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}

// GestureSession is the engine's single piece of mutable gesture state.
// Empty ID strings stand for "none".
type GestureSession struct {
	ActiveItemID      string
	Phase             Phase
	Origin            Vec2
	Current           Vec2
	Input             InputKind
	PointerID         int
	LastHitZoneID     string
	ThresholdExceeded bool
	LastHitTestAt     time.Time
}

// InputSource produces raw platform input once per tick. EbitenInput is the
// built-in implementation.
type InputSource interface {
	AppendInputs(buf []RawInput) []RawInput
}

// Engine owns the registered items and zones, the gesture session, and the
// callback and observer lists. It is not safe for concurrent use; all input
// is processed synchronously on the caller's goroutine.
type Engine struct {
	cfg Config

	items      []DraggableItem
	itemIndex  map[string]int
	itemBounds BoundsFunc
	hits       *HitTester

	session   GestureSession
	norm      normalizer
	handlers  handlerRegistry
	observers []Observer

	// dispatching is set while a transition runs; events dispatched from
	// callbacks or observers wait in deferred until it completes.
	dispatching bool
	deferred    []Event

	source      InputSource
	sourceBuf   []RawInput
	injectQueue []RawInput
	testRunner  *TestRunner

	debug    bool
	debugOut io.Writer
}

// NewEngine creates an idle engine with no items or zones.
func NewEngine(cfg Config) *Engine {
	cfg = cfg.withDefaults()
	return &Engine{
		cfg:       cfg,
		itemIndex: make(map[string]int),
		hits:      NewHitTester(nil),
		debug:     cfg.Debug,
		debugOut:  os.Stderr,
	}
}

// SetDragThreshold sets the minimum movement in pixels before a press
// becomes a drag. Non-positive values restore the default.
func (e *Engine) SetDragThreshold(pixels float64) {
	if pixels <= 0 {
		pixels = defaultDragThreshold
	}
	e.cfg.Threshold = pixels
}

// SetHitTestInterval sets the throttle window for hit tests during a drag.
// Non-positive values restore the default.
func (e *Engine) SetHitTestInterval(d time.Duration) {
	if d <= 0 {
		d = defaultHitTestInterval
	}
	e.cfg.HitTestInterval = d
}

// SetZoneBounds sets the lookup used to fetch zone rectangles at hit-test time.
func (e *Engine) SetZoneBounds(fn BoundsFunc) {
	e.hits.SetBounds(fn)
}

// SetItemBounds sets the lookup used to find the item under a press when the
// raw input does not name one.
func (e *Engine) SetItemBounds(fn BoundsFunc) {
	e.itemBounds = fn
}

// SetInputSource attaches a platform input source polled by Update.
func (e *Engine) SetInputSource(src InputSource) {
	e.source = src
}

// AddObserver subscribes o to gesture transitions.
func (e *Engine) AddObserver(o Observer) {
	e.observers = append(e.observers, o)
}

// HitTester exposes the engine's zone hit tester for read-only queries.
func (e *Engine) HitTester() *HitTester {
	return e.hits
}

// Session returns a copy of the current gesture session.
func (e *Engine) Session() GestureSession {
	return e.session
}

// Phase returns the current session phase.
func (e *Engine) Phase() Phase {
	return e.session.Phase
}

// --- Registration ---

// RegisterDraggable adds an item. The ID must be non-empty and unique, and no
// gesture may be in progress.
func (e *Engine) RegisterDraggable(item DraggableItem) error {
	if e.session.Phase != PhaseIdle {
		return configErr("register draggable", item.ID, ErrSessionActive)
	}
	if item.ID == "" {
		return configErr("register draggable", "", ErrMissingID)
	}
	if _, dup := e.itemIndex[item.ID]; dup {
		return configErr("register draggable", item.ID, ErrDuplicateID)
	}
	e.itemIndex[item.ID] = len(e.items)
	e.items = append(e.items, item)
	return nil
}

// UnregisterDraggable removes an item, keeping the order of the rest.
func (e *Engine) UnregisterDraggable(id string) error {
	if e.session.Phase != PhaseIdle {
		return configErr("unregister draggable", id, ErrSessionActive)
	}
	i, ok := e.itemIndex[id]
	if !ok {
		return configErr("unregister draggable", id, ErrUnknownItem)
	}
	copy(e.items[i:], e.items[i+1:])
	e.items[len(e.items)-1] = DraggableItem{}
	e.items = e.items[:len(e.items)-1]
	delete(e.itemIndex, id)
	for j := i; j < len(e.items); j++ {
		e.itemIndex[e.items[j].ID] = j
	}
	return nil
}

// RegisterDropZone adds a zone. Registration order decides which zone wins
// when bounds overlap: the earliest registered.
func (e *Engine) RegisterDropZone(zone DropZone) error {
	if e.session.Phase != PhaseIdle {
		return configErr("register drop zone", zone.ID, ErrSessionActive)
	}
	return e.hits.add(zone)
}

// UnregisterDropZone removes a zone.
func (e *Engine) UnregisterDropZone(id string) error {
	if e.session.Phase != PhaseIdle {
		return configErr("unregister drop zone", id, ErrSessionActive)
	}
	return e.hits.remove(id)
}

// SetZoneOccupied marks a zone filled or empty. Occupied zones are not drop
// candidates. It may be called from an OnDrop callback.
func (e *Engine) SetZoneOccupied(id string, occupied bool) error {
	return e.hits.setOccupied(id, occupied)
}

// Item returns the registered item with the given ID.
func (e *Engine) Item(id string) (DraggableItem, bool) {
	i, ok := e.itemIndex[id]
	if !ok {
		return DraggableItem{}, false
	}
	return e.items[i], true
}

// Items returns the registered items in registration order.
func (e *Engine) Items() []DraggableItem {
	out := make([]DraggableItem, len(e.items))
	copy(out, e.items)
	return out
}

// Zones returns the registered zones in registration order.
func (e *Engine) Zones() []DropZone {
	out := make([]DropZone, len(e.hits.zones))
	copy(out, e.hits.zones)
	return out
}

// itemAt finds the topmost item under p. Items are assumed to be drawn in
// registration order, so the last registered is on top.
func (e *Engine) itemAt(p Vec2) (DraggableItem, bool) {
	if e.itemBounds == nil {
		return DraggableItem{}, false
	}
	for i := len(e.items) - 1; i >= 0; i-- {
		r, ok := e.itemBounds(e.items[i].ID)
		if ok && r.ContainsPoint(p) {
			return e.items[i], true
		}
	}
	return DraggableItem{}, false
}

// --- Input processing ---

// Update advances the test runner, then processes one injected event if any
// are queued; otherwise it polls the input source. Call it once per tick.
func (e *Engine) Update() {
	if e.testRunner != nil {
		e.testRunner.step(e)
	}
	if e.processInjectedInput() {
		return
	}
	if e.source == nil {
		return
	}
	e.sourceBuf = e.source.AppendInputs(e.sourceBuf[:0])
	for _, raw := range e.sourceBuf {
		if err := e.Feed(raw); err != nil {
			e.debugf("input rejected: %v", err)
		}
	}
}

// Feed normalizes a raw platform signal and dispatches it. Signals from a
// second contact or the other input model are dropped while a session is
// active.
func (e *Engine) Feed(raw RawInput) error {
	ev, ok := e.norm.normalize(raw)
	if !ok {
		e.debugf("ignored %s %s from pointer %d", raw.Source, raw.Action, raw.PointerID)
		return nil
	}
	return e.Dispatch(ev)
}

// Dispatch runs the gesture state machine for one normalized event. The only
// errors are ConfigErrors from a press: an unknown item ID, or a press while
// another session is active.
//
// Each event runs to completion before the next. An event dispatched from a
// callback or observer is deferred until the current transition finishes and
// then processed in order; Dispatch returns nil for it and any error it
// produces is written to the debug log.
func (e *Engine) Dispatch(ev Event) error {
	if e.dispatching {
		e.deferred = append(e.deferred, ev)
		return nil
	}
	e.dispatching = true
	defer func() {
		e.dispatching = false
		e.deferred = e.deferred[:0]
	}()

	err := e.step(ev)
	for i := 0; i < len(e.deferred); i++ {
		if derr := e.step(e.deferred[i]); derr != nil {
			e.debugf("deferred %s rejected: %v", e.deferred[i].Kind, derr)
		}
	}
	return err
}

func (e *Engine) step(ev Event) error {
	var err error
	switch ev.Kind {
	case EventPress:
		err = e.press(ev)
	case EventMove:
		e.move(ev)
	case EventRelease:
		e.release(ev)
	case EventCancel:
		e.cancel()
	}
	e.norm.sync(&e.session)
	return err
}

func (e *Engine) press(ev Event) error {
	if e.session.Phase != PhaseIdle {
		return configErr("press", ev.ItemID, ErrSessionActive)
	}

	var item DraggableItem
	if ev.ItemID != "" {
		var ok bool
		if item, ok = e.Item(ev.ItemID); !ok {
			return configErr("press", ev.ItemID, ErrUnknownItem)
		}
	} else {
		var ok bool
		if item, ok = e.itemAt(ev.Position); !ok {
			e.debugf("press at (%.1f, %.1f) hit no item", ev.Position.X, ev.Position.Y)
			return nil
		}
	}

	e.session = GestureSession{
		ActiveItemID: item.ID,
		Phase:        PhasePressed,
		Origin:       ev.Position,
		Current:      ev.Position,
		Input:        ev.Input,
		PointerID:    ev.PointerID,
	}
	e.debugTransition(PhaseIdle, PhasePressed, item.ID)
	e.emit(GesturePress, item, "", false)
	return nil
}

func (e *Engine) move(ev Event) {
	s := &e.session
	switch s.Phase {
	case PhasePressed:
		s.Current = ev.Position
		if Distance(s.Origin, s.Current) <= e.cfg.Threshold {
			return
		}
		s.Phase = PhaseDragging
		s.ThresholdExceeded = true
		item := e.activeItem()
		e.debugTransition(PhasePressed, PhaseDragging, item.ID)
		fireDrag(e.handlers.dragStart, e.dragContext(item, DropZone{}, false))
		e.emit(GestureDragStart, item, "", false)
		e.trackZone(item)
	case PhaseDragging:
		s.Current = ev.Position
		item := e.activeItem()
		e.emit(GestureDragMove, item, "", false)
		e.trackZone(item)
	}
}

// trackZone runs the throttled hit test and reports hovered-zone changes.
func (e *Engine) trackZone(item DraggableItem) {
	zoneID, evaluated := e.hitTestThrottled()
	if !evaluated || zoneID == e.session.LastHitZoneID {
		return
	}
	prev := e.session.LastHitZoneID
	e.session.LastHitZoneID = zoneID
	if prev != "" {
		e.zoneLeave(item, prev)
	}
	if zoneID != "" {
		z, _ := e.hits.Zone(zoneID)
		fireDrag(e.handlers.zoneEnter, e.dragContext(item, z, false))
		e.emit(GestureZoneEnter, item, zoneID, false)
	}
}

func (e *Engine) zoneLeave(item DraggableItem, zoneID string) {
	z, _ := e.hits.Zone(zoneID)
	fireDrag(e.handlers.zoneLeave, e.dragContext(item, z, false))
	e.emit(GestureZoneLeave, item, zoneID, false)
}

func (e *Engine) release(ev Event) {
	switch e.session.Phase {
	case PhasePressed:
		item := e.activeItem()
		e.session.Current = ev.Position
		e.emit(GestureTap, item, "", false)
		e.debugTransition(PhasePressed, PhaseIdle, item.ID)
		e.reset()
	case PhaseDragging:
		e.session.Current = ev.Position
		zone, ok := e.hitTestFinal(ev.Position)
		e.finish(zone, ok)
	}
}

func (e *Engine) cancel() {
	switch e.session.Phase {
	case PhasePressed:
		e.debugTransition(PhasePressed, PhaseIdle, e.session.ActiveItemID)
		e.reset()
	case PhaseDragging:
		e.debugf("drag of %q cancelled by platform", e.session.ActiveItemID)
		e.finish(DropZone{}, false)
	}
}

// finish moves a dragging session through Released back to Idle, firing
// OnDrop (when dropped) and then OnDragEnd.
func (e *Engine) finish(zone DropZone, dropped bool) {
	item := e.activeItem()
	e.session.Phase = PhaseReleased
	e.debugTransition(PhaseDragging, PhaseReleased, item.ID)

	if prev := e.session.LastHitZoneID; prev != "" {
		e.session.LastHitZoneID = ""
		e.zoneLeave(item, prev)
	}
	if dropped {
		fireDrag(e.handlers.drop, e.dragContext(item, zone, false))
		e.emit(GestureDrop, item, zone.ID, false)
	}
	fireDrag(e.handlers.dragEnd, e.dragContext(item, zone, dropped))
	e.emit(GestureDragEnd, item, zone.ID, dropped)

	e.debugTransition(PhaseReleased, PhaseIdle, item.ID)
	e.reset()
}

func (e *Engine) reset() {
	e.session = GestureSession{}
}

func (e *Engine) activeItem() DraggableItem {
	item, _ := e.Item(e.session.ActiveItemID)
	return item
}

func (e *Engine) dragContext(item DraggableItem, zone DropZone, dropped bool) DragContext {
	return DragContext{
		Item:      item,
		Zone:      zone,
		Position:  e.session.Current,
		Origin:    e.session.Origin,
		Input:     e.session.Input,
		PointerID: e.session.PointerID,
		Dropped:   dropped,
	}
}

func (e *Engine) emit(t GestureType, item DraggableItem, zoneID string, dropped bool) {
	if len(e.observers) == 0 {
		return
	}
	ev := GestureEvent{
		Type:     t,
		Item:     item,
		ZoneID:   zoneID,
		Position: e.session.Current,
		Origin:   e.session.Origin,
		Input:    e.session.Input,
		Dropped:  dropped,
	}
	for _, o := range e.observers {
		o.Observe(ev)
	}
}
