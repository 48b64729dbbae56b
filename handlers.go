package dropzone

// DragContext carries gesture data to collaborator callbacks.
type DragContext struct {
	Item      DraggableItem
	Zone      DropZone // valid for OnDrop, OnZoneEnter and OnZoneLeave
	Position  Vec2
	Origin    Vec2
	Input     InputKind
	PointerID int
	Dropped   bool // valid for OnDragEnd
}

// --- Handler registry ---

type dragHandler struct {
	id uint32
	fn func(DragContext)
}

type handlerRegistry struct {
	dragStart []dragHandler
	drop      []dragHandler
	dragEnd   []dragHandler
	zoneEnter []dragHandler
	zoneLeave []dragHandler
	nextID    uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event GestureType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case GestureDragStart:
		h.reg.dragStart = removeDragHandler(h.reg.dragStart, h.id)
	case GestureDrop:
		h.reg.drop = removeDragHandler(h.reg.drop, h.id)
	case GestureDragEnd:
		h.reg.dragEnd = removeDragHandler(h.reg.dragEnd, h.id)
	case GestureZoneEnter:
		h.reg.zoneEnter = removeDragHandler(h.reg.zoneEnter, h.id)
	case GestureZoneLeave:
		h.reg.zoneLeave = removeDragHandler(h.reg.zoneLeave, h.id)
	}
}

func removeDragHandler(s []dragHandler, id uint32) []dragHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = dragHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func (r *handlerRegistry) add(list *[]dragHandler, event GestureType, fn func(DragContext)) CallbackHandle {
	r.nextID++
	id := r.nextID
	*list = append(*list, dragHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: r, event: event}
}

// OnDragStart registers a callback fired once per gesture when movement
// first exceeds the drag threshold.
func (e *Engine) OnDragStart(fn func(DragContext)) CallbackHandle {
	return e.handlers.add(&e.handlers.dragStart, GestureDragStart, fn)
}

// OnDrop registers a callback fired when a drag is released over a zone.
// It always precedes OnDragEnd for the same gesture.
func (e *Engine) OnDrop(fn func(DragContext)) CallbackHandle {
	return e.handlers.add(&e.handlers.drop, GestureDrop, fn)
}

// OnDragEnd registers a callback fired for every gesture that reached the
// dragging phase, whether or not it was dropped. Taps never fire it.
func (e *Engine) OnDragEnd(fn func(DragContext)) CallbackHandle {
	return e.handlers.add(&e.handlers.dragEnd, GestureDragEnd, fn)
}

// OnZoneEnter registers a callback fired when the hovered zone changes to a
// new zone during a drag.
func (e *Engine) OnZoneEnter(fn func(DragContext)) CallbackHandle {
	return e.handlers.add(&e.handlers.zoneEnter, GestureZoneEnter, fn)
}

// OnZoneLeave registers a callback fired when the previously hovered zone is
// no longer under the contact during a drag.
func (e *Engine) OnZoneLeave(fn func(DragContext)) CallbackHandle {
	return e.handlers.add(&e.handlers.zoneLeave, GestureZoneLeave, fn)
}

func fireDrag(list []dragHandler, ctx DragContext) {
	for _, h := range list {
		h.fn(ctx)
	}
}
