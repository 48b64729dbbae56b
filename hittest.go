package dropzone

import "time"

const defaultHitTestInterval = 100 * time.Millisecond

// HitTester resolves a screen position to the drop zone under it. Zones are
// kept in registration order; bounds are fetched from the presentation layer
// on every query because layout can shift mid-drag (scrolling, resizing).
type HitTester struct {
	zones  []DropZone
	index  map[string]int
	bounds BoundsFunc
}

// NewHitTester creates an empty hit tester using bounds for live lookups.
// A nil bounds function makes every query miss.
func NewHitTester(bounds BoundsFunc) *HitTester {
	return &HitTester{index: make(map[string]int), bounds: bounds}
}

// SetBounds replaces the bounds lookup.
func (h *HitTester) SetBounds(bounds BoundsFunc) {
	h.bounds = bounds
}

// Len returns the number of registered zones.
func (h *HitTester) Len() int {
	return len(h.zones)
}

// Zone returns the registered zone with the given ID.
func (h *HitTester) Zone(id string) (DropZone, bool) {
	i, ok := h.index[id]
	if !ok {
		return DropZone{}, false
	}
	return h.zones[i], true
}

func (h *HitTester) add(z DropZone) error {
	if z.ID == "" {
		return configErr("register drop zone", "", ErrMissingID)
	}
	if _, dup := h.index[z.ID]; dup {
		return configErr("register drop zone", z.ID, ErrDuplicateID)
	}
	h.index[z.ID] = len(h.zones)
	h.zones = append(h.zones, z)
	return nil
}

func (h *HitTester) remove(id string) error {
	i, ok := h.index[id]
	if !ok {
		return configErr("unregister drop zone", id, ErrUnknownZone)
	}
	copy(h.zones[i:], h.zones[i+1:])
	h.zones[len(h.zones)-1] = DropZone{}
	h.zones = h.zones[:len(h.zones)-1]
	delete(h.index, id)
	// Registration order is preserved; reindex the tail.
	for j := i; j < len(h.zones); j++ {
		h.index[h.zones[j].ID] = j
	}
	return nil
}

func (h *HitTester) setOccupied(id string, occupied bool) error {
	i, ok := h.index[id]
	if !ok {
		return configErr("set zone occupied", id, ErrUnknownZone)
	}
	h.zones[i].Occupied = occupied
	return nil
}

// Query returns the first-registered zone whose current bounds contain p.
// Overlapping zones resolve to the lowest registration index. Occupancy is
// not considered.
func (h *HitTester) Query(p Vec2) (DropZone, bool) {
	return h.first(p, false)
}

// target is Query restricted to drop candidates: occupied zones are passed
// over in favour of the next zone under p.
func (h *HitTester) target(p Vec2) (DropZone, bool) {
	return h.first(p, true)
}

func (h *HitTester) first(p Vec2, skipOccupied bool) (DropZone, bool) {
	if h.bounds == nil {
		return DropZone{}, false
	}
	for _, z := range h.zones {
		if skipOccupied && z.Occupied {
			continue
		}
		r, ok := h.bounds(z.ID)
		if !ok {
			continue
		}
		if r.ContainsPoint(p) {
			return z, true
		}
	}
	return DropZone{}, false
}

// --- Engine-side throttling ---

// hitTestThrottled evaluates the hit tester at the session's current position
// unless the previous evaluation happened less than HitTestInterval ago.
// It reports whether an evaluation took place.
func (e *Engine) hitTestThrottled() (zoneID string, evaluated bool) {
	now := e.cfg.Now()
	s := &e.session
	if !s.LastHitTestAt.IsZero() && now.Sub(s.LastHitTestAt) < e.cfg.HitTestInterval {
		e.debugf("hit test throttled at (%.1f, %.1f)", s.Current.X, s.Current.Y)
		return s.LastHitZoneID, false
	}
	s.LastHitTestAt = now
	z, ok := e.hits.target(s.Current)
	if !ok {
		return "", true
	}
	return z.ID, true
}

// hitTestFinal evaluates the hit tester at p ignoring the throttle window.
func (e *Engine) hitTestFinal(p Vec2) (DropZone, bool) {
	e.session.LastHitTestAt = e.cfg.Now()
	return e.hits.target(p)
}
