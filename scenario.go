package dropzone

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	defaultFrameDuration = time.Second / 60
	maxReplayFrames      = 100000
)

type scenarioItem struct {
	ID     string `json:"id"`
	Label  string `json:"label,omitempty"`
	Bounds *Rect  `json:"bounds,omitempty"`
}

type scenarioZone struct {
	ID       string `json:"id"`
	Label    string `json:"label,omitempty"`
	Occupied bool   `json:"occupied,omitempty"`
	Bounds   Rect   `json:"bounds"`
}

// Scenario is a self-contained gesture replay: items, zones with fixed
// bounds, engine tuning, and a test script. It runs headless against a
// frame-stepped clock.
type Scenario struct {
	Threshold         float64        `json:"threshold,omitempty"`
	HitTestIntervalMS int            `json:"hitTestIntervalMs,omitempty"`
	FrameMS           float64        `json:"frameMs,omitempty"`
	Items             []scenarioItem `json:"items"`
	Zones             []scenarioZone `json:"zones"`
	Steps             []testStep     `json:"steps"`
}

// TraceEntry is one collaborator callback observed during a replay.
type TraceEntry struct {
	Frame    int    `json:"frame"`
	Callback string `json:"callback"`
	ItemID   string `json:"item"`
	ZoneID   string `json:"zone,omitempty"`
	Position Vec2   `json:"position"`
}

func (t TraceEntry) String() string {
	if t.ZoneID != "" {
		return fmt.Sprintf("%s(%s, %s)", t.Callback, t.ItemID, t.ZoneID)
	}
	if t.Callback == "onDragEnd" {
		return "onDragEnd()"
	}
	return fmt.Sprintf("%s(%s)", t.Callback, t.ItemID)
}

// LoadScenario parses and validates a JSON scenario.
func LoadScenario(jsonData []byte) (*Scenario, error) {
	var sc Scenario
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if len(sc.Items) == 0 {
		return nil, fmt.Errorf("parse scenario: no items")
	}
	if _, err := newTestRunner(sc.Steps); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	return &sc, nil
}

func (sc *Scenario) frameDuration() time.Duration {
	if sc.FrameMS > 0 {
		return time.Duration(sc.FrameMS * float64(time.Millisecond))
	}
	return defaultFrameDuration
}

// Build creates an engine with the scenario's items, zones and bounds, and
// the test runner attached. The returned clock advances one frame per call
// to its tick function.
func (sc *Scenario) Build() (*Engine, func(), error) {
	start := time.Unix(0, 0)
	now := start
	frame := sc.frameDuration()

	e := NewEngine(Config{
		Threshold:       sc.Threshold,
		HitTestInterval: time.Duration(sc.HitTestIntervalMS) * time.Millisecond,
		Now:             func() time.Time { return now },
	})

	itemRects := make(map[string]Rect)
	for _, it := range sc.Items {
		if err := e.RegisterDraggable(DraggableItem{ID: it.ID, Label: it.Label}); err != nil {
			return nil, nil, err
		}
		if it.Bounds != nil {
			itemRects[it.ID] = *it.Bounds
		}
	}
	zoneRects := make(map[string]Rect)
	for _, z := range sc.Zones {
		if err := e.RegisterDropZone(DropZone{ID: z.ID, Label: z.Label, Occupied: z.Occupied}); err != nil {
			return nil, nil, err
		}
		zoneRects[z.ID] = z.Bounds
	}
	e.SetItemBounds(mapBounds(itemRects))
	e.SetZoneBounds(mapBounds(zoneRects))

	runner, err := newTestRunner(sc.Steps)
	if err != nil {
		return nil, nil, err
	}
	e.SetTestRunner(runner)

	tick := func() { now = now.Add(frame) }
	return e, tick, nil
}

// Replay runs the scenario to completion and returns the callback trace.
func (sc *Scenario) Replay() ([]TraceEntry, error) {
	return sc.ReplayWith(nil)
}

// ReplayWith is Replay with a hook to adjust the engine (debug output,
// extra observers) before the first frame.
func (sc *Scenario) ReplayWith(setup func(*Engine)) ([]TraceEntry, error) {
	e, tick, err := sc.Build()
	if err != nil {
		return nil, err
	}
	if setup != nil {
		setup(e)
	}

	var trace []TraceEntry
	frame := 0
	record := func(name string) func(DragContext) {
		return func(ctx DragContext) {
			trace = append(trace, TraceEntry{
				Frame:    frame,
				Callback: name,
				ItemID:   ctx.Item.ID,
				ZoneID:   ctx.Zone.ID,
				Position: ctx.Position,
			})
		}
	}
	e.OnDragStart(record("onDragStart"))
	e.OnZoneEnter(record("onZoneEnter"))
	e.OnZoneLeave(record("onZoneLeave"))
	e.OnDrop(record("onDrop"))
	e.OnDragEnd(func(ctx DragContext) {
		trace = append(trace, TraceEntry{Frame: frame, Callback: "onDragEnd", ItemID: ctx.Item.ID, Position: ctx.Position})
	})

	for ; !e.testRunner.Done() || len(e.injectQueue) > 0; frame++ {
		if frame >= maxReplayFrames {
			return trace, fmt.Errorf("replay scenario: exceeded %d frames", maxReplayFrames)
		}
		e.Update()
		tick()
	}
	return trace, nil
}

func mapBounds(m map[string]Rect) BoundsFunc {
	return func(id string) (Rect, bool) {
		r, ok := m[id]
		return r, ok
	}
}
