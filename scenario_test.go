package dropzone

import (
	"os"
	"strings"
	"testing"
)

func loadScenarioFile(t *testing.T, name string) *Scenario {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	if err != nil {
		t.Fatal(err)
	}
	sc, err := LoadScenario(data)
	if err != nil {
		t.Fatal(err)
	}
	return sc
}

func traceStrings(trace []TraceEntry) string {
	out := make([]string, len(trace))
	for i, e := range trace {
		out[i] = e.String()
	}
	return strings.Join(out, " ")
}

func TestScenarioReplayDrop(t *testing.T) {
	sc := loadScenarioFile(t, "scenario_drop.json")
	trace, err := sc.Replay()
	if err != nil {
		t.Fatal(err)
	}
	want := "onDragStart(mango) onZoneEnter(mango, garden) onZoneLeave(mango, garden) onDrop(mango, garden) onDragEnd()"
	if got := traceStrings(trace); got != want {
		t.Errorf("trace:\n got %s\nwant %s", got, want)
	}
	if trace[0].Frame >= trace[len(trace)-1].Frame {
		t.Errorf("frames not increasing: %d .. %d", trace[0].Frame, trace[len(trace)-1].Frame)
	}
}

func TestScenarioReplayTouchCancel(t *testing.T) {
	sc := loadScenarioFile(t, "scenario_cancel.json")
	trace, err := sc.Replay()
	if err != nil {
		t.Fatal(err)
	}
	want := "onDragStart(mango) onZoneEnter(mango, garden) onZoneLeave(mango, garden) onDragEnd()"
	if got := traceStrings(trace); got != want {
		t.Errorf("trace:\n got %s\nwant %s", got, want)
	}
}

func TestScenarioReplayWithSetup(t *testing.T) {
	sc := loadScenarioFile(t, "scenario_drop.json")
	var drops int
	_, err := sc.ReplayWith(func(e *Engine) {
		e.AddObserver(ObserverFunc(func(ev GestureEvent) {
			if ev.Type == GestureDrop {
				drops++
			}
		}))
	})
	if err != nil {
		t.Fatal(err)
	}
	if drops != 1 {
		t.Errorf("drops = %d, want 1", drops)
	}
}

func TestScenarioItemBounds(t *testing.T) {
	sc, err := LoadScenario([]byte(`{
		"items": [{"id": "mango", "bounds": {"x": 0, "y": 0, "width": 20, "height": 20}}],
		"zones": [{"id": "garden", "bounds": {"x": 100, "y": 0, "width": 100, "height": 100}}],
		"steps": [{"action": "drag", "fromX": 10, "fromY": 10, "toX": 150, "toY": 50, "frames": 6}]
	}`))
	if err != nil {
		t.Fatal(err)
	}
	trace, err := sc.Replay()
	if err != nil {
		t.Fatal(err)
	}
	if got := trace[len(trace)-2].String(); got != "onDrop(mango, garden)" {
		t.Errorf("trace = %s", traceStrings(trace))
	}
}

func TestScenarioOccupiedZone(t *testing.T) {
	sc, err := LoadScenario([]byte(`{
		"items": [{"id": "mango"}],
		"zones": [{"id": "garden", "occupied": true, "bounds": {"x": 0, "y": 0, "width": 100, "height": 100}}],
		"steps": [
			{"action": "press", "item": "mango", "x": 10, "y": 10},
			{"action": "move", "x": 50, "y": 50},
			{"action": "release", "x": 60, "y": 60}
		]
	}`))
	if err != nil {
		t.Fatal(err)
	}
	trace, err := sc.Replay()
	if err != nil {
		t.Fatal(err)
	}
	if got := traceStrings(trace); got != "onDragStart(mango) onDragEnd()" {
		t.Errorf("trace = %s", got)
	}
}

func TestScenarioThresholdOverride(t *testing.T) {
	sc, err := LoadScenario([]byte(`{
		"threshold": 100,
		"items": [{"id": "mango"}],
		"zones": [{"id": "garden", "bounds": {"x": 0, "y": 0, "width": 100, "height": 100}}],
		"steps": [
			{"action": "press", "item": "mango", "x": 10, "y": 10},
			{"action": "move", "x": 50, "y": 50},
			{"action": "release", "x": 60, "y": 60}
		]
	}`))
	if err != nil {
		t.Fatal(err)
	}
	trace, err := sc.Replay()
	if err != nil {
		t.Fatal(err)
	}
	if len(trace) != 0 {
		t.Errorf("tap produced callbacks: %s", traceStrings(trace))
	}
}

func TestLoadScenarioErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad json", `{`},
		{"no items", `{"items": [], "steps": [{"action": "wait"}]}`},
		{"no steps", `{"items": [{"id": "a"}], "steps": []}`},
		{"bad action", `{"items": [{"id": "a"}], "steps": [{"action": "fly"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadScenario([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestScenarioDuplicateIDs(t *testing.T) {
	sc, err := LoadScenario([]byte(`{
		"items": [{"id": "a"}, {"id": "a"}],
		"steps": [{"action": "wait"}]
	}`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := sc.Replay(); err == nil {
		t.Error("expected duplicate id error")
	}
}
