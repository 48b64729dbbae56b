package ecs

import (
	"testing"

	"github.com/phanxgames/dropzone"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiObserver(t *testing.T) {
	world := donburi.NewWorld()
	if NewDonburiObserver(world) == nil {
		t.Fatal("NewDonburiObserver returned nil")
	}
}

func TestDonburiObserver_Observe(t *testing.T) {
	world := donburi.NewWorld()
	obs := NewDonburiObserver(world)

	var received []dropzone.GestureEvent
	GestureEventType.Subscribe(world, func(w donburi.World, e dropzone.GestureEvent) {
		received = append(received, e)
	})

	obs.Observe(dropzone.GestureEvent{
		Type:     dropzone.GestureDragStart,
		Item:     dropzone.DraggableItem{ID: "mango"},
		Position: dropzone.Vec2{X: 50, Y: 50},
		Input:    dropzone.InputTouch,
	})
	obs.Observe(dropzone.GestureEvent{
		Type:   dropzone.GestureDrop,
		Item:   dropzone.DraggableItem{ID: "mango"},
		ZoneID: "garden",
	})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("expected no events before processing, got %d", len(received))
	}
	GestureEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Type != dropzone.GestureDragStart || received[0].Item.ID != "mango" {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[0].Input != dropzone.InputTouch || received[0].Position.X != 50 {
		t.Errorf("event 0 input/position: %+v", received[0])
	}
	if received[1].Type != dropzone.GestureDrop || received[1].ZoneID != "garden" {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiObserver_Skip(t *testing.T) {
	world := donburi.NewWorld()
	obs := NewDonburiObserver(world, dropzone.GestureDragMove)

	var types []dropzone.GestureType
	GestureEventType.Subscribe(world, func(w donburi.World, e dropzone.GestureEvent) {
		types = append(types, e.Type)
	})

	obs.Observe(dropzone.GestureEvent{Type: dropzone.GestureDragMove})
	obs.Observe(dropzone.GestureEvent{Type: dropzone.GestureDragEnd})
	events.ProcessAllEvents(world)

	if len(types) != 1 || types[0] != dropzone.GestureDragEnd {
		t.Errorf("expected only drag-end, got %v", types)
	}
}

func TestDonburiObserver_EngineWiring(t *testing.T) {
	world := donburi.NewWorld()
	e := dropzone.NewEngine(dropzone.Config{})
	if err := e.RegisterDraggable(dropzone.DraggableItem{ID: "mango"}); err != nil {
		t.Fatal(err)
	}
	if err := e.RegisterDropZone(dropzone.DropZone{ID: "garden"}); err != nil {
		t.Fatal(err)
	}
	e.SetZoneBounds(func(id string) (dropzone.Rect, bool) {
		return dropzone.Rect{Width: 100, Height: 100}, id == "garden"
	})
	e.AddObserver(NewDonburiObserver(world, dropzone.GestureDragMove))

	var types []dropzone.GestureType
	GestureEventType.Subscribe(world, func(w donburi.World, ev dropzone.GestureEvent) {
		types = append(types, ev.Type)
	})

	_ = e.Dispatch(dropzone.Event{Kind: dropzone.EventPress, ItemID: "mango", Position: dropzone.Vec2{X: 10, Y: 10}})
	_ = e.Dispatch(dropzone.Event{Kind: dropzone.EventMove, Position: dropzone.Vec2{X: 50, Y: 50}})
	_ = e.Dispatch(dropzone.Event{Kind: dropzone.EventRelease, Position: dropzone.Vec2{X: 60, Y: 60}})
	GestureEventType.ProcessEvents(world)

	want := []dropzone.GestureType{
		dropzone.GesturePress,
		dropzone.GestureDragStart,
		dropzone.GestureZoneEnter,
		dropzone.GestureZoneLeave,
		dropzone.GestureDrop,
		dropzone.GestureDragEnd,
	}
	if len(types) != len(want) {
		t.Fatalf("got %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, types[i], want[i])
		}
	}
}
