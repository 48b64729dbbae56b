// Package ecs provides ECS adapters for dropzone.
package ecs

import (
	"github.com/phanxgames/dropzone"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType is the Donburi event type for dropzone gesture events.
var GestureEventType = events.NewEventType[dropzone.GestureEvent]()

type donburiObserver struct {
	world donburi.World
	skip  map[dropzone.GestureType]bool
}

// NewDonburiObserver creates an Observer that publishes gesture events to
// GestureEventType in world. Events are queued; consume them with
// events.Subscribe and ProcessEvents. Types listed in skip are not
// published (drag moves are high-frequency and often unwanted).
func NewDonburiObserver(world donburi.World, skip ...dropzone.GestureType) dropzone.Observer {
	o := &donburiObserver{world: world}
	if len(skip) > 0 {
		o.skip = make(map[dropzone.GestureType]bool, len(skip))
		for _, t := range skip {
			o.skip[t] = true
		}
	}
	return o
}

func (o *donburiObserver) Observe(event dropzone.GestureEvent) {
	if o.skip[event.Type] {
		return
	}
	GestureEventType.Publish(o.world, event)
}
