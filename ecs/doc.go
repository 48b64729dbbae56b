// Package ecs provides ECS adapters for dropzone's gesture events.
//
// The primary adapter is [NewDonburiObserver], which bridges gesture
// transitions (press, drag start, zone enter/leave, drop, drag end) into a
// [Donburi] world as typed events. Subscribe to [GestureEventType] in your
// ECS systems to receive them.
//
// Usage:
//
//	engine.AddObserver(ecs.NewDonburiObserver(world))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
