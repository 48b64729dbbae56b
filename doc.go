// Package dropzone is a drag-and-drop gesture engine for touch and pointer
// input, with an optional [Ebitengine] presentation layer.
//
// The engine turns raw platform input into a single gesture session that
// moves through four phases: idle, pressed, dragging and released. A press
// becomes a drag only after the contact travels further than the drag
// threshold; shorter gestures are taps and fire no drag callbacks.
//
// # Quick start
//
// Register the items and zones, tell the engine where zones are on screen,
// and subscribe to the callbacks:
//
//	engine := dropzone.NewEngine(dropzone.Config{})
//	engine.RegisterDraggable(dropzone.DraggableItem{ID: "mango", Label: "Mango"})
//	engine.RegisterDropZone(dropzone.DropZone{ID: "garden", Label: "Garden"})
//	engine.SetZoneBounds(layout.ZoneRect)
//
//	engine.OnDrop(func(ctx dropzone.DragContext) {
//		fmt.Printf("%s dropped on %s\n", ctx.Item.Label, ctx.Zone.Label)
//	})
//
// Bounds are fetched through a [BoundsFunc] at hit-test time, so layout may
// change mid-drag (scrolling, resizing) without re-registering anything.
//
// # Input
//
// Platform signals enter as [RawInput] through [Engine.Feed] or an attached
// [InputSource]; [EbitenInput] reads Ebitengine's mouse and touch state.
// While a session is active only the contact that started it is listened
// to: a second finger, or the synthetic mouse events some platforms emit
// for touches, are dropped. Normalized [Event] values may also be passed
// straight to [Engine.Dispatch].
//
// # Callbacks and ordering
//
// [Engine.OnDragStart] fires once per gesture when the threshold is
// exceeded. On release over an unoccupied zone, [Engine.OnDrop] fires and
// is always followed by [Engine.OnDragEnd]. A release elsewhere, or a
// platform cancel, fires only OnDragEnd. Zone hover changes are reported
// through [Engine.OnZoneEnter] and [Engine.OnZoneLeave].
//
// Hit tests during a drag are throttled to one per [Config.HitTestInterval]
// (100ms by default). The release hit test always runs at the release
// position, so a drop is never decided on stale data.
//
// Every event runs to completion. A callback may call [Engine.Dispatch], for
// example to cancel the drag from OnDragStart; the event is queued and runs
// once the current transition has emitted all of its callbacks.
//
// # Feedback
//
// Observers added with [Engine.AddObserver] see every phase transition as a
// [GestureEvent]. [FeedbackCoordinator] maps them to haptic [Pattern] values
// and [RenderCommand] values; [PreviewRenderer] keeps a floating copy of the
// item under a touch contact. [Overlay] applies the commands and draws zone
// highlights with Ebitengine, and [EbitenHaptics] drives ebiten.Vibrate.
//
// # Testing and replay
//
// [Engine.InjectDrag], [Engine.InjectTap] and friends queue synthetic input
// consumed one event per [Engine.Update]. [LoadTestScript] and
// [LoadScenario] read JSON scripts; the dzreplay command replays a scenario
// headless and prints the callback trace.
//
// # ECS integration
//
// The dropzone/ecs submodule publishes gesture events into a [Donburi]
// world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package dropzone
