package dropzone

// InjectInput queues a raw input signal. Queued signals are consumed one per
// Update call, before (and instead of) the attached input source.
func (e *Engine) InjectInput(raw RawInput) {
	e.injectQueue = append(e.injectQueue, raw)
}

// InjectPress queues a pointer press at (x, y). The item under the point is
// resolved through the item bounds lookup.
func (e *Engine) InjectPress(x, y float64) {
	e.InjectInput(RawInput{Source: InputPointer, Action: RawDown, Position: Vec2{x, y}})
}

// InjectPressItem queues a pointer press on a named item at (x, y).
func (e *Engine) InjectPressItem(itemID string, x, y float64) {
	e.InjectInput(RawInput{Source: InputPointer, Action: RawDown, Position: Vec2{x, y}, ItemID: itemID})
}

// InjectMove queues a pointer move with the button held down.
func (e *Engine) InjectMove(x, y float64) {
	e.InjectInput(RawInput{Source: InputPointer, Action: RawMove, Position: Vec2{x, y}})
}

// InjectRelease queues a pointer release at (x, y).
func (e *Engine) InjectRelease(x, y float64) {
	e.InjectInput(RawInput{Source: InputPointer, Action: RawUp, Position: Vec2{x, y}})
}

// InjectCancel queues a platform interrupt for the pointer.
func (e *Engine) InjectCancel() {
	e.InjectInput(RawInput{Source: InputPointer, Action: RawInterrupt})
}

// InjectTap is a convenience that queues a press followed by a release at
// the same point. Consumes two frames.
func (e *Engine) InjectTap(x, y float64) {
	e.InjectPress(x, y)
	e.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). Minimum frames is 2 (press + release).
func (e *Engine) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	e.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		e.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	e.InjectRelease(toX, toY)
}

// processInjectedInput pops one queued signal and feeds it through the
// normalizer. Returns true if a signal was consumed.
func (e *Engine) processInjectedInput() bool {
	if len(e.injectQueue) == 0 {
		return false
	}
	raw := e.injectQueue[0]
	copy(e.injectQueue, e.injectQueue[1:])
	e.injectQueue = e.injectQueue[:len(e.injectQueue)-1]

	if err := e.Feed(raw); err != nil {
		e.debugf("injected input rejected: %v", err)
	}
	return true
}
