package dropzone

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenInput is an InputSource reading Ebitengine mouse and touch state.
// The left mouse button is pointer 0; touches use their ebiten.TouchID.
// Losing window focus while a contact is down interrupts it.
type EbitenInput struct {
	// ScreenToWorld, if set, maps screen coordinates to the coordinate
	// space the bounds lookups use.
	ScreenToWorld func(x, y float64) Vec2

	mouseDown bool
	mouseLast Vec2

	touchLast   map[ebiten.TouchID]Vec2
	touchIDs    []ebiten.TouchID
	pressedIDs  []ebiten.TouchID
	releasedIDs []ebiten.TouchID

	interrupted bool

	dev inputDevice
}

// NewEbitenInput creates an input source with identity coordinates.
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{touchLast: make(map[ebiten.TouchID]Vec2), dev: ebitenDevice{}}
}

// inputDevice is the slice of Ebitengine's input API that EbitenInput reads.
type inputDevice interface {
	Focused() bool
	Cursor() (int, int)
	LeftJustPressed() bool
	LeftJustReleased() bool
	LeftPressed() bool
	AppendJustPressedTouchIDs([]ebiten.TouchID) []ebiten.TouchID
	AppendTouchIDs([]ebiten.TouchID) []ebiten.TouchID
	AppendJustReleasedTouchIDs([]ebiten.TouchID) []ebiten.TouchID
	TouchPosition(ebiten.TouchID) (int, int)
	PreviousTouchPosition(ebiten.TouchID) (int, int)
}

type ebitenDevice struct{}

func (ebitenDevice) Focused() bool      { return ebiten.IsFocused() }
func (ebitenDevice) Cursor() (int, int) { return ebiten.CursorPosition() }

func (ebitenDevice) LeftJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (ebitenDevice) LeftJustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

func (ebitenDevice) LeftPressed() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (ebitenDevice) AppendJustPressedTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	return inpututil.AppendJustPressedTouchIDs(ids)
}

func (ebitenDevice) AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	return ebiten.AppendTouchIDs(ids)
}

func (ebitenDevice) AppendJustReleasedTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	return inpututil.AppendJustReleasedTouchIDs(ids)
}

func (ebitenDevice) TouchPosition(id ebiten.TouchID) (int, int) {
	return ebiten.TouchPosition(id)
}

func (ebitenDevice) PreviousTouchPosition(id ebiten.TouchID) (int, int) {
	return inpututil.TouchPositionInPreviousTick(id)
}

func (in *EbitenInput) toWorld(x, y int) Vec2 {
	if in.ScreenToWorld != nil {
		return in.ScreenToWorld(float64(x), float64(y))
	}
	return Vec2{float64(x), float64(y)}
}

// AppendInputs implements InputSource. Call it once per tick from
// ebiten.Game.Update (Engine.Update does this).
func (in *EbitenInput) AppendInputs(buf []RawInput) []RawInput {
	if !in.dev.Focused() {
		return in.appendInterrupts(buf)
	}
	in.interrupted = false

	buf = in.appendMouse(buf)
	buf = in.appendTouches(buf)
	return buf
}

func (in *EbitenInput) appendMouse(buf []RawInput) []RawInput {
	pos := in.toWorld(in.dev.Cursor())

	switch {
	case in.dev.LeftJustPressed():
		in.mouseDown = true
		in.mouseLast = pos
		buf = append(buf, RawInput{Source: InputPointer, Action: RawDown, Position: pos})
	case in.dev.LeftJustReleased():
		if in.mouseDown {
			buf = append(buf, RawInput{Source: InputPointer, Action: RawUp, Position: pos})
		}
		in.mouseDown = false
		in.mouseLast = pos
	case in.mouseDown && in.dev.LeftPressed():
		if pos != in.mouseLast {
			in.mouseLast = pos
			buf = append(buf, RawInput{Source: InputPointer, Action: RawMove, Position: pos})
		}
	}
	return buf
}

func (in *EbitenInput) appendTouches(buf []RawInput) []RawInput {
	in.pressedIDs = in.dev.AppendJustPressedTouchIDs(in.pressedIDs[:0])
	for _, id := range in.pressedIDs {
		pos := in.toWorld(in.dev.TouchPosition(id))
		in.touchLast[id] = pos
		buf = append(buf, RawInput{Source: InputTouch, Action: RawDown, Position: pos, PointerID: int(id)})
	}

	in.touchIDs = in.dev.AppendTouchIDs(in.touchIDs[:0])
	for _, id := range in.touchIDs {
		last, tracked := in.touchLast[id]
		if !tracked {
			continue
		}
		pos := in.toWorld(in.dev.TouchPosition(id))
		if pos != last {
			in.touchLast[id] = pos
			buf = append(buf, RawInput{Source: InputTouch, Action: RawMove, Position: pos, PointerID: int(id)})
		}
	}

	in.releasedIDs = in.dev.AppendJustReleasedTouchIDs(in.releasedIDs[:0])
	for _, id := range in.releasedIDs {
		if _, tracked := in.touchLast[id]; !tracked {
			continue
		}
		pos := in.toWorld(in.dev.PreviousTouchPosition(id))
		delete(in.touchLast, id)
		buf = append(buf, RawInput{Source: InputTouch, Action: RawUp, Position: pos, PointerID: int(id)})
	}
	return buf
}

// appendInterrupts reports every contact still down as interrupted, once.
func (in *EbitenInput) appendInterrupts(buf []RawInput) []RawInput {
	if in.interrupted {
		return buf
	}
	in.interrupted = true
	if in.mouseDown {
		in.mouseDown = false
		buf = append(buf, RawInput{Source: InputPointer, Action: RawInterrupt, Position: in.mouseLast})
	}
	for id, pos := range in.touchLast {
		buf = append(buf, RawInput{Source: InputTouch, Action: RawInterrupt, Position: pos, PointerID: int(id)})
		delete(in.touchLast, id)
	}
	return buf
}
