package dropzone

import (
	"time"

	"github.com/tanema/gween/ease"
)

// Preview exit defaults.
const (
	DefaultPreviewExitDuration = 150 * time.Millisecond
	DefaultPreviewExitScale    = 0.6
)

// PreviewRenderer keeps a floating copy of the dragged item under a touch
// contact. Moves are coalesced so at most one reposition is emitted per Frame
// call. Pointer drags get no preview; the platform's own drag image is used.
type PreviewRenderer struct {
	renderer Renderer

	ExitDuration time.Duration
	ExitScale    float64

	active  bool
	itemID  string
	pos     Vec2
	pending bool

	exiting bool
	opacity float64
	scale   float64
	exit    *tweenGroup
}

// NewPreviewRenderer creates a preview renderer emitting commands to r.
func NewPreviewRenderer(r Renderer) *PreviewRenderer {
	if r == nil {
		r = nopRenderer{}
	}
	return &PreviewRenderer{
		renderer:     r,
		ExitDuration: DefaultPreviewExitDuration,
		ExitScale:    DefaultPreviewExitScale,
	}
}

// Active reports whether a preview exists (tracking or exiting).
func (p *PreviewRenderer) Active() bool {
	return p.active
}

// Observe implements Observer.
func (p *PreviewRenderer) Observe(ev GestureEvent) {
	switch ev.Type {
	case GestureDragStart:
		if ev.Input != InputTouch {
			return
		}
		if p.active {
			// A new drag started before the previous exit finished.
			p.remove()
		}
		p.active = true
		p.itemID = ev.Item.ID
		p.pos = ev.Position
		p.pending = false
		p.renderer.Apply(RenderCommand{
			Type:     CommandPreviewShow,
			ItemID:   p.itemID,
			Position: p.pos,
			Opacity:  1,
			Scale:    1,
		})

	case GestureDragMove:
		if !p.active || p.exiting || ev.Item.ID != p.itemID {
			return
		}
		p.pos = ev.Position
		p.pending = true

	case GestureDragEnd:
		if !p.active || p.exiting || ev.Item.ID != p.itemID {
			return
		}
		p.flush()
		p.exiting = true
		p.opacity, p.scale = 1, 1
		p.exit = newTweenGroup(float32(p.ExitDuration.Seconds()), ease.OutQuad,
			tweenTarget{field: &p.opacity, to: 0},
			tweenTarget{field: &p.scale, to: p.ExitScale},
		)
	}
}

// Frame is called once per rendering frame with the frame time in seconds.
// It emits the latest coalesced position and advances the exit animation.
func (p *PreviewRenderer) Frame(dt float32) {
	if !p.active {
		return
	}
	p.flush()
	if !p.exiting {
		return
	}
	p.exit.Update(dt)
	p.renderer.Apply(RenderCommand{
		Type:    CommandPreviewStyle,
		ItemID:  p.itemID,
		Opacity: p.opacity,
		Scale:   p.scale,
	})
	if p.exit.Done {
		p.remove()
	}
}

func (p *PreviewRenderer) flush() {
	if !p.pending {
		return
	}
	p.pending = false
	p.renderer.Apply(RenderCommand{Type: CommandPreviewMove, ItemID: p.itemID, Position: p.pos})
}

func (p *PreviewRenderer) remove() {
	p.renderer.Apply(RenderCommand{Type: CommandPreviewRemove, ItemID: p.itemID})
	*p = PreviewRenderer{
		renderer:     p.renderer,
		ExitDuration: p.ExitDuration,
		ExitScale:    p.ExitScale,
	}
}
