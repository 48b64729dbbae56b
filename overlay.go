package dropzone

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween/ease"
)

// ItemStyle is the presentation state of a draggable item.
type ItemStyle struct {
	Opacity float64
	Scale   float64
	// Returning is true while the item slides back to its origin. Offset is
	// its displacement from the resting place, easing to zero.
	Returning bool
	Offset    Vec2
	Removed   bool
}

var defaultItemStyle = ItemStyle{Opacity: 1, Scale: 1}

// ZoneState is the presentation state of a drop zone.
type ZoneState struct {
	Highlight bool
	Filled    bool
	ItemID    string // item the zone was filled with
}

// PreviewState is the floating touch preview.
type PreviewState struct {
	ItemID   string
	Position Vec2
	Opacity  float64
	Scale    float64
}

type returnAnim struct {
	itemID string
	style  *ItemStyle
	final  ItemStyle
	tween  *tweenGroup
}

// Overlay is a thin Ebitengine presentation layer: it applies render
// commands to plain state, animates rejected items back to their origin, and
// draws zone highlights and the touch preview. Items themselves are drawn by
// the game using ItemStyle.
type Overlay struct {
	HighlightColor color.Color
	FilledColor    color.Color
	PreviewColor   color.Color
	LabelColor     color.Color
	PreviewSize    float64
	StrokeWidth    float32
	// LabelFace is used by DrawLabel. When nil, labels fall back to
	// Ebitengine's debug font.
	LabelFace *text.GoTextFace

	items   map[string]*ItemStyle
	zones   map[string]*ZoneState
	preview PreviewState
	shown   bool
	returns []*returnAnim
}

// NewOverlay creates an overlay with default colors.
func NewOverlay() *Overlay {
	return &Overlay{
		HighlightColor: color.RGBA{R: 0xff, G: 0xd5, B: 0x4f, A: 0xff},
		FilledColor:    color.RGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 0x60},
		PreviewColor:   color.RGBA{R: 0x90, G: 0xca, B: 0xf9, A: 0xff},
		LabelColor:     color.White,
		PreviewSize:    48,
		StrokeWidth:    3,
		items:          make(map[string]*ItemStyle),
		zones:          make(map[string]*ZoneState),
	}
}

func (o *Overlay) item(id string) *ItemStyle {
	st, ok := o.items[id]
	if !ok {
		s := defaultItemStyle
		st = &s
		o.items[id] = st
	}
	return st
}

func (o *Overlay) zone(id string) *ZoneState {
	z, ok := o.zones[id]
	if !ok {
		z = &ZoneState{}
		o.zones[id] = z
	}
	return z
}

// Apply implements Renderer.
func (o *Overlay) Apply(cmd RenderCommand) {
	switch cmd.Type {
	case CommandItemStyle:
		st := o.item(cmd.ItemID)
		st.Opacity, st.Scale = cmd.Opacity, cmd.Scale
	case CommandItemReturn:
		o.startReturn(cmd)
	case CommandItemRemoved:
		o.cancelReturn(cmd.ItemID)
		o.item(cmd.ItemID).Removed = true
	case CommandZoneHighlight:
		o.zone(cmd.ZoneID).Highlight = cmd.Highlight
	case CommandZoneFilled:
		z := o.zone(cmd.ZoneID)
		z.Filled = true
		z.ItemID = cmd.ItemID
	case CommandPreviewShow:
		o.shown = true
		o.preview = PreviewState{ItemID: cmd.ItemID, Position: cmd.Position, Opacity: cmd.Opacity, Scale: cmd.Scale}
	case CommandPreviewMove:
		if o.shown {
			o.preview.Position = cmd.Position
		}
	case CommandPreviewStyle:
		if o.shown {
			o.preview.Opacity, o.preview.Scale = cmd.Opacity, cmd.Scale
		}
	case CommandPreviewRemove:
		o.shown = false
		o.preview = PreviewState{}
	}
}

func (o *Overlay) startReturn(cmd RenderCommand) {
	o.cancelReturn(cmd.ItemID)
	st := o.item(cmd.ItemID)
	st.Returning = true
	st.Offset = cmd.From.Sub(cmd.Position)
	a := &returnAnim{
		itemID: cmd.ItemID,
		style:  st,
		final:  ItemStyle{Opacity: cmd.Opacity, Scale: cmd.Scale},
	}
	a.tween = newTweenGroup(float32(cmd.Duration.Seconds()), ease.OutCubic,
		tweenTarget{field: &st.Offset.X, to: 0},
		tweenTarget{field: &st.Offset.Y, to: 0},
	)
	if a.tween.Done {
		a.finish()
		return
	}
	o.returns = append(o.returns, a)
}

func (o *Overlay) cancelReturn(itemID string) {
	for i, a := range o.returns {
		if a.itemID == itemID {
			o.returns = append(o.returns[:i], o.returns[i+1:]...)
			return
		}
	}
}

func (a *returnAnim) finish() {
	a.style.Returning = false
	a.style.Offset = Vec2{}
	a.style.Opacity = a.final.Opacity
	a.style.Scale = a.final.Scale
}

// Update advances return animations by dt seconds. Full opacity is restored
// once an item reaches its origin.
func (o *Overlay) Update(dt float32) {
	n := 0
	for _, a := range o.returns {
		a.tween.Update(dt)
		if a.tween.Done {
			a.finish()
			continue
		}
		o.returns[n] = a
		n++
	}
	for i := n; i < len(o.returns); i++ {
		o.returns[i] = nil
	}
	o.returns = o.returns[:n]
}

// ItemStyle returns the presentation state for an item.
func (o *Overlay) ItemStyle(id string) ItemStyle {
	if st, ok := o.items[id]; ok {
		return *st
	}
	return defaultItemStyle
}

// ZoneState returns the presentation state for a zone.
func (o *Overlay) ZoneState(id string) ZoneState {
	if z, ok := o.zones[id]; ok {
		return *z
	}
	return ZoneState{}
}

// Preview returns the floating preview, if one is shown.
func (o *Overlay) Preview() (PreviewState, bool) {
	return o.preview, o.shown
}

// Reset clears all presentation state, e.g. when a new round starts.
func (o *Overlay) Reset() {
	clear(o.items)
	clear(o.zones)
	o.preview = PreviewState{}
	o.shown = false
	o.returns = o.returns[:0]
}

// Draw renders filled and highlighted zones and the touch preview. Zones are
// drawn in reverse of the given order, so with zones from Engine.Zones the
// zone that wins an overlapping hit test is drawn on top.
func (o *Overlay) Draw(screen *ebiten.Image, zones []DropZone, zoneBounds BoundsFunc) {
	for _, d := range o.zoneDraws(zones, zoneBounds) {
		r := d.rect
		if d.state.Filled {
			vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), o.FilledColor, false)
		}
		if d.state.Highlight {
			vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), o.StrokeWidth, o.HighlightColor, false)
		}
	}

	if !o.shown {
		return
	}
	size := o.PreviewSize * o.preview.Scale
	x := o.preview.Position.X - size/2
	y := o.preview.Position.Y - size/2
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(size), float32(size),
		fadeColor(o.PreviewColor, o.preview.Opacity), true)
}

type zoneDraw struct {
	id    string
	rect  Rect
	state ZoneState
}

// zoneDraws lists the zones with visible state in draw order.
func (o *Overlay) zoneDraws(zones []DropZone, zoneBounds BoundsFunc) []zoneDraw {
	if zoneBounds == nil {
		return nil
	}
	var out []zoneDraw
	for i := len(zones) - 1; i >= 0; i-- {
		id := zones[i].ID
		z, ok := o.zones[id]
		if !ok || (!z.Filled && !z.Highlight) {
			continue
		}
		r, ok := zoneBounds(id)
		if !ok {
			continue
		}
		out = append(out, zoneDraw{id: id, rect: r, state: *z})
	}
	return out
}

// LoadLabelFace loads a TrueType font from raw TTF/OTF data at the given
// size, for use as Overlay.LabelFace.
func LoadLabelFace(ttfData []byte, size float64) (*text.GoTextFace, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("dropzone: failed to parse TTF data: %w", err)
	}
	return &text.GoTextFace{Source: source, Size: size}, nil
}

// DrawLabel draws s horizontally centered on x with its top at y, faded by
// opacity.
func (o *Overlay) DrawLabel(screen *ebiten.Image, s string, x, y, opacity float64) {
	if o.LabelFace == nil {
		ebitenutil.DebugPrintAt(screen, s, int(x)-len(s)*3, int(y))
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(o.LabelColor)
	op.ColorScale.ScaleAlpha(float32(opacity))
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, s, o.LabelFace, op)
}

// fadeColor scales a color's alpha (premultiplied) by opacity.
func fadeColor(c color.Color, opacity float64) color.Color {
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	r, g, b, a := c.RGBA()
	return color.RGBA64{
		R: uint16(float64(r) * opacity),
		G: uint16(float64(g) * opacity),
		B: uint16(float64(b) * opacity),
		A: uint16(float64(a) * opacity),
	}
}
