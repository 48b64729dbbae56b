package dropzone

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// tweenTarget pairs a float64 field with the value it animates to.
type tweenTarget struct {
	field *float64
	to    float64
}

// tweenGroup animates up to 4 float64 fields together. Call Update(dt) each
// frame; values are written straight into the fields.
//
// There is no global animation manager; the preview renderer and overlay
// own and advance their groups.
type tweenGroup struct {
	tweens [4]*gween.Tween
	fields [4]*float64
	count  int
	Done   bool
}

func newTweenGroup(duration float32, fn ease.TweenFunc, targets ...tweenTarget) *tweenGroup {
	g := &tweenGroup{}
	for _, t := range targets {
		if g.count == len(g.tweens) {
			break
		}
		g.tweens[g.count] = gween.New(float32(*t.field), float32(t.to), duration, fn)
		g.fields[g.count] = t.field
		g.count++
	}
	if g.count == 0 || duration <= 0 {
		// Nothing to animate: jump to the end state.
		for _, t := range targets {
			*t.field = t.to
		}
		g.Done = true
	}
	return g
}

// Update advances all tweens by dt seconds and writes values to the fields.
func (g *tweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}
