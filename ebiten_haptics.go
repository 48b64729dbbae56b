package dropzone

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const defaultVibrateMagnitude = 0.7

// EbitenHaptics plays haptic patterns through ebiten.Vibrate. Multi-pulse
// patterns are stepped by Update, which must be called once per tick.
// On platforms without vibration support ebiten.Vibrate does nothing.
type EbitenHaptics struct {
	Magnitude float64

	now     func() time.Time
	vibrate func(d time.Duration, magnitude float64)
	steps   Pattern
	next    int
	nextAt  time.Time
	playing bool
}

// NewEbitenHaptics creates a haptics driver with the default magnitude.
func NewEbitenHaptics() *EbitenHaptics {
	return &EbitenHaptics{Magnitude: defaultVibrateMagnitude, now: time.Now, vibrate: ebitenVibrate}
}

func ebitenVibrate(d time.Duration, magnitude float64) {
	ebiten.Vibrate(&ebiten.VibrateOptions{Duration: d, Magnitude: magnitude})
}

// Vibrate implements Haptics. A new pattern replaces one still playing.
func (h *EbitenHaptics) Vibrate(p Pattern) {
	if len(p) == 0 {
		return
	}
	h.steps = append(h.steps[:0], p...)
	h.next = 0
	h.nextAt = h.now()
	h.playing = true
	h.Update()
}

// Update starts any pulse whose time has come.
func (h *EbitenHaptics) Update() {
	if !h.playing {
		return
	}
	now := h.now()
	for h.playing && !now.Before(h.nextAt) {
		d := h.steps[h.next]
		if h.next%2 == 0 {
			h.vibrate(d, h.Magnitude)
		}
		h.nextAt = h.nextAt.Add(d)
		h.next++
		if h.next >= len(h.steps) {
			h.playing = false
		}
	}
}
