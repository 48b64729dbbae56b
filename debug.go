package dropzone

import (
	"fmt"
	"io"
	"os"
)

// SetDebugMode enables or disables debug logging. When enabled, phase
// transitions, ignored input and throttled hit tests are printed to the
// debug output (stderr unless changed with SetDebugOutput).
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
}

// SetDebugOutput redirects debug logging. A nil writer restores stderr.
func (e *Engine) SetDebugOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	e.debugOut = w
}

func (e *Engine) debugf(format string, args ...any) {
	if !e.debug {
		return
	}
	_, _ = fmt.Fprintf(e.debugOut, "[dropzone] "+format+"\n", args...)
}

func (e *Engine) debugTransition(from, to Phase, itemID string) {
	if !e.debug {
		return
	}
	_, _ = fmt.Fprintf(e.debugOut, "[dropzone] %s -> %s | item: %q | pos: (%.1f, %.1f) | zone: %q\n",
		from, to, itemID, e.session.Current.X, e.session.Current.Y, e.session.LastHitZoneID)
}
