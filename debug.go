package strata

import (
	"fmt"
	"os"
)

// debugLog prints one line of per-frame engine state to stderr. Only called
// when debug mode is on.
func (e *Engine) debugLog() {
	mode := "idle"
	switch e.vp.mode {
	case modeEased:
		mode = "eased"
	case modeConverge:
		mode = "converge"
	case modeMomentum:
		mode = "momentum"
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[strata] t=%.3f gesture=%s camera=%s zoom=%.3f offset=(%.1f,%.1f) target=(%.3f,%.1f,%.1f) focus=%q\n",
		e.now, e.gesture, mode,
		e.vp.Zoom, e.vp.OffsetX, e.vp.OffsetY,
		e.vp.TargetZoom, e.vp.TargetOffsetX, e.vp.TargetOffsetY,
		e.focus.SelectedID)
}
