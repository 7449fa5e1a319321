package strata

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

// Snapshot colors. Content renderers own real theming; the snapshot only
// needs to be legible.
const (
	snapshotBackground = "#1a1a22"
	snapshotBoxFill    = "#2e3440"
	snapshotBoxStroke  = "#88c0d0"
	snapshotLabelColor = "#eceff4"
)

// ExportSnapshot renders the current depth-projected box layout to a PNG:
// every box drawn at its on-screen rectangle, back layers first, dimmed by
// its depth blur, labeled with the first line of its content. The camera and
// viewport dimensions are taken from the engine's current state.
func (e *Engine) ExportSnapshot(w io.Writer) error {
	if e.viewportW <= 0 || e.viewportH <= 0 {
		return fmt.Errorf("strata: snapshot needs a non-degenerate viewport, have %.0fx%.0f", e.viewportW, e.viewportH)
	}
	return RenderSnapshot(w, e.store.Boxes(), &e.cfg,
		e.vp.Zoom, e.vp.OffsetX, e.vp.OffsetY,
		e.viewportW, e.viewportH, e.focus.Focused())
}

// RenderSnapshot draws the given boxes through the camera (zoom, offX, offY)
// into a viewportW x viewportH PNG written to w.
func RenderSnapshot(w io.Writer, boxes []Box, cfg *Config, zoom, offX, offY, viewportW, viewportH float64, focused bool) error {
	if viewportW <= 0 || viewportH <= 0 {
		return fmt.Errorf("strata: snapshot needs a non-degenerate viewport, have %.0fx%.0f", viewportW, viewportH)
	}

	dc := gg.NewContext(int(viewportW), int(viewportH))
	dc.SetHexColor(snapshotBackground)
	dc.Clear()

	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("strata: parsing snapshot font: %w", err)
	}
	dc.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: 12}))

	// Paint back to front.
	ordered := make([]Box, len(boxes))
	copy(ordered, boxes)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Z < ordered[j].Z })

	screen := Rect{Width: viewportW, Height: viewportH}
	for _, b := range ordered {
		r := cfg.BoxScreenRect(b, zoom, offX, offY)
		if !r.Intersects(screen) || r.Area() <= 0 {
			continue
		}

		// Out-of-focus layers fade toward the background.
		blur := cfg.BlurFor(b.Z, zoom, focused)
		maxBlur := cfg.BlurMaxExploring
		if focused {
			maxBlur = cfg.BlurMaxFocused
		}
		alpha := 1.0 - 0.7*(blur/maxBlur)

		dc.SetHexColor(snapshotBoxFill)
		dc.DrawRoundedRectangle(r.X, r.Y, r.Width, r.Height, 6)
		dc.Fill()

		stroke := snapshotBoxStroke
		if b.ForegroundColor != "" {
			stroke = b.ForegroundColor
		}
		fr, fg, fb := hexRGB(stroke)
		dc.SetRGBA(fr, fg, fb, alpha)
		dc.SetLineWidth(2)
		dc.DrawRoundedRectangle(r.X, r.Y, r.Width, r.Height, 6)
		dc.Stroke()

		label := snapshotLabel(b)
		if label != "" {
			lr, lg, lb := hexRGB(snapshotLabelColor)
			dc.SetRGBA(lr, lg, lb, alpha)
			dc.DrawStringAnchored(label, r.X+8, r.Y+8, 0, 1)
		}
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("strata: encoding snapshot: %w", err)
	}
	return nil
}

// snapshotLabel returns the first content line of a box, truncated.
func snapshotLabel(b Box) string {
	s := b.Content
	for i, r := range s {
		if r == '\n' {
			s = s[:i]
			break
		}
	}
	const maxLabel = 40
	if len(s) > maxLabel {
		s = s[:maxLabel] + "…"
	}
	return s
}

// hexRGB parses "#rgb" or "#rrggbb" into components in [0, 1]. Unparseable
// values come back as mid gray rather than an error; the snapshot is
// best-effort about color hints.
func hexRGB(s string) (r, g, b float64) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return 0.5, 0.5, 0.5
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0.5, 0.5, 0.5
	}
	return float64(v>>16&0xff) / 255, float64(v>>8&0xff) / 255, float64(v&0xff) / 255
}
