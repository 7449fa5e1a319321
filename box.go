package strata

// BoxType distinguishes the content kind a box carries. The engine itself
// never branches on it — only hosts and content renderers do.
type BoxType uint8

const (
	BoxText  BoxType = iota // plain or rich text panel
	BoxCode                 // syntax-highlighted code panel
	BoxImage                // raster image panel
	BoxEmbed                // embedded external content
	BoxAudio                // audio player panel
)

// Box is a content panel on the canvas, in world coordinates. Geometry is
// owned by the external box collection; the engine reads current geometry and
// proposes new geometry through [BoxStore.UpdateBox] — it never keeps a
// private copy beyond the duration of one gesture.
type Box struct {
	ID     string
	X, Y   float64
	Width  float64
	Height float64
	// Z is the depth layer index. 0 is the focal reference plane, negative
	// values sit behind it, positive values in front.
	Z       int
	Type    BoxType
	Content string
	// ForegroundColor is an optional CSS-style color hint for renderers.
	// Empty means "use the theme default".
	ForegroundColor string
}

// Center returns the box center in world coordinates.
func (b Box) Center() (cx, cy float64) {
	return b.X + b.Width/2, b.Y + b.Height/2
}

// BoxPatch is a partial update to a box. Nil fields are left unchanged.
// Updates are last-write-wins keyed by box id; there is no batching.
type BoxPatch struct {
	X      *float64
	Y      *float64
	Width  *float64
	Height *float64
	Z      *int
}

// BoxStore is the box-collection collaborator the engine reads geometry from
// and proposes geometry to. Implementations are not required to be safe for
// concurrent use: the engine is single-threaded and calls the store only from
// its update loop.
type BoxStore interface {
	// Boxes returns the current box list. The engine treats the returned
	// slice as read-only and valid only until the next store call.
	Boxes() []Box
	// Box returns the box with the given id, if present.
	Box(id string) (Box, bool)
	// UpdateBox applies a partial update to the box with the given id.
	// Returns false if no such box exists.
	UpdateBox(id string, patch BoxPatch) bool
}

// FocusState tracks which box, if any, is selected, fullscreen, or being
// dragged. Fullscreen and dragging are mutually exclusive interaction modes;
// setting one clears the other.
type FocusState struct {
	SelectedID   string
	FullscreenID string
	DraggingID   string
}

// Focused reports whether any box is currently selected.
func (f FocusState) Focused() bool {
	return f.SelectedID != ""
}

// clearBox removes id from every role it holds. Called on deselect and when
// a box is deleted out from under the engine.
func (f *FocusState) clearBox(id string) {
	if f.SelectedID == id {
		f.SelectedID = ""
	}
	if f.FullscreenID == id {
		f.FullscreenID = ""
	}
	if f.DraggingID == id {
		f.DraggingID = ""
	}
}
