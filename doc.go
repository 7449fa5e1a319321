// Package strata is a viewport and spatial-interaction engine for infinite,
// zoomable, depth-layered 2D canvases, built for [Ebitengine] hosts.
//
// Strata converts between screen and world coordinates, drives an animated
// camera with momentum and eased scroll-to targets, derives per-depth-layer
// parameters (focus zoom, intrinsic scale, parallax, click-through) from a
// single integer z-index, and resolves visual occlusion of a focused panel
// by panels in front of it. It does not lay out, persist, or render panel
// content — hosts supply geometry through a [BoxStore] and draw however they
// like using the engine's projections.
//
// # Quick start
//
// Create a store, an engine, and drive it from your game loop:
//
//	store := strata.NewMemoryBoxStore()
//	store.AddBox(strata.Box{X: 100, Y: 100, Width: 200, Height: 200, Type: strata.BoxText})
//
//	engine := strata.NewEngine(store, strata.DefaultConfig())
//
//	type Game struct{ engine *strata.Engine }
//
//	func (g *Game) Update() error        { g.engine.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image) { /* project boxes via engine.BoxScreenRect */ }
//
// # Depth layers
//
// Every box carries an integer z-index (typically -10..0, with positive z in
// front of the focal plane). All visual and interaction semantics for a layer
// derive from that one number: the zoom at which the layer is in focus
// ([Config.FocusZoom]), a size-compensation scale ([Config.IntrinsicScale]),
// a parallax multiplier ([Config.ParallaxFactor]), and a blur-coupled
// clickability test ([Config.Clickable]). Boxes that look out of focus are
// also non-interactive, so clicks pass through to whatever is beneath.
//
// # Gestures
//
// The engine understands panning (middle button, left+modifier, or touch)
// with release momentum, zoom-around-cursor wheel input with a
// velocity-adaptive factor, box dragging and 8-handle resizing, and
// single/double click disambiguation. Synthetic input can be queued with
// [Engine.InjectPress] and friends for automation and tests.
//
// Tweened camera motion uses [gween].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package strata
