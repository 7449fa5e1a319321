package strata

// ScreenToWorld converts a screen-space point to world space for the focal
// reference plane (z = 0). Pure; the caller guarantees zoom != 0 (the engine
// clamps zoom away from zero everywhere it is written).
func ScreenToWorld(sx, sy, zoom, offX, offY float64) (wx, wy float64) {
	return (sx - offX) / zoom, (sy - offY) / zoom
}

// WorldToScreen converts a world-space point on the focal reference plane to
// screen space. Exact inverse of [ScreenToWorld]: round-tripping holds to
// floating-point precision for all zoom > 0.
func WorldToScreen(wx, wy, zoom, offX, offY float64) (sx, sy float64) {
	return wx*zoom + offX, wy*zoom + offY
}

// LayerToScreen converts a world-space point on depth layer z to screen
// space. Layers scale by zoom * intrinsicScale(z) and translate by the camera
// offset attenuated (or amplified) by the layer's parallax factor. At z = 0
// this reduces to [WorldToScreen].
func (c *Config) LayerToScreen(wx, wy float64, z int, zoom, offX, offY float64) (sx, sy float64) {
	scale := zoom * c.IntrinsicScale(z)
	par := c.ParallaxFactor(z)
	return wx*scale + offX*par, wy*scale + offY*par
}

// ScreenToLayer converts a screen-space point to world space on depth layer
// z. Inverse of [LayerToScreen].
func (c *Config) ScreenToLayer(sx, sy float64, z int, zoom, offX, offY float64) (wx, wy float64) {
	scale := zoom * c.IntrinsicScale(z)
	par := c.ParallaxFactor(z)
	return (sx - offX*par) / scale, (sy - offY*par) / scale
}

// BoxScreenRect projects a box's world rectangle to its on-screen rectangle,
// accounting for the box's depth layer.
func (c *Config) BoxScreenRect(b Box, zoom, offX, offY float64) Rect {
	scale := zoom * c.IntrinsicScale(b.Z)
	x, y := c.LayerToScreen(b.X, b.Y, b.Z, zoom, offX, offY)
	return Rect{X: x, Y: y, Width: b.Width * scale, Height: b.Height * scale}
}
