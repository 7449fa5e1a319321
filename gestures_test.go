package strata

import "testing"

func TestResizeBoxHandles(t *testing.T) {
	start := Box{X: 100, Y: 100, Width: 200, Height: 150}
	const minW, minH = 100.0, 80.0

	tests := []struct {
		name     string
		handle   ResizeHandle
		wdx, wdy float64
		want     Box
	}{
		{"E grows width", HandleE, 50, 999, Box{X: 100, Y: 100, Width: 250, Height: 150}},
		{"W moves x keeps right edge", HandleW, 50, 0, Box{X: 150, Y: 100, Width: 150, Height: 150}},
		{"N moves y keeps bottom edge", HandleN, 0, 30, Box{X: 100, Y: 130, Width: 200, Height: 120}},
		{"S grows height", HandleS, 999, 40, Box{X: 100, Y: 100, Width: 200, Height: 190}},
		{"SE corner", HandleSE, 20, 30, Box{X: 100, Y: 100, Width: 220, Height: 180}},
		{"NW corner", HandleNW, 20, 30, Box{X: 120, Y: 130, Width: 180, Height: 120}},
		{"NE corner", HandleNE, -50, 50, Box{X: 100, Y: 150, Width: 150, Height: 100}},
		{"SW corner", HandleSW, -50, -50, Box{X: 50, Y: 100, Width: 250, Height: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resizeBox(start, tt.handle, tt.wdx, tt.wdy, minW, minH)
			if got.X != tt.want.X || got.Y != tt.want.Y ||
				got.Width != tt.want.Width || got.Height != tt.want.Height {
				t.Errorf("resize = {%v %v %v %v}, want {%v %v %v %v}",
					got.X, got.Y, got.Width, got.Height,
					tt.want.X, tt.want.Y, tt.want.Width, tt.want.Height)
			}
		})
	}
}

func TestResizeBoxFloorKeepsOppositeEdge(t *testing.T) {
	start := Box{X: 100, Y: 100, Width: 200, Height: 150}
	const minW, minH = 100.0, 80.0

	// Collapse from every handle far past the minimum; the box must bottom
	// out at the floor with the opposite edge exactly where it was.
	for h := HandleN; h <= HandleNW; h++ {
		got := resizeBox(start, h, -10000, -10000, minW, minH)
		if got.Width < minW || got.Height < minH {
			t.Errorf("handle %d: size = %vx%v, below floor %vx%v", h, got.Width, got.Height, minW, minH)
		}
		got = resizeBox(start, h, 10000, 10000, minW, minH)
		if got.Width < minW || got.Height < minH {
			t.Errorf("handle %d (grow then collapse): size = %vx%v below floor", h, got.Width, got.Height)
		}
	}

	// West handle pushed right past the floor: right edge stays at 300.
	got := resizeBox(start, HandleW, 500, 0, minW, minH)
	if got.Width != minW {
		t.Errorf("W overcollapse: width = %v, want floor %v", got.Width, minW)
	}
	if got.X+got.Width != 300 {
		t.Errorf("W overcollapse: right edge = %v, want 300", got.X+got.Width)
	}

	// North handle pushed down past the floor: bottom edge stays at 250.
	got = resizeBox(start, HandleN, 0, 500, minW, minH)
	if got.Height != minH {
		t.Errorf("N overcollapse: height = %v, want floor %v", got.Height, minH)
	}
	if got.Y+got.Height != 250 {
		t.Errorf("N overcollapse: bottom edge = %v, want 250", got.Y+got.Height)
	}
}

func TestReleaseVelocity(t *testing.T) {
	const window = 0.1
	var samples []velocitySample
	now := 1.0

	// Old samples outside the window must not count.
	samples = pushVelocitySample(samples, now-0.5, 1000, 1000, window)
	for i := 0; i < 5; i++ {
		samples = pushVelocitySample(samples, now-0.08+float64(i)*0.02, 10, -4, window)
	}

	vx, vy := releaseVelocity(samples, now, window)
	if !approxEqual(vx, 500, epsilon) || !approxEqual(vy, -200, epsilon) {
		t.Errorf("velocity = (%v,%v), want (500,-200)", vx, vy)
	}
}

func TestReleaseVelocityEmptyWindow(t *testing.T) {
	vx, vy := releaseVelocity(nil, 1.0, 0.1)
	if vx != 0 || vy != 0 {
		t.Errorf("velocity = (%v,%v), want (0,0)", vx, vy)
	}
	samples := []velocitySample{{t: 0.1, dx: 50, dy: 50}}
	vx, vy = releaseVelocity(samples, 10.0, 0.1)
	if vx != 0 || vy != 0 {
		t.Errorf("stale sample produced velocity (%v,%v)", vx, vy)
	}
}

func TestWheelBurstFactor(t *testing.T) {
	cfg := DefaultConfig()

	single := []wheelSample{{t: 1.0, mag: 1}}
	got := wheelBurstFactor(single, 1.0, &cfg)
	if !approxEqual(got, 1.0+cfg.WheelBurstGain, epsilon) {
		t.Errorf("single notch factor = %v, want %v", got, 1.0+cfg.WheelBurstGain)
	}

	// A fast burst saturates at the cap.
	var burst []wheelSample
	for i := 0; i < 100; i++ {
		burst = append(burst, wheelSample{t: 1.0, mag: 3})
	}
	if got := wheelBurstFactor(burst, 1.0, &cfg); got != cfg.WheelBurstMax {
		t.Errorf("burst factor = %v, want cap %v", got, cfg.WheelBurstMax)
	}

	// Stale samples fall out of the window.
	stale := []wheelSample{{t: 0.0, mag: 100}}
	if got := wheelBurstFactor(stale, 1.0, &cfg); got != 1.0 {
		t.Errorf("stale factor = %v, want 1.0", got)
	}
}
