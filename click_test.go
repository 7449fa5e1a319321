package strata

import "testing"

func TestClickTimerSingleAfterWindow(t *testing.T) {
	var timer clickTimer
	const window = 0.3

	info := ClickInfo{Box: Box{ID: "a"}}
	if _, double := timer.click(1.0, window, info); double {
		t.Fatal("first click reported a double")
	}

	// Before the window elapses nothing fires.
	if _, ok := timer.step(1.2); ok {
		t.Error("single fired before the window elapsed")
	}
	got, ok := timer.step(1.31)
	if !ok {
		t.Fatal("single did not fire after the window")
	}
	if got.Box.ID != "a" {
		t.Errorf("single fired for %q, want %q", got.Box.ID, "a")
	}
	// Exactly once.
	if _, ok := timer.step(2.0); ok {
		t.Error("single fired twice")
	}
}

func TestClickTimerDoubleInsideWindow(t *testing.T) {
	var timer clickTimer
	const window = 0.3

	info := ClickInfo{Box: Box{ID: "a"}}
	timer.click(1.0, window, info)
	got, double := timer.click(1.2, window, info)
	if !double {
		t.Fatal("second click inside window did not report a double")
	}
	if got.Box.ID != "a" {
		t.Errorf("double fired for %q, want %q", got.Box.ID, "a")
	}
	// The single interpretation is cancelled.
	if _, ok := timer.step(2.0); ok {
		t.Error("single fired after a double")
	}
}

func TestClickTimerDifferentTargetsRestart(t *testing.T) {
	var timer clickTimer
	const window = 0.3

	timer.click(1.0, window, ClickInfo{Box: Box{ID: "a"}})
	// A click on a different box inside the window is a fresh single, not a
	// double.
	if _, double := timer.click(1.1, window, ClickInfo{Box: Box{ID: "b"}}); double {
		t.Error("clicks on different boxes counted as a double")
	}
	got, ok := timer.step(1.45)
	if !ok || got.Box.ID != "b" {
		t.Errorf("pending single = (%q, %v), want (%q, true)", got.Box.ID, ok, "b")
	}
}

func TestClickTimerSlowSecondClick(t *testing.T) {
	var timer clickTimer
	const window = 0.3

	timer.click(1.0, window, ClickInfo{Box: Box{ID: "a"}})
	if got, ok := timer.step(1.35); !ok || got.Box.ID != "a" {
		t.Fatal("first single did not fire")
	}
	// Too late for a double: arms a new single instead.
	if _, double := timer.click(1.4, window, ClickInfo{Box: Box{ID: "a"}}); double {
		t.Error("late second click counted as a double")
	}
}

func TestClickTimerCancel(t *testing.T) {
	var timer clickTimer
	timer.click(1.0, 0.3, ClickInfo{Box: Box{ID: "a"}})
	timer.cancel()
	if _, ok := timer.step(5.0); ok {
		t.Error("cancelled click still fired")
	}
}
