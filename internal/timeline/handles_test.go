package timeline

import (
	"errors"
	"testing"
)

func TestControlsHorizontalOnly(t *testing.T) {
	controls, err := ControlsFor(Policy{Horizontal: true})
	if err != nil {
		t.Fatalf("ControlsFor error = %v", err)
	}

	if len(controls) != 2 {
		t.Fatalf("got %d handles, want exactly ml and mr", len(controls))
	}
	for _, name := range []string{"ml", "mr"} {
		h, ok := controls[name]
		if !ok {
			t.Fatalf("missing handle %q", name)
		}
		if h.Axis != AxisX {
			t.Errorf("%s axis = %v, want AxisX", name, h.Axis)
		}
		if h.Cursor != "ew-resize" {
			t.Errorf("%s cursor = %q, want ew-resize", name, h.Cursor)
		}
	}
	for _, name := range []string{"tm", "bm"} {
		if _, ok := controls[name]; ok {
			t.Errorf("unexpected vertical handle %q under horizontal-only policy", name)
		}
	}
}

func TestControlsMalformedPolicy(t *testing.T) {
	_, err := ControlsFor(Policy{})
	if err == nil {
		t.Fatal("expected error for policy with no active axis")
	}
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error = %T, want *ConfigurationError", err)
	}
}

func TestRightHandleClampsWidth(t *testing.T) {
	controls, err := ControlsFor(Policy{Horizontal: true})
	if err != nil {
		t.Fatalf("ControlsFor error = %v", err)
	}
	mr := controls["mr"]

	// Drag the right handle of a width-100 clip leftward by 150 units.
	g := mr.Drag(Geometry{X: 40, Width: 100, Height: 60}, -150)
	if g.Width != MinWidth {
		t.Errorf("width = %g, want clamped to %g", g.Width, MinWidth)
	}
	if g.X != 40 {
		t.Errorf("x = %g; right handle must not move the left edge", g.X)
	}
}

func TestRightHandleNeverNegative(t *testing.T) {
	controls, _ := ControlsFor(Policy{Horizontal: true})
	mr := controls["mr"]

	g := Geometry{X: 0, Width: 100, Height: 60}
	for _, dx := range []float64{-30, -90, 200, -500, 12, -12.5} {
		g = mr.Drag(g, dx)
		if g.Width < MinWidth {
			t.Fatalf("width %g fell below minimum after delta %g", g.Width, dx)
		}
	}
}

func TestLeftHandleKeepsRightEdge(t *testing.T) {
	controls, _ := ControlsFor(Policy{Horizontal: true})
	ml := controls["ml"]

	g := Geometry{X: 25, Width: 100, Height: 60}
	right := g.Right()

	for _, dx := range []float64{10, -40, 300, -300, 55.5} {
		g = ml.Drag(g, dx)
		if g.Right() != right {
			t.Fatalf("right edge moved to %g after delta %g, want %g", g.Right(), dx, right)
		}
		if g.Width < MinWidth {
			t.Fatalf("width %g fell below minimum after delta %g", g.Width, dx)
		}
	}
}

func TestVerticalHandlesWhenAllowed(t *testing.T) {
	controls, err := ControlsFor(Policy{Horizontal: true, Vertical: true})
	if err != nil {
		t.Fatalf("ControlsFor error = %v", err)
	}
	if len(controls) != 4 {
		t.Fatalf("got %d handles, want 4", len(controls))
	}

	tm := controls["tm"]
	g := tm.Drag(Geometry{Y: 10, Height: 50}, 200)
	if g.Height != MinWidth {
		t.Errorf("height = %g, want clamped", g.Height)
	}
	if g.Y+g.Height != 60 {
		t.Errorf("bottom edge = %g, want invariant 60", g.Y+g.Height)
	}
}

func TestClipControlsMatchPolicy(t *testing.T) {
	clip, err := New(KindVideo, DefaultRegistry(), Options{
		ElementID: "h1",
		Geometry:  Geometry{Width: 100, Height: 60},
	})
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	controls, err := clip.Controls()
	if err != nil {
		t.Fatalf("Controls error = %v", err)
	}
	if len(controls) != 2 {
		t.Errorf("clip handle set = %d entries, want horizontal-only pair", len(controls))
	}
}
