package timeline

import (
	"errors"
	"image/color"
	"testing"
)

func TestSelectImageClipScenario(t *testing.T) {
	clip, err := New(KindImage, DefaultRegistry(), Options{
		ElementID: "e1",
		Content:   "beach.png",
		Geometry:  Geometry{Width: 200, Height: 60},
	})
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	clip.TakeDirty() // construction marks dirty; start clean

	if !clip.SetSelected(true) {
		t.Error("SetSelected must signal needs-repaint")
	}
	if !clip.Selected() {
		t.Error("isSelected = false, want true")
	}
	if !clip.Dirty() {
		t.Error("dirty flag not set by SetSelected")
	}
	if got := ringOf(t, clip.Paint()).Fill; got != (color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Errorf("border = %v, want fully-opaque white", got)
	}
}

func TestConstructionDefaults(t *testing.T) {
	clip, err := New(KindVideo, DefaultRegistry(), Options{
		ElementID: "e2",
		Geometry:  Geometry{Width: 80, Height: 60},
	})
	if err != nil {
		t.Fatalf("New error = %v", err)
	}

	flags := clip.Flags()
	if !flags.RotationLocked {
		t.Error("rotation must be locked")
	}
	if !flags.VerticalResizeLocked {
		t.Error("vertical resize must be locked")
	}
	if !flags.HorizontalResize {
		t.Error("horizontal resize must be enabled")
	}
	if !flags.Selectable {
		t.Error("clips must be selectable")
	}
	if flags.CornerHitRadius != CornerHitRadius {
		t.Errorf("corner hit radius = %g, want %g", flags.CornerHitRadius, CornerHitRadius)
	}
	if clip.TimeScale() != 1 {
		t.Errorf("time scale = %g, want default 1", clip.TimeScale())
	}
	if clip.Geometry().Radius != CornerRadius {
		t.Errorf("radius = %g, want %g", clip.Geometry().Radius, CornerRadius)
	}
}

func TestFillOverrideWins(t *testing.T) {
	override := color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xff}
	clip, err := New(KindImage, DefaultRegistry(), Options{
		ElementID: "e3",
		Geometry:  Geometry{Width: 50, Height: 60},
		Fill:      &override,
	})
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	if clip.Theme().Solid != override {
		t.Errorf("fill = %v, want caller override %v", clip.Theme().Solid, override)
	}
	// Accent and border still come from the registry.
	want, _ := DefaultRegistry().Lookup(KindImage)
	if clip.Theme().Accent != want.Accent {
		t.Errorf("accent = %v, want registry %v", clip.Theme().Accent, want.Accent)
	}
}

func TestNegativeGeometryFailsFast(t *testing.T) {
	_, err := New(KindVideo, DefaultRegistry(), Options{
		ElementID: "e4",
		Geometry:  Geometry{Width: -5, Height: 60},
	})
	if err == nil {
		t.Fatal("expected error for negative width")
	}
	var geomErr *GeometryError
	if !errors.As(err, &geomErr) {
		t.Fatalf("error = %T, want *GeometryError", err)
	}
}

func TestMintedElementID(t *testing.T) {
	a, err := New(KindAudio, DefaultRegistry(), Options{Geometry: Geometry{Width: 10, Height: 60}})
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	b, err := New(KindAudio, DefaultRegistry(), Options{Geometry: Geometry{Width: 10, Height: 60}})
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	if a.ElementID() == "" || a.ElementID() == b.ElementID() {
		t.Errorf("minted ids must be non-empty and distinct, got %q and %q", a.ElementID(), b.ElementID())
	}
}

func TestSetTimeScaleDoesNotResize(t *testing.T) {
	clip, err := New(KindVideo, DefaultRegistry(), Options{
		ElementID: "e5",
		Geometry:  Geometry{Width: 120, Height: 60},
	})
	if err != nil {
		t.Fatalf("New error = %v", err)
	}

	clip.SetTimeScale(2)
	if clip.TimeScale() != 2 {
		t.Errorf("time scale = %g, want 2", clip.TimeScale())
	}
	if clip.Geometry().Width != 120 {
		t.Errorf("width = %g; scale mutation alone must not resize", clip.Geometry().Width)
	}
}

func TestTakeDirtyClears(t *testing.T) {
	clip, err := New(KindText, DefaultRegistry(), Options{
		ElementID: "e6",
		Geometry:  Geometry{Width: 30, Height: 60},
	})
	if err != nil {
		t.Fatalf("New error = %v", err)
	}

	if !clip.TakeDirty() {
		t.Error("freshly constructed clip should need an initial paint")
	}
	if clip.TakeDirty() {
		t.Error("TakeDirty must clear the flag")
	}

	clip.SetSelected(true)
	if !clip.TakeDirty() {
		t.Error("SetSelected must re-mark the clip")
	}
}
