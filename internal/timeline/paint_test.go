package timeline

import (
	"reflect"
	"testing"
)

func newTestClip(t *testing.T, kind Kind, w, h float64) *Clip {
	t.Helper()
	clip, err := New(kind, DefaultRegistry(), Options{
		ElementID: "paint-test",
		Geometry:  Geometry{Width: w, Height: h},
	})
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	return clip
}

func ringOf(t *testing.T, cmds []Command) Command {
	t.Helper()
	if len(cmds) == 0 {
		t.Fatal("no commands painted")
	}
	ring := cmds[len(cmds)-1]
	if ring.Rule != RuleEvenOdd {
		t.Fatalf("last command rule = %v, want even-odd selection ring", ring.Rule)
	}
	return ring
}

func TestSelectionPaintConsistency(t *testing.T) {
	for _, kind := range []Kind{KindVideo, KindImage, KindAudio, KindText, KindEffect} {
		clip := newTestClip(t, kind, 200, 60)

		clip.SetSelected(true)
		if got := ringOf(t, clip.Paint()).Fill; got != borderSelected {
			t.Errorf("%s selected ring = %v, want %v", kind, got, borderSelected)
		}

		clip.SetSelected(false)
		if got := ringOf(t, clip.Paint()).Fill; got != borderUnselected {
			t.Errorf("%s unselected ring = %v, want %v", kind, got, borderUnselected)
		}
	}
}

func TestPaintIdempotent(t *testing.T) {
	for _, kind := range []Kind{KindVideo, KindImage, KindAudio, KindText, KindEffect} {
		clip := newTestClip(t, kind, 173, 60)
		clip.SetSelected(true)

		first := clip.Paint()
		second := clip.Paint()
		if !reflect.DeepEqual(first, second) {
			t.Errorf("%s: repeated paint produced different command sequences", kind)
		}
	}
}

func TestSelectionRingShape(t *testing.T) {
	g := Geometry{X: 10, Y: 20, Width: 200, Height: 60, Radius: CornerRadius}
	ring := selectionRing(g, true)

	if len(ring.Shapes) != 2 {
		t.Fatalf("ring has %d shapes, want outer + inner hole", len(ring.Shapes))
	}

	outer, inner := ring.Shapes[0], ring.Shapes[1]
	if outer.Rect != rectOf(g) {
		t.Errorf("outer rect = %+v, want full geometry %+v", outer.Rect, rectOf(g))
	}
	want := Rect{
		X: g.X + BorderWidth,
		Y: g.Y + BorderWidth,
		W: g.Width - 2*BorderWidth,
		H: g.Height - 2*BorderWidth,
	}
	if inner.Rect != want {
		t.Errorf("inner rect = %+v, want inset by border width %+v", inner.Rect, want)
	}
	if outer.Radius != CornerRadius {
		t.Errorf("outer radius = %g, want the fixed constant %g", outer.Radius, CornerRadius)
	}
}

func TestAudioWaveformDeterministic(t *testing.T) {
	g := Geometry{Width: 120, Height: 60}
	a := waveformBars(g, borderSelected)
	b := waveformBars(g, borderSelected)
	if !reflect.DeepEqual(a, b) {
		t.Error("waveform bars differ between paints of identical geometry")
	}
	if len(a.Shapes) == 0 {
		t.Error("expected at least one bar for a 120px clip")
	}
}

func TestNarrowClipStillPaints(t *testing.T) {
	// Clamped-to-minimum clips must paint without panicking even though
	// the inner ring rect degenerates.
	clip := newTestClip(t, KindAudio, MinWidth, 60)
	clip.SetSelected(true)
	if cmds := clip.Paint(); len(cmds) == 0 {
		t.Fatal("no commands for minimum-width clip")
	}
}
