package timeline

import "testing"

func TestGestureCancelReverts(t *testing.T) {
	clip := newTestClip(t, KindVideo, 100, 60)
	before := clip.Geometry()
	clip.TakeDirty()

	controls, _ := ControlsFor(Policy{Horizontal: true})
	gs := BeginResize(clip, controls["mr"])
	gs.Update(30, 0)
	gs.Update(-10, 0)

	if clip.Geometry().Width != 120 {
		t.Fatalf("width mid-gesture = %g, want 120", clip.Geometry().Width)
	}

	gs.Cancel()
	if clip.Geometry() != before {
		t.Errorf("geometry after cancel = %+v, want pre-gesture %+v", clip.Geometry(), before)
	}
	if !clip.Dirty() {
		t.Error("cancel must mark the clip for repaint")
	}
	if gs.Active() {
		t.Error("gesture still active after cancel")
	}
}

func TestGestureCommitKeeps(t *testing.T) {
	clip := newTestClip(t, KindVideo, 100, 60)

	controls, _ := ControlsFor(Policy{Horizontal: true})
	gs := BeginResize(clip, controls["ml"])
	right := clip.Geometry().Right()

	gs.Update(20, 0)
	gs.Commit()

	g := clip.Geometry()
	if g.Width != 80 {
		t.Errorf("width = %g, want 80", g.Width)
	}
	if g.Right() != right {
		t.Errorf("right edge = %g, want invariant %g", g.Right(), right)
	}
}

func TestGestureAppliesDeltasInOrder(t *testing.T) {
	// A clamp mid-sequence must not be undone by a later delta computed
	// against the pre-clamp width; deltas apply to the live geometry.
	clip := newTestClip(t, KindVideo, 100, 60)
	controls, _ := ControlsFor(Policy{Horizontal: true})
	gs := BeginResize(clip, controls["mr"])

	gs.Update(-150, 0)
	if clip.Geometry().Width != MinWidth {
		t.Fatalf("width = %g, want clamp to %g", clip.Geometry().Width, MinWidth)
	}
	gs.Update(49, 0)
	if clip.Geometry().Width != MinWidth+49 {
		t.Errorf("width = %g, want %g", clip.Geometry().Width, MinWidth+49)
	}
	gs.Commit()
}

func TestMoveGestureShiftsXOnly(t *testing.T) {
	clip := newTestClip(t, KindAudio, 100, 60)
	g0 := clip.Geometry()

	gs := BeginMove(clip)
	gs.Update(15, 99)
	gs.Update(-5, -3)
	gs.Commit()

	g := clip.Geometry()
	if g.X != g0.X+10 {
		t.Errorf("x = %g, want %g", g.X, g0.X+10)
	}
	if g.Y != g0.Y || g.Width != g0.Width || g.Height != g0.Height {
		t.Error("move gesture must only shift the time axis")
	}
}

func TestUpdateAfterEndIsNoop(t *testing.T) {
	clip := newTestClip(t, KindVideo, 100, 60)
	gs := BeginMove(clip)
	gs.Commit()

	before := clip.Geometry()
	gs.Update(50, 0)
	if clip.Geometry() != before {
		t.Error("update after commit must not mutate geometry")
	}
}
