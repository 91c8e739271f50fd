package timeline

// Gesture is one in-flight drag over a clip: either a move of the whole
// clip or a resize through one handle. Deltas are applied strictly in
// pointer-event order because intermediate states drive the live visual
// feedback. The pre-gesture geometry is retained until the gesture
// commits so an abort (Escape, pointer-cancel) can revert it.
type Gesture struct {
	clip     *Clip
	handle   *Handle
	snapshot Geometry
	active   bool
}

// BeginMove starts a drag of the whole clip along the time axis.
func BeginMove(c *Clip) *Gesture {
	return &Gesture{
		clip:     c,
		snapshot: c.Geometry(),
		active:   true,
	}
}

// BeginResize starts a drag of one handle.
func BeginResize(c *Clip, h Handle) *Gesture {
	return &Gesture{
		clip:     c,
		handle:   &h,
		snapshot: c.Geometry(),
		active:   true,
	}
}

// Active reports whether the gesture is still in flight.
func (gs *Gesture) Active() bool {
	return gs.active
}

// Update applies one pointer delta. Moves shift X only; the track owns
// Y. Resizes delegate to the handle's mutation.
func (gs *Gesture) Update(dx, dy float64) {
	if !gs.active {
		return
	}

	g := gs.clip.Geometry()
	if gs.handle == nil {
		g.X += dx
		gs.clip.SetGeometry(g)
		return
	}

	delta := dx
	if gs.handle.Axis == AxisY {
		delta = dy
	}
	gs.clip.SetGeometry(gs.handle.Drag(g, delta))
}

// Commit ends the gesture, keeping the current geometry.
func (gs *Gesture) Commit() {
	gs.active = false
}

// Cancel aborts the gesture and reverts to the pre-gesture snapshot.
func (gs *Gesture) Cancel() {
	if !gs.active {
		return
	}
	gs.active = false
	gs.clip.SetGeometry(gs.snapshot)
}
