package timeline

// Axis is the direction a handle drags along.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Policy declares which axes of a clip are resizable. Horizontal-only
// is the default for every current variant; vertical resize is locked
// because tracks have fixed row height.
type Policy struct {
	Horizontal bool
	Vertical   bool
}

// Handle is a draggable affordance attached to a clip edge. Dragging it
// applies a geometry mutation; width and height never go negative, they
// clamp at MinWidth instead of inverting the clip.
type Handle struct {
	Name   string
	Cursor string
	Axis   Axis
	apply  func(g Geometry, delta float64) Geometry
}

// Drag applies the handle's mutation for one pointer delta.
func (h Handle) Drag(g Geometry, delta float64) Geometry {
	return h.apply(g, delta)
}

// ControlsFor builds the handle set for a resize policy, keyed by
// handle name ("ml" = middle-left, "mr" = middle-right, "tm"/"bm" for
// the vertical edges). A policy with no active axis is malformed.
func ControlsFor(p Policy) (map[string]Handle, error) {
	if !p.Horizontal && !p.Vertical {
		return nil, &ConfigurationError{Reason: "handle policy enables no axis"}
	}

	controls := make(map[string]Handle)

	if p.Horizontal {
		controls["ml"] = Handle{
			Name:   "ml",
			Cursor: "ew-resize",
			Axis:   AxisX,
			apply:  resizeLeft,
		}
		controls["mr"] = Handle{
			Name:   "mr",
			Cursor: "ew-resize",
			Axis:   AxisX,
			apply:  resizeRight,
		}
	}

	if p.Vertical {
		controls["tm"] = Handle{
			Name:   "tm",
			Cursor: "ns-resize",
			Axis:   AxisY,
			apply:  resizeTop,
		}
		controls["bm"] = Handle{
			Name:   "bm",
			Cursor: "ns-resize",
			Axis:   AxisY,
			apply:  resizeBottom,
		}
	}

	return controls, nil
}

// resizeLeft moves the left edge: position and width change inversely
// so the right edge stays fixed, including while clamping.
func resizeLeft(g Geometry, dx float64) Geometry {
	right := g.Right()
	w := g.Width - dx
	if w < MinWidth {
		w = MinWidth
	}
	g.X = right - w
	g.Width = w
	return g
}

// resizeRight changes width only.
func resizeRight(g Geometry, dx float64) Geometry {
	w := g.Width + dx
	if w < MinWidth {
		w = MinWidth
	}
	g.Width = w
	return g
}

func resizeTop(g Geometry, dy float64) Geometry {
	bottom := g.Y + g.Height
	h := g.Height - dy
	if h < MinWidth {
		h = MinWidth
	}
	g.Y = bottom - h
	g.Height = h
	return g
}

func resizeBottom(g Geometry, dy float64) Geometry {
	h := g.Height + dy
	if h < MinWidth {
		h = MinWidth
	}
	g.Height = h
	return g
}
