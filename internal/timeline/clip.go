package timeline

import (
	"image/color"
	"time"

	"github.com/google/uuid"
)

// Flags are the fixed-at-construction interaction capabilities of a
// clip. Every current variant shares the same set: rotation locked,
// vertical resize locked, horizontal resize enabled.
type Flags struct {
	RotationLocked       bool
	VerticalResizeLocked bool
	HorizontalResize     bool
	Selectable           bool
	CornerHitRadius      float64
}

// Options configures a new clip. Fill overrides the registry theme's
// solid color when set; the caller-specified color wins.
type Options struct {
	ElementID string
	Content   string
	Geometry  Geometry
	Duration  time.Duration
	TimeScale float64
	Fill      *color.NRGBA
}

// Clip is the visual, time-bounded representation of one media element
// on a track. A clip is exclusively owned by the timeline container
// that created it; all mutation happens on the UI thread.
type Clip struct {
	elementID string
	content   string
	kind      Kind
	geom      Geometry
	duration  time.Duration
	timeScale float64
	theme     Theme
	flags     Flags
	selected  bool
	dirty     bool
}

// New creates a clip of the given kind. The theme comes from the
// registry unless an explicit fill override is supplied. Malformed
// geometry fails fast with a GeometryError.
func New(kind Kind, reg *Registry, opts Options) (*Clip, error) {
	if err := opts.Geometry.Validate(); err != nil {
		return nil, err
	}

	theme, err := reg.Lookup(kind)
	if err != nil {
		return nil, err
	}
	if opts.Fill != nil {
		theme.Solid = *opts.Fill
	}

	id := opts.ElementID
	if id == "" {
		id = uuid.NewString()
	}

	scale := opts.TimeScale
	if scale == 0 {
		scale = 1
	}

	geom := opts.Geometry
	if geom.Radius == 0 {
		geom.Radius = CornerRadius
	}

	return &Clip{
		elementID: id,
		content:   opts.Content,
		kind:      kind,
		geom:      geom,
		duration:  opts.Duration,
		timeScale: scale,
		theme:     theme,
		flags: Flags{
			RotationLocked:       true,
			VerticalResizeLocked: true,
			HorizontalResize:     true,
			Selectable:           true,
			CornerHitRadius:      CornerHitRadius,
		},
		dirty: true,
	}, nil
}

// ElementID correlates the clip to the media element owned by the
// external editing session. Immutable after creation.
func (c *Clip) ElementID() string { return c.elementID }

// Content returns the clip's display label.
func (c *Clip) Content() string { return c.content }

// Kind returns the clip's category.
func (c *Clip) Kind() Kind { return c.kind }

// Geometry returns the clip's current placement.
func (c *Clip) Geometry() Geometry { return c.geom }

// Duration returns the clip's nominal duration.
func (c *Clip) Duration() time.Duration { return c.duration }

// Flags returns the fixed interaction capabilities.
func (c *Clip) Flags() Flags { return c.flags }

// Theme returns the resolved color theme.
func (c *Clip) Theme() Theme { return c.theme }

// Selected reports the logical selection state.
func (c *Clip) Selected() bool { return c.selected }

// TimeScale is the playback-speed multiplier. The container recomputes
// width when it changes; the clip never recomputes itself.
func (c *Clip) TimeScale() float64 { return c.timeScale }

// SetTimeScale stores a new playback-speed multiplier. Geometry is not
// touched here: the mutation is caller-driven, not reactive.
func (c *Clip) SetTimeScale(scale float64) {
	c.timeScale = scale
}

// SetGeometry replaces the clip's placement and marks it stale.
func (c *Clip) SetGeometry(g Geometry) {
	c.geom = g
	c.dirty = true
}

// SetSelected is the only sanctioned mutator of selection state. It
// sets the flag, marks the clip stale, and returns the needs-repaint
// signal the container must observe. Logical selection and drawn state
// are never allowed to desynchronize.
func (c *Clip) SetSelected(selected bool) bool {
	c.selected = selected
	c.dirty = true
	return true
}

// Dirty reports whether the drawn appearance is stale.
func (c *Clip) Dirty() bool { return c.dirty }

// TakeDirty returns the dirty flag and clears it; the repaint loop
// calls this once per frame.
func (c *Clip) TakeDirty() bool {
	d := c.dirty
	c.dirty = false
	return d
}

// Paint renders the clip into a draw-command sequence. It is a pure
// function of current geometry, selection, and theme: two calls with
// unchanged state produce identical output.
func (c *Clip) Paint() []Command {
	return paintClip(c.kind, c.geom, c.selected, c.theme)
}

// Controls returns the handle set for this clip's resize policy.
func (c *Clip) Controls() (map[string]Handle, error) {
	return ControlsFor(c.kind.Policy())
}
