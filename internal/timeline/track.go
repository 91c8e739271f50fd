package timeline

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Default layout values, overridable through TimelineConfig.
const (
	DefaultTrackHeight = 60.0
	DefaultPxPerSecond = 40.0
	trackGap           = 4.0
)

// Track is a horizontal lane holding clips in left-to-right time order.
// Row height is fixed; overlap policy is not enforced here.
type Track struct {
	Height float64
	clips  []*Clip
}

// Clips returns the track's clips.
func (t *Track) Clips() []*Clip {
	return t.clips
}

// TimelineConfig tunes the container's layout and collaborators.
type TimelineConfig struct {
	TrackHeight float64
	PxPerSecond float64
	// Notify surfaces non-blocking user notifications, e.g. when a
	// session operation fails. Optional.
	Notify func(msg string)
}

// Timeline arranges clips on stacked tracks, dispatches selection and
// drag interaction to them, and bridges destructive operations to the
// external editing session. It exclusively owns its clips.
type Timeline struct {
	logger      zerolog.Logger
	registry    *Registry
	session     Session
	tracks      []*Track
	byID        map[string]*Clip
	pxPerSecond float64
	trackHeight float64
	notify      func(string)
}

// NewTimeline creates an empty timeline container.
func NewTimeline(logger zerolog.Logger, registry *Registry, session Session, cfg TimelineConfig) *Timeline {
	if cfg.TrackHeight == 0 {
		cfg.TrackHeight = DefaultTrackHeight
	}
	if cfg.PxPerSecond == 0 {
		cfg.PxPerSecond = DefaultPxPerSecond
	}
	notify := cfg.Notify
	if notify == nil {
		notify = func(string) {}
	}

	return &Timeline{
		logger:      logger.With().Str("component", "timeline").Logger(),
		registry:    registry,
		session:     session,
		byID:        make(map[string]*Clip),
		pxPerSecond: cfg.PxPerSecond,
		trackHeight: cfg.TrackHeight,
		notify:      notify,
	}
}

// AddTrack appends a lane and returns its index.
func (t *Timeline) AddTrack() int {
	t.tracks = append(t.tracks, &Track{Height: t.trackHeight})
	return len(t.tracks) - 1
}

// Tracks returns the stacked lanes, top first.
func (t *Timeline) Tracks() []*Track {
	return t.tracks
}

// PxPerSecond returns the current zoom level.
func (t *Timeline) PxPerSecond() float64 {
	return t.pxPerSecond
}

// SetZoom changes the time-to-pixel mapping and reflows every clip.
func (t *Timeline) SetZoom(pxPerSecond float64) {
	if pxPerSecond <= 0 {
		return
	}
	t.pxPerSecond = pxPerSecond
	t.Reflow()
}

// trackY returns the top edge of a track row.
func (t *Timeline) trackY(idx int) float64 {
	return float64(idx) * (t.trackHeight + trackGap)
}

// widthFor maps an element duration through the clip's time scale and
// the current zoom. A time scale above 1 speeds playback up and shrinks
// the clip.
func (t *Timeline) widthFor(c *Clip) float64 {
	if c.TimeScale() <= 0 {
		return c.Geometry().Width
	}
	w := c.Duration().Seconds() / c.TimeScale() * t.pxPerSecond
	if w < MinWidth {
		w = MinWidth
	}
	return w
}

// AddClip places a new clip for a session element on a track, at the
// given start offset in pixels. Element IDs are unique per timeline.
func (t *Timeline) AddClip(trackIdx int, el Element, startX float64) (*Clip, error) {
	if trackIdx < 0 || trackIdx >= len(t.tracks) {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("no track %d", trackIdx)}
	}
	if _, exists := t.byID[el.ID]; exists {
		return nil, &ConfigurationError{Reason: "duplicate element id " + el.ID}
	}

	track := t.tracks[trackIdx]
	clip, err := New(el.Kind, t.registry, Options{
		ElementID: el.ID,
		Content:   el.Label,
		Duration:  el.Duration,
		Geometry: Geometry{
			X:      startX,
			Y:      t.trackY(trackIdx),
			Width:  el.Duration.Seconds() * t.pxPerSecond,
			Height: track.Height,
			Radius: CornerRadius,
		},
	})
	if err != nil {
		return nil, err
	}

	track.clips = append(track.clips, clip)
	t.byID[el.ID] = clip

	t.logger.Debug().
		Str("element", el.ID).
		Str("kind", el.Kind.String()).
		Int("track", trackIdx).
		Msg("clip added")

	return clip, nil
}

// Clip returns the clip for an element id, or nil.
func (t *Timeline) Clip(elementID string) *Clip {
	return t.byID[elementID]
}

// Remove detaches a clip from its track. Destruction is container-owned.
func (t *Timeline) Remove(elementID string) bool {
	clip, ok := t.byID[elementID]
	if !ok {
		return false
	}
	delete(t.byID, elementID)
	for _, track := range t.tracks {
		for i, c := range track.clips {
			if c == clip {
				track.clips = append(track.clips[:i], track.clips[i+1:]...)
				return true
			}
		}
	}
	return true
}

// Select makes the clip the sole selection, deselecting every other
// clip through the sanctioned mutator.
func (t *Timeline) Select(elementID string) {
	for id, clip := range t.byID {
		if clip.Selected() != (id == elementID) {
			clip.SetSelected(id == elementID)
		}
	}
}

// ClearSelection deselects everything.
func (t *Timeline) ClearSelection() {
	for _, clip := range t.byID {
		if clip.Selected() {
			clip.SetSelected(false)
		}
	}
}

// SelectedIDs returns the element ids of the selected clips.
func (t *Timeline) SelectedIDs() []string {
	var ids []string
	for id, clip := range t.byID {
		if clip.Selected() {
			ids = append(ids, id)
		}
	}
	return ids
}

// ClipAt hit-tests the stacked tracks, topmost clip first.
func (t *Timeline) ClipAt(x, y float64) *Clip {
	for _, track := range t.tracks {
		for i := len(track.clips) - 1; i >= 0; i-- {
			if track.clips[i].Geometry().Contains(x, y) {
				return track.clips[i]
			}
		}
	}
	return nil
}

// DeleteSelected removes the selected clips after the session confirms
// the deletion. On failure the clips stay untouched so the UI remains
// consistent with the last known-good session state.
func (t *Timeline) DeleteSelected(ctx context.Context) error {
	ids := t.SelectedIDs()
	if len(ids) == 0 {
		return nil
	}

	if err := t.session.DeleteElements(ctx, ids); err != nil {
		opErr := &SessionOperationError{Op: "delete", Err: err}
		t.logger.Error().Err(err).Strs("elements", ids).Msg("session delete failed")
		t.notify("could not delete selected clips")
		return opErr
	}

	for _, id := range ids {
		t.Remove(id)
	}
	return nil
}

// DuplicateSelected asks the session to duplicate each selected element
// and places the copies right after their originals on the same track.
func (t *Timeline) DuplicateSelected(ctx context.Context) error {
	for _, id := range t.SelectedIDs() {
		orig := t.byID[id]
		dup, err := t.session.DuplicateElement(ctx, id)
		if err != nil {
			opErr := &SessionOperationError{Op: "duplicate", Err: err}
			t.logger.Error().Err(err).Str("element", id).Msg("session duplicate failed")
			t.notify("could not duplicate clip " + orig.Content())
			return opErr
		}

		trackIdx := t.trackOf(orig)
		if trackIdx < 0 {
			trackIdx = 0
		}
		if _, err := t.AddClip(trackIdx, dup, orig.Geometry().Right()); err != nil {
			return err
		}
	}
	return nil
}

func (t *Timeline) trackOf(clip *Clip) int {
	for idx, track := range t.tracks {
		for _, c := range track.clips {
			if c == clip {
				return idx
			}
		}
	}
	return -1
}

// SetTimeScale updates a clip's playback-speed multiplier and recomputes
// its width; scale mutation alone never resizes a clip.
func (t *Timeline) SetTimeScale(elementID string, scale float64) {
	clip, ok := t.byID[elementID]
	if !ok || scale <= 0 {
		return
	}
	clip.SetTimeScale(scale)
	g := clip.Geometry()
	g.Width = t.widthFor(clip)
	clip.SetGeometry(g)
}

// Reflow recomputes every clip's width and row placement from duration,
// time scale, and zoom.
func (t *Timeline) Reflow() {
	for idx, track := range t.tracks {
		for _, clip := range track.clips {
			g := clip.Geometry()
			g.Y = t.trackY(idx)
			g.Height = track.Height
			g.Width = t.widthFor(clip)
			clip.SetGeometry(g)
		}
	}
}

// Dirty collects the clips whose drawn appearance is stale, clearing
// their flags. The repaint loop calls this once per frame.
func (t *Timeline) Dirty() []*Clip {
	var stale []*Clip
	for _, track := range t.tracks {
		for _, clip := range track.clips {
			if clip.TakeDirty() {
				stale = append(stale, clip)
			}
		}
	}
	return stale
}
