package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/keagan/railcut/internal/timeline"
)

var timelineBackground = color.NRGBA{R: 0x16, G: 0x16, B: 0x1a, A: 0xff}

// timelineWidget renders the clip model into fyne canvas objects and
// forwards pointer interaction back to it. The clip painters stay
// backend-free; this widget is just one interpreter of their commands.
type timelineWidget struct {
	widget.BaseWidget

	model   *timeline.Timeline
	gesture *timeline.Gesture
}

func newTimelineWidget(model *timeline.Timeline) *timelineWidget {
	w := &timelineWidget{model: model}
	w.ExtendBaseWidget(w)
	return w
}

func (w *timelineWidget) CreateRenderer() fyne.WidgetRenderer {
	return &timelineRenderer{widget: w}
}

// Tapped selects the clip under the pointer, or clears the selection.
func (w *timelineWidget) Tapped(ev *fyne.PointEvent) {
	clip := w.model.ClipAt(float64(ev.Position.X), float64(ev.Position.Y))
	if clip == nil {
		w.model.ClearSelection()
	} else {
		w.model.Select(clip.ElementID())
	}
	w.Refresh()
}

// Dragged starts or continues a gesture. A press near a clip's left or
// right edge resizes through that handle; anywhere else moves the clip.
func (w *timelineWidget) Dragged(ev *fyne.DragEvent) {
	if w.gesture == nil {
		clip := w.model.ClipAt(float64(ev.Position.X), float64(ev.Position.Y))
		if clip == nil {
			return
		}
		w.model.Select(clip.ElementID())
		w.gesture = w.beginGesture(clip, float64(ev.Position.X))
	}

	w.gesture.Update(float64(ev.Dragged.DX), float64(ev.Dragged.DY))
	w.Refresh()
}

func (w *timelineWidget) DragEnd() {
	if w.gesture != nil {
		w.gesture.Commit()
		w.gesture = nil
	}
}

func (w *timelineWidget) FocusGained() {}

func (w *timelineWidget) FocusLost() {}

// TypedKey aborts an in-flight gesture on Escape.
func (w *timelineWidget) TypedKey(ev *fyne.KeyEvent) {
	if ev.Name == fyne.KeyEscape && w.gesture != nil {
		w.gesture.Cancel()
		w.gesture = nil
		w.Refresh()
	}
}

func (w *timelineWidget) TypedRune(rune) {}

func (w *timelineWidget) beginGesture(clip *timeline.Clip, x float64) *timeline.Gesture {
	g := clip.Geometry()
	hit := clip.Flags().CornerHitRadius
	controls, err := clip.Controls()
	if err == nil {
		if x-g.X <= hit {
			return timeline.BeginResize(clip, controls["ml"])
		}
		if g.Right()-x <= hit {
			return timeline.BeginResize(clip, controls["mr"])
		}
	}
	return timeline.BeginMove(clip)
}

type timelineRenderer struct {
	widget  *timelineWidget
	objects []fyne.CanvasObject
}

func (r *timelineRenderer) MinSize() fyne.Size {
	return fyne.NewSize(600, 200)
}

func (r *timelineRenderer) Layout(fyne.Size) {}

// Refresh rebuilds the canvas objects from the clip painters.
func (r *timelineRenderer) Refresh() {
	bg := canvas.NewRectangle(timelineBackground)
	bg.Resize(r.widget.Size())
	r.objects = []fyne.CanvasObject{bg}

	for _, track := range r.widget.model.Tracks() {
		for _, clip := range track.Clips() {
			for _, cmd := range clip.Paint() {
				r.objects = append(r.objects, commandObjects(cmd)...)
			}
			clip.TakeDirty()
		}
	}

	canvas.Refresh(r.widget)
}

func (r *timelineRenderer) Objects() []fyne.CanvasObject {
	if r.objects == nil {
		r.Refresh()
	}
	return r.objects
}

func (r *timelineRenderer) Destroy() {}

// commandObjects translates one draw command into fyne primitives. A
// two-shape even-odd command is a border ring, which fyne expresses as
// a stroked rectangle.
func commandObjects(cmd timeline.Command) []fyne.CanvasObject {
	if cmd.Rule == timeline.RuleEvenOdd && len(cmd.Shapes) == 2 {
		outer := cmd.Shapes[0]
		rect := canvas.NewRectangle(color.Transparent)
		rect.StrokeColor = cmd.Fill
		rect.StrokeWidth = float32(timeline.BorderWidth)
		rect.CornerRadius = float32(outer.Radius)
		rect.Move(fyne.NewPos(float32(outer.Rect.X), float32(outer.Rect.Y)))
		rect.Resize(fyne.NewSize(float32(outer.Rect.W), float32(outer.Rect.H)))
		return []fyne.CanvasObject{rect}
	}

	objects := make([]fyne.CanvasObject, 0, len(cmd.Shapes))
	for _, shape := range cmd.Shapes {
		rect := canvas.NewRectangle(cmd.Fill)
		rect.CornerRadius = float32(shape.Radius)
		rect.Move(fyne.NewPos(float32(shape.Rect.X), float32(shape.Rect.Y)))
		rect.Resize(fyne.NewSize(float32(shape.Rect.W), float32(shape.Rect.H)))
		objects = append(objects, rect)
	}
	return objects
}
