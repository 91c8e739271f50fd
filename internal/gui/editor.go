package gui

import (
	"context"
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/keagan/railcut/internal/config"
	"github.com/keagan/railcut/internal/session"
	"github.com/keagan/railcut/internal/timeline"
	"github.com/keagan/railcut/pkg/util"
)

// RunEditor opens the editor shell: a toolbar, a zoom slider, and the
// timeline canvas backed by the clip model.
func RunEditor(cfg *config.Config, logger zerolog.Logger) {
	myApp := app.NewWithID("railcut")
	w := myApp.NewWindow("railcut editor")
	w.Resize(fyne.NewSize(900, 420))

	statusLabel := widget.NewLabel("Ready")
	notify := func(msg string) { statusLabel.SetText(msg) }

	sess := session.NewManager(logger)
	model := timeline.NewTimeline(logger, timeline.DefaultRegistry(), sess, timeline.TimelineConfig{
		TrackHeight: cfg.Timeline.TrackHeight,
		PxPerSecond: cfg.Timeline.PxPerSecond,
		Notify:      notify,
	})
	model.AddTrack()
	model.AddTrack()

	tlWidget := newTimelineWidget(model)

	cursorLabel := widget.NewLabel("Cursor: " + util.FormatTimecode(0))

	addClip := func(kind timeline.Kind, track int, duration time.Duration) func() {
		return func() {
			label := fmt.Sprintf("%s clip", kind)
			el := sess.Import(label, kind, duration)
			if _, err := model.AddClip(track, el, 0); err != nil {
				logger.Error().Err(err).Msg("could not add clip")
				notify("could not add clip")
				return
			}
			tlWidget.Refresh()
		}
	}

	deleteButton := widget.NewButton("Delete", func() {
		if err := model.DeleteSelected(context.Background()); err != nil {
			logger.Error().Err(err).Msg("delete failed")
		}
		tlWidget.Refresh()
	})

	duplicateButton := widget.NewButton("Duplicate", func() {
		if err := model.DuplicateSelected(context.Background()); err != nil {
			logger.Error().Err(err).Msg("duplicate failed")
		}
		tlWidget.Refresh()
	})

	zoom := widget.NewSlider(5, 200)
	zoom.Value = model.PxPerSecond()
	zoom.OnChanged = func(val float64) {
		model.SetZoom(val)
		tlWidget.Refresh()
	}

	w.SetContent(
		container.NewBorder(
			container.NewVBox(
				container.NewHBox(
					widget.NewButton("+ Video", addClip(timeline.KindVideo, 0, 4*time.Second)),
					widget.NewButton("+ Image", addClip(timeline.KindImage, 0, 3*time.Second)),
					widget.NewButton("+ Audio", addClip(timeline.KindAudio, 1, 5*time.Second)),
					widget.NewButton("+ Text", addClip(timeline.KindText, 0, 2*time.Second)),
					widget.NewButton("+ Effect", addClip(timeline.KindEffect, 1, 2*time.Second)),
					deleteButton,
					duplicateButton,
				),
				zoom,
			),
			container.NewHBox(statusLabel, cursorLabel),
			nil, nil,
			tlWidget,
		),
	)

	w.ShowAndRun()
}
