package timeline

import "image/color"

// FillRule selects how overlapping shapes in one command composite.
type FillRule int

const (
	// RuleNonZero fills every shape in the command.
	RuleNonZero FillRule = iota
	// RuleEvenOdd fills the exclusive-or of the shapes, leaving the
	// region covered by an even number of shapes empty.
	RuleEvenOdd
)

// Rect is an axis-aligned rectangle in canvas coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Shape is one rounded rectangle contributing to a draw command.
type Shape struct {
	Rect   Rect
	Radius float64
}

// Command is a single drawing instruction emitted by a clip painter.
// Painters are pure functions of geometry, selection, and theme; tests
// assert on command sequences instead of pixels.
type Command struct {
	Shapes []Shape
	Fill   color.NRGBA
	Rule   FillRule
}

// Border ring colors: opaque white when selected, near-transparent
// white otherwise.
var (
	borderSelected   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	borderUnselected = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x1a}
)

// waveformPattern drives the audio variant's bar heights, as fractions
// of the clip height. Fixed so painting stays a pure function of width.
var waveformPattern = []float64{0.35, 0.62, 0.48, 0.80, 0.52, 0.70, 0.40, 0.66}

const (
	waveformBarWidth = 3.0
	waveformBarGap   = 3.0
	textChromeHeight = 3.0
	effectStripe     = 4.0
)

func rectOf(g Geometry) Rect {
	return Rect{X: g.X, Y: g.Y, W: g.Width, H: g.Height}
}

// selectionRing builds the two-layer rounded rectangle: an outer filled
// rect in the border color and an inner hole inset by BorderWidth,
// composited even-odd so only the ring remains visible.
func selectionRing(g Geometry, selected bool) Command {
	fill := borderUnselected
	if selected {
		fill = borderSelected
	}
	innerRadius := g.Radius - BorderWidth
	if innerRadius < 0 {
		innerRadius = 0
	}
	return Command{
		Shapes: []Shape{
			{Rect: rectOf(g), Radius: g.Radius},
			{
				Rect: Rect{
					X: g.X + BorderWidth,
					Y: g.Y + BorderWidth,
					W: g.Width - 2*BorderWidth,
					H: g.Height - 2*BorderWidth,
				},
				Radius: innerRadius,
			},
		},
		Fill: fill,
		Rule: RuleEvenOdd,
	}
}

func solidBody(g Geometry, fill color.NRGBA) Command {
	return Command{
		Shapes: []Shape{{Rect: rectOf(g), Radius: g.Radius}},
		Fill:   fill,
		Rule:   RuleNonZero,
	}
}

// waveformBars emits the audio variant's accent bars. Bar heights cycle
// a fixed pattern so two paints of the same geometry are identical.
func waveformBars(g Geometry, accent color.NRGBA) Command {
	var shapes []Shape
	step := waveformBarWidth + waveformBarGap
	i := 0
	for x := g.X + waveformBarGap; x+waveformBarWidth <= g.Right()-waveformBarGap; x += step {
		h := g.Height * waveformPattern[i%len(waveformPattern)]
		shapes = append(shapes, Shape{
			Rect: Rect{
				X: x,
				Y: g.Y + (g.Height-h)/2,
				W: waveformBarWidth,
				H: h,
			},
			Radius: 1,
		})
		i++
	}
	return Command{Shapes: shapes, Fill: accent, Rule: RuleNonZero}
}

func textChrome(g Geometry, accent color.NRGBA) Command {
	return Command{
		Shapes: []Shape{{
			Rect: Rect{
				X: g.X + BorderWidth,
				Y: g.Y + g.Height - textChromeHeight - BorderWidth,
				W: g.Width - 2*BorderWidth,
				H: textChromeHeight,
			},
		}},
		Fill: accent,
		Rule: RuleNonZero,
	}
}

func effectStripeCmd(g Geometry, accent color.NRGBA) Command {
	return Command{
		Shapes: []Shape{{
			Rect: Rect{X: g.X, Y: g.Y, W: g.Width, H: effectStripe},
			Radius: g.Radius,
		}},
		Fill: accent,
		Rule: RuleNonZero,
	}
}

// paintClip renders one clip into a draw-command sequence. Per-kind
// bodies diverge deliberately; the selection ring is uniform across
// every variant.
func paintClip(kind Kind, g Geometry, selected bool, theme Theme) []Command {
	var cmds []Command

	switch kind {
	case KindAudio:
		cmds = append(cmds, solidBody(g, theme.Solid))
		cmds = append(cmds, waveformBars(g, theme.Accent))
	case KindText:
		cmds = append(cmds, solidBody(g, theme.Solid))
		cmds = append(cmds, textChrome(g, theme.Accent))
	case KindEffect:
		translucent := theme.Solid
		translucent.A = 0xcc
		cmds = append(cmds, solidBody(g, translucent))
		cmds = append(cmds, effectStripeCmd(g, theme.Accent))
	default:
		// video, image, and any future visual-media kind
		cmds = append(cmds, solidBody(g, theme.Solid))
	}

	cmds = append(cmds, selectionRing(g, selected))
	return cmds
}
