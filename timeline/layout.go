package timeline

import (
	"image/color"

	"github.com/velhot/arrangeview/timeline/types"
)

type (
	// Options configure one timeline. Construct with DefaultOptions and
	// overwrite fields; zero values for sizes are pulled up to safe minima
	// each frame, so a partially filled struct cannot crash the engine.
	Options struct {
		TrackHeaderWidth float32
		TrackHeight      float32
		BeatWidth        float32 // pixels per beat; the zoom scalar
		Measures         int
		BeatsPerMeasure  int
		RulerHeight      float32

		ShowPlayhead  bool
		PlayheadColor color.NRGBA // zero alpha means theme secondary

		ShowSnapGrid        bool
		SnapGridSubdivision int // grid lines per beat
		SnapToGrid          bool

		MinZoom float32 // lower clamp on BeatWidth
		MaxZoom float32 // upper clamp on BeatWidth

		AutoFollowPlayhead bool
		AutoFollowMargin   float32 // fraction of the viewport width, [0,1]

		VisibleRenderMargin float32 // culling slack, beats

		MomentumScrolling bool
		MomentumDamping   float32 // [1,20]

		// ScrollToBeat is a one-shot command: when set, the viewport jumps
		// so the beat lands on the left edge, then the option clears itself.
		ScrollToBeat types.Optional[float32]

		EmptyMessage string
	}

	// Layout is the ephemeral output of the layout solver: the frame's
	// screen rects, content extent and scroll bounds.
	Layout struct {
		HeaderRect Rect // header column, below the corner spacer
		RulerRect  Rect // ruler row, right of the corner spacer
		CornerRect Rect // top-left spacer
		LaneRect   Rect // the scrolling region viewport

		ContentW  float32
		ContentH  float32
		MaxScroll Point
	}
)

func DefaultOptions() Options {
	return Options{
		TrackHeaderWidth:    150,
		TrackHeight:         60,
		BeatWidth:           60,
		Measures:            16,
		BeatsPerMeasure:     4,
		RulerHeight:         28,
		ShowPlayhead:        true,
		ShowSnapGrid:        true,
		SnapGridSubdivision: 4,
		SnapToGrid:          true,
		MinZoom:             8,
		MaxZoom:             480,
		AutoFollowMargin:    0.25,
		VisibleRenderMargin: 2,
		MomentumScrolling:   true,
		MomentumDamping:     5,
	}
}

// sanitize clamps misconfigured options to safe minima in place. Invalid
// geometry is a configuration mistake, not a runtime error; it is repaired
// silently.
func (o *Options) sanitize() {
	if o.MinZoom <= 0 {
		o.MinZoom = 1
	}
	if o.MaxZoom < o.MinZoom {
		o.MaxZoom = o.MinZoom
	}
	o.BeatWidth = clampf(o.BeatWidth, o.MinZoom, o.MaxZoom)
	if o.TrackHeight < 8 {
		o.TrackHeight = 8
	}
	if o.TrackHeaderWidth < 0 {
		o.TrackHeaderWidth = 0
	}
	if o.RulerHeight < 8 {
		o.RulerHeight = 8
	}
	if o.Measures < 1 {
		o.Measures = 1
	}
	if o.BeatsPerMeasure < 1 {
		o.BeatsPerMeasure = 1
	}
	if o.SnapGridSubdivision < 1 {
		o.SnapGridSubdivision = 1
	}
	o.AutoFollowMargin = clampf(o.AutoFollowMargin, 0, 1)
	if o.VisibleRenderMargin < 0 {
		o.VisibleRenderMargin = 0
	}
	o.MomentumDamping = clampf(o.MomentumDamping, 1, 20)
}

// snapDivision is the snap step in beats, or 0 when snapping is off.
func (o *Options) snapDivision() float32 {
	if !o.SnapToGrid {
		return 0
	}
	return 1 / float32(o.SnapGridSubdivision)
}

// SolveLayout resolves the viewport and content geometry for one frame.
// Runs once per frame, before anything draws.
func SolveLayout(avail Rect, opt *Options, trackCount int) Layout {
	viewportW := avail.W() - opt.TrackHeaderWidth
	if viewportW < 100 {
		viewportW = 100
	}
	viewportH := avail.H() - opt.RulerHeight
	if viewportH < 100 {
		viewportH = 100
	}
	laneMin := Pt(avail.Min.X+opt.TrackHeaderWidth, avail.Min.Y+opt.RulerHeight)
	var l Layout
	l.CornerRect = Rct(avail.Min.X, avail.Min.Y, laneMin.X, laneMin.Y)
	l.RulerRect = Rct(laneMin.X, avail.Min.Y, laneMin.X+viewportW, laneMin.Y)
	l.HeaderRect = Rct(avail.Min.X, laneMin.Y, laneMin.X, laneMin.Y+viewportH)
	l.LaneRect = Rct(laneMin.X, laneMin.Y, laneMin.X+viewportW, laneMin.Y+viewportH)
	l.ContentW = float32(opt.Measures*opt.BeatsPerMeasure) * opt.BeatWidth
	l.ContentH = float32(trackCount) * opt.TrackHeight
	l.MaxScroll = Pt(maxf(0, l.ContentW-viewportW), maxf(0, l.ContentH-viewportH))
	return l
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
