package timeline_test

import (
	"testing"

	"github.com/velhot/arrangeview/timeline"
)

func TestSolveLayout(t *testing.T) {
	opt := timeline.DefaultOptions()
	avail := timeline.Rct(0, 0, 750, 400)
	lay := timeline.SolveLayout(avail, &opt, 3)

	if lay.CornerRect != timeline.Rct(0, 0, 150, 28) {
		t.Errorf("corner: %v", lay.CornerRect)
	}
	if lay.RulerRect != timeline.Rct(150, 0, 750, 28) {
		t.Errorf("ruler: %v", lay.RulerRect)
	}
	if lay.HeaderRect != timeline.Rct(0, 28, 150, 400) {
		t.Errorf("header: %v", lay.HeaderRect)
	}
	if lay.LaneRect != timeline.Rct(150, 28, 750, 400) {
		t.Errorf("lanes: %v", lay.LaneRect)
	}
	if lay.ContentW != 16*4*60 {
		t.Errorf("content width: got %v, expected %v", lay.ContentW, 16*4*60)
	}
	if lay.ContentH != 180 {
		t.Errorf("content height: got %v, expected 180", lay.ContentH)
	}
	if lay.MaxScroll != timeline.Pt(3840-600, 0) {
		t.Errorf("max scroll: got %v", lay.MaxScroll)
	}
}

func TestSolveLayoutTallContent(t *testing.T) {
	opt := timeline.DefaultOptions()
	lay := timeline.SolveLayout(timeline.Rct(0, 0, 750, 400), &opt, 12)
	if lay.MaxScroll.Y != 12*60-372 {
		t.Errorf("max scroll y: got %v, expected %v", lay.MaxScroll.Y, 12*60-372)
	}
}

func TestSolveLayoutTinyViewport(t *testing.T) {
	opt := timeline.DefaultOptions()
	lay := timeline.SolveLayout(timeline.Rct(0, 0, 10, 10), &opt, 1)
	if lay.LaneRect.W() < 100 || lay.LaneRect.H() < 100 {
		t.Errorf("lane viewport should floor at 100x100, got %vx%v", lay.LaneRect.W(), lay.LaneRect.H())
	}
}

func TestSolveLayoutOffsetOrigin(t *testing.T) {
	opt := timeline.DefaultOptions()
	lay := timeline.SolveLayout(timeline.Rct(20, 40, 770, 440), &opt, 1)
	if lay.LaneRect.Min != timeline.Pt(170, 68) {
		t.Errorf("lane origin: got %v, expected {170 68}", lay.LaneRect.Min)
	}
	if lay.CornerRect.Min != timeline.Pt(20, 40) {
		t.Errorf("corner origin: got %v", lay.CornerRect.Min)
	}
}

func TestDefaultOptions(t *testing.T) {
	opt := timeline.DefaultOptions()
	if !opt.ShowPlayhead || !opt.ShowSnapGrid || !opt.SnapToGrid {
		t.Error("playhead, grid and snapping should default on")
	}
	if opt.BeatWidth < opt.MinZoom || opt.BeatWidth > opt.MaxZoom {
		t.Error("default beat width outside the zoom range")
	}
	if !opt.ScrollToBeat.Empty() {
		t.Error("scroll_to_beat should default empty")
	}
	if opt.MomentumDamping < 1 || opt.MomentumDamping > 20 {
		t.Errorf("momentum damping out of range: %v", opt.MomentumDamping)
	}
}
