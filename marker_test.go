package arrangeview_test

import (
	"testing"

	"github.com/velhot/arrangeview"
)

func TestRangeMarkerNormalize(t *testing.T) {
	r := arrangeview.RangeMarker{Start: 6, End: 2}
	r.Normalize()
	if r.Start != 2 || r.End != 6 {
		t.Errorf("got {%v %v}, expected {2 6}", r.Start, r.End)
	}
	r.Normalize()
	if r.Start != 2 || r.End != 6 {
		t.Errorf("normalize is not idempotent: {%v %v}", r.Start, r.End)
	}
}

func TestRangeMarkerLength(t *testing.T) {
	r := arrangeview.RangeMarker{Start: 6, End: 2}
	if r.Length() != 4 {
		t.Errorf("inverted range length: got %v, expected 4", r.Length())
	}
}

func TestRangeMarkerContains(t *testing.T) {
	r := arrangeview.RangeMarker{Start: 6, End: 2}
	for _, beat := range []float32{2, 4, 6} {
		if !r.Contains(beat) {
			t.Errorf("expected %v inside inverted {6 2}", beat)
		}
	}
	if r.Contains(1.9) || r.Contains(6.1) {
		t.Error("contains reports beats outside the range")
	}
}

func TestRangeMarkerShift(t *testing.T) {
	r := arrangeview.RangeMarker{Start: 2, End: 6}
	r.Shift(3)
	if r.Start != 5 || r.End != 9 {
		t.Errorf("got {%v %v}, expected {5 9}", r.Start, r.End)
	}
	r.Shift(-10) // clamps so start stays at zero, length preserved
	if r.Start != 0 || r.End != 4 {
		t.Errorf("got {%v %v}, expected {0 4}", r.Start, r.End)
	}
}

func TestArrangementClamp(t *testing.T) {
	a := arrangeview.Arrangement{
		Loop:     arrangeview.RangeMarker{Start: 4, End: 0},
		Playhead: -3,
		Tracks: []arrangeview.Track{
			{Regions: []arrangeview.Region{{Start: -1, Duration: 0}}},
		},
	}
	a.Clamp()
	if a.Loop.Start > a.Loop.End {
		t.Error("loop still inverted after clamp")
	}
	if a.Playhead != 0 {
		t.Errorf("playhead: got %v, expected 0", a.Playhead)
	}
	r := a.Tracks[0].Regions[0]
	if r.Start != 0 || r.Duration <= 0 {
		t.Errorf("region not clamped: start %v duration %v", r.Start, r.Duration)
	}
}

func TestArrangementCopyIsDeep(t *testing.T) {
	a := arrangeview.Arrangement{
		Tracks: []arrangeview.Track{
			{Name: "a", Regions: []arrangeview.Region{{Duration: 4, Peaks: []float32{0.5}}}},
			{Name: "folder", IsFolder: true, Children: []arrangeview.Track{{Name: "child"}}},
		},
		Markers: []arrangeview.Marker{{Position: 2}},
	}
	b := a.Copy()
	b.Tracks[0].Regions[0].Peaks[0] = 0.9
	b.Tracks[1].Children[0].Name = "changed"
	b.Markers[0].Position = 7
	if a.Tracks[0].Regions[0].Peaks[0] != 0.5 {
		t.Error("region peaks shared between copies")
	}
	if a.Tracks[1].Children[0].Name != "child" {
		t.Error("folder children shared between copies")
	}
	if a.Markers[0].Position != 2 {
		t.Error("markers shared between copies")
	}
}
