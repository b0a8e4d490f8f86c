package timeline_test

import (
	"testing"

	"github.com/velhot/arrangeview"
	"github.com/velhot/arrangeview/timeline"
)

func TestPointMarkerDragSnapsAndReportsOnRelease(t *testing.T) {
	f := newFixture(t)
	arr := oneTrackOneRegion(false)
	arr.Markers = []arrangeview.Marker{{Position: 2, Kind: arrangeview.Cue, Label: "verse"}}

	f.press(270, 5) // cue band is the top third of the ruler
	ev := f.frame(arr, 1.0/60)
	if _, ok := ev.MarkerMoved.Unpack(); ok {
		t.Error("marker_moved should not fire while the drag is running")
	}
	f.moveTo(388, 5) // close to beat 4, snaps onto it
	ev = f.frame(arr, 1.0/60)
	if _, ok := ev.MarkerMoved.Unpack(); ok {
		t.Error("marker_moved should wait for the release")
	}
	if arr.Markers[0].Position != 4 {
		t.Errorf("marker position: got %v, expected 4", arr.Markers[0].Position)
	}
	f.release()
	ev = f.frame(arr, 1.0/60)
	if got, ok := ev.MarkerMoved.Unpack(); !ok || got != 0 {
		t.Errorf("expected marker_moved(0) on release, got (%v, %v)", got, ok)
	}
}

func TestMarkerKindsOccupySeparateBands(t *testing.T) {
	f := newFixture(t)
	arr := oneTrackOneRegion(false)
	arr.Markers = []arrangeview.Marker{
		{Position: 2, Kind: arrangeview.Cue, Label: "cue"},
		{Position: 2, Kind: arrangeview.TimeSignature, Num: 3, Den: 4},
	}
	// the time signature band is the bottom third of the 28 px ruler
	f.press(270, 24)
	f.frame(arr, 1.0/60)
	f.moveTo(330, 24)
	f.release()
	ev := f.frame(arr, 1.0/60)
	if got, ok := ev.MarkerMoved.Unpack(); !ok || got != 1 {
		t.Fatalf("expected marker_moved(1), got (%v, %v)", got, ok)
	}
	if arr.Markers[1].Position != 3 {
		t.Errorf("time signature marker: got %v, expected 3", arr.Markers[1].Position)
	}
	if arr.Markers[0].Position != 2 {
		t.Errorf("cue marker moved too: %v", arr.Markers[0].Position)
	}
}

func TestMarkerLabels(t *testing.T) {
	f := newFixture(t)
	arr := oneTrackOneRegion(false)
	arr.Markers = []arrangeview.Marker{
		{Position: 0, Kind: arrangeview.Tempo, BPM: 128},
		{Position: 1, Kind: arrangeview.TimeSignature, Num: 7, Den: 8},
		{Position: 2, Kind: arrangeview.Cue, Label: "drop"},
	}
	f.frame(arr, 1.0/60)
	for _, label := range []string{"128 bpm", "7/8", "drop"} {
		if !f.paint.hasText(label) {
			t.Errorf("marker label %q not drawn", label)
		}
	}
}

// Clicking a range marker raises it above the others; the raised index
// survives in the store between frames.

func TestRangeMarkerZOrder(t *testing.T) {
	f := newFixture(t)
	arr := oneTrackOneRegion(false)
	arr.Loop = arrangeview.RangeMarker{Start: 0, End: 4}
	arr.Selection = arrangeview.RangeMarker{Start: 2, End: 6}
	zKey := timeline.NewID("test").With("marker_z_order")

	// selection band is the middle third of the lanes: y 152..276
	f.press(450, 250) // inside selection only (loop band ends at y 214)
	f.frame(arr, 1.0/60)
	f.release()
	f.frame(arr, 1.0/60)
	if top, _ := f.store.Get(zKey); top != uint8(1) {
		t.Fatalf("selection should be on top, z-order is %v", top)
	}

	// loop band is the top half: y 28..214
	f.press(200, 100) // inside loop only
	f.frame(arr, 1.0/60)
	f.release()
	f.frame(arr, 1.0/60)
	if top, _ := f.store.Get(zKey); top != uint8(0) {
		t.Fatalf("loop should be back on top, z-order is %v", top)
	}
}

func TestRangeMarkerEdgeDragNormalizes(t *testing.T) {
	f := newFixture(t)
	arr := oneTrackOneRegion(false)
	arr.Loop = arrangeview.RangeMarker{Start: 2, End: 4}
	// loop start handle at x = 270, band y 28..214
	f.press(270, 100)
	f.frame(arr, 1.0/60)
	f.moveTo(450, 100) // drags the start past the end: beat 5
	f.frame(arr, 1.0/60)
	if arr.Loop.Start > arr.Loop.End {
		t.Errorf("range inverted after drag: {%v %v}", arr.Loop.Start, arr.Loop.End)
	}
	if arr.Loop.Start != 4 || arr.Loop.End != 5 {
		t.Errorf("got {%v %v}, expected {4 5}", arr.Loop.Start, arr.Loop.End)
	}
}

func TestRangeEdgeDragInsideTrackRow(t *testing.T) {
	f := newFixture(t)
	arr := oneTrackOneRegion(false)
	arr.Loop = arrangeview.RangeMarker{Start: 5, End: 8}
	f.press(450, 60) // loop start handle at x = 450, inside track row 0
	ev := f.frame(arr, 1.0/60)
	if _, ok := ev.EmptyClicked.Unpack(); ok {
		t.Error("the loop handle lost the press to the empty lane")
	}
	f.moveTo(510, 60)
	f.frame(arr, 1.0/60)
	if arr.Loop.Start != 6 || arr.Loop.End != 8 {
		t.Errorf("loop edge not draggable inside a track row: got {%v %v}, expected {6 8}",
			arr.Loop.Start, arr.Loop.End)
	}
	f.release()
	f.frame(arr, 1.0/60)
}

func TestRangeMarkerBodyDragShifts(t *testing.T) {
	f := newFixture(t)
	arr := oneTrackOneRegion(false)
	arr.Loop = arrangeview.RangeMarker{Start: 1, End: 3}
	f.press(280, 100) // inside the loop body, away from both handles
	f.frame(arr, 1.0/60)
	f.moveTo(340, 100) // +60 px = +1 beat
	f.frame(arr, 1.0/60)
	if arr.Loop.Start != 2 || arr.Loop.End != 4 {
		t.Errorf("got {%v %v}, expected {2 4}", arr.Loop.Start, arr.Loop.End)
	}
}
