package timeline_test

import (
	"testing"

	"github.com/velhot/arrangeview"
	"github.com/velhot/arrangeview/timeline"
)

// Header geometry with the default theme (xs=2, sm=4, xl=20): row 0 covers
// x 0..150, y 28..88; the M/S/R boxes are 18 px squares at y 66..84 starting
// at x 10; a folder's fold triangle covers x 8..20, y 30..42.

func TestHeaderRowClickTogglesSelection(t *testing.T) {
	f := newFixture(t)
	arr := oneTrackOneRegion(false)
	f.press(100, 40)
	ev := f.frame(arr, 1.0/60)
	if got, ok := ev.TrackClicked.Unpack(); !ok || got != 0 {
		t.Fatalf("expected track_clicked(0), got (%v, %v)", got, ok)
	}
	if !arr.Tracks[0].Selected {
		t.Error("track not selected after header click")
	}
	f.press(100, 40)
	f.frame(arr, 1.0/60)
	if arr.Tracks[0].Selected {
		t.Error("second click should toggle the selection off")
	}
}

func TestHeaderMuteSoloArmButtons(t *testing.T) {
	f := newFixture(t)
	arr := oneTrackOneRegion(false)

	f.press(15, 70) // mute box
	ev := f.frame(arr, 1.0/60)
	if _, ok := ev.TrackMuteClicked.Unpack(); !ok {
		t.Error("expected track_mute_clicked")
	}
	if !arr.Tracks[0].Controls.Muted {
		t.Error("track not muted")
	}
	if _, ok := ev.TrackClicked.Unpack(); ok {
		t.Error("a button click must not also select the row")
	}

	f.press(40, 70) // solo box
	ev = f.frame(arr, 1.0/60)
	if _, ok := ev.TrackSoloClicked.Unpack(); !ok {
		t.Error("expected track_solo_clicked")
	}
	if !arr.Tracks[0].Controls.Soloed {
		t.Error("track not soloed")
	}

	f.press(60, 70) // arm box
	ev = f.frame(arr, 1.0/60)
	if _, ok := ev.TrackArmClicked.Unpack(); !ok {
		t.Error("expected track_arm_clicked")
	}
	if !arr.Tracks[0].Controls.Armed {
		t.Error("track not armed")
	}
}

func TestHeaderFoldClickCollapsesFolder(t *testing.T) {
	f := newFixture(t)
	arr := &arrangeview.Arrangement{
		Tracks: []arrangeview.Track{
			{Name: "folder", IsFolder: true, Children: []arrangeview.Track{
				{Name: "child a"}, {Name: "child b"},
			}},
		},
	}
	if n := timeline.CountVisible(arr.Tracks); n != 3 {
		t.Fatalf("expected 3 visible rows, got %d", n)
	}
	f.press(14, 36) // fold triangle of row 0
	ev := f.frame(arr, 1.0/60)
	if got, ok := ev.TrackCollapseClicked.Unpack(); !ok || got != 0 {
		t.Fatalf("expected track_collapse_clicked(0), got (%v, %v)", got, ok)
	}
	if !arr.Tracks[0].Collapsed {
		t.Error("folder not collapsed")
	}
	if n := timeline.CountVisible(arr.Tracks); n != 1 {
		t.Errorf("expected 1 visible row after collapse, got %d", n)
	}
	f.press(14, 36)
	f.frame(arr, 1.0/60)
	if arr.Tracks[0].Collapsed {
		t.Error("second click should expand the folder again")
	}
}

func TestHeaderDrawsFallbackName(t *testing.T) {
	f := newFixture(t)
	arr := &arrangeview.Arrangement{Tracks: []arrangeview.Track{{}}}
	f.frame(arr, 1.0/60)
	if !f.paint.hasText("Track 1") {
		t.Error("unnamed track should fall back to a numbered label")
	}
}
