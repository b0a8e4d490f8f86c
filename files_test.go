package arrangeview_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/velhot/arrangeview"
)

func testArrangement() arrangeview.Arrangement {
	return arrangeview.Arrangement{
		Name: "roundtrip",
		BPM:  128,
		Tracks: []arrangeview.Track{
			{
				Name:     "drums",
				IsFolder: true,
				Children: []arrangeview.Track{
					{
						Name: "kick",
						Regions: []arrangeview.Region{
							{
								Name:     "kick loop",
								Start:    0,
								Duration: 8,
								Type:     arrangeview.Audio,
								Fades:    arrangeview.Fades{FadeIn: 1, OutCurve: arrangeview.SCurve},
								Playback: arrangeview.DefaultPlayback(),
								Peaks:    []float32{0.25, 0.5, 1},
							},
						},
					},
				},
			},
			{
				Name: "bass",
				Regions: []arrangeview.Region{
					{
						Name:     "bassline",
						Start:    4,
						Duration: 16,
						Type:     arrangeview.MIDI,
						Playback: arrangeview.DefaultPlayback(),
						Notes:    []arrangeview.Note{{Key: 36, Start: 0, Duration: 1, Velocity: 100}},
					},
				},
			},
		},
		Markers: []arrangeview.Marker{
			{Position: 0, Kind: arrangeview.Tempo, BPM: 128},
			{Position: 8, Kind: arrangeview.Cue, Label: "drop"},
		},
		Loop:     arrangeview.RangeMarker{Start: 0, End: 8},
		Playhead: 2,
	}
}

func TestArrangementYamlRoundTrip(t *testing.T) {
	original := testArrangement()
	var buf bytes.Buffer
	if err := original.Write(&buf); err != nil {
		t.Fatalf("cannot write arrangement: %v", err)
	}
	read, err := arrangeview.Read(&buf)
	if err != nil {
		t.Fatalf("cannot read arrangement back: %v", err)
	}
	if !reflect.DeepEqual(read, original) {
		t.Fatalf("round trip changed the arrangement\ngot      %#v\nexpected %#v", read, original)
	}
}

func TestReadJSON(t *testing.T) {
	a, err := arrangeview.Read(strings.NewReader(`{"Name":"from json","BPM":90,"Playhead":4}`))
	if err != nil {
		t.Fatalf("cannot read json arrangement: %v", err)
	}
	if a.Name != "from json" || a.BPM != 90 || a.Playhead != 4 {
		t.Errorf("unexpected arrangement: %+v", a)
	}
}

func TestReadClampsInvalidValues(t *testing.T) {
	src := "loop: {start: 9, end: 3}\nplayhead: -5\ntracks:\n  - regions:\n      - {start: -2, duration: 0, type: 0}\n"
	a, err := arrangeview.Read(strings.NewReader(src))
	if err != nil {
		t.Fatalf("cannot read arrangement: %v", err)
	}
	if a.Loop.Start > a.Loop.End {
		t.Error("loop range not normalized on read")
	}
	if a.Playhead != 0 {
		t.Errorf("playhead: got %v, expected 0", a.Playhead)
	}
	r := a.Tracks[0].Regions[0]
	if r.Start != 0 || r.Duration <= 0 {
		t.Errorf("region not clamped on read: start %v duration %v", r.Start, r.Duration)
	}
}

func TestReadGarbage(t *testing.T) {
	if _, err := arrangeview.Read(strings.NewReader("{invalid")); err == nil {
		t.Fatal("expected an error for garbage input")
	}
}
