package arrangeview

type (
	// Arrangement is the caller-owned model of a timeline: the track tree,
	// the point markers in the ruler, the three range markers spanning the
	// track stack, and the transport playhead. The timeline engine borrows
	// it mutably for the duration of one frame and writes edits back; the
	// caller stays authoritative and may validate or veto any edit it is
	// told about through the returned events.
	Arrangement struct {
		Name      string  `yaml:",omitempty"`
		BPM       float64 `yaml:",omitempty"`
		Tracks    []Track `yaml:",omitempty"`
		Markers   []Marker
		Loop      RangeMarker `yaml:",flow"`
		Selection RangeMarker `yaml:",flow"`
		Punch     RangeMarker `yaml:",flow"`

		// Playhead is the transport position in beats, >= 0.
		Playhead float32
	}
)

func (a *Arrangement) Copy() Arrangement {
	tracks := make([]Track, len(a.Tracks))
	for i, t := range a.Tracks {
		tracks[i] = t.Copy()
	}
	markers := make([]Marker, len(a.Markers))
	copy(markers, a.Markers)
	ret := *a
	ret.Tracks = tracks
	ret.Markers = markers
	return ret
}

// Clamp normalizes every invariant the model carries: range markers are
// swapped into start <= end order, fades are clamped to the region length
// and the playhead is kept non-negative. Out-of-range values are never an
// error; they are pulled back to the nearest valid state.
func (a *Arrangement) Clamp() {
	a.Loop.Normalize()
	a.Selection.Normalize()
	a.Punch.Normalize()
	if a.Playhead < 0 {
		a.Playhead = 0
	}
	for i := range a.Tracks {
		a.Tracks[i].clamp()
	}
}
