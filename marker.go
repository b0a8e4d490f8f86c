package arrangeview

import "image/color"

type (
	// Marker is a single-position overlay rendered in the time ruler. The
	// payload depends on Kind: cues carry a label, tempo markers a BPM and
	// time signature markers a numerator/denominator pair.
	Marker struct {
		Position float32     // beats, >= 0
		Kind     MarkerKind  `yaml:"kind"`
		Label    string      `yaml:",omitempty"`
		BPM      float32     `yaml:",omitempty"`
		Num      int         `yaml:",omitempty"`
		Den      int         `yaml:",omitempty"`
		Color    color.NRGBA `yaml:",flow,omitempty"`
	}

	MarkerKind int

	// RangeMarker is a [Start, End] span in beats shared by the loop,
	// selection and punch overlays. Start <= End holds after every mutation;
	// an inverted range is swapped, never rejected.
	RangeMarker struct {
		Start float32
		End   float32
	}
)

const (
	Cue MarkerKind = iota
	Tempo
	TimeSignature
)

func (m *Marker) HasColor() bool {
	return m.Color.A > 0
}

// Normalize swaps an inverted range in place and returns the marker.
func (r *RangeMarker) Normalize() {
	if r.Start > r.End {
		r.Start, r.End = r.End, r.Start
	}
}

func (r RangeMarker) Length() float32 {
	if r.End < r.Start {
		return r.Start - r.End
	}
	return r.End - r.Start
}

func (r RangeMarker) Contains(beat float32) bool {
	lo, hi := r.Start, r.End
	if lo > hi {
		lo, hi = hi, lo
	}
	return beat >= lo && beat <= hi
}

// Shift moves both endpoints by the same delta, keeping the start at or
// above zero.
func (r *RangeMarker) Shift(delta float32) {
	r.Normalize()
	if r.Start+delta < 0 {
		delta = -r.Start
	}
	r.Start += delta
	r.End += delta
}
