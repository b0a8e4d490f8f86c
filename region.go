package arrangeview

import (
	"image/color"
	"math"
)

type (
	// Region is a clip placed on a track lane, bounded by
	// [Start, Start+Duration] in beats. The content payload depends on Type:
	// audio regions carry peak samples, MIDI regions carry notes and
	// automation regions carry points. An empty payload is not an error; the
	// renderer substitutes a deterministic synthetic preview.
	Region struct {
		Name     string      `yaml:",omitempty"`
		Start    float32     // beats, >= 0
		Duration float32     // beats, > 0
		Type     RegionType  `yaml:"type"`
		Color    color.NRGBA `yaml:",flow,omitempty"`
		Selected bool        `yaml:",omitempty"`
		Muted    bool        `yaml:",omitempty"`
		Fades    Fades       `yaml:",omitempty"`
		Playback Playback    `yaml:",omitempty"`

		Peaks  []float32         `yaml:",flow,omitempty"` // audio
		Notes  []Note            `yaml:",omitempty"`      // midi
		Points []AutomationPoint `yaml:",flow,omitempty"` // automation
	}

	RegionType int

	// Fades describe the gain ramps over the head and tail of a region, in
	// beats. FadeIn + FadeOut never exceeds the region duration; mutations
	// clamp rather than reject.
	Fades struct {
		FadeIn   float32   `yaml:",omitempty"`
		FadeOut  float32   `yaml:",omitempty"`
		InCurve  FadeCurve `yaml:",omitempty"`
		OutCurve FadeCurve `yaml:",omitempty"`
	}

	// Playback are the non-destructive playback parameters of a region.
	Playback struct {
		Gain         float32 `yaml:",omitempty"` // linear, >= 0
		TimeStretch  float32 `yaml:",omitempty"` // [0.25, 4]
		PitchShift   float32 `yaml:",omitempty"` // semitones, [-24, 24]
		Reversed     bool    `yaml:",omitempty"`
		SourceOffset float32 `yaml:",omitempty"` // beats into the source, >= 0
	}

	// FadeCurve shapes a fade; applied to normalized t in [0,1] it returns
	// a gain factor in [0,1].
	FadeCurve int

	// Note is a single MIDI note inside a region, with Start relative to the
	// region start.
	Note struct {
		Key      int     // MIDI note number
		Start    float32 // beats from region start
		Duration float32 // beats
		Velocity int
	}

	// AutomationPoint is one breakpoint of an automation region; Value is
	// normalized to [0,1].
	AutomationPoint struct {
		Beat  float32 // beats from region start
		Value float32
	}
)

const (
	Audio RegionType = iota
	MIDI
	Automation
)

const (
	Linear FadeCurve = iota
	Exponential
	Logarithmic
	SCurve
)

// Apply evaluates the curve at normalized position t, clamped to [0,1].
func (c FadeCurve) Apply(t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	switch c {
	case Exponential:
		return t * t
	case Logarithmic:
		return float32(math.Sqrt(float64(t)))
	case SCurve:
		return t * t * (3 - 2*t)
	default:
		return t
	}
}

func (c FadeCurve) String() string {
	switch c {
	case Exponential:
		return "exponential"
	case Logarithmic:
		return "logarithmic"
	case SCurve:
		return "s-curve"
	default:
		return "linear"
	}
}

// DefaultPlayback returns the neutral playback parameters: unity gain, no
// stretch, no shift.
func DefaultPlayback() Playback {
	return Playback{Gain: 1, TimeStretch: 1}
}

func (r *Region) Copy() Region {
	peaks := make([]float32, len(r.Peaks))
	copy(peaks, r.Peaks)
	notes := make([]Note, len(r.Notes))
	copy(notes, r.Notes)
	points := make([]AutomationPoint, len(r.Points))
	copy(points, r.Points)
	ret := *r
	ret.Peaks = peaks
	ret.Notes = notes
	ret.Points = points
	return ret
}

// End returns the exclusive end of the region in beats.
func (r *Region) End() float32 {
	return r.Start + r.Duration
}

func (r *Region) HasColor() bool {
	return r.Color.A > 0
}

// GainDB returns the region gain in decibels for display. A gain of zero or
// less is -Inf dB.
func (r *Region) GainDB() float64 {
	if r.Playback.Gain <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(float64(r.Playback.Gain))
}

// Clamp pulls every region parameter back into its valid range: position and
// duration first, then fades against the (possibly shortened) duration, then
// the playback parameters.
func (r *Region) Clamp() {
	if r.Start < 0 {
		r.Start = 0
	}
	if r.Duration <= 0 {
		r.Duration = minRegionDuration
	}
	r.ClampFades()
	if r.Playback == (Playback{}) { // zero value means unset, not silence
		r.Playback = DefaultPlayback()
	}
	r.Playback.Clamp()
}

// ClampFades enforces FadeIn + FadeOut <= Duration, shrinking the fade-out
// first since the most recent edit usually grew the fade-in.
func (r *Region) ClampFades() {
	if r.Fades.FadeIn < 0 {
		r.Fades.FadeIn = 0
	}
	if r.Fades.FadeOut < 0 {
		r.Fades.FadeOut = 0
	}
	if r.Fades.FadeIn > r.Duration {
		r.Fades.FadeIn = r.Duration
	}
	if r.Fades.FadeIn+r.Fades.FadeOut > r.Duration {
		r.Fades.FadeOut = r.Duration - r.Fades.FadeIn
	}
}

func (p *Playback) Clamp() {
	if p.Gain < 0 {
		p.Gain = 0
	}
	if p.TimeStretch != 0 {
		p.TimeStretch = clamp32(p.TimeStretch, 0.25, 4)
	}
	p.PitchShift = clamp32(p.PitchShift, -24, 24)
	if p.SourceOffset < 0 {
		p.SourceOffset = 0
	}
}

const minRegionDuration = 1e-3

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
