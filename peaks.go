package arrangeview

import (
	"math"

	"github.com/viterin/vek/vek32"
)

// PeakBins reduces a peak/sample array to bins column maxima for waveform
// drawing: bin i covers the samples [i*n/bins, (i+1)*n/bins) and holds the
// largest absolute value of that span. Returns nil when there is nothing to
// reduce.
func PeakBins(samples []float32, bins int) []float32 {
	if bins <= 0 || len(samples) == 0 {
		return nil
	}
	abs := vek32.Abs(samples)
	out := make([]float32, bins)
	for i := range out {
		lo := i * len(abs) / bins
		hi := (i + 1) * len(abs) / bins
		if hi <= lo {
			if lo < len(abs) {
				out[i] = abs[lo]
			}
			continue
		}
		out[i] = vek32.Max(abs[lo:hi])
	}
	return out
}

// ScalePeaks returns peaks scaled by gain and clamped to [0,1], leaving the
// input untouched.
func ScalePeaks(peaks []float32, gain float32) []float32 {
	if len(peaks) == 0 {
		return nil
	}
	out := vek32.MulNumber(peaks, gain)
	for i, v := range out {
		if v > 1 {
			out[i] = 1
		}
	}
	return out
}

// SyntheticPeaks is the deterministic preview envelope drawn for audio
// regions whose peak data has not been loaded yet: a sine-modulated comb
// that makes the region visually identifiable without pretending to be real
// audio. Same bins always yields the same envelope.
func SyntheticPeaks(bins int) []float32 {
	if bins <= 0 {
		return nil
	}
	out := make([]float32, bins)
	for i := range out {
		t := float64(i)
		fast := math.Abs(math.Sin(t * 0.61))
		slow := 0.55 + 0.45*math.Sin(t*0.13)
		out[i] = float32(0.15 + 0.8*fast*slow)
	}
	return out
}
