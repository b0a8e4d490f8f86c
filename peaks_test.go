package arrangeview_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/velhot/arrangeview"
)

func TestPeakBins(t *testing.T) {
	samples := []float32{0.5, -1, 0.25, 0.125}
	got := arrangeview.PeakBins(samples, 2)
	expected := []float32{1, 0.25}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("got %v, expected %v", got, expected)
	}
	if samples[1] != -1 {
		t.Error("input samples were mutated")
	}
}

func TestPeakBinsMoreBinsThanSamples(t *testing.T) {
	got := arrangeview.PeakBins([]float32{0.5, 0.25}, 4)
	if len(got) != 4 {
		t.Fatalf("got %d bins, expected 4", len(got))
	}
	for _, v := range got {
		if v < 0 || v > 1 {
			t.Errorf("bin out of range: %v", v)
		}
	}
}

func TestPeakBinsEmpty(t *testing.T) {
	if arrangeview.PeakBins(nil, 8) != nil {
		t.Error("expected nil for empty samples")
	}
	if arrangeview.PeakBins([]float32{1}, 0) != nil {
		t.Error("expected nil for zero bins")
	}
}

func TestScalePeaks(t *testing.T) {
	in := []float32{0.4, 0.6}
	got := arrangeview.ScalePeaks(in, 2)
	if math.Abs(float64(got[0]-0.8)) > 1e-6 || got[1] != 1 {
		t.Errorf("got %v, expected [0.8 1]", got)
	}
	if in[0] != 0.4 || in[1] != 0.6 {
		t.Error("input peaks were mutated")
	}
	if zeros := arrangeview.ScalePeaks(in, 0); zeros[0] != 0 || zeros[1] != 0 {
		t.Errorf("gain 0: got %v, expected zeros", zeros)
	}
}

func TestSyntheticPeaksDeterministic(t *testing.T) {
	a := arrangeview.SyntheticPeaks(64)
	b := arrangeview.SyntheticPeaks(64)
	if !reflect.DeepEqual(a, b) {
		t.Error("synthetic peaks differ between calls")
	}
	if len(a) != 64 {
		t.Fatalf("got %d bins, expected 64", len(a))
	}
	for i, v := range a {
		if v <= 0 || v > 1 {
			t.Errorf("bin %d out of (0,1]: %v", i, v)
		}
	}
}
