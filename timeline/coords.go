package timeline

import "math"

// Mapper converts between model time (beats) and screen space (pixels) for
// one frame. It is a value: build it from the solved layout and the current
// scroll offset, use it, throw it away.
type Mapper struct {
	ContentOrigin Point // screen position of the content (0,0): lane rect corner
	Scroll        Point
	BeatWidth     float32
	RowHeight     float32
	Viewport      Rect    // the lane viewport in screen space
	Margin        float32 // culling slack, beats
}

func (m Mapper) BeatToX(beat float32) float32 {
	return m.ContentOrigin.X + beat*m.BeatWidth - m.Scroll.X
}

// XToBeat maps a screen x to beats, clamped to >= 0.
func (m Mapper) XToBeat(x float32) float32 {
	beat := (x - m.ContentOrigin.X + m.Scroll.X) / m.BeatWidth
	if beat < 0 || math.IsNaN(float64(beat)) {
		return 0
	}
	return beat
}

// RowIndexAt maps a screen y to a flat track row index; results outside the
// flat list are the caller's problem, negatives included.
func (m Mapper) RowIndexAt(y float32) int {
	return int(floor32((y - m.ContentOrigin.Y + m.Scroll.Y) / m.RowHeight))
}

func (m Mapper) RowY(row int) float32 {
	return m.ContentOrigin.Y + float32(row)*m.RowHeight - m.Scroll.Y
}

func (m Mapper) RowRect(row int) Rect {
	y := m.RowY(row)
	return Rct(m.Viewport.Min.X, y, m.Viewport.Max.X, y+m.RowHeight)
}

// Snap rounds a beat to the nearest multiple of division; a division of
// zero or less snaps nothing.
func Snap(beat, division float32) float32 {
	if division <= 0 {
		return beat
	}
	return float32(math.Round(float64(beat/division))) * division
}

// VisibleBeatRange is the culling window: the beats covered by the viewport
// widened by the margin on both sides. The lower bound never goes below
// zero.
func (m Mapper) VisibleBeatRange() (min, max float32) {
	min = m.XToBeat(m.Viewport.Min.X) - m.Margin
	max = m.XToBeat(m.Viewport.Max.X) + m.Margin
	if min < 0 {
		min = 0
	}
	return min, max
}

func floor32(v float32) float32 {
	return float32(math.Floor(float64(v)))
}
