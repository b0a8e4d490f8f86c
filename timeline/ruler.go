package timeline

import "fmt"

// drawRuler emits one tick per beat and a heavier tick plus a
// "measure.beat" label per measure, clipped to the ruler rect. Stateless;
// the scroll offset is already baked into the mapper.
func drawRuler(ctx *Context, m Mapper, rect Rect, opt *Options) {
	th := ctx.Theme
	p := ctx.Painter
	p.PushClip(rect)
	defer p.PopClip()
	p.RectFilled(rect, 0, th.Card)
	p.Line(Pt(rect.Min.X, rect.Max.Y), Pt(rect.Max.X, rect.Max.Y), 1, th.Border)

	beatMin, beatMax := visibleRulerBeats(m, rect, opt)
	for beat := beatMin; beat <= beatMax; beat++ {
		x := m.BeatToX(float32(beat))
		if x < rect.Min.X-1 || x > rect.Max.X+1 {
			continue
		}
		measureTick := beat%opt.BeatsPerMeasure == 0
		if measureTick {
			p.Line(Pt(x, rect.Min.Y+rect.H()*0.35), Pt(x, rect.Max.Y), 1.5, th.Foreground)
			label := fmt.Sprintf("%d.%d", beat/opt.BeatsPerMeasure+1, beat%opt.BeatsPerMeasure+1)
			p.Text(Pt(x+th.Spacing.XS+1, rect.Min.Y+th.Spacing.XS), th.TextSize*0.85, label, th.MutedForeground)
		} else {
			p.Line(Pt(x, rect.Min.Y+rect.H()*0.65), Pt(x, rect.Max.Y), 1, th.MutedForeground)
		}
	}
}

func visibleRulerBeats(m Mapper, rect Rect, opt *Options) (int, int) {
	min := int(m.XToBeat(rect.Min.X)) - 1
	max := int(m.XToBeat(rect.Max.X)) + 1
	if min < 0 {
		min = 0
	}
	total := opt.Measures * opt.BeatsPerMeasure
	if max > total {
		max = total
	}
	return min, max
}
