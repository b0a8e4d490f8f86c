package timeline

// drawSnapGrid lays vertical guides across the whole track stack at every
// 1/subdivision beats. Measure boundaries draw strongest, beats lighter,
// subdivisions lightest.
func drawSnapGrid(ctx *Context, m Mapper, rect Rect, opt *Options) {
	th := ctx.Theme
	p := ctx.Painter
	p.PushClip(rect)
	defer p.PopClip()

	sub := opt.SnapGridSubdivision
	beatMin, beatMax := m.VisibleBeatRange()
	total := float32(opt.Measures * opt.BeatsPerMeasure)
	if beatMax > total {
		beatMax = total
	}
	step := 1 / float32(sub)
	measureAlpha := WithAlpha(th.Border, 110)
	beatAlpha := WithAlpha(th.Border, 70)
	subAlpha := WithAlpha(th.Border, 34)

	for i := int(beatMin / step); float32(i)*step <= beatMax; i++ {
		beat := float32(i) * step
		x := m.BeatToX(beat)
		if x < rect.Min.X-1 || x > rect.Max.X+1 {
			continue
		}
		c := subAlpha
		switch {
		case i%(sub*opt.BeatsPerMeasure) == 0:
			c = measureAlpha
		case i%sub == 0:
			c = beatAlpha
		}
		p.Line(Pt(x, rect.Min.Y), Pt(x, rect.Max.Y), 1, c)
	}
}
