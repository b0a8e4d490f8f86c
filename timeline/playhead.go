package timeline

// layoutPlayhead draws the transport line across ruler and tracks and
// handles grabbing it. Dragging moves the playhead to the pointer,
// beat-snapped unless Alt is held, and reports the new position.
func layoutPlayhead(ctx *Context, ev *Events, id ID, playhead *float32, span Rect, m Mapper, opt *Options) {
	th := ctx.Theme
	p := ctx.Painter
	x := m.BeatToX(*playhead)

	grab := Rct(x-4, span.Min.Y, x+4, span.Max.Y)
	if resp := ctx.Input.Interact(id.With("playhead"), grab, SenseDrag); resp.Dragged {
		beat := m.XToBeat(resp.Pos.X)
		if !ctx.Input.Pointer().Mods.Contain(ModAlt) {
			beat = Snap(beat, opt.snapDivision())
		}
		if beat < 0 {
			beat = 0
		}
		if beat != *playhead {
			*playhead = beat
			ev.PlayheadMoved.Set(beat)
		}
		x = m.BeatToX(beat)
	}

	if x < span.Min.X-1 || x > span.Max.X+1 {
		return
	}
	c := opt.PlayheadColor
	if c.A == 0 {
		c = th.Secondary
	}
	p.PushClip(span)
	p.Line(Pt(x, span.Min.Y), Pt(x, span.Max.Y), 2, c)
	// grab cap in the ruler
	p.ConvexPolygon([]Point{
		Pt(x-5, span.Min.Y),
		Pt(x+5, span.Min.Y),
		Pt(x, span.Min.Y+8),
	}, c)
	p.PopClip()
}

// autoFollow nudges scroll.x so the playhead stays inside the band
// [margin, viewportW-margin] of the viewport, where margin is a fraction of
// the viewport width. Runs after momentum and before the final clamp so the
// follow target composes with both.
func autoFollow(s *ScrollState, playhead float32, lay Layout, opt *Options) {
	viewportW := lay.LaneRect.W()
	margin := opt.AutoFollowMargin * viewportW
	x := playhead * opt.BeatWidth // content space
	switch {
	case x < s.Offset.X+margin:
		s.Offset.X = x - margin
	case x > s.Offset.X+viewportW-margin:
		s.Offset.X = x - viewportW + margin
	}
	if s.Offset.X < 0 {
		s.Offset.X = 0
	}
}
