package timeline

import (
	"fmt"
	"image/color"
)

// layoutHeaders renders the fixed-width header column and handles its
// interactions: row click selects, the M/S/R boxes toggle their control and
// folder rows get an expand/collapse triangle. Only rows inside the
// vertical viewport are rendered or interacted with.
func layoutHeaders(ctx *Context, ev *Events, id ID, flat []FlatTrack, rect Rect, m Mapper, opt *Options) {
	th := ctx.Theme
	p := ctx.Painter
	p.PushClip(rect)
	defer p.PopClip()
	p.RectFilled(rect, 0, th.Background)

	for _, ft := range flat {
		rowY := m.RowY(ft.Index)
		if rowY+opt.TrackHeight < rect.Min.Y || rowY > rect.Max.Y {
			continue
		}
		row := Rct(rect.Min.X, rowY, rect.Max.X, rowY+opt.TrackHeight)
		hid := id.With("header").WithInt(ft.Index)
		t := ft.Track

		indent := float32(ft.Indent) * th.Spacing.LG
		barRect := Rct(row.Min.X+indent+th.Spacing.XS, row.Min.Y+th.Spacing.XS, row.Min.X+indent+th.Spacing.XS+4, row.Max.Y-th.Spacing.XS)

		// hit-test phase; buttons claim before the row body
		var collapse Rect
		if t.IsFolder {
			collapse = Rct(barRect.Max.X+th.Spacing.XS, row.Min.Y+th.Spacing.XS, barRect.Max.X+th.Spacing.XS+12, row.Min.Y+th.Spacing.XS+12)
			if ctx.Input.Interact(hid.With("fold"), collapse, SenseClick).Clicked {
				t.Collapsed = !t.Collapsed
				ev.TrackCollapseClicked.Set(ft.Index)
			}
		}
		btnSize := th.Spacing.XL - th.Spacing.XS
		btnY := row.Max.Y - btnSize - th.Spacing.SM
		btnX := barRect.Max.X + th.Spacing.SM
		var btnRects [3]Rect
		for i := range btnRects {
			btnRects[i] = Rct(btnX, btnY, btnX+btnSize, btnY+btnSize)
			btnX += btnSize + th.Spacing.XS
		}
		if ctx.Input.Interact(hid.With("mute"), btnRects[0], SenseClick).Clicked {
			t.Controls.Muted = !t.Controls.Muted
			ev.TrackMuteClicked.Set(ft.Index)
		}
		if ctx.Input.Interact(hid.With("solo"), btnRects[1], SenseClick).Clicked {
			t.Controls.Soloed = !t.Controls.Soloed
			ev.TrackSoloClicked.Set(ft.Index)
		}
		if ctx.Input.Interact(hid.With("arm"), btnRects[2], SenseClick).Clicked {
			t.Controls.Armed = !t.Controls.Armed
			ev.TrackArmClicked.Set(ft.Index)
		}
		if ctx.Input.Interact(hid, row, SenseClick).Clicked {
			t.Selected = !t.Selected
			ev.TrackClicked.Set(ft.Index)
		}

		// paint phase
		bg := th.Card
		if t.Selected {
			bg = th.Muted
		}
		p.RectFilled(row, 0, bg)
		p.Line(Pt(row.Min.X, row.Max.Y), Pt(row.Max.X, row.Max.Y), 1, th.Border)
		drawColorBar(p, barRect, ft, th)
		if t.IsFolder {
			drawFoldTriangle(p, collapse, t.Collapsed, th.MutedForeground)
		}
		nameX := barRect.Max.X + th.Spacing.SM
		if t.IsFolder {
			nameX = collapse.Max.X + th.Spacing.SM
		}
		name := t.Name
		if name == "" {
			name = fmt.Sprintf("Track %d", ft.Index+1)
		}
		p.Text(Pt(nameX, row.Min.Y+th.Spacing.SM), th.TextSize, name, th.Foreground)
		letters := [3]string{"M", "S", "R"}
		active := [3]bool{t.Controls.Muted, t.Controls.Soloed, t.Controls.Armed}
		colors := [3]color.NRGBA{th.Chart[3], th.Chart[1], th.Destructive}
		for i, r := range btnRects {
			fill := th.Muted
			fg := th.MutedForeground
			if active[i] {
				fill = colors[i]
				fg = th.Background
			}
			p.RectFilled(r, th.Spacing.CornerRadiusSmall, fill)
			p.Text(Pt(r.Min.X+(r.W()-th.TextSize*0.6)/2, r.Min.Y+(r.H()-th.TextSize)/2), th.TextSize*0.85, letters[i], fg)
		}
		if t.Selected {
			p.RectStroke(row, 0, 2, th.Primary)
		}
	}
}

// drawColorBar paints the vertical lineage gradient from the parent folder
// color down to the track's own color. The painter has no gradient op, so
// the bar is a short stack of lerped segments.
func drawColorBar(p Painter, r Rect, ft FlatTrack, th *Theme) {
	top := ft.ParentColor
	if top.A == 0 {
		top = th.Primary
	}
	bottom := ft.Track.Color
	if bottom.A == 0 {
		bottom = th.Primary
	}
	const steps = 8
	h := r.H() / steps
	for i := 0; i < steps; i++ {
		seg := Rct(r.Min.X, r.Min.Y+float32(i)*h, r.Max.X, r.Min.Y+float32(i+1)*h)
		p.RectFilled(seg, 0, lerpColor(top, bottom, (float32(i)+0.5)/steps))
	}
}

func drawFoldTriangle(p Painter, r Rect, collapsed bool, c color.NRGBA) {
	cx, cy := r.Center().X, r.Center().Y
	s := r.W() * 0.35
	if collapsed {
		p.ConvexPolygon([]Point{Pt(cx-s*0.6, cy-s), Pt(cx+s, cy), Pt(cx-s*0.6, cy+s)}, c)
	} else {
		p.ConvexPolygon([]Point{Pt(cx-s, cy-s*0.6), Pt(cx+s, cy-s*0.6), Pt(cx, cy+s)}, c)
	}
}
