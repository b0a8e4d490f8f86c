package timeline

import (
	"fmt"
	"image/color"
	"math"

	"github.com/velhot/arrangeview"
)

const (
	edgeHitWidth   = 8  // px band inside each region edge
	fadeHitWidth   = 12 // px band centered on a fade endpoint
	edgeBarWidth   = 3  // px, drawn when selected
	regionPadY     = 2  // px between region body and row bounds
	fadeSamples    = 12
	waveColumnStep = 3 // px per waveform column
)

// layoutLane renders one track row: every region intersecting the visible
// beat range. Hit-testing runs first, in priority order (edges, fade
// handles, body), so the paint phase sees the already-updated geometry; the
// painter order stays back to front regardless. The empty-lane click is not
// claimed here: it runs after the overlay passes, so region bodies are the
// only lane allocations that sit above the range markers and the playhead.
func layoutLane(ctx *Context, ev *Events, id ID, ft FlatTrack, m Mapper, opt *Options) {
	row := m.RowRect(ft.Index)
	beatMin, beatMax := m.VisibleBeatRange()
	lid := laneID(id, ft.Index)

	for ri := range ft.Track.Regions {
		r := &ft.Track.Regions[ri]
		if r.End() < beatMin || r.Start > beatMax || r.Duration <= 0 {
			continue
		}
		interactRegion(ctx, ev, lid.WithInt(ri), ft.Index, ri, r, row, m, opt)
	}
	for ri := range ft.Track.Regions {
		r := &ft.Track.Regions[ri]
		if r.End() < beatMin || r.Start > beatMax || r.Duration <= 0 {
			continue
		}
		paintRegion(ctx, ft, r, row, m)
	}
}

func laneID(id ID, index int) ID {
	return id.With("lane").WithInt(index)
}

// interactRegion runs the hit-test ladder of a single region. The first
// allocation the host grants wins the pointer for this frame; the order
// below is the interaction priority.
func interactRegion(ctx *Context, ev *Events, rid ID, track, index int, r *arrangeview.Region, row Rect, m Mapper, opt *Options) {
	x0 := m.BeatToX(r.Start)
	x1 := m.BeatToX(r.End())
	top, bottom := row.Min.Y+regionPadY, row.Max.Y-regionPadY
	div := opt.snapDivision()
	minLen := div
	if minLen <= 0 {
		minLen = 1e-3
	}
	snapDrag := func(beat float32, mods Modifiers) float32 {
		if mods.Contain(ModAlt) { // Alt bypasses the grid
			return beat
		}
		return Snap(beat, div)
	}

	if r.Selected {
		if resp := ctx.Input.Interact(rid.With("edge0"), Rct(x0, top, x0+edgeHitWidth, bottom), SenseDrag); resp.Dragged {
			newStart := snapDrag(m.XToBeat(resp.Pos.X), ctx.Input.Pointer().Mods)
			newStart = clampf(newStart, 0, r.End()-minLen)
			r.Duration = r.End() - newStart
			r.Start = newStart
			r.ClampFades()
			ev.RegionEdgeDragged.Set(RegionEdgeDrag{Track: track, Region: index, Edge: EdgeStart, Beats: newStart})
			return
		}
		if resp := ctx.Input.Interact(rid.With("edge1"), Rct(x1-edgeHitWidth, top, x1, bottom), SenseDrag); resp.Dragged {
			newEnd := snapDrag(m.XToBeat(resp.Pos.X), ctx.Input.Pointer().Mods)
			if newEnd < r.Start+minLen {
				newEnd = r.Start + minLen
			}
			r.Duration = newEnd - r.Start
			r.ClampFades()
			ev.RegionEdgeDragged.Set(RegionEdgeDrag{Track: track, Region: index, Edge: EdgeEnd, Beats: newEnd})
			return
		}
		if r.Fades.FadeIn > 0 {
			fx := m.BeatToX(r.Start + r.Fades.FadeIn)
			if resp := ctx.Input.Interact(rid.With("fadein"), Rct(fx-fadeHitWidth/2, top, fx+fadeHitWidth/2, bottom), SenseDrag); resp.Dragged {
				fade := clampf(m.XToBeat(resp.Pos.X)-r.Start, 0, r.Duration-r.Fades.FadeOut)
				r.Fades.FadeIn = fade
				ev.FadeHandleDragged.Set(FadeDrag{Track: track, Region: index, Handle: FadeIn, Beats: fade})
				return
			}
		}
		if r.Fades.FadeOut > 0 {
			fx := m.BeatToX(r.End() - r.Fades.FadeOut)
			if resp := ctx.Input.Interact(rid.With("fadeout"), Rct(fx-fadeHitWidth/2, top, fx+fadeHitWidth/2, bottom), SenseDrag); resp.Dragged {
				fade := clampf(r.End()-m.XToBeat(resp.Pos.X), 0, r.Duration-r.Fades.FadeIn)
				r.Fades.FadeOut = fade
				ev.FadeHandleDragged.Set(FadeDrag{Track: track, Region: index, Handle: FadeOut, Beats: fade})
				return
			}
		}
	}

	body := Rct(x0, top, x1, bottom)
	resp := ctx.Input.Interact(rid, body, SenseClick|SenseDrag|SenseHover)
	switch {
	case resp.Dragged:
		newStart := m.XToBeat(resp.Pos.X - body.W()/2)
		newStart = snapDrag(newStart, ctx.Input.Pointer().Mods)
		if newStart < 0 {
			newStart = 0
		}
		r.Start = newStart
		ev.RegionBodyDragged.Set(RegionMove{Track: track, Region: index, Start: newStart})
	case resp.DoubleClicked:
		ev.RegionDoubleClicked.Set(RegionRef{Track: track, Region: index})
	case resp.Clicked:
		r.Selected = true
		ev.RegionClicked.Set(RegionRef{Track: track, Region: index})
	}
}

func paintRegion(ctx *Context, ft FlatTrack, r *arrangeview.Region, row Rect, m Mapper) {
	th := ctx.Theme
	p := ctx.Painter
	x0 := m.BeatToX(r.Start)
	x1 := m.BeatToX(r.End())
	body := Rct(x0, row.Min.Y+regionPadY, x1, row.Max.Y-regionPadY)
	clip := body.Intersect(m.Viewport)
	if clip.Empty() {
		return
	}
	p.PushClip(clip)
	defer p.PopClip()

	base := th.Primary
	switch {
	case r.HasColor():
		base = r.Color
	case ft.Track.HasColor():
		base = ft.Track.Color
	}
	alpha := uint8(200)
	if r.Muted {
		alpha = 70
	}
	p.RectFilled(body, th.Spacing.CornerRadiusSmall, WithAlpha(base, alpha))
	if r.Selected {
		p.RectStroke(body, th.Spacing.CornerRadiusSmall, 2, th.Primary)
	} else {
		p.RectStroke(body, th.Spacing.CornerRadiusSmall, 1, WithAlpha(th.Border, 160))
	}

	label := r.Name
	if g := r.GainDB(); r.Playback.Gain != 1 {
		if math.IsInf(g, -1) {
			label += " -∞dB"
		} else {
			label += fmt.Sprintf(" %+.1fdB", g)
		}
	}
	p.Text(Pt(body.Min.X+th.Spacing.SM, body.Min.Y+th.Spacing.XS), th.TextSize*0.85, label, th.Foreground)

	content := Rct(body.Min.X, body.Min.Y+th.TextSize+th.Spacing.SM, body.Max.X, body.Max.Y)
	switch r.Type {
	case arrangeview.Audio:
		paintWaveform(p, content, r, th)
	case arrangeview.MIDI:
		paintNotes(p, content, r, th)
	case arrangeview.Automation:
		paintAutomation(p, content, r, th)
	}

	if r.Fades.FadeIn > 0 {
		paintFade(p, body, m, r, FadeIn, th)
	}
	if r.Fades.FadeOut > 0 {
		paintFade(p, body, m, r, FadeOut, th)
	}

	if r.Selected {
		p.RectFilled(Rct(body.Min.X, body.Min.Y, body.Min.X+edgeBarWidth, body.Max.Y), 0, th.Primary)
		p.RectFilled(Rct(body.Max.X-edgeBarWidth, body.Min.Y, body.Max.X, body.Max.Y), 0, th.Primary)
		if r.Fades.FadeIn > 0 {
			p.CircleStroke(Pt(m.BeatToX(r.Start+r.Fades.FadeIn), body.Min.Y+4), 4, 1.5, th.Secondary)
		}
		if r.Fades.FadeOut > 0 {
			p.CircleStroke(Pt(m.BeatToX(r.End()-r.Fades.FadeOut), body.Min.Y+4), 4, 1.5, th.Secondary)
		}
	}
}

// paintWaveform draws min/max style peak columns; when the region has no
// peak data yet a deterministic synthetic envelope stands in so the region
// stays visually identifiable.
func paintWaveform(p Painter, content Rect, r *arrangeview.Region, th *Theme) {
	if content.Empty() {
		return
	}
	cols := int(content.W()/waveColumnStep) + 1
	peaks := arrangeview.PeakBins(r.Peaks, cols)
	if peaks == nil {
		peaks = arrangeview.SyntheticPeaks(cols)
	}
	peaks = arrangeview.ScalePeaks(peaks, r.Playback.Gain)
	midY := content.Center().Y
	maxH := content.H() / 2 * 0.9
	c := WithAlpha(th.Foreground, 150)
	for i, pk := range peaks {
		x := content.Min.X + float32(i*waveColumnStep) + 1
		h := pk * maxH
		if h < 0.5 {
			h = 0.5
		}
		p.Line(Pt(x, midY-h), Pt(x, midY+h), 1.5, c)
	}
}

// a fixed preview pattern for MIDI regions with no notes; key offsets and
// eighth-note starts, normalized to the region width when drawn
var previewNotes = []arrangeview.Note{
	{Key: 60, Start: 0, Duration: 0.5}, {Key: 64, Start: 0.5, Duration: 0.5},
	{Key: 67, Start: 1, Duration: 0.5}, {Key: 72, Start: 1.5, Duration: 0.5},
	{Key: 67, Start: 2, Duration: 0.5}, {Key: 64, Start: 2.5, Duration: 0.5},
	{Key: 60, Start: 3, Duration: 1},
}

func paintNotes(p Painter, content Rect, r *arrangeview.Region, th *Theme) {
	if content.Empty() {
		return
	}
	notes := r.Notes
	span := r.Duration
	if len(notes) == 0 {
		notes = previewNotes
		span = 4
	}
	lo, hi := notes[0].Key, notes[0].Key
	for _, n := range notes {
		if n.Key < lo {
			lo = n.Key
		}
		if n.Key > hi {
			hi = n.Key
		}
	}
	rows := float32(hi-lo) + 1
	noteH := content.H() / rows
	if noteH > 6 {
		noteH = 6
	}
	c := WithAlpha(th.Background, 190)
	for _, n := range notes {
		x0 := content.Min.X + n.Start/span*content.W()
		x1 := content.Min.X + (n.Start+n.Duration)/span*content.W()
		y := content.Max.Y - (float32(n.Key-lo)+1)/rows*content.H()
		p.RectFilled(Rct(x0+0.5, y, x1-0.5, y+noteH), 1, c)
	}
}

func paintAutomation(p Painter, content Rect, r *arrangeview.Region, th *Theme) {
	if content.Empty() {
		return
	}
	pts := r.Points
	if len(pts) == 0 {
		// synthetic sine preview
		pts = make([]arrangeview.AutomationPoint, 24)
		for i := range pts {
			t := float32(i) / float32(len(pts)-1)
			pts[i] = arrangeview.AutomationPoint{
				Beat:  t * r.Duration,
				Value: 0.5 + 0.4*float32(math.Sin(float64(t)*2*math.Pi)),
			}
		}
	}
	c := WithAlpha(th.Background, 220)
	var prev Point
	for i, ap := range pts {
		x := content.Min.X + ap.Beat/r.Duration*content.W()
		y := content.Max.Y - clampf(ap.Value, 0, 1)*content.H()
		cur := Pt(x, y)
		if i > 0 {
			p.Line(prev, cur, 1.5, c)
		}
		prev = cur
	}
	if len(r.Points) > 0 {
		for _, ap := range r.Points {
			x := content.Min.X + ap.Beat/r.Duration*content.W()
			y := content.Max.Y - clampf(ap.Value, 0, 1)*content.H()
			p.CircleFilled(Pt(x, y), 2.5, c)
		}
	}
}

// paintFade draws the gain ramp over a region head or tail: a 2px curve
// line plus a translucent fill over the attenuated corner.
func paintFade(p Painter, body Rect, m Mapper, r *arrangeview.Region, handle FadeHandle, th *Theme) {
	var xEdge, xEnd float32
	var curve arrangeview.FadeCurve
	if handle == FadeIn {
		xEdge = m.BeatToX(r.Start)
		xEnd = m.BeatToX(r.Start + r.Fades.FadeIn)
		curve = r.Fades.InCurve
	} else {
		xEdge = m.BeatToX(r.End())
		xEnd = m.BeatToX(r.End() - r.Fades.FadeOut)
		curve = r.Fades.OutCurve
	}
	line := make([]Point, 0, fadeSamples+1)
	for i := 0; i <= fadeSamples; i++ {
		t := float32(i) / fadeSamples
		gain := curve.Apply(t)
		x := xEdge + (xEnd-xEdge)*t
		y := body.Max.Y - gain*body.H()
		line = append(line, Pt(x, y))
	}
	// the region above the curve is non-convex for the s-curve, so the fill
	// goes down one trapezoid per sample step
	shade := color.NRGBA{R: 0, G: 0, B: 0, A: 70}
	for i := 1; i < len(line); i++ {
		a, b := line[i-1], line[i]
		p.ConvexPolygon([]Point{Pt(a.X, body.Min.Y), Pt(b.X, body.Min.Y), b, a}, shade)
	}
	for i := 1; i < len(line); i++ {
		p.Line(line[i-1], line[i], 2, th.Secondary)
	}
}
