package timeline

import (
	"fmt"
	"image/color"

	"github.com/velhot/arrangeview"
)

const (
	markerHitWidth   = 8 // px, point marker line and range edge handles
	rangeMarkerKinds = 3
	rangeLoop        = 0
	rangeSelection   = 1
	rangePunch       = 2
)

// layoutPointMarkers renders the cue/tempo/time-signature markers in the
// ruler, each kind in its own vertical third, and handles their drags.
// MarkerMoved reports on release, not while the drag is still running.
func layoutPointMarkers(ctx *Context, ev *Events, id ID, markers []arrangeview.Marker, ruler Rect, m Mapper, opt *Options) {
	th := ctx.Theme
	p := ctx.Painter
	p.PushClip(ruler)
	defer p.PopClip()
	third := ruler.H() / 3
	div := opt.snapDivision()

	for i := range markers {
		mk := &markers[i]
		x := m.BeatToX(mk.Position)
		if x < ruler.Min.X-markerHitWidth || x > ruler.Max.X+markerHitWidth {
			continue
		}
		bandTop := ruler.Min.Y + float32(mk.Kind)*third
		band := Rct(x-markerHitWidth/2, bandTop, x+markerHitWidth/2, bandTop+third)

		resp := ctx.Input.Interact(id.With("marker").WithInt(i), band, SenseDrag)
		if resp.Dragged {
			beat := m.XToBeat(resp.Pos.X)
			if !ctx.Input.Pointer().Mods.Contain(ModAlt) {
				beat = Snap(beat, div)
			}
			if beat < 0 {
				beat = 0
			}
			mk.Position = beat
			x = m.BeatToX(beat)
		}
		if resp.DragReleased {
			ev.MarkerMoved.Set(i)
		}

		c := markerColor(mk, th)
		p.Line(Pt(x, bandTop), Pt(x, bandTop+third), 1.5, c)
		p.CircleFilled(Pt(x, bandTop+3), 2.5, c)
		p.Text(Pt(x+th.Spacing.XS+2, bandTop), th.TextSize*0.75, markerLabel(mk), c)
	}
}

func markerColor(mk *arrangeview.Marker, th *Theme) color.NRGBA {
	if mk.HasColor() {
		return mk.Color
	}
	switch mk.Kind {
	case arrangeview.Tempo:
		return th.Chart[2]
	case arrangeview.TimeSignature:
		return th.Chart[4]
	default:
		return th.Secondary
	}
}

func markerLabel(mk *arrangeview.Marker) string {
	switch mk.Kind {
	case arrangeview.Tempo:
		return fmt.Sprintf("%g bpm", mk.BPM)
	case arrangeview.TimeSignature:
		return fmt.Sprintf("%d/%d", mk.Num, mk.Den)
	default:
		return mk.Label
	}
}

// layoutRangeMarkers handles the three range overlays spanning the track
// stack. The most recently touched range stays on top: hit-testing walks
// from the top of the z-order down, painting goes bottom up, and the top
// index persists between frames in the store.
func layoutRangeMarkers(ctx *Context, id ID, arr *arrangeview.Arrangement, lane Rect, m Mapper, opt *Options) {
	zKey := id.With("marker_z_order")
	top := StoreGet(ctx.Store, zKey, uint8(rangeLoop))
	if top >= rangeMarkerKinds {
		top = rangeLoop
	}

	ranges := [rangeMarkerKinds]*arrangeview.RangeMarker{&arr.Loop, &arr.Selection, &arr.Punch}
	order := zOrder(int(top)) // index 0 is topmost

	for _, kind := range order {
		if interactRange(ctx, id, kind, ranges[kind], lane, m, opt) {
			top = uint8(kind)
		}
	}
	for i := len(order) - 1; i >= 0; i-- {
		kind := order[i]
		paintRange(ctx, kind, ranges[kind], lane, m)
	}
	ctx.Store.Set(zKey, top)
}

// zOrder lists the range marker kinds topmost first: the current top, then
// the rest in their fixed order.
func zOrder(top int) []int {
	order := []int{top}
	for k := 0; k < rangeMarkerKinds; k++ {
		if k != top {
			order = append(order, k)
		}
	}
	return order
}

func rangeBand(kind int, lane Rect) Rect {
	h := lane.H()
	switch kind {
	case rangeSelection:
		return Rct(lane.Min.X, lane.Min.Y+h/3, lane.Max.X, lane.Min.Y+2*h/3)
	case rangePunch:
		return Rct(lane.Min.X, lane.Min.Y+h/2, lane.Max.X, lane.Max.Y)
	default:
		return Rct(lane.Min.X, lane.Min.Y, lane.Max.X, lane.Min.Y+h/2)
	}
}

// interactRange reports whether the user touched this range this frame.
func interactRange(ctx *Context, id ID, kind int, r *arrangeview.RangeMarker, lane Rect, m Mapper, opt *Options) bool {
	band := rangeBand(kind, lane)
	rid := id.With("range").WithInt(kind)
	x0 := m.BeatToX(r.Start)
	x1 := m.BeatToX(r.End)
	div := opt.snapDivision()
	touched := false

	snapBeat := func(beat float32) float32 {
		if ctx.Input.Pointer().Mods.Contain(ModAlt) {
			return beat
		}
		return Snap(beat, div)
	}

	if resp := ctx.Input.Interact(rid.With("start"), Rct(x0-markerHitWidth/2, band.Min.Y, x0+markerHitWidth/2, band.Max.Y), SenseDrag); resp.Dragged || resp.Clicked {
		if resp.Dragged {
			r.Start = maxf(0, snapBeat(m.XToBeat(resp.Pos.X)))
			r.Normalize()
		}
		touched = true
	} else if resp := ctx.Input.Interact(rid.With("end"), Rct(x1-markerHitWidth/2, band.Min.Y, x1+markerHitWidth/2, band.Max.Y), SenseDrag); resp.Dragged || resp.Clicked {
		if resp.Dragged {
			r.End = maxf(0, snapBeat(m.XToBeat(resp.Pos.X)))
			r.Normalize()
		}
		touched = true
	} else if resp := ctx.Input.Interact(rid, Rct(x0, band.Min.Y, x1, band.Max.Y), SenseClick|SenseDrag); resp.Dragged || resp.Clicked {
		if resp.Dragged {
			r.Shift(resp.DragDelta.X / m.BeatWidth)
		}
		touched = true
	}
	return touched
}

func paintRange(ctx *Context, kind int, r *arrangeview.RangeMarker, lane Rect, m Mapper) {
	th := ctx.Theme
	p := ctx.Painter
	band := rangeBand(kind, lane)
	x0 := m.BeatToX(r.Start)
	x1 := m.BeatToX(r.End)
	if x1 < lane.Min.X || x0 > lane.Max.X || r.Length() <= 0 {
		return
	}
	p.PushClip(lane)
	defer p.PopClip()

	var c color.NRGBA
	switch kind {
	case rangeSelection:
		c = th.Primary
	case rangePunch:
		c = th.Destructive
	default:
		c = th.Chart[3]
	}
	fill := Rct(x0, band.Min.Y, x1, band.Max.Y)
	p.RectFilled(fill, 0, WithAlpha(c, 40))
	if kind == rangePunch {
		dashedVLine(p, x0, band.Min.Y, band.Max.Y, c)
		dashedVLine(p, x1, band.Min.Y, band.Max.Y, c)
	} else {
		p.Line(Pt(x0, band.Min.Y), Pt(x0, band.Max.Y), 2, c)
		p.Line(Pt(x1, band.Min.Y), Pt(x1, band.Max.Y), 2, c)
	}
}

func dashedVLine(p Painter, x, y0, y1 float32, c color.NRGBA) {
	const dash, gap = 5, 4
	for y := y0; y < y1; y += dash + gap {
		end := y + dash
		if end > y1 {
			end = y1
		}
		p.Line(Pt(x, y), Pt(x, end), 2, c)
	}
}
