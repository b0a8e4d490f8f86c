package timeline

import (
	"github.com/velhot/arrangeview"
)

type (
	// Timeline is the entry point of the engine: one instance per on-screen
	// timeline, identified by a stable id that also namespaces its
	// persisted state in the host store. Show must not be re-entered with
	// the same id; distinct ids are fully independent.
	Timeline struct {
		ID      ID
		Options Options
	}

	// momentumState is the temp half of the scroll state; the offset itself
	// is persisted separately so a host can serialize it.
	momentumState struct {
		Velocity      Point
		LastFrameTime float64
		Animating     bool
	}
)

func New(name string) *Timeline {
	return &Timeline{ID: NewID(name), Options: DefaultOptions()}
}

// Show runs one frame: solves the layout, renders ruler, headers, lanes and
// overlays in painter order, routes all interactions and writes the edits
// into the borrowed arrangement. It returns the summary of what the user
// did. The call never panics on out-of-range input; bad values are clamped
// and ill-formed rows skipped.
func (t *Timeline) Show(ctx *Context, avail Rect, arr *arrangeview.Arrangement) Events {
	var ev Events
	if ctx == nil || arr == nil || avail.Empty() {
		return ev
	}
	opt := t.Options
	opt.sanitize()

	scrollKey := t.ID.With("timeline_scroll")
	momentumKey := t.ID.With("momentum")
	mom := StoreGet(ctx.Store, momentumKey, momentumState{})
	scroll := ScrollState{
		Offset:        StoreGet(ctx.Store, scrollKey, Point{}),
		Velocity:      mom.Velocity,
		LastFrameTime: mom.LastFrameTime,
		Animating:     mom.Animating,
	}

	flat := Flatten(arr.Tracks)
	lay := SolveLayout(avail, &opt, len(flat))

	if beat, ok := opt.ScrollToBeat.Unpack(); ok {
		scroll.Offset.X = beat * opt.BeatWidth
		t.Options.ScrollToBeat.Clear() // one-shot
	}
	scroll.Clamp(lay.MaxScroll)

	m := Mapper{
		ContentOrigin: lay.LaneRect.Min,
		Scroll:        scroll.Offset,
		BeatWidth:     opt.BeatWidth,
		RowHeight:     opt.TrackHeight,
		Viewport:      lay.LaneRect,
		Margin:        opt.VisibleRenderMargin,
	}

	p := ctx.Painter
	p.PushClip(avail)
	p.RectFilled(avail, 0, ctx.Theme.Background)

	// corner spacer + ruler row
	p.RectFilled(lay.CornerRect, 0, ctx.Theme.Card)
	drawRuler(ctx, m, lay.RulerRect, &opt)

	layoutHeaders(ctx, &ev, t.ID, flat, lay.HeaderRect, m, &opt)

	p.PushClip(lay.LaneRect)
	for _, ft := range flat {
		rowY := m.RowY(ft.Index)
		if rowY+opt.TrackHeight < lay.LaneRect.Min.Y || rowY > lay.LaneRect.Max.Y {
			continue
		}
		if _, ok := TrackAt(arr.Tracks, ft.Path); !ok {
			continue // the tree changed under us; skip the row
		}
		layoutLane(ctx, &ev, t.ID, ft, m, &opt)
	}
	if len(flat) == 0 {
		msg := opt.EmptyMessage
		if msg == "" {
			msg = "No tracks"
		}
		center := lay.LaneRect.Center()
		p.Text(Pt(center.X-float32(len(msg))*ctx.Theme.TextSize*0.25, center.Y), ctx.Theme.TextSize, msg, ctx.Theme.MutedForeground)
	}
	p.PopClip()

	// overlays, back to front
	if len(arr.Markers) > 0 {
		layoutPointMarkers(ctx, &ev, t.ID, arr.Markers, lay.RulerRect, m, &opt)
	}
	if opt.ShowSnapGrid {
		drawSnapGrid(ctx, m, lay.LaneRect, &opt)
	}
	layoutRangeMarkers(ctx, t.ID, arr, lay.LaneRect, m, &opt)
	if opt.ShowPlayhead {
		span := Rct(lay.RulerRect.Min.X, lay.RulerRect.Min.Y, lay.LaneRect.Max.X, lay.LaneRect.Max.Y)
		layoutPlayhead(ctx, &ev, t.ID, &arr.Playhead, span, m, &opt)
	}
	p.PopClip()

	// empty-lane clicks claim last: range handles and the playhead stay
	// grabbable over region-free row space, region bodies still win theirs
	for _, ft := range flat {
		rowY := m.RowY(ft.Index)
		if rowY+opt.TrackHeight < lay.LaneRect.Min.Y || rowY > lay.LaneRect.Max.Y {
			continue
		}
		lid := laneID(t.ID, ft.Index)
		if resp := ctx.Input.Interact(lid, m.RowRect(ft.Index), SenseClick); resp.Clicked {
			ev.EmptyClicked.Set(EmptyClick{Track: ft.Index, Beat: m.XToBeat(resp.Pos.X)})
		}
	}

	// scroll input integrates after the layers: every layer mapped through
	// this frame's offset, the updated one reaches them on the next repaint
	handleScrollInput(ctx, t.ID, &scroll, lay.LaneRect, &opt)
	if opt.AutoFollowPlayhead {
		autoFollow(&scroll, arr.Playhead, lay, &opt)
	}
	scroll.Clamp(lay.MaxScroll)
	scroll.LastFrameTime = ctx.Now

	ctx.Store.Set(scrollKey, scroll.Offset)
	ctx.Store.Set(momentumKey, momentumState{
		Velocity:      scroll.Velocity,
		LastFrameTime: scroll.LastFrameTime,
		Animating:     scroll.Animating,
	})
	return ev
}
