package gioui

import (
	"time"

	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"

	"github.com/velhot/arrangeview/timeline"
)

// Input adapts Gio pointer events to the engine's hit-test contract. One
// root event area covers the whole timeline; the adapter routes the pointer
// itself, granting it to the first Interact allocation whose rect contains
// it and keeping a started drag captured by its id until release. That
// keeps the engine's interaction-priority order authoritative instead of
// Gio's hit tree.
type Input struct {
	ptr timeline.Pointer

	captured     timeline.ID
	capturing    bool
	dragDelta    timeline.Point
	pressed      bool // press happened this frame, not yet claimed
	pressPrimary bool // button state at press time; a queued release may
	pressMiddle  bool // have cleared the live pointer state already
	released     bool // release happened this frame
	doubleClick  bool
	lastClick    time.Time
	lastClickPos timeline.Point
}

const doubleClickWindow = 400 * time.Millisecond

// Frame drains the pointer events addressed to the root area and resets the
// per-frame claim bookkeeping. Call once per frame, before the engine runs.
func (in *Input) Frame(gtx layout.Context, tag event.Tag) {
	in.ptr.Scroll = timeline.Point{}
	in.ptr.DoubleClicked = false
	in.pressed = false
	in.released = false
	in.doubleClick = false
	in.dragDelta = timeline.Point{}

	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target:  tag,
			Kinds:   pointer.Press | pointer.Release | pointer.Drag | pointer.Move | pointer.Scroll | pointer.Cancel,
			ScrollX: pointer.ScrollRange{Min: -500, Max: 500},
			ScrollY: pointer.ScrollRange{Min: -500, Max: 500},
		})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		pos := timeline.Pt(e.Position.X, e.Position.Y)
		in.ptr.Mods = convertMods(e.Modifiers)
		switch e.Kind {
		case pointer.Press:
			in.ptr.Pos = pos
			in.ptr.Primary = e.Buttons.Contain(pointer.ButtonPrimary)
			in.ptr.Middle = e.Buttons.Contain(pointer.ButtonTertiary)
			in.pressed = true
			in.pressPrimary = in.ptr.Primary
			in.pressMiddle = in.ptr.Middle
			now := time.Now()
			if now.Sub(in.lastClick) < doubleClickWindow && near(pos, in.lastClickPos, 4) {
				in.doubleClick = true
				in.ptr.DoubleClicked = true
			}
			in.lastClick = now
			in.lastClickPos = pos
		case pointer.Drag, pointer.Move:
			in.dragDelta = in.dragDelta.Add(pos.Sub(in.ptr.Pos))
			in.ptr.Pos = pos
		case pointer.Release, pointer.Cancel:
			in.ptr.Pos = pos
			in.ptr.Primary = false
			in.ptr.Middle = false
			in.released = true
		case pointer.Scroll:
			in.ptr.Pos = pos
			in.ptr.Scroll = in.ptr.Scroll.Add(timeline.Pt(e.Scroll.X, e.Scroll.Y))
		}
	}
}

// RegisterArea declares the root hit area; call while the clip of the
// timeline rect is on the op stack.
func (in *Input) RegisterArea(gtx layout.Context, tag event.Tag, r timeline.Rect) {
	defer clip.Rect(irect(r)).Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, tag)
}

func (in *Input) Pointer() timeline.Pointer {
	return in.ptr
}

func (in *Input) Interact(id timeline.ID, r timeline.Rect, sense timeline.Sense) (resp timeline.Response) {
	resp.Pos = in.ptr.Pos
	wantsDrag := sense.Has(timeline.SenseDrag) || sense.Has(timeline.SenseMiddleDrag)

	if in.capturing {
		if in.captured != id {
			return resp
		}
		if wantsDrag {
			resp.Dragged = true
			resp.DragDelta = in.dragDelta
		}
		if in.released {
			resp.DragReleased = true
			in.capturing = false
		}
		return resp
	}

	if !r.Contains(in.ptr.Pos) {
		return resp
	}
	if sense.Has(timeline.SenseHover) {
		resp.Hovered = true
	}
	if !in.pressed {
		return resp
	}
	primary := in.pressPrimary
	middle := in.pressMiddle
	claims := (primary && (sense.Has(timeline.SenseClick) || sense.Has(timeline.SenseDrag))) ||
		(middle && sense.Has(timeline.SenseMiddleDrag))
	if !claims {
		return resp
	}
	in.pressed = false // first allocation wins the press
	if in.doubleClick && sense.Has(timeline.SenseClick) {
		resp.DoubleClicked = true
	} else if sense.Has(timeline.SenseClick) && primary {
		resp.Clicked = true
	}
	if wantsDrag {
		resp.DragStarted = true
		// a release drained in the same frame ends the drag right here; a
		// capture would go stale once Frame resets the release flag
		if in.released {
			resp.DragReleased = true
		} else {
			in.captured = id
			in.capturing = true
		}
	}
	return resp
}

func convertMods(m key.Modifiers) timeline.Modifiers {
	var out timeline.Modifiers
	if m.Contain(key.ModShift) {
		out |= timeline.ModShift
	}
	if m.Contain(key.ModCtrl) {
		out |= timeline.ModCtrl
	}
	if m.Contain(key.ModAlt) {
		out |= timeline.ModAlt
	}
	return out
}

func near(a, b timeline.Point, d float32) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx+dy*dy <= d*d
}
