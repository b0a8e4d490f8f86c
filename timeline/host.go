package timeline

import "image/color"

type (
	// Painter is the draw-command sink the engine renders into. Commands are
	// emitted back to front in painter order; the host rasterizes them in
	// call order. Clip rects nest as a stack.
	Painter interface {
		RectFilled(r Rect, radius float32, c color.NRGBA)
		RectStroke(r Rect, radius, width float32, c color.NRGBA)
		Line(a, b Point, width float32, c color.NRGBA)
		CircleFilled(center Point, radius float32, c color.NRGBA)
		CircleStroke(center Point, radius, width float32, c color.NRGBA)
		ConvexPolygon(pts []Point, c color.NRGBA)
		Text(pos Point, size float32, s string, c color.NRGBA)
		PushClip(r Rect)
		PopClip()
	}

	// Pointer is the per-frame input snapshot.
	Pointer struct {
		Pos           Point
		Primary       bool  // primary button held
		Middle        bool  // middle button held
		DoubleClicked bool  // primary double click happened this frame
		Scroll        Point // wheel delta in pixels, positive scrolls content right/down
		Mods          Modifiers
	}

	Modifiers uint8

	// Sense is what an interaction allocation wants to observe.
	Sense uint8

	// Response is the host's answer to one hit-test allocation.
	Response struct {
		Clicked       bool
		DoubleClicked bool
		Dragged       bool
		DragStarted   bool
		DragReleased  bool
		Hovered       bool
		DragDelta     Point
		Pos           Point // pointer position, valid when any flag is set
	}

	// Input resolves hit-test allocations against the frame's pointer state.
	//
	// The engine calls Interact in interaction-priority order; the host must
	// grant the pointer to the first allocation whose rect contains it and
	// keep a started drag captured by its id until release, even when the
	// pointer leaves the rect. Allocations after the winning one read an
	// empty Response for the rest of the frame.
	Input interface {
		Pointer() Pointer
		Interact(id ID, r Rect, sense Sense) Response
	}

	// Store is the process-wide keyed state the host retains between frames.
	// The engine only touches keys derived from its own root id.
	Store interface {
		Get(id ID) (any, bool)
		Set(id ID, value any)
	}

	// Context carries the host capabilities for one frame. The engine runs
	// to completion inside a single synchronous call; nothing in Context may
	// be retained past it.
	Context struct {
		Painter Painter
		Input   Input
		Store   Store
		Theme   *Theme
		Now     float64 // seconds since epoch
		DT      float32 // seconds since previous frame
		Repaint func()  // schedule another frame; used while momentum animates
	}
)

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
)

const (
	SenseHover Sense = 1 << iota
	SenseClick
	SenseDrag
	SenseMiddleDrag
)

func (m Modifiers) Contain(mods Modifiers) bool {
	return m&mods == mods
}

func (s Sense) Has(sense Sense) bool {
	return s&sense != 0
}

// RequestRepaint asks the host for another frame, when the host gave us a
// way to do so.
func (ctx *Context) RequestRepaint() {
	if ctx.Repaint != nil {
		ctx.Repaint()
	}
}

// StoreGet reads a typed value from the store, falling back to def when the
// key is missing or holds a different type.
func StoreGet[T any](s Store, id ID, def T) T {
	if v, ok := s.Get(id); ok {
		if t, ok := v.(T); ok {
			return t
		}
	}
	return def
}
