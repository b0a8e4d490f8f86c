package gioui

import (
	"time"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"

	"github.com/velhot/arrangeview/timeline"
)

type (
	// Host owns everything a timeline needs from Gio between frames: the
	// keyed store, the input adapter and the text shaper. One Host serves
	// any number of timelines in the same window.
	Host struct {
		Theme *timeline.Theme

		store  Store
		input  Input
		shaper *text.Shaper
		last   time.Time
	}

	// Store is the process-wide keyed state map.
	Store struct {
		m map[timeline.ID]any
	}
)

func (s *Store) Get(id timeline.ID) (any, bool) {
	v, ok := s.m[id]
	return v, ok
}

func (s *Store) Set(id timeline.ID, value any) {
	if s.m == nil {
		s.m = make(map[timeline.ID]any)
	}
	s.m[id] = value
}

func NewHost(theme *timeline.Theme, shaper *text.Shaper) *Host {
	return &Host{Theme: theme, shaper: shaper}
}

// Frame builds the engine context for one frame over the given rect. The
// returned context is valid until the frame's ops are submitted.
func (h *Host) Frame(gtx layout.Context, r timeline.Rect) *timeline.Context {
	h.input.Frame(gtx, h)
	h.input.RegisterArea(gtx, h, r)

	now := gtx.Now
	dt := float32(1.0 / 60)
	if !h.last.IsZero() {
		if d := now.Sub(h.last).Seconds(); d > 0 && d < 1 {
			dt = float32(d)
		}
	}
	h.last = now

	return &timeline.Context{
		Painter: NewPainter(gtx, h.shaper),
		Input:   &h.input,
		Store:   &h.store,
		Theme:   h.Theme,
		Now:     float64(now.UnixNano()) / 1e9,
		DT:      dt,
		Repaint: func() {
			gtx.Execute(op.InvalidateCmd{})
		},
	}
}
