package timeline

import "math"

type (
	// ScrollState is the per-timeline scroll offset plus the momentum
	// integrator. The offset is persisted under the timeline id; the
	// momentum part is temporary state that dies with the process.
	ScrollState struct {
		Offset        Point
		Velocity      Point // pixels/second
		LastFrameTime float64
		Animating     bool
	}
)

const (
	wheelGain   = 8.0
	dragGain    = 0.3
	minVelocity = 5.0 // px/s; below this momentum stops
)

// Fling replaces the current velocity and starts animating. New input while
// animating overwrites the old velocity rather than accumulating into it.
func (s *ScrollState) Fling(v Point) {
	s.Velocity = v
	s.Animating = true
}

// Step advances the momentum integration by dt seconds: the offset moves by
// velocity*dt and the velocity decays exponentially. Once the speed drops
// under minVelocity the state goes idle and velocity snaps to zero.
func (s *ScrollState) Step(dt, damping float32) {
	if !s.Animating || dt <= 0 {
		return
	}
	s.Offset = s.Offset.Add(s.Velocity.Mul(dt))
	decay := float32(math.Exp(float64(-damping * dt)))
	s.Velocity = s.Velocity.Mul(decay)
	if speed(s.Velocity) < minVelocity {
		s.Velocity = Point{}
		s.Animating = false
	}
}

// Clamp pulls the offset into [0, max] on both axes. Velocity is left
// alone; the offset just freezes against the bound while the remaining
// momentum decays.
func (s *ScrollState) Clamp(max Point) {
	s.Offset.X = clampf(s.Offset.X, 0, max.X)
	s.Offset.Y = clampf(s.Offset.Y, 0, max.Y)
}

// handleScrollInput integrates this frame's wheel and middle-mouse input
// into the scroll state. Wheel deltas land on the offset immediately;
// momentum, when enabled, continues the motion after the input stops.
func handleScrollInput(ctx *Context, id ID, s *ScrollState, viewport Rect, opt *Options) {
	resp := ctx.Input.Interact(id.With("scroll"), viewport, SenseHover|SenseMiddleDrag)
	ptr := ctx.Input.Pointer()
	dt := ctx.DT
	if dt <= 0 {
		dt = 1.0 / 60
	}
	if resp.Hovered && (ptr.Scroll.X != 0 || ptr.Scroll.Y != 0) {
		delta := ptr.Scroll
		if ptr.Mods.Contain(ModShift) {
			delta.X, delta.Y = delta.Y, delta.X
		}
		s.Offset = s.Offset.Add(delta)
		if opt.MomentumScrolling {
			s.Fling(delta.Mul(wheelGain / dt))
		}
	}
	if resp.Dragged && (resp.DragDelta.X != 0 || resp.DragDelta.Y != 0) {
		// grab-pan: content follows the pointer
		s.Offset = s.Offset.Sub(resp.DragDelta)
		if opt.MomentumScrolling {
			s.Fling(resp.DragDelta.Mul(-dragGain / dt))
		} else {
			s.Velocity = Point{}
			s.Animating = false
		}
	}
	s.Step(dt, opt.MomentumDamping)
	if s.Animating {
		ctx.RequestRepaint()
	}
}

func speed(v Point) float64 {
	return math.Hypot(float64(v.X), float64(v.Y))
}

func clampf(v, lo, hi float32) float32 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
