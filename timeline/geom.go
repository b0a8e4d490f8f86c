package timeline

// The engine measures everything in float32 pixels; beats are converted at
// the lane boundary by the Mapper.

type (
	Point struct {
		X, Y float32
	}

	Rect struct {
		Min, Max Point
	}
)

func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

func Rct(x0, y0, x1, y1 float32) Rect {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return Rect{Min: Pt(x0, y0), Max: Pt(x1, y1)}
}

func (r Rect) W() float32 {
	return r.Max.X - r.Min.X
}

func (r Rect) H() float32 {
	return r.Max.Y - r.Min.Y
}

func (r Rect) Empty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

func (r Rect) Intersect(s Rect) Rect {
	if s.Min.X > r.Min.X {
		r.Min.X = s.Min.X
	}
	if s.Min.Y > r.Min.Y {
		r.Min.Y = s.Min.Y
	}
	if s.Max.X < r.Max.X {
		r.Max.X = s.Max.X
	}
	if s.Max.Y < r.Max.Y {
		r.Max.Y = s.Max.Y
	}
	return r
}

func (r Rect) Overlaps(s Rect) bool {
	return !r.Intersect(s).Empty()
}

func (r Rect) Translate(d Point) Rect {
	return Rect{Min: r.Min.Add(d), Max: r.Max.Add(d)}
}

func (r Rect) Center() Point {
	return Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}
