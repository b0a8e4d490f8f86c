package gioui

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"

	"github.com/velhot/arrangeview/timeline"
)

// Painter renders the engine's draw commands into a Gio op list. Rects are
// rounded to whole pixels the way the rest of the Gio ops are; the engine's
// alignment guarantees survive because every command rounds the same way.
type Painter struct {
	gtx    layout.Context
	shaper *text.Shaper
	clips  []clip.Stack
}

func NewPainter(gtx layout.Context, shaper *text.Shaper) *Painter {
	return &Painter{gtx: gtx, shaper: shaper}
}

func fpt(p timeline.Point) f32.Point {
	return f32.Pt(p.X, p.Y)
}

func circleRect(center timeline.Point, radius float32) image.Rectangle {
	return image.Rect(int(center.X-radius+0.5), int(center.Y-radius+0.5), int(center.X+radius+0.5), int(center.Y+radius+0.5))
}

func irect(r timeline.Rect) image.Rectangle {
	return image.Rect(int(r.Min.X+0.5), int(r.Min.Y+0.5), int(r.Max.X+0.5), int(r.Max.Y+0.5))
}

func (p *Painter) RectFilled(r timeline.Rect, radius float32, c color.NRGBA) {
	rr := clip.UniformRRect(irect(r), int(radius+0.5))
	paint.FillShape(p.gtx.Ops, c, rr.Op(p.gtx.Ops))
}

func (p *Painter) RectStroke(r timeline.Rect, radius, width float32, c color.NRGBA) {
	rr := clip.UniformRRect(irect(r), int(radius+0.5))
	paint.FillShape(p.gtx.Ops, c, clip.Stroke{Path: rr.Path(p.gtx.Ops), Width: width}.Op())
}

func (p *Painter) Line(a, b timeline.Point, width float32, c color.NRGBA) {
	var path clip.Path
	path.Begin(p.gtx.Ops)
	path.MoveTo(fpt(a))
	path.LineTo(fpt(b))
	paint.FillShape(p.gtx.Ops, c, clip.Stroke{Path: path.End(), Width: width}.Op())
}

func (p *Painter) CircleFilled(center timeline.Point, radius float32, c color.NRGBA) {
	paint.FillShape(p.gtx.Ops, c, clip.Ellipse(circleRect(center, radius)).Op(p.gtx.Ops))
}

func (p *Painter) CircleStroke(center timeline.Point, radius, width float32, c color.NRGBA) {
	path := clip.Ellipse(circleRect(center, radius)).Path(p.gtx.Ops)
	paint.FillShape(p.gtx.Ops, c, clip.Stroke{Path: path, Width: width}.Op())
}

func (p *Painter) ConvexPolygon(pts []timeline.Point, c color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	var path clip.Path
	path.Begin(p.gtx.Ops)
	path.MoveTo(fpt(pts[0]))
	for _, pt := range pts[1:] {
		path.LineTo(fpt(pt))
	}
	path.Close()
	paint.FillShape(p.gtx.Ops, c, clip.Outline{Path: path.End()}.Op())
}

func (p *Painter) Text(pos timeline.Point, size float32, s string, c color.NRGBA) {
	if s == "" || p.shaper == nil {
		return
	}
	defer op.Offset(image.Pt(int(pos.X+0.5), int(pos.Y+0.5))).Push(p.gtx.Ops).Pop()
	gtx := p.gtx
	gtx.Constraints.Min = image.Point{}
	gtx.Constraints.Max = image.Pt(1e6, 1e6)
	paint.ColorOp{Color: c}.Add(gtx.Ops)
	widget.Label{MaxLines: 1}.Layout(gtx, p.shaper, font.Font{}, unit.Sp(size), s, op.CallOp{})
}

func (p *Painter) PushClip(r timeline.Rect) {
	p.clips = append(p.clips, clip.Rect(irect(r)).Push(p.gtx.Ops))
}

func (p *Painter) PopClip() {
	if len(p.clips) == 0 {
		return
	}
	p.clips[len(p.clips)-1].Pop()
	p.clips = p.clips[:len(p.clips)-1]
}
