package viewer

import (
	"image/color"

	"github.com/philipparndt/polypath/pkg/geometry"
)

// PrimitiveKind identifies a recorded drawing call
type PrimitiveKind int

const (
	PrimitiveCircle PrimitiveKind = iota
	PrimitiveLine
	PrimitiveText
)

// Primitive is one recorded drawing call. From is the circle center, the
// line start or the text anchor.
type Primitive struct {
	Kind  PrimitiveKind
	From  geometry.Point
	To    geometry.Point
	Size  float64 // circle radius or line width
	Text  string
	Color color.Color
}

// Painter receives replayed primitives
type Painter interface {
	FillCircle(center geometry.Point, radius float64, col color.Color)
	Line(from, to geometry.Point, width float64, col color.Color)
	Text(at geometry.Point, text string, col color.Color)
}

// DisplayList implements surface.Canvas by recording drawing calls. It suits
// immediate-mode toolkits that repaint every frame: the surface draws once
// per change and the frame loop replays the last flushed frame.
type DisplayList struct {
	pending []Primitive
	frame   []Primitive
}

// NewDisplayList creates an empty display list
func NewDisplayList() *DisplayList {
	return &DisplayList{}
}

// Clear starts a new frame
func (d *DisplayList) Clear() {
	d.pending = d.pending[:0]
}

// FillCircle records a filled disc
func (d *DisplayList) FillCircle(center geometry.Point, radius float64, col color.Color) {
	d.pending = append(d.pending, Primitive{Kind: PrimitiveCircle, From: center, Size: radius, Color: col})
}

// Line records a stroke
func (d *DisplayList) Line(from, to geometry.Point, width float64, col color.Color) {
	d.pending = append(d.pending, Primitive{Kind: PrimitiveLine, From: from, To: to, Size: width, Color: col})
}

// Text records a label
func (d *DisplayList) Text(at geometry.Point, text string, col color.Color) {
	d.pending = append(d.pending, Primitive{Kind: PrimitiveText, From: at, Text: text, Color: col})
}

// Flush publishes the frame drawn since the last Clear
func (d *DisplayList) Flush() {
	d.frame = append(d.frame[:0], d.pending...)
}

// Frame returns a copy of the last flushed frame
func (d *DisplayList) Frame() []Primitive {
	out := make([]Primitive, len(d.frame))
	copy(out, d.frame)
	return out
}

// Replay draws the last flushed frame onto p in recording order
func (d *DisplayList) Replay(p Painter) {
	for _, prim := range d.frame {
		switch prim.Kind {
		case PrimitiveCircle:
			p.FillCircle(prim.From, prim.Size, prim.Color)
		case PrimitiveLine:
			p.Line(prim.From, prim.To, prim.Size, prim.Color)
		case PrimitiveText:
			p.Text(prim.From, prim.Text, prim.Color)
		}
	}
}
