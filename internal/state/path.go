package state

import "github.com/gogpu/gg"

// Path is the vector outline of a single stroke: one move followed by
// line and quadratic curve commands.
type Path struct {
	p *gg.Path
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{p: gg.NewPath()}
}

// MoveTo places the pen at pt without drawing.
func (p *Path) MoveTo(pt Point) {
	p.p.MoveTo(pt.X, pt.Y)
}

// LineTo draws a straight segment to pt.
func (p *Path) LineTo(pt Point) {
	p.p.LineTo(pt.X, pt.Y)
}

// QuadTo draws a quadratic curve through ctrl ending at end.
func (p *Path) QuadTo(ctrl, end Point) {
	p.p.QuadraticTo(ctrl.X, ctrl.Y, end.X, end.Y)
}

// LastPoint returns the end point of the last command.
// ok is false for an empty path.
func (p *Path) LastPoint() (pt Point, ok bool) {
	if !p.p.HasCurrentPoint() {
		return Point{}, false
	}
	return p.p.CurrentPoint(), true
}

// Commands returns the recorded commands in order. The elements are
// gg.MoveTo, gg.LineTo and gg.QuadTo values.
func (p *Path) Commands() []gg.PathElement {
	return p.p.Elements()
}

// Len reports the number of commands.
func (p *Path) Len() int {
	return len(p.p.Elements())
}

// Bounds is the tight bounding box of the outline, zero for an empty path.
func (p *Path) Bounds() gg.Rect {
	return p.p.BoundingBox()
}
