// Package render rasterizes a gallery of strokes into an image using the
// gg software renderer.
package render

import (
	"fmt"
	"image"
	"log/slog"

	"FreehandBoard/internal/state"

	"github.com/gogpu/gg"
)

// Surface is the drawing target of the board. It redraws the whole gallery
// back to front whenever the gallery revision changes.
//
// A Surface is not safe for concurrent use.
type Surface struct {
	dc          *gg.Context
	scale       float64
	strokeWidth float64
	background  gg.RGBA
	log         *slog.Logger

	img   image.Image
	rev   uint64
	valid bool
}

// NewSurface returns a w x h surface. Strokes are drawn strokeWidth pixels
// wide on a background given as a hex color.
func NewSurface(w, h int, strokeWidth float64, background string, log *slog.Logger) *Surface {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	w, h = clampSize(w, h)
	return &Surface{
		dc:          gg.NewContext(w, h),
		scale:       1,
		strokeWidth: strokeWidth,
		background:  gg.Hex(background),
		log:         log.With("component", "surface"),
	}
}

// Size returns the surface dimensions in pixels.
func (s *Surface) Size() (w, h int) {
	return s.dc.Width(), s.dc.Height()
}

// Resize reallocates the surface when the size changes. Sizes below one
// pixel are raised to one.
func (s *Surface) Resize(w, h int) {
	w, h = clampSize(w, h)
	if w == s.dc.Width() && h == s.dc.Height() {
		return
	}
	if err := s.dc.Close(); err != nil {
		s.log.Warn("closing old context", "err", err)
	}
	s.dc = gg.NewContext(w, h)
	s.valid = false
	s.log.Debug("resized", "width", w, "height", h)
}

// SetScale sets the number of pixels per board unit. Board coordinates and
// the stroke width are multiplied by it.
func (s *Surface) SetScale(f float64) {
	if f <= 0 || f == s.scale {
		return
	}
	s.scale = f
	s.valid = false
}

// Draw paints every stroke of g in draw order and returns the frame. An
// unchanged gallery returns the previous frame.
func (s *Surface) Draw(g *state.Gallery) (image.Image, error) {
	if s.valid && s.rev == g.Revision() {
		return s.img, nil
	}
	s.dc.ClearWithColor(s.background)
	s.dc.Identity()
	s.dc.Scale(s.scale, s.scale)

	w, h := s.Size()
	view := gg.Rect{Min: gg.Pt(0, 0), Max: gg.Pt(float64(w)/s.scale, float64(h)/s.scale)}
	for i, st := range g.All() {
		if !s.visible(st.Path, view) {
			continue
		}
		if err := s.stroke(st); err != nil {
			return nil, fmt.Errorf("draw stroke %d (%s): %w", i, st.ID, err)
		}
	}

	s.img = s.dc.Image()
	s.rev = g.Revision()
	s.valid = true
	return s.img, nil
}

func (s *Surface) stroke(st state.Stroke) error {
	s.dc.ClearPath()
	for _, el := range st.Path.Commands() {
		switch e := el.(type) {
		case gg.MoveTo:
			s.dc.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			s.dc.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			s.dc.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		}
	}
	s.dc.SetColor(st.Color.RGBA())
	s.dc.SetLineWidth(s.strokeWidth)
	s.dc.SetLineCap(gg.LineCapRound)
	s.dc.SetLineJoin(gg.LineJoinRound)
	return s.dc.Stroke()
}

// visible reports whether a path has something to draw inside view. A lone
// move draws nothing.
func (s *Surface) visible(p *state.Path, view gg.Rect) bool {
	if p == nil || p.Len() < 2 {
		return false
	}
	b := p.Bounds()
	pad := s.strokeWidth
	return b.Max.X+pad >= view.Min.X && b.Min.X-pad <= view.Max.X &&
		b.Max.Y+pad >= view.Min.Y && b.Min.Y-pad <= view.Max.Y
}

func clampSize(w, h int) (int, int) {
	return max(w, 1), max(h, 1)
}
