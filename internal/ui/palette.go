package ui

import (
	"image/color"

	"FreehandBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const swatchSize = 32

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    state.Color
	Selected bool
	OnTapped func(state.Color)
}

func newColorSwatch(c state.Color, tapped func(state.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	fill := canvas.NewCircle(s.Color.RGBA())

	// white ring inside the selected swatch
	ring := canvas.NewCircle(color.Transparent)
	ring.StrokeColor = color.White
	ring.StrokeWidth = 2
	ring.Hidden = !s.Selected

	return &swatchRenderer{swatch: s, fill: fill, ring: ring}
}

// Tapped selects the swatch color. The selected swatch ignores taps.
func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.Selected || s.OnTapped == nil {
		return
	}
	s.OnTapped(s.Color)
}

type swatchRenderer struct {
	swatch *colorSwatch
	fill   *canvas.Circle
	ring   *canvas.Circle
}

func (r *swatchRenderer) Layout(size fyne.Size) {
	r.fill.Resize(size)
	r.ring.Move(fyne.NewPos(2, 2))
	r.ring.Resize(size.SubtractWidthHeight(4, 4))
}

func (r *swatchRenderer) MinSize() fyne.Size {
	return fyne.NewSize(swatchSize, swatchSize)
}

func (r *swatchRenderer) Refresh() {
	r.fill.FillColor = r.swatch.Color.RGBA()
	r.ring.Hidden = !r.swatch.Selected
	canvas.Refresh(r.swatch)
}

func (r *swatchRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.fill, r.ring}
}

func (r *swatchRenderer) Destroy() {}

// Palette is the row of color swatches. It owns no color state of its own;
// the selection is shared with the board.
type Palette struct {
	selection *state.Selection
	swatches  []*colorSwatch
	content   fyne.CanvasObject

	// OnSelected is called after the selection changed.
	OnSelected func(state.Color)
}

func NewPalette(sel *state.Selection) *Palette {
	p := &Palette{selection: sel}
	row := container.NewHBox()
	for _, c := range state.Palette {
		sw := newColorSwatch(c, p.Select)
		sw.Selected = c == sel.Color()
		p.swatches = append(p.swatches, sw)
		row.Add(sw)
	}
	p.content = container.NewHScroll(row)
	return p
}

// Select makes c the stroke color and updates the swatch rings.
func (p *Palette) Select(c state.Color) {
	if !p.selection.Select(c) {
		return
	}
	for _, sw := range p.swatches {
		if sel := sw.Color == c; sel != sw.Selected {
			sw.Selected = sel
			sw.Refresh()
		}
	}
	if p.OnSelected != nil {
		p.OnSelected(c)
	}
}

// Content returns the canvas object to place in a layout.
func (p *Palette) Content() fyne.CanvasObject {
	return p.content
}
