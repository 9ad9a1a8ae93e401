package ui

import (
	"errors"
	"image"
	"log/slog"

	"FreehandBoard/internal/render"
	"FreehandBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// BoardWidget is the drawing canvas. Pointer or touch down starts a stroke,
// dragging extends it and release finishes it.
type BoardWidget struct {
	widget.BaseWidget
	gallery   *state.Gallery
	recorder  *state.Recorder
	selection *state.Selection
	surface   *render.Surface
	log       *slog.Logger

	// OnDrawingChanged is called when a stroke starts or ends.
	OnDrawingChanged func(drawing bool)
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ mobile.Touchable = (*BoardWidget)(nil)

func NewBoardWidget(g *state.Gallery, sel *state.Selection, surface *render.Surface, log *slog.Logger) *BoardWidget {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	b := &BoardWidget{
		gallery:   g,
		recorder:  state.NewRecorder(g, log),
		selection: sel,
		surface:   surface,
		log:       log.With("component", "board"),
	}
	b.ExtendBaseWidget(b)
	return b
}

// Drawing reports whether a stroke is in progress.
func (b *BoardWidget) Drawing() bool {
	return b.recorder.Drawing()
}

// CancelStroke ends a stroke in progress without waiting for release.
func (b *BoardWidget) CancelStroke() {
	if !b.recorder.Drawing() {
		return
	}
	b.recorder.Cancel()
	b.drawingChanged(false)
}

func (b *BoardWidget) begin(pos fyne.Position) {
	b.recorder.Start(toPoint(pos), b.selection.Color())
	b.drawingChanged(true)
}

func (b *BoardWidget) end() {
	if !b.recorder.Drawing() {
		return
	}
	if err := b.recorder.Finish(b.selection.Color()); err != nil {
		b.log.Debug("finish stroke", "err", err)
	}
	b.drawingChanged(false)
}

func (b *BoardWidget) drawingChanged(drawing bool) {
	if b.OnDrawingChanged != nil {
		b.OnDrawingChanged(drawing)
	}
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.begin(e.Position)
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.end()
	}
}

func (b *BoardWidget) TouchDown(e *mobile.TouchEvent) {
	b.begin(e.Position)
}

func (b *BoardWidget) TouchUp(*mobile.TouchEvent) {
	b.end()
}

func (b *BoardWidget) TouchCancel(*mobile.TouchEvent) {
	b.CancelStroke()
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if err := b.recorder.Extend(toPoint(e.Position)); err != nil && !errors.Is(err, state.ErrNotDrawing) {
		b.log.Debug("extend stroke", "err", err)
	}
}

func (b *BoardWidget) DragEnd() {
	b.end()
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseOut()                      {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.raster = canvas.NewRaster(r.draw)
	return r
}

func toPoint(p fyne.Position) state.Point {
	return state.Pt(float64(p.X), float64(p.Y))
}

type boardWidgetRenderer struct {
	board  *BoardWidget
	raster *canvas.Raster
	last   image.Image
}

// draw is the raster generator. w and h are in device pixels, which differ
// from the widget size on scaled displays.
func (r *boardWidgetRenderer) draw(w, h int) image.Image {
	b := r.board
	if size := b.Size(); size.Width > 0 {
		b.surface.SetScale(float64(w) / float64(size.Width))
	}
	b.surface.Resize(w, h)
	img, err := b.surface.Draw(b.gallery)
	if err != nil {
		b.log.Error("render gallery", "err", err)
		if r.last != nil {
			return r.last
		}
		return image.NewRGBA(image.Rect(0, 0, w, h))
	}
	r.last = img
	return img
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.raster}
}

func (r *boardWidgetRenderer) Refresh() {
	r.raster.Refresh()
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.raster.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardWidgetRenderer) Destroy() {}
