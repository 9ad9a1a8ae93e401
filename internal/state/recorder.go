package state

import (
	"fmt"
	"log/slog"
)

// Recorder turns a stream of pointer samples into one smoothed path per
// stroke and keeps the gallery's last entry in sync while drawing.
//
// Each sample is not drawn to directly. The previous sample becomes the
// control point of a quadratic curve ending halfway to the new sample, which
// lags one sample behind the pointer but removes the corners a plain
// polyline would show.
type Recorder struct {
	gallery *Gallery
	log     *slog.Logger

	active  StrokeID
	path    *Path
	color   Color
	drawing bool
}

// NewRecorder returns a recorder appending to g. A nil logger discards output.
func NewRecorder(g *Gallery, log *slog.Logger) *Recorder {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Recorder{gallery: g, log: log.With("component", "recorder")}
}

// Drawing reports whether a stroke is in progress.
func (r *Recorder) Drawing() bool { return r.drawing }

// Start begins a stroke at pt drawn with c and appends it to the gallery.
// A stroke still in progress is finished first with its own color.
func (r *Recorder) Start(pt Point, c Color) StrokeID {
	if r.drawing {
		r.log.Debug("start while drawing, closing previous stroke", "stroke", r.active)
		r.Cancel()
	}
	p := NewPath()
	p.MoveTo(pt)

	r.path = p
	r.color = c
	r.active = r.gallery.Append(c, p)
	r.drawing = true
	r.log.Debug("stroke started", "stroke", r.active, "x", pt.X, "y", pt.Y, "color", c)
	return r.active
}

// Extend adds the sample pt to the stroke in progress.
func (r *Recorder) Extend(pt Point) error {
	if !r.drawing {
		return ErrNotDrawing
	}
	last, ok := r.path.LastPoint()
	if !ok {
		return fmt.Errorf("extend %s: %w", r.active, ErrNotDrawing)
	}
	mid := Pt((last.X+pt.X)/2, (last.Y+pt.Y)/2)
	r.path.QuadTo(last, mid)
	r.gallery.touch(r.active)
	return nil
}

// Finish ends the stroke in progress and recolors it with c, the color
// selected at release time.
func (r *Recorder) Finish(c Color) error {
	if !r.drawing {
		return ErrNotDrawing
	}
	id := r.active
	r.reset()
	if err := r.gallery.UpdateLast(id, c); err != nil {
		return fmt.Errorf("finish stroke: %w", err)
	}
	r.log.Debug("stroke finished", "stroke", id, "color", c)
	return nil
}

// Cancel ends the stroke in progress keeping the color it started with.
func (r *Recorder) Cancel() {
	if !r.drawing {
		return
	}
	if err := r.Finish(r.color); err != nil {
		r.log.Debug("cancel stroke", "err", err)
	}
}

func (r *Recorder) reset() {
	r.drawing = false
	r.path = nil
	r.active = StrokeID{}
	r.color = ""
}
