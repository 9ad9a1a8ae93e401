package state

import (
	"errors"
	"image/color"

	"github.com/gogpu/gg"
	"github.com/google/uuid"
)

var (
	// ErrNotDrawing is returned by Extend and Finish when no stroke is in progress.
	ErrNotDrawing = errors.New("no stroke in progress")
	// ErrEmpty is returned when an operation needs a last stroke and the gallery has none.
	ErrEmpty = errors.New("gallery is empty")
	// ErrStaleStroke is returned when a stroke handle no longer names the last entry.
	ErrStaleStroke = errors.New("stroke is not the last gallery entry")
)

// Point is a position on the board in board coordinates.
type Point = gg.Point

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return gg.Pt(x, y) }

// Color is a "#RRGGBB" hex value.
type Color string

// RGBA converts the hex value to a color usable by image and canvas code.
func (c Color) RGBA() color.Color {
	return gg.Hex(string(c)).Color()
}

// StrokeID is the handle of a stroke in the gallery.
type StrokeID uuid.UUID

func newStrokeID() StrokeID { return StrokeID(uuid.New()) }

func (id StrokeID) String() string { return uuid.UUID(id).String() }

// Stroke is one continuous drag drawn in a single color.
// Path is shared with the recorder while the stroke is in progress;
// readers must not mutate it.
type Stroke struct {
	ID    StrokeID
	Color Color
	Path  *Path
}
