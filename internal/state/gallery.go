package state

import (
	"fmt"
	"iter"
)

// Gallery is the ordered list of strokes drawn so far. Insertion order is
// draw order: later strokes are painted over earlier ones. It doubles as the
// undo history.
//
// Paths live in an arena keyed by StrokeID and the entry list only records
// handles, so the recorder can keep extending the last stroke's path while
// the gallery renders it.
//
// A Gallery is not safe for concurrent use; all calls are expected to come
// from the UI event goroutine.
type Gallery struct {
	entries []entry
	paths   map[StrokeID]*Path
	rev     revision

	// OnChange, if set, is called after every mutation.
	OnChange func()
}

type entry struct {
	id    StrokeID
	color Color
}

// NewGallery returns an empty gallery.
func NewGallery() *Gallery {
	return &Gallery{
		entries: make([]entry, 0),
		paths:   make(map[StrokeID]*Path),
	}
}

// Append adds a stroke with the given color and path to the end of the
// gallery and returns its handle.
func (g *Gallery) Append(c Color, p *Path) StrokeID {
	id := newStrokeID()
	g.entries = append(g.entries, entry{id: id, color: c})
	g.paths[id] = p
	g.changed()
	return id
}

// UpdateLast sets the color of the last stroke, which must be id.
func (g *Gallery) UpdateLast(id StrokeID, c Color) error {
	if len(g.entries) == 0 {
		return ErrEmpty
	}
	last := &g.entries[len(g.entries)-1]
	if last.id != id {
		return fmt.Errorf("update %s: %w", id, ErrStaleStroke)
	}
	last.color = c
	g.changed()
	return nil
}

// RemoveLast drops the most recent stroke. It reports false, and leaves the
// gallery untouched, when there is nothing to remove.
func (g *Gallery) RemoveLast() bool {
	n := len(g.entries)
	if n == 0 {
		return false
	}
	last := g.entries[n-1]
	g.entries[n-1] = entry{}
	g.entries = g.entries[:n-1]
	delete(g.paths, last.id)
	g.changed()
	return true
}

// Len returns the number of strokes.
func (g *Gallery) Len() int { return len(g.entries) }

// Empty reports whether there is nothing to undo.
func (g *Gallery) Empty() bool { return len(g.entries) == 0 }

// Path returns the path stored under id.
func (g *Gallery) Path(id StrokeID) (*Path, bool) {
	p, ok := g.paths[id]
	return p, ok
}

// Last returns the most recent stroke.
func (g *Gallery) Last() (Stroke, bool) {
	if len(g.entries) == 0 {
		return Stroke{}, false
	}
	return g.stroke(g.entries[len(g.entries)-1]), true
}

// All yields (draw index, stroke) pairs back to front. The sequence can be
// ranged over any number of times; the order only changes when the gallery
// is mutated.
func (g *Gallery) All() iter.Seq2[int, Stroke] {
	return func(yield func(int, Stroke) bool) {
		for i, e := range g.entries {
			if !yield(i, g.stroke(e)) {
				return
			}
		}
	}
}

// Revision increases on every mutation, including in-place growth of the
// path currently being drawn.
func (g *Gallery) Revision() uint64 { return uint64(g.rev) }

func (g *Gallery) stroke(e entry) Stroke {
	return Stroke{ID: e.id, Color: e.color, Path: g.paths[e.id]}
}

// touch records that the path behind id was extended in place.
func (g *Gallery) touch(id StrokeID) {
	if _, ok := g.paths[id]; ok {
		g.changed()
	}
}

func (g *Gallery) changed() {
	g.rev.tick()
	if g.OnChange != nil {
		g.OnChange()
	}
}
