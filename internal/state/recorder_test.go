package state

import (
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecorder() (*Recorder, *Gallery) {
	g := NewGallery()
	return NewRecorder(g, nil), g
}

func TestRecorderCommandCount(t *testing.T) {
	for _, n := range []int{0, 1, 2, 17} {
		r, g := newTestRecorder()
		r.Start(Pt(3, 4), Palette[0])
		for i := 0; i < n; i++ {
			require.NoError(t, r.Extend(Pt(float64(i), float64(i*2))))
		}
		require.NoError(t, r.Finish(Palette[0]))

		last, ok := g.Last()
		require.True(t, ok)
		cmds := last.Path.Commands()
		require.Len(t, cmds, 1+n)
		assert.IsType(t, gg.MoveTo{}, cmds[0])
		for _, c := range cmds[1:] {
			assert.IsType(t, gg.QuadTo{}, c)
		}
	}
}

func TestRecorderMidpoint(t *testing.T) {
	r, g := newTestRecorder()
	r.Start(Pt(1.5, -7), Palette[0])
	require.NoError(t, r.Extend(Pt(4.25, 9)))

	last, _ := g.Last()
	q, ok := last.Path.Commands()[1].(gg.QuadTo)
	require.True(t, ok)
	assert.Equal(t, Pt(1.5, -7), q.Control)
	assert.Equal(t, Pt((1.5+4.25)/2, (-7+9)/2.0), q.Point)
}

func TestRecorderScenario(t *testing.T) {
	r, g := newTestRecorder()
	r.Start(Pt(0, 0), "#99AAB5")
	require.NoError(t, r.Extend(Pt(10, 10)))
	require.NoError(t, r.Extend(Pt(20, 0)))
	require.NoError(t, r.Finish("#405DE6"))

	require.Equal(t, 1, g.Len())
	s, _ := g.Last()
	assert.Equal(t, Color("#405DE6"), s.Color)
	assert.Equal(t, []gg.PathElement{
		gg.MoveTo{Point: Pt(0, 0)},
		gg.QuadTo{Control: Pt(0, 0), Point: Pt(5, 5)},
		gg.QuadTo{Control: Pt(10, 10), Point: Pt(15, 5)},
	}, s.Path.Commands())
}

func TestRecorderColorAtRelease(t *testing.T) {
	r, g := newTestRecorder()
	r.Start(Pt(0, 0), "#405DE6")
	s, _ := g.Last()
	assert.Equal(t, Color("#405DE6"), s.Color)

	require.NoError(t, r.Extend(Pt(1, 1)))
	require.NoError(t, r.Finish("#FD1D1D"))

	s, _ = g.Last()
	assert.Equal(t, Color("#FD1D1D"), s.Color)
}

func TestRecorderLiveUpdate(t *testing.T) {
	r, g := newTestRecorder()
	id := r.Start(Pt(0, 0), Palette[0])
	assert.True(t, r.Drawing())

	before := g.Revision()
	require.NoError(t, r.Extend(Pt(2, 2)))
	assert.Greater(t, g.Revision(), before)

	p, ok := g.Path(id)
	require.True(t, ok)
	assert.Equal(t, 2, p.Len())
}

func TestRecorderNotDrawing(t *testing.T) {
	r, g := newTestRecorder()
	assert.ErrorIs(t, r.Extend(Pt(1, 1)), ErrNotDrawing)
	assert.ErrorIs(t, r.Finish(Palette[0]), ErrNotDrawing)
	assert.Equal(t, 0, g.Len())

	r.Start(Pt(0, 0), Palette[0])
	require.NoError(t, r.Finish(Palette[0]))
	assert.False(t, r.Drawing())
	assert.ErrorIs(t, r.Extend(Pt(1, 1)), ErrNotDrawing)

	s, _ := g.Last()
	assert.Equal(t, 1, s.Path.Len())
}

func TestRecorderStartWhileDrawing(t *testing.T) {
	r, g := newTestRecorder()
	first := r.Start(Pt(0, 0), "#405DE6")
	second := r.Start(Pt(5, 5), "#4CAF50")
	require.NoError(t, r.Finish("#FFC20E"))

	require.Equal(t, 2, g.Len())
	var got []Stroke
	for _, s := range g.All() {
		got = append(got, s)
	}
	assert.Equal(t, first, got[0].ID)
	assert.Equal(t, Color("#405DE6"), got[0].Color)
	assert.Equal(t, second, got[1].ID)
	assert.Equal(t, Color("#FFC20E"), got[1].Color)
}

func TestRecorderFinishAfterUndo(t *testing.T) {
	r, g := newTestRecorder()
	r.Start(Pt(0, 0), Palette[0])
	require.True(t, g.RemoveLast())

	assert.ErrorIs(t, r.Finish(Palette[1]), ErrEmpty)
	assert.False(t, r.Drawing())
}

func TestRecorderCancelKeepsStartColor(t *testing.T) {
	r, g := newTestRecorder()
	r.Start(Pt(0, 0), "#6A0DAD")
	r.Cancel()
	r.Cancel()

	assert.False(t, r.Drawing())
	s, _ := g.Last()
	assert.Equal(t, Color("#6A0DAD"), s.Color)
}
