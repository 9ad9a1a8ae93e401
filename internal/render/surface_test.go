package render

import (
	"image"
	"image/color"
	"testing"

	"FreehandBoard/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nrgba(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func drawLine(r *state.Recorder, c state.Color, from, to state.Point) {
	r.Start(from, c)
	_ = r.Extend(to)
	_ = r.Extend(to)
	_ = r.Extend(to)
	_ = r.Finish(c)
}

func TestSurfaceEmptyIsBackground(t *testing.T) {
	s := NewSurface(40, 30, 2, "#FFFFFF", nil)
	img, err := s.Draw(state.NewGallery())
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 40, 30), img.Bounds())
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, nrgba(img, 20, 15))
}

func TestSurfaceDrawsStrokeColor(t *testing.T) {
	g := state.NewGallery()
	r := state.NewRecorder(g, nil)
	drawLine(r, "#FD1D1D", state.Pt(5, 20), state.Pt(75, 20))

	s := NewSurface(80, 40, 6, "#FFFFFF", nil)
	img, err := s.Draw(g)
	require.NoError(t, err)

	px := nrgba(img, 40, 20)
	assert.InDelta(t, 0xFD, px.R, 3)
	assert.InDelta(t, 0x1D, px.G, 3)
	assert.InDelta(t, 0x1D, px.B, 3)

	far := nrgba(img, 40, 2)
	assert.Equal(t, uint8(255), far.G)
}

func TestSurfaceLaterStrokeOnTop(t *testing.T) {
	g := state.NewGallery()
	r := state.NewRecorder(g, nil)
	drawLine(r, "#405DE6", state.Pt(5, 20), state.Pt(75, 20))
	drawLine(r, "#4CAF50", state.Pt(40, 2), state.Pt(40, 38))

	s := NewSurface(80, 40, 6, "#FFFFFF", nil)
	img, err := s.Draw(g)
	require.NoError(t, err)

	px := nrgba(img, 40, 20)
	assert.InDelta(t, 0x4C, px.R, 3)
	assert.InDelta(t, 0xAF, px.G, 3)

	require.True(t, g.RemoveLast())
	img, err = s.Draw(g)
	require.NoError(t, err)
	px = nrgba(img, 40, 20)
	assert.InDelta(t, 0x40, px.R, 3)
	assert.InDelta(t, 0xE6, px.B, 3)
}

func TestSurfaceCachesUnchangedGallery(t *testing.T) {
	g := state.NewGallery()
	r := state.NewRecorder(g, nil)
	drawLine(r, "#405DE6", state.Pt(5, 5), state.Pt(30, 30))

	s := NewSurface(40, 40, 2, "#FFFFFF", nil)
	first, err := s.Draw(g)
	require.NoError(t, err)
	second, err := s.Draw(g)
	require.NoError(t, err)
	assert.Same(t, first.(*image.RGBA), second.(*image.RGBA))

	s.Resize(60, 50)
	third, err := s.Draw(g)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 60, 50), third.Bounds())
}

func TestSurfaceResizeClamps(t *testing.T) {
	s := NewSurface(0, -3, 2, "#FFFFFF", nil)
	w, h := s.Size()
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
}

func TestSurfaceScale(t *testing.T) {
	g := state.NewGallery()
	r := state.NewRecorder(g, nil)
	drawLine(r, "#405DE6", state.Pt(2, 10), state.Pt(38, 10))

	s := NewSurface(80, 40, 3, "#FFFFFF", nil)
	s.SetScale(2)
	img, err := s.Draw(g)
	require.NoError(t, err)

	assert.InDelta(t, 0xE6, nrgba(img, 40, 20).B, 3)
	assert.Equal(t, uint8(255), nrgba(img, 40, 10).R)
}
