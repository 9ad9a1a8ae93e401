package ui

import (
	"image/color"
	"log/slog"

	"FreehandBoard/internal/config"
	"FreehandBoard/internal/render"
	"FreehandBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Screen is the single screen of the app: controls on top, board below.
type Screen struct {
	cfg     config.Config
	log     *slog.Logger
	gallery *state.Gallery

	Board   *BoardWidget
	Palette *Palette
	Undo    *widget.Button

	veil    *canvas.Rectangle
	fade    *fyne.Animation
	content fyne.CanvasObject
}

func NewScreen(cfg config.Config, log *slog.Logger) *Screen {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	g := state.NewGallery()
	sel := state.NewSelection()
	surface := render.NewSurface(
		int(cfg.WindowSize.Width), int(cfg.WindowSize.Height),
		cfg.StrokeWidth, cfg.Background, log,
	)

	s := &Screen{
		cfg:     cfg,
		log:     log.With("component", "screen"),
		gallery: g,
		Board:   NewBoardWidget(g, sel, surface, log),
		Palette: NewPalette(sel),
	}
	s.Undo = widget.NewButtonWithIcon("", theme.ContentUndoIcon(), s.undo)
	s.veil = canvas.NewRectangle(s.veilColor(0))

	g.OnChange = s.galleryChanged
	s.Board.OnDrawingChanged = s.fadeControls
	s.Palette.OnSelected = func(c state.Color) {
		s.log.Info("color selected", "color", c)
	}
	s.syncUndo()

	controls := container.NewVBox(
		s.Palette.Content(),
		container.NewHBox(s.Undo, layout.NewSpacer()),
	)
	s.content = container.NewBorder(
		container.NewStack(controls, s.veil),
		nil, nil, nil,
		s.Board,
	)
	return s
}

// Content returns the root canvas object of the screen.
func (s *Screen) Content() fyne.CanvasObject {
	return s.content
}

// Gallery returns the strokes drawn so far.
func (s *Screen) Gallery() *state.Gallery {
	return s.gallery
}

func (s *Screen) undo() {
	s.Board.CancelStroke()
	if s.gallery.RemoveLast() {
		s.log.Info("undo", "strokes", s.gallery.Len())
	}
}

func (s *Screen) galleryChanged() {
	s.syncUndo()
	s.Board.Refresh()
}

func (s *Screen) syncUndo() {
	if s.gallery.Empty() {
		s.Undo.Disable()
	} else {
		s.Undo.Enable()
	}
}

// fadeControls hides the controls behind the background color while a
// stroke is drawn and reveals them again on release.
func (s *Screen) fadeControls(drawing bool) {
	if s.fade != nil {
		s.fade.Stop()
	}
	var alpha uint8
	if drawing {
		alpha = 255
	}
	s.fade = canvas.NewColorRGBAAnimation(s.veil.FillColor, s.veilColor(alpha), s.cfg.FadeDuration, func(c color.Color) {
		s.veil.FillColor = c
		s.veil.Refresh()
	})
	s.fade.Curve = fyne.AnimationEaseInOut
	s.fade.Start()
}

func (s *Screen) veilColor(alpha uint8) color.Color {
	c := color.NRGBAModel.Convert(state.Color(s.cfg.Background).RGBA()).(color.NRGBA)
	c.A = alpha
	return c
}

// RunApp opens the window and blocks until it is closed.
func RunApp(cfg config.Config, log *slog.Logger) {
	a := app.NewWithID(config.AppID)
	w := a.NewWindow(cfg.Title)
	w.Resize(cfg.WindowSize)

	s := NewScreen(cfg, log)
	w.SetContent(s.Content())
	w.SetOnClosed(func() {
		log.Info("window closed", "strokes", s.gallery.Len())
	})
	w.ShowAndRun()
}
