package state

import "slices"

// Palette is the fixed, ordered set of stroke colors offered to the user.
var Palette = []Color{
	"#405DE6", // indigo
	"#5851DB", // purple
	"#833AB4", // dark purple
	"#C13584", // pink
	"#E1306C", // red
	"#FD1D1D", // bright red
	"#F56040", // orange
	"#F77737", // bright orange
	"#FCAF45", // yellow
	"#FFDC80", // light yellow
	"#4CAF50", // green
	"#5AC8FA", // sky blue
	"#0077B5", // linkedin blue
	"#00AFF0", // azure
	"#5578EB", // blue
	"#CC3366", // magenta
	"#DD2A7B", // pink red
	"#1AB7EA", // cerulean
	"#6A0DAD", // purple
	"#DD2E44", // reddish pink
	"#E95950", // coral red
	"#FCAF16", // yellow orange
	"#F09819", // orange
	"#FFC20E", // yellow
	"#D4D4D4", // light gray
	"#99AAB5", // gray
}

// Selection holds the color new strokes are drawn with.
type Selection struct {
	current Color
}

// NewSelection starts on the first palette color.
func NewSelection() *Selection {
	return &Selection{current: Palette[0]}
}

// Color returns the selected color.
func (s *Selection) Color() Color { return s.current }

// Select makes c current. It reports false for colors outside the palette
// and for the color that is already selected.
func (s *Selection) Select(c Color) bool {
	if c == s.current || !slices.Contains(Palette, c) {
		return false
	}
	s.current = c
	return true
}
