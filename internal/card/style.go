package card

import "github.com/gdamore/tcell/v2"

// Style overrides the colours a card is drawn with. An unset foreground
// falls back to the suit colour; an unset background leaves whatever
// background the target cell already has.
type Style struct {
	fg, bg       tcell.Color
	hasFg, hasBg bool
}

// NewStyle returns a style with no overrides
func NewStyle() Style {
	return Style{}
}

// Foreground returns a copy of s with the foreground set
func (s Style) Foreground(c tcell.Color) Style {
	s.fg, s.hasFg = c, true
	return s
}

// Background returns a copy of s with the background set
func (s Style) Background(c tcell.Color) Style {
	s.bg, s.hasBg = c, true
	return s
}

// Fg returns the foreground override, if any
func (s Style) Fg() (tcell.Color, bool) {
	return s.fg, s.hasFg
}

// Bg returns the background override, if any
func (s Style) Bg() (tcell.Color, bool) {
	return s.bg, s.hasBg
}

// Merge returns s with any override set in o applied on top
func (s Style) Merge(o Style) Style {
	if o.hasFg {
		s = s.Foreground(o.fg)
	}
	if o.hasBg {
		s = s.Background(o.bg)
	}
	return s
}

// apply paints the resolved colours over the style a cell already has
func (s Style) apply(base tcell.Style, fallback tcell.Color) tcell.Style {
	fg := fallback
	if s.hasFg {
		fg = s.fg
	}
	base = base.Foreground(fg)
	if s.hasBg {
		base = base.Background(s.bg)
	}
	return base
}
