package cellbuf

import (
	"io"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
)

// WriteANSI writes the cells of area as lines of ANSI-coloured text. Runs
// of cells sharing a style are emitted as a single escape sequence.
// Colour output follows fatih/color's NoColor setting.
func WriteANSI(w io.Writer, b *Buffer, area Rect) error {
	area = area.Intersect(b.Area())
	var sb strings.Builder
	for y := area.Y; y < area.Bottom(); y++ {
		var run strings.Builder
		runStyle := tcell.StyleDefault
		flush := func() {
			if run.Len() == 0 {
				return
			}
			sb.WriteString(styled(runStyle, run.String()))
			run.Reset()
		}
		for x := area.X; x < area.Right(); x++ {
			c := b.Cell(x, y)
			if c.Width == 0 {
				continue
			}
			if c.Style != runStyle {
				flush()
				runStyle = c.Style
			}
			run.WriteString(c.String())
		}
		flush()
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// styled renders text with the colours and attributes of style
func styled(style tcell.Style, text string) string {
	attrs := StyleAttributes(style)
	if len(attrs) == 0 {
		return text
	}
	return colorize.New(attrs...).Sprint(text)
}

// StyleAttributes converts a tcell style into fatih/color SGR attributes
func StyleAttributes(style tcell.Style) []colorize.Attribute {
	fg, bg, mask := style.Decompose()
	var attrs []colorize.Attribute
	if mask&tcell.AttrBold != 0 {
		attrs = append(attrs, colorize.Bold)
	}
	if mask&tcell.AttrDim != 0 {
		attrs = append(attrs, colorize.Faint)
	}
	if mask&tcell.AttrItalic != 0 {
		attrs = append(attrs, colorize.Italic)
	}
	if mask&tcell.AttrUnderline != 0 {
		attrs = append(attrs, colorize.Underline)
	}
	if mask&tcell.AttrReverse != 0 {
		attrs = append(attrs, colorize.ReverseVideo)
	}
	attrs = append(attrs, colorAttributes(fg, false)...)
	attrs = append(attrs, colorAttributes(bg, true)...)
	return attrs
}

// colorAttributes maps a tcell colour to the matching SGR parameters:
// 30-37/90-97 for the basic palette, 38;5;n for the extended palette and
// 38;2;r;g;b for true colour (40/100/48 for backgrounds).
func colorAttributes(c tcell.Color, background bool) []colorize.Attribute {
	if !c.Valid() {
		return nil
	}
	if c.IsRGB() {
		r, g, b := c.RGB()
		return []colorize.Attribute{extended(background), 2,
			colorize.Attribute(r), colorize.Attribute(g), colorize.Attribute(b)}
	}
	idx := int(c - tcell.ColorValid)
	switch {
	case idx < 8:
		base := colorize.FgBlack
		if background {
			base = colorize.BgBlack
		}
		return []colorize.Attribute{base + colorize.Attribute(idx)}
	case idx < 16:
		base := colorize.FgHiBlack
		if background {
			base = colorize.BgHiBlack
		}
		return []colorize.Attribute{base + colorize.Attribute(idx-8)}
	default:
		return []colorize.Attribute{extended(background), 5, colorize.Attribute(idx)}
	}
}

func extended(background bool) colorize.Attribute {
	if background {
		return 48
	}
	return 38
}
