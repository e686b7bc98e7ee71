package cellbuf

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Surface is the cell grid a card renders into. It is the subset of
// tcell.Screen used for drawing, so a live screen and a Buffer are
// interchangeable.
type Surface interface {
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
	GetContent(x, y int) (mainc rune, combc []rune, style tcell.Style, width int)
}

// Cell is a single character cell
type Cell struct {
	Ch    rune
	Comb  []rune
	Style tcell.Style
	// Width is the number of columns the cell's cluster covers. A cell
	// hidden behind a wide cluster on its left has Width 0.
	Width int
}

var blankCell = Cell{Ch: ' ', Style: tcell.StyleDefault, Width: 1}

// Buffer is an in-memory cell grid
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

var _ Surface = (*Buffer)(nil)

// NewBuffer creates a blank buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions and clears it
func (b *Buffer) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets every cell to a blank with the default style
func (b *Buffer) Clear() {
	b.Fill(' ', tcell.StyleDefault)
}

// Fill sets every cell to r with style
func (b *Buffer) Fill(r rune, style tcell.Style) {
	for i := range b.cells {
		b.cells[i] = Cell{Ch: r, Style: style, Width: 1}
	}
}

// Size returns the buffer dimensions
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// Area returns the rectangle covered by the buffer
func (b *Buffer) Area() Rect {
	return Rect{Width: b.width, Height: b.height}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// SetContent writes a cluster at (x, y). Writes outside the buffer are
// ignored. A two-column cluster hides the cell to its right.
func (b *Buffer) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	row := y * b.width
	idx := row + x
	old := b.cells[idx]

	// Overwriting either half of a wide cluster breaks the other half.
	if old.Width == 0 && x > 0 {
		left := &b.cells[idx-1]
		*left = Cell{Ch: ' ', Style: left.Style, Width: 1}
	}
	if old.Width > 1 && x+1 < b.width {
		right := &b.cells[idx+1]
		*right = Cell{Ch: ' ', Style: right.Style, Width: 1}
	}

	var comb []rune
	if len(combc) > 0 {
		comb = append([]rune(nil), combc...)
	}
	width := clusterWidth(mainc, comb)
	b.cells[idx] = Cell{Ch: mainc, Comb: comb, Style: style, Width: width}

	if width > 1 && x+1 < b.width {
		next := &b.cells[idx+1]
		if next.Width > 1 && x+2 < b.width {
			after := &b.cells[idx+2]
			*after = Cell{Ch: ' ', Style: after.Style, Width: 1}
		}
		*next = Cell{Style: style, Width: 0}
	}
}

// GetContent returns the contents of the cell at (x, y)
func (b *Buffer) GetContent(x, y int) (rune, []rune, tcell.Style, int) {
	if !b.inBounds(x, y) {
		return ' ', nil, tcell.StyleDefault, 1
	}
	c := b.cells[y*b.width+x]
	return c.Ch, c.Comb, c.Style, c.Width
}

// Cell returns a copy of the cell at (x, y)
func (b *Buffer) Cell(x, y int) Cell {
	if !b.inBounds(x, y) {
		return blankCell
	}
	return b.cells[y*b.width+x]
}

// Line returns the text of row y, skipping cells hidden behind wide clusters
func (b *Buffer) Line(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for _, c := range b.cells[y*b.width : (y+1)*b.width] {
		if c.Width == 0 {
			continue
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}

// String returns the text of the whole buffer, one line per row
func (b *Buffer) String() string {
	lines := make([]string, b.height)
	for y := range lines {
		lines[y] = b.Line(y)
	}
	return strings.Join(lines, "\n")
}

// String returns the cluster held by the cell
func (c Cell) String() string {
	if c.Width == 0 {
		return ""
	}
	if len(c.Comb) == 0 {
		return string(c.Ch)
	}
	return string(c.Ch) + string(c.Comb)
}

func clusterWidth(mainc rune, combc []rune) int {
	if mainc == 0 {
		return 1
	}
	w := uniseg.StringWidth(string(mainc) + string(combc))
	if w < 1 {
		return 1
	}
	return w
}
