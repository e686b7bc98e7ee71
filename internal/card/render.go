package card

import (
	"github.com/arcanaland/tuicards/internal/cellbuf"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Render draws the card into area of s. Lines of art are paired with the
// rows of area from the top and drawing stops at whichever runs out first.
// Each line starts at the row's left edge; a cluster that does not fit in
// the remaining width ends the line. Cells the card does not cover are
// left as they are.
func (c Card) Render(area cellbuf.Rect, s cellbuf.Surface) {
	if area.IsEmpty() {
		return
	}
	fallback := c.Suit.Color()
	lines := c.Lines()
	for i, row := range area.Rows() {
		if i >= len(lines) {
			break
		}
		c.renderLine(lines[i], row, s, fallback)
	}
}

func (c Card) renderLine(line string, row cellbuf.Rect, s cellbuf.Surface, fallback tcell.Color) {
	x := row.X
	state := -1
	for len(line) > 0 {
		var cluster string
		var width int
		cluster, line, width, state = uniseg.FirstGraphemeClusterInString(line, state)
		if width < 1 {
			width = 1
		}
		if x+width > row.Right() {
			return
		}
		runes := []rune(cluster)
		var comb []rune
		if len(runes) > 1 {
			comb = runes[1:]
		}
		_, _, current, _ := s.GetContent(x, row.Y)
		s.SetContent(x, row.Y, runes[0], comb, c.Style.apply(current, fallback))
		x += width
	}
}
