// Package layout places card-sized cells on a grid.
package layout

import "github.com/arcanaland/tuicards/internal/cellbuf"

// Gap is the number of blank columns and rows between neighbouring cells
const Gap = 1

// Grid divides area into uniform cells of width x height separated by Gap,
// filling rows left to right, top to bottom. Only whole cells are returned.
func Grid(area cellbuf.Rect, width, height int) []cellbuf.Rect {
	if area.IsEmpty() || width <= 0 || height <= 0 {
		return nil
	}
	stepX := width + Gap
	stepY := height + Gap
	cols, rows := Capacity(area, width, height)

	cells := make([]cellbuf.Rect, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cells = append(cells, cellbuf.NewRect(area.X+col*stepX, area.Y+row*stepY, width, height))
		}
	}
	return cells
}

// Capacity returns how many columns and rows of cells fit in area. A cell
// counts only when its trailing gap fits as well.
func Capacity(area cellbuf.Rect, width, height int) (cols, rows int) {
	if area.IsEmpty() || width <= 0 || height <= 0 {
		return 0, 0
	}
	return area.Width / (width + Gap), area.Height / (height + Gap)
}

// Extent returns the size of an area holding n cells in at most cols columns
func Extent(n, cols, width, height int) (int, int) {
	if n <= 0 || cols <= 0 {
		return 0, 0
	}
	cols = min(cols, n)
	rows := (n + cols - 1) / cols
	return cols * (width + Gap), rows * (height + Gap)
}
