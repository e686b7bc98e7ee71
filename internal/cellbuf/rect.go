package cellbuf

// Rect represents a rectangular region of a cell grid
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRect creates a rectangle at (x, y) with the given dimensions
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// IsEmpty reports whether the rectangle covers no cells
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Right returns the first column past the rectangle
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the first row past the rectangle
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Contains reports whether (x, y) lies inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Rows splits the rectangle into one-cell-high rows, top to bottom
func (r Rect) Rows() []Rect {
	if r.IsEmpty() {
		return nil
	}
	rows := make([]Rect, 0, r.Height)
	for y := r.Y; y < r.Bottom(); y++ {
		rows = append(rows, Rect{X: r.X, Y: y, Width: r.Width, Height: 1})
	}
	return rows
}

// Intersect returns the overlap of two rectangles, or the zero Rect
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.Right(), o.Right())
	y1 := min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
