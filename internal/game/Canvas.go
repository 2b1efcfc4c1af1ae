package game

import "strings"

const blankCell = " "

// Canvas is the cell grid the entities draw into. Every cell holds a
// pre-rendered one-column string. Entities mutate single cells, so a frame
// costs O(1) canvas writes per moving entity regardless of arena size; the
// terminal runtime diffs the joined rows.
type Canvas struct {
	Width  int
	Height int
	cells  [][]string
}

func NewCanvas(width, height int) *Canvas {
	cells := make([][]string, height)
	for row := range cells {
		cells[row] = make([]string, width)
		for col := range cells[row] {
			cells[row][col] = blankCell
		}
	}
	return &Canvas{Width: width, Height: height, cells: cells}
}

// Set writes a rendered cell. Writes outside the canvas are dropped, so
// callers can draw shapes that poke past the edge of a small terminal.
func (c *Canvas) Set(x, y int, cell string) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return
	}
	c.cells[y][x] = cell
}

// Blank erases a single cell.
func (c *Canvas) Blank(x, y int) {
	c.Set(x, y, blankCell)
}

// At returns the rendered cell, or a blank for out-of-bounds coordinates.
func (c *Canvas) At(x, y int) string {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return blankCell
	}
	return c.cells[y][x]
}

// Render joins the grid into the frame string the view hands to the
// terminal.
func (c *Canvas) Render() string {
	var frame strings.Builder
	for row := range c.cells {
		if row > 0 {
			frame.WriteString("\n")
		}
		for _, cell := range c.cells[row] {
			frame.WriteString(cell)
		}
	}
	return frame.String()
}
