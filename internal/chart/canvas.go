package chart

// Braille patterns use a 2x4 dot matrix per character:
//
//	  Col 0  Col 1
//	Row 0:   ⠁      ⠈     (dots 1, 4)
//	Row 1:   ⠂      ⠐     (dots 2, 5)
//	Row 2:   ⠄      ⠠     (dots 3, 6)
//	Row 3:   ⡀      ⢀     (dots 7, 8)
//
// Unicode braille starts at U+2800 (empty) with one bit per dot.
const brailleBase = '⠀'

// brailleDots maps [row][col] within a cell to the bit for that dot.
var brailleDots = [4][2]uint8{
	{0, 3},
	{1, 4},
	{2, 5},
	{6, 7},
}

// canvas is a dot-addressed braille surface. Dot coordinates start at the
// bottom-left corner. Each cell remembers the last layer that drew in it.
type canvas struct {
	cols, rows int
	bits       [][]uint8
	owner      [][]Layer
}

func newCanvas(cols, rows int) *canvas {
	c := &canvas{cols: cols, rows: rows}
	c.bits = make([][]uint8, rows)
	c.owner = make([][]Layer, rows)
	for r := 0; r < rows; r++ {
		c.bits[r] = make([]uint8, cols)
		c.owner[r] = make([]Layer, cols)
	}
	return c
}

// dotWidth and dotHeight are the canvas size in dots.
func (c *canvas) dotWidth() int  { return c.cols * 2 }
func (c *canvas) dotHeight() int { return c.rows * 4 }

func (c *canvas) set(x, y int, l Layer) {
	if x < 0 || y < 0 || x >= c.dotWidth() || y >= c.dotHeight() {
		return
	}
	col := x / 2
	row := c.rows - 1 - y/4
	sub := 3 - y%4
	c.bits[row][col] |= 1 << brailleDots[sub][x%2]
	c.owner[row][col] = l
}

// column fills dots from..to (inclusive, either order) at x.
func (c *canvas) column(x, from, to int, l Layer) {
	if from > to {
		from, to = to, from
	}
	for y := from; y <= to; y++ {
		c.set(x, y, l)
	}
}

// blit copies every drawn cell into dst.
func (c *canvas) blit(dst [][]Cell) {
	for r := 0; r < c.rows; r++ {
		for col := 0; col < c.cols; col++ {
			if c.bits[r][col] == 0 {
				continue
			}
			dst[r][col] = Cell{Ch: brailleBase + rune(c.bits[r][col]), Layer: c.owner[r][col]}
		}
	}
}
