// Package canvas provides a rune-matrix compositor for bordered widgets.
//
// A Canvas is NOT thread-safe for writes; synchronize externally if shared
// across goroutines.
//
// Coordinate system: origin (0,0) is top-left, X increases rightward,
// Y increases downward, all coordinates are character cells.
package canvas

import (
	"errors"
	"fmt"
	"strings"

	"seam/border"
	"seam/core"
)

// Common errors
var (
	ErrOutOfBounds = errors.New("position out of bounds")
	ErrInvalidSize = errors.New("invalid canvas size")
)

// Canvas is a fixed-size grid of runes.
type Canvas struct {
	cells  [][]rune
	width  int
	height int
}

// New creates a canvas of the given size with every cell set to space.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	cells := make([][]rune, height)
	for y := range cells {
		cells[y] = make([]rune, width)
		for x := range cells[y] {
			cells[y][x] = ' '
		}
	}
	return &Canvas{cells: cells, width: width, height: height}, nil
}

// Size returns the width and height of the canvas.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Set writes a rune at a point.
func (c *Canvas) Set(p core.Point, r rune) error {
	if p.X < 0 || p.X >= c.width || p.Y < 0 || p.Y >= c.height {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, p.X, p.Y)
	}
	c.cells[p.Y][p.X] = r
	return nil
}

// Get reads the rune at a point.
func (c *Canvas) Get(p core.Point) (rune, error) {
	if p.X < 0 || p.X >= c.width || p.Y < 0 || p.Y >= c.height {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, p.X, p.Y)
	}
	return c.cells[p.Y][p.X], nil
}

// Clear resets every cell to space.
func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = ' '
		}
	}
}

// DrawWidget paints one widget's border in its own style. The border sits
// on the lattice lines X, X+Width, Y and Y+Height of the widget's rect.
func (c *Canvas) DrawWidget(w core.WidgetBoundary) error {
	r := w.Rect
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", border.ErrInvalidGeometry, r.Width, r.Height)
	}
	if r.X < 0 || r.Y < 0 || r.Right() >= c.width || r.Bottom() >= c.height {
		return fmt.Errorf("%w: widget at (%d,%d) size %dx%d", ErrOutOfBounds, r.X, r.Y, r.Width, r.Height)
	}

	horizontal, vertical := border.LineGlyphs(w.Style)

	c.cells[r.Y][r.X] = border.GlyphFor(core.TopLeft, w.Style)
	c.cells[r.Y][r.Right()] = border.GlyphFor(core.TopRight, w.Style)
	c.cells[r.Bottom()][r.X] = border.GlyphFor(core.BottomLeft, w.Style)
	c.cells[r.Bottom()][r.Right()] = border.GlyphFor(core.BottomRight, w.Style)

	for x := r.X + 1; x < r.Right(); x++ {
		c.cells[r.Y][x] = horizontal
		c.cells[r.Bottom()][x] = horizontal
	}
	for y := r.Y + 1; y < r.Bottom(); y++ {
		c.cells[y][r.X] = vertical
		c.cells[y][r.Right()] = vertical
	}

	if w.Title != "" {
		c.drawTitle(w)
	}
	return nil
}

// Compose draws every widget registered with the merger and then overrides
// each merge point with its resolved junction glyph, so shared edges and
// corners read as one continuous line drawing.
func (c *Canvas) Compose(m *border.Merger) error {
	for _, w := range m.Widgets() {
		if err := c.DrawWidget(w); err != nil {
			return err
		}
	}
	for p, j := range m.MergePoints() {
		if p.X < 0 || p.X >= c.width || p.Y < 0 || p.Y >= c.height {
			continue
		}
		c.cells[p.Y][p.X] = border.GlyphFor(j.Type, j.Style)
	}
	return nil
}

// String renders the canvas as newline-separated rows with trailing
// whitespace trimmed.
func (c *Canvas) String() string {
	var sb strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(strings.TrimRight(string(row), " "))
	}
	return sb.String()
}
