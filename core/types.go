// Package core contains the fundamental types used throughout the seam border engine.
package core

import "fmt"

// Point represents a 2D coordinate on the character grid.
type Point struct {
	X, Y int
}

// DirSet is a set of cardinal directions packed into a bitmask. A border
// segment at a lattice point extends into each direction present in the set.
type DirSet uint8

const (
	DirUp DirSet = 1 << iota
	DirDown
	DirLeft
	DirRight
)

// Has reports whether any of the directions in d are present in s.
func (s DirSet) Has(d DirSet) bool {
	return s&d != 0
}

// Count returns the number of directions in the set.
func (s DirSet) Count() int {
	n := 0
	for d := DirUp; d <= DirRight; d <<= 1 {
		if s&d != 0 {
			n++
		}
	}
	return n
}

// String returns the string representation of a DirSet.
func (s DirSet) String() string {
	if s == 0 {
		return "none"
	}
	out := ""
	for _, e := range []struct {
		d    DirSet
		name string
	}{
		{DirUp, "up"},
		{DirDown, "down"},
		{DirLeft, "left"},
		{DirRight, "right"},
	} {
		if s&e.d != 0 {
			if out != "" {
				out += "+"
			}
			out += e.name
		}
	}
	return out
}

// BorderStyle selects one of the four box-drawing line families.
// The ordering is significant: higher values win when borders of
// different styles meet at the same point.
type BorderStyle int

const (
	StyleSingle BorderStyle = iota
	StyleRounded
	StyleDouble
	StyleThick
)

// String returns the string representation of a BorderStyle.
func (s BorderStyle) String() string {
	switch s {
	case StyleSingle:
		return "single"
	case StyleRounded:
		return "rounded"
	case StyleDouble:
		return "double"
	case StyleThick:
		return "thick"
	default:
		return "unknown"
	}
}

// ParseBorderStyle converts a style name to a BorderStyle. The empty
// string parses as StyleSingle so layout files can omit the field.
func ParseBorderStyle(name string) (BorderStyle, error) {
	switch name {
	case "", "single":
		return StyleSingle, nil
	case "rounded":
		return StyleRounded, nil
	case "double":
		return StyleDouble, nil
	case "thick":
		return StyleThick, nil
	default:
		return StyleSingle, fmt.Errorf("unknown border style %q", name)
	}
}

// JunctionType classifies the shape a merged border takes at one point:
// a corner where exactly two perpendicular segments meet, a tee where
// three meet, or a cross where all four do. Tees are named for the
// direction of the odd stem, matching the box-drawing glyph names
// (TeeRight is '├').
type JunctionType int

const (
	TopLeft JunctionType = iota
	TopRight
	BottomLeft
	BottomRight
	TeeUp
	TeeDown
	TeeLeft
	TeeRight
	Cross
)

// JunctionTypes lists every junction shape in declaration order.
var JunctionTypes = []JunctionType{
	TopLeft, TopRight, BottomLeft, BottomRight,
	TeeUp, TeeDown, TeeLeft, TeeRight, Cross,
}

// String returns the string representation of a JunctionType.
func (t JunctionType) String() string {
	switch t {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	case TeeUp:
		return "tee-up"
	case TeeDown:
		return "tee-down"
	case TeeLeft:
		return "tee-left"
	case TeeRight:
		return "tee-right"
	case Cross:
		return "cross"
	default:
		return "unknown"
	}
}

// Junction is the resolved border decision for one grid point.
type Junction struct {
	Type  JunctionType
	Style BorderStyle
}

// Rect is an axis-aligned rectangle on the grid. The border of a widget
// with rect {X, Y, Width, Height} is drawn on the lattice lines X, X+Width,
// Y and Y+Height, so two horizontally adjacent widgets share a border column.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Right returns the x coordinate of the right border column.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the y coordinate of the bottom border row.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// OnBorder reports whether p lies on the rectangle's border lattice.
func (r Rect) OnBorder(p Point) bool {
	if p.X < r.X || p.X > r.Right() || p.Y < r.Y || p.Y > r.Bottom() {
		return false
	}
	return p.X == r.X || p.X == r.Right() || p.Y == r.Y || p.Y == r.Bottom()
}

// WidgetBoundary describes one widget's drawn border: where it sits and
// which line family it uses. Boundaries are plain values with no identity
// beyond their fields.
type WidgetBoundary struct {
	Rect  Rect
	Style BorderStyle
	Title string
}
