package canvas

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"seam/core"
	"seam/geometry"
)

// drawTitle writes the widget title onto its top border, one cell in from
// the corner, padded with spaces and clipped to the border interior.
func (c *Canvas) drawTitle(w core.WidgetBoundary) {
	r := w.Rect
	// Interior span of the top border, excluding both corners.
	avail := r.Width - 1
	if avail < 3 {
		return
	}
	text := " " + clipToWidth(w.Title, avail-2) + " "

	x := r.X + 1
	limit := r.Right() // exclusive; never touch the corner cell
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cluster := g.Str()
		width := runewidth.StringWidth(cluster)
		if width == 0 {
			continue
		}
		if x+width > limit {
			break
		}
		runes := g.Runes()
		c.cells[r.Y][x] = runes[0]
		// Wide clusters cover the next cell too; blank it so no stale
		// border rune shows through under the glyph.
		for i := 1; i < width; i++ {
			c.cells[r.Y][x+i] = ' '
		}
		x += width
	}
}

// clipToWidth truncates a string to at most maxWidth terminal cells without
// splitting grapheme clusters.
func clipToWidth(s string, maxWidth int) string {
	maxWidth = geometry.Max(maxWidth, 0)
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	out := ""
	width := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		cw := runewidth.StringWidth(cluster)
		if width+cw > maxWidth {
			break
		}
		out += cluster
		width += cw
	}
	return out
}
