// Package screen paints composited widget layouts onto a tcell screen.
package screen

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"seam/border"
	"seam/core"
	"seam/logger"
)

// Painter draws widget borders cell by cell, asking the merger for every
// cell so shared edges and corners get their merged junction glyph.
type Painter struct {
	screen tcell.Screen
	theme  Theme
}

// NewPainter creates a painter for an initialized screen.
func NewPainter(screen tcell.Screen, theme Theme) *Painter {
	return &Painter{screen: screen, theme: theme}
}

// PaintLayout clears the screen and paints every registered widget.
func (p *Painter) PaintLayout(m *border.Merger) {
	p.screen.Clear()
	n := m.WidgetCount()
	for i, w := range m.Widgets() {
		style := tcell.StyleDefault.Foreground(p.theme.BorderColor(i, n))
		p.paintWidget(w, m, style)
	}
	p.screen.Show()
}

// paintWidget walks the widget's border lattice. Each cell is probed in the
// merge map first; only on a miss does the widget's own corner or edge rune
// go out.
func (p *Painter) paintWidget(w core.WidgetBoundary, m *border.Merger, style tcell.Style) {
	r := w.Rect
	horizontal, vertical := border.LineGlyphs(w.Style)

	setCell := func(x, y int, fallback rune) {
		ch := fallback
		if merged, ok := m.GlyphAt(core.Point{X: x, Y: y}); ok {
			ch = merged
		}
		p.screen.SetContent(x, y, ch, nil, style)
	}

	setCell(r.X, r.Y, border.GlyphFor(core.TopLeft, w.Style))
	setCell(r.Right(), r.Y, border.GlyphFor(core.TopRight, w.Style))
	setCell(r.X, r.Bottom(), border.GlyphFor(core.BottomLeft, w.Style))
	setCell(r.Right(), r.Bottom(), border.GlyphFor(core.BottomRight, w.Style))

	for x := r.X + 1; x < r.Right(); x++ {
		setCell(x, r.Y, horizontal)
		setCell(x, r.Bottom(), horizontal)
	}
	for y := r.Y + 1; y < r.Bottom(); y++ {
		setCell(r.X, y, vertical)
		setCell(r.Right(), y, vertical)
	}

	if w.Title != "" {
		p.paintTitle(w, style)
	}
}

func (p *Painter) paintTitle(w core.WidgetBoundary, style tcell.Style) {
	r := w.Rect
	if r.Width < 4 {
		return
	}
	text := " " + runewidth.Truncate(w.Title, r.Width-3, "…") + " "
	x := r.X + 1
	for _, ch := range text {
		width := runewidth.RuneWidth(ch)
		if x+width > r.Right() {
			break
		}
		p.screen.SetContent(x, r.Y, ch, nil, style.Bold(true))
		x += width
	}
}

// Run opens a terminal screen, paints the layout, and blocks until the user
// quits with q, Esc or Ctrl+C. Resizes repaint.
func Run(m *border.Merger, theme Theme) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	painter := NewPainter(screen, theme)
	painter.PaintLayout(m)
	logger.Info("demo started", "widgets", m.WidgetCount(), "junctions", len(m.MergePoints()))

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			painter.PaintLayout(m)
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				logger.Info("demo exiting")
				return nil
			}
		}
	}
}
