// Package border computes merged junction glyphs for adjacent widget borders.
//
// When several rectangular widgets with drawn borders share edges or corners
// on the character grid, painting each border independently leaves broken or
// duplicated line segments where they meet. The Merger looks at every lattice
// point touched by more than one border direction and decides the single
// box-drawing glyph that keeps the composited screen reading as one
// continuous line drawing.
//
// A Merger is not safe for concurrent use; confine it to the drawing
// goroutine or synchronize externally. All operations are synchronous and
// CPU-bound with no blocking.
package border

import (
	"errors"
	"fmt"

	"seam/core"
)

// Common errors
var (
	ErrInvalidGeometry        = errors.New("invalid widget geometry")
	ErrInternalClassification = errors.New("unclassifiable direction set")
)

// Merger owns the registered widget boundaries and the merge map computed
// from them. The two are reset together by Clear.
type Merger struct {
	widgets []core.WidgetBoundary
	merged  map[core.Point]core.Junction
}

// NewMerger creates an empty merger.
func NewMerger() *Merger {
	return &Merger{}
}

// AddWidget appends a widget boundary to the registry. Widgets with a
// non-positive width or height are rejected with ErrInvalidGeometry and no
// state changes. Duplicates are accepted; registration order only matters
// as the tie-break when equal-precedence styles meet at a point.
func (m *Merger) AddWidget(w core.WidgetBoundary) error {
	if w.Rect.Width <= 0 || w.Rect.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGeometry, w.Rect.Width, w.Rect.Height)
	}
	m.widgets = append(m.widgets, w)
	return nil
}

// WidgetCount returns the number of registered widgets.
func (m *Merger) WidgetCount() int {
	return len(m.widgets)
}

// Widgets returns the registered boundaries in registration order.
// The returned slice is the merger's own storage; callers must not modify it.
func (m *Merger) Widgets() []core.WidgetBoundary {
	return m.widgets
}

// Clear empties the widget list and the merge map together, returning the
// merger to its freshly constructed state.
func (m *Merger) Clear() {
	m.widgets = nil
	m.merged = nil
}

// Junction returns the merged junction for a point, if the point needs one.
// Absence means the painting code should draw the widget's own border rune.
func (m *Merger) Junction(p core.Point) (core.Junction, bool) {
	j, ok := m.merged[p]
	return j, ok
}

// GlyphAt resolves a point straight to its display rune.
func (m *Merger) GlyphAt(p core.Point) (rune, bool) {
	j, ok := m.merged[p]
	if !ok {
		return 0, false
	}
	return GlyphFor(j.Type, j.Style), true
}

// MergePoints returns the current merge map. The returned map is the
// merger's own storage; callers must not modify it.
func (m *Merger) MergePoints() map[core.Point]core.Junction {
	return m.merged
}

// pointState accumulates border contributions at one lattice point while
// the widget list is walked.
type pointState struct {
	dirs  core.DirSet
	style core.BorderStyle
}

// CalculateMergePoints rebuilds the merge map from the full widget list.
// The computation is deterministic: calling it twice without an intervening
// AddWidget or Clear yields an identical map. The new map is built in a
// temporary structure and swapped in only on success, so a classification
// failure leaves the previous result intact.
func (m *Merger) CalculateMergePoints() error {
	states := make(map[core.Point]*pointState)
	for _, w := range m.widgets {
		accumulate(states, w)
	}

	next := make(map[core.Point]core.Junction, len(states))
	for p, st := range states {
		if !isJunction(st.dirs) {
			// Straight run or lone edge end; the plain border rune is fine.
			continue
		}
		t, err := classify(st.dirs)
		if err != nil {
			return fmt.Errorf("merge point (%d,%d): %w", p.X, p.Y, err)
		}
		next[p] = core.Junction{Type: t, Style: st.style}
	}

	m.merged = next
	return nil
}

// accumulate records one widget's border contributions. Each lattice point
// on the border gains the directions its edges extend into from that point;
// contributions from different widgets union together, so duplicate
// directions never double-count. The strongest style seen at a point wins
// (thick > double > rounded > single); because widgets are walked in
// registration order, equal styles resolve to the earlier widget and the
// result never depends on point-visitation order.
func accumulate(states map[core.Point]*pointState, w core.WidgetBoundary) {
	r := w.Rect
	left, right := r.X, r.Right()
	top, bottom := r.Y, r.Bottom()

	// Horizontal border rows.
	for _, y := range [2]int{top, bottom} {
		for x := left; x <= right; x++ {
			var d core.DirSet
			if x > left {
				d |= core.DirLeft
			}
			if x < right {
				d |= core.DirRight
			}
			contribute(states, core.Point{X: x, Y: y}, d, w.Style)
		}
	}

	// Vertical border columns.
	for _, x := range [2]int{left, right} {
		for y := top; y <= bottom; y++ {
			var d core.DirSet
			if y > top {
				d |= core.DirUp
			}
			if y < bottom {
				d |= core.DirDown
			}
			contribute(states, core.Point{X: x, Y: y}, d, w.Style)
		}
	}
}

func contribute(states map[core.Point]*pointState, p core.Point, d core.DirSet, style core.BorderStyle) {
	st, ok := states[p]
	if !ok {
		states[p] = &pointState{dirs: d, style: style}
		return
	}
	st.dirs |= d
	if style > st.style {
		st.style = style
	}
}
