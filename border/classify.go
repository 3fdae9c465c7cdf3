package border

import (
	"fmt"

	"seam/core"
)

// junctionForDirs is the classification table: every direction set that
// forms a right angle, a tee or a cross maps to exactly one shape.
// Colinear pairs and single directions are deliberately absent; a straight
// run needs no junction glyph and must be filtered out before lookup.
var junctionForDirs = map[core.DirSet]core.JunctionType{
	core.DirDown | core.DirRight: core.TopLeft,
	core.DirDown | core.DirLeft:  core.TopRight,
	core.DirUp | core.DirRight:   core.BottomLeft,
	core.DirUp | core.DirLeft:    core.BottomRight,

	core.DirUp | core.DirDown | core.DirRight:   core.TeeRight,
	core.DirUp | core.DirDown | core.DirLeft:    core.TeeLeft,
	core.DirLeft | core.DirRight | core.DirUp:   core.TeeUp,
	core.DirLeft | core.DirRight | core.DirDown: core.TeeDown,

	core.DirUp | core.DirDown | core.DirLeft | core.DirRight: core.Cross,
}

// isJunction reports whether a direction set needs a junction glyph:
// at least one vertical and one horizontal segment meeting at the point.
func isJunction(dirs core.DirSet) bool {
	return dirs.Has(core.DirUp|core.DirDown) && dirs.Has(core.DirLeft|core.DirRight)
}

// classify maps a direction set to its junction shape. The deriver only
// hands over sets that pass isJunction, so a missing table entry is a
// defect in derivation, not bad input.
func classify(dirs core.DirSet) (core.JunctionType, error) {
	t, ok := junctionForDirs[dirs]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrInternalClassification, dirs)
	}
	return t, nil
}
