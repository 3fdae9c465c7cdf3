package border

import "seam/core"

// glyphSet holds the full rune family for one border style.
type glyphSet struct {
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	TeeUp       rune
	TeeDown     rune
	TeeLeft     rune
	TeeRight    rune
	Cross       rune
	Horizontal  rune
	Vertical    rune
}

// glyphSets maps each BorderStyle to its box-drawing runes. Unicode has no
// rounded tees or cross, so the rounded set borrows the single-line forms
// for everything except its four corners.
var glyphSets = map[core.BorderStyle]glyphSet{
	core.StyleSingle: {
		TopLeft: '┌', TopRight: '┐', BottomLeft: '└', BottomRight: '┘',
		TeeUp: '┴', TeeDown: '┬', TeeLeft: '┤', TeeRight: '├', Cross: '┼',
		Horizontal: '─', Vertical: '│',
	},
	core.StyleRounded: {
		TopLeft: '╭', TopRight: '╮', BottomLeft: '╰', BottomRight: '╯',
		TeeUp: '┴', TeeDown: '┬', TeeLeft: '┤', TeeRight: '├', Cross: '┼',
		Horizontal: '─', Vertical: '│',
	},
	core.StyleDouble: {
		TopLeft: '╔', TopRight: '╗', BottomLeft: '╚', BottomRight: '╝',
		TeeUp: '╩', TeeDown: '╦', TeeLeft: '╣', TeeRight: '╠', Cross: '╬',
		Horizontal: '═', Vertical: '║',
	},
	core.StyleThick: {
		TopLeft: '┏', TopRight: '┓', BottomLeft: '┗', BottomRight: '┛',
		TeeUp: '┻', TeeDown: '┳', TeeLeft: '┫', TeeRight: '┣', Cross: '╋',
		Horizontal: '━', Vertical: '┃',
	},
}

// GlyphFor returns the display rune for a junction shape drawn in the given
// style. It is total over all shape/style pairs; unknown values fall back to
// the single-line family.
func GlyphFor(t core.JunctionType, style core.BorderStyle) rune {
	set, ok := glyphSets[style]
	if !ok {
		set = glyphSets[core.StyleSingle]
	}
	switch t {
	case core.TopLeft:
		return set.TopLeft
	case core.TopRight:
		return set.TopRight
	case core.BottomLeft:
		return set.BottomLeft
	case core.BottomRight:
		return set.BottomRight
	case core.TeeUp:
		return set.TeeUp
	case core.TeeDown:
		return set.TeeDown
	case core.TeeLeft:
		return set.TeeLeft
	case core.TeeRight:
		return set.TeeRight
	default:
		return set.Cross
	}
}

// LineGlyphs returns the horizontal and vertical edge runes for a style.
func LineGlyphs(style core.BorderStyle) (horizontal, vertical rune) {
	set, ok := glyphSets[style]
	if !ok {
		set = glyphSets[core.StyleSingle]
	}
	return set.Horizontal, set.Vertical
}
