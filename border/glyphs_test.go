package border

import (
	"testing"

	"seam/core"
)

func TestGlyphFor_ContractValues(t *testing.T) {
	tests := []struct {
		name  string
		typ   core.JunctionType
		style core.BorderStyle
		want  rune
	}{
		{"SingleTopLeft", core.TopLeft, core.StyleSingle, '┌'},
		{"SingleCross", core.Cross, core.StyleSingle, '┼'},
		{"SingleTeeRight", core.TeeRight, core.StyleSingle, '├'},
		{"DoubleTopLeft", core.TopLeft, core.StyleDouble, '╔'},
		{"DoubleCross", core.Cross, core.StyleDouble, '╬'},
		{"DoubleTeeRight", core.TeeRight, core.StyleDouble, '╠'},
		{"RoundedTopLeft", core.TopLeft, core.StyleRounded, '╭'},
		{"RoundedBottomRight", core.BottomRight, core.StyleRounded, '╯'},
		{"ThickTopLeft", core.TopLeft, core.StyleThick, '┏'},
		{"ThickCross", core.Cross, core.StyleThick, '╋'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GlyphFor(tt.typ, tt.style); got != tt.want {
				t.Errorf("GlyphFor(%s, %s) = %c, want %c", tt.typ, tt.style, got, tt.want)
			}
		})
	}
}

func TestGlyphFor_Total(t *testing.T) {
	styles := []core.BorderStyle{
		core.StyleSingle, core.StyleRounded, core.StyleDouble, core.StyleThick,
	}
	for _, s := range styles {
		for _, typ := range core.JunctionTypes {
			if got := GlyphFor(typ, s); got == 0 {
				t.Errorf("GlyphFor(%s, %s) returned no glyph", typ, s)
			}
		}
	}
}

func TestGlyphFor_RoundedFallback(t *testing.T) {
	// Unicode has no rounded tees or cross; those shapes borrow the
	// single-line glyphs while rounded corners keep their own.
	for _, typ := range []core.JunctionType{
		core.TeeUp, core.TeeDown, core.TeeLeft, core.TeeRight, core.Cross,
	} {
		rounded := GlyphFor(typ, core.StyleRounded)
		single := GlyphFor(typ, core.StyleSingle)
		if rounded != single {
			t.Errorf("GlyphFor(%s, rounded) = %c, want single-line fallback %c", typ, rounded, single)
		}
	}

	for _, tt := range []struct {
		typ  core.JunctionType
		want rune
	}{
		{core.TopLeft, '╭'},
		{core.TopRight, '╮'},
		{core.BottomLeft, '╰'},
		{core.BottomRight, '╯'},
	} {
		if got := GlyphFor(tt.typ, core.StyleRounded); got != tt.want {
			t.Errorf("GlyphFor(%s, rounded) = %c, want %c", tt.typ, got, tt.want)
		}
	}
}

func TestLineGlyphs(t *testing.T) {
	tests := []struct {
		style      core.BorderStyle
		horizontal rune
		vertical   rune
	}{
		{core.StyleSingle, '─', '│'},
		{core.StyleRounded, '─', '│'},
		{core.StyleDouble, '═', '║'},
		{core.StyleThick, '━', '┃'},
	}
	for _, tt := range tests {
		h, v := LineGlyphs(tt.style)
		if h != tt.horizontal || v != tt.vertical {
			t.Errorf("LineGlyphs(%s) = %c,%c, want %c,%c", tt.style, h, v, tt.horizontal, tt.vertical)
		}
	}
}
