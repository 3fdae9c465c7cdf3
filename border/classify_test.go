package border

import (
	"errors"
	"testing"

	"seam/core"
)

func TestClassify_ValidSets(t *testing.T) {
	tests := []struct {
		name string
		dirs core.DirSet
		want core.JunctionType
	}{
		{"TopLeft", core.DirDown | core.DirRight, core.TopLeft},
		{"TopRight", core.DirDown | core.DirLeft, core.TopRight},
		{"BottomLeft", core.DirUp | core.DirRight, core.BottomLeft},
		{"BottomRight", core.DirUp | core.DirLeft, core.BottomRight},
		{"TeeRight", core.DirUp | core.DirDown | core.DirRight, core.TeeRight},
		{"TeeLeft", core.DirUp | core.DirDown | core.DirLeft, core.TeeLeft},
		{"TeeUp", core.DirLeft | core.DirRight | core.DirUp, core.TeeUp},
		{"TeeDown", core.DirLeft | core.DirRight | core.DirDown, core.TeeDown},
		{"Cross", core.DirUp | core.DirDown | core.DirLeft | core.DirRight, core.Cross},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := classify(tt.dirs)
			if err != nil {
				t.Fatalf("classify(%s) failed: %v", tt.dirs, err)
			}
			if got != tt.want {
				t.Errorf("classify(%s) = %s, want %s", tt.dirs, got, tt.want)
			}
		})
	}
}

func TestClassify_InvalidSets(t *testing.T) {
	tests := []struct {
		name string
		dirs core.DirSet
	}{
		{"Empty", 0},
		{"SingleUp", core.DirUp},
		{"SingleRight", core.DirRight},
		{"CollinearVertical", core.DirUp | core.DirDown},
		{"CollinearHorizontal", core.DirLeft | core.DirRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := classify(tt.dirs); !errors.Is(err, ErrInternalClassification) {
				t.Errorf("classify(%s) error = %v, want ErrInternalClassification", tt.dirs, err)
			}
		})
	}
}

func TestIsJunction(t *testing.T) {
	tests := []struct {
		name string
		dirs core.DirSet
		want bool
	}{
		{"Corner", core.DirDown | core.DirRight, true},
		{"Tee", core.DirUp | core.DirDown | core.DirLeft, true},
		{"Cross", core.DirUp | core.DirDown | core.DirLeft | core.DirRight, true},
		{"VerticalRun", core.DirUp | core.DirDown, false},
		{"HorizontalRun", core.DirLeft | core.DirRight, false},
		{"EdgeEnd", core.DirRight, false},
		{"Empty", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isJunction(tt.dirs); got != tt.want {
				t.Errorf("isJunction(%s) = %v, want %v", tt.dirs, got, tt.want)
			}
		})
	}
}
