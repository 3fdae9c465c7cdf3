package geometry

import "testing"

func TestAbs(t *testing.T) {
	if Abs(-4) != 4 || Abs(4) != 4 || Abs(0) != 0 {
		t.Error("Abs returned wrong values")
	}
}

func TestMinMax(t *testing.T) {
	if Min(2, 5) != 2 || Min(5, 2) != 2 {
		t.Error("Min returned wrong values")
	}
	if Max(2, 5) != 5 || Max(5, 2) != 5 {
		t.Error("Max returned wrong values")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		x, lo, hi, want int
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 0, 0},
	}
	for _, tt := range tests {
		if got := Clamp(tt.x, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.x, tt.lo, tt.hi, got, tt.want)
		}
	}
}
