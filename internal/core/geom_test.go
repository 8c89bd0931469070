package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 4, 10, 3)

	if r.Right() != 12 {
		t.Errorf("Right() = %d, expected 12", r.Right())
	}
	if r.Bottom() != 7 {
		t.Errorf("Bottom() = %d, expected 7", r.Bottom())
	}
}

func TestRectCentered(t *testing.T) {
	tests := []struct {
		name     string
		outer    Rect
		w, h     int
		expected Rect
	}{
		{
			name:     "even fit",
			outer:    NewRect(0, 0, 80, 24),
			w:        20,
			h:        4,
			expected: NewRect(30, 10, 20, 4),
		},
		{
			name:     "odd remainder rounds down",
			outer:    NewRect(0, 0, 11, 5),
			w:        4,
			h:        2,
			expected: NewRect(3, 1, 4, 2),
		},
		{
			name:     "offset outer",
			outer:    NewRect(10, 5, 20, 10),
			w:        10,
			h:        2,
			expected: NewRect(15, 9, 10, 2),
		},
		{
			name:     "same size",
			outer:    NewRect(3, 3, 6, 6),
			w:        6,
			h:        6,
			expected: NewRect(3, 3, 6, 6),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.outer.Centered(tt.w, tt.h)
			if got != tt.expected {
				t.Errorf("Centered(%d, %d) = %+v, expected %+v", tt.w, tt.h, got, tt.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below lo
		{15, 0, 10, 10}, // above hi
		{0, 0, 10, 0},   // at lo
		{10, 0, 10, 10}, // at hi
		{300, 1, 255, 255},
	}

	for _, tt := range tests {
		result := Clamp(tt.val, tt.lo, tt.hi)
		if result != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.lo, tt.hi, result, tt.expected)
		}
	}
}
