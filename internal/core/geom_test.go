package core

import "testing"

func TestCircleIntersects(t *testing.T) {
	rect := RectF{X: 100, Y: 100, W: 70, H: 600}

	tests := []struct {
		name     string
		circle   Circle
		expected bool
	}{
		{
			name:     "centre inside rect",
			circle:   Circle{Center: Vec2{X: 120, Y: 200}, Radius: 30},
			expected: true,
		},
		{
			name:     "left of rect, within radius",
			circle:   Circle{Center: Vec2{X: 80, Y: 300}, Radius: 30},
			expected: true,
		},
		{
			name:     "left of rect, out of reach",
			circle:   Circle{Center: Vec2{X: 60, Y: 300}, Radius: 30},
			expected: false,
		},
		{
			name:     "touching left edge",
			circle:   Circle{Center: Vec2{X: 70, Y: 300}, Radius: 30},
			expected: true,
		},
		{
			name:     "above rect",
			circle:   Circle{Center: Vec2{X: 130, Y: 50}, Radius: 30},
			expected: false,
		},
		{
			name:     "near corner but outside",
			circle:   Circle{Center: Vec2{X: 80, Y: 80}, Radius: 25},
			expected: false,
		},
		{
			name:     "near corner and inside",
			circle:   Circle{Center: Vec2{X: 85, Y: 85}, Radius: 25},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.circle.Intersects(rect); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectFEdges(t *testing.T) {
	r := RectF{X: 5, Y: 10, W: 20, H: 15}

	if r.Right() != 25 {
		t.Errorf("Right() = %f, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %f, expected 25", r.Bottom())
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 10, 20, 15)
	if r.Right() != 30 || r.Bottom() != 25 {
		t.Errorf("edges = (%d, %d), expected (30, 25)", r.Right(), r.Bottom())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}
