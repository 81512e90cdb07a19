package geom_test

import (
	"testing"

	"cssb/utils/geom"
)

func TestRectangle_Area(t *testing.T) {
	tests := []struct {
		width, height, want float64
	}{
		{10, 20, 200},
		{3.5, 2, 7},
		{0, 5, 0},
	}

	for _, tt := range tests {
		r := geom.NewRectangle(tt.width, tt.height)
		if got := r.Area(); got != tt.want {
			t.Errorf("NewRectangle(%v, %v).Area() = %v, want %v", tt.width, tt.height, got, tt.want)
		}
	}
}

func TestRectangleFromValues(t *testing.T) {
	r, err := geom.RectangleFromValues([]any{10.0, 20.0})
	if err != nil {
		t.Fatalf("RectangleFromValues() error = %v", err)
	}
	if r.Width != 10 || r.Height != 20 {
		t.Errorf("RectangleFromValues() = %+v, want width 10 height 20", r)
	}

	if _, err := geom.RectangleFromValues([]any{10.0}); err == nil {
		t.Error("expected error for wrong value count")
	}
	if _, err := geom.RectangleFromValues([]any{10.0, "20"}); err == nil {
		t.Error("expected error for wrong value type")
	}
}
