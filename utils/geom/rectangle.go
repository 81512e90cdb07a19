// Package geom holds small geometric value types.
package geom

import "fmt"

// Rectangle is an axis-aligned rectangle described by its dimensions.
type Rectangle struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRectangle creates a rectangle with the given dimensions.
func NewRectangle(width, height float64) Rectangle {
	return Rectangle{Width: width, Height: height}
}

// Area returns the rectangle area.
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}

// RectangleFromValues constructs a rectangle from positional values in
// declaration order: width, height. It is the constructor used when
// rebuilding a rectangle from serialized object members.
func RectangleFromValues(values []any) (Rectangle, error) {
	if len(values) != 2 {
		return Rectangle{}, fmt.Errorf("rectangle requires 2 positional values, got %d", len(values))
	}
	w, ok := values[0].(float64)
	if !ok {
		return Rectangle{}, fmt.Errorf("rectangle width must be a number, got %T", values[0])
	}
	h, ok := values[1].(float64)
	if !ok {
		return Rectangle{}, fmt.Errorf("rectangle height must be a number, got %T", values[1])
	}
	return NewRectangle(w, h), nil
}
