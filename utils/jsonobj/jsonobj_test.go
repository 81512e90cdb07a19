package jsonobj_test

import (
	"testing"

	"cssb/utils/geom"
	"cssb/utils/jsonobj"
)

func TestMarshal(t *testing.T) {
	got, err := jsonobj.Marshal(geom.NewRectangle(10, 20))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if want := `{"width":10,"height":20}`; got != want {
		t.Errorf("Marshal() = %q, want %q", got, want)
	}
}

func TestValues_DocumentOrder(t *testing.T) {
	values, err := jsonobj.Values(`{"b":2,"a":1,"nested":{"x":true},"list":[1,2]}`)
	if err != nil {
		t.Fatalf("Values() error = %v", err)
	}
	if len(values) != 4 {
		t.Fatalf("Values() returned %d values, want 4", len(values))
	}
	if values[0] != 2.0 || values[1] != 1.0 {
		t.Errorf("Values() order = %v, want member values in document order", values[:2])
	}
}

func TestValues_NotAnObject(t *testing.T) {
	for _, text := range []string{`[1,2]`, `42`, `"text"`, `{"a":1`} {
		if _, err := jsonobj.Values(text); err == nil {
			t.Errorf("Values(%q) expected error", text)
		}
	}
}

func TestReconstruct_RoundTrip(t *testing.T) {
	orig := geom.NewRectangle(10, 20)

	text, err := jsonobj.Marshal(orig)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	rebuilt, err := jsonobj.Reconstruct(text, geom.RectangleFromValues)
	if err != nil {
		t.Fatalf("Reconstruct() error = %v", err)
	}
	if rebuilt.Area() != orig.Area() {
		t.Errorf("round-trip Area() = %v, want %v", rebuilt.Area(), orig.Area())
	}
}

func TestReconstruct_PositionalMismatch(t *testing.T) {
	// Member order drives argument order - swapped members produce a
	// transposed rectangle, not an error. Documented contract.
	r, err := jsonobj.Reconstruct(`{"height":20,"width":10}`, geom.RectangleFromValues)
	if err != nil {
		t.Fatalf("Reconstruct() error = %v", err)
	}
	if r.Width != 20 || r.Height != 10 {
		t.Errorf("Reconstruct() = %+v, want transposed dimensions", r)
	}

	// Wrong member count fails in the constructor.
	if _, err := jsonobj.Reconstruct(`{"width":10}`, geom.RectangleFromValues); err == nil {
		t.Error("expected error for member count mismatch")
	}
}
