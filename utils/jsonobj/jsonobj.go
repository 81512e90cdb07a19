// Package jsonobj serializes structured values to JSON text and rebuilds
// typed values back from it through positional constructors.
//
// Reconstruction is strictly positional: object member values are handed to
// the constructor in document order, so member order must match the
// constructor's expected parameter order. There is no field name matching -
// the serialized form carries no metadata to support it.
package jsonobj

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Ctor builds a value of type T from positional arguments. Implementations
// must fail when the argument count or types do not match.
type Ctor[T any] func(values []any) (T, error)

// Marshal returns JSON text for v.
func Marshal(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("unable to serialize value: %w", err)
	}
	return string(data), nil
}

// Values parses text as a JSON object and returns its member values in
// document order. Member names are read and discarded.
func Values(text string) ([]any, error) {
	dec := json.NewDecoder(strings.NewReader(text))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("unable to parse serialized object: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("serialized text is not an object")
	}

	var values []any
	for dec.More() {
		if _, err := dec.Token(); err != nil {
			return nil, fmt.Errorf("unable to read member name: %w", err)
		}
		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("unable to read member value: %w", err)
		}
		values = append(values, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("unable to parse serialized object: %w", err)
	}
	return values, nil
}

// Reconstruct parses text as a JSON object and invokes ctor with the member
// values in document order.
func Reconstruct[T any](text string, ctor Ctor[T]) (T, error) {
	values, err := Values(text)
	if err != nil {
		var zero T
		return zero, err
	}
	return ctor(values)
}
