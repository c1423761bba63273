package jsoncodec

import (
	"errors"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

// Sentinel errors for the codec.
var (
	// ErrNotObject is returned when Deserialize input is valid JSON but not
	// a top-level object.
	ErrNotObject = errors.New("jsoncodec: top-level value is not an object")

	// ErrDecode is returned when the input is not valid JSON.
	ErrDecode = errors.New("jsoncodec: malformed JSON")

	// ErrEncode is returned when a value cannot be rendered as JSON
	// (channels, functions, cyclic data, unsupported map keys, ...).
	ErrEncode = errors.New("jsoncodec: value not serializable")

	// ErrNilConstructor is returned when Deserialize receives a nil ctor.
	ErrNilConstructor = errors.New("jsoncodec: nil constructor")
)

// json is the standard-library-compatible jsoniter frontend; it preserves
// struct field declaration order on encode.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Serialize renders v as canonical JSON text. Struct fields appear in
// declaration order; the output round-trips through Deserialize.
func Serialize(v any) (string, error) {
	s, err := json.MarshalToString(v)
	if err != nil {
		return "", fmt.Errorf("Serialize: %v: %w", err, ErrEncode)
	}
	return s, nil
}

// Deserialize parses text as a single JSON object, decodes its values in key
// order, and passes them positionally to ctor to build the result.
//
// Precondition (caller contract): ctor's parameter order must exactly match
// the object's key order. A violated precondition is NOT detectable here and
// yields a swapped-field value or a ctor-side failure.
func Deserialize[T any](text string, ctor func(values ...any) T) (T, error) {
	var zero T
	if ctor == nil {
		return zero, fmt.Errorf("Deserialize: %w", ErrNilConstructor)
	}

	it := jsoniter.ParseString(json, text)
	if it.WhatIsNext() != jsoniter.ObjectValue {
		if it.Error != nil {
			return zero, fmt.Errorf("Deserialize: %v: %w", it.Error, ErrDecode)
		}
		return zero, fmt.Errorf("Deserialize: %w", ErrNotObject)
	}

	// Stream fields in document order; Read maps each value to the generic
	// JSON representation (float64/string/bool/nil/slice/map). The callback
	// walk keeps an empty-string key ({"":1}) as an ordinary field instead
	// of mistaking it for end-of-object.
	var values []any
	it.ReadObjectCB(func(it *jsoniter.Iterator, _ string) bool {
		values = append(values, it.Read())
		return true
	})
	// A cleanly closed object leaves the iterator error nil; anything else
	// (including io.EOF from a truncated object) is malformed input.
	if it.Error != nil {
		if errors.Is(it.Error, io.EOF) {
			return zero, fmt.Errorf("Deserialize: truncated object: %w", ErrDecode)
		}
		return zero, fmt.Errorf("Deserialize: %v: %w", it.Error, ErrDecode)
	}

	return ctor(values...), nil
}
