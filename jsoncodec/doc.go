// Package jsoncodec pairs a canonical JSON serializer with a positional,
// key-ordered deserializer.
//
// Serialize renders a value to JSON text with struct fields in declaration
// order (standard-library-compatible encoding via json-iterator).
//
// Deserialize streams the top-level JSON object in key order and passes the
// decoded values POSITIONALLY to a caller-supplied constructor. The contract
// is the caller's to uphold: the constructor's parameter order must match the
// JSON object's key order. The function cannot check this — a mismatched
// order yields a value with fields swapped, or a type-assertion failure
// inside the constructor. Serialize followed by Deserialize with a matching
// constructor reproduces an equivalent value.
//
// Decoded values use the generic JSON mapping: numbers arrive as float64,
// strings as string, booleans as bool, null as nil, arrays as []interface{}
// and nested objects as map[string]interface{}.
package jsoncodec
