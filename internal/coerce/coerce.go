// Package coerce converts loosely typed option values into concrete Go types.
// Direct assertions win; numeric kinds convert through reflection; structured
// values fall back to a JSON round-trip.
package coerce

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"time"
)

// To converts value into T. It fails rather than guessing: a lossy or
// ambiguous conversion is an error.
func To[T any](value any) (T, error) {
	var zero T
	if value == nil {
		return zero, fmt.Errorf("coerce: cannot convert nil to %T", zero)
	}
	if typed, ok := value.(T); ok {
		return typed, nil
	}

	target := reflect.TypeOf(zero)

	// time.Duration accepts its string form ("1m30s").
	if target == reflect.TypeOf(time.Duration(0)) {
		if text, ok := value.(string); ok {
			parsed, err := time.ParseDuration(text)
			if err != nil {
				return zero, fmt.Errorf("coerce: %q is not a duration: %w", text, err)
			}
			return any(parsed).(T), nil
		}
	}

	source := reflect.ValueOf(value)
	if isNumericKind(source.Kind()) && isNumericKind(target.Kind()) {
		converted := source.Convert(target)
		// Round-trip to reject lossy conversions (e.g. 1.5 -> int).
		if back := converted.Convert(source.Type()); back.Interface() != source.Interface() {
			return zero, fmt.Errorf("coerce: %v does not convert exactly to %s", value, target)
		}
		return converted.Interface().(T), nil
	}

	if isStructured(target.Kind()) {
		return viaJSON[T](value)
	}
	return zero, fmt.Errorf("coerce: cannot convert %T to %s", value, target)
}

func viaJSON[T any](value any) (T, error) {
	var out T
	payload, err := json.Marshal(value)
	if err != nil {
		return out, fmt.Errorf("coerce: encode %T: %w", value, err)
	}
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()
	if err := dec.Decode(&out); err != nil {
		return out, fmt.Errorf("coerce: decode into %T: %w", out, err)
	}
	return out, nil
}

func isNumericKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func isStructured(kind reflect.Kind) bool {
	switch kind {
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array, reflect.Pointer:
		return true
	default:
		return false
	}
}
