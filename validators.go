package optioneer

import (
	"fmt"
	"reflect"
)

// All combines validators; the first rejection wins.
func All(validators ...Validator) Validator {
	return func(value any) error {
		for _, validator := range validators {
			if validator == nil {
				continue
			}
			if err := validator(value); err != nil {
				return err
			}
		}
		return nil
	}
}

// TypeOf accepts only values assertable to T.
func TypeOf[T any]() Validator {
	return func(value any) error {
		if _, ok := value.(T); !ok {
			var want T
			return fmt.Errorf("expected %T, got %T", want, value)
		}
		return nil
	}
}

// InRange accepts numeric values within [min, max].
func InRange(min, max float64) Validator {
	return func(value any) error {
		number, ok := asFloat(value)
		if !ok {
			return fmt.Errorf("expected a number, got %T", value)
		}
		if number < min || number > max {
			return fmt.Errorf("%v outside range [%v, %v]", value, min, max)
		}
		return nil
	}
}

// Positive accepts numeric values strictly greater than zero.
func Positive() Validator {
	return func(value any) error {
		number, ok := asFloat(value)
		if !ok {
			return fmt.Errorf("expected a number, got %T", value)
		}
		if number <= 0 {
			return fmt.Errorf("%v is not positive", value)
		}
		return nil
	}
}

// OneOf accepts values deep-equal to one of the allowed values.
func OneOf(allowed ...any) Validator {
	return func(value any) error {
		for _, candidate := range allowed {
			if reflect.DeepEqual(value, candidate) {
				return nil
			}
		}
		return fmt.Errorf("%v is not one of %v", value, allowed)
	}
}

// NonEmptyString accepts non-empty strings.
func NonEmptyString() Validator {
	return func(value any) error {
		text, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		if text == "" {
			return fmt.Errorf("string must not be empty")
		}
		return nil
	}
}

func asFloat(value any) (float64, bool) {
	switch typed := value.(type) {
	case int:
		return float64(typed), true
	case int8:
		return float64(typed), true
	case int16:
		return float64(typed), true
	case int32:
		return float64(typed), true
	case int64:
		return float64(typed), true
	case uint:
		return float64(typed), true
	case uint8:
		return float64(typed), true
	case uint16:
		return float64(typed), true
	case uint32:
		return float64(typed), true
	case uint64:
		return float64(typed), true
	case float32:
		return float64(typed), true
	case float64:
		return typed, true
	default:
		return 0, false
	}
}
