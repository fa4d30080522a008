package optioneer

import (
	"time"

	"github.com/goliatone/go-optioneer/internal/coerce"
)

// GetString reads path and coerces the value to a string.
func (r *Registry) GetString(path string) (string, error) {
	return getAs[string](r, path)
}

// GetInt reads path and coerces the value to an int.
func (r *Registry) GetInt(path string) (int, error) {
	return getAs[int](r, path)
}

// GetBool reads path and coerces the value to a bool.
func (r *Registry) GetBool(path string) (bool, error) {
	return getAs[bool](r, path)
}

// GetFloat reads path and coerces the value to a float64.
func (r *Registry) GetFloat(path string) (float64, error) {
	return getAs[float64](r, path)
}

// GetDuration reads path and coerces the value to a time.Duration. String
// values are parsed with time.ParseDuration.
func (r *Registry) GetDuration(path string) (time.Duration, error) {
	return getAs[time.Duration](r, path)
}

func getAs[T any](r *Registry, path string) (T, error) {
	var zero T
	value, err := r.Get(path)
	if err != nil {
		return zero, err
	}
	return coerce.To[T](value)
}
