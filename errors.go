package optioneer

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPath indicates a malformed path string.
	ErrInvalidPath = errors.New("optioneer: invalid path")
	// ErrDuplicateOption indicates a second registration at an existing path.
	ErrDuplicateOption = errors.New("optioneer: option already registered")
	// ErrPathCollision indicates a path that is a group ancestor of an
	// existing leaf, or vice versa.
	ErrPathCollision = errors.New("optioneer: path collision")
	// ErrInvalidDefault indicates a default value rejected by its own
	// validator at registration time.
	ErrInvalidDefault = errors.New("optioneer: invalid default value")
	// ErrUnknownOption indicates a lookup, set, or deprecation against a path
	// with no registered option.
	ErrUnknownOption = errors.New("optioneer: unknown option")
	// ErrRedirectChain indicates a redirect whose target is itself deprecated.
	// Multi-hop redirects are unsupported; a redirect target must be active.
	ErrRedirectChain = errors.New("optioneer: redirect target is deprecated")
)

// ValidationError reports a candidate value rejected by an option's validator.
// The option's stored value is unchanged when this error is returned.
type ValidationError struct {
	Path  string
	Value any
	Err   error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("optioneer: option %q rejected value %v: %v", e.Path, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// CallbackError reports a change callback that failed after the value was
// already committed. Callers must not treat it as evidence the set was rolled
// back.
type CallbackError struct {
	Path string
	Err  error
}

func (e *CallbackError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("optioneer: option %q callback: %v", e.Path, e.Err)
}

func (e *CallbackError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
