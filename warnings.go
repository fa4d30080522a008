package optioneer

import (
	"fmt"
	"strings"
	"sync"
)

// Warning is the non-fatal diagnostic emitted on every access to a deprecated
// option. It never prevents the access from completing.
type Warning struct {
	Path           string
	Message        string
	Redirect       string
	RemovalVersion string
}

// WarningHandler receives deprecation warnings.
type WarningHandler interface {
	HandleWarning(Warning)
}

// WarningHandlerFunc adapts a function to WarningHandler.
type WarningHandlerFunc func(Warning)

// HandleWarning implements WarningHandler.
func (f WarningHandlerFunc) HandleWarning(warning Warning) {
	if f != nil {
		f(warning)
	}
}

type noopWarningHandler struct{}

func (noopWarningHandler) HandleWarning(Warning) {}

// CaptureWarnings records warnings for assertions in tests.
type CaptureWarnings struct {
	mu       sync.Mutex
	warnings []Warning
}

// HandleWarning implements WarningHandler.
func (c *CaptureWarnings) HandleWarning(warning Warning) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.warnings = append(c.warnings, warning)
}

// Warnings returns a copy of the recorded warnings.
func (c *CaptureWarnings) Warnings() []Warning {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Warning, len(c.warnings))
	copy(out, c.warnings)
	return out
}

// Reset discards recorded warnings.
func (c *CaptureWarnings) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.warnings = nil
}

// newWarning builds the warning for one access to a deprecated node. When no
// message was stored, the message is generated from the deprecation record:
// "'<path>' is deprecated, removed in <version>, use '<redirect>' instead".
func newWarning(node *option) Warning {
	dep := node.deprecation
	warning := Warning{
		Path:           node.path.String(),
		Message:        dep.Message,
		RemovalVersion: dep.RemovalVersion,
	}
	if !dep.Redirect.IsZero() {
		warning.Redirect = dep.Redirect.String()
	}
	if warning.Message == "" {
		var b strings.Builder
		fmt.Fprintf(&b, "'%s' is deprecated", warning.Path)
		if warning.RemovalVersion != "" {
			fmt.Fprintf(&b, ", removed in %s", warning.RemovalVersion)
		}
		if warning.Redirect != "" {
			fmt.Fprintf(&b, ", use '%s' instead", warning.Redirect)
		}
		warning.Message = b.String()
	}
	return warning
}
