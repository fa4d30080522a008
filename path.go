package optioneer

import (
	"fmt"
	"strings"
)

// Path is a parsed dotted option path ("display.width"). The zero value is
// the root path: it has no segments and is a prefix of every other path.
type Path struct {
	segments []string
}

// ParsePath splits text on "." and validates each segment. Segments must be
// identifiers: a lowercase letter or underscore followed by lowercase
// letters, digits, or underscores. Fails with ErrInvalidPath otherwise.
func ParsePath(text string) (Path, error) {
	if text == "" {
		return Path{}, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	segments := strings.Split(text, ".")
	for _, segment := range segments {
		if !validSegment(segment) {
			return Path{}, fmt.Errorf("%w: %q", ErrInvalidPath, text)
		}
	}
	return Path{segments: segments}, nil
}

// MustParsePath is ParsePath for load-time literals; it panics on error.
func MustParsePath(text string) Path {
	path, err := ParsePath(text)
	if err != nil {
		panic(err)
	}
	return path
}

func validSegment(segment string) bool {
	if segment == "" {
		return false
	}
	for i, r := range segment {
		switch {
		case r == '_' || (r >= 'a' && r <= 'z'):
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// String returns the dotted form. Ordering for deterministic rendering is
// lexicographic over this form.
func (p Path) String() string {
	return strings.Join(p.segments, ".")
}

// Segments returns a defensive copy of the segment list.
func (p Path) Segments() []string {
	if len(p.segments) == 0 {
		return nil
	}
	out := make([]string, len(p.segments))
	copy(out, p.segments)
	return out
}

// Len returns the number of segments.
func (p Path) Len() int {
	return len(p.segments)
}

// IsZero reports whether p is the root path.
func (p Path) IsZero() bool {
	return len(p.segments) == 0
}

// Equal reports segment-wise equality.
func (p Path) Equal(other Path) bool {
	if len(p.segments) != len(other.segments) {
		return false
	}
	for i := range p.segments {
		if p.segments[i] != other.segments[i] {
			return false
		}
	}
	return true
}

// IsPrefixOf reports whether other's segments start with all of p's segments.
// The root path is a prefix of everything; a path is a prefix of itself.
func (p Path) IsPrefixOf(other Path) bool {
	if len(p.segments) > len(other.segments) {
		return false
	}
	for i := range p.segments {
		if p.segments[i] != other.segments[i] {
			return false
		}
	}
	return true
}

// Join returns a new path with segment appended. The segment must be valid;
// Join panics otherwise since callers should have validated navigation input.
func (p Path) Join(segment string) Path {
	if !validSegment(segment) {
		panic(fmt.Sprintf("optioneer: invalid path segment %q", segment))
	}
	segments := make([]string, 0, len(p.segments)+1)
	segments = append(segments, p.segments...)
	segments = append(segments, segment)
	return Path{segments: segments}
}

// Extend returns p with all of other's segments appended.
func (p Path) Extend(other Path) Path {
	if other.IsZero() {
		return p
	}
	segments := make([]string, 0, len(p.segments)+len(other.segments))
	segments = append(segments, p.segments...)
	segments = append(segments, other.segments...)
	return Path{segments: segments}
}
