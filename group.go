package optioneer

import "fmt"

// Group is a live, read-through view bound to a path prefix. It owns no state
// beyond the prefix and a reference to its Registry; every read and write
// funnels back through the Registry.
type Group struct {
	registry *Registry
	prefix   Path
}

// Path returns the dotted prefix this view is bound to; empty at the root.
func (g *Group) Path() string {
	return g.prefix.String()
}

// Leaf is a read/write accessor for one option, produced by navigation.
type Leaf struct {
	registry *Registry
	path     Path
}

// Path returns the full dotted path of the option.
func (l *Leaf) Path() string {
	return l.path.String()
}

// Get reads the option's current value through the Registry.
func (l *Leaf) Get() (any, error) {
	return l.registry.Get(l.path.String())
}

// Set writes value through the Registry.
func (l *Leaf) Set(value any) error {
	return l.registry.Set(l.path.String(), value)
}

// Navigate resolves one path segment under the view's prefix. Exactly one of
// the results is non-nil: a Leaf when the extended path is a registered
// option (deprecated options stay addressable), a deeper Group when it is a
// proper prefix of one or more registered options. Unknown segments fail with
// ErrUnknownOption.
func (g *Group) Navigate(segment string) (*Group, *Leaf, error) {
	if !validSegment(segment) {
		return nil, nil, fmt.Errorf("%w: segment %q", ErrInvalidPath, segment)
	}
	full := g.prefix.Join(segment)
	if g.registry.hasNode(full) {
		return nil, &Leaf{registry: g.registry, path: full}, nil
	}
	if g.registry.hasGroup(full) {
		return &Group{registry: g.registry, prefix: full}, nil, nil
	}
	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownOption, full.String())
}

// Get reads the option at the dotted path relative to the view's prefix.
func (g *Group) Get(relPath string) (any, error) {
	full, err := g.resolve(relPath)
	if err != nil {
		return nil, err
	}
	return g.registry.Get(full)
}

// Set writes the option at the dotted path relative to the view's prefix.
func (g *Group) Set(relPath string, value any) error {
	full, err := g.resolve(relPath)
	if err != nil {
		return err
	}
	return g.registry.Set(full, value)
}

func (g *Group) resolve(relPath string) (string, error) {
	rel, err := ParsePath(relPath)
	if err != nil {
		return "", err
	}
	return g.prefix.Extend(rel).String(), nil
}

// Children returns the immediate next segment of every non-deprecated path
// under this view's prefix, deduplicated and sorted lexicographically.
func (g *Group) Children() []string {
	return g.registry.children(g.prefix)
}

// Describe reports the non-deprecated options under this view's prefix.
func (g *Group) Describe() (Report, error) {
	return g.registry.Describe(g.prefix.String())
}

// String renders the scoped report; errors surface as the rendered text so
// the view stays usable in format strings.
func (g *Group) String() string {
	report, err := g.Describe()
	if err != nil {
		return fmt.Sprintf("optioneer: %v", err)
	}
	return report.String()
}
