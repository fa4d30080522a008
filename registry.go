package optioneer

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-optioneer/pkg/activity"
)

// Registry owns the full set of registered options. Groups are not stored:
// they are computed views over common path prefixes. A Registry is safe for
// concurrent use; registration and writes are mutually excluded, and a value
// is only ever replaced wholesale after its validator accepted it.
type Registry struct {
	mu     sync.RWMutex
	nodes  map[string]*option
	groups map[string]int // leaf count under each proper prefix

	warnings WarningHandler
	logger   AccessLogger
	hooks    activity.Hooks
}

// RegistryOption configures a Registry at construction.
type RegistryOption func(*registryConfig)

type registryConfig struct {
	warnings WarningHandler
	logger   AccessLogger
	hooks    activity.Hooks
}

// WithWarningHandler installs the sink for deprecation warnings. Without one,
// warnings are dropped.
func WithWarningHandler(handler WarningHandler) RegistryOption {
	return func(cfg *registryConfig) {
		if handler != nil {
			cfg.warnings = handler
		}
	}
}

// WithAccessLogger installs a logger invoked after each registry operation.
func WithAccessLogger(logger AccessLogger) RegistryOption {
	return func(cfg *registryConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithActivityHooks attaches lifecycle hooks notified after registrations,
// value changes, deprecations, and restores. Hook failures are logged, never
// surfaced to the caller.
func WithActivityHooks(hooks activity.Hooks) RegistryOption {
	return func(cfg *registryConfig) {
		cfg.hooks = hooks
	}
}

// New constructs an empty Registry.
func New(opts ...RegistryOption) *Registry {
	cfg := registryConfig{
		warnings: noopWarningHandler{},
		logger:   noopAccessLogger{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Registry{
		nodes:    map[string]*option{},
		groups:   map[string]int{},
		warnings: cfg.warnings,
		logger:   cfg.logger,
		hooks:    cfg.hooks,
	}
}

// RegisterOption configures a single option at registration.
type RegisterOption func(*registerConfig)

type registerConfig struct {
	doc       string
	validator Validator
	callback  Callback
	rule      *ruleBinding
}

type ruleBinding struct {
	expression string
	opts       []RuleOption
}

// WithDoc attaches a free-text description rendered by Describe.
func WithDoc(doc string) RegisterOption {
	return func(cfg *registerConfig) {
		cfg.doc = doc
	}
}

// WithValidator attaches a validator applied to the default value immediately
// and to every subsequent Set.
func WithValidator(validator Validator) RegisterOption {
	return func(cfg *registerConfig) {
		cfg.validator = validator
	}
}

// WithCallback attaches a callback invoked with the new value after each
// successful change. Callbacks do not fire for registration.
func WithCallback(callback Callback) RegisterOption {
	return func(cfg *registerConfig) {
		cfg.callback = callback
	}
}

// WithRule compiles a rule expression into the option's validator at
// registration time, binding the option's path and default value into the
// rule context alongside "value". Compilation failures fail the registration.
// Combines with WithValidator; both must accept.
func WithRule(expression string, opts ...RuleOption) RegisterOption {
	return func(cfg *registerConfig) {
		cfg.rule = &ruleBinding{expression: expression, opts: opts}
	}
}

// Register creates an option at path with the given default value. The
// current value starts equal to the default. Fails with ErrDuplicateOption if
// the path is taken, ErrPathCollision if the path is an ancestor or
// descendant of an existing leaf, and ErrInvalidDefault if the default fails
// its own validator.
func (r *Registry) Register(path string, defaultValue any, opts ...RegisterOption) error {
	key, err := ParsePath(path)
	if err != nil {
		return err
	}
	cfg := registerConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.rule != nil {
		run, rerr := compileRule(cfg.rule.expression, cfg.rule.opts...)
		if rerr != nil {
			return rerr
		}
		dotted := key.String()
		bound := Validator(func(value any) error {
			return run(ValueContext{Path: dotted, Value: value, Default: defaultValue})
		})
		if cfg.validator != nil {
			cfg.validator = All(cfg.validator, bound)
		} else {
			cfg.validator = bound
		}
	}
	if cfg.validator != nil {
		if verr := cfg.validator(defaultValue); verr != nil {
			return fmt.Errorf("%w: option %q default %v: %v", ErrInvalidDefault, key.String(), defaultValue, verr)
		}
	}

	start := time.Now()
	r.mu.Lock()
	err = r.registerLocked(key, defaultValue, cfg)
	r.mu.Unlock()

	r.logger.LogAccess(AccessEvent{Op: "register", Path: key.String(), Resolved: key.String(), Duration: time.Since(start), Err: err})
	if err != nil {
		return err
	}
	r.notify(activity.BuildRegisteredEvent(key.String(), defaultValue))
	return nil
}

func (r *Registry) registerLocked(key Path, defaultValue any, cfg registerConfig) error {
	dotted := key.String()
	if _, exists := r.nodes[dotted]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateOption, dotted)
	}
	if count := r.groups[dotted]; count > 0 {
		return fmt.Errorf("%w: %q is a group containing %d option(s)", ErrPathCollision, dotted, count)
	}
	segments := key.Segments()
	for i := 1; i < len(segments); i++ {
		prefix := strings.Join(segments[:i], ".")
		if _, exists := r.nodes[prefix]; exists {
			return fmt.Errorf("%w: %q is already a registered option", ErrPathCollision, prefix)
		}
	}

	r.nodes[dotted] = &option{
		path:         key,
		doc:          cfg.doc,
		defaultValue: defaultValue,
		currentValue: defaultValue,
		validator:    cfg.validator,
		callback:     cfg.callback,
	}
	for i := 1; i < len(segments); i++ {
		r.groups[strings.Join(segments[:i], ".")]++
	}
	return nil
}

// MustRegister is Register for load-time wiring; it panics on error.
func (r *Registry) MustRegister(path string, defaultValue any, opts ...RegisterOption) {
	if err := r.Register(path, defaultValue, opts...); err != nil {
		panic(err)
	}
}

// Get returns the current value at path, following at most one deprecation
// redirect. Accessing a deprecated option emits a warning; the access itself
// always completes unless the path (or its redirect target) is unknown.
func (r *Registry) Get(path string) (any, error) {
	key, err := ParsePath(path)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	r.mu.RLock()
	node, warning, err := r.resolveLocked(key)
	var value any
	var resolved string
	if err == nil {
		value = node.currentValue
		resolved = node.path.String()
	}
	r.mu.RUnlock()

	if warning != nil {
		r.warnings.HandleWarning(*warning)
	}
	r.logger.LogAccess(AccessEvent{Op: "get", Path: key.String(), Resolved: resolved, Duration: time.Since(start), Err: err})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Set stores value at path, redirects resolved first so old call sites keep
// writing to the replacement option. Validation and commit happen inside one
// critical section: a failed validation leaves the stored value untouched and
// returns a *ValidationError. The callback runs synchronously after commit;
// its error is returned as a *CallbackError but the change stays committed.
func (r *Registry) Set(path string, value any) error {
	key, err := ParsePath(path)
	if err != nil {
		return err
	}

	start := time.Now()
	r.mu.Lock()
	node, warning, err := r.resolveLocked(key)
	var resolved string
	var oldValue any
	var callback Callback
	if err == nil {
		resolved = node.path.String()
		if verr := node.validate(value); verr != nil {
			err = &ValidationError{Path: resolved, Value: value, Err: verr}
		} else {
			oldValue = node.currentValue
			node.currentValue = value
			callback = node.callback
		}
	}
	r.mu.Unlock()

	if warning != nil {
		r.warnings.HandleWarning(*warning)
	}
	r.logger.LogAccess(AccessEvent{Op: "set", Path: key.String(), Resolved: resolved, Duration: time.Since(start), Err: err})
	if err != nil {
		return err
	}

	r.notify(activity.BuildUpdatedEvent(resolved, oldValue, value))
	if callback != nil {
		if cerr := callback(value); cerr != nil {
			return &CallbackError{Path: resolved, Err: cerr}
		}
	}
	return nil
}

// resolveLocked finds the node servicing path: the node itself when active or
// deprecated without redirect, the redirect target otherwise. The returned
// warning is non-nil whenever the addressed node is deprecated, regardless of
// whether resolution ultimately succeeds.
func (r *Registry) resolveLocked(path Path) (*option, *Warning, error) {
	dotted := path.String()
	node, ok := r.nodes[dotted]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownOption, dotted)
	}
	if node.deprecation == nil {
		return node, nil, nil
	}
	warning := newWarning(node)
	if !node.redirected() {
		return node, &warning, nil
	}
	redirect := node.deprecation.Redirect.String()
	target, ok := r.nodes[redirect]
	if !ok {
		return nil, &warning, fmt.Errorf("%w: redirect target %q of %q", ErrUnknownOption, redirect, dotted)
	}
	if target.deprecated() {
		return nil, &warning, fmt.Errorf("%w: %q -> %q", ErrRedirectChain, dotted, redirect)
	}
	return target, &warning, nil
}

// DeprecateOption configures a deprecation record.
type DeprecateOption func(*deprecateConfig)

type deprecateConfig struct {
	message        string
	redirect       string
	removalVersion string
}

// WithMessage sets the warning text emitted on access. When empty, a message
// is generated from the redirect path and removal version.
func WithMessage(message string) DeprecateOption {
	return func(cfg *deprecateConfig) {
		cfg.message = message
	}
}

// WithRedirect points the deprecated option at its active replacement. Reads
// and writes on the old path are serviced by the target from then on.
func WithRedirect(path string) DeprecateOption {
	return func(cfg *deprecateConfig) {
		cfg.redirect = path
	}
}

// WithRemovalVersion records the version in which the option will disappear.
func WithRemovalVersion(version string) DeprecateOption {
	return func(cfg *deprecateConfig) {
		cfg.removalVersion = version
	}
}

// Deprecate attaches a deprecation record to the option at path. The option
// stays addressable but vanishes from Describe and Children. Re-deprecation
// overwrites the previous record. The redirect target, when given, must be a
// registered, active option distinct from path.
func (r *Registry) Deprecate(path string, opts ...DeprecateOption) error {
	key, err := ParsePath(path)
	if err != nil {
		return err
	}
	cfg := deprecateConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	var redirect Path
	if cfg.redirect != "" {
		redirect, err = ParsePath(cfg.redirect)
		if err != nil {
			return err
		}
	}

	start := time.Now()
	r.mu.Lock()
	err = r.deprecateLocked(key, redirect, cfg)
	r.mu.Unlock()

	r.logger.LogAccess(AccessEvent{Op: "deprecate", Path: key.String(), Resolved: key.String(), Duration: time.Since(start), Err: err})
	if err != nil {
		return err
	}
	r.notify(activity.BuildDeprecatedEvent(key.String(), cfg.redirect))
	return nil
}

func (r *Registry) deprecateLocked(key, redirect Path, cfg deprecateConfig) error {
	dotted := key.String()
	node, ok := r.nodes[dotted]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownOption, dotted)
	}
	if !redirect.IsZero() {
		if redirect.Equal(key) {
			return fmt.Errorf("%w: %q cannot redirect to itself", ErrRedirectChain, dotted)
		}
		target, ok := r.nodes[redirect.String()]
		if !ok {
			return fmt.Errorf("%w: redirect target %q", ErrUnknownOption, redirect.String())
		}
		if target.deprecated() {
			return fmt.Errorf("%w: %q -> %q", ErrRedirectChain, dotted, redirect.String())
		}
	}
	node.deprecation = &Deprecation{
		Message:        cfg.message,
		Redirect:       redirect,
		RemovalVersion: cfg.removalVersion,
	}
	return nil
}

// Describe builds a report over every non-deprecated option whose path is
// under prefix. An empty prefix covers the whole registry. Fails with
// ErrUnknownOption when a non-empty prefix matches neither an option nor a
// group.
func (r *Registry) Describe(prefix string) (Report, error) {
	var scope Path
	if prefix != "" {
		parsed, err := ParsePath(prefix)
		if err != nil {
			return Report{}, err
		}
		scope = parsed
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if !scope.IsZero() {
		dotted := scope.String()
		if _, isLeaf := r.nodes[dotted]; !isLeaf && r.groups[dotted] == 0 {
			return Report{}, fmt.Errorf("%w: %q", ErrUnknownOption, dotted)
		}
	}

	report := Report{Scope: scope.String()}
	for _, node := range r.nodes {
		if node.deprecated() || !scope.IsPrefixOf(node.path) {
			continue
		}
		report.Entries = append(report.Entries, ReportEntry{
			Path:    node.path.String(),
			Doc:     node.doc,
			Default: node.defaultValue,
			Current: node.currentValue,
		})
	}
	sort.Slice(report.Entries, func(i, j int) bool {
		return report.Entries[i].Path < report.Entries[j].Path
	})
	return report, nil
}

// Root returns a Group view bound to the registry root.
func (r *Registry) Root() *Group {
	return &Group{registry: r}
}

// Paths returns the dotted paths of all non-deprecated options, sorted.
func (r *Registry) Paths() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	paths := make([]string, 0, len(r.nodes))
	for dotted, node := range r.nodes {
		if node.deprecated() {
			continue
		}
		paths = append(paths, dotted)
	}
	sort.Strings(paths)
	return paths
}

// Len returns the total number of registered options, deprecated included.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.nodes)
}

// children returns the deduplicated, sorted next segments of every
// non-deprecated path under scope. This is the discoverability contract.
func (r *Registry) children(scope Path) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := map[string]struct{}{}
	for _, node := range r.nodes {
		if node.deprecated() || !scope.IsPrefixOf(node.path) || node.path.Len() == scope.Len() {
			continue
		}
		seen[node.path.segments[scope.Len()]] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for segment := range seen {
		out = append(out, segment)
	}
	sort.Strings(out)
	return out
}

// hasNode reports whether a leaf (deprecated or not) exists at path.
func (r *Registry) hasNode(path Path) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.nodes[path.String()]
	return ok
}

// hasGroup reports whether path is a proper prefix of any registered leaf.
func (r *Registry) hasGroup(path Path) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.groups[path.String()] > 0
}

func (r *Registry) notify(event activity.Event) {
	if !r.hooks.Enabled() {
		return
	}
	if err := r.hooks.Notify(context.Background(), event); err != nil {
		r.logger.LogAccess(AccessEvent{Op: "notify", Path: event.Path, Err: err})
	}
}
