package optioneer

// Validator checks a candidate value before it is stored. A nil Validator
// accepts anything.
type Validator func(value any) error

// Callback is invoked with the new value after a successful change commits.
// An error propagates to the Set caller but does not roll the change back.
type Callback func(value any) error

// Deprecation marks an option as deprecated. Redirect, when non-zero, names
// the active replacement option that services reads and writes on the old
// path.
type Deprecation struct {
	Message        string
	Redirect       Path
	RemovalVersion string
}

// option is one registered leaf. Created by Register, mutated in place by Set
// (currentValue) and Deprecate (deprecation), never deleted.
type option struct {
	path         Path
	doc          string
	defaultValue any
	currentValue any
	validator    Validator
	callback     Callback
	deprecation  *Deprecation
}

func (o *option) deprecated() bool {
	return o.deprecation != nil
}

func (o *option) redirected() bool {
	return o.deprecation != nil && !o.deprecation.Redirect.IsZero()
}

// validate runs the option's validator against value, if one is configured.
func (o *option) validate(value any) error {
	if o.validator == nil {
		return nil
	}
	return o.validator(value)
}
