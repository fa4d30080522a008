package optioneer

import "time"

// ValueContext carries the inputs a rule expression sees when validating a
// candidate value.
type ValueContext struct {
	Path     string
	Value    any
	Default  any
	Now      *time.Time
	Args     map[string]any
	Metadata map[string]any
}

func (ctx ValueContext) withDefaultNow() ValueContext {
	if ctx.Now != nil {
		return ctx
	}
	now := time.Now()
	ctx.Now = &now
	return ctx
}

func (ctx ValueContext) timestamp() time.Time {
	ctx = ctx.withDefaultNow()
	return *ctx.Now
}

func (ctx ValueContext) withDefaultMaps() ValueContext {
	if ctx.Args == nil {
		ctx.Args = map[string]any{}
	}
	if ctx.Metadata == nil {
		ctx.Metadata = map[string]any{}
	}
	return ctx
}

func (ctx ValueContext) withDefaults() ValueContext {
	return ctx.withDefaultNow().withDefaultMaps()
}

// Evaluator executes rule expressions against a value context.
type Evaluator interface {
	Evaluate(ctx ValueContext, expr string) (any, error)
	Compile(expr string, opts ...CompileOption) (CompiledRule, error)
}

// CompiledRule represents a reusable expression program.
type CompiledRule interface {
	Evaluate(ctx ValueContext) (any, error)
}

// CompileOption configures evaluator compile behaviour.
type CompileOption interface {
	applyCompileOption(*compileConfig)
}

type compileConfig struct{}

type compileOptionFunc func(*compileConfig)

func (f compileOptionFunc) applyCompileOption(cfg *compileConfig) {
	if f != nil {
		f(cfg)
	}
}
