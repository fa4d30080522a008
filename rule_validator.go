package optioneer

import (
	"fmt"
	"time"
)

// RuleOption configures a rule-backed validator.
type RuleOption func(*ruleConfig)

type ruleConfig struct {
	evaluator Evaluator
	cache     ProgramCache
	functions *FunctionRegistry
	logger    RuleLogger
	args      map[string]any
}

// RuleWithEvaluator selects the engine running the rule. Defaults to the expr
// evaluator.
func RuleWithEvaluator(evaluator Evaluator) RuleOption {
	return func(cfg *ruleConfig) {
		cfg.evaluator = evaluator
	}
}

// RuleWithProgramCache caches the compiled rule program. Only consulted when
// the default evaluator is constructed; explicit evaluators bring their own.
func RuleWithProgramCache(cache ProgramCache) RuleOption {
	return func(cfg *ruleConfig) {
		cfg.cache = cache
	}
}

// RuleWithFunctionRegistry exposes custom functions to the rule expression.
func RuleWithFunctionRegistry(registry *FunctionRegistry) RuleOption {
	return func(cfg *ruleConfig) {
		if registry == nil {
			return
		}
		cfg.functions = registry.Clone()
	}
}

// RuleWithLogger records each rule evaluation.
func RuleWithLogger(logger RuleLogger) RuleOption {
	return func(cfg *ruleConfig) {
		if logger == nil {
			cfg.logger = noopRuleLogger{}
			return
		}
		cfg.logger = logger
	}
}

// RuleWithArgs binds extra variables visible to the rule under "args".
func RuleWithArgs(args map[string]any) RuleOption {
	return func(cfg *ruleConfig) {
		if len(args) == 0 {
			return
		}
		copied := make(map[string]any, len(args))
		for key, value := range args {
			copied[key] = value
		}
		cfg.args = copied
	}
}

// RuleValidator compiles expression into a Validator. The rule sees the
// candidate as "value" (plus "args", "metadata", and "now") and must yield a
// boolean: true accepts, false rejects. Standalone rules are not attached to
// any option, so "path" and "default" bind to their zero values here; attach
// rules with WithRule to have both filled from the registered option.
// Compilation failures surface here, never at Set time.
func RuleValidator(expression string, opts ...RuleOption) (Validator, error) {
	run, err := compileRule(expression, opts...)
	if err != nil {
		return nil, err
	}
	return func(value any) error {
		return run(ValueContext{Value: value})
	}, nil
}

// compileRule builds the engine, compiles expression eagerly, and returns the
// evaluation closure shared by RuleValidator and WithRule.
func compileRule(expression string, opts ...RuleOption) (func(ValueContext) error, error) {
	if expression == "" {
		return nil, fmt.Errorf("optioneer: rule expression must not be empty")
	}
	cfg := ruleConfig{logger: noopRuleLogger{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	evaluator := cfg.evaluator
	if evaluator == nil {
		var exprOpts []ExprEvaluatorOption
		if cfg.cache != nil {
			exprOpts = append(exprOpts, ExprWithProgramCache(cfg.cache))
		}
		if cfg.functions != nil {
			exprOpts = append(exprOpts, ExprWithFunctionRegistry(cfg.functions))
		}
		evaluator = NewExprEvaluator(exprOpts...)
	}
	compiled, err := evaluator.Compile(expression)
	if err != nil {
		return nil, err
	}

	engine := evaluatorEngineName(evaluator)
	logger := cfg.logger
	args := cfg.args
	return func(ctx ValueContext) error {
		if ctx.Args == nil {
			ctx.Args = args
		}
		ctx = ctx.withDefaults()
		start := time.Now()
		result, evalErr := compiled.Evaluate(ctx)
		evalErr = wrapEvaluationError(engine, expression, ctx.Path, evalErr)
		logger.LogRule(RuleLogEvent{
			Engine:   engine,
			Expr:     expression,
			Path:     ctx.Path,
			Duration: time.Since(start),
			Err:      evalErr,
		})
		if evalErr != nil {
			return evalErr
		}
		accepted, ok := result.(bool)
		if !ok {
			return fmt.Errorf("optioneer: rule %q returned %T, want bool", expression, result)
		}
		if !accepted {
			return fmt.Errorf("rejected by rule %q", expression)
		}
		return nil
	}, nil
}

func evaluatorEngineName(e Evaluator) string {
	if e == nil {
		return "unknown"
	}
	switch fmt.Sprintf("%T", e) {
	case "*optioneer.exprEvaluator":
		return "expr"
	case "*optioneer.celEvaluator":
		return "cel"
	case "*optioneer.jsEvaluator":
		return "js"
	default:
		return "custom"
	}
}
