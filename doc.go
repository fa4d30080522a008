// Package optioneer implements a process-wide registry of named, typed,
// documented configuration options organized into dotted hierarchical groups.
//
// Library authors register options at load time with defaults, documentation,
// validators, and change callbacks; library users navigate the resulting tree
// through Group views and read or write leaf values. Every read and write
// funnels through the Registry so validation, deprecation redirects, and
// callbacks apply uniformly regardless of entry point.
//
// Options can be deprecated with an optional redirect to a replacement path.
// A deprecated option remains addressable forever for old call sites but is
// hidden from discovery (Describe, Children) and emits a non-fatal warning on
// every access.
//
// Validators are plain functions; RuleValidator additionally compiles a rule
// expression (expr, CEL, or JavaScript behind the js_eval build tag) into a
// Validator so acceptance criteria can be supplied as data.
package optioneer
