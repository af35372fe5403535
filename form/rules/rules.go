// SPDX-License-Identifier: Unlicense OR MIT

// Package rules validates forms with expressions.
//
// Each Rule is an expr-lang expression over an environment, usually a
// struct holding the form values, that must evaluate to true for the
// field to be valid:
//
//	rs, err := rules.Compile(signup{},
//		rules.Rule{Field: "name", Expr: `len(Name) > 0`, Message: "Enter a name"},
//		rules.Rule{Field: "age", Expr: `Age >= 18`, Message: "Too young"},
//	)
package rules

import (
	"errors"
	"fmt"
	"log"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"gioui.org/extra/form"
)

// Rule checks one field.
type Rule struct {
	// Field is the form field the rule reports on.
	Field string
	// Expr must evaluate to true for valid input.
	Expr string
	// Message is reported when Expr is false.
	Message string
}

// Rules is a compiled set of rules.
type Rules struct {
	rules []compiled
}

type compiled struct {
	Rule
	prog *vm.Program
}

// Compile compiles rules against the type of env. A nil env compiles
// the rules without type checking.
func Compile(env interface{}, rules ...Rule) (*Rules, error) {
	rs := &Rules{rules: make([]compiled, 0, len(rules))}
	for _, r := range rules {
		if r.Field == "" {
			return nil, fmt.Errorf("rules: rule %q has no field", r.Expr)
		}
		opts := []expr.Option{expr.AsBool()}
		if env != nil {
			opts = append(opts, expr.Env(env))
		}
		prog, err := expr.Compile(r.Expr, opts...)
		if err != nil {
			return nil, fmt.Errorf("rules: field %s: %w", r.Field, err)
		}
		rs.rules = append(rs.rules, compiled{Rule: r, prog: prog})
	}
	return rs, nil
}

// Check evaluates the rules against env. A field is reported with the
// message of its first failing rule. A rule that fails to evaluate
// counts as failing; the evaluation errors are returned joined.
func (rs *Rules) Check(env interface{}) (form.Errors, error) {
	errs := make(form.Errors)
	var evalErrs []error
	for _, r := range rs.rules {
		if _, done := errs[r.Field]; done {
			continue
		}
		out, err := expr.Run(r.prog, env)
		if err != nil {
			evalErrs = append(evalErrs, fmt.Errorf("rules: field %s: %w", r.Field, err))
			errs[r.Field] = r.Message
			continue
		}
		if ok, _ := out.(bool); !ok {
			errs[r.Field] = r.Message
		}
	}
	return errs, errors.Join(evalErrs...)
}

// Validator adapts rs for form.Form.ValidateAndSubmit. env is called
// for every validation to obtain the current values. Evaluation errors
// are logged.
func (rs *Rules) Validator(env func() interface{}) func() form.Errors {
	return func() form.Errors {
		errs, err := rs.Check(env())
		if err != nil {
			log.Print(err)
		}
		return errs
	}
}
