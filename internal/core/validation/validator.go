// Package validation implements the declarative rule engine that gates every
// mutating operation. A RuleSet maps field names to ordered rule chains with
// per-rule messages; evaluation short-circuits per field but aggregates
// failures across fields.
package validation

import (
	"context"
	"fmt"
)

// Field pairs a rule chain with the message reported for each rule name.
type Field struct {
	Rules    []Rule
	Messages map[string]string
}

// RuleSet declares the validation for one operation (create, update, login).
type RuleSet map[string]Field

// Result is either valid or carries one message per failing field.
type Result struct {
	Errors map[string]string
}

func (r Result) Valid() bool { return len(r.Errors) == 0 }

// Validate evaluates rules against input. Each field's chain runs left to
// right and stops at its first failing rule; that rule's message is recorded
// and evaluation moves on to the next field, so the result reports every
// invalid field at once. Fields absent from input are treated as empty.
// The error return is reserved for collaborator failures during IsUnique.
func Validate(ctx context.Context, input map[string]string, rules RuleSet, ec ExistenceChecker) (Result, error) {
	res := Result{Errors: make(map[string]string)}

	for field, decl := range rules {
		value := input[field]
		for _, rule := range decl.Rules {
			ok, err := rule.Check(ctx, value, ec)
			if err != nil {
				return Result{}, fmt.Errorf("validate %s (%s): %w", field, rule.Name(), err)
			}
			if !ok {
				res.Errors[field] = messageFor(decl, field, rule)
				break
			}
		}
	}

	return res, nil
}

func messageFor(decl Field, field string, rule Rule) string {
	if msg, ok := decl.Messages[rule.Name()]; ok {
		return msg
	}
	return fmt.Sprintf("%s is not valid", field)
}
