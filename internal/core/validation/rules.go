package validation

import (
	"context"
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// ExistenceChecker is the read-only capability IsUnique delegates to. The
// persistence layer reports whether any record in collection has field set to
// value, ignoring the record identified by excludeID when excludeID > 0.
type ExistenceChecker interface {
	ExistsByField(ctx context.Context, collection, field, value string, excludeID int64) (bool, error)
}

// Rule is a single named predicate in a field's rule chain.
type Rule interface {
	// Name identifies the rule for message lookup, e.g. "min_length".
	Name() string
	// Check reports whether value passes. The error return is reserved for
	// collaborator failures (IsUnique); predicates themselves never error.
	Check(ctx context.Context, value string, ec ExistenceChecker) (bool, error)
}

var syntaxValidator = validator.New()

// Required fails on an empty value.
type Required struct{}

func (Required) Name() string { return "required" }

func (Required) Check(_ context.Context, value string, _ ExistenceChecker) (bool, error) {
	return value != "", nil
}

// ValidEmail checks email syntax. The actual format check is delegated to
// go-playground's "email" validator.
type ValidEmail struct{}

func (ValidEmail) Name() string { return "valid_email" }

func (ValidEmail) Check(_ context.Context, value string, _ ExistenceChecker) (bool, error) {
	return syntaxValidator.Var(value, "email") == nil, nil
}

// MinLength fails when the value is shorter than N runes.
type MinLength struct {
	N int
}

func (MinLength) Name() string { return "min_length" }

func (r MinLength) Check(_ context.Context, value string, _ ExistenceChecker) (bool, error) {
	return len([]rune(value)) >= r.N, nil
}

// RegexMatch fails unless the value matches Pattern.
type RegexMatch struct {
	Pattern *regexp.Regexp
}

func (RegexMatch) Name() string { return "regex_match" }

func (r RegexMatch) Check(_ context.Context, value string, _ ExistenceChecker) (bool, error) {
	return r.Pattern.MatchString(value), nil
}

// AlphaSpace allows letters and spaces only. The empty string passes; chains
// that reject it start with Required.
type AlphaSpace struct{}

func (AlphaSpace) Name() string { return "alpha_space" }

func (AlphaSpace) Check(_ context.Context, value string, _ ExistenceChecker) (bool, error) {
	for _, r := range value {
		if !unicode.IsLetter(r) && r != ' ' {
			return false, nil
		}
	}
	return true, nil
}

// IsUnique fails when a record with Field equal to the value already exists
// in Collection. ExcludeID > 0 exempts the record being updated. This is a
// best-effort pre-check; the store's unique index is the authoritative guard
// against concurrent creates.
type IsUnique struct {
	Collection string
	Field      string
	ExcludeID  int64
}

func (IsUnique) Name() string { return "is_unique" }

func (r IsUnique) Check(ctx context.Context, value string, ec ExistenceChecker) (bool, error) {
	exists, err := ec.ExistsByField(ctx, r.Collection, r.Field, value, r.ExcludeID)
	if err != nil {
		return false, err
	}
	return !exists, nil
}
