package domain

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrEmployeeNotFound = errors.New("employee not found")
var ErrNoUsers = errors.New("no users found")
var ErrNoEmployees = errors.New("no employees found")

// ErrInvalidCredentials covers both an unknown email and a wrong password at
// login, so the caller cannot tell which field was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrWrongPassword is returned when old_password does not match the stored
// digest during a password change.
var ErrWrongPassword = errors.New("wrong password")

// ValidationError carries the per-field messages produced by a rule set.
// Fields maps field name to the message of its first failing rule.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}
