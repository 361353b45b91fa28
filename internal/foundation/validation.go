// Package foundation provides small generic helpers shared across packages.
package foundation

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"

	"git.home.luguber.info/inful/reverie/internal/foundation/errors"
)

// Validator checks a value and reports every problem found.
type Validator[T any] func(T) ValidationResult

// ValidationResult contains the result of a validation operation.
type ValidationResult struct {
	Valid  bool
	Errors []FieldError
}

// FieldError represents a single validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (fe FieldError) Error() string {
	if fe.Field != "" {
		return fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return fe.Message
}

// Valid creates a successful validation result.
func Valid() ValidationResult {
	return ValidationResult{Valid: true}
}

// Invalid creates a failed validation result with errors.
func Invalid(errs ...FieldError) ValidationResult {
	return ValidationResult{Errors: errs}
}

// NewFieldError creates a field error.
func NewFieldError(field, code, message string) FieldError {
	return FieldError{Field: field, Code: code, Message: message}
}

// Combine merges two validation results.
func (vr ValidationResult) Combine(other ValidationResult) ValidationResult {
	if vr.Valid && other.Valid {
		return Valid()
	}
	all := make([]FieldError, 0, len(vr.Errors)+len(other.Errors))
	all = append(all, vr.Errors...)
	all = append(all, other.Errors...)
	return Invalid(all...)
}

// ToError converts an invalid result into a classified validation error.
func (vr ValidationResult) ToError() error {
	if vr.Valid {
		return nil
	}
	messages := make([]string, 0, len(vr.Errors))
	for _, fe := range vr.Errors {
		messages = append(messages, fe.Error())
	}
	return errors.ValidationError(strings.Join(messages, "; ")).
		WithContext("fields", len(vr.Errors)).
		Build()
}

// ValidatorChain runs validators in order and collects all failures.
type ValidatorChain[T any] struct {
	validators []Validator[T]
}

// NewValidatorChain creates a new validator chain.
func NewValidatorChain[T any](validators ...Validator[T]) *ValidatorChain[T] {
	return &ValidatorChain[T]{validators: validators}
}

// Add appends a validator to the chain.
func (vc *ValidatorChain[T]) Add(validator Validator[T]) *ValidatorChain[T] {
	vc.validators = append(vc.validators, validator)
	return vc
}

// Validate runs all validators in the chain.
func (vc *ValidatorChain[T]) Validate(value T) ValidationResult {
	result := Valid()
	for _, v := range vc.validators {
		result = result.Combine(v(value))
	}
	return result
}

// Field adapts a string validator to a struct by selecting one field.
func Field[T any](get func(T) string, v Validator[string]) Validator[T] {
	return func(value T) ValidationResult {
		return v(get(value))
	}
}

// Required fails on empty or whitespace-only strings.
func Required(field string) Validator[string] {
	return func(value string) ValidationResult {
		if strings.TrimSpace(value) == "" {
			return Invalid(NewFieldError(field, "required", "must not be empty"))
		}
		return Valid()
	}
}

// AbsoluteURL fails unless value is an http(s) URL with a host.
func AbsoluteURL(field string) Validator[string] {
	return func(value string) ValidationResult {
		u, err := url.Parse(value)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return Invalid(NewFieldError(field, "absolute_url", fmt.Sprintf("%q is not an absolute http(s) URL", value)))
		}
		return Valid()
	}
}

// OptionalEmail accepts an empty value or a single RFC 5322 address.
func OptionalEmail(field string) Validator[string] {
	return func(value string) ValidationResult {
		if value == "" {
			return Valid()
		}
		if _, err := mail.ParseAddress(value); err != nil {
			return Invalid(NewFieldError(field, "email", fmt.Sprintf("%q is not an email address", value)))
		}
		return Valid()
	}
}

// OneOf validates that a value is in a set of allowed values.
func OneOf[T comparable](field string, allowed []T) Validator[T] {
	set := make(map[T]struct{}, len(allowed))
	for _, item := range allowed {
		set[item] = struct{}{}
	}
	return func(value T) ValidationResult {
		if _, ok := set[value]; !ok {
			return Invalid(NewFieldError(field, "one_of", fmt.Sprintf("must be one of: %v", allowed)))
		}
		return Valid()
	}
}
