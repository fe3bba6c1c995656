package errors

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError collects messages for multiple fields and converts itself
// to a standard Error.
type ValidationError struct {
	// Fields maps field names to their validation error messages
	Fields map[string][]string `json:"fields"`
}

// Error implements the error interface. Fields are listed in name order so
// the message is stable.
func (v *ValidationError) Error() string {
	if len(v.Fields) == 0 {
		return "validation failed"
	}

	names := make([]string, 0, len(v.Fields))
	for field := range v.Fields {
		names = append(names, field)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, field := range names {
		parts[i] = fmt.Sprintf("%s: %s", field, strings.Join(v.Fields[field], ", "))
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}

// NewValidationError creates a new validation error
func NewValidationError() *ValidationError {
	return &ValidationError{
		Fields: make(map[string][]string),
	}
}

// AddFieldError adds an error for a specific field
func (v *ValidationError) AddFieldError(field, message string) {
	v.Fields[field] = append(v.Fields[field], message)
}

// HasErrors returns true if there are any validation errors
func (v *ValidationError) HasErrors() bool {
	return len(v.Fields) > 0
}

// ToError converts the validation error to our standard error type
func (v *ValidationError) ToError(code Code) *Error {
	if !v.HasErrors() {
		return nil
	}
	return New(code, v.Error()).WithMeta("validation_errors", v.Fields)
}

// ValidationBuilder provides a fluent interface for building validation errors.
// Build returns nil if no field failed.
type ValidationBuilder struct {
	code Code
	err  *ValidationError
}

// NewValidationBuilder creates a builder that reports INVALID_ARGUMENT
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{
		code: CodeInvalidArgument,
		err:  NewValidationError(),
	}
}

// WithCode changes the code reported by Build
func (vb *ValidationBuilder) WithCode(code Code) *ValidationBuilder {
	vb.code = code
	return vb
}

// Field adds a validation error for a field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.err.AddFieldError(field, message)
	return vb
}

// Fieldf adds a formatted validation error for a field
func (vb *ValidationBuilder) Fieldf(field, format string, args ...any) *ValidationBuilder {
	vb.err.AddFieldError(field, fmt.Sprintf(format, args...))
	return vb
}

// RequiredField adds a required field error
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// Build returns the error if there are validation errors, nil otherwise
func (vb *ValidationBuilder) Build() error {
	if vb.err.HasErrors() {
		return vb.err.ToError(vb.code)
	}
	return nil
}

// ValidatePositive checks that value is greater than zero
func ValidatePositive(field string, value int, vb *ValidationBuilder) {
	if value <= 0 {
		vb.Fieldf(field, "must be positive, got %d", value)
	}
}

// ValidateMin checks that value is at least minValue
func ValidateMin(field string, value, minValue int, vb *ValidationBuilder) {
	if value < minValue {
		vb.Fieldf(field, "must be at least %d, got %d", minValue, value)
	}
}

// ValidateRange checks if a value is within a range
func ValidateRange(field string, value, minValue, maxValue int, vb *ValidationBuilder) {
	if value < minValue || value > maxValue {
		vb.Fieldf(field, "must be between %d and %d", minValue, maxValue)
	}
}

// ValidateEnum checks if a value is in a list of allowed values
func ValidateEnum(field, value string, allowed []string, vb *ValidationBuilder) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	vb.Fieldf(field, "must be one of: %s", strings.Join(allowed, ", "))
}
