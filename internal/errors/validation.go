package errors

import (
	"fmt"
	"sort"
	"strings"
)

// validationError collects validation failures keyed by field name
type validationError struct {
	Fields map[string][]string `json:"fields"`
}

// Error implements the error interface
func (v *validationError) Error() string {
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

// ValidationBuilder accumulates field errors. Build returns nil when nothing
// was recorded.
type ValidationBuilder struct {
	fields map[string][]string
}

// NewValidationBuilder creates a new validation builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{
		fields: make(map[string][]string),
	}
}

func (vb *ValidationBuilder) fieldf(field, format string, args ...interface{}) *ValidationBuilder {
	vb.fields[field] = append(vb.fields[field], fmt.Sprintf(format, args...))
	return vb
}

// RequiredField adds a required field error
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.fieldf(field, "is required")
}

// InvalidField adds an invalid field error
func (vb *ValidationBuilder) InvalidField(field, reason string) *ValidationBuilder {
	return vb.fieldf(field, "is invalid: %s", reason)
}

// Build returns an InvalidArgument Error carrying the field map as
// "validation_errors" metadata, or nil when no field failed
func (vb *ValidationBuilder) Build() error {
	if len(vb.fields) == 0 {
		return nil
	}
	verr := &validationError{Fields: vb.fields}
	return InvalidArgument(verr.Error()).WithMeta("validation_errors", verr.Fields)
}

// ValidateRequired records a required error for a blank string
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidateRange records an error when value is outside [minValue, maxValue]
func ValidateRange(field string, value, minValue, maxValue int, vb *ValidationBuilder) {
	if value < minValue || value > maxValue {
		vb.fieldf(field, "must be between %d and %d", minValue, maxValue)
	}
}
