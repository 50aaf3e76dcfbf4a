package errors

import (
	"errors"
)

// MetaReason is the metadata key that narrows a code to a specific failure,
// e.g. an InvalidArgument that came from dice notation
const MetaReason = "reason"

func asError(err error) (*Error, bool) {
	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr, true
	}
	return nil, false
}

// GetCode extracts the error code from an error. Errors from outside this
// package report CodeInternal.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	if customErr, ok := asError(err); ok {
		return customErr.Code
	}
	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]interface{} {
	if customErr, ok := asError(err); ok {
		return customErr.Meta
	}
	return nil
}

// GetMessage extracts the user-facing message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	if customErr, ok := asError(err); ok {
		return customErr.Message
	}
	return err.Error()
}

// HasReason reports whether err carries code and was tagged with reason
func HasReason(err error, code Code, reason string) bool {
	if GetCode(err) != code {
		return false
	}
	tagged, ok := GetMeta(err)[MetaReason].(string)
	return ok && tagged == reason
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsOutOfRange checks if an error is an out of range error
func IsOutOfRange(err error) bool {
	return GetCode(err) == CodeOutOfRange
}

// IsFailedPrecondition checks if an error is a failed precondition error
func IsFailedPrecondition(err error) bool {
	return GetCode(err) == CodeFailedPrecondition
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}
