package gateway

import "fmt"

// ErrorKind classifies every failure the gateway can surface.
type ErrorKind int

const (
	// KindValidation covers malformed or incomplete request data. Always
	// recoverable by the caller; never a system fault.
	KindValidation ErrorKind = iota
	// KindResource means a referenced entity (merchant, route, account) does
	// not exist.
	KindResource
	// KindFatal covers database connectivity failures, unrecognised
	// acquirers and other internal inconsistencies. Logged for operators;
	// detail never shown to callers.
	KindFatal
)

// Code is the machine-readable name carried in failure responses.
func (k ErrorKind) Code() string {
	switch k {
	case KindValidation:
		return "VALIDATION"
	case KindResource:
		return "RESOURCE"
	default:
		return "FATAL"
	}
}

// Error is the gateway's failure value: a kind plus a human-readable message.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindValidation:
		return "ValidationError: " + e.Message
	case KindResource:
		return "ResourceError: " + e.Message
	default:
		return "FatalError: " + e.Message
	}
}

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Resource(msg string) *Error {
	return &Error{Kind: KindResource, Message: msg}
}

func Resourcef(format string, args ...any) *Error {
	return &Error{Kind: KindResource, Message: fmt.Sprintf(format, args...)}
}

func Fatal(msg string) *Error {
	return &Error{Kind: KindFatal, Message: msg}
}

func Fatalf(format string, args ...any) *Error {
	return &Error{Kind: KindFatal, Message: fmt.Sprintf(format, args...)}
}
