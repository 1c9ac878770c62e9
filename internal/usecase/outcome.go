package usecase

import "fmt"

// ErrorCode is the flat, closed set of failures the library service reports.
// The numeric values are stable and shown to console users.
type ErrorCode int64

const (
	CodeNone              ErrorCode = 0
	CodeInvalidISBN       ErrorCode = 1000001
	CodeISBNAlreadyExists ErrorCode = 1000002
	CodeISBNNotFound      ErrorCode = 1000003
	CodeStorageFault      ErrorCode = 1000004
	CodeUnexpectedFault   ErrorCode = 1000005
)

func (c ErrorCode) String() string {
	switch c {
	case CodeNone:
		return "NONE"
	case CodeInvalidISBN:
		return "INVALID_ISBN"
	case CodeISBNAlreadyExists:
		return "ISBN_ALREADY_EXISTS"
	case CodeISBNNotFound:
		return "ISBN_NOT_FOUND"
	case CodeStorageFault:
		return "STORAGE_FAULT"
	case CodeUnexpectedFault:
		return "UNEXPECTED_FAULT"
	default:
		return fmt.Sprintf("CODE_%d", int64(c))
	}
}

// Outcome carries either Value or a non-zero Code with an optional Message.
type Outcome[T any] struct {
	Value   T
	Code    ErrorCode
	Message string
}

// IsSuccess reports whether the operation produced a value.
func (o Outcome[T]) IsSuccess() bool {
	return o.Code == CodeNone
}

func success[T any](v T) Outcome[T] {
	return Outcome[T]{Value: v}
}

func failure[T any](code ErrorCode, message string) Outcome[T] {
	if code == CodeNone {
		code = CodeUnexpectedFault
	}
	return Outcome[T]{Code: code, Message: message}
}
