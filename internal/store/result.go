package store

import "fmt"

// ErrorKind classifies why a repository call did not produce a value.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindKeyNotFound
	KindKeyDuplicate
	KindOther
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindKeyNotFound:
		return "key_not_found"
	case KindKeyDuplicate:
		return "key_duplicate"
	case KindOther:
		return "other"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Result is the outcome of a repository call: either Value, or an error Kind
// with an optional diagnostic Message. A successful Result has Err == KindNone.
type Result[T any] struct {
	Value   T
	Err     ErrorKind
	Message string
}

// OK reports whether the call succeeded.
func (r Result[T]) OK() bool {
	return r.Err == KindNone
}

// Error renders the failure for logs. It is empty for successful results.
func (r Result[T]) Error() string {
	if r.OK() {
		return ""
	}
	if r.Message == "" {
		return r.Err.String()
	}
	return r.Err.String() + ": " + r.Message
}

// Ok wraps a successful value.
func Ok[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

// Fail builds a failed result. KindNone is promoted to KindOther so a failure
// can never look like a success.
func Fail[T any](kind ErrorKind, message string) Result[T] {
	if kind == KindNone {
		kind = KindOther
	}
	return Result[T]{Err: kind, Message: message}
}

// NotFound is shorthand for Fail(KindKeyNotFound, ...).
func NotFound[T any](isbn string) Result[T] {
	return Fail[T](KindKeyNotFound, fmt.Sprintf("isbn %q not found", isbn))
}

// Duplicate is shorthand for Fail(KindKeyDuplicate, ...).
func Duplicate[T any](isbn string) Result[T] {
	return Fail[T](KindKeyDuplicate, fmt.Sprintf("isbn %q already stored", isbn))
}

// Fault converts a backend error into a KindOther result.
func Fault[T any](op string, err error) Result[T] {
	return Fail[T](KindOther, fmt.Sprintf("%s: %v", op, err))
}
