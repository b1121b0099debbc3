package models

// ErrorKind tags a failure at the backend boundary so downstream code never
// inspects untyped shapes or raw backend error text.
type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindAuthRequired
	KindNotFound
	KindBackend
)

// Error is the only error type services return. Message is always a fixed,
// generic, user-facing string; the underlying cause is logged where it
// occurs and never forwarded.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewValidationError(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func NewAuthRequiredError(msg string) *Error {
	return &Error{Kind: KindAuthRequired, Message: msg}
}

func NewNotFoundError(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func NewBackendError(msg string) *Error {
	return &Error{Kind: KindBackend, Message: msg}
}
