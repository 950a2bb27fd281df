package unbox

import "errors"

var (
	// ErrInvalidInstance is returned when a storage handle is nil or not a
	// product of the accessor's own factories.
	ErrInvalidInstance = errors.New("invalid instance")

	// ErrIndexOutOfRange is returned when an index falls outside the
	// addressed category's current bounds for the given instance.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrUnsupportedOperation is returned when the active variant does not
	// offer a capability. Capability queries answer in advance whether an
	// operation is supported, so this error is always avoidable.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrInvalidArgument is returned when a size argument falls outside its
	// declared range, or a category value is unknown.
	ErrInvalidArgument = errors.New("invalid argument")
)
