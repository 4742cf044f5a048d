package bloom

import "errors"

var (
	// ErrInvalidArgument is returned by constructors given a zero length or
	// capacity, or a false positive probability outside (0, 1).
	ErrInvalidArgument = errors.New("bloom: invalid argument")

	// ErrIndexOutOfRange is returned when a bit index is >= the array length.
	ErrIndexOutOfRange = errors.New("bloom: index out of range")

	// ErrConfigMismatch is returned when combining arrays or filters that
	// were built with a different configuration.
	ErrConfigMismatch = errors.New("bloom: configuration mismatch")
)
