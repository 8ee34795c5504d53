package linvec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is matched (via errors.Is) by every construction error.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDomain is matched (via errors.Is) by every error raised because an
	// operation is mathematically undefined for its inputs.
	ErrDomain = errors.New("domain error")
)

// ErrorKind classifies an Error.
type ErrorKind int

const (
	// EmptyCoordinates indicates construction from an empty sequence.
	EmptyCoordinates ErrorKind = iota + 1
	// NonIterable indicates construction from something that is not a sequence of numbers.
	NonIterable
	// ZeroVectorNormalization indicates an attempt to normalize the zero vector.
	ZeroVectorNormalization
	// ZeroVectorAngle indicates an angle involving the zero vector.
	ZeroVectorAngle
	// NoUniqueParallelComponent indicates a projection onto the zero vector.
	NoUniqueParallelComponent
	// NoUniqueOrthogonalComponent indicates an orthogonal decomposition against the zero vector.
	NoUniqueOrthogonalComponent
	// UnsupportedDimensionForCross indicates a cross product outside two or three dimensions.
	UnsupportedDimensionForCross
)

func (k ErrorKind) String() string {
	switch k {
	case EmptyCoordinates:
		return "EmptyCoordinates"
	case NonIterable:
		return "NonIterable"
	case ZeroVectorNormalization:
		return "ZeroVectorNormalization"
	case ZeroVectorAngle:
		return "ZeroVectorAngle"
	case NoUniqueParallelComponent:
		return "NoUniqueParallelComponent"
	case NoUniqueOrthogonalComponent:
		return "NoUniqueOrthogonalComponent"
	case UnsupportedDimensionForCross:
		return "UnsupportedDimensionForCross"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// IsInvalidArgument reports whether k is a construction error.
func (k ErrorKind) IsInvalidArgument() bool {
	return k == EmptyCoordinates || k == NonIterable
}

// IsDomain reports whether k is a domain error.
func (k ErrorKind) IsDomain() bool {
	switch k {
	case ZeroVectorNormalization, ZeroVectorAngle, NoUniqueParallelComponent,
		NoUniqueOrthogonalComponent, UnsupportedDimensionForCross:
		return true
	default:
		return false
	}
}

func (k ErrorKind) message() string {
	switch k {
	case EmptyCoordinates:
		return "coordinates must be nonempty"
	case NonIterable:
		return "coordinates must be an iterable"
	case ZeroVectorNormalization:
		return "cannot normalize the zero vector"
	case ZeroVectorAngle:
		return "cannot compute an angle with the zero vector"
	case NoUniqueParallelComponent:
		return "no unique parallel component"
	case NoUniqueOrthogonalComponent:
		return "no unique orthogonal component"
	case UnsupportedDimensionForCross:
		return "only defined in two or three dimensions"
	default:
		return "unknown vector error"
	}
}

// Error is returned by every failing Vector constructor and operation.
//
// Error() renders only the message for Kind. The lower-level error that
// triggered a translated failure (if any) can be accessed via errors.Unwrap.
type Error struct {
	Kind  ErrorKind
	cause error
}

func newError(kind ErrorKind, cause error) *Error {
	return &Error{Kind: kind, cause: cause}
}

func (e *Error) Error() string { return e.Kind.message() }

func (e *Error) Unwrap() error { return e.cause }

// Is matches another *Error of the same Kind, or the category sentinel
// (ErrInvalidArgument, ErrDomain) Kind belongs to.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrInvalidArgument:
		return e.Kind.IsInvalidArgument()
	case ErrDomain:
		return e.Kind.IsDomain()
	}

	var t *Error
	if errors.As(target, &t) {
		return t.Kind == e.Kind
	}

	return false
}

// Sentinels for errors.Is matching on a specific kind.
var (
	ErrEmptyCoordinates             = &Error{Kind: EmptyCoordinates}
	ErrNonIterable                  = &Error{Kind: NonIterable}
	ErrZeroVectorNormalization      = &Error{Kind: ZeroVectorNormalization}
	ErrZeroVectorAngle              = &Error{Kind: ZeroVectorAngle}
	ErrNoUniqueParallelComponent    = &Error{Kind: NoUniqueParallelComponent}
	ErrNoUniqueOrthogonalComponent  = &Error{Kind: NoUniqueOrthogonalComponent}
	ErrUnsupportedDimensionForCross = &Error{Kind: UnsupportedDimensionForCross}
)

// KindOf returns the Kind of the outermost *Error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// translate replaces a failure of kind from with a new error of kind to,
// keeping the original as its cause. Any other error is returned unchanged.
func translate(err error, from, to ErrorKind) error {
	if kind, ok := KindOf(err); ok && kind == from {
		return newError(to, err)
	}
	return err
}
