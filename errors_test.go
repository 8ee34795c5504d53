package linvec

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKind(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "EmptyCoordinates", EmptyCoordinates.String())
		assert.Equal(t, "UnsupportedDimensionForCross", UnsupportedDimensionForCross.String())
		assert.Equal(t, "Unknown(99)", ErrorKind(99).String())
	})

	t.Run("Category", func(t *testing.T) {
		for _, k := range []ErrorKind{EmptyCoordinates, NonIterable} {
			assert.True(t, k.IsInvalidArgument(), k.String())
			assert.False(t, k.IsDomain(), k.String())
		}
		for _, k := range []ErrorKind{
			ZeroVectorNormalization, ZeroVectorAngle, NoUniqueParallelComponent,
			NoUniqueOrthogonalComponent, UnsupportedDimensionForCross,
		} {
			assert.True(t, k.IsDomain(), k.String())
			assert.False(t, k.IsInvalidArgument(), k.String())
		}
	})
}

func TestErrorMatching(t *testing.T) {
	err := newError(NoUniqueParallelComponent, newError(ZeroVectorNormalization, nil))

	assert.ErrorIs(t, err, ErrNoUniqueParallelComponent)
	assert.ErrorIs(t, err, ErrZeroVectorNormalization, "cause stays reachable")
	assert.NotErrorIs(t, err, ErrZeroVectorAngle)
	assert.EqualError(t, err, "no unique parallel component")

	wrapped := fmt.Errorf("projecting: %w", err)
	assert.ErrorIs(t, wrapped, ErrDomain)

	var e *Error
	require.True(t, errors.As(wrapped, &e))
	assert.Equal(t, NoUniqueParallelComponent, e.Kind)

	_, ok := KindOf(errors.New("other"))
	assert.False(t, ok)
}

func TestTranslate(t *testing.T) {
	base := newError(ZeroVectorNormalization, nil)

	got := translate(base, ZeroVectorNormalization, ZeroVectorAngle)
	kind, ok := KindOf(got)
	require.True(t, ok)
	assert.Equal(t, ZeroVectorAngle, kind)
	assert.Same(t, base, errors.Unwrap(got))

	// Other kinds pass through untouched.
	cross := newError(UnsupportedDimensionForCross, nil)
	assert.Same(t, cross, translate(cross, ZeroVectorNormalization, ZeroVectorAngle))

	plain := errors.New("plain")
	assert.Equal(t, plain, translate(plain, ZeroVectorNormalization, ZeroVectorAngle))
}
