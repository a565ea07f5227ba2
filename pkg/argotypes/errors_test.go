package argotypes

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_TextForm(t *testing.T) {
	err := NewError(ErrArgumentMismatch, "array %q needs %d tokens", "items", 3)
	assert.Equal(t, `ArgumentMismatch: array "items" needs 3 tokens`, err.Error())
}

func TestIsKind(t *testing.T) {
	err := NewError(ErrInvalidTemplate, "unknown type %q", "bool")

	assert.True(t, IsKind(err, ErrInvalidTemplate))
	assert.False(t, IsKind(err, ErrCommandNotFound))
	assert.False(t, IsKind(fmt.Errorf("plain"), ErrInvalidTemplate))
	assert.False(t, IsKind(nil, ErrInvalidTemplate))
}

func TestIsKind_Wrapped(t *testing.T) {
	inner := NewError(ErrInvalidExpression, "unknown variable %q", "k")
	wrapped := fmt.Errorf("binding failed: %w", inner)

	assert.True(t, IsKind(wrapped, ErrInvalidExpression))
	assert.Equal(t, ErrInvalidExpression, KindOf(wrapped))
}

func TestKindOf(t *testing.T) {
	require.Equal(t, ErrCommandNotFound, KindOf(NewError(ErrCommandNotFound, "nope")))
	assert.Equal(t, ErrorKind(""), KindOf(fmt.Errorf("plain")))
	assert.Equal(t, ErrorKind(""), KindOf(nil))
}
