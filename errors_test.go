package scriptgen_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/scriptgen"
)

func TestUnresolvedReferenceError(t *testing.T) {
	t.Parallel()

	err := scriptgen.NewUnresolvedReferenceError("ae13")
	assert.Contains(t, err.Error(), "ae13")
	assert.Equal(t, "ae13", err.Handle())
	assert.ErrorIs(t, err, scriptgen.ErrUnresolvedReference)
	assert.True(t, scriptgen.IsUnresolvedReference(err))
	assert.True(t, scriptgen.IsUnresolvedReference(fmt.Errorf("render: %w", err)))
	assert.False(t, scriptgen.IsUnresolvedReference(nil))
	assert.False(t, scriptgen.IsUnresolvedReference(errors.New("other")))
}

func TestInvalidLiteralError(t *testing.T) {
	t.Parallel()

	err := scriptgen.NewInvalidLiteralError("options.encoding", struct{}{})
	assert.Contains(t, err.Error(), "options.encoding")
	assert.Equal(t, "options.encoding", err.Context())
	assert.ErrorIs(t, err, scriptgen.ErrInvalidLiteral)
	assert.True(t, scriptgen.IsInvalidLiteral(err))
	assert.False(t, scriptgen.IsInvalidLiteral(scriptgen.NewUnresolvedReferenceError("x")))

	// Without context the message still names the value's type.
	bare := scriptgen.NewInvalidLiteralError("", 3+2i)
	assert.Contains(t, bare.Error(), "complex128")
}
