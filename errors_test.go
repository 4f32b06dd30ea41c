package agents

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructionErrors_Is(t *testing.T) {
	wrapped := fmt.Errorf("function f, parameter p: type %q: %w", "vector", ErrUnknownType)
	assert.ErrorIs(t, wrapped, ErrUnknownType)
}

func TestFuncValidate(t *testing.T) {
	var nilFunc *Func
	assert.ErrorIs(t, nilFunc.validate(), ErrNilFunc)

	assert.ErrorIs(t, (&Func{Fn: echoFunc().Fn}).validate(), ErrUnnamedFunc)
	assert.ErrorIs(t, (&Func{Name: "f"}).validate(), ErrNilFunc)

	unnamedParam := echoFunc()
	unnamedParam.Params[0].Name = ""
	assert.ErrorIs(t, unnamedParam.validate(), ErrUnnamedParam)

	require.NoError(t, echoFunc().validate())
}
