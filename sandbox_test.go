package agents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.starlark.net/starlark"
)

func TestValueConversion_RoundTrip(t *testing.T) {
	cases := []any{
		nil,
		true,
		int64(42),
		3.14,
		"hello",
		[]any{int64(1), "two", false},
		map[string]any{"a": int64(1), "b": []any{"x"}},
	}
	for _, v := range cases {
		sv, err := toStarlark(v)
		require.NoError(t, err)
		back, err := fromStarlark(sv)
		require.NoError(t, err)
		assert.Equal(t, v, back)
	}
}

func TestToStarlark_StructViaJSON(t *testing.T) {
	type result struct {
		Y int `json:"y"`
	}
	sv, err := toStarlark(result{Y: 3})
	require.NoError(t, err)
	dict, ok := sv.(*starlark.Dict)
	require.True(t, ok)
	v, found, err := dict.Get(starlark.String("y"))
	require.NoError(t, err)
	require.True(t, found)
	got, err := fromStarlark(v)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)
}

func TestFromStarlark_RejectsNonStringDictKey(t *testing.T) {
	dict := starlark.NewDict(1)
	require.NoError(t, dict.SetKey(starlark.MakeInt(1), starlark.String("v")))
	_, err := fromStarlark(dict)
	require.Error(t, err)
}

// callBuiltin drives a tool builtin the way the interpreter would.
func callBuiltin(t *testing.T, f *Func, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	t.Helper()
	thread := &starlark.Thread{Name: "test"}
	thread.SetLocal(threadCtxKey, context.Background())
	return toolBuiltin(f).CallInternal(thread, args, kwargs)
}

func TestToolBuiltin_PositionalOrder(t *testing.T) {
	var got map[string]any
	f := &Func{
		Name: "pair",
		Params: []Param{
			{Name: "first", Type: "str"},
			{Name: "second", Type: "str"},
		},
		Fn: func(_ context.Context, args map[string]any) (any, error) {
			got = args
			return nil, nil
		},
	}
	_, err := callBuiltin(t, f, starlark.Tuple{starlark.String("a"), starlark.String("b")}, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"first": "a", "second": "b"}, got)
}

func TestToolBuiltin_TooManyPositional(t *testing.T) {
	f := greetFunc()
	args := starlark.Tuple{starlark.String("a"), starlark.String("b"), starlark.String("c")}
	_, err := callBuiltin(t, f, args, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want at most 2")
}

func TestToolBuiltin_UnexpectedKeyword(t *testing.T) {
	f := greetFunc()
	kwargs := []starlark.Tuple{{starlark.String("shout"), starlark.Bool(true)}}
	_, err := callBuiltin(t, f, starlark.Tuple{starlark.String("Ada")}, kwargs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected keyword argument shout")
}

func TestToolBuiltin_DuplicateArgument(t *testing.T) {
	f := greetFunc()
	kwargs := []starlark.Tuple{{starlark.String("name"), starlark.String("Bob")}}
	_, err := callBuiltin(t, f, starlark.Tuple{starlark.String("Ada")}, kwargs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple values for argument name")
}

func TestToolBuiltin_MissingRequired(t *testing.T) {
	f := greetFunc()
	_, err := callBuiltin(t, f, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing argument name")
}

func TestSession_ResetKeepsBaseEnvironment(t *testing.T) {
	s := newSession(NewRegistry(echoFunc()))
	require.Contains(t, s.base, "double")

	out := s.run(context.Background(), "x = 1\nprint(x)")
	assert.Equal(t, "1", out)
	require.Contains(t, s.bindings, "x")

	s.reset()
	assert.NotContains(t, s.bindings, "x")
	assert.Contains(t, s.bindings, "double")
}

func TestSession_BindingsCarryAcrossChunks(t *testing.T) {
	s := newSession(NewRegistry(echoFunc()))

	out := s.run(context.Background(), "x = 1\nprint(x)")
	require.Equal(t, "1", out)

	out = s.run(context.Background(), "x = x + 1\nprint(x)")
	assert.Equal(t, "2", out)
}
