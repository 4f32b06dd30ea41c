package agents

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.starlark.net/resolve"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

const sandboxFilename = "<agent>"

// threadCtxKey carries the caller's context through the interpreter to
// tool builtins.
const threadCtxKey = "agents.context"

// session is the sandbox state owned by one CodeAgent: a fixed base
// environment (tool builtins; the interpreter's safe universe is ambient)
// and the mutable bindings created by executed code blocks, which persist
// across turns until reset. Code blocks run as REPL chunks against the
// bindings, so a later turn can read and rebind an earlier turn's
// variables. Not safe for concurrent use; the owning conversation loop
// is single-threaded.
type session struct {
	base     starlark.StringDict
	bindings starlark.StringDict
	output   strings.Builder
	printed  bool
}

func newSession(r *Registry) *session {
	base := make(starlark.StringDict, r.Len())
	for _, name := range r.Names() {
		f, _ := r.Get(name)
		base[name] = toolBuiltin(f)
	}
	s := &session{base: base}
	s.reset()
	return s
}

// reset drops all bindings created by previous turns, restoring the base
// environment. The tool registry is unchanged.
func (s *session) reset() {
	s.bindings = make(starlark.StringDict, len(s.base))
	for k, v := range s.base {
		s.bindings[k] = v
	}
}

// sandboxOpts keeps the language to the small safe subset: no while
// loops, no recursion (the only constructs capable of unbounded work),
// no set literals. Top-level control flow and reassignment are allowed
// since a session executes statement sequences, not config files.
// Imports stay unavailable because the thread has no Load.
var sandboxOpts = &syntax.FileOptions{
	TopLevelControl: true,
	GlobalReassign:  true,
}

// run compiles and executes one code block and returns the feedback text:
// compilation diagnostics, a runtime error, or the captured print output.
func (s *session) run(ctx context.Context, src string) string {
	f, err := sandboxOpts.Parse(sandboxFilename, src, 0)
	if err != nil {
		return "Compilation errors:\n" + strings.Join(compileDiagnostics(err), "\n")
	}

	s.printed = false
	s.output.Reset()
	thread := &starlark.Thread{
		Name: "agent",
		Print: func(_ *starlark.Thread, msg string) {
			s.printed = true
			s.output.WriteString(msg)
			s.output.WriteByte('\n')
		},
	}
	thread.SetLocal(threadCtxKey, ctx)

	// REPL semantics: each chunk reads and rebinds the session globals
	// in place, so bindings from previous turns carry forward.
	if err := starlark.ExecREPLChunk(f, thread, s.bindings); err != nil {
		var list resolve.ErrorList
		if errors.As(err, &list) {
			return "Compilation errors:\n" + strings.Join(compileDiagnostics(err), "\n")
		}
		var evalErr *starlark.EvalError
		if errors.As(err, &evalErr) {
			return "Error: " + evalErr.Msg
		}
		return "Error: " + err.Error()
	}

	if !s.printed {
		return errNoPrint
	}
	result := strings.TrimSpace(s.output.String())
	s.output.Reset()
	if result == "" {
		return errEmptyResult
	}
	return result
}

// compileDiagnostics renders a parse or resolve failure as one line per
// error.
func compileDiagnostics(err error) []string {
	var list resolve.ErrorList
	if errors.As(err, &list) {
		lines := make([]string, len(list))
		for i, e := range list {
			lines[i] = e.Error()
		}
		return lines
	}
	return []string{err.Error()}
}

// toolBuiltin wraps a registered function as an interpreter builtin.
// Positional arguments map to the declared parameter order, keyword
// arguments by name; declared defaults fill the rest. The host function
// is the only capability the builtin exposes.
func toolBuiltin(f *Func) *starlark.Builtin {
	return starlark.NewBuiltin(f.Name, func(thread *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		if len(args) > len(f.Params) {
			return nil, fmt.Errorf("%s: got %d arguments, want at most %d", f.Name, len(args), len(f.Params))
		}
		callArgs := make(map[string]any, len(f.Params))
		for i, arg := range args {
			v, err := fromStarlark(arg)
			if err != nil {
				return nil, fmt.Errorf("%s: argument %s: %w", f.Name, f.Params[i].Name, err)
			}
			callArgs[f.Params[i].Name] = v
		}
		for _, kv := range kwargs {
			name := string(kv[0].(starlark.String))
			if !hasParam(f, name) {
				return nil, fmt.Errorf("%s: unexpected keyword argument %s", f.Name, name)
			}
			if _, dup := callArgs[name]; dup {
				return nil, fmt.Errorf("%s: got multiple values for argument %s", f.Name, name)
			}
			v, err := fromStarlark(kv[1])
			if err != nil {
				return nil, fmt.Errorf("%s: argument %s: %w", f.Name, name, err)
			}
			callArgs[name] = v
		}
		for _, p := range f.Params {
			if _, ok := callArgs[p.Name]; ok {
				continue
			}
			if !p.HasDefault {
				return nil, fmt.Errorf("%s: missing argument %s", f.Name, p.Name)
			}
			callArgs[p.Name] = p.Default
		}

		ctx, _ := thread.Local(threadCtxKey).(context.Context)
		if ctx == nil {
			ctx = context.Background()
		}
		result, err := f.invoke(ctx, callArgs)
		if err != nil {
			return nil, err
		}
		return toStarlark(result)
	})
}

func hasParam(f *Func, name string) bool {
	for _, p := range f.Params {
		if p.Name == name {
			return true
		}
	}
	return false
}

// toStarlark converts a JSON-shaped Go value into an interpreter value.
// Other types are round-tripped through JSON so tool functions may
// return plain structs.
func toStarlark(v any) (starlark.Value, error) {
	switch v := v.(type) {
	case nil:
		return starlark.None, nil
	case bool:
		return starlark.Bool(v), nil
	case int:
		return starlark.MakeInt(v), nil
	case int64:
		return starlark.MakeInt64(v), nil
	case float64:
		return starlark.Float(v), nil
	case string:
		return starlark.String(v), nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return starlark.MakeInt64(i), nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, err
		}
		return starlark.Float(f), nil
	case []any:
		elems := make([]starlark.Value, len(v))
		for i, e := range v {
			val, err := toStarlark(e)
			if err != nil {
				return nil, err
			}
			elems[i] = val
		}
		return starlark.NewList(elems), nil
	case map[string]any:
		dict := starlark.NewDict(len(v))
		for k, e := range v {
			val, err := toStarlark(e)
			if err != nil {
				return nil, err
			}
			if err := dict.SetKey(starlark.String(k), val); err != nil {
				return nil, err
			}
		}
		return dict, nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("unsupported value of type %T", v)
		}
		var decoded any
		if err := json.Unmarshal(data, &decoded); err != nil {
			return nil, fmt.Errorf("unsupported value of type %T", v)
		}
		return toStarlark(decoded)
	}
}

// fromStarlark converts an interpreter value back into a JSON-shaped Go
// value for a host function call.
func fromStarlark(v starlark.Value) (any, error) {
	switch v := v.(type) {
	case starlark.NoneType:
		return nil, nil
	case starlark.Bool:
		return bool(v), nil
	case starlark.Int:
		i, ok := v.Int64()
		if !ok {
			return nil, fmt.Errorf("integer out of range")
		}
		return i, nil
	case starlark.Float:
		return float64(v), nil
	case starlark.String:
		return string(v), nil
	case *starlark.List:
		out := make([]any, v.Len())
		for i := 0; i < v.Len(); i++ {
			e, err := fromStarlark(v.Index(i))
			if err != nil {
				return nil, err
			}
			out[i] = e
		}
		return out, nil
	case starlark.Tuple:
		out := make([]any, len(v))
		for i, e := range v {
			val, err := fromStarlark(e)
			if err != nil {
				return nil, err
			}
			out[i] = val
		}
		return out, nil
	case *starlark.Dict:
		out := make(map[string]any, v.Len())
		for _, item := range v.Items() {
			key, ok := starlark.AsString(item[0])
			if !ok {
				return nil, fmt.Errorf("dict key %s is not a string", item[0].String())
			}
			val, err := fromStarlark(item[1])
			if err != nil {
				return nil, err
			}
			out[key] = val
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported value of type %s", v.Type())
	}
}
