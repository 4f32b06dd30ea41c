package agents

import "errors"

// Construction-time errors. These are the only failures allowed to abort
// the caller's setup path; every per-turn failure is reported as plain
// "Error: ..." feedback text instead (see Agent). Use errors.Is to check.
var (
	ErrNilFunc            = errors.New("tool function is nil")
	ErrUnnamedFunc        = errors.New("tool function has no name")
	ErrUnnamedParam       = errors.New("tool parameter has no name")
	ErrUnknownType        = errors.New("parameter type cannot be resolved")
	ErrMissingPlaceholder = errors.New("prompt template does not contain {functions} placeholder")
)

// Per-turn diagnostics returned as feedback to the model. The exact
// wording is part of the wire contract with the conversation loop.
const (
	errInvalidJSON       = "Error: invalid JSON format."
	errCallFailed        = "Error: function call failed"
	errNotSerializable   = "Error: function call did not return JSON serializable result."
	errMissingName       = `Error: function call is missing the "name" field.`
	errNameNotString     = `Error: function call "name" field must be a string.`
	errMissingParameters = `Error: function call is missing the "parameters" field.`
	errParamsNotObject   = `Error: function call "parameters" field must be a JSON object.`

	errBlockFormat    = "Error: code block must be formatted as ```python ... ```"
	errMultipleBlocks = "Error: multiple code blocks found"
	errNoPrint        = "Error: No print statement executed in code block."
	errEmptyResult    = "Error: result string is empty."
)
