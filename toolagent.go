package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
)

// ToolAgent is the JSON dispatch strategy: it extracts structured call
// descriptors from model output, validates them against the registry,
// invokes the matching functions, and aggregates serialized results.
type ToolAgent struct {
	registry   *Registry
	validators map[string]*jsonschema.Resolved
	openTag    string
	closeTag   string
}

var _ Agent = (*ToolAgent)(nil)

// NewToolAgent builds a ToolAgent over the given registry. Descriptor
// defects (unresolvable parameter types, unnamed functions) are reported
// here, before any turn is handled.
func NewToolAgent(registry *Registry, opts ...ToolAgentOption) (*ToolAgent, error) {
	if err := registry.validate(); err != nil {
		return nil, err
	}
	o := toolAgentOptions{
		openTag:  "<tool_call>",
		closeTag: "</tool_call>",
	}
	for _, opt := range opts {
		opt(&o)
	}
	validators := make(map[string]*jsonschema.Resolved, registry.Len())
	for _, name := range registry.Names() {
		f, _ := registry.Get(name)
		resolved, err := compileParams(f)
		if err != nil {
			return nil, err
		}
		validators[name] = resolved
	}
	return &ToolAgent{
		registry:   registry,
		validators: validators,
		openTag:    o.openTag,
		closeTag:   o.closeTag,
	}, nil
}

// Schemas returns the structured call schema for every registered
// function, sorted by name. This is the contract shown to the model's
// tool-definition channel; it is regenerated deterministically from the
// registry on every call.
func (a *ToolAgent) Schemas() []ToolSchema {
	schemas := make([]ToolSchema, 0, a.registry.Len())
	for _, name := range a.registry.Names() {
		f, _ := a.registry.Get(name)
		schemas = append(schemas, functionSchema(f))
	}
	return schemas
}

// HandleResponse extracts call descriptors from one model turn and
// dispatches them in order. A single descriptor's failure aborts the
// whole batch and returns that failure alone; earlier results are
// discarded. Returns handled == false when the response carries no
// recognizable call payload.
func (a *ToolAgent) HandleResponse(ctx context.Context, response string) (string, bool) {
	text, ok := a.extract(response)
	if !ok {
		return "", false
	}

	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return errInvalidJSON, true
	}
	var calls []any
	switch v := parsed.(type) {
	case map[string]any:
		calls = []any{v}
	case []any:
		calls = v
	default:
		return errInvalidJSON, true
	}

	var out strings.Builder
	for _, call := range calls {
		obj, ok := call.(map[string]any)
		if !ok {
			return errInvalidJSON, true
		}
		rawName, ok := obj["name"]
		if !ok {
			return errMissingName, true
		}
		name, ok := rawName.(string)
		if !ok {
			return errNameNotString, true
		}
		f, ok := a.registry.Get(name)
		if !ok {
			return fmt.Sprintf("Error: unknown function %s.", name), true
		}
		payload, ok := obj["parameters"]
		if !ok {
			payload, ok = obj["arguments"]
		}
		if !ok {
			return errMissingParameters, true
		}
		args, ok := payload.(map[string]any)
		if !ok {
			return errParamsNotObject, true
		}
		// Same schema shown to the model; a payload that does not fit the
		// declared parameters fails like any other bad invocation.
		if err := a.validators[name].Validate(args); err != nil {
			return errCallFailed, true
		}
		for _, p := range f.Params {
			if _, ok := args[p.Name]; !ok && p.HasDefault {
				args[p.Name] = p.Default
			}
		}
		result, err := f.invoke(ctx, args)
		if err != nil {
			return errCallFailed, true
		}
		data, err := json.Marshal(result)
		if err != nil {
			return errNotSerializable, true
		}
		out.Write(data)
		out.WriteByte('\n')
	}
	return out.String(), true
}

// extract scans the response for a call payload, in priority order:
// delimiter-tagged region, generic fenced region, bare leading-brace
// JSON text.
func (a *ToolAgent) extract(response string) (string, bool) {
	if text, ok := extractTagged(response, a.openTag, a.closeTag); ok {
		return text, true
	}
	if text, ok := extractFenced(response); ok {
		return text, true
	}
	trimmed := strings.TrimSpace(response)
	if strings.HasPrefix(trimmed, "{") {
		return trimmed, true
	}
	return "", false
}
