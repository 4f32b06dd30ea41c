package agents

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
)

// typeNames maps declared parameter type tags to JSON Schema type names.
// Python-style and JSON-Schema-style tags are both accepted; "any" maps
// to an unconstrained schema. A tag outside this table is an authoring
// defect caught at construction (Func.validate).
var typeNames = map[string]string{
	"str":     "string",
	"string":  "string",
	"int":     "integer",
	"integer": "integer",
	"float":   "number",
	"number":  "number",
	"bool":    "boolean",
	"boolean": "boolean",
	"list":    "array",
	"array":   "array",
	"dict":    "object",
	"object":  "object",
	"any":     "",
}

// ToolSchema is the structured call schema for one tool function, in the
// shape expected by LLM tool-definition channels.
type ToolSchema struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Parameters  *jsonschema.Schema `json:"parameters"`
}

// functionSchema renders a Func descriptor into its structured schema.
// Pure over the descriptor: the same Func always yields the same schema,
// keeping the JSON and code strategies consistent for one registry.
func functionSchema(f *Func) ToolSchema {
	params := &jsonschema.Schema{
		Type:       "object",
		Properties: make(map[string]*jsonschema.Schema, len(f.Params)),
	}
	for _, p := range f.Params {
		prop := &jsonschema.Schema{Type: typeNames[p.Type]}
		if p.Description != "" {
			prop.Description = p.Description
		}
		params.Properties[p.Name] = prop
		if !p.HasDefault {
			params.Required = append(params.Required, p.Name)
		}
	}
	return ToolSchema{
		Name:        f.Name,
		Description: f.Doc,
		Parameters:  params,
	}
}

// compileParams resolves the parameter schema into a validator used by
// the JSON dispatcher. Failure here is a construction-time error.
func compileParams(f *Func) (*jsonschema.Resolved, error) {
	resolved, err := functionSchema(f).Parameters.Resolve(nil)
	if err != nil {
		return nil, fmt.Errorf("function %s: compile parameter schema: %w", f.Name, err)
	}
	return resolved, nil
}

// functionStub renders a Func as a pseudo-source signature for the code
// strategy's system prompt. The docstring carries the function
// documentation plus one line per described parameter.
func functionStub(f *Func) string {
	var b strings.Builder
	b.WriteString("def " + f.Name + "(")
	for i, p := range f.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name + ": " + p.Type)
		if p.HasDefault {
			b.WriteString(" = " + pyLiteral(p.Default))
		}
	}
	b.WriteString("):\n")

	var doc []string
	if f.Doc != "" {
		doc = strings.Split(f.Doc, "\n")
	}
	var paramDoc []string
	for _, p := range f.Params {
		if p.Description != "" {
			paramDoc = append(paramDoc, p.Name+": "+p.Description)
		}
	}
	if len(paramDoc) > 0 {
		if len(doc) > 0 {
			doc = append(doc, "")
		}
		doc = append(doc, paramDoc...)
	}
	if len(doc) > 0 {
		b.WriteString("    \"\"\"\n")
		for _, line := range doc {
			if line == "" {
				b.WriteString("\n")
			} else {
				b.WriteString("    " + line + "\n")
			}
		}
		b.WriteString("    \"\"\"\n")
	}
	b.WriteString("    pass")
	return b.String()
}

// stubBlock renders every registered function as a stub inside a single
// fenced region, in registry name order.
func stubBlock(r *Registry) string {
	stubs := make([]string, 0, r.Len())
	for _, name := range r.Names() {
		f, _ := r.Get(name)
		stubs = append(stubs, functionStub(f))
	}
	return "```python\n" + strings.Join(stubs, "\n\n") + "\n```"
}

// pyLiteral renders a default value as a pseudo-source literal.
func pyLiteral(v any) string {
	switch v := v.(type) {
	case nil:
		return "None"
	case bool:
		if v {
			return "True"
		}
		return "False"
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(b)
	}
}
