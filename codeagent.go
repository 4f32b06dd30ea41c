package agents

import (
	"context"
	"strings"
)

// CodeAgent is the sandboxed code strategy: it extracts exactly one
// fenced code block per turn, executes it in a restricted interpreter
// where the registered tool functions are the only callable surface, and
// returns the captured print output as feedback. Variables defined by one
// turn stay visible in later turns until Reset.
type CodeAgent struct {
	registry *Registry
	prompt   string
	session  *session
}

var _ Agent = (*CodeAgent)(nil)

// NewCodeAgent builds a CodeAgent over the given registry. A caller-
// supplied system-prompt template without the {functions} placeholder is
// rejected here with ErrMissingPlaceholder.
func NewCodeAgent(registry *Registry, opts ...CodeAgentOption) (*CodeAgent, error) {
	if err := registry.validate(); err != nil {
		return nil, err
	}
	o := codeAgentOptions{prompt: defaultCodeSystemPrompt}
	for _, opt := range opts {
		opt(&o)
	}
	if !strings.Contains(o.prompt, promptPlaceholder) {
		return nil, ErrMissingPlaceholder
	}
	return &CodeAgent{
		registry: registry,
		prompt:   o.prompt,
		session:  newSession(registry),
	}, nil
}

// Reset clears all session bindings, starting a new logical session with
// the same registry and capability profile.
func (a *CodeAgent) Reset() {
	a.session.reset()
}

// FormatSystemPrompt renders the prompt template with the stub block for
// all registered functions. Deterministic for a given registry.
func (a *CodeAgent) FormatSystemPrompt() string {
	return strings.Replace(a.prompt, promptPlaceholder, stubBlock(a.registry), 1)
}

// HandleResponse extracts and executes the response's code block.
// A response without fenced regions is plain text (handled == false), as
// is a tagged block left unclosed by a truncated generation; a fence
// without the python tag, or more than one tagged block, is a formatting
// error. The one-block rule keeps the model to strict single-step
// execution: it must observe each result before proceeding.
func (a *CodeAgent) HandleResponse(ctx context.Context, response string) (string, bool) {
	blocks, hasFence, hasTag := extractCodeBlocks(response)
	if !hasFence {
		return "", false
	}
	if !hasTag {
		return errBlockFormat, true
	}
	if len(blocks) == 0 {
		return "", false
	}
	if len(blocks) > 1 {
		return errMultipleBlocks, true
	}
	return a.session.run(ctx, blocks[0]), true
}
