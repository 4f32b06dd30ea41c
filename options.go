package agents

// ToolAgentOption configures a ToolAgent.
type ToolAgentOption func(*toolAgentOptions)

type toolAgentOptions struct {
	openTag  string
	closeTag string
}

// WithToolCallTags overrides the call-delimiter tags scanned for in
// model output. Defaults are <tool_call> and </tool_call>.
func WithToolCallTags(open, close string) ToolAgentOption {
	return func(o *toolAgentOptions) {
		o.openTag = open
		o.closeTag = close
	}
}

// CodeAgentOption configures a CodeAgent.
type CodeAgentOption func(*codeAgentOptions)

type codeAgentOptions struct {
	prompt string
}

// WithSystemPrompt replaces the default system-prompt template. The
// template must contain the {functions} placeholder; NewCodeAgent
// returns ErrMissingPlaceholder otherwise.
func WithSystemPrompt(template string) CodeAgentOption {
	return func(o *codeAgentOptions) {
		o.prompt = template
	}
}
