package agents

import "context"

// Agent is the contract between the conversation loop and an invocation
// strategy. The loop calls HandleResponse once per model turn with the
// raw response text; handled == false means no actionable directive was
// found and the response should be treated as plain conversational text.
// When handled is true, feedback is fed back to the model as the next
// turn's input under a caller-chosen role.
//
// Implementations fail closed: every per-turn failure is reported as
// "Error: ..." feedback text, never as a panic or error across this
// boundary.
type Agent interface {
	HandleResponse(ctx context.Context, response string) (feedback string, handled bool)
}
