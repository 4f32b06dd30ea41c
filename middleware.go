package agents

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Middleware wraps an Agent with cross-cutting behavior (logging, recovery).
type Middleware func(Agent) Agent

// Wrap applies middlewares to agent in onion order: the first middleware
// is outermost.
func Wrap(agent Agent, middlewares ...Middleware) Agent {
	for i := len(middlewares) - 1; i >= 0; i-- {
		agent = middlewares[i](agent)
	}
	return agent
}

// WithLogging returns a middleware that logs each turn: whether it was
// handled, the feedback size, and the duration.
func WithLogging(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next Agent) Agent {
		return &loggingAgent{next: next, logger: logger}
	}
}

type loggingAgent struct {
	next   Agent
	logger *slog.Logger
}

func (m *loggingAgent) HandleResponse(ctx context.Context, response string) (string, bool) {
	start := time.Now()
	feedback, handled := m.next.HandleResponse(ctx, response)
	dur := time.Since(start)
	if handled {
		m.logger.Info("turn handled", "duration", dur, "feedback_bytes", len(feedback))
	} else {
		m.logger.Debug("turn passed through", "duration", dur)
	}
	return feedback, handled
}

// WithRecovery returns a middleware that converts a panic escaping the
// wrapped Agent into error feedback. The built-in agents never panic
// across their boundary; this guards custom Agent implementations so the
// conversation loop keeps its fail-closed contract.
func WithRecovery() Middleware {
	return func(next Agent) Agent {
		return &recoveryAgent{next: next}
	}
}

type recoveryAgent struct {
	next Agent
}

func (r *recoveryAgent) HandleResponse(ctx context.Context, response string) (feedback string, handled bool) {
	defer func() {
		if p := recover(); p != nil {
			feedback = fmt.Sprintf("Error: %v", p)
			handled = true
		}
	}()
	return r.next.HandleResponse(ctx, response)
}
