package agents

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAgent struct {
	feedback string
	handled  bool
	panics   bool
}

func (s *stubAgent) HandleResponse(_ context.Context, _ string) (string, bool) {
	if s.panics {
		panic("broken agent")
	}
	return s.feedback, s.handled
}

func TestWrap_OnionOrder(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(next Agent) Agent {
			return agentFunc(func(ctx context.Context, response string) (string, bool) {
				order = append(order, name)
				return next.HandleResponse(ctx, response)
			})
		}
	}
	agent := Wrap(&stubAgent{handled: true}, mark("outer"), mark("inner"))
	_, handled := agent.HandleResponse(context.Background(), "x")
	require.True(t, handled)
	assert.Equal(t, []string{"outer", "inner"}, order)
}

type agentFunc func(context.Context, string) (string, bool)

func (f agentFunc) HandleResponse(ctx context.Context, response string) (string, bool) {
	return f(ctx, response)
}

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	agent := Wrap(&stubAgent{feedback: "result", handled: true}, WithLogging(logger))

	feedback, handled := agent.HandleResponse(context.Background(), "turn")
	require.True(t, handled)
	assert.Equal(t, "result", feedback)
	assert.Contains(t, buf.String(), "turn handled")
}

func TestWithLogging_NilLoggerDefaults(t *testing.T) {
	agent := Wrap(&stubAgent{}, WithLogging(nil))
	_, handled := agent.HandleResponse(context.Background(), "turn")
	assert.False(t, handled)
}

func TestWithRecovery(t *testing.T) {
	agent := Wrap(&stubAgent{panics: true}, WithRecovery())
	feedback, handled := agent.HandleResponse(context.Background(), "turn")
	require.True(t, handled)
	assert.Equal(t, "Error: broken agent", feedback)
}
