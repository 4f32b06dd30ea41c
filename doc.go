// Package agents mediates between a text-generating language model and a
// fixed set of host-provided tool functions. It inspects the model's
// free-text output, decides whether it contains an invocation request,
// validates and executes the request, and returns feedback text for the
// next conversation turn.
//
// # Overview
//
// Two interchangeable strategies implement the Agent contract:
//
//   - ToolAgent dispatches structured JSON function calls: it extracts
//     call descriptors from tagged regions, fenced blocks, or bare JSON,
//     validates them against the registry's schemas, invokes the host
//     functions, and aggregates the serialized results.
//   - CodeAgent executes model-written code in a restricted interpreter
//     where the registered tool functions are the only callable surface;
//     the captured print output is the result, and variable bindings
//     persist across turns until Reset.
//
// Both return (feedback, handled); handled == false marks a plain-text
// turn with no actionable directive. Neither strategy lets a failure
// escape as a panic or error: every per-turn problem comes back as
// "Error: ..." feedback for the model to correct.
//
// Tool functions are declared, not reflected: a Func carries the name,
// documentation, and ordered parameter descriptors that drive both the
// pseudo-source stubs shown in the code strategy's system prompt and the
// structured schemas exported by ToolAgent.Schemas.
//
// # Example
//
//	weather := &agents.Func{
//	    Name: "weather_current",
//	    Doc:  "Get the current weather for a given location.",
//	    Params: []agents.Param{
//	        {Name: "latitude", Type: "float", Description: "The latitude of the location."},
//	        {Name: "longitude", Type: "float", Description: "The longitude of the location."},
//	    },
//	    Fn: func(ctx context.Context, args map[string]any) (any, error) { ... },
//	}
//	agent, err := agents.NewToolAgent(agents.NewRegistry(weather))
//	if err != nil { ... }
//	feedback, handled := agent.HandleResponse(ctx, response)
//
// The layer is single-threaded by design: one agent instance per
// conversation, one HandleResponse call per model turn.
package agents
