// Package carpagent provides a single-turn text agent template with a
// uniform success/failure response envelope.
package carpagent

import "fmt"

// Identity names an agent. It is fixed at construction time and carried
// unchanged on every response envelope.
type Identity struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ProcessFunc is the pluggable processing step of an agent. It must be
// total over all string inputs, including the empty string; returning an
// error marks the turn as failed at the envelope boundary instead of
// crashing the caller.
type ProcessFunc func(input string) (string, error)

// Agent is a single-turn text agent.
type Agent struct {
	identity Identity
	process  ProcessFunc
}

// New constructs an agent from cfg. Missing config values fall back to
// the stock identity, and the processing step defaults to the greeting
// placeholder unless replaced via WithProcessFunc.
func New(cfg Config, opts ...Option) *Agent {
	a := &Agent{identity: cfg.Identity()}
	a.process = a.greet

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Identity returns the construction-time identity.
func (a *Agent) Identity() Identity {
	return a.identity
}

// Process runs the processing step on raw text input.
func (a *Agent) Process(input string) (string, error) {
	return a.process(input)
}

// greet is the placeholder processing step. It echoes the input back
// verbatim inside a greeting.
func (a *Agent) greet(input string) (string, error) {
	return fmt.Sprintf("Hello from %s! You said: %s", a.identity.Name, input), nil
}

// HandleRequest runs the processing step on a structured request and
// wraps the outcome in a response envelope. A missing input field is
// treated as the empty string. This is the one place processing errors
// are converted; nothing propagates past it.
func (a *Agent) HandleRequest(req Request) Response {
	result, err := a.Process(req.Input)
	if err != nil {
		return Response{Success: false, Error: err.Error(), Agent: a.identity}
	}

	return Response{Success: true, Result: result, Agent: a.identity}
}
