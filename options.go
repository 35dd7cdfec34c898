package carpagent

// Option configures an Agent at construction time.
type Option func(*Agent)

// WithProcessFunc replaces the placeholder processing step. A nil fn is
// ignored so the agent always has a total processing step.
func WithProcessFunc(fn ProcessFunc) Option {
	return func(a *Agent) {
		if fn != nil {
			a.process = fn
		}
	}
}
