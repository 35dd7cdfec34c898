package carpagent

// Request is a single-turn structured request. Fields other than input
// are ignored.
type Request struct {
	Input string `json:"input"`
}

// Response is the tagged envelope returned for every handled request.
// Exactly one of Result and Error is populated depending on Success.
type Response struct {
	Success bool     `json:"success"`
	Result  string   `json:"result,omitempty"`
	Error   string   `json:"error,omitempty"`
	Agent   Identity `json:"agent"`
}
