// Package tokenization holds the request and response types of the
// tokenize and detokenize endpoints.
package tokenization

type Request struct {
	Prompt string `json:"prompt"`

	// Tokens and TokenIDs select which representations the response
	// carries; both default to true.
	Tokens   bool `json:"tokens"`
	TokenIDs bool `json:"token_ids"`
}

func NewRequest(promptText string) Request {
	return Request{Prompt: promptText, Tokens: true, TokenIDs: true}
}

type Response struct {
	Tokens   []string `json:"tokens,omitempty"`
	TokenIDs []int    `json:"token_ids,omitempty"`
}

type DetokenizationRequest struct {
	TokenIDs []int `json:"token_ids"`
}

type DetokenizationResponse struct {
	Result string `json:"result"`
}
