// Package evaluation holds the request and response types of the
// evaluation endpoint, which scores the likelihood of an expected
// completion given a prompt.
package evaluation

import (
	"github.com/aleph-alpha/aleph-alpha-go/pkg/domain/hosting"
	"github.com/aleph-alpha/aleph-alpha-go/pkg/domain/prompt"
)

type Request struct {
	Prompt  prompt.Prompt `json:"prompt"`
	Hosting string        `json:"hosting"`

	// CompletionExpected is the ground truth continuation to score.
	CompletionExpected string `json:"completion_expected"`
}

func NewRequest(p prompt.Prompt, completionExpected string) Request {
	return Request{
		Prompt:             p,
		Hosting:            hosting.Default,
		CompletionExpected: completionExpected,
	}
}

// Result carries the evaluation metrics. Pointers distinguish absent
// fields from zero scores; model versions differ in which metrics they
// report.
type Result struct {
	LogProbability            *float64 `json:"log_probability,omitempty"`
	LogPerplexity             *float64 `json:"log_perplexity,omitempty"`
	LogPerplexityPerToken     *float64 `json:"log_perplexity_per_token,omitempty"`
	LogPerplexityPerCharacter *float64 `json:"log_perplexity_per_character,omitempty"`
	CorrectGreedy             *bool    `json:"correct_greedy,omitempty"`
	TokenCount                *int     `json:"token_count,omitempty"`
	CharacterCount            *int     `json:"character_count,omitempty"`
	Completion                *string  `json:"completion,omitempty"`
}

type Response struct {
	ModelVersion string `json:"model_version"`
	Result       Result `json:"result"`
}
