// Package completion holds the request and response types of the
// completion endpoint.
package completion

import (
	"encoding/json"

	"github.com/aleph-alpha/aleph-alpha-go/pkg/domain/hosting"
	"github.com/aleph-alpha/aleph-alpha-go/pkg/domain/prompt"
)

const DefaultMaximumTokens = 64

// Request carries the sampling parameters of a completion call. Zero
// values mirror the server defaults; NewRequest fills in the documented
// non-zero defaults (hosting "cloud", 64 maximum tokens, one sample).
//
// The mapstructure tags allow decoding parameter maps from config files
// into a Request.
type Request struct {
	Prompt prompt.Prompt `json:"prompt" mapstructure:"-"`

	// Hosting selects where the computation runs; "cloud" means any of
	// the operator's servers.
	Hosting string `json:"hosting" mapstructure:"hosting"`

	// MaximumTokens bounds the generation; prompt plus completion must
	// fit the model context.
	MaximumTokens int `json:"maximum_tokens" mapstructure:"maximum_tokens"`

	// Sampling controls. Rescaling with Temperature is applied first,
	// then TopK, then TopP.
	Temperature float64 `json:"temperature" mapstructure:"temperature"`
	TopK        int     `json:"top_k" mapstructure:"top_k"`
	TopP        float64 `json:"top_p" mapstructure:"top_p"`

	PresencePenalty                  float64 `json:"presence_penalty" mapstructure:"presence_penalty"`
	FrequencyPenalty                 float64 `json:"frequency_penalty" mapstructure:"frequency_penalty"`
	RepetitionPenaltiesIncludePrompt bool    `json:"repetition_penalties_include_prompt" mapstructure:"repetition_penalties_include_prompt"`
	UseMultiplicativePresencePenalty bool    `json:"use_multiplicative_presence_penalty" mapstructure:"use_multiplicative_presence_penalty"`

	// BestOf generates that many candidates server-side and keeps the
	// ones with the highest log probability per token. Must exceed N
	// when both are set.
	BestOf *int `json:"best_of,omitempty" mapstructure:"best_of"`

	// N is the number of completions to return.
	N int `json:"n" mapstructure:"n"`

	// LogitBias adds a per-token-id bias to the logits.
	LogitBias map[int]float64 `json:"logit_bias,omitempty" mapstructure:"logit_bias"`

	// LogProbs requests the top log probabilities for each generated
	// token.
	LogProbs *int `json:"log_probs,omitempty" mapstructure:"log_probs"`

	// StopSequences end the generation when produced.
	StopSequences []string `json:"stop_sequences,omitempty" mapstructure:"stop_sequences"`

	// Tokens returns the completion tokens alongside the text.
	Tokens bool `json:"tokens" mapstructure:"tokens"`

	// DisableOptimizations leaves prompt and completion untouched by
	// server-side prompt optimization.
	DisableOptimizations bool `json:"disable_optimizations" mapstructure:"disable_optimizations"`
}

// NewRequest returns a Request for the given prompt with the default
// parameter set.
func NewRequest(p prompt.Prompt) Request {
	return Request{
		Prompt:        p,
		Hosting:       hosting.Default,
		MaximumTokens: DefaultMaximumTokens,
		N:             1,
	}
}

// Completion is a single generated sample.
type Completion struct {
	Text         string               `json:"completion"`
	FinishReason string               `json:"finish_reason,omitempty"`
	Tokens       []string             `json:"completion_tokens,omitempty"`
	LogProbs     []map[string]float64 `json:"log_probs,omitempty"`
}

// Response is the typed completion result.
type Response struct {
	ModelVersion string       `json:"model_version"`
	Completions  []Completion `json:"completions"`

	// OptimizedPrompt is present when the server rewrote the prompt
	// before sampling; pass DisableOptimizations to prevent that.
	OptimizedPrompt json.RawMessage `json:"optimized_prompt,omitempty"`
}
