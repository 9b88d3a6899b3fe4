// Package explanation holds the request type of the explain endpoint.
// The endpoint is experimental; its response shape is not yet stable and
// is returned raw by the client.
package explanation

import "github.com/aleph-alpha/aleph-alpha-go/pkg/domain/prompt"

type Request struct {
	Prompt prompt.Prompt `json:"prompt"`

	// Target is the completion whose generation should be explained.
	Target string `json:"target"`

	// SuppressionFactor scales down the logits of suppressed prompt
	// tokens when measuring their influence on the target.
	SuppressionFactor float64 `json:"suppression_factor"`

	Directional bool `json:"directional,omitempty"`

	// ConceptualSuppressionThreshold groups similarly-attributed tokens
	// into concepts when set.
	ConceptualSuppressionThreshold *float64 `json:"conceptual_suppression_threshold,omitempty"`
}

func NewRequest(p prompt.Prompt, target string, suppressionFactor float64) Request {
	return Request{
		Prompt:            p,
		Target:            target,
		SuppressionFactor: suppressionFactor,
	}
}
