// Package embedding holds the request and response types of the
// embedding endpoint.
package embedding

import (
	"fmt"

	"github.com/aleph-alpha/aleph-alpha-go/pkg/domain/hosting"
	"github.com/aleph-alpha/aleph-alpha-go/pkg/domain/prompt"
)

// Pooling operations applied across the sequence dimension.
const (
	PoolingMean      = "mean"
	PoolingMax       = "max"
	PoolingLastToken = "last_token"
	PoolingAbsMax    = "abs_max"
)

// PoolingOptions lists every pooling operation the API accepts.
var PoolingOptions = []string{PoolingMean, PoolingMax, PoolingLastToken, PoolingAbsMax}

type Request struct {
	Prompt prompt.Prompt `json:"prompt"`

	Hosting string `json:"hosting"`

	// Layers are the transformer layer indices to embed. 0 is the input
	// word embedding, 1 the first layer output and so on; negative
	// indices count from the last layer.
	Layers []int `json:"layers"`

	// Pooling operations to apply per layer.
	Pooling []string `json:"pooling"`

	// Tokens returns the tokenized prompt alongside the embeddings.
	Tokens bool `json:"tokens"`

	// Type distinguishes symmetric from asymmetric embeddings where a
	// model supports it.
	Type string `json:"type,omitempty"`
}

func NewRequest(p prompt.Prompt, layers []int, pooling []string) Request {
	return Request{
		Prompt:  p,
		Hosting: hosting.Default,
		Layers:  layers,
		Pooling: pooling,
	}
}

// Validate rejects requests the server would refuse: empty prompts,
// missing layers, unknown pooling operations.
func (r Request) Validate() error {
	if err := r.Prompt.Validate(); err != nil {
		return err
	}
	if len(r.Layers) == 0 {
		return fmt.Errorf("at least one layer index is required")
	}
	if len(r.Pooling) == 0 {
		return fmt.Errorf("at least one pooling operation is required")
	}
	for _, p := range r.Pooling {
		if !validPooling(p) {
			return fmt.Errorf("unknown pooling operation %q (valid: %v)", p, PoolingOptions)
		}
	}
	return nil
}

func validPooling(p string) bool {
	for _, opt := range PoolingOptions {
		if p == opt {
			return true
		}
	}
	return false
}

// Response maps layer ("layer_0", "layer_1", ...) to pooling operation
// to embedding vector.
type Response struct {
	ModelVersion string                          `json:"model_version"`
	Embeddings   map[string]map[string][]float64 `json:"embeddings"`
	Tokens       []string                        `json:"tokens,omitempty"`
}
