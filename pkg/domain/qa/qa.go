// Package qa holds the request and response types of the question
// answering endpoint.
package qa

import (
	"github.com/aleph-alpha/aleph-alpha-go/pkg/domain/document"
	"github.com/aleph-alpha/aleph-alpha-go/pkg/domain/hosting"
)

const (
	DefaultMaximumTokens = 64
	DefaultMaxChunkSize  = 175
)

type Request struct {
	// Query is the question to answer about the documents.
	Query string `json:"query"`

	Documents []document.Document `json:"documents"`

	Hosting string `json:"hosting"`

	MaximumTokens int `json:"maximum_tokens"`

	// MaxChunkSize bounds document chunks. Long documents are split
	// first on double newlines, then on median sentences, then on
	// whitespace until every chunk fits.
	MaxChunkSize int `json:"max_chunk_size"`

	DisableOptimizations bool `json:"disable_optimizations"`

	// MaxAnswers caps the number of returned answers; 0 means no cap.
	MaxAnswers int `json:"max_answers"`

	// MinScore drops answers scoring below the threshold.
	MinScore float64 `json:"min_score"`
}

func NewRequest(query string, documents []document.Document) Request {
	return Request{
		Query:         query,
		Documents:     documents,
		Hosting:       hosting.Default,
		MaximumTokens: DefaultMaximumTokens,
		MaxChunkSize:  DefaultMaxChunkSize,
	}
}

type Answer struct {
	Answer   string  `json:"answer"`
	Score    float64 `json:"score"`
	Evidence string  `json:"evidence,omitempty"`
}

type Response struct {
	ModelVersion string   `json:"model_version"`
	Answers      []Answer `json:"answers"`
}
