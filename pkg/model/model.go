// Package model provides a model-scoped facade over the API client so
// callers bind the model name and hosting once instead of passing them
// on every call.
package model

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aleph-alpha/aleph-alpha-go/pkg/client"
	"github.com/aleph-alpha/aleph-alpha-go/pkg/domain/completion"
	"github.com/aleph-alpha/aleph-alpha-go/pkg/domain/embedding"
	"github.com/aleph-alpha/aleph-alpha-go/pkg/domain/evaluation"
	"github.com/aleph-alpha/aleph-alpha-go/pkg/domain/explanation"
	"github.com/aleph-alpha/aleph-alpha-go/pkg/domain/hosting"
	"github.com/aleph-alpha/aleph-alpha-go/pkg/domain/qa"
	"github.com/aleph-alpha/aleph-alpha-go/pkg/domain/tokenization"
)

// API is the part of the client the facade needs. *client.Client
// satisfies it.
type API interface {
	Complete(ctx context.Context, model string, req completion.Request) (*completion.Response, error)
	Embed(ctx context.Context, model string, req embedding.Request) (*embedding.Response, error)
	Evaluate(ctx context.Context, model string, req evaluation.Request) (*evaluation.Response, error)
	Tokenize(ctx context.Context, model string, req tokenization.Request) (*tokenization.Response, error)
	Detokenize(ctx context.Context, model string, req tokenization.DetokenizationRequest) (*tokenization.DetokenizationResponse, error)
	Qa(ctx context.Context, model string, req qa.Request) (*qa.Response, error)
	Explain(ctx context.Context, model, hosting string, req explanation.Request) (json.RawMessage, error)
}

// Model binds an API client to one model name and hosting.
type Model struct {
	api     API
	name    string
	hosting string
}

// Option configures a Model.
type Option func(*Model)

// WithHosting overrides the default "cloud" hosting.
func WithHosting(hosting string) Option {
	return func(m *Model) {
		if hosting != "" {
			m.hosting = hosting
		}
	}
}

// New binds api to the given model name.
func New(api API, name string, opts ...Option) (*Model, error) {
	if api == nil {
		return nil, fmt.Errorf("api client is required")
	}
	if name == "" {
		return nil, fmt.Errorf("model name is required")
	}
	m := &Model{
		api:     api,
		name:    name,
		hosting: hosting.Default,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Name returns the bound model name.
func (m *Model) Name() string {
	return m.name
}

func (m *Model) Complete(ctx context.Context, req completion.Request) (*completion.Response, error) {
	req.Hosting = m.hosting
	return m.api.Complete(ctx, m.name, req)
}

func (m *Model) Embed(ctx context.Context, req embedding.Request) (*embedding.Response, error) {
	req.Hosting = m.hosting
	return m.api.Embed(ctx, m.name, req)
}

func (m *Model) Evaluate(ctx context.Context, req evaluation.Request) (*evaluation.Response, error) {
	req.Hosting = m.hosting
	return m.api.Evaluate(ctx, m.name, req)
}

func (m *Model) Tokenize(ctx context.Context, req tokenization.Request) (*tokenization.Response, error) {
	return m.api.Tokenize(ctx, m.name, req)
}

func (m *Model) Detokenize(ctx context.Context, req tokenization.DetokenizationRequest) (*tokenization.DetokenizationResponse, error) {
	return m.api.Detokenize(ctx, m.name, req)
}

func (m *Model) Qa(ctx context.Context, req qa.Request) (*qa.Response, error) {
	req.Hosting = m.hosting
	return m.api.Qa(ctx, m.name, req)
}

func (m *Model) Explain(ctx context.Context, req explanation.Request) (json.RawMessage, error) {
	return m.api.Explain(ctx, m.name, m.hosting, req)
}

var _ API = (*client.Client)(nil)
