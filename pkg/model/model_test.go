package model

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleph-alpha/aleph-alpha-go/pkg/domain/completion"
	"github.com/aleph-alpha/aleph-alpha-go/pkg/domain/embedding"
	"github.com/aleph-alpha/aleph-alpha-go/pkg/domain/evaluation"
	"github.com/aleph-alpha/aleph-alpha-go/pkg/domain/explanation"
	"github.com/aleph-alpha/aleph-alpha-go/pkg/domain/prompt"
	"github.com/aleph-alpha/aleph-alpha-go/pkg/domain/qa"
	"github.com/aleph-alpha/aleph-alpha-go/pkg/domain/tokenization"
)

type fakeAPI struct {
	gotModel   string
	gotHosting string
}

func (f *fakeAPI) Complete(_ context.Context, model string, req completion.Request) (*completion.Response, error) {
	f.gotModel, f.gotHosting = model, req.Hosting
	return &completion.Response{Completions: []completion.Completion{{Text: "ok"}}}, nil
}

func (f *fakeAPI) Embed(_ context.Context, model string, req embedding.Request) (*embedding.Response, error) {
	f.gotModel, f.gotHosting = model, req.Hosting
	return &embedding.Response{}, nil
}

func (f *fakeAPI) Evaluate(_ context.Context, model string, req evaluation.Request) (*evaluation.Response, error) {
	f.gotModel, f.gotHosting = model, req.Hosting
	return &evaluation.Response{}, nil
}

func (f *fakeAPI) Tokenize(_ context.Context, model string, _ tokenization.Request) (*tokenization.Response, error) {
	f.gotModel = model
	return &tokenization.Response{Tokens: []string{"ok"}}, nil
}

func (f *fakeAPI) Detokenize(_ context.Context, model string, _ tokenization.DetokenizationRequest) (*tokenization.DetokenizationResponse, error) {
	f.gotModel = model
	return &tokenization.DetokenizationResponse{Result: "ok"}, nil
}

func (f *fakeAPI) Qa(_ context.Context, model string, req qa.Request) (*qa.Response, error) {
	f.gotModel, f.gotHosting = model, req.Hosting
	return &qa.Response{}, nil
}

func (f *fakeAPI) Explain(_ context.Context, model, hosting string, _ explanation.Request) (json.RawMessage, error) {
	f.gotModel, f.gotHosting = model, hosting
	return json.RawMessage(`{}`), nil
}

func TestNew(t *testing.T) {
	t.Run("requires a client", func(t *testing.T) {
		_, err := New(nil, "luminous-base")
		assert.Error(t, err)
	})

	t.Run("requires a name", func(t *testing.T) {
		_, err := New(&fakeAPI{}, "")
		assert.Error(t, err)
	})

	t.Run("defaults to cloud hosting", func(t *testing.T) {
		api := &fakeAPI{}
		m, err := New(api, "luminous-base")
		require.NoError(t, err)
		assert.Equal(t, "luminous-base", m.Name())

		_, err = m.Complete(context.Background(), completion.Request{Prompt: prompt.FromText("hi")})
		require.NoError(t, err)
		assert.Equal(t, "cloud", api.gotHosting)
	})
}

func TestBindsModelAndHosting(t *testing.T) {
	api := &fakeAPI{}
	m, err := New(api, "luminous-extended", WithHosting("aleph-alpha"))
	require.NoError(t, err)

	ctx := context.Background()

	_, err = m.Complete(ctx, completion.Request{Prompt: prompt.FromText("hi")})
	require.NoError(t, err)
	assert.Equal(t, "luminous-extended", api.gotModel)
	assert.Equal(t, "aleph-alpha", api.gotHosting)

	_, err = m.Embed(ctx, embedding.NewRequest(prompt.FromText("hi"), []int{0}, []string{embedding.PoolingMean}))
	require.NoError(t, err)
	assert.Equal(t, "aleph-alpha", api.gotHosting)

	_, err = m.Evaluate(ctx, evaluation.Request{Prompt: prompt.FromText("hi"), CompletionExpected: "there"})
	require.NoError(t, err)
	assert.Equal(t, "aleph-alpha", api.gotHosting)

	_, err = m.Qa(ctx, qa.NewRequest("why?", nil))
	require.NoError(t, err)
	assert.Equal(t, "aleph-alpha", api.gotHosting)

	_, err = m.Tokenize(ctx, tokenization.NewRequest("hi"))
	require.NoError(t, err)
	assert.Equal(t, "luminous-extended", api.gotModel)

	_, err = m.Detokenize(ctx, tokenization.DetokenizationRequest{TokenIDs: []int{1}})
	require.NoError(t, err)

	_, err = m.Explain(ctx, explanation.NewRequest(prompt.FromText("hi"), " there", 0.1))
	require.NoError(t, err)
	assert.Equal(t, "aleph-alpha", api.gotHosting)
}
