package client

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleph-alpha/aleph-alpha-go/pkg/domain/completion"
	"github.com/aleph-alpha/aleph-alpha-go/pkg/domain/prompt"
)

// Integration tests run against a live API. They are skipped unless
// TEST_API_URL and TEST_TOKEN are set.
func integrationClient(t *testing.T) *Client {
	t.Helper()
	url := os.Getenv("TEST_API_URL")
	token := os.Getenv("TEST_TOKEN")
	if url == "" || token == "" {
		t.Skip("TEST_API_URL and TEST_TOKEN not set")
	}
	c, err := New(url, WithToken(token))
	require.NoError(t, err)
	return c
}

func TestIntegrationVersion(t *testing.T) {
	c := integrationClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	v, err := c.Version(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, v)
}

func TestIntegrationModelsAvailable(t *testing.T) {
	c := integrationClient(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	models, err := c.AvailableModels(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, models)
}

func TestIntegrationComplete(t *testing.T) {
	c := integrationClient(t)
	modelName := os.Getenv("TEST_MODEL")
	if modelName == "" {
		modelName = "luminous-base"
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	req := completion.NewRequest(prompt.FromText("Hello, "))
	req.MaximumTokens = 8
	resp, err := c.Complete(ctx, modelName, req)
	require.NoError(t, err)
	require.Len(t, resp.Completions, 1)
}
