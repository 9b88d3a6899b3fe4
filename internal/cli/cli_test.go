package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleph-alpha/aleph-alpha-go/pkg/config"
	"github.com/aleph-alpha/aleph-alpha-go/pkg/infra/logger"
)

func testFactory() *Factory {
	cfg := &config.Config{}
	cfg.Client.URL = config.DefaultHost
	cfg.Client.Token = "test-token"
	return NewFactory(cfg, logger.NewLogger())
}

func TestRootCommandTree(t *testing.T) {
	root := NewRootCmd(testFactory())

	want := []string{"version", "models", "complete", "tokenize", "detokenize", "embed", "evaluate"}
	var got []string
	for _, c := range root.Commands() {
		got = append(got, c.Name())
	}
	for _, name := range want {
		assert.Contains(t, got, name)
	}
}

func TestCompleteCmdFlags(t *testing.T) {
	cmd := NewCompleteCmd(testFactory())
	for _, flag := range []string{"model", "prompt", "maximum-tokens"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), flag)
	}
}

func TestFactoryClient(t *testing.T) {
	t.Run("builds a client from valid config", func(t *testing.T) {
		c, err := testFactory().Client()
		require.NoError(t, err)
		assert.Equal(t, config.DefaultHost+"/", c.Host())
	})

	t.Run("rejects config without credentials", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Client.URL = config.DefaultHost
		_, err := NewFactory(cfg, logger.NewLogger()).Client()
		assert.Error(t, err)
	})
}

func TestFactoryModel(t *testing.T) {
	t.Run("flag beats config", func(t *testing.T) {
		f := testFactory()
		f.cfg.Client.Model = "luminous-base"
		m, err := f.Model("luminous-extended")
		require.NoError(t, err)
		assert.Equal(t, "luminous-extended", m.Name())
	})

	t.Run("falls back to configured model", func(t *testing.T) {
		f := testFactory()
		f.cfg.Client.Model = "luminous-base"
		m, err := f.Model("")
		require.NoError(t, err)
		assert.Equal(t, "luminous-base", m.Name())
	})

	t.Run("errors with no model at all", func(t *testing.T) {
		_, err := testFactory().Model("")
		assert.Error(t, err)
	})
}

func TestParseIDs(t *testing.T) {
	ids, err := parseIDs("1, 2,3")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, ids)

	_, err = parseIDs("")
	assert.Error(t, err)

	_, err = parseIDs("1,x")
	assert.Error(t, err)
}
