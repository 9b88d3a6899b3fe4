package embedding

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aleph-alpha/aleph-alpha-go/pkg/domain/prompt"
)

func TestValidate(t *testing.T) {
	valid := NewRequest(prompt.FromText("hello"), []int{0, -1}, []string{PoolingMean, PoolingMax})
	assert.NoError(t, valid.Validate())

	t.Run("empty prompt", func(t *testing.T) {
		r := NewRequest(prompt.FromText(""), []int{0}, []string{PoolingMean})
		assert.ErrorIs(t, r.Validate(), prompt.ErrEmptyPrompt)
	})

	t.Run("missing layers", func(t *testing.T) {
		r := NewRequest(prompt.FromText("hello"), nil, []string{PoolingMean})
		assert.Error(t, r.Validate())
	})

	t.Run("missing pooling", func(t *testing.T) {
		r := NewRequest(prompt.FromText("hello"), []int{0}, nil)
		assert.Error(t, r.Validate())
	})

	t.Run("unknown pooling", func(t *testing.T) {
		r := NewRequest(prompt.FromText("hello"), []int{0}, []string{"median"})
		err := r.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "median")
	})
}

func TestNewRequestDefaults(t *testing.T) {
	r := NewRequest(prompt.FromText("hello"), []int{-1}, []string{PoolingLastToken})
	assert.Equal(t, "cloud", r.Hosting)
	assert.False(t, r.Tokens)
}
