package prompt

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextPromptMarshalsAsString(t *testing.T) {
	out, err := json.Marshal(FromText("An apple a day"))
	require.NoError(t, err)
	assert.Equal(t, `"An apple a day"`, string(out))
}

func TestMultimodalPromptMarshalsAsItems(t *testing.T) {
	p := FromItems(Text("Describe this: "), Image([]byte{0xff, 0xd8}))
	out, err := json.Marshal(p)
	require.NoError(t, err)

	var items []map[string]string
	require.NoError(t, json.Unmarshal(out, &items))
	require.Len(t, items, 2)
	assert.Equal(t, "text", items[0]["type"])
	assert.Equal(t, "Describe this: ", items[0]["data"])
	assert.Equal(t, "image", items[1]["type"])
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte{0xff, 0xd8}), items[1]["data"])
}

func TestUnmarshalRoundTrip(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		var p Prompt
		require.NoError(t, json.Unmarshal([]byte(`"hello"`), &p))
		assert.Equal(t, "hello", p.Text())
	})

	t.Run("items", func(t *testing.T) {
		var p Prompt
		require.NoError(t, json.Unmarshal([]byte(`[{"type":"text","data":"hello"}]`), &p))
		assert.Equal(t, "hello", p.Text())
		assert.Len(t, p.Items(), 1)
	})
}

func TestValidate(t *testing.T) {
	assert.NoError(t, FromText("hello").Validate())
	assert.ErrorIs(t, FromText("").Validate(), ErrEmptyPrompt)
	assert.ErrorIs(t, FromText("   ").Validate(), ErrEmptyPrompt)

	assert.NoError(t, FromItems(Image([]byte{1})).Validate())
	assert.NoError(t, FromItems(Text("hi")).Validate())
	assert.ErrorIs(t, FromItems().Validate(), ErrEmptyPrompt)
	assert.ErrorIs(t, FromItems(Text(" ")).Validate(), ErrEmptyPrompt)
}

func TestItemsOfTextPrompt(t *testing.T) {
	items := FromText("hello").Items()
	require.Len(t, items, 1)
	assert.Equal(t, Text("hello"), items[0])
}
