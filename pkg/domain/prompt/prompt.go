// Package prompt models the multimodal prompts accepted by the API.
//
// A prompt is either a bare text string or a sequence of items (text and
// base64 encoded images). Bare text serializes as a JSON string, item
// sequences as a JSON array of {"type", "data"} objects; both shapes are
// accepted by every prompt-taking endpoint.
package prompt

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
)

var ErrEmptyPrompt = errors.New("prompt must contain at least one token")

const (
	ItemTypeText  = "text"
	ItemTypeImage = "image"
)

// Item is a single element of a multimodal prompt.
type Item struct {
	Type string `json:"type"`
	Data string `json:"data"`
}

// Text creates a text prompt item.
func Text(text string) Item {
	return Item{Type: ItemTypeText, Data: text}
}

// Image creates an image prompt item from raw image bytes. The bytes are
// base64 encoded for transport; the server side handles decoding and
// image preprocessing.
func Image(data []byte) Item {
	return Item{Type: ItemTypeImage, Data: base64.StdEncoding.EncodeToString(data)}
}

// Prompt is the input to completion, embedding, evaluation and
// explanation requests.
type Prompt struct {
	text       string
	items      []Item
	multimodal bool
}

// FromText builds a plain text prompt. It serializes as a bare JSON
// string, matching what text-only callers send.
func FromText(text string) Prompt {
	return Prompt{text: text}
}

// FromItems builds a multimodal prompt from explicit items.
func FromItems(items ...Item) Prompt {
	return Prompt{items: items, multimodal: true}
}

// Text returns the text content of a plain text prompt. For multimodal
// prompts it returns the concatenation of the text items.
func (p Prompt) Text() string {
	if !p.multimodal {
		return p.text
	}
	var b strings.Builder
	for _, item := range p.items {
		if item.Type == ItemTypeText {
			b.WriteString(item.Data)
		}
	}
	return b.String()
}

// Items returns the prompt items. A plain text prompt is returned as a
// single text item.
func (p Prompt) Items() []Item {
	if !p.multimodal {
		return []Item{Text(p.text)}
	}
	return p.items
}

// Validate checks that the prompt carries at least one token. Embedding
// requests reject empty prompts server-side; failing early keeps the
// error local.
func (p Prompt) Validate() error {
	if !p.multimodal {
		if strings.TrimSpace(p.text) == "" {
			return ErrEmptyPrompt
		}
		return nil
	}
	for _, item := range p.items {
		if item.Type != ItemTypeText || strings.TrimSpace(item.Data) != "" {
			return nil
		}
	}
	return ErrEmptyPrompt
}

func (p Prompt) MarshalJSON() ([]byte, error) {
	if !p.multimodal {
		return json.Marshal(p.text)
	}
	return json.Marshal(p.items)
}

func (p *Prompt) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*p = FromText(text)
		return nil
	}
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*p = FromItems(items...)
	return nil
}
