// Package document models the document inputs of the question answering
// endpoint.
package document

import (
	"encoding/base64"
	"encoding/json"
	"errors"

	"github.com/aleph-alpha/aleph-alpha-go/pkg/domain/prompt"
)

var ErrUnknownDocumentKind = errors.New("document has no content")

type kind int

const (
	kindNone kind = iota
	kindDocx
	kindText
	kindPrompt
)

// Document is a single searchable document: a docx file, plain text, or
// a multimodal prompt.
type Document struct {
	kind   kind
	docx   string
	text   string
	prompt prompt.Prompt
}

// FromDocx creates a document from the raw bytes of a docx file.
func FromDocx(data []byte) Document {
	return Document{kind: kindDocx, docx: base64.StdEncoding.EncodeToString(data)}
}

// FromText creates a document from plain text.
func FromText(text string) Document {
	return Document{kind: kindText, text: text}
}

// FromPrompt creates a document from a multimodal prompt, allowing
// image content to be searched.
func FromPrompt(p prompt.Prompt) Document {
	return Document{kind: kindPrompt, prompt: p}
}

func (d Document) MarshalJSON() ([]byte, error) {
	switch d.kind {
	case kindDocx:
		return json.Marshal(map[string]string{"docx": d.docx})
	case kindText:
		return json.Marshal(map[string]string{"text": d.text})
	case kindPrompt:
		return json.Marshal(map[string][]prompt.Item{"prompt": d.prompt.Items()})
	default:
		return nil, ErrUnknownDocumentKind
	}
}
