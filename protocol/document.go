package protocol

import "encoding/base64"

// Document is a vertex representing a single source file indexed by the project.
type Document struct {
	Vertex
	URI        string `json:"uri"`
	LanguageID string `json:"languageId"`
	Contents   string `json:"contents,omitempty"`
}

// NewDocument returns a new Document vertex with the given id, language tag,
// file URI, and optional embedded file contents (base64-encoded when present).
func NewDocument(id uint64, languageID, uri string, contents []byte) *Document {
	d := &Document{
		Vertex: Vertex{
			Element: Element{ID: id, Type: ElementVertex},
			Label:   VertexDocument,
		},
		URI:        uri,
		LanguageID: languageID,
	}

	if len(contents) > 0 {
		d.Contents = base64.StdEncoding.EncodeToString(contents)
	}

	return d
}
