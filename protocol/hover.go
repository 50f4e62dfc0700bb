package protocol

import "encoding/json"

// HoverResult connects a hover that is spread over multiple ranges or multiple documents.
type HoverResult struct {
	Vertex
	Result hoverResult `json:"result"`
}

type hoverResult struct {
	Contents []MarkedString `json:"contents"`
}

// NewHoverResult returns a new HoverResult vertex with the given id and contents.
func NewHoverResult(id uint64, contents []MarkedString) *HoverResult {
	return &HoverResult{
		Vertex: Vertex{
			Element: Element{ID: id, Type: ElementVertex},
			Label:   VertexHoverResult,
		},
		Result: hoverResult{
			Contents: contents,
		},
	}
}

// MarkedString is the object describing a single piece of hover content. It
// marshals either as {language, value} or, when constructed with
// RawMarkedString, as a bare JSON string.
type MarkedString markedString

type markedString struct {
	Language    string `json:"language"`
	Value       string `json:"value"`
	isRawString bool
}

// NewMarkedString returns a language-tagged marked string.
func NewMarkedString(s, languageID string) MarkedString {
	return MarkedString{
		Language: languageID,
		Value:    s,
	}
}

// RawMarkedString returns a MarkedString that marshals as a bare JSON string
// (i.e. "foo" instead of {"value":"foo","language":"bar"}).
func RawMarkedString(s string) MarkedString {
	return MarkedString{
		Value:       s,
		isRawString: true,
	}
}

func (m MarkedString) MarshalJSON() ([]byte, error) {
	if m.isRawString {
		return json.Marshal(m.Value)
	}
	return json.Marshal((markedString)(m))
}

// TextDocumentHover is an edge that represents the "textDocument/hover" relation.
type TextDocumentHover struct {
	Edge
	OutV uint64 `json:"outV"`
	InV  uint64 `json:"inV"`
}

// NewTextDocumentHover returns a new TextDocumentHover edge with the given id and endpoints.
func NewTextDocumentHover(id, outV, inV uint64) *TextDocumentHover {
	return &TextDocumentHover{
		Edge: Edge{
			Element: Element{ID: id, Type: ElementEdge},
			Label:   EdgeTextDocumentHover,
		},
		OutV: outV,
		InV:  inV,
	}
}
