package protocol

// DefinitionResult connects a definition that is spread over multiple ranges
// or multiple documents.
type DefinitionResult struct {
	Vertex
}

// NewDefinitionResult returns a new DefinitionResult vertex with the given id.
func NewDefinitionResult(id uint64) *DefinitionResult {
	return &DefinitionResult{
		Vertex: Vertex{
			Element: Element{ID: id, Type: ElementVertex},
			Label:   VertexDefinitionResult,
		},
	}
}

// TextDocumentDefinition is an edge that represents the "textDocument/definition" relation.
type TextDocumentDefinition struct {
	Edge
	OutV uint64 `json:"outV"`
	InV  uint64 `json:"inV"`
}

// NewTextDocumentDefinition returns a new TextDocumentDefinition edge with the given id and endpoints.
func NewTextDocumentDefinition(id, outV, inV uint64) *TextDocumentDefinition {
	return &TextDocumentDefinition{
		Edge: Edge{
			Element: Element{ID: id, Type: ElementEdge},
			Label:   EdgeTextDocumentDefinition,
		},
		OutV: outV,
		InV:  inV,
	}
}
