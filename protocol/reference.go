package protocol

// ReferenceResult acts as a hub for reference information common to a set of ranges.
type ReferenceResult struct {
	Vertex
}

// NewReferenceResult returns a new ReferenceResult vertex with the given id.
func NewReferenceResult(id uint64) *ReferenceResult {
	return &ReferenceResult{
		Vertex: Vertex{
			Element: Element{ID: id, Type: ElementVertex},
			Label:   VertexReferenceResult,
		},
	}
}

// TextDocumentReferences is an edge that represents the "textDocument/references" relation.
type TextDocumentReferences struct {
	Edge
	OutV uint64 `json:"outV"`
	InV  uint64 `json:"inV"`
}

// NewTextDocumentReferences returns a new TextDocumentReferences edge with the given id and endpoints.
func NewTextDocumentReferences(id, outV, inV uint64) *TextDocumentReferences {
	return &TextDocumentReferences{
		Edge: Edge{
			Element: Element{ID: id, Type: ElementEdge},
			Label:   EdgeTextDocumentReferences,
		},
		OutV: outV,
		InV:  inV,
	}
}
