// Package protocol defines the vertex and edge shapes of the Language Server
// Index Format, along with the small amount of plumbing (element/vertex/edge
// envelopes, JSON marshaling quirks) that every shape builds on.
//
// Reference: https://github.com/microsoft/lsif-node/blob/master/protocol/src/protocol.ts
package protocol

const (
	// Version is the LSIF format version this package produces.
	Version = "0.4.0"

	// PositionEncoding is the encoding used to compute line and character
	// values in positions and ranges. LSIF currently only supports "utf-16".
	PositionEncoding = "utf-16"
)

// Element contains basic information of an element in the graph.
type Element struct {
	// ID is the unique identifier of this element within the scope of the dump.
	ID uint64 `json:"id"`
	// Type is the kind of element in the graph (vertex or edge).
	Type ElementType `json:"type"`
}

// ElementType represents the kind of element.
type ElementType string

const (
	ElementVertex ElementType = "vertex"
	ElementEdge   ElementType = "edge"
)

// Vertex contains information of a vertex in the graph.
type Vertex struct {
	Element
	// Label is the kind of vertex in the graph.
	Label VertexLabel `json:"label"`
}

// VertexLabel represents the purpose of a vertex.
type VertexLabel string

const (
	VertexMetaData           VertexLabel = "metaData"
	VertexEvent              VertexLabel = "$event"
	VertexProject            VertexLabel = "project"
	VertexRange              VertexLabel = "range"
	VertexDocument           VertexLabel = "document"
	VertexMoniker            VertexLabel = "moniker"
	VertexPackageInformation VertexLabel = "packageInformation"
	VertexResultSet          VertexLabel = "resultSet"
	VertexDefinitionResult   VertexLabel = "definitionResult"
	VertexHoverResult        VertexLabel = "hoverResult"
	VertexReferenceResult    VertexLabel = "referenceResult"
)

// Edge contains information of an edge in the graph.
type Edge struct {
	Element
	// Label is the kind of edge in the graph.
	Label EdgeLabel `json:"label"`
}

// EdgeLabel represents the purpose of an edge.
type EdgeLabel string

const (
	EdgeContains               EdgeLabel = "contains"
	EdgeItem                   EdgeLabel = "item"
	EdgeNext                   EdgeLabel = "next"
	EdgeMoniker                EdgeLabel = "moniker"
	EdgePackageInformation     EdgeLabel = "packageInformation"
	EdgeTextDocumentDefinition EdgeLabel = "textDocument/definition"
	EdgeTextDocumentHover      EdgeLabel = "textDocument/hover"
	EdgeTextDocumentReferences EdgeLabel = "textDocument/references"
)

// ToolInfo contains information about the tool that created the dump.
type ToolInfo struct {
	Name    string   `json:"name"`
	Version string   `json:"version,omitempty"`
	Args    []string `json:"args,omitempty"`
}

// MetaData contains basic information about the dump.
type MetaData struct {
	Vertex
	Version          string   `json:"version"`
	ProjectRoot      string   `json:"projectRoot"`
	PositionEncoding string   `json:"positionEncoding"`
	ToolInfo         ToolInfo `json:"toolInfo"`
}

// NewMetaData returns a new MetaData vertex with the given id, project root
// URI, and tool information.
func NewMetaData(id uint64, projectRootURI string, info ToolInfo) *MetaData {
	return &MetaData{
		Vertex: Vertex{
			Element: Element{ID: id, Type: ElementVertex},
			Label:   VertexMetaData,
		},
		Version:          Version,
		ProjectRoot:      projectRootURI,
		PositionEncoding: PositionEncoding,
		ToolInfo:         info,
	}
}

// Pos contains the precise position information for a range endpoint.
type Pos struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// Range is a vertex describing a span of text within a document.
type Range struct {
	Vertex
	Start Pos `json:"start"`
	End   Pos `json:"end"`
}

// NewRange returns a new Range vertex with the given id and span.
func NewRange(id uint64, start, end Pos) *Range {
	return &Range{
		Vertex: Vertex{
			Element: Element{ID: id, Type: ElementVertex},
			Label:   VertexRange,
		},
		Start: start,
		End:   end,
	}
}

// ResultSet acts as a hub for information common to a set of ranges that are
// all aliases of the same identifier (e.g. via textDocument/* requests).
type ResultSet struct {
	Vertex
}

// NewResultSet returns a new ResultSet vertex with the given id.
func NewResultSet(id uint64) *ResultSet {
	return &ResultSet{
		Vertex: Vertex{
			Element: Element{ID: id, Type: ElementVertex},
			Label:   VertexResultSet,
		},
	}
}
