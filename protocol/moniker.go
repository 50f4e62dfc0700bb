package protocol

// Moniker is a vertex that gives a result set a stable, scheme-qualified
// identifier that external tools can use to link across dumps.
type Moniker struct {
	Vertex
	Kind       string `json:"kind"`
	Scheme     string `json:"scheme"`
	Identifier string `json:"identifier"`
}

// NewMoniker returns a new Moniker vertex with the given id, kind
// ("exported" or "local"), scheme, and identifier.
func NewMoniker(id uint64, kind, scheme, identifier string) *Moniker {
	return &Moniker{
		Vertex: Vertex{
			Element: Element{ID: id, Type: ElementVertex},
			Label:   VertexMoniker,
		},
		Kind:       kind,
		Scheme:     scheme,
		Identifier: identifier,
	}
}

// MonikerEdge is an edge that attaches a Moniker to a result set.
type MonikerEdge struct {
	Edge
	OutV uint64 `json:"outV"`
	InV  uint64 `json:"inV"`
}

// NewMonikerEdge returns a new MonikerEdge with the given id and endpoints.
func NewMonikerEdge(id, outV, inV uint64) *MonikerEdge {
	return &MonikerEdge{
		Edge: Edge{
			Element: Element{ID: id, Type: ElementEdge},
			Label:   EdgeMoniker,
		},
		OutV: outV,
		InV:  inV,
	}
}
