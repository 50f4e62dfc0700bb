package protocol

// Contains is an edge that represents the 1:n "contains" relation between a
// project or document and the vertices (documents, ranges) nested inside it.
type Contains struct {
	Edge
	OutV uint64   `json:"outV"`
	InVs []uint64 `json:"inVs"`
}

// NewContains returns a new Contains edge with the given id and endpoints.
func NewContains(id, outV uint64, inVs []uint64) *Contains {
	return &Contains{
		Edge: Edge{
			Element: Element{ID: id, Type: ElementEdge},
			Label:   EdgeContains,
		},
		OutV: outV,
		InVs: inVs,
	}
}
