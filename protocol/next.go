package protocol

// Next is an edge that links a range (or result set) to the result set that
// owns its definition/reference/hover results.
type Next struct {
	Edge
	OutV uint64 `json:"outV"`
	InV  uint64 `json:"inV"`
}

// NewNext returns a new Next edge with the given id and endpoints.
func NewNext(id, outV, inV uint64) *Next {
	return &Next{
		Edge: Edge{
			Element: Element{ID: id, Type: ElementEdge},
			Label:   EdgeNext,
		},
		OutV: outV,
		InV:  inV,
	}
}
