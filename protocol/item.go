package protocol

// Item is an edge that groups ranges under a definitionResult or
// referenceResult, scoped to the document that contains them.
type Item struct {
	Edge
	OutV     uint64   `json:"outV"`
	InVs     []uint64 `json:"inVs"`
	Document uint64   `json:"document"`
	Property string   `json:"property,omitempty"`
}

// NewItem returns a new Item edge with no property set.
func NewItem(id, outV uint64, inVs []uint64, document uint64) *Item {
	return &Item{
		Edge: Edge{
			Element: Element{ID: id, Type: ElementEdge},
			Label:   EdgeItem,
		},
		OutV:     outV,
		InVs:     inVs,
		Document: document,
	}
}

// NewItemWithProperty returns a new Item edge with the given property.
func NewItemWithProperty(id, outV uint64, inVs []uint64, document uint64, property string) *Item {
	i := NewItem(id, outV, inVs, document)
	i.Property = property
	return i
}

// NewItemOfDefinitions returns a new Item edge with property "definitions".
func NewItemOfDefinitions(id, outV uint64, inVs []uint64, document uint64) *Item {
	return NewItemWithProperty(id, outV, inVs, document, "definitions")
}

// NewItemOfReferences returns a new Item edge with property "references".
func NewItemOfReferences(id, outV uint64, inVs []uint64, document uint64) *Item {
	return NewItemWithProperty(id, outV, inVs, document, "references")
}
