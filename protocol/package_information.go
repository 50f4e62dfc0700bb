package protocol

// PackageInformation is a vertex describing the package that owns a set of
// exported monikers. The indexer emits at most one of these for the project
// being indexed, the first time an exported moniker needs it, so downstream
// tools have a stable package identity to resolve exported monikers against.
type PackageInformation struct {
	Vertex
	Name    string `json:"name"`
	Manager string `json:"manager"`
	Version string `json:"version"`
}

// NewPackageInformation returns a new PackageInformation vertex with the given id.
func NewPackageInformation(id uint64, name, manager, version string) *PackageInformation {
	return &PackageInformation{
		Vertex: Vertex{
			Element: Element{ID: id, Type: ElementVertex},
			Label:   VertexPackageInformation,
		},
		Name:    name,
		Manager: manager,
		Version: version,
	}
}

// PackageInformationEdge attaches a PackageInformation vertex to a Moniker.
type PackageInformationEdge struct {
	Edge
	OutV uint64 `json:"outV"`
	InV  uint64 `json:"inV"`
}

// NewPackageInformationEdge returns a new PackageInformationEdge with the given id and endpoints.
func NewPackageInformationEdge(id, outV, inV uint64) *PackageInformationEdge {
	return &PackageInformationEdge{
		Edge: Edge{
			Element: Element{ID: id, Type: ElementEdge},
			Label:   EdgePackageInformation,
		},
		OutV: outV,
		InV:  inV,
	}
}
