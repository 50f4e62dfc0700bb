package protocol

// Project is a vertex declaring the language of the dump and acting as the
// root of the contains hierarchy over all indexed documents.
type Project struct {
	Vertex
	Kind string `json:"kind"`
}

// NewProject returns a new Project vertex with the given id and language tag.
func NewProject(id uint64, languageID string) *Project {
	return &Project{
		Vertex: Vertex{
			Element: Element{ID: id, Type: ElementVertex},
			Label:   VertexProject,
		},
		Kind: languageID,
	}
}
