// Package cache holds the intermediate bookkeeping a graph builder needs
// between the moment a definition or reference is discovered by a file
// analyzer and the moment it is wired into emitted LSIF elements: which
// vertex ids back which source ranges, which definition a given exported
// name resolves to, and which ranges still need a reference edge once their
// definition is known.
package cache

import "strconv"

// Stats summarizes a completed indexing run for CLI reporting.
type Stats struct {
	NumFiles    int
	NumDefs     int
	NumRefs     int
	NumElements uint64
}

// DocumentInfo tracks the vertex id of an emitted document and the range
// ids it contains, so the graph builder can emit a single `contains` edge
// per document once all of its ranges exist.
type DocumentInfo struct {
	DocumentID         uint64
	DefinitionRangeIDs []uint64
	ReferenceRangeIDs  []uint64
}

// DefinitionInfo tracks everything the graph builder needs to attach a late
// arriving reference to a definition that was emitted earlier: the
// definition's own range, the resultSet it shares with its references, and
// the reference ranges (grouped by the document that contains them) waiting
// on it.
type DefinitionInfo struct {
	DocumentID        uint64
	RangeID           uint64
	ResultSetID       uint64
	ReferenceRangeIDs map[uint64][]uint64 // documentID -> range ids
}

// Cache is the single home for cross-file state accumulated while a project
// is being indexed. It is only ever mutated by the one goroutine draining
// the analyzer's definition/reference channels (see internal/fanout and
// internal/indexer), so it carries no internal locking.
type Cache struct {
	documents map[string]*DocumentInfo
	ranges    map[string]map[int]uint64 // filename -> start byte offset -> range id

	// defInfos is keyed by "<filename>:<start byte offset>" for a
	// definition's own declaration range.
	defInfos map[string]*DefinitionInfo

	// exportedDefs resolves an exported name to the key used in defInfos.
	// First write wins, matching the original cache's exported_defs map.
	exportedDefs map[string]string
}

// New returns an empty Cache.
func New() *Cache {
	return &Cache{
		documents:    map[string]*DocumentInfo{},
		ranges:       map[string]map[int]uint64{},
		defInfos:     map[string]*DefinitionInfo{},
		exportedDefs: map[string]string{},
	}
}

// CacheDocument records the vertex id assigned to a freshly emitted
// document.
func (c *Cache) CacheDocument(filename string, documentID uint64) {
	c.documents[filename] = &DocumentInfo{DocumentID: documentID}
}

// DocumentID returns the vertex id of a previously cached document.
func (c *Cache) DocumentID(filename string) (uint64, bool) {
	doc, ok := c.documents[filename]
	if !ok {
		return 0, false
	}
	return doc.DocumentID, true
}

// Document returns the mutable DocumentInfo for a cached document.
func (c *Cache) Document(filename string) (*DocumentInfo, bool) {
	doc, ok := c.documents[filename]
	return doc, ok
}

// Documents returns every cached filename, in no particular order.
func (c *Cache) Documents() []string {
	out := make([]string, 0, len(c.documents))
	for filename := range c.documents {
		out = append(out, filename)
	}
	return out
}

// CacheRange records the vertex id of a range at a given start byte offset
// within a file, so that a later definition or reference at the same
// location can be linked to the same range instead of emitting a duplicate.
func (c *Cache) CacheRange(filename string, startByte int, rangeID uint64) {
	byOffset, ok := c.ranges[filename]
	if !ok {
		byOffset = map[int]uint64{}
		c.ranges[filename] = byOffset
	}
	byOffset[startByte] = rangeID
}

// RangeID returns a previously cached range id for a file and start byte
// offset.
func (c *Cache) RangeID(filename string, startByte int) (uint64, bool) {
	byOffset, ok := c.ranges[filename]
	if !ok {
		return 0, false
	}
	id, ok := byOffset[startByte]
	return id, ok
}

func defKey(filename string, startByte int) string {
	// A definition's range never moves once parsed, so the pair uniquely
	// identifies it within a single indexing run.
	return filename + ":" + strconv.Itoa(startByte)
}

// CacheDefinition records a DefinitionInfo for a just-emitted definition.
// When exported is true and no definition of that name has been cached
// yet, the name is also registered against this definition so that
// cross-file references can resolve it by name alone — first write wins,
// matching the behavior of the cache this is grounded on.
func (c *Cache) CacheDefinition(filename string, startByte int, name string, exported bool, info *DefinitionInfo) {
	key := defKey(filename, startByte)
	c.defInfos[key] = info

	if exported {
		if _, taken := c.exportedDefs[name]; !taken {
			c.exportedDefs[name] = key
		}
	}
}

// DefinitionInfo returns the DefinitionInfo cached for a definition at a
// specific file and start byte offset.
func (c *Cache) DefinitionInfo(filename string, startByte int) (*DefinitionInfo, bool) {
	info, ok := c.defInfos[defKey(filename, startByte)]
	return info, ok
}

// ExportedDefinition resolves an exported name to its DefinitionInfo,
// regardless of which file declared it.
func (c *Cache) ExportedDefinition(name string) (*DefinitionInfo, bool) {
	key, ok := c.exportedDefs[name]
	if !ok {
		return nil, false
	}
	info, ok := c.defInfos[key]
	return info, ok
}

// Definitions returns every cached DefinitionInfo, in no particular order.
// The graph builder uses this to link a referenceResult to each definition
// once all definitions and references have been indexed.
func (c *Cache) Definitions() []*DefinitionInfo {
	out := make([]*DefinitionInfo, 0, len(c.defInfos))
	for _, info := range c.defInfos {
		out = append(out, info)
	}
	return out
}

// CacheReferenceRange registers a reference's range id against the
// definition it resolved to, grouped by the document the reference lives
// in. The graph builder drains these groups to emit one `item` edge per
// document instead of one per reference.
func (c *Cache) CacheReferenceRange(info *DefinitionInfo, documentID, rangeID uint64) {
	if info.ReferenceRangeIDs == nil {
		info.ReferenceRangeIDs = map[uint64][]uint64{}
	}
	info.ReferenceRangeIDs[documentID] = append(info.ReferenceRangeIDs[documentID], rangeID)
}

