// Package indexer is the LSIF graph builder: it drives file discovery,
// parallel analysis, and cross-file reference resolution, and turns the
// result into a stream of LSIF vertices and edges through protocol.Emitter.
package indexer

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/pkg/errors"
	doc "github.com/slimsag/godocmd"
	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/alidn/lsif-os/internal/analyzer"
	"github.com/alidn/lsif-os/internal/cache"
	"github.com/alidn/lsif-os/internal/fanout"
	"github.com/alidn/lsif-os/internal/langs"
	"github.com/alidn/lsif-os/internal/output"
	"github.com/alidn/lsif-os/internal/tsgateway"
	"github.com/alidn/lsif-os/internal/tsquery"
	"github.com/alidn/lsif-os/internal/walk"
	"github.com/alidn/lsif-os/log"
	"github.com/alidn/lsif-os/protocol"
)

// monikerScheme identifies this tool as the producer of every moniker it
// emits, the way "gomod" does for the teacher's Go monikers.
const monikerScheme = "lsif-os"

// Options configures a single indexing run.
type Options struct {
	ProjectRoot string
	Language    langs.Tag
	ToolInfo    protocol.ToolInfo
	Output      output.Options
}

// Indexer drives one indexing run: discovering files, analyzing them in
// parallel, and emitting the resulting LSIF graph. It is used once and
// discarded.
type Indexer struct {
	opts    Options
	emitter *protocol.Emitter
	cache   *cache.Cache

	projectID              uint64
	packageInformationID   uint64
	havePackageInformation bool

	numDefs int
	numRefs int
}

// New returns an Indexer that writes through w.
func New(w protocol.JSONWriter, opts Options) *Indexer {
	return &Indexer{
		opts:    opts,
		emitter: protocol.NewEmitter(w),
		cache:   cache.New(),
	}
}

// Index runs the full eight-step sequence over every file discovered under
// opts.ProjectRoot matching opts.Language's extensions, and flushes the
// emitter before returning. If any file failed to parse, the graph for the
// files that did parse is still emitted and flushed, and the first parse
// failure is returned alongside the stats; an error from looking up the
// language, compiling the query, discovering files, or flushing the emitter
// is returned with zero stats.
func (ix *Indexer) Index() (cache.Stats, error) {
	_, extensions, querySource, err := langs.Lookup(string(ix.opts.Language))
	if err != nil {
		return cache.Stats{}, err
	}

	query, err := tsgateway.CompileQuery(ix.opts.Language, querySource)
	if err != nil {
		return cache.Stats{}, errors.Wrap(err, "compiling query")
	}
	defer query.Close()

	patternNames := tsquery.PatternNames(query, querySource)

	paths, err := walk.Files(ix.opts.ProjectRoot, extensions)
	if err != nil {
		return cache.Stats{}, errors.Wrap(err, "discovering files")
	}
	for i, p := range paths {
		paths[i] = filepath.Join(ix.opts.ProjectRoot, p)
	}

	ix.emitMetadataAndProjectVertex()
	output.WithProgress("Emitting documents", func() {
		for _, path := range paths {
			ix.emitDocument(path)
		}
	}, ix.opts.Output)

	analysisErr := ix.runAnalysis(query, patternNames, paths)

	output.WithProgress("Linking reference results", func() {
		ix.linkReferenceResultsToRanges()
	}, ix.opts.Output)

	output.WithProgress("Emitting contains relations", func() {
		ix.emitContains()
	}, ix.opts.Output)

	if err := ix.emitter.Flush(); err != nil {
		return cache.Stats{}, errors.Wrap(err, "flushing emitter")
	}

	return ix.stats(), analysisErr
}

// runAnalysis fans the given paths out across the parse/analyze pools and
// drains both result channels concurrently into the cache and emitted
// graph. The two channels must be drained together, not one after the
// other: the analysis pool sends a file's definitions and then its
// references from the same worker, so starving one channel blocks every
// worker on the other and the run never completes.
//
// References are buffered rather than indexed as they arrive, and only
// resolved once every definition channel has drained. Cross-file
// resolution falls back to the project's exported-name table
// (cache.ExportedDefinition), which isn't fully populated until every
// file's definitions have been indexed; indexing a reference as soon as
// it is received would make resolution depend on the arbitrary
// interleaving of per-file workers instead of on which definitions
// actually exist.
func (ix *Indexer) runAnalysis(query *sitter.Query, patternNames []string, paths []string) error {
	var onFile func(path string, err error)
	if ix.opts.Output.Verbosity >= output.VeryVerboseOutput {
		onFile = func(path string, err error) {
			if err != nil {
				log.Debugf("\t%s: %v\n", path, err)
			}
		}
	}

	defsCh, refsCh, wait := fanout.Run(ix.opts.Language, query, patternNames, paths, onFile)

	var pendingRefs []*analyzer.Reference
	output.WithProgress("Analyzing files", func() {
		for defsCh != nil || refsCh != nil {
			select {
			case d, ok := <-defsCh:
				if !ok {
					defsCh = nil
					continue
				}
				ix.indexDefinition(d)
			case r, ok := <-refsCh:
				if !ok {
					refsCh = nil
					continue
				}
				pendingRefs = append(pendingRefs, r)
			}
		}
	}, ix.opts.Output)

	for _, r := range pendingRefs {
		ix.indexReference(r)
	}

	return wait()
}

// renderMarkdown converts a plain-text doc comment into Godoc-flavored
// markdown for the hover panel. An empty comment renders to an empty
// string without going through the converter.
func renderMarkdown(comment string) string {
	if comment == "" {
		return ""
	}
	var buf bytes.Buffer
	doc.ToMarkdown(&buf, comment, nil)
	return buf.String()
}

func (ix *Indexer) emitMetadataAndProjectVertex() {
	ix.emitter.EmitMetaData("file://"+ix.opts.ProjectRoot, ix.opts.ToolInfo)
	ix.projectID = ix.emitter.EmitProject(string(ix.opts.Language))
}

func (ix *Indexer) emitDocument(path string) {
	if _, ok := ix.cache.DocumentID(path); ok {
		return
	}
	documentID := ix.emitter.EmitDocument(string(ix.opts.Language), "file://"+path)
	ix.cache.CacheDocument(path, documentID)
}

// indexDefinition emits the LSIF graph for a single definition: its range,
// resultSet, definitionResult, hoverResult, and moniker, then caches it so
// indexReference can resolve same-name references to it later.
func (ix *Indexer) indexDefinition(d *analyzer.Definition) {
	documentID, ok := ix.cache.DocumentID(d.Location.Filename)
	if !ok {
		// The file fell outside the discovered set (shouldn't happen; the
		// analyzer only ever sees files the walker handed to the fan-out).
		return
	}

	rangeID := ix.ensureRange(d.Location.Filename, d.Location.Range)
	resultSetID := ix.emitter.EmitResultSet()
	defResultID := ix.emitter.EmitDefinitionResult()

	ix.emitter.EmitNext(rangeID, resultSetID)
	ix.emitter.EmitTextDocumentDefinition(resultSetID, defResultID)
	ix.emitter.EmitItem(defResultID, []uint64{rangeID}, documentID)

	// d.Comment is never empty: the analyzer attaches the pending comment
	// if one immediately preceded the definition, else synthesizes a
	// "kind + first line" fallback, so every hover vertex carries something.
	hoverResultID := ix.emitter.EmitHoverResult([]protocol.MarkedString{
		protocol.NewMarkedString(renderMarkdown(d.Comment), string(ix.opts.Language)),
	})
	ix.emitter.EmitTextDocumentHover(resultSetID, hoverResultID)

	exported := d.Kind == analyzer.Exported
	monikerKind := "local"
	if exported {
		monikerKind = "exported"
	}
	identifier := fmt.Sprintf("%s:%s", filepath.Base(d.Location.Filename), d.Name)
	monikerID := ix.emitter.EmitMoniker(monikerKind, monikerScheme, identifier)
	ix.emitter.EmitMonikerEdge(resultSetID, monikerID)
	if exported {
		ix.emitter.EmitPackageInformationEdge(monikerID, ix.ensurePackageInformation())
	}

	ix.cache.CacheDefinition(d.Location.Filename, int(d.Location.Range.StartByte), d.Name, exported, &cache.DefinitionInfo{
		DocumentID:        documentID,
		RangeID:           rangeID,
		ResultSetID:       resultSetID,
		ReferenceRangeIDs: map[uint64][]uint64{},
	})

	if doc, ok := ix.cache.Document(d.Location.Filename); ok {
		doc.DefinitionRangeIDs = append(doc.DefinitionRangeIDs, rangeID)
	}
	ix.numDefs++
}

// indexReference resolves a reference to the definition it names — the
// one the analyzer already attached during single-file resolution, or
// (falling through the same-file case) the project's exported-name table
// — and emits a `next` edge from the reference's range to that
// definition's result set. References that resolve to nothing (an
// unexported name never defined in this project, or an import this
// indexer does not follow) are silently dropped, per spec.
func (ix *Indexer) indexReference(r *analyzer.Reference) {
	documentID, ok := ix.cache.DocumentID(r.Location.Filename)
	if !ok {
		return
	}

	def := ix.resolve(r)
	if def == nil {
		return
	}

	rangeID := ix.ensureRange(r.Location.Filename, r.Location.Range)
	ix.emitter.EmitNext(rangeID, def.ResultSetID)
	ix.cache.CacheReferenceRange(def, documentID, rangeID)

	if doc, ok := ix.cache.Document(r.Location.Filename); ok {
		doc.ReferenceRangeIDs = append(doc.ReferenceRangeIDs, rangeID)
	}
	ix.numRefs++
}

// resolve finds the cached DefinitionInfo a reference names: the
// same-file definition the analyzer already linked (r.Def), or else the
// project-wide exported-name table for cross-file resolution.
func (ix *Indexer) resolve(r *analyzer.Reference) *cache.DefinitionInfo {
	if r.Def != nil {
		if def, ok := ix.cache.DefinitionInfo(r.Def.Location.Filename, int(r.Def.Location.Range.StartByte)); ok {
			return def
		}
	}
	if def, ok := ix.cache.ExportedDefinition(r.Name); ok {
		return def
	}
	return nil
}

// ensureRange returns the range id for rng in filename, emitting one only
// if this (file, start byte) pair hasn't been seen before.
func (ix *Indexer) ensureRange(filename string, rng analyzer.Range) uint64 {
	if id, ok := ix.cache.RangeID(filename, int(rng.StartByte)); ok {
		return id
	}

	start := protocol.Pos{Line: int(rng.StartPoint.Row), Character: int(rng.StartPoint.Column)}
	end := protocol.Pos{Line: int(rng.EndPoint.Row), Character: int(rng.EndPoint.Column)}
	id := ix.emitter.EmitRange(start, end)
	ix.cache.CacheRange(filename, int(rng.StartByte), id)
	return id
}

// ensurePackageInformation returns the id of the single project-wide
// packageInformation vertex, emitting it the first time an exported
// moniker needs one.
func (ix *Indexer) ensurePackageInformation() uint64 {
	if ix.havePackageInformation {
		return ix.packageInformationID
	}
	ix.packageInformationID = ix.emitter.EmitPackageInformation(filepath.Base(ix.opts.ProjectRoot), monikerScheme, "")
	ix.havePackageInformation = true
	return ix.packageInformationID
}

// linkReferenceResultsToRanges emits a referenceResult vertex for every
// cached definition, linking it back to the definition's own range and to
// every reference range that resolved to it.
func (ix *Indexer) linkReferenceResultsToRanges() {
	for _, def := range ix.cache.Definitions() {
		refResultID := ix.emitter.EmitReferenceResult()
		ix.emitter.EmitTextDocumentReferences(def.ResultSetID, refResultID)
		ix.emitter.EmitItemOfDefinitions(refResultID, []uint64{def.RangeID}, def.DocumentID)

		for documentID, rangeIDs := range def.ReferenceRangeIDs {
			ix.emitter.EmitItemOfReferences(refResultID, rangeIDs, documentID)
		}
	}
}

// emitContains emits one `contains` edge per document over its ranges,
// then a project-level `contains` edge over every document.
func (ix *Indexer) emitContains() {
	var documentIDs []uint64
	for _, filename := range ix.cache.Documents() {
		doc, ok := ix.cache.Document(filename)
		if !ok {
			continue
		}
		documentIDs = append(documentIDs, doc.DocumentID)

		if len(doc.DefinitionRangeIDs) > 0 || len(doc.ReferenceRangeIDs) > 0 {
			ranges := make([]uint64, 0, len(doc.DefinitionRangeIDs)+len(doc.ReferenceRangeIDs))
			ranges = append(ranges, doc.DefinitionRangeIDs...)
			ranges = append(ranges, doc.ReferenceRangeIDs...)
			ix.emitter.EmitContains(doc.DocumentID, ranges)
		}
	}

	if len(documentIDs) > 0 {
		ix.emitter.EmitContains(ix.projectID, documentIDs)
	}
}

func (ix *Indexer) stats() cache.Stats {
	return cache.Stats{
		NumFiles:    len(ix.cache.Documents()),
		NumDefs:     ix.numDefs,
		NumRefs:     ix.numRefs,
		NumElements: ix.emitter.NumElements(),
	}
}
