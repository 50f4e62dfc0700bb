// Package fanout runs file parsing and analysis across two worker pools,
// generalizing internal/parallel.Run into the parse-then-analyze pipeline
// this indexer needs: a parse pool that turns a file path into a syntax
// tree, wired back-to-back into an analysis pool that turns that tree into
// definitions and references. A parse failure is fatal for the run: the
// parse batch still runs to completion, but wait returns the first parse
// error once it has. An analysis-time problem for one file is a warning —
// reported through onFile, not aggregated into the returned error — since
// the analyzer itself no longer treats anything as fatal (see
// internal/analyzer's zero-scope fallback).
package fanout

import (
	"os"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/alidn/lsif-os/internal/analyzer"
	"github.com/alidn/lsif-os/internal/langs"
	"github.com/alidn/lsif-os/internal/parallel"
	"github.com/alidn/lsif-os/internal/tsgateway"
)

// parsedFile is the parse pool's output and the analysis pool's input.
type parsedFile struct {
	path    string
	content []byte
	tree    *sitter.Tree
}

// fatalErrors aggregates the parse-time errors from concurrent workers.
// These are fatal per spec: the run aborts once the parse batch completes.
type fatalErrors struct {
	mu   sync.Mutex
	errs *multierror.Error
}

func (c *fatalErrors) add(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errs = multierror.Append(c.errs, err)
}

// first returns the earliest-recorded error, or nil if none were recorded.
func (c *fatalErrors) first() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.errs == nil || len(c.errs.Errors) == 0 {
		return nil
	}
	return c.errs.Errors[0]
}

// Run parses and analyzes every path in paths using tag's grammar and
// query, across two GOMAXPROCS-sized worker pools. onFile is called once
// per path as it finishes parsing or analysis (successfully or not), for
// progress reporting; it runs on worker goroutines and must be safe for
// concurrent use. The returned channels are closed once every file has been
// analyzed; wait must be called after both channels have been fully
// drained, and returns the first parse failure encountered (nil if every
// file parsed). Analysis-time problems are reported through onFile but
// never returned from wait — they are warnings, not failures.
func Run(tag langs.Tag, query *sitter.Query, patternNames []string, paths []string, onFile func(path string, err error)) (defs <-chan *analyzer.Definition, refs <-chan *analyzer.Reference, wait func() error) {
	parseErrs := &fatalErrors{}

	defsCh := make(chan *analyzer.Definition, 64)
	refsCh := make(chan *analyzer.Reference, 64)
	parsedCh := make(chan *parsedFile, 64)

	var parseWG, analyzeWG sync.WaitGroup

	// Parse pool: path -> (content, tree).
	parseWG.Add(1)
	go func() {
		defer parseWG.Done()

		parseJobs := make(chan func())
		innerWG, _ := parallel.Run(parseJobs)

		for _, p := range paths {
			p := p
			parseJobs <- func() {
				pf, err := parseOne(tag, p)
				if err != nil {
					parseErrs.add(errors.Wrapf(err, "parsing %s", p))
					if onFile != nil {
						onFile(p, err)
					}
					return
				}
				parsedCh <- pf
			}
		}
		close(parseJobs)
		innerWG.Wait()
		close(parsedCh)
	}()

	// Analysis pool: (content, tree) -> definitions/references, emitted on
	// the two output channels.
	analyzeWG.Add(1)
	go func() {
		defer analyzeWG.Done()

		analyzeJobs := make(chan func())
		innerWG, _ := parallel.Run(analyzeJobs)

		for pf := range parsedCh {
			pf := pf
			analyzeJobs <- func() {
				defer pf.tree.Close()

				a := analyzer.New(pf.path, pf.content)
				fileDefs, fileRefs, err := a.Run(query, patternNames, pf.tree.RootNode())
				if err != nil {
					// Analysis-time problems are warnings, not fatal: report
					// them for verbose output, but still emit whatever the
					// file's partial result was rather than dropping it.
					if onFile != nil {
						onFile(pf.path, err)
					}
				}

				for _, d := range fileDefs {
					defsCh <- d
				}
				for _, r := range fileRefs {
					refsCh <- r
				}
				if err == nil && onFile != nil {
					onFile(pf.path, nil)
				}
			}
		}
		close(analyzeJobs)
		innerWG.Wait()
		close(defsCh)
		close(refsCh)
	}()

	wait = func() error {
		parseWG.Wait()
		analyzeWG.Wait()
		// Only a parse failure aborts the run; analysis-time warnings were
		// already surfaced through onFile above.
		return parseErrs.first()
	}

	return defsCh, refsCh, wait
}

func parseOne(tag langs.Tag, path string) (*parsedFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}

	parser, err := tsgateway.MakeParser(tag)
	if err != nil {
		return nil, err
	}
	defer parser.Close()

	tree := parser.Parse(content, nil)
	if tree == nil {
		return nil, errors.New("parse returned no tree")
	}

	return &parsedFile{path: path, content: content, tree: tree}, nil
}
