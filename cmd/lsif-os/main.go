// The program lsif-os is an LSIF indexer for JavaScript, TypeScript, Java,
// and GraphQL projects.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/alecthomas/kingpin"
	"github.com/pkg/errors"

	"github.com/alidn/lsif-os/internal/indexer"
	"github.com/alidn/lsif-os/internal/langs"
	"github.com/alidn/lsif-os/internal/output"
	"github.com/alidn/lsif-os/internal/util"
	"github.com/alidn/lsif-os/internal/writer"
	"github.com/alidn/lsif-os/log"
	"github.com/alidn/lsif-os/protocol"
)

const version = "0.1.0"
const versionString = version + ", protocol version " + protocol.Version

func main() {
	if err := realMain(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func realMain() error {
	var (
		projectRoot string
		language    string
		outFile     string
		showLangs   bool
		verbose     bool
		noProgress  bool
	)

	app := kingpin.New("lsif-os", "lsif-os produces an LSIF dump for a source-code project.").Version(versionString)
	app.HelpFlag.Short('h')
	app.VersionFlag.Short('v')
	app.HelpFlag.Hidden()

	app.Arg("project_root", "Path to the root of the project to index.").StringVar(&projectRoot)
	app.Arg("language", "Language of the project. See --langs for the supported set.").StringVar(&language)
	app.Flag("output", "The output file. Defaults to <project_root>/dump.json.").Short('o').StringVar(&outFile)
	app.Flag("langs", "List the supported languages and exit.").BoolVar(&showLangs)
	app.Flag("verbose", "Display per-file errors and timing/memory stats.").BoolVar(&verbose)
	app.Flag("no-progress", "Disable animated progress output.").BoolVar(&noProgress)

	if _, err := app.Parse(os.Args[1:]); err != nil {
		return err
	}

	if showLangs {
		printLangs()
		return nil
	}

	if projectRoot == "" || language == "" {
		return errors.New("project_root and language are required (run with --help for usage)")
	}

	tag, _, _, err := langs.Lookup(language)
	if err != nil {
		return err
	}

	absRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return errors.Wrap(err, "resolving project root")
	}

	if outFile == "" {
		outFile = filepath.Join(absRoot, "dump.json")
	}

	out, err := os.Create(outFile)
	if err != nil {
		return errors.Wrap(err, "creating output file")
	}
	defer out.Close()

	outputOpts := output.Options{
		Verbosity:      output.DefaultOutput,
		ShowAnimations: !noProgress,
	}
	if verbose {
		outputOpts.Verbosity = output.VeryVerboseOutput
		log.SetLevel(log.Debug)
	}

	ix := indexer.New(writer.NewJSONWriter(out), indexer.Options{
		ProjectRoot: absRoot,
		Language:    tag,
		ToolInfo: protocol.ToolInfo{
			Name:    "lsif-os",
			Version: version,
			Args:    os.Args[1:],
		},
		Output: outputOpts,
	})

	peakAlloc, cancelHeapMonitor := newHeapMonitor()
	defer cancelHeapMonitor()

	start := time.Now()
	stats, err := ix.Index()
	fmt.Println()

	if err != nil {
		return errors.Wrap(err, "index")
	}

	fmt.Printf("%d file(s), %d def(s), %d ref(s), %d element(s)\n", stats.NumFiles, stats.NumDefs, stats.NumRefs, stats.NumElements)
	if verbose {
		fmt.Println("Processed in", util.HumanElapsed(start))
		fmt.Println("Peak heap usage:", formatBytes(atomic.LoadUint64(peakAlloc)))
	}

	return nil
}

func printLangs() {
	for _, tag := range langs.Tags() {
		if langs.Enabled(tag) {
			fmt.Println(tag)
		} else {
			fmt.Printf("%s (disabled)\n", tag)
		}
	}
}

func formatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
