// Package writer provides the concrete sinks that back a protocol.Emitter:
// a buffered file writer with a dedicated serialization goroutine, and an
// in-memory sink for tests.
package writer

import (
	"bufio"
	"io"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"github.com/alidn/lsif-os/protocol"
)

var marshaller = jsoniter.ConfigFastest

// fileBufferSize is the size of the buffered writer wrapping the output file.
const fileBufferSize = 64 * 1024

// jsonWriter serializes vertices and edges as newline-delimited JSON on a
// dedicated goroutine. Values are queued on an unbounded, growable buffer so
// that Write never blocks the caller on a slow or stalled consumer.
type jsonWriter struct {
	mu       sync.Mutex
	cond     *sync.Cond
	queue    []interface{}
	closed   bool
	done     chan struct{}
	err      error
	buffered *bufio.Writer
}

var _ protocol.JSONWriter = (*jsonWriter)(nil)

// NewJSONWriter creates a new JSONWriter wrapping the given writer with a
// 64 KiB buffer, draining through jsoniter's fastest configuration.
func NewJSONWriter(w io.Writer) protocol.JSONWriter {
	jw := &jsonWriter{
		buffered: bufio.NewWriterSize(w, fileBufferSize),
		done:     make(chan struct{}),
	}
	jw.cond = sync.NewCond(&jw.mu)

	encoder := marshaller.NewEncoder(jw.buffered)

	go func() {
		defer close(jw.done)

		for {
			jw.mu.Lock()
			for len(jw.queue) == 0 && !jw.closed {
				jw.cond.Wait()
			}
			if len(jw.queue) == 0 && jw.closed {
				jw.mu.Unlock()
				return
			}
			batch := jw.queue
			jw.queue = nil
			jw.mu.Unlock()

			for _, v := range batch {
				if jw.err != nil {
					continue
				}
				if err := encoder.Encode(v); err != nil {
					jw.err = err
				}
			}
		}
	}()

	return jw
}

// Write enqueues a single vertex or edge value without blocking.
func (jw *jsonWriter) Write(v interface{}) {
	jw.mu.Lock()
	jw.queue = append(jw.queue, v)
	jw.mu.Unlock()
	jw.cond.Signal()
}

// Flush drains the queue, waits for the sink goroutine to finish, and
// flushes the underlying buffered writer. It is the completion signal
// described by the emitter contract: once Flush returns, every previously
// queued element has reached the underlying writer.
func (jw *jsonWriter) Flush() error {
	jw.mu.Lock()
	jw.closed = true
	jw.mu.Unlock()
	jw.cond.Signal()

	<-jw.done

	if jw.err != nil {
		return jw.err
	}

	return jw.buffered.Flush()
}

// memoryWriter is an in-memory JSONWriter sink for tests: records are
// retained verbatim (not round-tripped through JSON) in emission order.
type memoryWriter struct {
	mu      sync.Mutex
	records []interface{}
}

var _ protocol.JSONWriter = (*memoryWriter)(nil)

// NewMemoryWriter creates a JSONWriter that accumulates records in memory.
func NewMemoryWriter() *memoryWriter {
	return &memoryWriter{}
}

func (mw *memoryWriter) Write(v interface{}) {
	mw.mu.Lock()
	mw.records = append(mw.records, v)
	mw.mu.Unlock()
}

func (mw *memoryWriter) Flush() error {
	return nil
}

// Records returns the accumulated records in emission order.
func (mw *memoryWriter) Records() []interface{} {
	mw.mu.Lock()
	defer mw.mu.Unlock()
	out := make([]interface{}, len(mw.records))
	copy(out, mw.records)
	return out
}
