package main

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"
)

// heapSampleDuration is how frequently mem stats are read.
const heapSampleDuration = time.Millisecond * 25

// maxAlloc is the maximum HeapAlloc stat observed during this run.
var maxAlloc uint64

// monitorHeap continuously reads heap stats and updates maxAlloc until ctx
// is canceled.
func monitorHeap(ctx context.Context) {
	for {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		if m.HeapAlloc > atomic.LoadUint64(&maxAlloc) {
			atomic.StoreUint64(&maxAlloc, m.HeapAlloc)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(heapSampleDuration):
		}
	}
}

// newHeapMonitor starts a background heap-sampling goroutine and returns the
// running max and a cancel func to stop it.
func newHeapMonitor() (*uint64, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	go monitorHeap(ctx)
	return &maxAlloc, cancel
}
