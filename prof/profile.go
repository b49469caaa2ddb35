package prof

import (
	"sort"
	"sync"
	"time"
)

// Entry represents the accumulated time spent under one label.
type Entry struct {
	Label string
	Dur   time.Duration
	Count int
}

var (
	mu     sync.Mutex
	record map[string]*Entry
)

// Track adds the duration since start to the running total for name.
// Defer it at the top of the section being measured:
//
//	defer prof.Track(time.Now(), "build/ntt")
func Track(start time.Time, name string) {
	elapsed := time.Since(start)
	mu.Lock()
	if record == nil {
		record = make(map[string]*Entry)
	}
	e, ok := record[name]
	if !ok {
		e = &Entry{Label: name}
		record[name] = e
	}
	e.Dur += elapsed
	e.Count++
	mu.Unlock()
}

// SnapshotAndReset returns the accumulated entries sorted by label and
// clears the store.
func SnapshotAndReset() []Entry {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Entry, 0, len(record))
	for _, e := range record {
		out = append(out, *e)
	}
	record = nil
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}
