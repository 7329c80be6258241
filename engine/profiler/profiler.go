// Package profiler aggregates the time spent in named scopes. It is off until
// Enable(true) is called; disabled scopes cost one function call.
package profiler

import (
	"log/slog"
	"runtime"
	"sort"
	"sync"
	"time"
)

// Stat is the aggregate of every run of one scope.
type Stat struct {
	Name  string
	Count int
	Total time.Duration
	Max   time.Duration
}

// Mean returns the average scope duration.
func (s Stat) Mean() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

var (
	mu      sync.Mutex
	enabled bool
	stats   = map[string]*Stat{}
	now     = time.Now
)

func Enable(on bool) {
	mu.Lock()
	enabled = on
	mu.Unlock()
}

func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// Start begins a scope and returns its end func.
// Example: defer profiler.Start("ui.Compute")()
func Start(name string) func() {
	if !Enabled() {
		return func() {}
	}
	begin := now()
	return func() {
		d := now().Sub(begin)
		mu.Lock()
		defer mu.Unlock()
		s := stats[name]
		if s == nil {
			s = &Stat{Name: name}
			stats[name] = s
		}
		s.Count++
		s.Total += d
		if d > s.Max {
			s.Max = d
		}
	}
}

// Snapshot returns all scopes, the most expensive first.
func Snapshot() []Stat {
	mu.Lock()
	out := make([]Stat, 0, len(stats))
	for _, s := range stats {
		out = append(out, *s)
	}
	mu.Unlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func Reset() {
	mu.Lock()
	stats = map[string]*Stat{}
	mu.Unlock()
}

// Report logs every scope and the process memory counters.
func Report(log *slog.Logger) {
	for _, s := range Snapshot() {
		log.Info("profile", "scope", s.Name, "count", s.Count, "total", s.Total, "mean", s.Mean(), "max", s.Max)
	}
	log.Info("memory", "alloc", MemoryUsage(), "mallocs", MemoryAllocs())
}

func MemoryUsage() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc
}

func MemoryAllocs() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Mallocs
}
