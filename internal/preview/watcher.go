package preview

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/vango-dev/daisy/internal/errors"
)

// WatcherConfig configures the file watcher.
type WatcherConfig struct {
	// Paths are the files and directories to watch.
	Paths []string

	// Ignore lists base names, globs on base names, or path segments to skip.
	Ignore []string

	// Interval is how often paths are scanned.
	Interval time.Duration

	// Debounce is how long changes must settle before OnChange fires.
	Debounce time.Duration
}

// DefaultIgnore contains default patterns to ignore.
var DefaultIgnore = []string{
	".git",
	"node_modules",
	"dist",
	"*.tmp",
	"*.swp",
	"*~",
}

// Watcher polls files for changes and reports them in debounced batches.
type Watcher struct {
	config   WatcherConfig
	mu       sync.Mutex
	onChange func(paths []string)

	timestamps map[string]time.Time
	pending    map[string]bool
	deadline   time.Time
}

// NewWatcher creates a new file watcher.
func NewWatcher(config WatcherConfig) *Watcher {
	if config.Interval <= 0 {
		config.Interval = 500 * time.Millisecond
	}
	if config.Debounce < 0 {
		config.Debounce = 0
	}
	if config.Ignore == nil {
		config.Ignore = DefaultIgnore
	}
	return &Watcher{
		config:     config,
		timestamps: make(map[string]time.Time),
		pending:    make(map[string]bool),
	}
}

// OnChange sets the callback for settled changes.
func (w *Watcher) OnChange(fn func(paths []string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Start scans until ctx is done. Paths that do not exist yet are polled
// like the others and reported as changed once they appear.
func (w *Watcher) Start(ctx context.Context) error {
	if len(w.config.Paths) == 0 {
		return errors.New("E402")
	}

	w.scanInitial()

	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			w.poll(now)
		}
	}
}

// Missing returns the watched paths that do not currently exist.
func (w *Watcher) Missing() []string {
	var missing []string
	for _, p := range w.config.Paths {
		if _, err := os.Stat(p); err != nil {
			missing = append(missing, p)
		}
	}
	return missing
}

// scanInitial records current modification times without reporting them.
func (w *Watcher) scanInitial() {
	current := w.scan()
	w.mu.Lock()
	w.timestamps = current
	w.mu.Unlock()
}

// poll compares the tree with the last scan, queues changes and fires the
// callback once nothing has changed for the debounce period.
func (w *Watcher) poll(now time.Time) {
	current := w.scan()

	w.mu.Lock()
	changed := false
	for p, mod := range current {
		if last, ok := w.timestamps[p]; !ok || !mod.Equal(last) {
			w.pending[p] = true
			changed = true
		}
	}
	for p := range w.timestamps {
		if _, ok := current[p]; !ok {
			w.pending[p] = true
			changed = true
		}
	}
	w.timestamps = current
	if changed {
		w.deadline = now.Add(w.config.Debounce)
	}

	if len(w.pending) == 0 || now.Before(w.deadline) || w.onChange == nil {
		w.mu.Unlock()
		return
	}

	paths := make([]string, 0, len(w.pending))
	for p := range w.pending {
		paths = append(paths, p)
	}
	w.pending = make(map[string]bool)
	callback := w.onChange
	w.mu.Unlock()

	sort.Strings(paths)
	callback(paths)
}

// scan returns the modification time of every watched file.
func (w *Watcher) scan() map[string]time.Time {
	out := make(map[string]time.Time)
	for _, root := range w.config.Paths {
		_ = filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return nil
			}
			if w.shouldIgnore(p) {
				if info.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if !info.IsDir() {
				out[p] = info.ModTime()
			}
			return nil
		})
	}
	return out
}

// shouldIgnore checks if a path should be ignored.
func (w *Watcher) shouldIgnore(fullPath string) bool {
	name := filepath.Base(fullPath)
	segments := strings.Split(filepath.ToSlash(fullPath), "/")

	for _, pattern := range w.config.Ignore {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if strings.ContainsAny(pattern, "*?[") {
			if matched, _ := filepath.Match(pattern, name); matched {
				return true
			}
			continue
		}
		for _, seg := range segments {
			if seg == pattern {
				return true
			}
		}
	}
	return false
}
