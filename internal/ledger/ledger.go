// Package ledger remembers which headlines were already published so a
// topic trending for days is posted once.
package ledger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"hindnews/internal/logger"
)

// Ledger holds the raw titles of processed topics. Titles are stored
// verbatim, not normalized, so the file stays human-readable and the
// dedup key survives future normalization changes.
type Ledger struct {
	mu     sync.Mutex
	path   string
	titles map[string]bool
	order  []string // preserves file order across load/save cycles
}

// Load reads the ledger file. A missing or unreadable file yields an
// empty ledger; a fresh deployment starts with no history.
func Load(path string) *Ledger {
	l := &Ledger{
		path:   path,
		titles: make(map[string]bool),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("could not read processed topics file, starting empty", "path", path, "error", err)
		}
		return l
	}

	var titles []string
	if err := json.Unmarshal(data, &titles); err != nil {
		logger.Warn("processed topics file is corrupt, starting empty", "path", path, "error", err)
		return l
	}

	for _, t := range titles {
		if !l.titles[t] {
			l.titles[t] = true
			l.order = append(l.order, t)
		}
	}
	logger.Info("loaded processed topics", "count", len(l.order), "path", path)
	return l
}

// Contains reports whether a title was already processed.
func (l *Ledger) Contains(title string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.titles[title]
}

// Add records a title. Returns false if it was already present.
func (l *Ledger) Add(title string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.titles[title] {
		return false
	}
	l.titles[title] = true
	l.order = append(l.order, title)
	return true
}

// Len returns the number of recorded titles.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.order)
}

// Save writes the full ledger atomically via a temp file and rename.
func (l *Ledger) Save() error {
	l.mu.Lock()
	titles := make([]string, len(l.order))
	copy(titles, l.order)
	path := l.path
	l.mu.Unlock()

	data, err := json.MarshalIndent(titles, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal processed topics: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp ledger file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp ledger file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp ledger file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace ledger file: %w", err)
	}

	logger.Debug("saved processed topics", "count", len(titles), "path", path)
	return nil
}
