package metrics

import (
	"sync"
	"time"
)

type Metrics struct {
	mu sync.RWMutex

	// Counters
	FeedsFetched       int64
	FeedsFailed        int64
	EntriesCollected   int64
	ClustersFormed     int64
	ClustersQualified  int64
	DuplicatesSkipped  int64
	PostsCreated       int64
	PublishFailures    int64
	ImagesUploaded     int64
	ImageRetriesQueued int64

	// Timings
	LastRunDuration time.Duration

	// Status
	LastRunTime   time.Time
	LastErrorTime time.Time
	LastError     string
	IsHealthy     bool
}

var Global = &Metrics{IsHealthy: true}

func (m *Metrics) AddFeedFetched() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FeedsFetched++
}

func (m *Metrics) AddFeedFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FeedsFailed++
}

func (m *Metrics) AddEntries(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EntriesCollected += int64(n)
}

func (m *Metrics) SetClusters(formed, qualified int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClustersFormed += int64(formed)
	m.ClustersQualified += int64(qualified)
}

func (m *Metrics) AddDuplicateSkipped() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DuplicatesSkipped++
}

func (m *Metrics) AddPostCreated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PostsCreated++
}

func (m *Metrics) AddPublishFailure() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PublishFailures++
}

func (m *Metrics) AddImageUploaded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ImagesUploaded++
}

func (m *Metrics) AddImageRetryQueued() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ImageRetriesQueued++
}

func (m *Metrics) RecordRun(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastRunDuration = duration
	m.LastRunTime = time.Now()
	m.IsHealthy = true
}

func (m *Metrics) SetError(err string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastError = err
	m.LastErrorTime = time.Now()
	m.IsHealthy = false
}

func (m *Metrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"feeds_fetched":        m.FeedsFetched,
		"feeds_failed":         m.FeedsFailed,
		"entries_collected":    m.EntriesCollected,
		"clusters_formed":      m.ClustersFormed,
		"clusters_qualified":   m.ClustersQualified,
		"duplicates_skipped":   m.DuplicatesSkipped,
		"posts_created":        m.PostsCreated,
		"publish_failures":     m.PublishFailures,
		"images_uploaded":      m.ImagesUploaded,
		"image_retries_queued": m.ImageRetriesQueued,
		"last_run_duration_ms": m.LastRunDuration.Milliseconds(),
		"last_run_time":        m.LastRunTime.Format(time.RFC3339),
		"last_error_time":      m.LastErrorTime.Format(time.RFC3339),
		"last_error":           m.LastError,
		"is_healthy":           m.IsHealthy,
	}
}
