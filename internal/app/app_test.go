package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hindnews/internal/config"
	"hindnews/internal/ledger"
	"hindnews/internal/trends"
)

func testApp(t *testing.T, maxPosts int) *App {
	t.Helper()
	path := filepath.Join(t.TempDir(), "processed.json")
	return &App{
		cfg:    &config.Config{MaxPostsPerRun: maxPosts, LedgerPath: path},
		ledger: ledger.Load(path),
	}
}

func TestPublishTopics_SkipsLedgeredTitles(t *testing.T) {
	a := testApp(t, 5)
	a.ledger.Add("पुराना विषय जो छप चुका है")

	var published []string
	a.publish = func(ctx context.Context, topic trends.Topic) (int, *imageRetry, error) {
		published = append(published, topic.Title)
		return 42, nil, nil
	}

	topics := []trends.Topic{
		{Title: "पुराना विषय जो छप चुका है"},
		{Title: "नया विषय पहली बार आया"},
	}
	created := a.publishTopics(context.Background(), topics)

	assert.Equal(t, 1, created)
	assert.Equal(t, []string{"नया विषय पहली बार आया"}, published)
	assert.True(t, a.ledger.Contains("नया विषय पहली बार आया"))

	// The same list on a second run publishes nothing.
	published = nil
	created = a.publishTopics(context.Background(), topics)
	assert.Equal(t, 0, created)
	assert.Empty(t, published)
}

func TestPublishTopics_FailuresDoNotConsumeBudget(t *testing.T) {
	a := testApp(t, 1)

	calls := 0
	a.publish = func(ctx context.Context, topic trends.Topic) (int, *imageRetry, error) {
		calls++
		if calls == 1 {
			return 0, nil, errors.New("generation blew up")
		}
		return 42, nil, nil
	}

	topics := []trends.Topic{
		{Title: "पहला विषय जो विफल होगा"},
		{Title: "दूसरा विषय जो छपेगा"},
	}
	created := a.publishTopics(context.Background(), topics)

	assert.Equal(t, 1, created)
	assert.Equal(t, 2, calls, "the failed attempt must not end the run")
	assert.False(t, a.ledger.Contains("पहला विषय जो विफल होगा"))
	assert.True(t, a.ledger.Contains("दूसरा विषय जो छपेगा"))
}

func TestFinishRun_SkipsLedgerSaveOnInterrupt(t *testing.T) {
	a := testApp(t, 1)
	a.ledger.Add("कोई विषय यहां दर्ज हुआ")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	a.finishRun(ctx, time.Now(), 0)

	_, err := os.Stat(a.cfg.LedgerPath)
	assert.True(t, os.IsNotExist(err), "interrupted run must not write the ledger")

	a.finishRun(context.Background(), time.Now(), 0)
	_, err = os.Stat(a.cfg.LedgerPath)
	require.NoError(t, err)
}
