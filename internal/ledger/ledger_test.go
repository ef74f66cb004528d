package ledger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hindnews/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestLoad_MissingFileStartsEmpty(t *testing.T) {
	l := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Equal(t, 0, l.Len())
	assert.False(t, l.Contains("anything"))
}

func TestLoad_CorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	l := Load(path)
	assert.Equal(t, 0, l.Len())
}

func TestAddAndContains(t *testing.T) {
	l := Load(filepath.Join(t.TempDir(), "ledger.json"))

	title := "मोदी सरकार का बड़ा फैसला!"
	assert.True(t, l.Add(title))
	assert.False(t, l.Add(title), "second add must report duplicate")
	assert.True(t, l.Contains(title))
	assert.Equal(t, 1, l.Len())
}

func TestSaveAndReload_PreservesVerbatimTitles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")

	l := Load(path)
	titles := []string{
		"Breaking: शेयर बाजार में बड़ी गिरावट!",
		"ट्रम्प का टैरिफ ऐलान - ताजा खबर",
	}
	for _, title := range titles {
		require.True(t, l.Add(title))
	}
	require.NoError(t, l.Save())

	reloaded := Load(path)
	assert.Equal(t, 2, reloaded.Len())
	for _, title := range titles {
		// Raw titles round-trip exactly, punctuation and all.
		assert.True(t, reloaded.Contains(title), "missing %q", title)
	}
}

func TestSaveAndReload_EmptySet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")

	l := Load(path)
	require.NoError(t, l.Save())

	reloaded := Load(path)
	assert.Equal(t, 0, reloaded.Len())
	assert.False(t, reloaded.Contains("कुछ भी"))
}

func TestSave_OverwritesFully(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")

	l := Load(path)
	l.Add("पहला शीर्षक यहां है")
	require.NoError(t, l.Save())

	l.Add("दूसरा शीर्षक यहां है")
	require.NoError(t, l.Save())

	reloaded := Load(path)
	assert.Equal(t, 2, reloaded.Len())
	assert.True(t, reloaded.Contains("पहला शीर्षक यहां है"))
	assert.True(t, reloaded.Contains("दूसरा शीर्षक यहां है"))
}
