package images

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hindnews/internal/logger"
	"hindnews/internal/ratelimit"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestAnalyzeContent(t *testing.T) {
	category, confidence := AnalyzeContent(
		"क्रिकेट मैच में टीम ने शानदार जीत दर्ज की, खिलाड़ी स्टेडियम में जश्न मनाते दिखे",
		"क्रिकेट टूर्नामेंट का रोमांचक फाइनल")
	assert.Equal(t, "sports", category)
	assert.Greater(t, confidence, minConfidence)
}

func TestAnalyzeContent_NoMatch(t *testing.T) {
	category, confidence := AnalyzeContent("कुछ सामान्य पाठ यहां", "साधारण शीर्षक")
	assert.Equal(t, "general", category)
	assert.Equal(t, 0.0, confidence)
}

func TestPredefinedImage_FallsBackToGeneral(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "general"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "general", "news.jpg"), []byte("jpegdata"), 0o644))

	s := NewSelector(nil, dir)

	// sports dir is empty, general pool serves the request
	data, name, err := s.PredefinedImage("sports")
	require.NoError(t, err)
	assert.Equal(t, "news.jpg", name)
	assert.Equal(t, []byte("jpegdata"), data)
}

func TestPredefinedImage_CategoryHit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "politics"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "politics", "parliament_1.jpg"), []byte("x"), 0o644))

	s := NewSelector(nil, dir)
	_, name, err := s.PredefinedImage("politics")
	require.NoError(t, err)
	assert.Equal(t, "parliament_1.jpg", name)
}

func TestGenerator_FallsBackToSecondModel(t *testing.T) {
	pngBytes := tinyPNG(t)
	calls := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
			return
		}
		resp := map[string]any{
			"predictions": []map[string]string{
				{"bytesBase64Encoded": base64.StdEncoding.EncodeToString(pngBytes)},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	g := NewGenerator("test-key", ratelimit.New(0, 0, 0))
	g.baseURL = srv.URL

	data, err := g.Generate(context.Background(), "a newsroom at night", "16:9")
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "second model should have been tried")
	assert.Equal(t, pngBytes, data)
}

func TestGenerator_RespectsLimiter(t *testing.T) {
	limiter := ratelimit.New(0, 1, 0)
	require.NoError(t, limiter.UseImagen())

	g := NewGenerator("test-key", limiter)
	_, err := g.Generate(context.Background(), "prompt", "16:9")
	assert.Error(t, err)
}

func TestSelect_ExhaustedBudgetUsesPredefined(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("imagen endpoint must not be called once the budget is spent")
	}))
	defer srv.Close()

	limiter := ratelimit.New(0, 1, 0)
	require.NoError(t, limiter.UseImagen())

	g := NewGenerator("test-key", limiter)
	g.baseURL = srv.URL

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "general"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "general", "news.jpg"), []byte("jpegdata"), 0o644))

	s := NewSelector(g, dir)
	data, source, err := s.Select(context.Background(), "कुछ सामान्य पाठ", "साधारण शीर्षक", "a newsroom at night")
	require.NoError(t, err)
	assert.Equal(t, "predefined", source)
	assert.Equal(t, []byte("jpegdata"), data)
}

func TestTruncate_KeepsRunesWhole(t *testing.T) {
	got := truncate("मोदी सरकार", 4)
	assert.Equal(t, "मोदी...", got)

	assert.Equal(t, "short", truncate("short", 10))
}

func TestEncodeJPEG(t *testing.T) {
	pngBytes := tinyPNG(t)

	out, err := EncodeJPEG(pngBytes)
	require.NoError(t, err)
	assert.True(t, len(out) > 2 && out[0] == 0xFF && out[1] == 0xD8, "output must be JPEG")

	// JPEG input passes through unchanged
	again, err := EncodeJPEG(out)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func tinyPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}
