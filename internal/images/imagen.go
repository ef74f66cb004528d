package images

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"time"

	"hindnews/internal/logger"
	"hindnews/internal/ratelimit"
)

// Imagen models in preference order. The Go SDK has no image
// generation surface, so these go through the REST predict endpoint.
var imagenModels = []string{
	"imagen-4.0-generate-preview-06-06",
	"imagen-3.0-generate-002",
}

const imagenBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// Generator produces images through the Imagen API.
type Generator struct {
	apiKey  string
	httpc   *http.Client
	limiter *ratelimit.AILimiter
	baseURL string
}

func NewGenerator(apiKey string, limiter *ratelimit.AILimiter) *Generator {
	return &Generator{
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: 60 * time.Second},
		limiter: limiter,
		baseURL: imagenBaseURL,
	}
}

type imagenRequest struct {
	Instances  []imagenInstance `json:"instances"`
	Parameters imagenParameters `json:"parameters"`
}

type imagenInstance struct {
	Prompt string `json:"prompt"`
}

type imagenParameters struct {
	SampleCount int    `json:"sampleCount"`
	AspectRatio string `json:"aspectRatio,omitempty"`
}

type imagenResponse struct {
	Predictions []struct {
		BytesBase64Encoded string `json:"bytesBase64Encoded"`
	} `json:"predictions"`
}

// CanGenerate reports whether the Imagen request budget has room for
// another attempt.
func (g *Generator) CanGenerate() bool {
	return g.limiter.CanUseImagen()
}

// Generate produces one image, trying each model in order. Returns the
// raw image bytes.
func (g *Generator) Generate(ctx context.Context, prompt, aspectRatio string) ([]byte, error) {
	if err := g.limiter.UseImagen(); err != nil {
		return nil, err
	}

	enhanced := fmt.Sprintf("**Image should not contain any text**, %s", prompt)
	logger.Info("generating AI image", "prompt", truncate(prompt, 100))

	var lastErr error
	for _, model := range imagenModels {
		data, err := g.generateWithModel(ctx, model, enhanced, aspectRatio)
		if err != nil {
			logger.Warn("image model failed, trying next", "model", model, "error", err)
			lastErr = err
			continue
		}
		logger.Info("generated image", "model", model, "bytes", len(data))
		return data, nil
	}
	return nil, fmt.Errorf("all image models failed: %w", lastErr)
}

func (g *Generator) generateWithModel(ctx context.Context, model, prompt, aspectRatio string) ([]byte, error) {
	payload := imagenRequest{
		Instances:  []imagenInstance{{Prompt: prompt}},
		Parameters: imagenParameters{SampleCount: 1, AspectRatio: aspectRatio},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s:predict?key=%s", g.baseURL, model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("imagen API status %d: %s", resp.StatusCode, msg)
	}

	var parsed imagenResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode imagen response: %w", err)
	}
	if len(parsed.Predictions) == 0 || parsed.Predictions[0].BytesBase64Encoded == "" {
		return nil, fmt.Errorf("no images in imagen response")
	}

	return base64.StdEncoding.DecodeString(parsed.Predictions[0].BytesBase64Encoded)
}

// EncodeJPEG re-encodes any supported image as JPEG for upload.
// Already-JPEG bytes pass through untouched.
func EncodeJPEG(data []byte) ([]byte, error) {
	if len(data) >= 2 && data[0] == 0xFF && data[1] == 0xD8 {
		return data, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
