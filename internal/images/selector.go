// Package images picks a featured image for an article: a generated
// Imagen picture when possible, a predefined stock image otherwise.
package images

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"hindnews/internal/logger"
)

// Keyword tables for matching article text to predefined image
// categories. Separate from the trend classifier: these categories
// mirror the predefined_images/ directory layout.
var keywordMappings = map[string][]string{
	"politics": {
		"मोदी", "राहुल", "बीजेपी", "कांग्रेस", "राजनीति", "चुनाव", "वोट", "सरकार", "मंत्री", "पार्टी",
		"modi", "rahul", "bjp", "congress", "politics", "election", "vote", "government", "minister", "party",
	},
	"technology": {
		"स्मार्टफोन", "लैपटॉप", "कंप्यूटर", "इंटरनेट", "सॉफ्टवेयर", "ऐप", "आर्टिफिशियल इंटेलिजेंस", "एआई",
		"smartphone", "laptop", "computer", "internet", "software", "app", "artificial intelligence", "ai",
	},
	"sports": {
		"क्रिकेट", "फुटबॉल", "खेल", "मैच", "टीम", "खिलाड़ी", "स्टेडियम", "टूर्नामेंट",
		"cricket", "football", "sports", "match", "team", "player", "stadium", "tournament",
	},
	"entertainment": {
		"बॉलीवुड", "फिल्म", "अभिनेता", "अभिनेत्री", "मूवी", "सिनेमा", "मनोरंजन",
		"bollywood", "film", "actor", "actress", "movie", "cinema", "entertainment",
	},
	"business": {
		"व्यापार", "बिजनेस", "कंपनी", "शेयर", "बाजार", "अर्थव्यवस्था", "निवेश",
		"business", "company", "share", "market", "economy", "investment",
	},
	"education": {
		"शिक्षा", "स्कूल", "कॉलेज", "यूनिवर्सिटी", "परीक्षा", "छात्र", "शिक्षक",
		"education", "school", "college", "university", "exam", "student", "teacher",
	},
	"legal": {
		"कोर्ट", "कानून", "वकील", "जज", "मुकदमा", "फैसला", "अदालत",
		"court", "law", "lawyer", "judge", "case", "verdict", "judiciary",
	},
}

var categoryImages = map[string][]string{
	"politics":      {"modi_1.jpg", "rahul_gandhi_1.jpg", "parliament_1.jpg"},
	"technology":    {"smartphone.jpg", "ai_technology.jpg"},
	"sports":        {"cricket.jpg", "stadium.jpg"},
	"entertainment": {"bollywood.jpg", "film_camera.jpg"},
	"business":      {"business.jpg", "office_building.jpg"},
	"education":     {"education.jpg", "school_building.jpg"},
	"legal":         {"courtroom_1.jpg", "legal_documents.jpg"},
	"general":       {"news.jpg", "newspaper.jpg"},
}

// minConfidence gates predefined image use: below it the keyword match
// is too weak to trust.
const minConfidence = 0.3

// Selector chooses between AI generation and predefined images.
type Selector struct {
	generator *Generator
	imageDir  string
}

func NewSelector(generator *Generator, imageDir string) *Selector {
	return &Selector{generator: generator, imageDir: imageDir}
}

// AnalyzeContent returns the best-matching image category and a
// confidence score between 0 and 1.
func AnalyzeContent(content, title string) (string, float64) {
	combined := strings.ToLower(title + " " + content)

	bestCategory := "general"
	bestScore := 0.0

	for category, keywords := range keywordMappings {
		score := 0
		for _, kw := range keywords {
			if strings.Contains(combined, kw) {
				score++
			}
		}
		confidence := float64(score) / float64(len(keywords))
		if confidence > bestScore {
			bestScore = confidence
			bestCategory = category
		}
	}

	logger.Debug("image content analysis", "category", bestCategory, "confidence", bestScore)
	return bestCategory, bestScore
}

// PredefinedImage loads a stock image for the category, falling back
// to the general pool.
func (s *Selector) PredefinedImage(category string) ([]byte, string, error) {
	names, ok := categoryImages[category]
	if !ok {
		names = categoryImages["general"]
		category = "general"
	}

	for _, name := range names {
		path := filepath.Join(s.imageDir, category, name)
		if data, err := os.ReadFile(path); err == nil {
			logger.Info("using predefined image", "path", path)
			return data, name, nil
		}
	}

	if category != "general" {
		for _, name := range categoryImages["general"] {
			path := filepath.Join(s.imageDir, "general", name)
			if data, err := os.ReadFile(path); err == nil {
				logger.Info("using fallback predefined image", "path", path)
				return data, name, nil
			}
		}
	}

	return nil, "", fmt.Errorf("no predefined image found for category %q", category)
}

// canGenerate reports whether an AI generation attempt is worth
// making. A budget-exhausted limiter fails every call, so skip straight
// to predefined images instead of burning retries.
func (s *Selector) canGenerate() bool {
	return s.generator != nil && s.generator.CanGenerate()
}

// Select returns image bytes and their origin ("ai_generated" or
// "predefined"). Preference order: AI with the article's own prompt,
// predefined on a confident keyword match, AI with a generic prompt,
// any general stock image.
func (s *Selector) Select(ctx context.Context, content, title, aiPrompt string) ([]byte, string, error) {
	if aiPrompt != "" && s.canGenerate() {
		if data, err := s.generator.Generate(ctx, aiPrompt, "16:9"); err == nil {
			return data, "ai_generated", nil
		} else {
			logger.Warn("AI image generation with article prompt failed", "error", err)
		}
	}

	category, confidence := AnalyzeContent(content, title)
	if confidence > minConfidence {
		if data, _, err := s.PredefinedImage(category); err == nil {
			return data, "predefined", nil
		}
	}

	if aiPrompt == "" && s.canGenerate() {
		aiPrompt = fmt.Sprintf("News image related to: %s", title)
		if data, err := s.generator.Generate(ctx, aiPrompt, "16:9"); err == nil {
			return data, "ai_generated", nil
		} else {
			logger.Warn("AI image generation with generic prompt failed", "error", err)
		}
	}

	if data, _, err := s.PredefinedImage("general"); err == nil {
		return data, "predefined", nil
	}

	return nil, "none", fmt.Errorf("all image selection methods failed")
}
