// Package gemini generates full Hindi news articles from trending
// topics using chained prompts: outline, per-section expansion, final
// assembly, image prompt.
package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"hindnews/internal/logger"
	"hindnews/internal/ratelimit"
	"hindnews/internal/retry"
	"hindnews/internal/trends"
)

type Client struct {
	client  *genai.Client
	model   string
	limiter *ratelimit.AILimiter
}

// Article is a fully generated, parsed publish unit.
type Article struct {
	Headline    string
	Content     string
	Categories  []string
	Tags        []string
	ImagePrompt string
}

// Hindi display names for the detector's category identifiers. The
// WordPress site runs entirely in Hindi.
var hindiCategoryNames = map[string]string{
	"world":            "अंतर्राष्ट्रीय",
	"national":         "राष्ट्रीय समाचार",
	"entertainment":    "मनोरंजन",
	"sports":           "खेल",
	"technology":       "तकनीक",
	"business":         "व्यापार",
	"education":        "शिक्षा",
	"career":           "करियर",
	"fact_check":       "फैक्ट चेक",
	"crime":            "अपराध",
	"religion":         "धर्म",
	"health":           "स्वास्थ्य",
	"interesting-news": "रोचक खबरें",
	"वायरल":            "वायरल",
	"उत्तर प्रदेश":     "उत्तर प्रदेश",
}

// HindiCategory maps a category identifier to its Hindi display name.
func HindiCategory(category string) string {
	if name, ok := hindiCategoryNames[category]; ok {
		return name
	}
	return "राष्ट्रीय समाचार"
}

func NewClient(ctx context.Context, apiKey, model string, limiter *ratelimit.AILimiter) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Client{client: client, model: model, limiter: limiter}, nil
}

func (c *Client) Close() {
	if c.client != nil {
		c.client.Close()
	}
}

// generate runs one prompt through the model with retries.
func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	if err := c.limiter.UseGemini(); err != nil {
		return "", err
	}

	var text string
	err := retry.WithRetry(ctx, retry.Config{MaxAttempts: 3, Delay: 2 * time.Second, Backoff: true}, func() error {
		model := c.client.GenerativeModel(c.model)
		resp, err := model.GenerateContent(ctx, genai.Text(prompt))
		if err != nil {
			return fmt.Errorf("failed to generate content: %w", err)
		}
		if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
			return fmt.Errorf("no response from Gemini")
		}
		text = fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
		return nil
	})
	return text, err
}

// GenerateArticle runs the full chain for one topic. extraContext is
// scraped article text, may be empty.
func (c *Client) GenerateArticle(ctx context.Context, topic trends.Topic, extraContext string) (*Article, error) {
	sourcesStr := strings.Join(topic.Sources, ", ")
	if sourcesStr == "" {
		sourcesStr = "Multiple sources"
	}
	hindiCategory := HindiCategory(topic.Category)

	logger.Info("starting chained content generation", "topic", topic.Title)

	outline, err := c.generateOutline(ctx, topic.Title, sourcesStr, hindiCategory, extraContext)
	if err != nil {
		return nil, fmt.Errorf("outline generation: %w", err)
	}

	detailed := c.generateSections(ctx, topic.Title, sourcesStr, outline.Sections)
	if detailed == "" {
		return nil, fmt.Errorf("no section content generated")
	}

	finalText, err := c.generateFinal(ctx, topic.Title, hindiCategory, detailed)
	if err != nil {
		logger.Warn("final assembly failed, using raw sections", "error", err)
		finalText = detailed
	}

	article := ParseArticle(finalText)
	applyArticleFallbacks(article, outline, topic.Title, hindiCategory)
	if article.ImagePrompt == "" {
		article.ImagePrompt = c.generateImagePrompt(ctx, topic.Title, article.Headline)
	}
	if article.Headline == "" {
		return nil, fmt.Errorf("generation produced no usable headline")
	}
	if article.Content == "" {
		return nil, fmt.Errorf("generation produced no usable content")
	}

	logger.Info("generated article", "topic", topic.Title, "words", len(strings.Fields(article.Content)))
	return article, nil
}

// applyArticleFallbacks fills fields the model left out. The headline
// falls back to the outline's, then to the raw feed title, so a topic
// is never dropped just because labels went missing in assembly.
func applyArticleFallbacks(article *Article, outline *Outline, feedTitle, hindiCategory string) {
	article.Headline = strings.TrimSpace(article.Headline)
	if article.Headline == "" {
		article.Headline = strings.TrimSpace(outline.Headline)
	}
	if article.Headline == "" {
		article.Headline = strings.TrimSpace(feedTitle)
	}
	if len(article.Categories) == 0 {
		article.Categories = []string{hindiCategory}
	}
	if len(article.Tags) == 0 && outline.Tags != "" {
		article.Tags = splitList(outline.Tags)
	}
}

type Outline struct {
	Headline string
	Sections []string
	Tags     string
}

func (c *Client) generateOutline(ctx context.Context, topic, sourcesStr, hindiCategory, extraContext string) (*Outline, error) {
	contextBlock := ""
	if extraContext != "" {
		contextBlock = fmt.Sprintf("\nFull article text from the sources for reference:\n%s\n", extraContext)
	}

	prompt := fmt.Sprintf(`Create a detailed Hindi news article outline for this topic:
Topic: %s
Sources: %s
Category: %s
%s
CRITICAL REQUIREMENTS:
1. DO NOT include any of these in the content:
   - Category labels or category mentions
   - The headline/title within the article text
   - Fake names or fictional characters
   - Reporter names or bylines

2. Article Structure:
   - Generate 5-6 main sections
   - Each section: 140-200 words
   - Conclusion: 80-100 words
   - Total article: 800-900 words (strict limit)

3. HEADLINE REQUIREMENTS:
   - MUST create a specific, compelling headline that directly relates to the topic
   - Do NOT use generic phrases like "Trending Topic News" or "Breaking News"

Format the response as:
HEADLINE:
[Write a clear, compelling, SPECIFIC headline in Hindi that directly relates to the topic]

SECTIONS:
1. [Section title - Story Introduction and Key Facts]
2. [Section title - Background and Context]
3. [Section title - Latest Developments]
4. [Section title - Impact and Analysis]
5. [Section title - Future Implications]

IMAGE_PROMPT:
[A detailed image prompt in English that captures the key visual elements of this story]`,
		topic, sourcesStr, hindiCategory, contextBlock)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	parsed := ParseOutline(text)
	if len(parsed.Sections) == 0 {
		parsed.Sections = []string{"Background", "Current Developments", "Analysis", "Reaction", "Future"}
	}
	logger.Info("generated outline", "sections", len(parsed.Sections))
	return parsed, nil
}

func (c *Client) generateSections(ctx context.Context, topic, sourcesStr string, sections []string) string {
	var detailed strings.Builder

	for i, section := range sections {
		logger.Debug("generating section", "n", i+1, "section", section)

		var prompt string
		if i == 0 {
			prompt = fmt.Sprintf(`Write the opening section of a Hindi news article about: "%s"

Section: %s
Sources: %s

CRITICAL LANGUAGE REQUIREMENTS:
- Write ONLY in SIMPLE HINDI language that common people can understand
- Use ONLY Hindi words and simple English terms commonly understood in India
- Write in proper Hindi grammar with correct Devanagari script
- Do NOT include any author name, byline, or similar text in the article.

CRITICAL REQUIREMENTS FOR INTRODUCTION:
- Write 140-200 words in Hindi with proper spacing
- START WITH A PROPER INTRODUCTION that introduces the story
- Don't jump directly into facts, set the scene first
- Use journalistic storytelling approach
- Make readers understand why this news matters

Write only the expanded section content, no headers or formatting.`, topic, section, sourcesStr)
		} else {
			prompt = fmt.Sprintf(`Expand this section into a detailed 140-200 word Hindi news article section:

Topic: %s
Section: %s
Sources: %s

CRITICAL LANGUAGE REQUIREMENTS:
- Write ONLY in SIMPLE HINDI language that common people can understand
- Use ONLY Hindi words and simple English terms commonly understood in India
- Write in proper Hindi grammar with correct Devanagari script
- Do NOT include any author name, byline, or similar text in the article.

Content Requirements:
- Use journalistic style with clear storytelling approach
- Include relevant facts, quotes, and context in simple terms
- Connect logically to the overall topic
- Use proper spaces between words, avoid underscores

Write only the expanded section content, no headers or formatting.`, topic, section, sourcesStr)
		}

		text, err := c.generate(ctx, prompt)
		if err != nil {
			// Keep the section title as a stub so the article stays coherent
			logger.Warn("section generation failed, using title stub", "section", section, "error", err)
			text = section
		}
		detailed.WriteString("\n\n")
		detailed.WriteString(text)
		detailed.WriteString("\n\n")

		select {
		case <-ctx.Done():
			return strings.TrimSpace(detailed.String())
		case <-time.After(time.Second):
		}
	}

	return strings.TrimSpace(detailed.String())
}

func (c *Client) generateFinal(ctx context.Context, topic, hindiCategory, detailed string) (string, error) {
	prompt := fmt.Sprintf(`Create a comprehensive conclusion and finalize this Hindi news article:

Topic: %s
Category: %s

Current content:
%s

CRITICAL LANGUAGE REQUIREMENTS:
- Write ONLY in SIMPLE HINDI language that common people can understand
- Write in proper Hindi grammar with correct Devanagari script
- Do NOT include any author name, byline, or similar text in the article.

Content Requirements:
- Write a concise 80-100 word conclusion in Hindi
- Ensure total article is between 800 and 900 words
- IMPORTANT: Include ALL the detailed content from above in the final output
- Do not truncate or shorten the content
- Ensure smooth flow between sections

Format the final output as:
HEADLINE: [Clear, compelling Hindi headline that explains what happened]
CONTENT: [Complete article content with proper paragraphs - include ALL sections + conclusion. DO NOT include CATEGORIES, TAGS, or IMAGE_PROMPT in the content section]
CATEGORIES: [Category name]
TAGS: [Comma separated tags]
IMAGE_PROMPT: [English image prompt]`, topic, hindiCategory, detailed)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	words := len(strings.Fields(text))
	if words < 800 || words > 900 {
		logger.Warn("final content outside word target", "words", words)
	}
	return text, nil
}

func (c *Client) generateImagePrompt(ctx context.Context, topic, headline string) string {
	prompt := fmt.Sprintf(`Generate a detailed image prompt in English for this Hindi news topic:

Topic: %s
Headline: %s

Requirements:
- Create a detailed, descriptive image prompt in English
- Focus on visual elements that represent the news story
- Include cultural context if relevant
- Avoid text in the image
- Be specific about composition, lighting, and mood

Return only the image prompt, no additional text.`, topic, headline)

	text, err := c.generate(ctx, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		logger.Warn("image prompt generation failed, using fallback", "error", err)
		return fmt.Sprintf("News image related to: %s", topic)
	}
	return strings.TrimSpace(text)
}

// TranslateTitle converts a Hindi headline to English, for image alt
// text and slugs. Falls back to the original on failure.
func (c *Client) TranslateTitle(ctx context.Context, hindiTitle string) string {
	prompt := fmt.Sprintf(`Translate this Hindi news title to English. Provide only the English translation, nothing else:

Hindi title: %s

English translation:`, hindiTitle)

	text, err := c.generate(ctx, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		logger.Warn("title translation failed, using original", "error", err)
		return hindiTitle
	}
	translated := strings.TrimSpace(text)
	logger.Debug("translated title", "hindi", hindiTitle, "english", translated)
	return translated
}
