// Package scraper pulls full article text from Hindi news sites to give
// the article generator more context than an RSS headline.
package scraper

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"hindnews/internal/logger"
)

// ArticleContent is full article content
type ArticleContent struct {
	Title   string
	Content string
	URL     string
}

// ExtractFullArticle gets full text of article by URL
func ExtractFullArticle(url string) (*ArticleContent, error) {
	client := &http.Client{
		Timeout: 15 * time.Second,
	}

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error building request: %v", err)
	}
	// Several Hindi sites refuse the default Go user agent.
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error loading page: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("HTTP error: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error parsing HTML: %v", err)
	}

	content := extractContentBySource(doc, url)
	title := extractTitle(doc)

	if content == "" {
		return nil, fmt.Errorf("can't get content")
	}

	return &ArticleContent{
		Title:   title,
		Content: content,
		URL:     url,
	}, nil
}

// extractContentBySource gets content by news site
func extractContentBySource(doc *goquery.Document, url string) string {
	var content string

	switch {
	case strings.Contains(url, "bhaskar.com"):
		content = extractBySelectors(doc, []string{
			".article-content p",
			"._9e25b1b6 p",
			"article p",
			".db-article-body p",
		}, 10)
	case strings.Contains(url, "ndtv.com"):
		content = extractBySelectors(doc, []string{
			".sp-cn p",
			".story__content p",
			".content_text p",
			"article p",
		}, 10)
	case strings.Contains(url, "indiatv.in"):
		content = extractBySelectors(doc, []string{
			".content p",
			".article-content p",
			"article p",
		}, 10)
	case strings.Contains(url, "news18.com"):
		content = extractBySelectors(doc, []string{
			".story-article-box p",
			".article-content p",
			"article p",
		}, 10)
	case strings.Contains(url, "abplive.com"):
		content = extractBySelectors(doc, []string{
			".article-body p",
			".story-section p",
			"article p",
		}, 10)
	case strings.Contains(url, "livehindustan.com"):
		content = extractBySelectors(doc, []string{
			".storyParagraph p",
			".story-content p",
			"article p",
		}, 10)
	default:
		content = extractGenericContent(doc)
	}

	return cleanContent(content)
}

// extractBySelectors tries each selector until one yields paragraphs.
func extractBySelectors(doc *goquery.Document, selectors []string, minLen int) string {
	var paragraphs []string

	for _, selector := range selectors {
		doc.Find(selector).Each(func(i int, s *goquery.Selection) {
			text := strings.TrimSpace(s.Text())
			if text != "" && len(text) > minLen {
				paragraphs = append(paragraphs, text)
			}
		})
		if len(paragraphs) > 0 {
			break
		}
	}

	return strings.Join(paragraphs, "\n\n")
}

// extractGenericContent is universal parser for any site
func extractGenericContent(doc *goquery.Document) string {
	var paragraphs []string

	selectors := []string{
		"article p",
		".article p",
		".content p",
		".post-content p",
		".entry-content p",
		"main p",
		"#content p",
		".text p",
		"p",
	}

	for _, selector := range selectors {
		doc.Find(selector).Each(func(i int, s *goquery.Selection) {
			text := strings.TrimSpace(s.Text())
			if text != "" && len(text) > 20 {
				paragraphs = append(paragraphs, text)
			}
		})
		if len(paragraphs) >= 3 { // three paragraphs is enough context
			break
		}
	}

	return strings.Join(paragraphs, "\n\n")
}

// extractTitle gets article title
func extractTitle(doc *goquery.Document) string {
	selectors := []string{
		"h1",
		"title",
		".article-title",
		".headline",
		".entry-title",
	}

	for _, selector := range selectors {
		title := doc.Find(selector).First().Text()
		title = strings.TrimSpace(title)
		if title != "" {
			return title
		}
	}

	return ""
}

// cleanContent cleans and normalizes text with better formatting
func cleanContent(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "<br>", " ")
	content = strings.ReplaceAll(content, "<br/>", " ")
	content = strings.ReplaceAll(content, "<p>", "\n\n")
	content = strings.ReplaceAll(content, "</p>", "")

	// Strip any remaining tags
	inTag := false
	var result strings.Builder
	for _, char := range content {
		if char == '<' {
			inTag = true
		} else if char == '>' {
			inTag = false
		} else if !inTag {
			result.WriteRune(char)
		}
	}

	content = strings.TrimSpace(result.String())

	// Boilerplate every Hindi news site injects around the story
	junkPhrases := []string{
		"यह भी पढ़ें:", "यह भी पढ़ें", "ये भी पढ़ें:", "ये भी पढ़ें",
		"इसे भी पढ़ें:", "पढ़ें पूरी खबर",
		"वीडियो देखें:", "देखें वीडियो",
		"हमें फॉलो करें", "व्हाट्सऐप चैनल से जुड़ें",
		"Download App", "ऐप डाउनलोड करें",
		"Read More", "Also Read:", "Also Read",
		"Follow us on", "Share this article",
		"Cookie", "GDPR", "Privacy Policy", "Subscribe",
	}

	for _, phrase := range junkPhrases {
		content = strings.ReplaceAll(content, phrase, "")
	}

	lines := strings.Split(content, "\n")
	var cleanLines []string
	var currentParagraph strings.Builder

	flush := func() {
		if currentParagraph.Len() > 0 {
			paragraph := strings.TrimSpace(currentParagraph.String())
			if len(paragraph) > 30 {
				cleanLines = append(cleanLines, paragraph)
			}
			currentParagraph.Reset()
		}
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)

		if len(line) < 8 {
			flush()
			continue
		}

		lower := strings.ToLower(line)
		isJunk := false
		junkIndicators := []string{
			"cookie", "advertisement", "विज्ञापन", "read more",
			"click here", "follow us", "share", "download app",
		}
		for _, indicator := range junkIndicators {
			if strings.Contains(lower, indicator) {
				isJunk = true
				break
			}
		}
		if isJunk {
			continue
		}

		if currentParagraph.Len() > 0 {
			currentParagraph.WriteString(" ")
		}
		currentParagraph.WriteString(line)

		// Hindi sentences end with danda as often as with a period
		if strings.HasSuffix(line, "।") || strings.HasSuffix(line, ".") ||
			strings.HasSuffix(line, "!") || strings.HasSuffix(line, "?") {
			flush()
		}
	}
	flush()

	resultText := strings.Join(cleanLines, "\n\n")

	for strings.Contains(resultText, "  ") {
		resultText = strings.ReplaceAll(resultText, "  ", " ")
	}
	for strings.Contains(resultText, "\n\n\n") {
		resultText = strings.ReplaceAll(resultText, "\n\n\n", "\n\n")
	}

	resultText = strings.TrimSpace(resultText)

	// Limit length, keep full paragraphs. Devanagari is 3 bytes per
	// rune so the byte budget is generous.
	if len(resultText) > 4000 {
		paragraphs := strings.Split(resultText, "\n\n")
		var selected []string
		totalLength := 0

		for _, paragraph := range paragraphs {
			if totalLength+len(paragraph) < 3600 {
				selected = append(selected, paragraph)
				totalLength += len(paragraph) + 2
			} else {
				break
			}
		}

		if len(selected) > 0 {
			resultText = strings.Join(selected, "\n\n")
		}
	}

	return resultText
}

// ExtractArticlesInBackground gets full content for up to five article
// URLs, pausing between requests.
func ExtractArticlesInBackground(urls []string) map[string]*ArticleContent {
	result := make(map[string]*ArticleContent)

	for i, url := range urls {
		if i >= 5 {
			break
		}

		logger.Debug("fetching article content", "n", i+1, "total", len(urls), "url", url)

		article, err := ExtractFullArticle(url)
		if err != nil {
			logger.Warn("can't get article content", "url", url, "error", err)
			continue
		}

		if len(article.Content) > 100 {
			result[url] = article
			logger.Debug("got article content", "chars", len(article.Content))
		} else {
			logger.Warn("article content too short", "url", url)
		}

		time.Sleep(500 * time.Millisecond)
	}

	return result
}
