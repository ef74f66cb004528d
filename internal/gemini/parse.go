package gemini

import (
	"regexp"
	"strings"
	"unicode"
)

// ParseOutline extracts the headline, numbered section titles, and
// tags from an outline response.
func ParseOutline(text string) *Outline {
	result := &Outline{}
	current := ""

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "HEADLINE:"):
			current = "headline"
			result.Headline = strings.TrimSpace(strings.TrimPrefix(line, "HEADLINE:"))
		case strings.HasPrefix(line, "SECTIONS:"):
			current = "sections"
		case strings.HasPrefix(line, "TAGS:"):
			current = "tags"
			result.Tags = strings.TrimSpace(strings.TrimPrefix(line, "TAGS:"))
		case strings.HasPrefix(line, "IMAGE_PROMPT:"):
			current = "image_prompt"
		case current == "headline" && result.Headline == "":
			// Headline label on its own line, value on the next
			result.Headline = line
		case current == "sections" && startsWithDigit(line):
			title := line
			if idx := strings.Index(line, "."); idx >= 0 {
				title = strings.TrimSpace(line[idx+1:])
			}
			if title != "" {
				result.Sections = append(result.Sections, title)
			}
		}
	}

	return result
}

var metadataPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)CATEGORIES:.*?(\n\n|\n[A-Z]|$)`),
	regexp.MustCompile(`(?is)TAGS:.*?(\n\n|\n[A-Z]|$)`),
	regexp.MustCompile(`(?is)IMAGE_PROMPT:.*?(\n\n|\n[A-Z]|$)`),
	regexp.MustCompile(`(?is)CATEGORIES:.*`),
	regexp.MustCompile(`(?is)TAGS:.*`),
	regexp.MustCompile(`(?is)IMAGE_PROMPT:.*`),
}

var multiBlank = regexp.MustCompile(`\n\s*\n\s*\n`)

// ParseArticle extracts the labeled fields from a final generation
// response. Lines after CONTENT: accumulate until the next label.
func ParseArticle(text string) *Article {
	article := &Article{}
	var content strings.Builder
	current := ""

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "HEADLINE:"):
			current = "headline"
			article.Headline = strings.TrimSpace(strings.TrimPrefix(line, "HEADLINE:"))
		case strings.HasPrefix(line, "CONTENT:"):
			current = "content"
			if rest := strings.TrimSpace(strings.TrimPrefix(line, "CONTENT:")); rest != "" {
				content.WriteString(strings.ReplaceAll(rest, "_", " "))
				content.WriteString("\n\n")
			}
		case strings.HasPrefix(line, "CATEGORIES:"):
			current = "categories"
			article.Categories = splitList(strings.TrimPrefix(line, "CATEGORIES:"))
		case strings.HasPrefix(line, "TAGS:"):
			current = "tags"
			article.Tags = splitList(strings.TrimPrefix(line, "TAGS:"))
		case strings.HasPrefix(line, "IMAGE_PROMPT:"):
			current = "image_prompt"
			article.ImagePrompt = strings.TrimSpace(strings.TrimPrefix(line, "IMAGE_PROMPT:"))
		case current == "content":
			content.WriteString(strings.ReplaceAll(line, "_", " "))
			content.WriteString("\n\n")
		case current == "image_prompt":
			article.ImagePrompt += " " + line
		}
	}

	body := content.String()
	if strings.TrimSpace(body) == "" {
		// No structured content, treat the whole response as the article
		body = strings.ReplaceAll(text, "_", " ")
	}

	// Strip any labels the model leaked into the body
	for _, re := range metadataPatterns {
		body = re.ReplaceAllString(body, "")
	}
	body = multiBlank.ReplaceAllString(body, "\n\n")
	body = strings.ReplaceAll(body, "  ", " ")

	article.Content = strings.TrimSpace(body)
	article.ImagePrompt = strings.TrimSpace(article.ImagePrompt)
	return article
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func startsWithDigit(s string) bool {
	for _, r := range s {
		return unicode.IsDigit(r)
	}
	return false
}
