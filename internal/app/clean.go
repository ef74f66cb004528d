package app

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Label lines and fictional-name markers the model sometimes leaks
// into article bodies.
var (
	categoryLineRe = regexp.MustCompile(`(?im)^\s*(Category|श्रेणी)\s*:?\s*[^\n]*$`)
	tagLineRe      = regexp.MustCompile(`(?im)^\s*(TAGS|Tags|टैग)\s*:?\s*[^\n]*$`)
	fictionalRe    = regexp.MustCompile(`[^()\n]*\(काल्पनिक(?: नाम)?\)[^()\n]*`)
	tripleBlankRe  = regexp.MustCompile(`\n\s*\n\s*\n`)
)

// English loanwords the model drops into Hindi text when it loses the
// language constraint.
var foreignWords = []string{
	"perkembangan", "development", "implementation", "utilization",
	"optimization", "standardization", "modernization", "digitalization",
	"globalization", "industrialization", "urbanization", "commercialization",
}

func stripForeignWords(s string) string {
	for _, word := range foreignWords {
		s = strings.ReplaceAll(s, word, "")
		s = strings.ReplaceAll(s, strings.ToUpper(word[:1])+word[1:], "")
	}
	return s
}

// CleanTitle strips markdown formatting and stray loanwords from a
// generated headline.
func CleanTitle(title string) string {
	title = strings.ReplaceAll(title, "**", "")
	title = strings.ReplaceAll(title, "*", "")
	title = strings.ReplaceAll(title, "#", "")
	title = strings.ReplaceAll(title, "_", " ")
	title = stripForeignWords(title)
	return strings.Join(strings.Fields(title), " ")
}

// CleanContent turns a generated article body into publishable HTML:
// leaked labels and fictional names removed, markdown stripped, each
// substantial paragraph wrapped in <p> tags. cleanedTitle, when it
// opens the body, is removed so the headline does not repeat.
func CleanContent(content, cleanedTitle string) string {
	content = categoryLineRe.ReplaceAllString(content, "")
	content = tagLineRe.ReplaceAllString(content, "")
	content = fictionalRe.ReplaceAllString(content, "")

	if cleanedTitle != "" {
		escaped := regexp.QuoteMeta(cleanedTitle)
		content = regexp.MustCompile(`^`+escaped+`\s*`).ReplaceAllString(content, "")
		content = regexp.MustCompile(`^VIDEO:\s*`+escaped+`\s*`).ReplaceAllString(content, "")
	}

	content = strings.ReplaceAll(content, "#", "")
	content = strings.ReplaceAll(content, "**", "")
	content = strings.ReplaceAll(content, "*", "")
	content = strings.ReplaceAll(content, "_", " ")
	content = stripForeignWords(content)

	var formatted strings.Builder
	for _, para := range strings.Split(content, "\n\n") {
		para = strings.TrimSpace(para)
		if utf8.RuneCountInString(para) <= 10 {
			continue
		}
		para = strings.ReplaceAll(para, "  ", " ")
		formatted.WriteString(fmt.Sprintf("<p>%s</p>\n\n", para))
	}

	out := formatted.String()
	if strings.TrimSpace(out) == "" {
		out = fmt.Sprintf("<p>%s</p>", strings.TrimSpace(content))
	}

	out = tripleBlankRe.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}
