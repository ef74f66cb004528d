package wordpress

import (
	"regexp"
	"strings"

	"hindnews/internal/logger"
)

// Keyword transliterations for slug building. Connectors map to the
// empty string so they drop out of the slug.
var hindiToEnglish = map[string]string{
	// Countries and places
	"चीन": "china", "भारत": "india", "अमेरिका": "america", "रूस": "russia",
	"पाकिस्तान": "pakistan", "ताइवान": "taiwan", "जापान": "japan",
	"कनाडा": "canada", "ऑस्ट्रेलिया": "australia", "ब्रिटेन": "britain",
	"फ्रांस": "france", "जर्मनी": "germany", "इटली": "italy",

	// People and leaders
	"मोदी": "modi", "ट्रम्प": "trump", "पुतिन": "putin", "शी": "xi",
	"बाइडन": "biden", "किम": "kim", "अमित": "amit", "राहुल": "rahul",

	// Events and actions
	"युद्ध": "war", "शांति": "peace", "व्यापार": "trade", "अर्थव्यवस्था": "economy",
	"चुनाव": "election", "सरकार": "government", "संसद": "parliament",
	"सेना": "army", "सैन्य": "military", "अभ्यास": "drill", "तैनात": "deploy",
	"जहाज़": "warship", "हमला": "attack", "बम": "bomb", "आतंक": "terror",
	"दुर्घटना": "accident", "मौत": "death", "चोट": "injury",

	// Quantities
	"प्रतिशत": "percent", "फीसदी": "percent", "लाख": "lakh", "करोड़": "crore",
	"मिलियन": "million", "बिलियन": "billion",

	// News vocabulary
	"समाचार": "news", "खबर": "news", "रिपोर्ट": "report", "अध्ययन": "study",
	"अनुसंधान": "research", "खोज": "discovery", "आविष्कार": "invention",
	"प्रौद्योगिकी": "technology", "तकनीक": "technology", "विज्ञान": "science",
	"शिक्षा": "education", "स्वास्थ्य": "health", "खेल": "sports",
	"मनोरंजन": "entertainment", "फिल्म": "film", "संगीत": "music",
	"क्रिकेट": "cricket", "फुटबॉल": "football", "टेनिस": "tennis",

	// Reactions
	"कहा": "said", "बोला": "said", "जवाब": "response", "प्रतिक्रिया": "reaction",
	"बौखलाया": "reacts", "गुस्सा": "angry", "खुश": "happy", "दुखी": "sad",
	"चिंतित": "worried", "आश्चर्य": "surprise", "डर": "fear",

	// Time
	"आज": "today", "कल": "tomorrow", "पिछले": "previous", "अगले": "next",
	"साल": "year", "महीना": "month", "सप्ताह": "week", "दिन": "day",

	// Connectors, dropped from slugs
	"और": "", "या": "", "लेकिन": "", "मगर": "", "फिर": "", "तब": "",
	"जब": "", "क्योंकि": "", "इसलिए": "", "कि": "", "का": "", "की": "",
	"के": "", "को": "", "से": "", "में": "", "पर": "", "तक": "", "द्वारा": "",
}

var englishStopWords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "from": true, "up": true, "about": true,
	"into": true, "through": true, "during": true, "before": true, "after": true,
	"above": true, "below": true, "between": true, "among": true, "over": true,
	"under": true, "is": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "being": true, "have": true, "has": true,
	"had": true, "do": true, "does": true, "did": true, "will": true,
	"would": true, "could": true, "should": true, "may": true, "might": true,
	"can": true, "must": true, "shall": true, "this": true, "that": true,
	"these": true, "those": true, "it": true, "its": true, "we": true,
	"they": true, "them": true, "their": true,
}

var (
	devanagariRe  = regexp.MustCompile(`[\x{0900}-\x{097F}]`)
	wordCleanRe   = regexp.MustCompile(`[^\x{0900}-\x{097F}\x{0020}-\x{007F}]`)
	numberRe      = regexp.MustCompile(`^\d+%?$`)
	latinWordRe   = regexp.MustCompile(`[a-zA-Z]+`)
	englishWordRe = regexp.MustCompile(`[a-zA-Z0-9]+`)
	slugCharRe    = regexp.MustCompile(`[^a-z0-9-]`)
	multiDashRe   = regexp.MustCompile(`-+`)
)

// Slug builds an English URL slug from a Hindi or English headline.
// Hindi titles go through the keyword transliteration table, nothing
// here calls a translation service.
func Slug(title string) string {
	var slug string
	if devanagariRe.MatchString(title) {
		slug = slugFromHindi(title)
	} else {
		slug = slugFromEnglish(title)
	}
	if slug == "" {
		slug = "breaking-news"
	}
	return slug
}

func slugFromHindi(text string) string {
	var keyWords []string

	for _, word := range strings.Fields(text) {
		clean := wordCleanRe.ReplaceAllString(word, "")
		if clean == "" {
			continue
		}

		if numberRe.MatchString(clean) {
			keyWords = append(keyWords, strings.TrimSuffix(clean, "%"))
			continue
		}

		if english, ok := hindiToEnglish[clean]; ok {
			if english != "" {
				keyWords = append(keyWords, english)
			}
			continue
		}

		// Compound words match on any known fragment
		matched := false
		for hindi, english := range hindiToEnglish {
			if english != "" && strings.Contains(clean, hindi) {
				keyWords = append(keyWords, english)
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		keyWords = append(keyWords, latinWordRe.FindAllString(clean, -1)...)
	}

	keyWords = padKeyWords(keyWords)
	slug := finishSlug(keyWords)
	logger.Debug("built slug from Hindi title", "title", text, "slug", slug)
	return slug
}

func slugFromEnglish(text string) string {
	words := englishWordRe.FindAllString(strings.ToLower(text), -1)

	var keyWords []string
	for _, w := range words {
		if !englishStopWords[w] && len(w) >= 3 {
			keyWords = append(keyWords, w)
		}
	}

	if len(keyWords) > 10 {
		keyWords = keyWords[:10]
	} else if len(keyWords) < 6 {
		keyWords = append(keyWords, "breaking", "news")
	}
	return finishSlug(keyWords)
}

// padKeyWords enforces the 6-10 word window, topping short slugs up
// with generic words chosen from the slug's own subject matter.
func padKeyWords(keyWords []string) []string {
	if len(keyWords) > 10 {
		return keyWords[:10]
	}
	if len(keyWords) >= 6 {
		return keyWords
	}

	has := func(candidates ...string) bool {
		for _, w := range keyWords {
			for _, c := range candidates {
				if w == c {
					return true
				}
			}
		}
		return false
	}

	switch {
	case has("china", "india", "america", "russia"):
		keyWords = append(keyWords, "news", "update")
	case has("war", "attack", "military"):
		keyWords = append(keyWords, "conflict", "security")
	case has("election", "government", "politics"):
		keyWords = append(keyWords, "politics", "news")
	default:
		keyWords = append(keyWords, "breaking", "news")
	}
	return keyWords
}

func finishSlug(words []string) string {
	slug := strings.ToLower(strings.Join(words, "-"))
	slug = slugCharRe.ReplaceAllString(slug, "")
	slug = multiDashRe.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
