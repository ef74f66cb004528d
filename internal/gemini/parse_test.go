package gemini

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOutline(t *testing.T) {
	text := `HEADLINE:
मोदी सरकार ने की बड़ी घोषणा, जानिए पूरा मामला

SECTIONS:
1. कहानी की शुरुआत और मुख्य तथ्य
2. पृष्ठभूमि और संदर्भ
3. ताजा घटनाक्रम
4. प्रभाव और विश्लेषण
5. भविष्य की संभावनाएं

IMAGE_PROMPT:
A government building in New Delhi at sunset`

	got := ParseOutline(text)
	assert.Equal(t, "मोदी सरकार ने की बड़ी घोषणा, जानिए पूरा मामला", got.Headline)
	assert.Len(t, got.Sections, 5)
	assert.Equal(t, "पृष्ठभूमि और संदर्भ", got.Sections[1])
}

func TestParseOutline_InlineHeadline(t *testing.T) {
	got := ParseOutline("HEADLINE: सीधा शीर्षक यहां\nSECTIONS:\n1. पहला खंड")
	assert.Equal(t, "सीधा शीर्षक यहां", got.Headline)
	assert.Equal(t, []string{"पहला खंड"}, got.Sections)
}

func TestParseArticle(t *testing.T) {
	text := `HEADLINE: शेयर बाजार में ऐतिहासिक उछाल दर्ज
CONTENT: आज शेयर बाजार में जबरदस्त तेजी देखने को मिली।
निवेशकों ने बड़ी खरीदारी की और सेंसेक्स नई ऊंचाई पर पहुंचा।

विशेषज्ञों का मानना है कि यह तेजी आगे भी जारी रह सकती है।
CATEGORIES: व्यापार
TAGS: शेयर बाजार, सेंसेक्स, निवेश
IMAGE_PROMPT: Stock market trading floor with rising green charts`

	got := ParseArticle(text)
	assert.Equal(t, "शेयर बाजार में ऐतिहासिक उछाल दर्ज", got.Headline)
	assert.Equal(t, []string{"व्यापार"}, got.Categories)
	assert.Equal(t, []string{"शेयर बाजार", "सेंसेक्स", "निवेश"}, got.Tags)
	assert.Equal(t, "Stock market trading floor with rising green charts", got.ImagePrompt)
	assert.Contains(t, got.Content, "जबरदस्त तेजी")
	assert.Contains(t, got.Content, "जारी रह सकती")
	assert.NotContains(t, got.Content, "TAGS:")
	assert.NotContains(t, got.Content, "IMAGE_PROMPT:")
}

func TestParseArticle_ReplacesUnderscores(t *testing.T) {
	got := ParseArticle("HEADLINE: शीर्षक\nCONTENT: पहला_शब्द दूसरा_शब्द")
	assert.NotContains(t, got.Content, "_")
	assert.Contains(t, got.Content, "पहला शब्द")
}

func TestParseArticle_UnstructuredFallback(t *testing.T) {
	raw := "बिना किसी लेबल के सीधा लेख का पाठ यहां है।"
	got := ParseArticle(raw)
	assert.Equal(t, "", got.Headline)
	assert.Equal(t, raw, got.Content)
}

func TestParseArticle_MultilineImagePrompt(t *testing.T) {
	text := "HEADLINE: शीर्षक\nCONTENT: लेख का मुख्य भाग यहां है।\nIMAGE_PROMPT: A busy street\nin Mumbai at night"
	got := ParseArticle(text)
	assert.Equal(t, "A busy street in Mumbai at night", got.ImagePrompt)
	assert.False(t, strings.Contains(got.Content, "Mumbai"))
}

func TestApplyArticleFallbacks(t *testing.T) {
	outline := &Outline{Headline: "आउटलाइन शीर्षक", Tags: "एक, दो"}

	// Parsed headline wins when present.
	article := &Article{Headline: " मुख्य शीर्षक ", Categories: []string{"खेल"}, Tags: []string{"क्रिकेट"}}
	applyArticleFallbacks(article, outline, "फीड शीर्षक", "व्यापार")
	assert.Equal(t, "मुख्य शीर्षक", article.Headline)
	assert.Equal(t, []string{"खेल"}, article.Categories)
	assert.Equal(t, []string{"क्रिकेट"}, article.Tags)

	// Missing headline falls back to the outline's.
	article = &Article{}
	applyArticleFallbacks(article, outline, "फीड शीर्षक", "व्यापार")
	assert.Equal(t, "आउटलाइन शीर्षक", article.Headline)
	assert.Equal(t, []string{"व्यापार"}, article.Categories)
	assert.Equal(t, []string{"एक", "दो"}, article.Tags)

	// Blank outline headline falls back to the raw feed title.
	article = &Article{}
	applyArticleFallbacks(article, &Outline{Headline: "  "}, "फीड शीर्षक", "व्यापार")
	assert.Equal(t, "फीड शीर्षक", article.Headline)
}

func TestHindiCategory(t *testing.T) {
	assert.Equal(t, "व्यापार", HindiCategory("business"))
	assert.Equal(t, "वायरल", HindiCategory("वायरल"))
	assert.Equal(t, "राष्ट्रीय समाचार", HindiCategory("unknown-thing"))
}
