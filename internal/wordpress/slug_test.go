package wordpress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlug_HindiKeywords(t *testing.T) {
	slug := Slug("चीन ने ताइवान के पास सैन्य अभ्यास किया, अमेरिका ने जवाब दिया")
	assert.Contains(t, slug, "china")
	assert.Contains(t, slug, "taiwan")
	assert.Contains(t, slug, "military")
	assert.Contains(t, slug, "drill")
	assert.Contains(t, slug, "america")
	assert.Contains(t, slug, "response")
	assert.NotContains(t, slug, "ने", "no Devanagari survives")
}

func TestSlug_ConnectorsDropped(t *testing.T) {
	// का/की/के are connectors and never become slug words
	slug := Slug("भारत की सरकार का चुनाव")
	assert.Contains(t, slug, "india")
	assert.Contains(t, slug, "government")
	assert.Contains(t, slug, "election")
}

func TestSlug_ShortHindiPadded(t *testing.T) {
	slug := Slug("भारत समाचार")
	// country match pads with news/update
	assert.Equal(t, "india-news-news-update", slug)
}

func TestSlug_WarContextPadding(t *testing.T) {
	slug := Slug("युद्ध हमला")
	assert.Equal(t, "war-attack-conflict-security", slug)
}

func TestSlug_NumbersKept(t *testing.T) {
	slug := Slug("भारत में 50 प्रतिशत वृद्धि युद्ध")
	assert.Contains(t, slug, "50")
	assert.Contains(t, slug, "percent")
}

func TestSlug_English(t *testing.T) {
	slug := Slug("The Government Announces a New Policy for the Digital Economy Sector Today")
	assert.Contains(t, slug, "government")
	assert.Contains(t, slug, "announces")
	assert.NotContains(t, slug, "-the-")
	assert.NotContains(t, slug, "-for-")
}

func TestSlug_EnglishShortPadded(t *testing.T) {
	slug := Slug("Market crash")
	assert.Equal(t, "market-crash-breaking-news", slug)
}

func TestSlug_NeverEmpty(t *testing.T) {
	assert.NotEmpty(t, Slug(""))
	assert.NotEmpty(t, Slug("की के का"))
}

func TestSlug_OnlyValidRunes(t *testing.T) {
	slug := Slug("मोदी ने कहा: 'व्यापार' बढ़ेगा!")
	for _, r := range slug {
		valid := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
		assert.True(t, valid, "rune %q in slug %q", r, slug)
	}
}

func TestAuthorForCategory(t *testing.T) {
	assert.Equal(t, 2, AuthorForCategory("sports").ID)
	assert.Equal(t, "Saumitra", AuthorForCategory("sports").Name)
	assert.Equal(t, 4, AuthorForCategory("technology").ID)
	assert.Equal(t, 4, AuthorForCategory("career").ID)
	assert.Equal(t, 11, AuthorForCategory("वायरल").ID)
	assert.Equal(t, 10, AuthorForCategory("उत्तर प्रदेश").ID)

	def := AuthorForCategory("unknown-beat")
	assert.Equal(t, 1, def.ID)
	assert.Equal(t, "Disharth", def.Name)
}
