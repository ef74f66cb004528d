package trends

import "testing"

func TestNormalizeTitle_StripsPunctuationAndCase(t *testing.T) {
	got := NormalizeTitle("Modi Government Announces New Policy!")
	want := "modi government announces new policy"
	if got != want {
		t.Errorf("NormalizeTitle = %q, want %q", got, want)
	}
}

func TestNormalizeTitle_DropsFillerWords(t *testing.T) {
	a := NormalizeTitle("Breaking News: मोदी सरकार का बड़ा फैसला")
	b := NormalizeTitle("मोदी सरकार का बड़ा फैसला - ताजा खबर")
	if a != b {
		t.Errorf("filler variants should collapse to the same key: %q vs %q", a, b)
	}
	if a == "" {
		t.Fatal("key should not be empty")
	}
}

func TestNormalizeTitle_DropsShortTokens(t *testing.T) {
	// "का" is two runes, "is" and "to" are two bytes; all must go.
	got := NormalizeTitle("PM is set to visit चीन का दौरा")
	for _, bad := range []string{"is", "to", "का", "pm"} {
		if containsWord(got, bad) {
			t.Errorf("short token %q survived normalization: %q", bad, got)
		}
	}
}

func TestNormalizeTitle_HindiPreserved(t *testing.T) {
	// "की" is two runes and drops, the rest stays.
	got := NormalizeTitle("भारत में चुनाव की तैयारी")
	if got != "भारत में चुनाव तैयारी" {
		t.Errorf("got %q", got)
	}
}

func TestNormalizeTitle_EmptyAfterFiltering(t *testing.T) {
	if got := NormalizeTitle("Breaking News Update!!"); got != "" {
		t.Errorf("expected empty key, got %q", got)
	}
}

func containsWord(s, w string) bool {
	for _, f := range splitFields(s) {
		if f == w {
			return true
		}
	}
	return false
}

func splitFields(s string) []string {
	var out []string
	cur := ""
	for _, r := range s {
		if r == ' ' {
			if cur != "" {
				out = append(out, cur)
				cur = ""
			}
			continue
		}
		cur += string(r)
	}
	if cur != "" {
		out = append(out, cur)
	}
	return out
}
