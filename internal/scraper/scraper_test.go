package scraper

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestCleanContent_RemovesBoilerplateAndKeepsStory(t *testing.T) {
	in := "यह भी पढ़ें: पुरानी खबर का लिंक\n" +
		"सरकार ने आज एक बड़ी घोषणा की जिसका असर पूरे देश पर पड़ेगा।\n" +
		"ऐप डाउनलोड करें\n" +
		"विशेषज्ञों का कहना है कि यह फैसला लंबे समय से लंबित था।"

	out := cleanContent(in)
	if strings.Contains(out, "पढ़ें:") {
		t.Errorf("boilerplate survived: %q", out)
	}
	if !strings.Contains(out, "बड़ी घोषणा") {
		t.Errorf("story text lost: %q", out)
	}
	if !strings.Contains(out, "लंबित") {
		t.Errorf("second paragraph lost: %q", out)
	}
}

func TestCleanContent_SplitsOnDanda(t *testing.T) {
	in := "पहला वाक्य यहां खत्म होता है और इसमें काफी शब्द हैं।\nदूसरा वाक्य भी यहीं खत्म होता है और लंबा है।"
	out := cleanContent(in)
	if got := strings.Count(out, "\n\n"); got != 1 {
		t.Errorf("want 2 paragraphs, got separator count %d in %q", got, out)
	}
}

func TestExtractGenericContent(t *testing.T) {
	html := `<html><body><article>
		<p>सरकार ने आज एक बड़ी घोषणा की जिसका असर देशभर में दिखेगा।</p>
		<p>विपक्ष ने इस फैसले पर तीखी प्रतिक्रिया दी है और बहस जारी है।</p>
		<p>ad</p>
	</article></body></html>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	got := extractGenericContent(doc)
	if !strings.Contains(got, "बड़ी घोषणा") || !strings.Contains(got, "प्रतिक्रिया") {
		t.Errorf("content not extracted: %q", got)
	}
	if strings.Contains(got, "ad") {
		t.Errorf("short junk paragraph kept: %q", got)
	}
}

func TestExtractTitle(t *testing.T) {
	html := `<html><head><title>साइट का नाम</title></head><body><h1>असली शीर्षक</h1></body></html>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := extractTitle(doc); got != "असली शीर्षक" {
		t.Errorf("got %q", got)
	}
}
