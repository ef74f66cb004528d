// Package rss loads the feed group configuration and collects entries
// from every configured Hindi news source.
package rss

import (
	"os"
	"strings"

	"github.com/mmcdole/gofeed"
	"gopkg.in/yaml.v3"

	"hindnews/internal/logger"
	"hindnews/internal/metrics"
)

// FeedGroup is one source in feeds.yaml. Exempt groups skip
// cross-source corroboration and publish under a fixed category.
type FeedGroup struct {
	Name     string   `yaml:"name"`
	URLs     []string `yaml:"urls"`
	Exempt   bool     `yaml:"exempt"`
	Category string   `yaml:"category"`
}

// FeedsConfig is the YAML config structure:
// groups:
//   - name: bhaskar
//     urls:
//       - https://...
type FeedsConfig struct {
	Groups []FeedGroup `yaml:"groups"`
}

// Entry is a single headline pulled from a feed.
type Entry struct {
	Title     string
	Link      string
	Published string
	Source    string // feed group name
}

// LoadFeeds reads the feed group list from a YAML file.
func LoadFeeds(path string) ([]FeedGroup, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg FeedsConfig
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return nil, err
	}
	return cfg.Groups, nil
}

// FetchGroup downloads and parses every URL of one group sequentially.
// A failing URL is logged and skipped, the rest of the group still loads.
func FetchGroup(parser *gofeed.Parser, group FeedGroup, minTitleLen int) []Entry {
	var entries []Entry

	for _, url := range group.URLs {
		feed, err := parser.ParseURL(url)
		if err != nil {
			logger.Error("error parsing RSS", "source", group.Name, "url", url, "error", err)
			metrics.Global.AddFeedFailed()
			continue
		}
		metrics.Global.AddFeedFetched()

		kept := 0
		for _, item := range feed.Items {
			title := strings.TrimSpace(item.Title)
			if len([]rune(title)) <= minTitleLen {
				continue
			}
			entries = append(entries, Entry{
				Title:     title,
				Link:      item.Link,
				Published: item.Published,
				Source:    group.Name,
			})
			kept++
		}
		logger.Debug("loaded feed", "source", group.Name, "url", url, "items", len(feed.Items), "kept", kept)
	}

	return entries
}

// FetchAll collects entries from every non-exempt group. Fetching is
// sequential; a run is a batch job, not a latency-sensitive service.
func FetchAll(groups []FeedGroup, minTitleLen int) []Entry {
	parser := gofeed.NewParser()
	var all []Entry
	okGroups := 0

	for _, group := range groups {
		if group.Exempt {
			continue
		}
		entries := FetchGroup(parser, group, minTitleLen)
		if len(entries) > 0 {
			okGroups++
		}
		all = append(all, entries...)
	}

	metrics.Global.AddEntries(len(all))
	logger.Info("fetched multi-source feeds", "groups_ok", okGroups, "entries", len(all))
	return all
}

// ExemptGroup is one exempt feed group's haul for a run.
type ExemptGroup struct {
	Name     string
	Category string
	Entries  []Entry
}

// FetchExempt collects entries from exempt groups only. Groups come
// back in feeds.yaml order, which is also their publishing order.
func FetchExempt(groups []FeedGroup, minTitleLen int) []ExemptGroup {
	parser := gofeed.NewParser()
	var result []ExemptGroup

	for _, group := range groups {
		if !group.Exempt {
			continue
		}
		entries := FetchGroup(parser, group, minTitleLen)
		result = append(result, ExemptGroup{Name: group.Name, Category: group.Category, Entries: entries})
		logger.Info("fetched exempt feed", "group", group.Name, "entries", len(entries))
	}

	return result
}
