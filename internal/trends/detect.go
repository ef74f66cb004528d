// Package trends finds headlines corroborated by several independent
// news sources, classifies them, and ranks them for publishing.
package trends

import (
	"sort"

	"hindnews/internal/logger"
	"hindnews/internal/metrics"
	"hindnews/internal/rss"
)

// Topic is a publish candidate.
type Topic struct {
	Title      string   // raw headline of the first entry seen for the cluster
	Key        string   // normalized comparison key
	Link       string   // first non-empty link in the cluster
	Links      []string // every non-empty link in the cluster, in arrival order
	Published  string   // published string of the first entry seen
	Sources    []string // distinct feed groups that carried the headline
	Category   string
	MatchCount int // == len(Sources), never the raw entry count
	Rank       int // 1-based position after sorting, 0 for exempt topics
}

// Per-category corroboration thresholds. Heavyweight categories need
// three independent sources, niche ones settle for two.
var categoryThresholds = map[string]int{
	"national":         3,
	"politics":         3,
	"world":            3,
	"business":         2,
	"education":        2,
	"career":           2,
	"technology":       2,
	"sports":           2,
	"entertainment":    2,
	"crime":            2,
	"religion":         2,
	"health":           2,
	"fact_check":       2,
	"interesting-news": 2,
}

const defaultThreshold = 3

type cluster struct {
	title     string
	published string
	sources   map[string]bool
	links     []string
	order     int // insertion order, keeps ranking deterministic
}

// Detect clusters entries by normalized title, keeps clusters that meet
// their category threshold, and returns the top `limit` topics ranked
// by source count.
func Detect(entries []rss.Entry, limit int) []Topic {
	clusters := make(map[string]*cluster)
	var keys []string

	for _, entry := range entries {
		// An empty key is a valid degenerate cluster: all-filler titles
		// group together and face the default threshold like any other.
		key := NormalizeTitle(entry.Title)

		c, ok := clusters[key]
		if !ok {
			c = &cluster{
				title:     entry.Title,
				published: entry.Published,
				sources:   make(map[string]bool),
				order:     len(keys),
			}
			clusters[key] = c
			keys = append(keys, key)
		}
		c.sources[entry.Source] = true
		if entry.Link != "" {
			c.links = append(c.links, entry.Link)
		}
	}

	var topics []Topic
	for _, key := range keys {
		c := clusters[key]

		sources := make([]string, 0, len(c.sources))
		for s := range c.sources {
			sources = append(sources, s)
		}
		sort.Strings(sources)

		category := Classify(c.title, sources)
		threshold, ok := categoryThresholds[category]
		if !ok {
			threshold = defaultThreshold
		}
		if len(sources) < threshold {
			continue
		}

		link := ""
		if len(c.links) > 0 {
			link = c.links[0]
		}

		topics = append(topics, Topic{
			Title:      c.title,
			Key:        key,
			Link:       link,
			Links:      c.links,
			Published:  c.published,
			Sources:    sources,
			Category:   category,
			MatchCount: len(sources),
		})
	}

	// Most corroborated first, then newest published string. Published
	// is compared as a string on purpose: feeds disagree on date
	// formats and a parse failure should not reorder the list.
	sort.SliceStable(topics, func(i, j int) bool {
		if topics[i].MatchCount != topics[j].MatchCount {
			return topics[i].MatchCount > topics[j].MatchCount
		}
		return topics[i].Published > topics[j].Published
	})

	if limit > 0 && len(topics) > limit {
		topics = topics[:limit]
	}
	for i := range topics {
		topics[i].Rank = i + 1
	}

	metrics.Global.SetClusters(len(clusters), len(topics))
	logCategoryBreakdown(topics)
	return topics
}

// BuildExempt converts entries from exempt feed groups straight into
// topics, no corroboration required. Each group contributes at most
// `perGroupLimit` topics under its fixed category. Group order is
// preserved, it is the publishing order.
func BuildExempt(groups []rss.ExemptGroup, perGroupLimit int) []Topic {
	var topics []Topic
	for _, group := range groups {
		count := 0
		for _, entry := range group.Entries {
			if perGroupLimit > 0 && count >= perGroupLimit {
				break
			}
			links := []string(nil)
			if entry.Link != "" {
				links = []string{entry.Link}
			}
			topics = append(topics, Topic{
				Title:      entry.Title,
				Key:        NormalizeTitle(entry.Title),
				Link:       entry.Link,
				Links:      links,
				Published:  entry.Published,
				Sources:    []string{group.Name},
				Category:   group.Category,
				MatchCount: 1,
			})
			count++
		}
		logger.Info("exempt group topics", "group", group.Name, "count", count)
	}
	return topics
}

func logCategoryBreakdown(topics []Topic) {
	counts := make(map[string]int)
	for _, t := range topics {
		counts[t.Category]++
	}
	logger.Info("trending topics detected", "total", len(topics))
	for cat, n := range counts {
		logger.Debug("category breakdown", "category", cat, "topics", n)
	}
}
