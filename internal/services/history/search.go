package history

import (
	"html"
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/dreamecho/feed-api/internal/models"
)

const (
	// DefaultSearchThreshold is the minimum score a record needs to appear
	// in fuzzy search results.
	DefaultSearchThreshold = 0.25
	// DefaultMaxResults caps the result list.
	DefaultMaxResults = 50
)

// stripPolicy removes every tag; descriptions in feeds routinely carry HTML.
var stripPolicy = bluemonday.StrictPolicy()

// SearchOptions tunes fuzzy search. The zero value is usable: zero Threshold
// and MaxResults fall back to the defaults.
type SearchOptions struct {
	Threshold  float64
	MaxResults int
	// PodcastDescriptions maps rssUrl to the channel-level description,
	// consulted only when a record itself scores below 0.85.
	PodcastDescriptions map[string]string
}

func (o SearchOptions) withDefaults() SearchOptions {
	if o.Threshold <= 0 {
		o.Threshold = DefaultSearchThreshold
	}
	if o.MaxResults <= 0 {
		o.MaxResults = DefaultMaxResults
	}
	return o
}

// Search ranks records against query and returns those scoring at or above
// the threshold, best first, ties keeping their input order. A blank query
// returns all records unranked.
func Search(records []models.HistoryRecord, query string, opts SearchOptions) []models.HistoryRecord {
	searchTerm := strings.ToLower(strings.TrimSpace(query))
	if searchTerm == "" {
		out := make([]models.HistoryRecord, len(records))
		copy(out, records)
		return out
	}
	opts = opts.withDefaults()

	type scored struct {
		record models.HistoryRecord
		score  float64
	}
	results := make([]scored, 0, len(records))
	for _, record := range records {
		score := scoreRecord(&record, searchTerm, opts.PodcastDescriptions)
		if score >= opts.Threshold {
			results = append(results, scored{record: record, score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].score > results[j].score })
	if len(results) > opts.MaxResults {
		results = results[:opts.MaxResults]
	}

	out := make([]models.HistoryRecord, len(results))
	for i, r := range results {
		out[i] = r.record
	}
	return out
}

// scoreRecord is the per-record score: the best of several weighted signals.
func scoreRecord(record *models.HistoryRecord, searchTerm string, podcastDescriptions map[string]string) float64 {
	titleLower := strings.ToLower(record.EpisodeTitle)
	nameLower := strings.ToLower(record.PodcastName)

	maxScore := Similarity(titleLower, searchTerm)
	maxScore = max(maxScore, Similarity(nameLower, searchTerm)*0.9)

	if record.Description != "" {
		descLower := strings.ToLower(StripHTML(record.Description))
		if strings.Contains(descLower, searchTerm) {
			maxScore = max(maxScore, 0.9)
			// A multi-word query where every word appears scores higher.
			words := searchWords(searchTerm)
			if len(words) > 1 && allContained(descLower, words) {
				maxScore = max(maxScore, 0.95)
			}
		} else {
			maxScore = max(maxScore, Similarity(descLower, searchTerm)*0.7)
		}
	}

	// Channel-level description is a weaker signal, consulted only when the
	// record itself did not already match well.
	if record.RSSURL != "" && maxScore < 0.85 {
		if desc, ok := podcastDescriptions[record.RSSURL]; ok && desc != "" {
			if strings.Contains(strings.ToLower(StripHTML(desc)), searchTerm) {
				maxScore = max(maxScore, 0.88)
			}
		}
	}

	// Substring hits trump fuzzy scores.
	if strings.Contains(titleLower, searchTerm) {
		maxScore = max(maxScore, 1.0)
	}
	if strings.Contains(nameLower, searchTerm) {
		maxScore = max(maxScore, 0.95)
	}

	return maxScore
}

func searchWords(term string) []string {
	var words []string
	for _, w := range strings.Fields(term) {
		if len([]rune(w)) > 1 {
			words = append(words, w)
		}
	}
	return words
}

func allContained(haystack string, words []string) bool {
	for _, w := range words {
		if !strings.Contains(haystack, w) {
			return false
		}
	}
	return true
}

// Similarity is normalized Levenshtein similarity between a and b in [0, 1]:
// identical strings score 1, with the distance scaled by the longer length.
// Two empty strings score 1.
func Similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	longer, shorter := ra, rb
	if len(rb) > len(ra) {
		longer, shorter = rb, ra
	}
	if len(longer) == 0 {
		return 1.0
	}
	distance := levenshtein(longer, shorter)
	return float64(len(longer)-distance) / float64(len(longer))
}

// levenshtein computes edit distance over runes with a two-row matrix.
func levenshtein(a, b []rune) int {
	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for j := 0; j <= len(a); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(b); i++ {
		curr[0] = i
		for j := 1; j <= len(a); j++ {
			if b[i-1] == a[j-1] {
				curr[j] = prev[j-1]
			} else {
				curr[j] = min(prev[j-1]+1, min(curr[j-1]+1, prev[j]+1))
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(a)]
}

// StripHTML reduces an HTML fragment to its text content.
func StripHTML(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(stripPolicy.Sanitize(s)))
}

// Suggestions extracts completion candidates for a partial query: words from
// episode titles and whole podcast names containing it. Queries shorter than
// two characters yield nothing.
func Suggestions(records []models.HistoryRecord, query string, limit int) []string {
	if len([]rune(query)) < 2 {
		return nil
	}
	if limit <= 0 {
		limit = 5
	}
	queryLower := strings.ToLower(query)

	var suggestions []string
	seen := make(map[string]bool)
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			suggestions = append(suggestions, s)
		}
	}

	for _, record := range records {
		for _, word := range strings.Fields(record.EpisodeTitle) {
			if len([]rune(word)) > 2 && strings.Contains(strings.ToLower(word), queryLower) {
				add(word)
			}
		}
		if strings.Contains(strings.ToLower(record.PodcastName), queryLower) {
			add(record.PodcastName)
		}
	}

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}
