package feeds

import (
	"context"
	"log"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

const (
	// DefaultMaxConcurrentRefresh limits parallel feed refreshes.
	DefaultMaxConcurrentRefresh = 5
	// DefaultRefreshTimeout bounds a single refresh inside a batch.
	DefaultRefreshTimeout = 30 * time.Second
)

// Service implements the FeedService interface with business logic
type Service struct {
	fetcher              FeedFetcher
	parser               FeedParser
	cache                *Cache
	popular              []PopularFeed
	maxConcurrentRefresh int
	refreshTimeout       time.Duration
}

// Ensure Service implements FeedService interface
var _ FeedService = (*Service)(nil)

// ServiceOption is a functional option for configuring the service
type ServiceOption func(*Service)

// WithPopularFeeds replaces the built-in discovery list.
func WithPopularFeeds(feeds []PopularFeed) ServiceOption {
	return func(s *Service) {
		if len(feeds) > 0 {
			s.popular = feeds
		}
	}
}

// WithMaxConcurrentRefresh sets the batch refresh parallelism
func WithMaxConcurrentRefresh(max int) ServiceOption {
	return func(s *Service) {
		if max > 0 {
			s.maxConcurrentRefresh = max
		}
	}
}

// WithRefreshTimeout sets the per-feed timeout inside batch refreshes
func WithRefreshTimeout(timeout time.Duration) ServiceOption {
	return func(s *Service) {
		if timeout > 0 {
			s.refreshTimeout = timeout
		}
	}
}

// NewService creates a new feed service with optional configuration
func NewService(fetcher FeedFetcher, parser FeedParser, cache *Cache, opts ...ServiceOption) *Service {
	s := &Service{
		fetcher:              fetcher,
		parser:               parser,
		cache:                cache,
		popular:              defaultPopularFeeds,
		maxConcurrentRefresh: DefaultMaxConcurrentRefresh,
		refreshTimeout:       DefaultRefreshTimeout,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// GetFeed returns the parsed feed for feedURL. Unless forceRefresh is set, a
// fresh cache entry short-circuits the network. When fetching or parsing
// fails, a stale cache entry (any age) is served before the error surfaces,
// so a dead upstream degrades to old data instead of nothing.
func (s *Service) GetFeed(ctx context.Context, feedURL string, forceRefresh bool) (*Podcast, error) {
	if !forceRefresh {
		if podcast, ok := s.cache.Get(ctx, feedURL); ok {
			log.Printf("[DEBUG] Feed cache hit for %s", feedURL)
			return podcast, nil
		}
	}

	rawText, err := s.fetcher.Fetch(ctx, feedURL)
	if err != nil {
		if stale, ok := s.cache.GetStale(feedURL); ok {
			log.Printf("[WARN] Fetch failed for %s, serving stale cache: %v", feedURL, err)
			return stale, nil
		}
		return nil, err
	}

	podcast, err := s.parser.Parse(rawText)
	if err != nil {
		if stale, ok := s.cache.GetStale(feedURL); ok {
			log.Printf("[WARN] Parse failed for %s, serving stale cache: %v", feedURL, err)
			return stale, nil
		}
		return nil, err
	}

	if err := s.cache.Put(ctx, feedURL, podcast); err != nil {
		// The parse succeeded; a cache write failure is not the caller's problem.
		log.Printf("[WARN] Failed to cache feed %s: %v", feedURL, err)
	}
	return podcast, nil
}

// ValidateFeedURL reports whether feedURL looks like a URL and currently
// resolves to a parseable feed.
func (s *Service) ValidateFeedURL(ctx context.Context, feedURL string) bool {
	parsed, err := url.Parse(strings.TrimSpace(feedURL))
	if err != nil || parsed.Host == "" {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}

	rawText, err := s.fetcher.Fetch(ctx, feedURL)
	if err != nil {
		return false
	}
	_, err = s.parser.Parse(rawText)
	return err == nil
}

// PopularFeeds returns the curated discovery list.
func (s *Service) PopularFeeds() []PopularFeed {
	out := make([]PopularFeed, len(s.popular))
	copy(out, s.popular)
	return out
}

// RefreshAll force-refreshes every given feed with bounded concurrency and
// returns how many succeeded. One bad feed never aborts the batch.
func (s *Service) RefreshAll(ctx context.Context, urls []string) (int, error) {
	if len(urls) == 0 {
		return 0, nil
	}

	var (
		refreshed int64
		wg        sync.WaitGroup
	)

	// Use a semaphore to limit concurrent operations
	sem := make(chan struct{}, s.maxConcurrentRefresh)

	for _, feedURL := range urls {
		if ctx.Err() != nil {
			break
		}
		sem <- struct{}{} // Acquire semaphore
		wg.Add(1)

		go func(feedURL string) {
			defer wg.Done()
			defer func() { <-sem }() // Release semaphore

			defer func() {
				if r := recover(); r != nil {
					log.Printf("[ERROR] Panic refreshing feed %s: %v", feedURL, r)
				}
			}()

			refreshCtx, cancel := context.WithTimeout(ctx, s.refreshTimeout)
			defer cancel()

			if _, err := s.GetFeed(refreshCtx, feedURL, true); err != nil {
				log.Printf("[ERROR] Failed to refresh feed %s: %v", feedURL, err)
				return
			}
			atomic.AddInt64(&refreshed, 1)
		}(feedURL)
	}

	wg.Wait()
	return int(atomic.LoadInt64(&refreshed)), ctx.Err()
}

// defaultPopularFeeds is the built-in discovery list.
var defaultPopularFeeds = []PopularFeed{
	{
		Title:       "NPR News Now",
		RSSURL:      "https://feeds.npr.org/500005/podcast.xml",
		Description: "The latest news in five minutes, updated hourly.",
	},
	{
		Title:       "TED Talks Daily",
		RSSURL:      "https://feeds.feedburner.com/TEDTalks_audio",
		Description: "Thought-provoking ideas on every subject imaginable.",
	},
	{
		Title:       "The Daily",
		RSSURL:      "https://feeds.simplecast.com/54nAGcIl",
		Description: "This is what the news should sound like, from The New York Times.",
	},
	{
		Title:       "Nothing much happens",
		RSSURL:      "https://feeds.megaphone.fm/nothingmuchhappens",
		Description: "Bedtime stories where nothing much happens, to help you sleep.",
	},
	{
		Title:       "Sleep With Me",
		RSSURL:      "https://feeds.acast.com/public/shows/sleepwithme",
		Description: "A lulling, droning bedtime story to distract a racing mind.",
	},
}
