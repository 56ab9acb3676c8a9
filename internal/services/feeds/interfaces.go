package feeds

import (
	"context"
	"time"
)

// FeedFetcher defines the interface for retrieving raw feed text
type FeedFetcher interface {
	Fetch(ctx context.Context, feedURL string) (string, error)
}

// FeedParser defines the interface for turning raw XML into a Podcast
type FeedParser interface {
	Parse(rawText string) (*Podcast, error)
}

// StoredFeed is one persisted cache entry, decoded.
type StoredFeed struct {
	URL       string
	Podcast   *Podcast
	Timestamp time.Time
}

// CacheStore defines the interface for the persistent cache mirror
type CacheStore interface {
	LoadAll(ctx context.Context) ([]StoredFeed, error)
	Save(ctx context.Context, url string, podcast *Podcast, timestamp time.Time) error
	Delete(ctx context.Context, urls []string) error
	// Trim drops everything but the keep newest entries.
	Trim(ctx context.Context, keep int) error
}

// FeedService defines the business logic interface for feed operations
type FeedService interface {
	// GetFeed returns the parsed feed for url, serving from cache when fresh
	// and falling back to a stale entry when a refresh fails.
	GetFeed(ctx context.Context, url string, forceRefresh bool) (*Podcast, error)

	// ValidateFeedURL reports whether url currently resolves to a parseable feed.
	ValidateFeedURL(ctx context.Context, url string) bool

	// PopularFeeds returns the curated discovery list.
	PopularFeeds() []PopularFeed

	// RefreshAll re-fetches every given feed with bounded concurrency and
	// returns the number refreshed successfully.
	RefreshAll(ctx context.Context, urls []string) (int, error)
}
