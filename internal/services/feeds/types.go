package feeds

// Podcast is the normalized channel-level result of parsing an RSS 2.0 or
// Atom document. Identity is the feed URL it was fetched from, not anything
// inside the document.
type Podcast struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Link        string    `json:"link"`
	Image       string    `json:"image"`
	Author      string    `json:"author"`
	Language    string    `json:"language"`
	Episodes    []Episode `json:"episodes"`
}

// Episode is a single item/entry of a feed. ID is stable across re-parses of
// the same feed state: guid (or Atom id), else the item link, else a
// positional fallback derived from the channel link.
type Episode struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	PubDate     *int64 `json:"pubDate"` // UNIX seconds, nil when absent or unparseable
	Duration    int    `json:"duration"` // seconds
	AudioURL    string `json:"audioUrl"`
	Image       string `json:"image"`
	Link        string `json:"link"`
}

// PopularFeed is a curated entry for the discovery surface.
type PopularFeed struct {
	Title       string `json:"title"`
	RSSURL      string `json:"rssUrl"`
	Description string `json:"description"`
}
