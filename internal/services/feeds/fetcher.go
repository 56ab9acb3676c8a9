package feeds

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dreamecho/feed-api/pkg/config"
)

// maxBodySize bounds how much of a response body the fetcher will read.
const maxBodySize = 10 << 20 // 10 MB

// Fetcher retrieves raw feed text for a URL. It tries an ordered list of
// transport strategies (direct request first, then each configured proxy)
// and short-circuits on the first body recognizable as XML. It keeps no
// state beyond the HTTP client and is safe for concurrent use.
type Fetcher struct {
	client    *http.Client
	proxies   []string
	userAgent string
}

type strategy struct {
	name       string
	requestURL string
}

func NewFetcher(cfg *config.Config) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: cfg.Feeds.Timeout,
		},
		proxies:   cfg.Feeds.Proxies,
		userAgent: cfg.Feeds.UserAgent,
	}
}

// Fetch returns the raw XML text for feedURL, or a *FetchError carrying the
// per-strategy failures once every strategy is exhausted. Cancelling ctx
// aborts the in-flight request and stops the strategy chain.
func (f *Fetcher) Fetch(ctx context.Context, feedURL string) (string, error) {
	var attempts []error

	for _, s := range f.strategies(feedURL) {
		body, err := f.get(ctx, s.requestURL)
		if err != nil {
			attempts = append(attempts, fmt.Errorf("%s: %w", s.name, err))
			if ctx.Err() != nil {
				break
			}
			continue
		}

		text, ok := unwrapBody(body)
		if !ok {
			attempts = append(attempts, fmt.Errorf("%s: body not recognizable as XML", s.name))
			continue
		}
		return text, nil
	}

	return "", &FetchError{URL: feedURL, Attempts: attempts}
}

func (f *Fetcher) strategies(feedURL string) []strategy {
	out := make([]strategy, 0, len(f.proxies)+1)
	out = append(out, strategy{name: "direct", requestURL: feedURL})
	for _, proxy := range f.proxies {
		out = append(out, strategy{
			name:       proxy,
			requestURL: proxy + url.QueryEscape(feedURL),
		})
	}
	return out
}

func (f *Fetcher) get(ctx context.Context, requestURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/rss+xml, application/xml, text/xml, application/json, text/plain, */*")
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("reading body: %w", err)
	}
	return string(body), nil
}

// proxyEnvelope is the JSON wrapper some indirection services return. The
// contents field holds either the XML text itself or a base64 data URI.
type proxyEnvelope struct {
	Contents string `json:"contents"`
	Status   struct {
		HTTPCode int `json:"http_code"`
	} `json:"status"`
}

// unwrapBody reduces a strategy response to feed XML. A JSON envelope is
// unwrapped (decoding a base64 data URI payload if present); any result is
// accepted only when the trimmed text starts with '<'.
func unwrapBody(body string) (string, bool) {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return "", false
	}

	if strings.HasPrefix(trimmed, "{") {
		var envelope proxyEnvelope
		if err := json.Unmarshal([]byte(trimmed), &envelope); err != nil {
			return "", false
		}
		if envelope.Contents == "" {
			return "", false
		}
		contents := envelope.Contents
		if strings.HasPrefix(contents, "data:") {
			decoded, ok := decodeBase64DataURI(contents)
			if !ok {
				return "", false
			}
			contents = decoded
		}
		if looksLikeXML(contents) {
			return contents, true
		}
		return "", false
	}

	if looksLikeXML(trimmed) {
		return body, true
	}
	return "", false
}

// decodeBase64DataURI extracts and decodes the payload of a
// data:...;base64,<payload> URI into a UTF-8 string.
func decodeBase64DataURI(uri string) (string, bool) {
	idx := strings.Index(uri, "base64,")
	if idx < 0 {
		return "", false
	}
	payload := strings.TrimSpace(uri[idx+len("base64,"):])
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", false
	}
	return string(raw), true
}

func looksLikeXML(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), "<")
}

// Timeout exposes the per-strategy request bound, mainly for callers that
// want to size their own deadlines around the full strategy chain.
func (f *Fetcher) Timeout() time.Duration {
	return f.client.Timeout
}
