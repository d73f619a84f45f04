// Package metadata fetches page metadata (title, preview image) for a
// product link so the client can propose autofill values. The core
// never depends on this: whatever the user accepts comes back through
// the normal draft path.
package metadata

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"wishlog/internal/cache"
	"wishlog/internal/core"
)

// maxBodyBytes bounds how much of a page is read before parsing.
const maxBodyBytes = 1 << 20

var ErrInvalidURL = errors.New("invalid metadata url")

// Proposal is the suggested autofill payload. Empty fields mean the
// page carried nothing usable.
type Proposal struct {
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
}

type Fetcher struct {
	client *http.Client
	cache  *cache.LRU[Proposal]
}

func NewFetcher(timeout time.Duration, cacheMax int, cacheTTL time.Duration) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
		cache:  cache.NewLRU[Proposal](cacheMax, cacheTTL),
	}
}

// Fetch retrieves and parses the page behind rawURL. Results are
// cached per URL; parse problems yield an empty proposal rather than
// an error, only transport failures and disallowed URLs report back.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (Proposal, error) {
	if !core.IsAllowedURL(rawURL) {
		return Proposal{}, ErrInvalidURL
	}
	if p, ok := f.cache.Get(rawURL); ok {
		return p, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Proposal{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "text/html")

	resp, err := f.client.Do(req)
	if err != nil {
		return Proposal{}, fmt.Errorf("fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Proposal{}, fmt.Errorf("fetch page: status %d", resp.StatusCode)
	}

	doc, err := html.Parse(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Proposal{}, nil
	}

	p := Proposal{
		Title:    core.SanitizeText(findTitle(doc), core.NameMax),
		ImageURL: previewImage(doc),
	}
	f.cache.Set(rawURL, p)
	return p, nil
}

// CleanCache drops expired cache entries, for periodic housekeeping.
func (f *Fetcher) CleanCache() int { return f.cache.CleanExpired() }

// findTitle prefers og:title, falling back to the <title> text.
func findTitle(doc *html.Node) string {
	if t := metaContent(doc, "og:title"); t != "" {
		return t
	}
	return titleText(doc)
}

func previewImage(doc *html.Node) string {
	img := strings.TrimSpace(metaContent(doc, "og:image"))
	if !core.IsAllowedURL(img) {
		return ""
	}
	return core.SanitizeText(img, core.URLMax)
}

func titleText(n *html.Node) string {
	if n.Type == html.ElementNode && n.DataAtom == atom.Title {
		if n.FirstChild != nil {
			return strings.TrimSpace(n.FirstChild.Data)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := titleText(c); t != "" {
			return t
		}
	}
	return ""
}

func metaContent(n *html.Node, property string) string {
	if n.Type == html.ElementNode && n.DataAtom == atom.Meta {
		var prop, content string
		for _, a := range n.Attr {
			switch a.Key {
			case "property", "name":
				prop = a.Val
			case "content":
				content = a.Val
			}
		}
		if prop == property {
			return strings.TrimSpace(content)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if v := metaContent(c, property); v != "" {
			return v
		}
	}
	return ""
}
