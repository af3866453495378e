// Package tosho implements the Anime Tosho torrent index client: release
// group discovery and attachment-based subtitle retrieval.
package tosho

import (
	"bytes"
	"fmt"
	"net/url"

	"github.com/Sac-94/AniSubDl/key"
	"github.com/Sac-94/AniSubDl/log"
	"github.com/Sac-94/AniSubDl/network"
	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/viper"
)

// BaseURL is the Anime Tosho site root.
const BaseURL = "https://animetosho.org"

// FetchFunc retrieves a URL and returns the response body and status code.
type FetchFunc func(url string) ([]byte, int, error)

// Client queries the Anime Tosho torrent index.
type Client struct {
	baseURL string
	fetch   FetchFunc
}

// New returns a Client for the live site. Requests go through the
// browser-fingerprint transport since the index sits behind anti-bot
// challenges that reject plain Go clients.
func New() *Client {
	return &Client{baseURL: BaseURL, fetch: network.BrowserGet}
}

// NewWithBase returns a Client bound to an alternative site root and fetch
// implementation.
func NewWithBase(baseURL string, fetch FetchFunc) *Client {
	return &Client{baseURL: baseURL, fetch: fetch}
}

// searchURL builds a search page URL for the given term, appending the
// configured quality tag. When attachments is set, the listing is filtered
// to entries that carry attachment files.
func (c *Client) searchURL(term string, attachments bool) string {
	query := url.QueryEscape(fmt.Sprintf("%s %s", term, viper.GetString(key.SearchQuality)))
	if attachments {
		return fmt.Sprintf("%s/search?disp=attachments&q=%s", c.baseURL, query)
	}
	return fmt.Sprintf("%s/search?q=%s", c.baseURL, query)
}

// document fetches a URL and parses the response as HTML.
// Network and HTTP-status failures are logged and returned as nil documents;
// a non-nil error indicates the page body could not be parsed at all.
func (c *Client) document(pageURL string) (*goquery.Document, error) {
	body, status, err := c.fetch(pageURL)
	if err != nil {
		log.Errorf("fetch %s: %v", pageURL, err)
		fmt.Printf("Error: Could not fetch %s. Reason: %v\n", pageURL, err)
		return nil, nil
	}

	if status < 200 || status >= 300 {
		log.Errorf("fetch %s: status %d", pageURL, status)
		fmt.Printf("Error: Could not fetch %s. Status: %d\n", pageURL, status)
		return nil, nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", pageURL, err)
	}

	return doc, nil
}

// resolveURL makes a possibly relative link absolute against the site root.
func (c *Client) resolveURL(href string) string {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return href
	}

	ref, err := url.Parse(href)
	if err != nil {
		return href
	}

	return base.ResolveReference(ref).String()
}
