package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/RolfLobo/dembrandt/internal/artifact"
	"github.com/RolfLobo/dembrandt/internal/catalog"
)

const clientTimeout = 15 * time.Second

// Client reads results from a remote dembrandt server over HTTP.
type Client struct {
	base string
	http *http.Client
}

// NewClient returns a client for the server at base, e.g.
// "http://localhost:8513".
func NewClient(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: clientTimeout},
	}
}

// List fetches the remote listing.
func (c *Client) List(ctx context.Context) ([]catalog.Entry, error) {
	body, err := c.get(ctx, c.base+"/api/results")
	if err != nil {
		return nil, err
	}
	var records []EntryRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("decode listing: %w", err)
	}
	return EntriesFromRecords(records), nil
}

// Fetch retrieves one artifact body from the remote server.
func (c *Client) Fetch(ctx context.Context, domain, filename string) (*artifact.Artifact, error) {
	target := fmt.Sprintf("%s/api/results/%s/%s", c.base, url.PathEscape(domain), url.PathEscape(filename))
	body, err := c.get(ctx, target)
	if err != nil {
		return nil, err
	}
	art, err := artifact.Decode(body)
	if err != nil {
		return nil, fmt.Errorf("fetch %s/%s: %w", domain, filename, err)
	}
	return art, nil
}

func (c *Client) get(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", target, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%s: %w", target, ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("request %s: unexpected status %s", target, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response from %s: %w", target, err)
	}
	return body, nil
}
