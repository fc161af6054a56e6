// Package artifact defines the brand extraction result format and its JSON
// decoding. A result file captures everything the extractor pulled from a
// single site: colour palette, typography, logo, and page metadata.
package artifact

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// KindSite is the default artifact kind when a result file omits one.
const KindSite = "site"

// Swatch is a single palette entry. Share is the fraction of sampled
// pixels attributed to the colour, in [0,1].
type Swatch struct {
	Hex   string  `json:"hex"`
	Role  string  `json:"role,omitempty"`
	Share float64 `json:"share,omitempty"`
}

// FontFamily describes one typeface the extractor observed in use.
type FontFamily struct {
	Name    string `json:"name"`
	Role    string `json:"role,omitempty"`
	Stack   string `json:"stack,omitempty"`
	Weights []int  `json:"weights,omitempty"`
}

// Typography groups the observed font families.
type Typography struct {
	Families []FontFamily `json:"families,omitempty"`
}

// Logo points at the site's primary logo asset.
type Logo struct {
	URL string `json:"url,omitempty"`
	Alt string `json:"alt,omitempty"`
}

// Meta carries page-level metadata captured alongside the brand data.
type Meta struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// Artifact is one decoded brand extraction result.
type Artifact struct {
	Domain     string     `json:"domain"`
	SourceURL  string     `json:"sourceUrl,omitempty"`
	CapturedAt time.Time  `json:"capturedAt"`
	Kind       string     `json:"kind,omitempty"`
	Palette    []Swatch   `json:"palette,omitempty"`
	Typography Typography `json:"typography,omitempty"`
	Logo       Logo       `json:"logo,omitempty"`
	Meta       Meta       `json:"meta,omitempty"`
}

// Decode parses a result file. Domain and capturedAt are required; kind
// defaults to "site" so older extractor output stays readable.
func Decode(data []byte) (*Artifact, error) {
	var art Artifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}
	art.Domain = strings.TrimSpace(art.Domain)
	if art.Domain == "" {
		return nil, fmt.Errorf("decode artifact: missing domain")
	}
	if art.CapturedAt.IsZero() {
		return nil, fmt.Errorf("decode artifact: missing capturedAt")
	}
	if strings.TrimSpace(art.Kind) == "" {
		art.Kind = KindSite
	}
	return &art, nil
}

// Encode renders the artifact back to indented JSON, the same shape the
// extractor writes. Used by the HTTP server and by test fixtures.
func (a *Artifact) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode artifact: %w", err)
	}
	return data, nil
}
