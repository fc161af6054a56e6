// Package route maps navigation targets to and from their location string
// form. The grammar is tiny: "" (or anything unparseable) is home,
// "/site/<domain>" is a site view. Decoding never fails; malformed input
// degrades to home.
package route

import "strings"

const sitePrefix = "/site/"

// Kind discriminates navigation targets.
type Kind int

const (
	KindHome Kind = iota
	KindSite
)

// Target is a decoded navigation destination.
type Target struct {
	Kind   Kind
	Domain string
}

// Home returns the home target.
func Home() Target {
	return Target{Kind: KindHome}
}

// Site returns a site target for domain.
func Site(domain string) Target {
	return Target{Kind: KindSite, Domain: domain}
}

// IsSite reports whether t names a site view.
func (t Target) IsSite() bool {
	return t.Kind == KindSite
}

// Encode renders t as a location string. Home encodes to the empty string.
func Encode(t Target) string {
	if t.Kind != KindSite || t.Domain == "" {
		return ""
	}
	return sitePrefix + t.Domain
}

// Decode parses a location string. Unrecognised input, including a bare
// "/site/" with no domain, decodes to home.
func Decode(raw string) Target {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, sitePrefix) {
		return Home()
	}
	domain := strings.Trim(raw[len(sitePrefix):], "/")
	if domain == "" {
		return Home()
	}
	return Site(domain)
}
