// Package source supplies extraction results to the viewer, either from a
// local results directory or from a remote dembrandt server. Both forms
// present the same two operations: list the available results and fetch one
// artifact body.
package source

import (
	"context"
	"errors"

	"github.com/RolfLobo/dembrandt/internal/artifact"
	"github.com/RolfLobo/dembrandt/internal/catalog"
)

// ErrNotFound reports that the requested artifact does not exist.
var ErrNotFound = errors.New("artifact not found")

// ErrBadName reports a result filename that escapes the results directory
// or is otherwise not a plain file name.
var ErrBadName = errors.New("invalid result name")

// Fetcher retrieves one artifact body by domain and filename.
type Fetcher interface {
	Fetch(ctx context.Context, domain, filename string) (*artifact.Artifact, error)
}

// Source combines listing and fetching.
type Source interface {
	catalog.Lister
	Fetcher
}
