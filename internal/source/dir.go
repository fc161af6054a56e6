package source

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/RolfLobo/dembrandt/internal/artifact"
	"github.com/RolfLobo/dembrandt/internal/catalog"
	"github.com/RolfLobo/dembrandt/internal/logging"
)

// Dir reads extraction results from a local directory of *.json files.
// Listing keeps the newest capture per domain and orders entries newest
// first, so the grid shows each site once.
type Dir struct {
	root string
}

// NewDir returns a Dir rooted at root.
func NewDir(root string) *Dir {
	return &Dir{root: root}
}

// Root returns the directory being read.
func (d *Dir) Root() string {
	return d.root
}

// List scans the directory for result files. Files that fail to decode are
// logged and skipped rather than failing the whole listing.
func (d *Dir) List(ctx context.Context) ([]catalog.Entry, error) {
	dirEntries, err := os.ReadDir(d.root)
	if err != nil {
		return nil, fmt.Errorf("list results in %s: %w", d.root, err)
	}

	newest := make(map[string]catalog.Entry)
	for _, de := range dirEntries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if de.IsDir() || !strings.HasSuffix(de.Name(), ".json") {
			continue
		}
		art, err := d.read(de.Name())
		if err != nil {
			logging.Error(fmt.Errorf("skipping %s: %w", de.Name(), err))
			continue
		}
		entry := entryFor(art, de.Name())
		if prev, ok := newest[entry.Domain]; ok && !entry.CapturedAt.After(prev.CapturedAt) {
			continue
		}
		newest[entry.Domain] = entry
	}

	entries := make([]catalog.Entry, 0, len(newest))
	for _, entry := range newest {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].CapturedAt.Equal(entries[j].CapturedAt) {
			return entries[i].CapturedAt.After(entries[j].CapturedAt)
		}
		return entries[i].Domain < entries[j].Domain
	})
	return entries, nil
}

// Fetch reads and decodes one result file. The domain from the file must
// match the requested domain; a mismatch means the directory changed out
// from under a stale listing.
func (d *Dir) Fetch(ctx context.Context, domain, filename string) (*artifact.Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	art, err := d.read(filename)
	if err != nil {
		return nil, err
	}
	if domain != "" && art.Domain != domain {
		return nil, fmt.Errorf("fetch %s: file holds domain %q, expected %q", filename, art.Domain, domain)
	}
	return art, nil
}

func (d *Dir) read(filename string) (*artifact.Artifact, error) {
	if !fs.ValidPath(filename) || strings.ContainsRune(filename, filepath.Separator) || strings.ContainsRune(filename, '/') {
		return nil, fmt.Errorf("%q: %w", filename, ErrBadName)
	}
	data, err := os.ReadFile(filepath.Join(d.root, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", filename, ErrNotFound)
		}
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	art, err := artifact.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return art, nil
}

func entryFor(art *artifact.Artifact, filename string) catalog.Entry {
	return catalog.Entry{
		ID:         strings.TrimSuffix(filename, ".json"),
		Domain:     art.Domain,
		Filename:   filename,
		SourceURL:  art.SourceURL,
		CapturedAt: art.CapturedAt,
		Kind:       art.Kind,
	}
}
