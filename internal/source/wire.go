package source

import (
	"time"

	"github.com/RolfLobo/dembrandt/internal/catalog"
)

// EntryRecord is the wire form of one listing entry, shared by the HTTP
// server and the remote client.
type EntryRecord struct {
	ID         string    `json:"id"`
	Domain     string    `json:"domain"`
	Filename   string    `json:"filename"`
	SourceURL  string    `json:"sourceUrl,omitempty"`
	CapturedAt time.Time `json:"capturedAt"`
	Kind       string    `json:"kind,omitempty"`
}

// RecordsFromEntries converts catalog entries to their wire form.
func RecordsFromEntries(entries []catalog.Entry) []EntryRecord {
	records := make([]EntryRecord, len(entries))
	for i, entry := range entries {
		records[i] = EntryRecord{
			ID:         entry.ID,
			Domain:     entry.Domain,
			Filename:   entry.Filename,
			SourceURL:  entry.SourceURL,
			CapturedAt: entry.CapturedAt,
			Kind:       entry.Kind,
		}
	}
	return records
}

// EntriesFromRecords converts wire records back to catalog entries.
func EntriesFromRecords(records []EntryRecord) []catalog.Entry {
	entries := make([]catalog.Entry, len(records))
	for i, record := range records {
		entries[i] = catalog.Entry{
			ID:         record.ID,
			Domain:     record.Domain,
			Filename:   record.Filename,
			SourceURL:  record.SourceURL,
			CapturedAt: record.CapturedAt,
			Kind:       record.Kind,
		}
	}
	return entries
}
