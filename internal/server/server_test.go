package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/RolfLobo/dembrandt/internal/logging"
	"github.com/RolfLobo/dembrandt/internal/source"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "dembrandt-server-test")
	if err == nil {
		logging.Configure(filepath.Join(dir, "test.log"))
	}
	code := m.Run()
	if err == nil {
		os.RemoveAll(dir)
	}
	os.Exit(code)
}

func fixtureServer(t *testing.T) *httptest.Server {
	t.Helper()
	dir := t.TempDir()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, domain := range []string{"alpha.dev", "beta.io"} {
		body := fmt.Sprintf(`{"domain":%q,"capturedAt":%q,"palette":[{"hex":"#112233"}]}`,
			domain, base.Add(-time.Duration(i)*time.Hour).Format(time.RFC3339))
		name := filepath.Join(dir, domain+".json")
		if err := os.WriteFile(name, []byte(body), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}
	server := httptest.NewServer(Router(source.NewDir(dir)))
	t.Cleanup(server.Close)
	return server
}

func TestHealth(t *testing.T) {
	server := fixtureServer(t)
	resp, err := http.Get(server.URL + "/api/health")
	if err != nil {
		t.Fatalf("health request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestListResults(t *testing.T) {
	server := fixtureServer(t)
	resp, err := http.Get(server.URL + "/api/results")
	if err != nil {
		t.Fatalf("list request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected JSON content type, got %q", ct)
	}
	var records []source.EntryRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		t.Fatalf("decode listing: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Domain != "alpha.dev" {
		t.Fatalf("expected alpha.dev first (newest), got %q", records[0].Domain)
	}
	if records[0].Filename != "alpha.dev.json" || records[0].ID == "" {
		t.Fatalf("record missing identity fields: %+v", records[0])
	}
}

func TestFetchArtifact(t *testing.T) {
	server := fixtureServer(t)
	resp, err := http.Get(server.URL + "/api/results/alpha.dev/alpha.dev.json")
	if err != nil {
		t.Fatalf("artifact request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var payload struct {
		Domain string `json:"domain"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode artifact: %v", err)
	}
	if payload.Domain != "alpha.dev" {
		t.Fatalf("expected alpha.dev, got %q", payload.Domain)
	}
}

func TestFetchMissingArtifactIs404(t *testing.T) {
	server := fixtureServer(t)
	resp, err := http.Get(server.URL + "/api/results/gamma.org/gamma.json")
	if err != nil {
		t.Fatalf("artifact request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestFetchEscapingFilenameIs400(t *testing.T) {
	server := fixtureServer(t)
	resp, err := http.Get(server.URL + "/api/results/alpha.dev/..")
	if err != nil {
		t.Fatalf("artifact request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestRoundTripThroughClient(t *testing.T) {
	server := fixtureServer(t)
	client := source.NewClient(server.URL)

	entries, err := client.List(context.Background())
	if err != nil {
		t.Fatalf("client list failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	art, err := client.Fetch(context.Background(), entries[0].Domain, entries[0].Filename)
	if err != nil {
		t.Fatalf("client fetch failed: %v", err)
	}
	if art.Domain != entries[0].Domain {
		t.Fatalf("artifact domain %q does not match entry %q", art.Domain, entries[0].Domain)
	}
}
