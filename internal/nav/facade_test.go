package nav

import (
	"testing"

	"github.com/RolfLobo/dembrandt/internal/catalog"
)

// The catalog fixture lists alpha.dev, beta.io, gamma.org newest-first, so
// Next moves towards older captures and Prev towards newer ones.

func TestStepNextOpensOlderNeighbour(t *testing.T) {
	r := newRig(t)
	r.coord.Apply(runFetch(t, r.coord.OpenEntry(r.entry(t, "beta.io"))))

	cmd := r.facade.Step(catalog.Next)
	if cmd == nil {
		t.Fatalf("expected a fetch command")
	}
	if entry, _ := r.coord.Selection(); entry.Domain != "gamma.org" {
		t.Fatalf("next from beta.io should select gamma.org, got %q", entry.Domain)
	}
}

func TestStepPrevOpensNewerNeighbour(t *testing.T) {
	r := newRig(t)
	r.coord.Apply(runFetch(t, r.coord.OpenEntry(r.entry(t, "beta.io"))))

	r.facade.Step(catalog.Prev)
	if entry, _ := r.coord.Selection(); entry.Domain != "alpha.dev" {
		t.Fatalf("prev from beta.io should select alpha.dev, got %q", entry.Domain)
	}
}

func TestStepWrapsAroundTheCatalog(t *testing.T) {
	r := newRig(t)
	r.coord.Apply(runFetch(t, r.coord.OpenEntry(r.entry(t, "alpha.dev"))))

	seen := []string{}
	for i := 0; i < 3; i++ {
		cmd := r.facade.Step(catalog.Next)
		if cmd == nil {
			t.Fatalf("step %d returned no command", i)
		}
		entry, _ := r.coord.Selection()
		seen = append(seen, entry.Domain)
		r.coord.Apply(runFetch(t, cmd))
	}
	want := []string{"beta.io", "gamma.org", "alpha.dev"}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("step sequence %v, want %v", seen, want)
		}
	}
}

func TestStepOnEmptyCatalogDoesNothing(t *testing.T) {
	r := newRig(t)
	r.cat.Replace(nil)

	if cmd := r.facade.Step(catalog.Next); cmd != nil {
		t.Fatalf("empty catalog should not produce a command")
	}
	if len(r.fetcher.calls) != 0 {
		t.Fatalf("no fetch expected, got %v", r.fetcher.calls)
	}
}

func TestStepWithoutSelectionLandsOnCatalogEdge(t *testing.T) {
	r := newRig(t)

	r.facade.Step(catalog.Next)
	if entry, ok := r.coord.Selection(); !ok || entry.Domain != "alpha.dev" {
		t.Fatalf("next without selection should land on the first entry, got %+v", entry)
	}
}
