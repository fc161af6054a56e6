package route

import (
	"testing"

	"github.com/RolfLobo/dembrandt/internal/location"
)

func TestEncode(t *testing.T) {
	cases := []struct {
		name   string
		target Target
		want   string
	}{
		{"home", Home(), ""},
		{"site", Site("example.com"), "/site/example.com"},
		{"site with subdomain", Site("app.example.com"), "/site/app.example.com"},
		{"site with empty domain", Site(""), ""},
	}
	for _, tc := range cases {
		if got := Encode(tc.target); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestDecode(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want Target
	}{
		{"empty", "", Home()},
		{"site", "/site/example.com", Site("example.com")},
		{"trailing slash", "/site/example.com/", Site("example.com")},
		{"surrounding space", "  /site/example.com  ", Site("example.com")},
		{"bare prefix", "/site/", Home()},
		{"prefix only slashes", "/site///", Home()},
		{"garbage", "not-a-route", Home()},
		{"wrong prefix", "/sites/example.com", Home()},
		{"slash only", "/", Home()},
	}
	for _, tc := range cases {
		if got := Decode(tc.raw); got != tc.want {
			t.Fatalf("%s: expected %+v, got %+v", tc.name, tc.want, got)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, target := range []Target{Home(), Site("example.com"), Site("a.b.c.example.org")} {
		if got := Decode(Encode(target)); got != target {
			t.Fatalf("round trip changed %+v into %+v", target, got)
		}
	}
}

func TestCodecCurrent(t *testing.T) {
	store := location.NewMemory("/site/example.com")
	codec := NewCodec(store)
	if got := codec.Current(); got != Site("example.com") {
		t.Fatalf("expected site target, got %+v", got)
	}
	store.Write("mangled::value")
	if got := codec.Current(); got != Home() {
		t.Fatalf("mangled location should decode to home, got %+v", got)
	}
}

func TestCodecWriteAndSubscribe(t *testing.T) {
	store := location.NewMemory("")
	codec := NewCodec(store)

	var seen []Target
	cancel := codec.Subscribe(func(target Target) { seen = append(seen, target) })
	defer cancel()

	codec.Write(Site("example.com"))
	if got := store.Read(); got != "/site/example.com" {
		t.Fatalf("expected encoded site location, got %q", got)
	}
	codec.Write(Home())
	if got := store.Read(); got != "" {
		t.Fatalf("expected empty location for home, got %q", got)
	}

	if len(seen) != 2 || seen[0] != Site("example.com") || seen[1] != Home() {
		t.Fatalf("unexpected decoded notifications: %+v", seen)
	}
}
