package feed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/five82/devicedeck/internal/catalog"
)

const feedPayload = `{
  "lists": [
    {"name": "popular", "products": [
      {"id": "pixel-8", "name": "Google Pixel 8", "price": "₹75,999", "specScore": 88,
       "category": "mobile", "mobile": {"network": "5G", "sim": "Dual SIM"}},
      {"id": "x-fold", "name": "X Fold", "price": "TBA", "specScore": null, "category": "mobile"}
    ]},
    {"name": "laptops", "products": [
      {"id": "zen-14", "name": "Zenbook 14", "price": 96990, "category": "laptop",
       "laptop": {"gpu": "Iris Xe", "weightKg": 1.2, "ports": ["USB-C"]}}
    ]}
  ]
}`

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Host != defaultFeedHost {
		t.Fatalf("host = %q, want %q", u.Host, defaultFeedHost)
	}

	u, err = parseBaseURL("https://feed.example.com:8443/base?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "https" || u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func newFeedServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	return c
}

func TestClient_FetchCatalogDecodesLists(t *testing.T) {
	t.Parallel()

	var gotUserAgent, gotPath string
	c := newFeedServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(feedPayload))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	lists, err := c.FetchCatalog(ctx)
	if err != nil {
		t.Fatalf("FetchCatalog returned error: %v", err)
	}
	if gotPath != catalogPath {
		t.Fatalf("path = %q, want %q", gotPath, catalogPath)
	}
	if gotUserAgent != defaultUserAgent {
		t.Fatalf("User-Agent = %q, want %q", gotUserAgent, defaultUserAgent)
	}
	if len(lists) != 2 || lists[0].Name != "popular" || lists[1].Name != "laptops" {
		t.Fatalf("lists = %+v, want popular and laptops", lists)
	}

	pixel := lists[0].Products[0]
	if pixel.Price != 75999 {
		t.Fatalf("pixel price = %d, want 75999", pixel.Price)
	}
	if !pixel.HasScore() || *pixel.SpecScore != 88 {
		t.Fatalf("pixel score = %v, want 88", pixel.SpecScore)
	}
	if _, ok := pixel.Details.(catalog.MobileSpecs); !ok {
		t.Fatalf("pixel details = %T, want MobileSpecs", pixel.Details)
	}

	fold := lists[0].Products[1]
	if fold.Price != 0 || fold.HasScore() {
		t.Fatalf("fold = %+v, want price 0 and no score", fold)
	}

	zen := lists[1].Products[0]
	if zen.Price != 96990 {
		t.Fatalf("zen price = %d, want 96990", zen.Price)
	}
}

func TestClient_LoadFeedsStore(t *testing.T) {
	t.Parallel()

	c := newFeedServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(feedPayload))
	})

	lists, err := c.Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	store := catalog.NewStore(lists)
	if _, ok := store.Lookup("zen-14"); !ok {
		t.Fatalf("store missing zen-14 after loading from feed")
	}
}

func TestClient_StatusErrors(t *testing.T) {
	t.Parallel()

	c := newFeedServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})

	if _, err := c.FetchCatalog(context.Background()); err == nil {
		t.Fatalf("FetchCatalog returned nil error for 502")
	}
}

func TestClient_InvalidProductFails(t *testing.T) {
	t.Parallel()

	c := newFeedServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"lists":[{"name":"popular","products":[{"id":"","name":"Nameless"}]}]}`))
	})

	_, err := c.FetchCatalog(context.Background())
	if !errors.Is(err, catalog.ErrMissingID) {
		t.Fatalf("FetchCatalog error = %v, want ErrMissingID", err)
	}
}

func TestClient_NilReceiver(t *testing.T) {
	var c *Client
	if _, err := c.FetchCatalog(context.Background()); err == nil {
		t.Fatalf("nil client FetchCatalog returned nil error")
	}
}
