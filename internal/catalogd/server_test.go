package catalogd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/five82/facet/internal/catalog"
)

func writeDoc(t *testing.T, path string, doc catalog.Document) {
	t.Helper()
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func colors(names ...string) catalog.Document {
	f := catalog.Filter{ID: "color", Name: "Color"}
	for _, n := range names {
		f.Options = append(f.Options, catalog.Option{ID: strings.ToLower(n), Name: n})
	}
	return catalog.Document{FilterItems: []catalog.Filter{f}}
}

func newTestServer(t *testing.T, path string) (*httptest.Server, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	srv := httptest.NewServer(NewServer(path, zerolog.New(&logs)).Handler())
	t.Cleanup(srv.Close)
	return srv, &logs
}

func TestServer_ClientRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filters.json")
	writeDoc(t, path, colors("Red", "Blue"))
	srv, logs := newTestServer(t, path)

	client, err := catalog.NewClient(srv.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	filters, err := client.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if len(filters) != 1 || len(filters[0].Options) != 2 {
		t.Fatalf("Fetch = %#v", filters)
	}
	if !strings.Contains(logs.String(), `"path":"/api/filters"`) {
		t.Fatalf("request not logged: %s", logs.String())
	}
	if !strings.Contains(logs.String(), "facet/") {
		t.Fatalf("user agent not logged: %s", logs.String())
	}
}

func TestServer_ReloadsWhenFileChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filters.json")
	writeDoc(t, path, colors("Red"))
	srv, _ := newTestServer(t, path)

	client, _ := catalog.NewClient(srv.URL)
	if filters, err := client.Fetch(context.Background()); err != nil || len(filters[0].Options) != 1 {
		t.Fatalf("first Fetch = %#v, %v", filters, err)
	}

	writeDoc(t, path, colors("Red", "Blue", "Green"))
	later := time.Now().Add(time.Minute)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatalf("Chtimes: %v", err)
	}

	filters, err := client.Fetch(context.Background())
	if err != nil {
		t.Fatalf("second Fetch returned error: %v", err)
	}
	if len(filters[0].Options) != 3 {
		t.Fatalf("options = %d, want 3 after reload", len(filters[0].Options))
	}
}

func TestServer_GetFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filters.json")
	writeDoc(t, path, colors("Red"))
	srv, _ := newTestServer(t, path)

	resp, err := http.Get(srv.URL + "/api/filters/color")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var f catalog.Filter
	if err := json.NewDecoder(resp.Body).Decode(&f); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if f.Name != "Color" {
		t.Fatalf("filter = %#v", f)
	}

	missing, err := http.Get(srv.URL + "/api/filters/size")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	missing.Body.Close()
	if missing.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", missing.StatusCode)
	}
}

func TestServer_BrokenCatalogIsServerError(t *testing.T) {
	dir := t.TempDir()

	srv, logs := newTestServer(t, filepath.Join(dir, "missing.json"))
	client, _ := catalog.NewClient(srv.URL)
	if _, err := client.Fetch(context.Background()); err == nil || !strings.Contains(err.Error(), "status 500") {
		t.Fatalf("Fetch error = %v, want status 500", err)
	}
	if !strings.Contains(logs.String(), `"level":"error"`) {
		t.Fatalf("error not logged: %s", logs.String())
	}

	invalid := filepath.Join(dir, "invalid.json")
	writeDoc(t, invalid, catalog.Document{FilterItems: []catalog.Filter{{ID: "a"}, {ID: "a"}}})
	srv2, _ := newTestServer(t, invalid)
	client2, _ := catalog.NewClient(srv2.URL)
	if _, err := client2.Fetch(context.Background()); err == nil {
		t.Fatal("Fetch of invalid catalog returned nil error")
	}
}

func TestServer_Health(t *testing.T) {
	srv, _ := newTestServer(t, filepath.Join(t.TempDir(), "unused.json"))

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	post, err := http.Post(srv.URL+"/healthz", "application/json", nil)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	post.Body.Close()
	if post.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("POST status = %d, want 405", post.StatusCode)
	}
}
