package region

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchFromURL_JSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"europe": 0.9, "oceania": 0.92}`))
	}))
	defer srv.Close()

	raw, err := FetchFromURL(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FetchFromURL failed: %v", err)
	}
	if raw["oceania"] != 0.92 {
		t.Errorf("oceania = %.2f, want 0.92", raw["oceania"])
	}
}

func TestFetchFromURL_HTMLTable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><body>
			<table>
				<tr><th>Region</th><th>Multiplier</th></tr>
				<tr><td>North America</td><td>1.0</td></tr>
				<tr><td>europe</td><td>0.9</td></tr>
				<tr><td>no number here</td><td>n/a</td></tr>
			</table>
		</body></html>`))
	}))
	defer srv.Close()

	raw, err := FetchFromURL(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FetchFromURL failed: %v", err)
	}

	// Header row and the unparseable row are skipped
	if len(raw) != 2 {
		t.Fatalf("parsed %d rows, want 2: %v", len(raw), raw)
	}
	if raw["North America"] != 1.0 {
		t.Errorf("North America = %.2f, want 1.0", raw["North America"])
	}

	table := NewTable(raw)
	if got := table.Lookup("north_america"); got != 1.0 {
		t.Errorf("Lookup(north_america) = %.2f, want 1.0 after normalization", got)
	}
}

func TestFetchFromURL_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := FetchFromURL(context.Background(), srv.URL); err == nil {
		t.Error("expected error for HTTP 500")
	}
}

func TestFetchFromURL_EmptyTable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><body><p>no table</p></body></html>`))
	}))
	defer srv.Close()

	if _, err := FetchFromURL(context.Background(), srv.URL); err == nil {
		t.Error("expected error when no region rows are found")
	}
}
