package registry

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSearch(t *testing.T) {
	t.Run("decodes a hit with sorted versions", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/nonebot_plugin_weather/json" {
				t.Errorf("path = %q, want /nonebot_plugin_weather/json", r.URL.Path)
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"info": {"name": "nonebot_plugin_weather", "version": "0.2.0", "summary": "Weather lookup"},
				"releases": {"0.1.0": [], "0.10.0": [], "0.2.0": []}
			}`))
		}))
		defer server.Close()

		client := NewClient(server.URL)
		hits, err := client.Search(context.Background(), "weather")
		if err != nil {
			t.Fatalf("Search() error: %v", err)
		}
		if len(hits) != 1 {
			t.Fatalf("hits = %d, want 1", len(hits))
		}

		hit := hits[0]
		if hit.Name != "nonebot_plugin_weather" {
			t.Errorf("Name = %q", hit.Name)
		}
		if hit.Version != "0.2.0" {
			t.Errorf("Version = %q, want 0.2.0", hit.Version)
		}
		if hit.Summary != "Weather lookup" {
			t.Errorf("Summary = %q", hit.Summary)
		}
		wantVersions := []string{"0.10.0", "0.2.0", "0.1.0"}
		for i, v := range wantVersions {
			if hit.Versions[i] != v {
				t.Fatalf("Versions = %v, want %v", hit.Versions, wantVersions)
			}
		}
	})

	t.Run("unknown package yields no hits", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer server.Close()

		client := NewClient(server.URL)
		hits, err := client.Search(context.Background(), "missing")
		if err != nil {
			t.Fatalf("Search() error: %v", err)
		}
		if len(hits) != 0 {
			t.Errorf("hits = %v, want none", hits)
		}
	})

	t.Run("server error is reported", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient(server.URL)
		if _, err := client.Search(context.Background(), "weather"); err == nil {
			t.Fatal("expected error for status 500")
		}
	})
}

func TestSortVersionsDesc(t *testing.T) {
	versions := []string{"0.9.0", "abc", "1.0.0", "0.10.0"}
	SortVersionsDesc(versions)

	want := []string{"1.0.0", "0.10.0", "0.9.0", "abc"}
	for i := range want {
		if versions[i] != want[i] {
			t.Fatalf("sorted = %v, want %v", versions, want)
		}
	}
}

func TestPrintResults(t *testing.T) {
	t.Run("renders a table and count", func(t *testing.T) {
		var out bytes.Buffer
		hits := []Hit{{Name: "nonebot_plugin_foo", Version: "1.2.3", Summary: "Foo things"}}

		if err := PrintResults(&out, hits); err != nil {
			t.Fatalf("PrintResults() error: %v", err)
		}

		got := out.String()
		for _, want := range []string{"NAME", "VERSION", "SUMMARY", "nonebot_plugin_foo", "1.2.3", "Found 1 matching packages."} {
			if !strings.Contains(got, want) {
				t.Errorf("output missing %q:\n%s", want, got)
			}
		}
	})

	t.Run("empty hit list", func(t *testing.T) {
		var out bytes.Buffer
		if err := PrintResults(&out, nil); err != nil {
			t.Fatalf("PrintResults() error: %v", err)
		}
		if !strings.Contains(out.String(), "No matching packages found.") {
			t.Errorf("output = %q", out.String())
		}
	})
}
