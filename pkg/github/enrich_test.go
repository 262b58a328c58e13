package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchLanguages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/octocat/hello/languages":
			json.NewEncoder(w).Encode(map[string]int{"Go": 12000, "Makefile": 300})
		case "/repos/octocat/gone/languages":
			http.NotFound(w, r)
		case "/repos/octocat/empty/languages":
			json.NewEncoder(w).Encode(map[string]int{})
		}
	}))
	defer server.Close()

	c := testClient(t, server.URL)
	ctx := context.Background()

	langs := c.FetchLanguages(ctx, "octocat", "hello")
	if langs["Go"] != 12000 || langs["Makefile"] != 300 {
		t.Errorf("unexpected languages: %v", langs)
	}

	// Failures degrade to an empty mapping, never nil, never an error.
	for _, repo := range []string{"gone", "empty"} {
		langs := c.FetchLanguages(ctx, "octocat", repo)
		if langs == nil {
			t.Errorf("FetchLanguages(%s) returned nil map", repo)
		}
		if len(langs) != 0 {
			t.Errorf("FetchLanguages(%s) = %v, want empty", repo, langs)
		}
	}
}

func TestFetchReadme(t *testing.T) {
	readme := "# Project\n\nA tiny tool for tidy portfolios.\n\nMore detail below.\n"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/octocat/hello/readme":
			json.NewEncoder(w).Encode(readmeResponse{
				Content:  base64.StdEncoding.EncodeToString([]byte(readme)),
				Encoding: "base64",
			})
		case "/repos/octocat/mangled/readme":
			json.NewEncoder(w).Encode(readmeResponse{Content: "%%% not base64 %%%", Encoding: "base64"})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	c := testClient(t, server.URL)
	ctx := context.Background()

	excerpt, ok := c.FetchReadme(ctx, "octocat", "hello")
	if !ok {
		t.Fatal("expected readme to be found")
	}
	if excerpt != "A tiny tool for tidy portfolios." {
		t.Errorf("unexpected excerpt: %q", excerpt)
	}

	// Missing readme degrades to absence, not an empty string.
	if _, ok := c.FetchReadme(ctx, "octocat", "none"); ok {
		t.Error("missing readme should report absence")
	}

	// Undecodable content degrades to absence too.
	if _, ok := c.FetchReadme(ctx, "octocat", "mangled"); ok {
		t.Error("mangled readme should report absence")
	}
}
