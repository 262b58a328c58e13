package portfolio

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cemremete/gitfolio/pkg/cache"
	"github.com/cemremete/gitfolio/pkg/errors"
	"github.com/cemremete/gitfolio/pkg/github"
)

// apiServer fakes the four GitHub endpoints the aggregator touches and
// counts every request it receives.
func apiServer(t *testing.T, repoCount int, requests *atomic.Int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		path := r.URL.Path

		switch {
		case path == "/users/octocat":
			json.NewEncoder(w).Encode(github.User{Login: "octocat", Name: "The Octocat"})

		case path == "/users/octocat/repos":
			page, _ := strconv.Atoi(r.URL.Query().Get("page"))
			start, end := (page-1)*100, page*100
			if start > repoCount {
				start = repoCount
			}
			if end > repoCount {
				end = repoCount
			}
			repos := make([]map[string]any, 0, end-start)
			for i := start; i < end; i++ {
				repos = append(repos, map[string]any{
					"name":             fmt.Sprintf("repo-%02d", i),
					"stargazers_count": repoCount - i,
					"updated_at":       time.Now().Add(-time.Duration(i) * time.Hour).Format(time.RFC3339),
				})
			}
			json.NewEncoder(w).Encode(repos)

		case strings.HasSuffix(path, "/languages"):
			json.NewEncoder(w).Encode(map[string]int{"Go": 1000})

		case strings.HasSuffix(path, "/readme"):
			content := base64.StdEncoding.EncodeToString([]byte("A useful project.\n"))
			json.NewEncoder(w).Encode(map[string]string{"content": content, "encoding": "base64"})

		default:
			http.NotFound(w, r)
		}
	}))
}

func testAggregator(t *testing.T, url string, withCache bool) *Aggregator {
	t.Helper()
	client := github.NewClient(github.WithBaseURL(url), github.WithPageDelay(0))

	var store *SnapshotStore
	if withCache {
		fc, err := cache.NewFileCache(t.TempDir())
		if err != nil {
			t.Fatal(err)
		}
		store = NewSnapshotStore(fc, nil)
	}

	a := NewAggregator(client, store, nil)
	a.enrichDelay = 0
	return a
}

func TestFetchUserData(t *testing.T) {
	var requests atomic.Int64
	server := apiServer(t, 10, &requests)
	defer server.Close()

	a := testAggregator(t, server.URL, false)

	var messages []string
	ud, cached, err := a.FetchUserData(context.Background(), "octocat", func(msg string) {
		messages = append(messages, msg)
	})
	if err != nil {
		t.Fatalf("FetchUserData: %v", err)
	}
	if cached {
		t.Error("fresh fetch reported as cached")
	}

	if ud.Username != "octocat" || ud.UserInfo.Name != "The Octocat" {
		t.Errorf("unexpected identity: %+v", ud.UserInfo)
	}
	if len(ud.Repos) != 10 {
		t.Fatalf("got %d repos, want 10", len(ud.Repos))
	}
	if ud.LastFetch.IsZero() {
		t.Error("LastFetch should be set")
	}
	if len(messages) == 0 {
		t.Error("progress callback should fire")
	}

	// All 10 repos get languages; the first 6 also get readme excerpts.
	for i, r := range ud.Repos {
		if r.Languages == nil {
			t.Errorf("repo %d missing language data", i)
		}
		if i < readmeEnrichLimit && r.ReadmeExcerpt == nil {
			t.Errorf("repo %d missing readme excerpt", i)
		}
		if i >= readmeEnrichLimit && r.ReadmeExcerpt != nil {
			t.Errorf("repo %d should not have a readme excerpt", i)
		}
	}
}

func TestFetchUserDataEnrichmentBounds(t *testing.T) {
	var requests atomic.Int64
	server := apiServer(t, 25, &requests)
	defer server.Close()

	a := testAggregator(t, server.URL, false)
	ud, _, err := a.FetchUserData(context.Background(), "octocat", nil)
	if err != nil {
		t.Fatalf("FetchUserData: %v", err)
	}

	for i, r := range ud.Repos {
		if i < languageEnrichLimit && r.Languages == nil {
			t.Errorf("repo %d should be enriched with languages", i)
		}
		if i >= languageEnrichLimit && r.Languages != nil {
			t.Errorf("repo %d is beyond the enrichment bound", i)
		}
	}

	// 1 identity + 1 page + 20 languages + 6 readmes
	if got := requests.Load(); got != 28 {
		t.Errorf("issued %d requests, want 28", got)
	}
}

func TestFetchUserDataCacheHit(t *testing.T) {
	var requests atomic.Int64
	server := apiServer(t, 5, &requests)
	defer server.Close()

	a := testAggregator(t, server.URL, true)
	ctx := context.Background()

	first, cached, err := a.FetchUserData(ctx, "octocat", nil)
	if err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	if cached {
		t.Error("first fetch reported as cached")
	}
	afterFirst := requests.Load()

	var messages []string
	second, cached, err := a.FetchUserData(ctx, "octocat", func(msg string) {
		messages = append(messages, msg)
	})
	if err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if !cached {
		t.Error("second fetch within TTL should report the snapshot as cached")
	}

	if requests.Load() != afterFirst {
		t.Errorf("second fetch within TTL should issue no remote calls, saw %d extra", requests.Load()-afterFirst)
	}
	if second.Username != first.Username || len(second.Repos) != len(first.Repos) ||
		!second.LastFetch.Equal(first.LastFetch) {
		t.Error("cached snapshot should be identical to the first")
	}
	if len(messages) != 1 || messages[0] != "using cached data" {
		t.Errorf("cache hit should be reported via progress, got %v", messages)
	}
}

func TestFetchUserDataNoPublicRepos(t *testing.T) {
	var requests atomic.Int64
	server := apiServer(t, 0, &requests)
	defer server.Close()

	a := testAggregator(t, server.URL, false)
	_, _, err := a.FetchUserData(context.Background(), "octocat", nil)
	if !errors.Is(err, errors.ErrCodeNoPublicRepos) {
		t.Fatalf("expected NO_PUBLIC_REPOS, got %v", err)
	}
}

func TestFetchUserDataUnknownUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	a := testAggregator(t, server.URL, false)
	_, _, err := a.FetchUserData(context.Background(), "ghost", nil)
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}
