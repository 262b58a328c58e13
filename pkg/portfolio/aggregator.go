package portfolio

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/cemremete/gitfolio/pkg/errors"
	"github.com/cemremete/gitfolio/pkg/github"
)

// Enrichment bounds. Only a prefix of the repository list (in the
// most-recently-updated order the listing API returns) is enriched; this is
// a cost/latency trade-off against the small anonymous quota, not a
// completeness guarantee.
const (
	languageEnrichLimit = 20
	readmeEnrichLimit   = 6
)

// defaultEnrichDelay paces sequential enrichment calls.
const defaultEnrichDelay = 50 * time.Millisecond

// Aggregator orchestrates snapshot cache, pagination, and enrichment into
// one UserData snapshot. All of its requests run strictly sequentially; only
// one FetchUserData call should be in flight at a time, since concurrent
// invocations would double-count against the quota and interleave progress
// reporting. Callers with multiple triggers must serialize at the boundary.
type Aggregator struct {
	client    *github.Client
	snapshots *SnapshotStore
	logger    *log.Logger

	// enrichDelay paces enrichment calls; tests zero it.
	enrichDelay time.Duration
}

// NewAggregator creates an aggregator.
// A nil snapshots store disables caching; a nil logger discards log output.
func NewAggregator(client *github.Client, snapshots *SnapshotStore, logger *log.Logger) *Aggregator {
	if snapshots == nil {
		snapshots = NewSnapshotStore(nil, nil)
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Aggregator{
		client:      client,
		snapshots:   snapshots,
		logger:      logger,
		enrichDelay: defaultEnrichDelay,
	}
}

// FetchUserData produces a complete snapshot for username.
//
// A fresh cached snapshot short-circuits everything below it. Otherwise the
// aggregator fetches identity, the full repository list, and bounded
// enrichment, then stores and returns the assembled snapshot.
//
// progress, when non-nil, receives human-readable status lines; it is
// best-effort and never affects results. The second return reports whether
// the snapshot came from the cache rather than a fresh fetch.
func (a *Aggregator) FetchUserData(ctx context.Context, username string, progress func(string)) (*UserData, bool, error) {
	report := func(msg string) {
		if progress != nil {
			progress(msg)
		}
	}

	if cached, ok := a.snapshots.Load(ctx, username); ok {
		a.logger.Debug("snapshot cache hit", "username", username)
		report("using cached data")
		return cached, true, nil
	}

	report("fetching profile")
	user, err := a.client.FetchUser(ctx, username)
	if err != nil {
		return nil, false, err
	}

	repos, err := a.client.FetchAllRepos(ctx, username, func(count int) {
		report(fmt.Sprintf("fetched %d repositories", count))
	})
	if err != nil {
		return nil, false, err
	}
	if len(repos) == 0 {
		return nil, false, errors.New(errors.ErrCodeNoPublicRepos, "user %s has no public repositories", username)
	}

	if err := a.enrich(ctx, username, repos, report); err != nil {
		return nil, false, err
	}

	ud := &UserData{
		Username:  username,
		UserInfo:  *user,
		Repos:     repos,
		LastFetch: time.Now(),
	}
	a.snapshots.Store(ctx, ud)

	a.logger.Info("aggregated user data",
		"username", username,
		"repos", len(repos),
		"quota_remaining", a.client.Limiter().Remaining())
	return ud, false, nil
}

// enrich populates language data for the first languageEnrichLimit repos and
// readme excerpts for the first readmeEnrichLimit of those, in list order.
// Per-repository failures degrade to empty/absent values inside the client
// and never abort the fetch.
func (a *Aggregator) enrich(ctx context.Context, username string, repos []github.Repo, report func(string)) error {
	limit := min(languageEnrichLimit, len(repos))
	for i := 0; i < limit; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		report(fmt.Sprintf("enriching %s (%d/%d)", repos[i].Name, i+1, limit))

		repos[i].Languages = a.client.FetchLanguages(ctx, username, repos[i].Name)

		if i < readmeEnrichLimit {
			if excerpt, ok := a.client.FetchReadme(ctx, username, repos[i].Name); ok {
				repos[i].ReadmeExcerpt = &excerpt
			}
		}

		if i < limit-1 {
			if err := sleepCtx(ctx, a.enrichDelay); err != nil {
				return err
			}
		}
	}
	return nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
