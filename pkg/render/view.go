package render

import (
	"hash/fnv"
	"math"
	"sort"
	"strings"

	"github.com/cemremete/gitfolio/pkg/github"
	"github.com/cemremete/gitfolio/pkg/portfolio"
)

// topLanguageCount is how many languages a repository card shows.
const topLanguageCount = 3

// noDescription is the placeholder for repositories without a description.
const noDescription = "No description available"

// repoView is the per-repository data a variant renders. All string fields
// are raw; escaping happens at interpolation time in the card markup.
type repoView struct {
	Name      string
	URL       string
	Desc      string
	Homepage  string
	Stars     int
	Forks     int
	Topics    []string
	Excerpt   string
	Languages []langShare
	Gradient  string
}

// langShare is one language's slice of a repository's byte total.
type langShare struct {
	Name  string
	Pct   int
	Color string
}

// prepareRepos applies filtering and sorting per the settings.
//
// FilterStarred is accepted but intentionally has no effect; it is a
// persisted flag whose intended behavior was never wired up, and it is kept
// inert rather than guessed at.
func prepareRepos(repos []github.Repo, s portfolio.Settings) []github.Repo {
	out := make([]github.Repo, 0, len(repos))
	for _, r := range repos {
		if s.FilterNoForks && r.Fork {
			continue
		}
		out = append(out, r)
	}

	switch s.SortBy {
	case portfolio.SortUpdated:
		sort.SliceStable(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	case portfolio.SortName:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	default: // stars
		sort.SliceStable(out, func(i, j int) bool { return out[i].Stars > out[j].Stars })
	}
	return out
}

// splitFeatured selects the featured set and the remaining repositories.
//
// When FeaturedRepos is non-empty, each named repository is resolved against
// the filtered/sorted list preserving the user's chosen order; unresolved
// names are dropped and the set is capped at MaxFeatured. Otherwise the
// first MaxFeatured of the list are featured.
func splitFeatured(repos []github.Repo, s portfolio.Settings) (featured, rest []github.Repo) {
	if len(s.FeaturedRepos) == 0 {
		if len(repos) <= portfolio.MaxFeatured {
			return repos, nil
		}
		return repos[:portfolio.MaxFeatured], repos[portfolio.MaxFeatured:]
	}

	byName := make(map[string]github.Repo, len(repos))
	for _, r := range repos {
		byName[r.Name] = r
	}

	picked := make(map[string]bool, portfolio.MaxFeatured)
	for _, name := range s.FeaturedRepos {
		if len(featured) == portfolio.MaxFeatured {
			break
		}
		if r, ok := byName[name]; ok && !picked[name] {
			featured = append(featured, r)
			picked[name] = true
		}
	}

	for _, r := range repos {
		if !picked[r.Name] {
			rest = append(rest, r)
		}
	}
	return featured, rest
}

// makeView flattens a repository into the fields the variants render.
func makeView(r github.Repo, tmpl Template) repoView {
	v := repoView{
		Name:      r.Name,
		URL:       r.HTMLURL,
		Desc:      r.Description,
		Homepage:  r.Homepage,
		Stars:     r.Stars,
		Forks:     r.Forks,
		Topics:    r.Topics,
		Languages: topLanguages(r.Languages),
	}
	if v.Desc == "" {
		v.Desc = noDescription
	}
	if r.ReadmeExcerpt != nil {
		v.Excerpt = *r.ReadmeExcerpt
	}
	if tmpl == TemplateCreative {
		v.Gradient = gradientFor(r.Name)
	}
	return v
}

// topLanguages returns the top languages by byte count with their rounded
// percentage of the repository's total bytes. Ties break by name so output
// stays deterministic.
func topLanguages(langs map[string]int) []langShare {
	if len(langs) == 0 {
		return nil
	}

	type entry struct {
		name  string
		bytes int
	}
	entries := make([]entry, 0, len(langs))
	total := 0
	for name, bytes := range langs {
		entries = append(entries, entry{name, bytes})
		total += bytes
	}
	if total == 0 {
		return nil
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].bytes != entries[j].bytes {
			return entries[i].bytes > entries[j].bytes
		}
		return entries[i].name < entries[j].name
	})
	if len(entries) > topLanguageCount {
		entries = entries[:topLanguageCount]
	}

	shares := make([]langShare, len(entries))
	for i, e := range entries {
		shares[i] = langShare{
			Name:  e.name,
			Pct:   int(math.Round(float64(e.bytes) / float64(total) * 100)),
			Color: languageColor(e.name),
		}
	}
	return shares
}

// gradientFor deterministically assigns a decorative gradient by hashing the
// repository name into a fixed palette. The same name always maps to the
// same gradient, across renders and across process restarts.
func gradientFor(name string) string {
	h := fnv.New32a()
	h.Write([]byte(name))
	return gradientPalette[h.Sum32()%uint32(len(gradientPalette))]
}
