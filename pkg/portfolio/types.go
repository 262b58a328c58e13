// Package portfolio holds the data model and orchestration for turning a
// GitHub account into a renderable snapshot.
//
// The central type is UserData: identity plus repository list plus
// enrichment, assembled in one aggregation pass. Settings are caller-owned
// configuration persisted independently of any snapshot.
package portfolio

import (
	"time"

	"github.com/cemremete/gitfolio/pkg/github"
)

// SortMode selects the repository ordering used by rendering.
type SortMode string

// Supported sort modes.
const (
	SortStars   SortMode = "stars"
	SortUpdated SortMode = "updated"
	SortName    SortMode = "name"
)

// Valid reports whether the sort mode is one of the supported values.
func (s SortMode) Valid() bool {
	switch s {
	case SortStars, SortUpdated, SortName:
		return true
	}
	return false
}

// MaxFeatured is the cap on explicitly featured repositories.
const MaxFeatured = 6

// UserData is the immutable bundle of identity, repository list, and
// enrichment fetched in one aggregation pass. It is the unit of caching and
// the sole input to rendering. Repos is non-empty on every successful
// aggregation; an empty list is an error condition, not a valid snapshot.
type UserData struct {
	Username  string        `json:"username"`
	UserInfo  github.User   `json:"user_info"`
	Repos     []github.Repo `json:"repos"`
	LastFetch time.Time     `json:"last_fetch"`
}

// Settings is caller-owned render and export configuration. It persists
// independently of UserData.
type Settings struct {
	PrimaryColor string `toml:"primary_color"`
	AccentColor  string `toml:"accent_color"`

	// Bio overrides the fetched profile bio when set.
	Bio string `toml:"bio,omitempty"`

	// Optional contact links.
	LinkedIn string `toml:"linkedin,omitempty"`
	Twitter  string `toml:"twitter,omitempty"`
	Email    string `toml:"email,omitempty"`

	// FilterStarred is accepted and persisted but currently has no effect
	// on filtering. Kept as-is until the intended behavior is confirmed.
	FilterStarred bool `toml:"filter_starred"`

	// FilterNoForks excludes forked repositories from rendering.
	FilterNoForks bool `toml:"filter_no_forks"`

	SortBy SortMode `toml:"sort_by"`

	// FeaturedRepos is an ordered list of up to MaxFeatured repository
	// names, an explicit user choice overriding the default top-N.
	FeaturedRepos []string `toml:"featured_repos,omitempty"`
}

// Default colors for rendered documents.
const (
	DefaultPrimaryColor = "#6366f1"
	DefaultAccentColor  = "#8b5cf6"
)

// DefaultSettings returns the documented defaults.
func DefaultSettings() Settings {
	return Settings{
		PrimaryColor:  DefaultPrimaryColor,
		AccentColor:   DefaultAccentColor,
		FilterNoForks: true,
		SortBy:        SortStars,
	}
}

// Normalize fills in defaults for missing or invalid fields.
func (s *Settings) Normalize() {
	if s.PrimaryColor == "" {
		s.PrimaryColor = DefaultPrimaryColor
	}
	if s.AccentColor == "" {
		s.AccentColor = DefaultAccentColor
	}
	if !s.SortBy.Valid() {
		s.SortBy = SortStars
	}
	if len(s.FeaturedRepos) > MaxFeatured {
		s.FeaturedRepos = s.FeaturedRepos[:MaxFeatured]
	}
}
