// Package seo derives search metadata from a portfolio snapshot and splices
// it into rendered documents. Generation is pure; only injection logs.
package seo

import (
	"encoding/json"
	"fmt"
	"html"
	"io"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/cemremete/gitfolio/pkg/portfolio"
)

const (
	// maxDescription is the character cap for the meta description.
	// Longer descriptions get truncated by search engines anyway.
	maxDescription = 155

	// maxKeywords caps the keyword list.
	maxKeywords = 10

	// maxSkills caps the skill list in the structured-data document.
	maxSkills = 15
)

// Generator derives SEO metadata from a snapshot and settings.
type Generator struct {
	logger *log.Logger
}

// NewGenerator creates a Generator. A nil logger discards output.
func NewGenerator(logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Generator{logger: logger}
}

// Description builds the meta description, capped at 155 characters.
func (g *Generator) Description(data *portfolio.UserData, settings portfolio.Settings) string {
	name := displayName(data)
	bio := data.UserInfo.Bio
	if settings.Bio != "" {
		bio = settings.Bio
	}

	desc := fmt.Sprintf("%s's developer portfolio with %d public projects.", name, len(data.Repos))
	if bio != "" {
		desc = fmt.Sprintf("%s - %s. %d public projects.", name, bio, len(data.Repos))
	}
	if len(desc) > maxDescription {
		cut := maxDescription - 3
		for cut > 0 && !utf8.RuneStart(desc[cut]) {
			cut--
		}
		desc = desc[:cut] + "..."
	}
	return desc
}

// Keywords builds the keyword list from repository names and aggregated
// languages, capped at 10 entries.
func (g *Generator) Keywords(data *portfolio.UserData) []string {
	keywords := make([]string, 0, maxKeywords)
	seen := make(map[string]bool)

	add := func(k string) {
		if k == "" || seen[k] || len(keywords) >= maxKeywords {
			return
		}
		seen[k] = true
		keywords = append(keywords, k)
	}

	for _, r := range data.Repos {
		add(r.Name)
	}
	for _, l := range aggregateLanguages(data) {
		add(l)
	}
	return keywords
}

// MetaTags renders the head metadata block: description, keywords, and Open
// Graph tags.
func (g *Generator) MetaTags(data *portfolio.UserData, settings portfolio.Settings) string {
	name := displayName(data)
	desc := g.Description(data, settings)
	title := fmt.Sprintf("%s | Developer Portfolio", name)

	var b strings.Builder
	fmt.Fprintf(&b, "<meta name=\"description\" content=\"%s\">\n", html.EscapeString(desc))
	if kw := g.Keywords(data); len(kw) > 0 {
		fmt.Fprintf(&b, "<meta name=\"keywords\" content=\"%s\">\n", html.EscapeString(strings.Join(kw, ", ")))
	}
	fmt.Fprintf(&b, "<meta property=\"og:type\" content=\"website\">\n")
	fmt.Fprintf(&b, "<meta property=\"og:title\" content=\"%s\">\n", html.EscapeString(title))
	fmt.Fprintf(&b, "<meta property=\"og:description\" content=\"%s\">\n", html.EscapeString(desc))
	if data.UserInfo.AvatarURL != "" {
		fmt.Fprintf(&b, "<meta property=\"og:image\" content=\"%s\">\n", html.EscapeString(data.UserInfo.AvatarURL))
	}
	fmt.Fprintf(&b, "<meta property=\"og:url\" content=\"%s\">\n", html.EscapeString(data.UserInfo.HTMLURL))
	fmt.Fprintf(&b, "<meta name=\"twitter:card\" content=\"summary\">\n")
	return b.String()
}

// jsonLDPerson is the schema.org Person document.
type jsonLDPerson struct {
	Context  string   `json:"@context"`
	Type     string   `json:"@type"`
	Name     string   `json:"name"`
	URL      string   `json:"url"`
	Image    string   `json:"image,omitempty"`
	Desc     string   `json:"description,omitempty"`
	Skills   []string `json:"knowsAbout,omitempty"`
	SameAs   []string `json:"sameAs,omitempty"`
	Location string   `json:"homeLocation,omitempty"`
	Email    string   `json:"email,omitempty"`
}

// JSONLD renders the structured-data script block summarizing identity,
// skills, and contact fields.
func (g *Generator) JSONLD(data *portfolio.UserData, settings portfolio.Settings) string {
	skills := aggregateLanguages(data)
	if len(skills) > maxSkills {
		skills = skills[:maxSkills]
	}

	var sameAs []string
	if settings.LinkedIn != "" {
		sameAs = append(sameAs, settings.LinkedIn)
	}
	if settings.Twitter != "" {
		sameAs = append(sameAs, settings.Twitter)
	}

	bio := data.UserInfo.Bio
	if settings.Bio != "" {
		bio = settings.Bio
	}

	person := jsonLDPerson{
		Context:  "https://schema.org",
		Type:     "Person",
		Name:     displayName(data),
		URL:      data.UserInfo.HTMLURL,
		Image:    data.UserInfo.AvatarURL,
		Desc:     bio,
		Skills:   skills,
		SameAs:   sameAs,
		Location: data.UserInfo.Location,
		Email:    settings.Email,
	}

	raw, err := json.MarshalIndent(person, "", "  ")
	if err != nil {
		// Marshal of a plain struct cannot fail; keep the fallback anyway.
		return ""
	}
	return fmt.Sprintf("<script type=\"application/ld+json\">\n%s\n</script>\n", raw)
}

// Sitemap renders a single-URL sitemap for the given site URL, dated today.
func (g *Generator) Sitemap(siteURL string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url>
    <loc>%s</loc>
    <lastmod>%s</lastmod>
    <changefreq>weekly</changefreq>
    <priority>1.0</priority>
  </url>
</urlset>
`, html.EscapeString(siteURL), time.Now().Format("2006-01-02"))
}

// Robots renders the static crawler policy.
func (g *Generator) Robots() string {
	return "User-agent: *\nAllow: /\n"
}

// InjectIntoHTML splices metadata before the first </head> and structured
// data before the first </body>. A missing marker skips that injection with
// a warning; injection never fails.
func (g *Generator) InjectIntoHTML(doc string, data *portfolio.UserData, settings portfolio.Settings) string {
	if i := strings.Index(doc, "</head>"); i >= 0 {
		doc = doc[:i] + g.MetaTags(data, settings) + doc[i:]
	} else {
		g.logger.Warn("document has no </head> marker, skipping metadata injection")
	}

	if i := strings.Index(doc, "</body>"); i >= 0 {
		doc = doc[:i] + g.JSONLD(data, settings) + doc[i:]
	} else {
		g.logger.Warn("document has no </body> marker, skipping structured data injection")
	}
	return doc
}

func displayName(data *portfolio.UserData) string {
	if data.UserInfo.Name != "" {
		return data.UserInfo.Name
	}
	return data.Username
}

// aggregateLanguages collects every language across enriched repositories,
// ordered by total byte count descending with name ascending on ties so the
// result is deterministic.
func aggregateLanguages(data *portfolio.UserData) []string {
	totals := make(map[string]int)
	for _, r := range data.Repos {
		for lang, bytes := range r.Languages {
			totals[lang] += bytes
		}
	}
	if len(totals) == 0 {
		return nil
	}

	langs := make([]string, 0, len(totals))
	for lang := range totals {
		langs = append(langs, lang)
	}
	sort.Slice(langs, func(i, j int) bool {
		if totals[langs[i]] != totals[langs[j]] {
			return totals[langs[i]] > totals[langs[j]]
		}
		return langs[i] < langs[j]
	})
	return langs
}
