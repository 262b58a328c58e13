// Package render turns a portfolio snapshot into a self-contained HTML
// document.
//
// Rendering is a pure function of (UserData, Settings, Template): the same
// inputs always produce byte-identical output. Three visual variants share
// one document skeleton and one escaping rule; only the CSS and the
// per-repository card markup differ between them.
package render

import (
	"strings"

	"github.com/cemremete/gitfolio/pkg/errors"
	"github.com/cemremete/gitfolio/pkg/portfolio"
)

// Template identifies one of the fixed visual variants.
type Template string

// Supported templates.
const (
	TemplateMinimal  Template = "minimal"
	TemplateDark     Template = "dark"
	TemplateCreative Template = "creative"
)

// Valid reports whether the template is one of the supported variants.
func (t Template) Valid() bool {
	switch t {
	case TemplateMinimal, TemplateDark, TemplateCreative:
		return true
	}
	return false
}

// ParseTemplate validates a template name from user input.
func ParseTemplate(s string) (Template, error) {
	t := Template(s)
	if !t.Valid() {
		return "", errors.New(errors.ErrCodeInvalidTemplate,
			"invalid template: %q (must be one of: minimal, dark, creative)", s)
	}
	return t, nil
}

// style is the per-variant rendering strategy. Each variant supplies its own
// CSS and card markup; the document skeleton, field set, and escaping rules
// are enforced once in the shared layout.
type style interface {
	class() string
	css() string
	repoCard(b *strings.Builder, r repoView)
}

// Render produces the full HTML document for a snapshot.
// It fails with NO_DATA when no snapshot is supplied and INVALID_TEMPLATE
// for unknown variants; missing optional fields never cause an error.
func Render(data *portfolio.UserData, settings portfolio.Settings, tmpl Template) (string, error) {
	if data == nil {
		return "", errors.New(errors.ErrCodeNoData, "no portfolio data loaded")
	}

	var s style
	switch tmpl {
	case TemplateMinimal:
		s = minimalStyle{}
	case TemplateDark:
		s = darkStyle{}
	case TemplateCreative:
		s = creativeStyle{}
	default:
		return "", errors.New(errors.ErrCodeInvalidTemplate, "invalid template: %q", string(tmpl))
	}

	repos := prepareRepos(data.Repos, settings)
	featured, rest := splitFeatured(repos, settings)

	return buildDocument(data, settings, s, featured, rest), nil
}
