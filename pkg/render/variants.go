package render

import (
	"fmt"
	"strings"
)

// minimalStyle is a light theme with flat bordered cards.
type minimalStyle struct{}

func (minimalStyle) class() string { return string(TemplateMinimal) }

func (minimalStyle) css() string {
	return `
body.minimal { background: #fafafa; color: #1f2937; }
body.minimal .card { background: #fff; border: 1px solid #e5e7eb; }
body.minimal .card:hover { border-color: var(--primary); }
`
}

func (minimalStyle) repoCard(b *strings.Builder, v repoView) {
	b.WriteString("<article class=\"card\">\n")
	writeCardTitle(b, v)
	writeCardDescription(b, v)
	writeCardExcerpt(b, v)
	writeCardLanguages(b, v)
	writeCardMeta(b, v)
	writeCardTopics(b, v)
	b.WriteString("</article>\n")
}

// darkStyle uses a dark background with subtle elevation on cards.
type darkStyle struct{}

func (darkStyle) class() string { return string(TemplateDark) }

func (darkStyle) css() string {
	return `
body.dark { background: #0f172a; color: #e2e8f0; }
body.dark .card { background: #1e293b; border: 1px solid #334155; box-shadow: 0 4px 12px rgba(0,0,0,0.4); }
body.dark .card:hover { border-color: var(--accent); transform: translateY(-2px); transition: all 0.2s; }
body.dark .desc { color: #94a3b8; }
`
}

func (darkStyle) repoCard(b *strings.Builder, v repoView) {
	b.WriteString("<article class=\"card\">\n")
	writeCardTitle(b, v)
	writeCardDescription(b, v)
	writeCardExcerpt(b, v)
	writeCardLanguages(b, v)
	writeCardMeta(b, v)
	writeCardTopics(b, v)
	b.WriteString("</article>\n")
}

// creativeStyle adds a gradient banner per card. The gradient is derived
// from the repository name so rebuilds produce identical output.
type creativeStyle struct{}

func (creativeStyle) class() string { return string(TemplateCreative) }

func (creativeStyle) css() string {
	return `
body.creative { background: linear-gradient(180deg, #1e1b4b 0%, #0f172a 100%); color: #e2e8f0; }
body.creative .card { background: rgba(255,255,255,0.05); border: 1px solid rgba(255,255,255,0.1); backdrop-filter: blur(8px); overflow: hidden; padding-top: 0; }
body.creative .banner { height: 6px; margin: 0 -20px 16px; }
body.creative .card:hover { border-color: var(--accent); }
body.creative .desc { color: #cbd5e1; }
`
}

func (creativeStyle) repoCard(b *strings.Builder, v repoView) {
	b.WriteString("<article class=\"card\">\n")
	fmt.Fprintf(b, "<div class=\"banner\" style=\"background:%s\"></div>\n", v.Gradient)
	writeCardTitle(b, v)
	writeCardDescription(b, v)
	writeCardExcerpt(b, v)
	writeCardLanguages(b, v)
	writeCardMeta(b, v)
	writeCardTopics(b, v)
	b.WriteString("</article>\n")
}
