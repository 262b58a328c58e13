package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/cemremete/gitfolio/pkg/github"
	"github.com/cemremete/gitfolio/pkg/portfolio"
)

// esc escapes user-supplied and fetched text before interpolation. Every
// string that reaches the document goes through here exactly once.
func esc(s string) string {
	return html.EscapeString(s)
}

// fontLink is the only external resource a rendered document references
// besides an optional QR image; everything else is inlined.
const fontLink = `<link href="https://fonts.googleapis.com/css2?family=Inter:wght@400;600;700&display=swap" rel="stylesheet">`

// buildDocument assembles the shared document skeleton around a variant.
// The skeleton owns the field set and all escaping; variants only control
// CSS and card markup.
func buildDocument(data *portfolio.UserData, settings portfolio.Settings, s style, featured, rest []github.Repo) string {
	var b strings.Builder

	name := data.UserInfo.Name
	if name == "" {
		name = data.Username
	}

	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"UTF-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	fmt.Fprintf(&b, "<title>%s | Developer Portfolio</title>\n", esc(name))
	b.WriteString(fontLink + "\n")
	b.WriteString("<style>\n")
	b.WriteString(baseCSS)
	b.WriteString(s.css())
	b.WriteString("</style>\n</head>\n")
	fmt.Fprintf(&b, "<body class=\"%s\">\n", s.class())

	renderHeader(&b, data, settings)

	if len(featured) > 0 {
		b.WriteString("<section class=\"featured\">\n<h2>Featured</h2>\n<div class=\"grid\">\n")
		for _, r := range featured {
			s.repoCard(&b, makeView(r, Template(s.class())))
		}
		b.WriteString("</div>\n</section>\n")
	}

	if len(rest) > 0 {
		b.WriteString("<section class=\"projects\">\n<h2>All Projects</h2>\n<div class=\"grid\">\n")
		for _, r := range rest {
			s.repoCard(&b, makeView(r, Template(s.class())))
		}
		b.WriteString("</div>\n</section>\n")
	}

	fmt.Fprintf(&b, "<footer><a href=\"%s\">github.com/%s</a></footer>\n",
		esc(data.UserInfo.HTMLURL), esc(data.Username))
	b.WriteString("</body>\n</html>\n")

	return b.String()
}

// renderHeader writes the identity block: avatar, name, bio, location, and
// optional contact links. The settings bio overrides the fetched one.
func renderHeader(b *strings.Builder, data *portfolio.UserData, settings portfolio.Settings) {
	name := data.UserInfo.Name
	if name == "" {
		name = data.Username
	}
	bio := data.UserInfo.Bio
	if settings.Bio != "" {
		bio = settings.Bio
	}

	b.WriteString("<header>\n")
	if data.UserInfo.AvatarURL != "" {
		fmt.Fprintf(b, "<img class=\"avatar\" src=\"%s\" alt=\"%s\">\n",
			esc(data.UserInfo.AvatarURL), esc(name))
	}
	fmt.Fprintf(b, "<h1>%s</h1>\n", esc(name))
	if bio != "" {
		fmt.Fprintf(b, "<p class=\"bio\">%s</p>\n", esc(bio))
	}
	if data.UserInfo.Location != "" {
		fmt.Fprintf(b, "<p class=\"location\">%s</p>\n", esc(data.UserInfo.Location))
	}

	links := contactLinks(settings)
	if len(links) > 0 {
		b.WriteString("<nav class=\"contact\">\n")
		for _, l := range links {
			fmt.Fprintf(b, "<a href=\"%s\">%s</a>\n", esc(l.href), esc(l.label))
		}
		b.WriteString("</nav>\n")
	}
	b.WriteString("</header>\n")
}

type contactLink struct {
	label string
	href  string
}

func contactLinks(s portfolio.Settings) []contactLink {
	var links []contactLink
	if s.LinkedIn != "" {
		links = append(links, contactLink{"LinkedIn", s.LinkedIn})
	}
	if s.Twitter != "" {
		links = append(links, contactLink{"Twitter", s.Twitter})
	}
	if s.Email != "" {
		links = append(links, contactLink{"Email", "mailto:" + s.Email})
	}
	return links
}

// Shared card fragments. Variants call these so the escaping rules and the
// supported field set live in one place.

func writeCardTitle(b *strings.Builder, v repoView) {
	fmt.Fprintf(b, "<h3><a href=\"%s\">%s</a></h3>\n", esc(v.URL), esc(v.Name))
}

func writeCardDescription(b *strings.Builder, v repoView) {
	fmt.Fprintf(b, "<p class=\"desc\">%s</p>\n", esc(v.Desc))
}

func writeCardExcerpt(b *strings.Builder, v repoView) {
	if v.Excerpt != "" {
		fmt.Fprintf(b, "<p class=\"excerpt\">%s</p>\n", esc(v.Excerpt))
	}
}

func writeCardLanguages(b *strings.Builder, v repoView) {
	if len(v.Languages) == 0 {
		return
	}
	b.WriteString("<div class=\"languages\">\n")
	for _, l := range v.Languages {
		fmt.Fprintf(b, "<span class=\"lang\" style=\"--lang-color:%s\">%s %d%%</span>\n",
			esc(l.Color), esc(l.Name), l.Pct)
	}
	b.WriteString("</div>\n")
}

func writeCardMeta(b *strings.Builder, v repoView) {
	fmt.Fprintf(b, "<div class=\"meta\"><span class=\"stars\">★ %d</span><span class=\"forks\">⑂ %d</span>", v.Stars, v.Forks)
	if v.Homepage != "" {
		fmt.Fprintf(b, "<a class=\"homepage\" href=\"%s\">Website</a>", esc(v.Homepage))
	}
	b.WriteString("</div>\n")
}

func writeCardTopics(b *strings.Builder, v repoView) {
	if len(v.Topics) == 0 {
		return
	}
	b.WriteString("<div class=\"topics\">\n")
	for _, topic := range v.Topics {
		fmt.Fprintf(b, "<span class=\"topic\">%s</span>\n", esc(topic))
	}
	b.WriteString("</div>\n")
}

// baseCSS is shared by all variants. It consumes the --primary and --accent
// variables but never declares them: the export stage injects the single
// :root declaration, so a default here would shadow the user's colors.
const baseCSS = `
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Inter', system-ui, sans-serif; line-height: 1.6; }
header { text-align: center; padding: 60px 20px 40px; }
.avatar { width: 120px; height: 120px; border-radius: 50%; border: 3px solid var(--primary); }
h1 { margin-top: 16px; font-size: 2rem; }
.bio { max-width: 600px; margin: 8px auto 0; }
.location { margin-top: 4px; font-size: 0.9rem; opacity: 0.7; }
.contact { margin-top: 16px; display: flex; gap: 16px; justify-content: center; }
.contact a { color: var(--primary); text-decoration: none; }
section { max-width: 1080px; margin: 0 auto; padding: 20px; }
section h2 { margin-bottom: 16px; border-bottom: 2px solid var(--accent); display: inline-block; }
.grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(300px, 1fr)); gap: 20px; }
.card { border-radius: 12px; padding: 20px; }
.card h3 a { color: var(--primary); text-decoration: none; }
.desc { margin: 8px 0; font-size: 0.95rem; }
.excerpt { margin: 8px 0; font-size: 0.85rem; opacity: 0.8; }
.languages { display: flex; gap: 8px; flex-wrap: wrap; margin: 8px 0; }
.lang { font-size: 0.8rem; padding: 2px 8px; border-radius: 10px; border: 1px solid var(--lang-color); }
.lang::before { content: '●'; color: var(--lang-color); margin-right: 4px; }
.meta { display: flex; gap: 12px; font-size: 0.85rem; margin-top: 8px; }
.meta .homepage { color: var(--accent); }
.topics { display: flex; gap: 6px; flex-wrap: wrap; margin-top: 8px; }
.topic { font-size: 0.75rem; padding: 2px 8px; border-radius: 8px; background: var(--accent); color: #fff; }
footer { text-align: center; padding: 40px 20px; }
footer a { color: var(--primary); }
`
