package github

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Excerpt extraction bounds. Accumulation stops once the raw paragraph
// exceeds maxAccumulate; the cleaned text is truncated to maxExcerpt.
const (
	maxAccumulate = 300
	maxExcerpt    = 250
)

var (
	markdownLinkRe   = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	markdownBoldRe   = regexp.MustCompile(`\*\*([^*]*)\*\*`)
	markdownItalicRe = regexp.MustCompile(`\*([^*]*)\*`)
	markdownCodeRe   = regexp.MustCompile("`([^`]*)`")
)

// ExtractFirstParagraph pulls a short plain-text excerpt out of readme
// markdown. It is a heuristic, not a markdown parser: the scan, strip, and
// truncate steps run in a fixed order so excerpts are reproducible.
//
// Scan: walk lines top to bottom, skipping blank lines, headings, and
// image/badge lines until real prose starts; then accumulate consecutive
// non-blank lines joined by single spaces, stopping at the first blank line
// after content started or once the accumulated text exceeds 300 characters.
// Strip: unwrap links, bold, italics, and inline code.
// Truncate: cap at 250 characters with a trailing ellipsis.
func ExtractFirstParagraph(content string) string {
	var paragraph strings.Builder
	started := false

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		if !started {
			if trimmed == "" || isSkippableLine(trimmed) {
				continue
			}
			started = true
		} else if trimmed == "" {
			break
		}

		if paragraph.Len() > 0 {
			paragraph.WriteByte(' ')
		}
		paragraph.WriteString(trimmed)

		if paragraph.Len() > maxAccumulate {
			break
		}
	}

	text := stripMarkdown(paragraph.String())
	if len(text) > maxExcerpt {
		text = truncateRunes(text, maxExcerpt) + "..."
	}
	return text
}

// truncateRunes cuts s to at most max bytes without splitting a rune.
func truncateRunes(s string, max int) string {
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}

// isSkippableLine reports whether a leading line carries no prose:
// headings, images, and badge rows.
func isSkippableLine(line string) bool {
	return strings.HasPrefix(line, "#") ||
		strings.HasPrefix(line, "![") ||
		strings.HasPrefix(line, "[![") ||
		strings.HasPrefix(line, "[!")
}

// stripMarkdown unwraps inline markdown syntax, leaving the display text.
func stripMarkdown(s string) string {
	s = markdownLinkRe.ReplaceAllString(s, "$1")
	s = markdownBoldRe.ReplaceAllString(s, "$1")
	s = markdownItalicRe.ReplaceAllString(s, "$1")
	s = markdownCodeRe.ReplaceAllString(s, "$1")
	return s
}
