// Package export turns a portfolio snapshot into the final downloadable
// document: rendered HTML with SEO metadata and the user's color choices
// applied, plus preview handles and artifact helpers.
package export

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/cemremete/gitfolio/pkg/errors"
	"github.com/cemremete/gitfolio/pkg/portfolio"
	"github.com/cemremete/gitfolio/pkg/render"
	"github.com/cemremete/gitfolio/pkg/seo"
)

// Exporter composes rendering, SEO injection, and color customization into
// one artifact. Set a snapshot before calling Build.
type Exporter struct {
	data     *portfolio.UserData
	settings portfolio.Settings
	template render.Template
	seo      *seo.Generator
	logger   *log.Logger
}

// New creates an Exporter with default settings and the minimal template.
// A nil logger discards output.
func New(logger *log.Logger) *Exporter {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Exporter{
		settings: portfolio.DefaultSettings(),
		template: render.TemplateMinimal,
		seo:      seo.NewGenerator(logger),
		logger:   logger,
	}
}

// SetData sets the snapshot to export.
func (e *Exporter) SetData(data *portfolio.UserData) { e.data = data }

// SetSettings replaces the export settings.
func (e *Exporter) SetSettings(s portfolio.Settings) { e.settings = s }

// SetTemplate selects the render variant.
func (e *Exporter) SetTemplate(t render.Template) { e.template = t }

// Build produces the final document: render, inject SEO metadata, then bind
// the user's colors. Fails with NO_DATA when no snapshot is set.
func (e *Exporter) Build() (string, error) {
	if e.data == nil {
		return "", errors.New(errors.ErrCodeNoData, "no portfolio data to export")
	}

	doc, err := render.Render(e.data, e.settings, e.template)
	if err != nil {
		return "", err
	}

	doc = e.seo.InjectIntoHTML(doc, e.data, e.settings)
	doc = injectColors(doc, e.settings)

	e.logger.Debug("export built",
		"template", string(e.template),
		"size", FormatSize(len(doc)))
	return doc, nil
}

// injectColors inserts a variable block immediately after the first <style>
// opening. The rendered CSS consumes --primary and --accent but declares
// neither, so this block is the only declaration and the user's colors bind
// everywhere. Documents without a style block pass through unchanged.
func injectColors(doc string, s portfolio.Settings) string {
	i := strings.Index(doc, "<style>")
	if i < 0 {
		return doc
	}
	insert := i + len("<style>")
	block := fmt.Sprintf("\n:root { --primary: %s; --accent: %s; }", s.PrimaryColor, s.AccentColor)
	return doc[:insert] + block + doc[insert:]
}

// FormatSize renders a byte count as B, KB, or MB.
func FormatSize(n int) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	}
}

// QRCodeURL builds a third-party QR image URL encoding the target, sized in
// pixels. It is the only non-inline resource an export may reference.
func QRCodeURL(size int, target string) string {
	return fmt.Sprintf("https://api.qrserver.com/v1/create-qr-code/?size=%dx%d&data=%s",
		size, size, url.QueryEscape(target))
}
