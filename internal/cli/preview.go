package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/cemremete/gitfolio/pkg/export"
	"github.com/cemremete/gitfolio/pkg/render"
)

// previewOpts holds the command-line flags for the preview command.
type previewOpts struct {
	fetchOpts
	port     int
	template string
}

// previewCommand creates the preview command.
func (c *CLI) previewCommand() *cobra.Command {
	opts := previewOpts{port: 8080, template: string(render.TemplateMinimal)}

	cmd := &cobra.Command{
		Use:   "preview <username>",
		Short: "Build a portfolio and serve it locally",
		Long: `Preview builds the portfolio and serves it on localhost until
interrupted. Each template variant is available under its own path.

Example:
  gitfolio preview octocat --port 3000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(cmd, args[0], &opts)
		},
	}

	addFetchFlags(cmd, &opts.fetchOpts)
	cmd.Flags().IntVarP(&opts.port, "port", "p", opts.port, "port to serve on")
	cmd.Flags().StringVarP(&opts.template, "template", "t", opts.template, "default template variant")

	return cmd
}

func (c *CLI) runPreview(cmd *cobra.Command, username string, opts *previewOpts) error {
	ctx := cmd.Context()

	defaultTmpl, err := render.ParseTemplate(opts.template)
	if err != nil {
		return err
	}

	data, cached, err := c.fetch(cmd, username, &opts.fetchOpts)
	if err != nil {
		return err
	}

	settings := c.loadSettings()
	registry := export.NewRegistry()
	handles := make(map[render.Template]string, 3)

	// Build every variant up front so switching templates in the browser
	// needs no refetch.
	for _, tmpl := range []render.Template{render.TemplateMinimal, render.TemplateDark, render.TemplateCreative} {
		e := export.New(c.Logger)
		e.SetData(data)
		e.SetSettings(settings)
		e.SetTemplate(tmpl)
		doc, err := e.Build()
		if err != nil {
			return err
		}
		handles[tmpl] = registry.Open(doc)
	}
	defer func() {
		for _, id := range handles {
			registry.Release(id)
		}
	}()

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		serveHandle(w, registry, handles[defaultTmpl])
	})
	r.Get("/{template}", func(w http.ResponseWriter, req *http.Request) {
		tmpl, err := render.ParseTemplate(chi.URLParam(req, "template"))
		if err != nil {
			http.NotFound(w, req)
			return
		}
		serveHandle(w, registry, handles[tmpl])
	})

	addr := fmt.Sprintf("127.0.0.1:%d", opts.port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	printSuccess("Previewing %s", username)
	printKeyValue("URL", "http://"+addr)
	printStats(len(data.Repos), totalStars(data), cached)
	printDetail("Variants: /minimal /dark /creative")
	printDetail("Press Ctrl+C to stop")

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func serveHandle(w http.ResponseWriter, registry *export.Registry, id string) {
	doc, ok := registry.Get(id)
	if !ok {
		http.Error(w, "preview expired", http.StatusGone)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, doc)
}
