package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cemremete/gitfolio/pkg/errors"
	"github.com/cemremete/gitfolio/pkg/export"
	"github.com/cemremete/gitfolio/pkg/portfolio"
	"github.com/cemremete/gitfolio/pkg/render"
)

// buildOpts holds the command-line flags for the build command.
type buildOpts struct {
	fetchOpts
	output   string // output file path
	template string // template variant
	sortBy   string // sort mode override
	noForks  bool   // exclude forked repositories
	featured string // comma-separated featured repository names
	primary  string // primary color override
	accent   string // accent color override
	save     bool   // persist customization flags to settings
}

// buildCommand creates the build command.
func (c *CLI) buildCommand() *cobra.Command {
	opts := buildOpts{template: string(render.TemplateMinimal)}

	cmd := &cobra.Command{
		Use:   "build <username>",
		Short: "Generate a portfolio HTML file for a GitHub user",
		Long: `Build fetches a GitHub user's public repositories, renders the selected
template variant, injects SEO metadata and custom colors, and writes a
self-contained HTML file.

Examples:
  gitfolio build octocat
  gitfolio build octocat -o site.html --template dark
  gitfolio build octocat --featured linguist,hub --primary "#0ea5e9"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBuild(cmd, args[0], &opts)
		},
	}

	addFetchFlags(cmd, &opts.fetchOpts)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default <username>.html)")
	cmd.Flags().StringVarP(&opts.template, "template", "t", opts.template, "template variant (minimal, dark, creative)")
	cmd.Flags().StringVar(&opts.sortBy, "sort", "", "sort repositories by stars, updated, or name")
	cmd.Flags().BoolVar(&opts.noForks, "no-forks", true, "exclude forked repositories")
	cmd.Flags().StringVar(&opts.featured, "featured", "", "comma-separated featured repository names")
	cmd.Flags().StringVar(&opts.primary, "primary", "", "primary color (hex)")
	cmd.Flags().StringVar(&opts.accent, "accent", "", "accent color (hex)")
	cmd.Flags().BoolVar(&opts.save, "save", false, "persist customization flags to settings")

	return cmd
}

func (c *CLI) runBuild(cmd *cobra.Command, username string, opts *buildOpts) error {
	tmpl, err := render.ParseTemplate(opts.template)
	if err != nil {
		return err
	}

	settings, err := c.applySettings(cmd, opts)
	if err != nil {
		return err
	}

	data, cached, err := c.fetch(cmd, username, &opts.fetchOpts)
	if err != nil {
		return err
	}

	e := export.New(c.Logger)
	e.SetData(data)
	e.SetSettings(settings)
	e.SetTemplate(tmpl)

	doc, err := e.Build()
	if err != nil {
		return err
	}

	out := opts.output
	if out == "" {
		out = username + ".html"
	}
	if err := os.WriteFile(out, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	printSuccess("Built portfolio for %s", username)
	printFile(out)
	printStats(len(data.Repos), totalStars(data), cached)
	printDetail("Size: %s · Template: %s", export.FormatSize(len(doc)), tmpl)
	printNextStep("Preview it", "gitfolio preview "+username)
	return nil
}

// applySettings loads persisted settings and layers the command's flags on
// top. With --save the merged result is written back.
func (c *CLI) applySettings(cmd *cobra.Command, opts *buildOpts) (portfolio.Settings, error) {
	s := c.loadSettings()

	if opts.sortBy != "" {
		mode := portfolio.SortMode(opts.sortBy)
		if !mode.Valid() {
			return s, errors.New(errors.ErrCodeInvalidSort,
				"invalid sort mode: %q (must be one of: stars, updated, name)", opts.sortBy)
		}
		s.SortBy = mode
	}
	if cmd.Flags().Changed("no-forks") {
		s.FilterNoForks = opts.noForks
	}
	if opts.featured != "" {
		s.FeaturedRepos = parseFeatured(opts.featured)
	}
	if opts.primary != "" {
		s.PrimaryColor = opts.primary
	}
	if opts.accent != "" {
		s.AccentColor = opts.accent
	}
	s.Normalize()

	if opts.save {
		if err := c.saveSettings(s); err != nil {
			printWarning("Could not save settings: %v", err)
		}
	}
	return s, nil
}

func (c *CLI) saveSettings(s portfolio.Settings) error {
	dir, err := configDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return portfolio.SaveSettings(filepath.Join(dir, settingsFile), s)
}

// fetch runs the aggregator under a spinner, relaying progress messages.
// The second return reports whether the snapshot came from cache.
func (c *CLI) fetch(cmd *cobra.Command, username string, opts *fetchOpts) (*portfolio.UserData, bool, error) {
	ctx := cmd.Context()
	agg, _ := c.newAggregator(cmd, opts)

	p := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Fetching %s...", username))
	spinner.Start()

	data, cached, err := agg.FetchUserData(ctx, username, spinner.SetMessage)
	if err != nil {
		spinner.StopWithError(errors.UserMessage(err))
		return nil, false, err
	}
	spinner.Stop()
	p.done(fmt.Sprintf("Aggregated %d repositories", len(data.Repos)))
	return data, cached, nil
}

func totalStars(data *portfolio.UserData) int {
	total := 0
	for _, r := range data.Repos {
		total += r.Stars
	}
	return total
}
