package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cemremete/gitfolio/pkg/seo"
)

// seoOpts holds the command-line flags for the seo command.
type seoOpts struct {
	fetchOpts
	siteURL string // public URL the portfolio will be hosted at
	outDir  string // directory for the generated artifacts
}

// seoCommand creates the seo command for generating crawler artifacts.
func (c *CLI) seoCommand() *cobra.Command {
	opts := seoOpts{outDir: "."}

	cmd := &cobra.Command{
		Use:   "seo <username>",
		Short: "Generate sitemap.xml and robots.txt for a portfolio",
		Long: `Seo generates the auxiliary crawler artifacts for a hosted portfolio:
a single-URL sitemap and a static robots policy.

Example:
  gitfolio seo octocat --site-url https://octocat.dev`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.siteURL == "" {
				return fmt.Errorf("--site-url is required")
			}

			// Fetch so description/keyword generation stays consistent with
			// the exported document, and to fail early on unknown users.
			if _, _, err := c.fetch(cmd, args[0], &opts.fetchOpts); err != nil {
				return err
			}

			gen := seo.NewGenerator(c.Logger)

			sitemapPath := filepath.Join(opts.outDir, "sitemap.xml")
			if err := os.WriteFile(sitemapPath, []byte(gen.Sitemap(opts.siteURL)), 0o644); err != nil {
				return fmt.Errorf("write sitemap: %w", err)
			}
			robotsPath := filepath.Join(opts.outDir, "robots.txt")
			if err := os.WriteFile(robotsPath, []byte(gen.Robots()), 0o644); err != nil {
				return fmt.Errorf("write robots: %w", err)
			}

			printSuccess("Generated SEO artifacts")
			printFile(sitemapPath)
			printFile(robotsPath)
			return nil
		},
	}

	addFetchFlags(cmd, &opts.fetchOpts)
	cmd.Flags().StringVar(&opts.siteURL, "site-url", "", "public URL of the hosted portfolio (required)")
	cmd.Flags().StringVarP(&opts.outDir, "out-dir", "d", opts.outDir, "directory for the generated files")

	return cmd
}
