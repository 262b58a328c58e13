package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// fetchCommand creates the fetch command.
func (c *CLI) fetchCommand() *cobra.Command {
	opts := fetchOpts{}

	cmd := &cobra.Command{
		Use:   "fetch <username>",
		Short: "Fetch a GitHub user's profile and repository data",
		Long: `Fetch aggregates a GitHub user's identity and public repositories,
including language breakdowns and readme excerpts, and caches the snapshot
for later builds.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := args[0]

			data, cached, err := c.fetch(cmd, username, &opts)
			if err != nil {
				return err
			}

			name := data.UserInfo.Name
			if name == "" {
				name = data.Username
			}
			printSuccess("Fetched %s", name)
			printKeyValue("Profile", data.UserInfo.HTMLURL)
			if data.UserInfo.Bio != "" {
				printKeyValue("Bio", data.UserInfo.Bio)
			}
			if data.UserInfo.Location != "" {
				printKeyValue("Location", data.UserInfo.Location)
			}
			printStats(len(data.Repos), totalStars(data), cached)

			enriched := 0
			for _, r := range data.Repos {
				if len(r.Languages) > 0 {
					enriched++
				}
			}
			if enriched > 0 {
				printDetail("Language data for %d repositories", enriched)
			}
			printNextStep("Build a portfolio", fmt.Sprintf("gitfolio build %s", username))
			return nil
		},
	}

	addFetchFlags(cmd, &opts)
	return cmd
}
