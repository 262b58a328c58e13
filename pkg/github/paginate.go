package github

import (
	"context"
	"fmt"
)

// pageSize is the maximum page size allowed by the repository listing API.
const pageSize = 100

// FetchAllRepos retrieves all public repositories for a user, sorted by most
// recently updated, accumulating fixed-size pages in ascending page order.
//
// Pagination stops when a page returns fewer items than the page size or no
// items at all. Between successful pages the client pauses for its page delay
// to avoid bursting the remote service.
//
// onProgress, when non-nil, fires after each page with the cumulative count.
// It is best-effort; its absence does not affect results.
func (c *Client) FetchAllRepos(ctx context.Context, username string, onProgress func(count int)) ([]Repo, error) {
	var all []Repo

	for page := 1; ; page++ {
		url := fmt.Sprintf("%s/users/%s/repos?per_page=%d&page=%d&sort=updated", c.baseURL, username, pageSize, page)

		var repos []Repo
		if err := c.get(ctx, url, &repos); err != nil {
			return nil, err
		}

		all = append(all, repos...)
		if onProgress != nil {
			onProgress(len(all))
		}

		if len(repos) < pageSize {
			break // short or empty page means last page
		}

		if err := sleep(ctx, c.pageDelay); err != nil {
			return nil, err
		}
	}

	return all, nil
}
