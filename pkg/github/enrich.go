package github

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
)

// FetchLanguages retrieves the language-byte breakdown for a repository.
// Any failure (repo deleted, access error, empty repo) degrades to an empty
// map rather than propagating; language absence is expected and non-fatal.
func (c *Client) FetchLanguages(ctx context.Context, owner, repo string) map[string]int {
	var langs map[string]int
	url := fmt.Sprintf("%s/repos/%s/%s/languages", c.baseURL, owner, repo)
	if err := c.get(ctx, url, &langs); err != nil || langs == nil {
		return map[string]int{}
	}
	return langs
}

// FetchReadme retrieves a repository's readme and extracts a bounded excerpt.
// The second return value is false when no readme is present or the fetch
// failed; callers must distinguish "no readme" from an empty excerpt.
func (c *Client) FetchReadme(ctx context.Context, owner, repo string) (string, bool) {
	var resp readmeResponse
	url := fmt.Sprintf("%s/repos/%s/%s/readme", c.baseURL, owner, repo)
	if err := c.get(ctx, url, &resp); err != nil {
		return "", false
	}

	content, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(resp.Content, "\n", ""))
	if err != nil {
		return "", false
	}

	return ExtractFirstParagraph(string(content)), true
}
