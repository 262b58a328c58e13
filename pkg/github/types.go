package github

import "time"

// User represents a GitHub user's public identity.
type User struct {
	Login     string `json:"login"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
	HTMLURL   string `json:"html_url"`
	Bio       string `json:"bio"`
	Location  string `json:"location"`
}

// Repo represents a public GitHub repository together with its lazily
// populated enrichment data.
type Repo struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	HTMLURL     string    `json:"html_url"`
	Homepage    string    `json:"homepage"`
	Stars       int       `json:"stargazers_count"`
	Forks       int       `json:"forks_count"`
	Fork        bool      `json:"fork"`
	Topics      []string  `json:"topics"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Languages maps language name to byte count. Populated by the enricher
	// for a bounded prefix of the repository list; nil elsewhere.
	Languages map[string]int `json:"languages,omitempty"`

	// ReadmeExcerpt is the first paragraph of the readme, when one exists.
	// nil means no readme was found; an empty string is a real empty excerpt.
	ReadmeExcerpt *string `json:"readme_excerpt,omitempty"`
}

// readmeResponse is the GitHub API response for the readme endpoint.
type readmeResponse struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}
