package render

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/cemremete/gitfolio/pkg/errors"
	"github.com/cemremete/gitfolio/pkg/github"
	"github.com/cemremete/gitfolio/pkg/portfolio"
)

func testData(repos []github.Repo) *portfolio.UserData {
	return &portfolio.UserData{
		Username: "octocat",
		UserInfo: github.User{
			Login:     "octocat",
			Name:      "The Octocat",
			AvatarURL: "https://example.com/avatar.png",
			HTMLURL:   "https://github.com/octocat",
			Bio:       "A friendly cat",
			Location:  "San Francisco",
		},
		Repos:     repos,
		LastFetch: time.Now(),
	}
}

func makeRepos(n int) []github.Repo {
	repos := make([]github.Repo, n)
	for i := range repos {
		repos[i] = github.Repo{
			Name:    fmt.Sprintf("repo-%02d", i),
			HTMLURL: fmt.Sprintf("https://github.com/octocat/repo-%02d", i),
			Stars:   n - i,
		}
	}
	return repos
}

func TestParseTemplate(t *testing.T) {
	for _, name := range []string{"minimal", "dark", "creative"} {
		if _, err := ParseTemplate(name); err != nil {
			t.Errorf("ParseTemplate(%q): %v", name, err)
		}
	}
	if _, err := ParseTemplate("neon"); errors.GetCode(err) != errors.ErrCodeInvalidTemplate {
		t.Errorf("expected INVALID_TEMPLATE, got %v", err)
	}
}

func TestRenderNilData(t *testing.T) {
	if _, err := Render(nil, portfolio.DefaultSettings(), TemplateMinimal); errors.GetCode(err) != errors.ErrCodeNoData {
		t.Errorf("expected NO_DATA, got %v", err)
	}
}

func TestRenderInvalidTemplate(t *testing.T) {
	_, err := Render(testData(makeRepos(1)), portfolio.DefaultSettings(), Template("neon"))
	if errors.GetCode(err) != errors.ErrCodeInvalidTemplate {
		t.Errorf("expected INVALID_TEMPLATE, got %v", err)
	}
}

func TestRenderAllVariants(t *testing.T) {
	data := testData(makeRepos(3))
	for _, tmpl := range []Template{TemplateMinimal, TemplateDark, TemplateCreative} {
		out, err := Render(data, portfolio.DefaultSettings(), tmpl)
		if err != nil {
			t.Fatalf("Render(%s): %v", tmpl, err)
		}
		for _, want := range []string{
			"<!DOCTYPE html>",
			"</head>",
			"</body>",
			"The Octocat",
			`body class="` + string(tmpl) + `"`,
			"repo-00",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("%s output missing %q", tmpl, want)
			}
		}
	}
}

func TestRenderDeclaresNoColorVariables(t *testing.T) {
	for _, tmpl := range []Template{TemplateMinimal, TemplateDark, TemplateCreative} {
		out, err := Render(testData(makeRepos(2)), portfolio.DefaultSettings(), tmpl)
		if err != nil {
			t.Fatal(err)
		}
		// The stylesheet consumes the color variables; declaring them here
		// would shadow the export stage's injected values.
		if strings.Contains(out, "--primary: ") || strings.Contains(out, "--accent: ") {
			t.Errorf("%s stylesheet declares color variables", tmpl)
		}
		if !strings.Contains(out, "var(--primary)") {
			t.Errorf("%s stylesheet does not consume var(--primary)", tmpl)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	data := testData(makeRepos(10))
	first, err := Render(data, portfolio.DefaultSettings(), TemplateCreative)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Render(data, portfolio.DefaultSettings(), TemplateCreative)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("identical input produced different documents")
	}
}

func TestRenderFeaturedSplit(t *testing.T) {
	data := testData(makeRepos(25))
	out, err := Render(data, portfolio.DefaultSettings(), TemplateMinimal)
	if err != nil {
		t.Fatal(err)
	}

	featStart := strings.Index(out, "<h2>Featured</h2>")
	allStart := strings.Index(out, "<h2>All Projects</h2>")
	if featStart < 0 || allStart < 0 || featStart > allStart {
		t.Fatal("expected Featured section before All Projects section")
	}
	featured := out[featStart:allStart]
	rest := out[allStart:]

	// Highest-star six are featured under star sorting.
	for i := 0; i < 6; i++ {
		name := fmt.Sprintf("repo-%02d", i)
		if !strings.Contains(featured, name) {
			t.Errorf("featured section missing %s", name)
		}
	}
	for i := 6; i < 25; i++ {
		name := fmt.Sprintf("repo-%02d", i)
		if !strings.Contains(rest, name) {
			t.Errorf("projects section missing %s", name)
		}
		if strings.Contains(featured, name) {
			t.Errorf("%s featured unexpectedly", name)
		}
	}
}

func TestRenderFeaturedOrder(t *testing.T) {
	repos := []github.Repo{
		{Name: "a", Stars: 100},
		{Name: "b", Stars: 1},
		{Name: "c", Stars: 50},
	}
	s := portfolio.DefaultSettings()
	s.FeaturedRepos = []string{"b", "a", "missing"}

	out, err := Render(testData(repos), s, TemplateMinimal)
	if err != nil {
		t.Fatal(err)
	}
	featured := out[strings.Index(out, "Featured"):strings.Index(out, "All Projects")]
	bPos := strings.Index(featured, ">b</a>")
	aPos := strings.Index(featured, ">a</a>")
	if bPos < 0 || aPos < 0 || bPos > aPos {
		t.Errorf("expected b before a in featured section")
	}
	if strings.Contains(featured, ">c</a>") {
		t.Error("c should not be featured")
	}
}

func TestRenderEscapesUserContent(t *testing.T) {
	repos := []github.Repo{{
		Name:        "evil",
		HTMLURL:     "https://github.com/octocat/evil",
		Description: `<script>alert("xss")</script>`,
	}}
	data := testData(repos)
	data.UserInfo.Bio = "<img onerror=pwn>"

	out, err := Render(data, portfolio.DefaultSettings(), TemplateDark)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, `<script>alert`) || strings.Contains(out, "<img onerror") {
		t.Error("unescaped user content in output")
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Error("expected escaped description")
	}
}

func TestRenderBioOverride(t *testing.T) {
	s := portfolio.DefaultSettings()
	s.Bio = "Custom bio"
	out, err := Render(testData(makeRepos(1)), s, TemplateMinimal)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Custom bio") || strings.Contains(out, "A friendly cat") {
		t.Error("settings bio should override the fetched bio")
	}
}

func TestPrepareReposFilterForks(t *testing.T) {
	repos := []github.Repo{
		{Name: "own", Stars: 1},
		{Name: "forked", Fork: true, Stars: 99},
	}
	s := portfolio.DefaultSettings()
	got := prepareRepos(repos, s)
	if len(got) != 1 || got[0].Name != "own" {
		t.Errorf("expected forks filtered, got %v", got)
	}

	s.FilterNoForks = false
	got = prepareRepos(repos, s)
	if len(got) != 2 {
		t.Errorf("expected forks kept, got %d repos", len(got))
	}
}

func TestPrepareReposSorting(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	repos := []github.Repo{
		{Name: "Beta", Stars: 5, UpdatedAt: base.Add(2 * time.Hour)},
		{Name: "alpha", Stars: 10, UpdatedAt: base},
		{Name: "gamma", Stars: 1, UpdatedAt: base.Add(time.Hour)},
	}
	s := portfolio.DefaultSettings()
	s.FilterNoForks = false

	tests := []struct {
		sortBy portfolio.SortMode
		want   []string
	}{
		{portfolio.SortStars, []string{"alpha", "Beta", "gamma"}},
		{portfolio.SortUpdated, []string{"Beta", "gamma", "alpha"}},
		{portfolio.SortName, []string{"alpha", "Beta", "gamma"}},
	}
	for _, tt := range tests {
		s.SortBy = tt.sortBy
		got := prepareRepos(repos, s)
		for i, want := range tt.want {
			if got[i].Name != want {
				t.Errorf("sort %s: position %d = %s, want %s", tt.sortBy, i, got[i].Name, want)
			}
		}
	}
}

func TestTopLanguages(t *testing.T) {
	shares := topLanguages(map[string]int{
		"Go":         7000,
		"JavaScript": 2000,
		"Shell":      500,
		"Makefile":   500,
	})
	if len(shares) != 3 {
		t.Fatalf("expected 3 languages, got %d", len(shares))
	}
	if shares[0].Name != "Go" || shares[0].Pct != 70 {
		t.Errorf("top language = %s %d%%, want Go 70%%", shares[0].Name, shares[0].Pct)
	}
	// Tie between Shell and Makefile breaks alphabetically.
	if shares[2].Name != "Makefile" {
		t.Errorf("third language = %s, want Makefile", shares[2].Name)
	}

	single := topLanguages(map[string]int{"Rust": 123})
	if len(single) != 1 || single[0].Pct != 100 {
		t.Errorf("single language should be 100%%, got %v", single)
	}

	if got := topLanguages(nil); got != nil {
		t.Errorf("expected nil for empty map, got %v", got)
	}
}

func TestGradientForDeterministic(t *testing.T) {
	a := gradientFor("some-repo")
	for i := 0; i < 5; i++ {
		if gradientFor("some-repo") != a {
			t.Fatal("gradient not stable across calls")
		}
	}
	if !strings.HasPrefix(a, "linear-gradient(") {
		t.Errorf("unexpected gradient %q", a)
	}
}

func TestMakeViewDefaults(t *testing.T) {
	v := makeView(github.Repo{Name: "bare"}, TemplateMinimal)
	if v.Desc != noDescription {
		t.Errorf("Desc = %q, want placeholder", v.Desc)
	}
	if v.Gradient != "" {
		t.Error("non-creative template should not assign a gradient")
	}

	excerpt := "First paragraph."
	v = makeView(github.Repo{Name: "full", ReadmeExcerpt: &excerpt}, TemplateCreative)
	if v.Excerpt != excerpt {
		t.Errorf("Excerpt = %q", v.Excerpt)
	}
	if v.Gradient == "" {
		t.Error("creative template should assign a gradient")
	}
}
