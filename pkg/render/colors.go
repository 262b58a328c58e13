package render

// defaultLanguageColor is the fallback for languages missing from the table.
const defaultLanguageColor = "#9ca3af"

// languageColors maps language names to their conventional display colors.
var languageColors = map[string]string{
	"JavaScript":   "#f1e05a",
	"TypeScript":   "#3178c6",
	"Python":       "#3572a5",
	"Java":         "#b07219",
	"Go":           "#00add8",
	"Rust":         "#dea584",
	"C":            "#555555",
	"C++":          "#f34b7d",
	"C#":           "#178600",
	"Ruby":         "#701516",
	"PHP":          "#4f5d95",
	"Swift":        "#f05138",
	"Kotlin":       "#a97bff",
	"Dart":         "#00b4ab",
	"Scala":        "#c22d40",
	"Elixir":       "#6e4a7e",
	"Haskell":      "#5e5086",
	"Lua":          "#000080",
	"Perl":         "#0298c3",
	"R":            "#198ce7",
	"Shell":        "#89e051",
	"PowerShell":   "#012456",
	"HTML":         "#e34c26",
	"CSS":          "#563d7c",
	"SCSS":         "#c6538c",
	"Vue":          "#41b883",
	"Svelte":       "#ff3e00",
	"Objective-C":  "#438eff",
	"Clojure":      "#db5855",
	"Dockerfile":   "#384d54",
	"Makefile":     "#427819",
	"Jupyter Notebook": "#da5b0b",
}

// languageColor looks up the display color for a language,
// falling back to a neutral gray.
func languageColor(name string) string {
	if c, ok := languageColors[name]; ok {
		return c
	}
	return defaultLanguageColor
}

// gradientPalette is the fixed set of decorative gradients used by the
// creative template. Order matters: gradient assignment hashes repository
// names into this slice, so reordering entries would change every export.
var gradientPalette = []string{
	"linear-gradient(135deg, #667eea 0%, #764ba2 100%)",
	"linear-gradient(135deg, #f093fb 0%, #f5576c 100%)",
	"linear-gradient(135deg, #4facfe 0%, #00f2fe 100%)",
	"linear-gradient(135deg, #43e97b 0%, #38f9d7 100%)",
	"linear-gradient(135deg, #fa709a 0%, #fee140 100%)",
	"linear-gradient(135deg, #30cfd0 0%, #330867 100%)",
	"linear-gradient(135deg, #a8edea 0%, #fed6e3 100%)",
	"linear-gradient(135deg, #ff9a9e 0%, #fecfef 100%)",
}
