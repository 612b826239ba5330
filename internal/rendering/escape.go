package rendering

import "strings"

// latexEscaper rewrites the characters LaTeX treats as markup. Each
// replacement is a single source character, so no replacement can re-trigger
// another.
var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`$`, `\$`,
	`&`, `\&`,
	`%`, `\%`,
	`#`, `\#`,
	`^`, `\textasciicircum{}`,
	`_`, `\_`,
	`~`, `\textasciitilde{}`,
)

// EscapeLaTeX makes text safe to interpolate into a LaTeX template.
func EscapeLaTeX(text string) string {
	return latexEscaper.Replace(text)
}
