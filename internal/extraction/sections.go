// Package extraction discovers categorized candidate keywords in raw job-posting text.
package extraction

import "regexp"

// sectionPattern locates a requirement-ish section: text from the first start
// match up to the next stop header, or end of input. Patterns are tried in
// fixed priority order; the first start occurrence wins per pattern.
type sectionPattern struct {
	start *regexp.Regexp
	stop  *regexp.Regexp
}

var requiredSections = []sectionPattern{
	{
		start: regexp.MustCompile(`(?i)required`),
		stop:  regexp.MustCompile(`(?i)preferred|desired|responsibilities`),
	},
	{
		start: regexp.MustCompile(`(?i)must have`),
		stop:  regexp.MustCompile(`(?i)nice to have|preferred`),
	},
	{
		start: regexp.MustCompile(`(?i)qualifications`),
		stop:  regexp.MustCompile(`(?i)preferred|responsibilities`),
	},
}

var preferredSections = []sectionPattern{
	{
		start: regexp.MustCompile(`(?i)preferred|nice to have|desired`),
		stop:  regexp.MustCompile(`(?i)responsibilities|about`),
	},
}

// bulletItem captures discrete phrases after bullet markers or dashes.
var bulletItem = regexp.MustCompile(`[•\-*]\s*([^•\-*\n]+)`)

// capture returns the section text for the first start match, bounded by the
// next stop header after it, or empty if the start term is absent.
func (p sectionPattern) capture(text string) string {
	loc := p.start.FindStringIndex(text)
	if loc == nil {
		return ""
	}
	rest := text[loc[1]:]
	if stop := p.stop.FindStringIndex(rest); stop != nil {
		return text[loc[0] : loc[1]+stop[0]]
	}
	return text[loc[0]:]
}
