package fetch

import "strings"

// Platform identifies a known job-board platform.
type Platform string

// Supported platforms.
const (
	PlatformLinkedIn  Platform = "linkedin"
	PlatformIndeed    Platform = "indeed"
	PlatformGlassdoor Platform = "glassdoor"
	PlatformGeneric   Platform = "generic"
)

// DetectPlatform inspects a URL and returns the job-board platform it
// belongs to, defaulting to generic.
func DetectPlatform(urlStr string) Platform {
	lower := strings.ToLower(urlStr)
	switch {
	case strings.Contains(lower, "linkedin.com"):
		return PlatformLinkedIn
	case strings.Contains(lower, "indeed.com"):
		return PlatformIndeed
	case strings.Contains(lower, "glassdoor.com"):
		return PlatformGlassdoor
	default:
		return PlatformGeneric
	}
}

// platformContentSelectors maps platforms to the CSS selectors most likely to
// hold the job description.
var platformContentSelectors = map[Platform][]string{
	PlatformLinkedIn: {
		".description__text",
		"div[class*='job-description']",
		".show-more-less-html__markup",
	},
	PlatformIndeed: {
		"#jobDescriptionText",
		".jobsearch-jobDescriptionText",
	},
	PlatformGlassdoor: {
		"[class*='jobDescriptionContent']",
		"#JobDescriptionContainer",
	},
	PlatformGeneric: {
		"article",
		"main",
		"[class*='job-description']",
		"[class*='description']",
	},
}

// platformNoiseSelectors maps platforms to selectors that carry navigation or
// boilerplate rather than posting content.
var platformNoiseSelectors = map[Platform][]string{
	PlatformLinkedIn:  {"header", "footer", "nav", ".similar-jobs"},
	PlatformIndeed:    {"header", "footer", "nav", "#recommendedJobs"},
	PlatformGlassdoor: {"header", "footer", "nav", "[class*='SimilarJobs']"},
	PlatformGeneric:   {"header", "footer", "nav", "aside"},
}

// PlatformContentSelectors returns the content selectors for a platform.
func PlatformContentSelectors(platform Platform) []string {
	if selectors, ok := platformContentSelectors[platform]; ok {
		return selectors
	}
	return platformContentSelectors[PlatformGeneric]
}

// PlatformNoiseSelectors returns the noise selectors for a platform.
func PlatformNoiseSelectors(platform Platform) []string {
	if selectors, ok := platformNoiseSelectors[platform]; ok {
		return selectors
	}
	return platformNoiseSelectors[PlatformGeneric]
}
