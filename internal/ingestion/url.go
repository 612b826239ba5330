package ingestion

import (
	"context"
	"fmt"
	"log"

	"github.com/nworkman/resume-retool/internal/fetch"
)

// extractFromURL fetches a job posting URL and extracts its readable text.
// It first tries a plain HTTP fetch with platform-specific selectors; when
// the result looks like an unrendered SPA shell and browser fallback is
// enabled, it re-renders the page in a headless browser.
func extractFromURL(ctx context.Context, urlStr string, opts Options) (*Result, error) {
	platform := fetch.DetectPlatform(urlStr)
	if opts.Verbose {
		log.Printf("[VERBOSE] Fetching URL (%s): %s", platform, urlStr)
	}

	fetched, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return nil, &ExtractionError{
			Source:  urlStr,
			Message: "failed to fetch URL",
			Cause:   fmt.Errorf("%w: %v", ErrHTTPRequestFailed, err),
		}
	}

	text, err := fetch.ExtractMainText(fetched.HTML,
		fetch.PlatformContentSelectors(platform),
		fetch.PlatformNoiseSelectors(platform)...)
	if err != nil {
		return nil, &ExtractionError{
			Source:  urlStr,
			Message: "failed to extract page text",
			Cause:   fmt.Errorf("%w: %v", ErrContentExtractionFailed, err),
		}
	}

	method := "HTTP fetch"
	if fetch.ShouldUseBrowser(text) && opts.UseBrowser {
		if opts.Verbose {
			log.Printf("[VERBOSE] Content too short (%d chars), retrying with browser", len(text))
		}
		html, berr := fetch.BrowserSimple(ctx, urlStr, opts.Verbose)
		if berr != nil {
			return nil, &ExtractionError{
				Source:  urlStr,
				Message: "browser rendering failed",
				Cause:   fmt.Errorf("%w: %v", ErrContentExtractionFailed, berr),
			}
		}
		rendered, rerr := fetch.ExtractMainText(html,
			fetch.PlatformContentSelectors(platform),
			fetch.PlatformNoiseSelectors(platform)...)
		if rerr == nil && len(rendered) > len(text) {
			text = rendered
			method = "headless browser"
		}
	}

	if opts.Verbose {
		log.Printf("[VERBOSE] Extracted %d chars via %s", len(text), method)
	}

	return &Result{
		Text:   CleanText(text),
		Kind:   SourceURL,
		Method: method,
	}, nil
}
