package pipeline

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentRuns bounds parallel source processing in batch mode.
const maxConcurrentRuns = 4

// RunBatch processes several job-posting sources concurrently against the
// same record and tables. Results come back in source order. The first
// failure cancels the remaining runs.
func RunBatch(ctx context.Context, sources []string, opts RunOptions) ([]*RunResult, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("no sources provided")
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentRuns)

	results := make([]*RunResult, len(sources))
	var mu sync.Mutex

	for i, source := range sources {
		g.Go(func() error {
			runOpts := opts
			runOpts.Source = source
			result, err := Run(gCtx, runOpts)
			if err != nil {
				return fmt.Errorf("source %s: %w", source, err)
			}
			mu.Lock()
			results[i] = result
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
