package engine

import (
	"context"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is the number of physical cores, or the logical CPU count
// when that cannot be read.
func DefaultWorkers() int {
	n, err := cpu.Counts(false)
	if err != nil || n <= 0 {
		return runtime.NumCPU()
	}
	return n
}

// RunBatch runs independent projects with at most workers in flight.
// workers <= 0 uses DefaultWorkers. The first failure cancels projects that
// have not started yet and is returned.
func RunBatch(ctx context.Context, projects []*Project, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = DefaultWorkers()
	}

	results := make([]Result, len(projects))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, p := range projects {
		i, p := i, p
		g.Go(func() error {
			res, err := p.Run(ctx)
			if err != nil {
				return fmt.Errorf("job %d (%s): %w", i+1, p.InputPath, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
