package replay

import (
	"context"
	"errors"
	"fmt"

	"github.com/remeh/sizedwaitgroup"

	"github.com/arloliu/ufwire/capture"
)

// FileResult is the outcome of replaying one capture file.
type FileResult struct {
	Path  string
	Stats Stats
	Err   error
}

// RunFiles replays each capture file into its own Replayer, running at
// most workers files at a time. Results are in the order of paths. The
// returned error joins the per-file errors.
//
// readerOpts apply to every capture.OpenFile call and opts to every
// Replayer.
func RunFiles(ctx context.Context, paths []string, workers int, readerOpts []capture.ReaderOption, opts ...Option) ([]FileResult, error) {
	if workers < 1 {
		workers = 1
	}

	results := make([]FileResult, len(paths))
	swg := sizedwaitgroup.New(workers)

	for i, path := range paths {
		results[i].Path = path
		if err := swg.AddWithContext(ctx); err != nil {
			results[i].Err = err
			continue
		}

		go func() {
			defer swg.Done()
			results[i].Stats, results[i].Err = runFile(ctx, path, readerOpts, opts)
		}()
	}
	swg.Wait()

	var errList []error
	for _, res := range results {
		if res.Err != nil {
			errList = append(errList, fmt.Errorf("%s: %w", res.Path, res.Err))
		}
	}

	return results, errors.Join(errList...)
}

func runFile(ctx context.Context, path string, readerOpts []capture.ReaderOption, opts []Option) (Stats, error) {
	c, err := capture.OpenFile(path, readerOpts...)
	if err != nil {
		return Stats{}, err
	}

	p, err := New(opts...)
	if err != nil {
		return Stats{}, err
	}

	return p.Apply(ctx, c)
}

// Total merges the stats of every result.
func Total(results []FileResult) Stats {
	var total Stats
	for _, res := range results {
		total.Merge(res.Stats)
	}

	return total
}
