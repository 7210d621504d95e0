package avlout

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/aerotools/avlout/pkg/avlout/models"
	"golang.org/x/sync/errgroup"
)

// RunResults maps a run case number to its results keyed by output name.
type RunResults map[int]map[string]*models.Result

// OutputFileName returns the name AVL is told to write an output to: "{base}-{case}.{ext}".
func OutputFileName(base string, caseNumber int, f Format) string {
	return fmt.Sprintf("%s-%d.%s", base, caseNumber, f)
}

// ReadRun parses the requested outputs of run cases 1..cases from a completed run directory.
// Files are parsed concurrently; the first failure cancels the remaining parses.
func ReadRun(ctx context.Context, dir, base string, cases int, formats []Format, opts Options) (RunResults, error) {
	for _, f := range formats {
		if !f.Known() {
			return nil, fmt.Errorf("invalid output: %q", f)
		}
	}

	results := make(RunResults, cases)
	for c := 1; c <= cases; c++ {
		results[c] = make(map[string]*models.Result, len(formats))
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.concurrency())
	for c := 1; c <= cases; c++ {
		for _, f := range formats {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				res, err := Parse(filepath.Join(dir, OutputFileName(base, c, f)), opts)
				if err != nil {
					return NewRunError(c, f.Output(), err)
				}
				mu.Lock()
				results[c][f.Output()] = res
				mu.Unlock()
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ParseDir parses every regular file of dir, keyed by file name.
// Files with an unknown extension are returned as raw text.
func ParseDir(ctx context.Context, dir string, opts Options) (map[string]*models.Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	results := make(map[string]*models.Result)
	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.concurrency())
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Parse(filepath.Join(dir, name), opts)
			if err != nil {
				return err
			}
			mu.Lock()
			results[name] = res
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
