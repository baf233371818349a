// Package worker parallelizes index computation across games with a
// bounded worker count, using golang.org/x/sync/errgroup so an error from
// any one game (such as an Internal failure) stops games that have not yet
// started; games already running finish.
package worker

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/coopmetrics/coopmetrics/schema"
)

// Run processes games with up to workers goroutines, calling process for
// each. workers <= 0 defaults to GOMAXPROCS. Results are returned in the
// same order as games; if process returns an error for any game, Run
// skips the games that have not started yet and returns the first error,
// and entries for games that did not complete hold T's zero value.
func Run[T any](games []*schema.Game, workers int, process func(*schema.Game) (T, error)) ([]T, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(games) {
		workers = len(games)
	}
	if workers < 1 {
		workers = 1
	}

	results := make([]T, len(games))
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(workers)

	for i, game := range games {
		i, game := i, game
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			result, err := process(game)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
