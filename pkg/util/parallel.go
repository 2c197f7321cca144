package util

import (
	"context"
	"sync"
)

// ParallelMap runs fn over inputs with at most workerLimit goroutines and
// returns the results in input order. The first error cancels the rest.
func ParallelMap[T, R any](ctx context.Context, inputs []T, workerLimit int, fn func(context.Context, T) (R, error)) ([]R, error) {
	results := make([]R, len(inputs))
	if len(inputs) == 0 {
		return results, nil
	}
	if workerLimit <= 0 {
		workerLimit = 1
	}
	if workerLimit > len(inputs) {
		workerLimit = len(inputs)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type job struct{ idx int }
	jobs := make(chan job)
	errCh := make(chan error, 1)

	var wg sync.WaitGroup
	for i := 0; i < workerLimit; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				r, err := fn(ctx, inputs[j.idx])
				if err != nil {
					select {
					case errCh <- err:
						cancel()
					default:
					}
					return
				}
				results[j.idx] = r
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i := range inputs {
			select {
			case <-ctx.Done():
				return
			case jobs <- job{idx: i}:
			}
		}
	}()

	wg.Wait()

	select {
	case err := <-errCh:
		return nil, err
	default:
		return results, nil
	}
}
