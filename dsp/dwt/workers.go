package dwt

import "golang.org/x/sync/errgroup"

// forEach calls fn for 0..n-1, running up to workers calls concurrently.
// fn must only write to state owned by its index.
func forEach(n, workers int, fn func(i int) error) error {
	if workers <= 1 || n <= 1 {
		for i := range n {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i := range n {
		g.Go(func() error {
			return fn(i)
		})
	}
	return g.Wait()
}
