// Package parallel runs independent loop iterations across a bounded
// set of goroutines.
package parallel

import "sync"

// For calls f(i) for every i in [0, n), spreading the calls over at
// most workers goroutines. With workers <= 1 the calls run on the
// caller's goroutine in index order.
//
// Iterations are handed out in contiguous chunks; f must be safe for
// concurrent use whenever workers > 1.
func For(n, workers int, f func(i int)) {
	if n <= 0 {
		return
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}
