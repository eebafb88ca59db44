package npmdocs

import "runtime"

// Worker count bounds.
const (
	MinWorkers = 1
	MaxWorkers = 256
)

// ResolveWorkers returns the number of documents to build concurrently. An
// explicit positive value wins, otherwise GOMAXPROCS (adjusted by
// automaxprocs for containers) is used.
func ResolveWorkers(workers int) int {
	n := workers
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}

	if n < MinWorkers {
		return MinWorkers
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}
