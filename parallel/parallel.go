// Package parallel schedules work across a bounded set of goroutines.
//
// All helpers implement structured fork/join: they return only after every
// task they spawned has completed. No task outlives the call that spawned it
// and no state is shared between tasks beyond the caller's slice, which
// [Execute] hands out as pairwise disjoint index ranges.
package parallel

import (
	"runtime"
	"sync"
)

// MaxTasks bounds the number of goroutines Execute spawns regardless of the
// requested task count. Beyond a few hundred tasks scheduler overhead exceeds
// any gain on the workloads this module runs.
const MaxTasks = 512

// Execute splits [0, nbIterations) into at most min(nbTasks, nbIterations)
// contiguous disjoint ranges and calls work once per range, concurrently.
// nbTasks defaults to runtime.NumCPU(); an optional maxNbTasks overrides it,
// clamped to [1, MaxTasks]. Range sizes differ by at most one iteration and
// the larger ranges come first, so the last tasks never lag behind with
// oversized leftovers. Execute returns once every call to work has returned.
func Execute(nbIterations int, work func(start, end int), maxNbTasks ...int) {
	nbTasks := runtime.NumCPU()
	if len(maxNbTasks) == 1 {
		nbTasks = maxNbTasks[0]
		if nbTasks < 1 {
			nbTasks = 1
		} else if nbTasks > MaxTasks {
			nbTasks = MaxTasks
		}
	}

	if nbIterations == 0 {
		return
	}
	if nbTasks == 1 || nbIterations == 1 {
		work(0, nbIterations)
		return
	}

	nbIterationsPerTask := nbIterations / nbTasks

	// more tasks than iterations: a task gets exactly one iteration
	if nbIterationsPerTask < 1 {
		nbIterationsPerTask = 1
		nbTasks = nbIterations
	}

	var wg sync.WaitGroup

	extraTasks := nbIterations - nbTasks*nbIterationsPerTask
	extraTasksOffset := 0

	for i := 0; i < nbTasks; i++ {
		wg.Add(1)
		start := i*nbIterationsPerTask + extraTasksOffset
		end := start + nbIterationsPerTask
		if extraTasks > 0 {
			end++
			extraTasks--
			extraTasksOffset++
		}
		go func() {
			work(start, end)
			wg.Done()
		}()
	}

	wg.Wait()
}

// Join runs f on a new goroutine and g on the calling goroutine, and returns
// once both have completed.
func Join(f, g func()) {
	chDone := make(chan struct{}, 1)
	go func() {
		defer close(chDone)
		f()
	}()
	g()
	<-chDone
}

// JoinValues runs f on a new goroutine and g on the calling goroutine, and
// returns both results once both have completed.
func JoinValues[A, B any](f func() A, g func() B) (A, B) {
	var a A
	chDone := make(chan struct{}, 1)
	go func() {
		defer close(chDone)
		a = f()
	}()
	b := g()
	<-chDone
	return a, b
}
