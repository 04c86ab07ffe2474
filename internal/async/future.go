// Package async provides handles for work started now and awaited later.
package async

import (
	"github.com/sourcegraph/conc"
)

// Future is the handle of a task that was started by Go. The task runs
// exactly once; every call to Await returns the same result.
type Future[T any] struct {
	wg    conc.WaitGroup
	value T
	err   error
}

// Go starts fn in its own goroutine and returns immediately.
// A panic in fn is recovered and reported by Await as an error.
func Go[T any](fn func() (T, error)) *Future[T] {
	f := &Future[T]{}
	f.wg.Go(func() {
		f.value, f.err = fn()
	})
	return f
}

// Await blocks until the task has finished and returns its result.
// It is safe to call from several goroutines.
func (f *Future[T]) Await() (T, error) {
	if recovered := f.wg.WaitAndRecover(); recovered != nil {
		var zero T
		return zero, recovered.AsError()
	}
	return f.value, f.err
}

// Resolved returns a Future that already holds value and err
func Resolved[T any](value T, err error) *Future[T] {
	return Go(func() (T, error) { return value, err })
}
