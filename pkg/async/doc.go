// Package async provides a small generic Future type used to represent
// outcomes that may or may not be available yet.
//
// A Future is either started with Async, which runs the supplied function in
// its own goroutine, or created already completed with Resolved.
// Callers therefore use one contract, Await, regardless of whether the value
// was computed synchronously.
//
// # Usage
//
//	f := async.Async(ctx, "users", func(ctx context.Context, name string) (bool, error) {
//		return lookup(ctx, name)
//	})
//
//	ok, err := f.Await()
//
// WaitAll collects the results of several futures and reports the first
// error in slice order.
//
// Async honours a context that is canceled before the goroutine starts its
// work. It adds no timeout or retry of its own; AwaitContext and WaitAll
// let a caller stop waiting without stopping the computation.
package async
