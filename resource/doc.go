// Package resource bounds what one process spends on classification.
//
// A Controller tracks three resources:
//
//   - Memory: the candidate buffer of each run is reserved up front. A
//     configured limit fails fast with ErrMemoryLimitExceeded.
//   - Workers: a weighted semaphore shared by every classifier that uses
//     the same Controller, on top of each run's own worker limit.
//   - IO: a token bucket applied to dataset reads through RateLimitedReader.
//
// All methods are safe for concurrent use, and a nil *Controller is valid:
// every operation on it is a no-op that succeeds.
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes:   64 << 20,
//	    MaxWorkers:         8,
//	    IOLimitBytesPerSec: 32 << 20,
//	})
package resource
