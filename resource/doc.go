// Package resource bounds the resources a verification run may use.
//
// The Controller manages three resource types:
//
//   - Workers: chunks checksummed concurrently (weighted semaphore)
//   - Memory: bytes held in chunk buffers (blocking semaphore plus tracking)
//   - IO: read bandwidth from blob stores (token bucket)
//
// # Architecture
//
//	┌─────────────────────────────────────────────────────────────┐
//	│                        Controller                           │
//	├─────────────────┬─────────────────┬─────────────────────────┤
//	│  Workers (sem)  │  Buffer Memory  │  IO Rate Limiter        │
//	│                 │                 │  (token bucket)         │
//	├─────────────────┼─────────────────┼─────────────────────────┤
//	│  AcquireWorker  │  AcquireMemory  │  AcquireIO              │
//	│  TryAcquire     │  TryAcquire     │  RateLimitedReader      │
//	│  ReleaseWorker  │  ReleaseMemory  │                         │
//	└─────────────────┴─────────────────┴─────────────────────────┘
//
// # Nil Controller
//
// Every method accepts a nil receiver and then imposes no limit, so callers
// never branch on whether limits were configured:
//
//	var rc *resource.Controller
//	_ = rc.AcquireWorker(ctx) // returns immediately
//
// # IO Limiting
//
// The token bucket holds one second of budget. AcquireIO splits larger
// requests and RateLimitedReader shortens reads to fit:
//
//	rc := resource.NewController(resource.Config{IOLimitBytesPerSec: 64 << 20})
//	r := resource.NewRateLimitedReader(ctx, blobReader, rc)
package resource
