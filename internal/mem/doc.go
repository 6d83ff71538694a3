// Package mem provides aligned chunk buffers.
//
// # Aligned Allocation
//
// AllocAligned returns 64-byte aligned slices so that folding kernels start
// every input on a cache-line boundary.
//
// # Buffer Pool
//
// Get and Put recycle aligned buffers in power-of-two size classes from
// 64 KiB to 64 MiB. Larger requests are allocated directly.
package mem
