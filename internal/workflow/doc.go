// Package workflow orchestrates one request through the routing and tool
// dispatch pipeline, producing an ordered event sequence over a channel.
//
// A Coordinator holds no per-request state. Run launches one goroutine per
// request; the caller consumes the returned channel to completion (or cancels
// the context), after which the goroutine exits and the channel is closed.
package workflow
