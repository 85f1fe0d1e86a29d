// Package fetch loads JSON resources by URL and tracks their request
// lifecycle.
//
// A Hook owns one logical resource (the current search results, the meal on
// the detail screen). Request bumps a generation counter and marks the hook
// loading; the returned Request is run wherever is convenient (a Bubble Tea
// command goroutine, or inline via Fetch); Apply stores the outcome only when
// it still belongs to the latest generation. Reset and Close make in-flight
// results stale. The underlying HTTP call itself is not aborted; it is bounded
// by the caller's context and the client timeout.
//
// HTTPGetter treats any status outside 200..299 as a *StatusError and never
// parses the body of such a response.
package fetch
