package fetch

import (
	"context"
	"strings"
	"sync"
)

// State is the observable lifecycle of a Hook.
type State[T any] struct {
	URL     string
	Data    *T
	Loading bool
	Err     error
}

// Hook tracks one logical resource addressed by a URL. Each new URL starts a
// new generation; results from older generations, or arriving after Close,
// are dropped instead of applied.
type Hook[T any] struct {
	getter Getter

	mu     sync.Mutex
	gen    uint64
	closed bool
	state  State[T]
}

// Request is a pending load produced by Hook.Request.
type Request[T any] struct {
	gen    uint64
	url    string
	getter Getter
}

// Result carries the outcome of Request.Do back to Hook.Apply.
type Result[T any] struct {
	gen  uint64
	URL  string
	Data *T
	Err  error
}

// New returns a hook that loads through g.
func New[T any](g Getter) *Hook[T] {
	return &Hook[T]{getter: g}
}

// Request starts a load for url. It reports false, and leaves state
// untouched, when url is blank, when url is already the current URL, or when
// the hook has been closed.
func (h *Hook[T]) Request(url string) (Request[T], bool) {
	url = strings.TrimSpace(url)
	if url == "" {
		return Request[T]{}, false
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed || url == h.state.URL {
		return Request[T]{}, false
	}
	h.gen++
	h.state.URL = url
	h.state.Loading = true
	h.state.Err = nil
	return Request[T]{gen: h.gen, url: url, getter: h.getter}, true
}

// Do performs the network call. It never touches hook state, so it is safe
// to run on any goroutine.
func (r Request[T]) Do(ctx context.Context) Result[T] {
	res := Result[T]{gen: r.gen, URL: r.url}
	if r.getter == nil || r.url == "" {
		return res
	}
	var data T
	if err := r.getter.GetJSON(ctx, r.url, &data); err != nil {
		res.Err = err
		return res
	}
	res.Data = &data
	return res
}

// Apply records res if it belongs to the current generation of an open hook.
// It reports whether the result was applied.
func (h *Hook[T]) Apply(res Result[T]) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed || res.gen == 0 || res.gen != h.gen {
		return false
	}
	h.state.Loading = false
	if res.Err != nil {
		h.state.Err = res.Err
		return true
	}
	h.state.Err = nil
	h.state.Data = res.Data
	return true
}

// State returns a copy of the current state.
func (h *Hook[T]) State() State[T] {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Reset forgets the current URL and data; in-flight results become stale.
func (h *Hook[T]) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.gen++
	h.state = State[T]{}
}

// Close stops the hook for good. Later Request and Apply calls are no-ops.
func (h *Hook[T]) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.gen++
	h.closed = true
	h.state.Loading = false
}

// Fetch runs a request to completion on the calling goroutine and returns the
// resulting state.
func (h *Hook[T]) Fetch(ctx context.Context, url string) State[T] {
	req, ok := h.Request(url)
	if ok {
		h.Apply(req.Do(ctx))
	}
	return h.State()
}
