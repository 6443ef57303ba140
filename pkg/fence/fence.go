// Package fence implements last-request-wins staleness control for async
// query channels. Each channel owns a monotonically increasing token; a
// response is applied only when its token is still the channel's newest.
package fence

import "sync"

// Channel names an independent query stream with its own token sequence.
type Channel string

// The two query channels the view controller uses. They are independent: a
// calendar fetch never invalidates a page fetch, and vice versa.
const (
	Page     Channel = "page"
	Calendar Channel = "calendar"
)

// Fence tracks the newest issued token per channel.
type Fence struct {
	mu  sync.Mutex
	seq map[Channel]uint64
}

// New creates an empty fence.
func New() *Fence {
	return &Fence{seq: make(map[Channel]uint64)}
}

// Begin increments and returns the channel's token. Call it once per issued
// request, at issue time.
func (f *Fence) Begin(ch Channel) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq[ch]++
	return f.seq[ch]
}

// Accept reports whether a response carrying token may be applied: true iff
// token is still the newest Begin on the channel. Stale responses are simply
// discarded by the caller, never surfaced as errors.
func (f *Fence) Accept(ch Channel, token uint64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seq[ch] == token
}
