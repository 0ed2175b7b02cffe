// Package state holds the single mutable region shared by every feed
// reconstructor (writers) and the aggregator (reader): the two venues'
// order books plus a monotonic version counter that advances on every
// mutation. The freshness signal is a counter rather than a wall-clock
// timestamp: a wall clock can tie or go backward across a clock
// adjustment, a counter cannot.
package state

import (
	"context"
	"sync"

	"github.com/BullionBear/obagg/internal/book"
)

// Venue identifies which exchange a book belongs to.
type Venue int

const (
	Binance Venue = iota
	Bitstamp
)

// VenueBook is one exchange's current bid/ask depth.
type VenueBook struct {
	Bids *book.Book
	Asks *book.Book
}

func newVenueBook() VenueBook {
	return VenueBook{Bids: book.New(book.Bid), Asks: book.New(book.Ask)}
}

// Shared is the process-wide order book state. It is created once and
// lives for the process lifetime; venue books start empty.
type Shared struct {
	mu       sync.RWMutex
	binance  VenueBook
	bitstamp VenueBook

	verMu   sync.Mutex
	version uint64
	changed chan struct{}
}

// New returns an empty Shared state with both venue books initialized.
func New() *Shared {
	return &Shared{
		binance:  newVenueBook(),
		bitstamp: newVenueBook(),
		changed:  make(chan struct{}),
	}
}

// Mutate applies fn to the given venue's bid/ask books under exclusive
// access, then bumps the version and wakes any waiters. fn must not
// block and must not call back into Shared (it already holds the lock).
// Mutate and Replace are the only ways a Reconstructor may touch venue
// book contents, ensuring one inbound frame's mutations are observed
// atomically by readers.
func (s *Shared) Mutate(v Venue, fn func(bids, asks *book.Book)) {
	s.mu.Lock()
	switch v {
	case Binance:
		fn(s.binance.Bids, s.binance.Asks)
	case Bitstamp:
		fn(s.bitstamp.Bids, s.bitstamp.Asks)
	}
	s.mu.Unlock()
	s.bump()
}

// Replace overwrites the given venue's entire bid/ask depth, used by
// Bitstamp's snapshot-replacement semantics and by Binance resync.
func (s *Shared) Replace(v Venue, bids, asks *book.Book) {
	s.mu.Lock()
	switch v {
	case Binance:
		s.binance = VenueBook{Bids: bids, Asks: asks}
	case Bitstamp:
		s.bitstamp = VenueBook{Bids: bids, Asks: asks}
	}
	s.mu.Unlock()
	s.bump()
}

func (s *Shared) bump() {
	s.verMu.Lock()
	s.version++
	ch := s.changed
	s.changed = make(chan struct{})
	s.verMu.Unlock()
	close(ch)
}

// Version returns the current version counter.
func (s *Shared) Version() uint64 {
	s.verMu.Lock()
	defer s.verMu.Unlock()
	return s.version
}

// WaitForAdvance blocks until the version advances past last or ctx is
// cancelled, whichever comes first. It returns the version observed at
// that point, which may still equal last if ctx ended the wait. The
// wakeup is a channel that bump closes and replaces on every mutation,
// so every blocked waiter is woken by the next bump; several bumps that
// land before a waiter looks are seen as one advance. Unlike sync.Cond,
// this composes with ctx.Done() in the same select.
func (s *Shared) WaitForAdvance(ctx context.Context, last uint64) uint64 {
	for {
		s.verMu.Lock()
		v := s.version
		ch := s.changed
		s.verMu.Unlock()
		if v > last {
			return v
		}
		select {
		case <-ch:
		case <-ctx.Done():
			return v
		}
	}
}

// Snapshot runs fn under a read lock, giving it a consistent view of
// both venues' top-K for one aggregation tick.
func (s *Shared) Snapshot(fn func(binance, bitstamp VenueBook)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.binance, s.bitstamp)
}
