// Package aggregator implements the change-driven merge-and-publish
// loop: on every advance of Shared State's version counter, it takes a
// consistent top-N snapshot of both venues, merges bids and asks across
// venues, and produces one Summary.
package aggregator

import (
	"context"
	"sort"

	"github.com/BullionBear/obagg/internal/book"
	"github.com/BullionBear/obagg/internal/state"
	"github.com/shopspring/decimal"
)

// Level is one merged, venue-tagged price level in a published Summary.
type Level struct {
	Exchange string
	Price    decimal.Decimal
	Amount   decimal.Decimal
}

// Summary is one published frame: the current best bid/ask spread and
// the top-N merged levels on each side.
type Summary struct {
	Spread decimal.Decimal
	Bids   []Level
	Asks   []Level
}

// ErrEmptyBookSide marks a tick where one side had no levels to publish
// across either venue; the caller suppresses emission for that tick
// rather than publishing a Summary with an undefined spread.
type ErrEmptyBookSide struct{}

func (ErrEmptyBookSide) Error() string { return "aggregator: empty book side, suppressing frame" }

// Aggregator merges the two venues' books in Shared State into Summary
// frames. It holds no per-process state of its own beyond its config;
// the moving parts (last-seen version) live in each Run loop.
type Aggregator struct {
	shared     *state.Shared
	levels     int
	dustAmount decimal.Decimal
}

// New returns an Aggregator publishing the top `levels` per side,
// filtering out levels whose size is <= dustAmount.
func New(shared *state.Shared, levels int, dustAmount decimal.Decimal) *Aggregator {
	return &Aggregator{shared: shared, levels: levels, dustAmount: dustAmount}
}

// Merge takes a consistent snapshot of both venues' books and produces
// one Summary, or ErrEmptyBookSide if either merged side is empty.
// Factored out from the wait loop so it can be tested without
// goroutines.
func (a *Aggregator) Merge() (Summary, error) {
	var bids, asks []Level
	a.shared.Snapshot(func(binance, bitstamp state.VenueBook) {
		bids = mergeSide("binance", binance.Bids, "bitstamp", bitstamp.Bids, a.levels, a.dustAmount, true)
		asks = mergeSide("binance", binance.Asks, "bitstamp", bitstamp.Asks, a.levels, a.dustAmount, false)
	})

	if len(bids) == 0 || len(asks) == 0 {
		return Summary{}, ErrEmptyBookSide{}
	}

	return Summary{
		Spread: asks[0].Price.Sub(bids[0].Price),
		Bids:   bids,
		Asks:   asks,
	}, nil
}

// mergeSide concatenates each venue's dust-filtered top-N for one side,
// re-sorts the combination, and truncates to N.
func mergeSide(nameA string, a *book.Book, nameB string, b *book.Book, n int, dust decimal.Decimal, descending bool) []Level {
	levels := make([]Level, 0, 2*n)
	for _, lv := range a.TopKFiltered(n, dust) {
		levels = append(levels, Level{Exchange: nameA, Price: lv.Price, Amount: lv.Size})
	}
	for _, lv := range b.TopKFiltered(n, dust) {
		levels = append(levels, Level{Exchange: nameB, Price: lv.Price, Amount: lv.Size})
	}

	sort.Slice(levels, func(i, j int) bool {
		if descending {
			return levels[i].Price.GreaterThan(levels[j].Price)
		}
		return levels[i].Price.LessThan(levels[j].Price)
	})

	if len(levels) > n {
		levels = levels[:n]
	}
	return levels
}

// Run drives the change-wait loop: block until Shared State advances,
// then push a freshly merged Summary to out. It exits only when ctx is
// cancelled; if the caller stops reading out, Run stays blocked on the
// send until then (out is unbuffered).
func (a *Aggregator) Run(ctx context.Context, out chan<- Summary) {
	lastSeen := a.shared.Version()
	for {
		lastSeen = a.shared.WaitForAdvance(ctx, lastSeen)
		select {
		case <-ctx.Done():
			return
		default:
		}

		summary, err := a.Merge()
		if err != nil {
			continue
		}

		select {
		case out <- summary:
		case <-ctx.Done():
			return
		}
	}
}
