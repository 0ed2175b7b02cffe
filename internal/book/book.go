// Package book implements the price-indexed order book side described by
// the aggregator: a decimal-keyed, price-sorted map supporting upsert and
// removal in O(log n), plus ordered positional access by walking from the
// best level (O(i) for position i).
package book

import (
	"errors"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/shopspring/decimal"
)

// ErrOutOfRange is returned by Index when i >= Len().
var ErrOutOfRange = errors.New("book: index out of range")

// Side distinguishes bid depth (best = highest price) from ask depth
// (best = lowest price). Both sides are stored in the same ascending
// treemap; Side only changes how Book walks it.
type Side int

const (
	Bid Side = iota
	Ask
)

// Level is a single resting price/size pair.
type Level struct {
	Price decimal.Decimal
	Size  decimal.Decimal
}

func decimalComparator(a, b interface{}) int {
	return a.(decimal.Decimal).Cmp(b.(decimal.Decimal))
}

// Book is one side (bids or asks) of a venue's order book. It is not
// internally synchronized: callers serialize access the way Shared
// State does, holding one lock for the span of a whole update.
type Book struct {
	side   Side
	levels *treemap.Map
}

// New returns an empty Book for the given side.
func New(side Side) *Book {
	return &Book{
		side:   side,
		levels: treemap.NewWith(decimalComparator),
	}
}

// Upsert inserts or overwrites the level at price. A zero size removes
// the level instead, matching venue delete-by-zero-quantity semantics.
func (b *Book) Upsert(price, size decimal.Decimal) {
	if size.IsZero() || size.IsNegative() {
		b.levels.Remove(price)
		return
	}
	b.levels.Put(price, size)
}

// Remove deletes the level at price, if present. No-op otherwise.
func (b *Book) Remove(price decimal.Decimal) {
	b.levels.Remove(price)
}

// Len returns the number of resting levels.
func (b *Book) Len() int {
	return b.levels.Size()
}

// Index returns the i-th level in sort order (best first).
func (b *Book) Index(i int) (Level, error) {
	if i < 0 || i >= b.levels.Size() {
		return Level{}, ErrOutOfRange
	}
	it := b.levels.Iterator()
	if b.side == Ask {
		for pos := 0; it.Next(); pos++ {
			if pos == i {
				return Level{Price: it.Key().(decimal.Decimal), Size: it.Value().(decimal.Decimal)}, nil
			}
		}
	} else {
		it.End()
		for pos := 0; it.Prev(); pos++ {
			if pos == i {
				return Level{Price: it.Key().(decimal.Decimal), Size: it.Value().(decimal.Decimal)}, nil
			}
		}
	}
	return Level{}, ErrOutOfRange
}

// TopK returns the first min(k, Len()) levels in sort order.
func (b *Book) TopK(k int) []Level {
	if k <= 0 {
		return nil
	}
	n := b.levels.Size()
	if k > n {
		k = n
	}
	out := make([]Level, 0, k)
	it := b.levels.Iterator()
	if b.side == Ask {
		for it.Next() {
			out = append(out, Level{Price: it.Key().(decimal.Decimal), Size: it.Value().(decimal.Decimal)})
			if len(out) == k {
				break
			}
		}
	} else {
		it.End()
		for it.Prev() {
			out = append(out, Level{Price: it.Key().(decimal.Decimal), Size: it.Value().(decimal.Decimal)})
			if len(out) == k {
				break
			}
		}
	}
	return out
}

// TopKFiltered behaves like TopK but skips levels whose size is <= min,
// continuing to scan past filtered levels instead of consuming the
// budget on them. Used by the aggregator's dust filter.
func (b *Book) TopKFiltered(k int, min decimal.Decimal) []Level {
	if k <= 0 {
		return nil
	}
	out := make([]Level, 0, k)
	it := b.levels.Iterator()
	visit := func(price, size decimal.Decimal) bool {
		if size.GreaterThan(min) {
			out = append(out, Level{Price: price, Size: size})
		}
		return len(out) < k
	}
	if b.side == Ask {
		for it.Next() {
			if !visit(it.Key().(decimal.Decimal), it.Value().(decimal.Decimal)) {
				break
			}
		}
	} else {
		it.End()
		for it.Prev() {
			if !visit(it.Key().(decimal.Decimal), it.Value().(decimal.Decimal)) {
				break
			}
		}
	}
	return out
}
