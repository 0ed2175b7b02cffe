package book

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func levels(b *Book) []string {
	out := make([]string, 0, b.Len())
	for i := 0; i < b.Len(); i++ {
		lv, err := b.Index(i)
		if err != nil {
			panic(err)
		}
		out = append(out, lv.Price.String())
	}
	return out
}

// TestBidAskOrdering verifies bids are returned highest-first and
// asks lowest-first.
func TestBidAskOrdering(t *testing.T) {
	bids := New(Bid)
	bids.Upsert(d("19442"), d("0.0534"))
	bids.Upsert(d("19666"), d("0.2"))
	bids.Upsert(d("19555"), d("1"))

	got := levels(bids)
	want := []string{"19666", "19555", "19442"}
	if !equal(got, want) {
		t.Fatalf("bids order = %v, want %v", got, want)
	}

	asks := New(Ask)
	asks.Upsert(d("19678"), d("0.7"))
	asks.Upsert(d("19667"), d("0.88"))
	asks.Upsert(d("19700"), d("1"))

	got = levels(asks)
	want = []string{"19667", "19678", "19700"}
	if !equal(got, want) {
		t.Fatalf("asks order = %v, want %v", got, want)
	}
}

// TestRemovalViaZeroSize verifies an upsert with zero size removes
// the level instead of inserting one.
func TestRemovalViaZeroSize(t *testing.T) {
	bids := New(Bid)
	bids.Upsert(d("19442"), d("0.0534"))
	bids.Upsert(d("19666"), d("0.2"))
	bids.Upsert(d("19555"), d("1"))
	bids.Upsert(d("19666"), d("0"))
	bids.Upsert(d("19555"), d("0"))

	got := levels(bids)
	want := []string{"19442"}
	if !equal(got, want) {
		t.Fatalf("bids after removal = %v, want %v", got, want)
	}

	asks := New(Ask)
	asks.Upsert(d("19678"), d("0.7"))
	asks.Upsert(d("19667"), d("0.88"))
	asks.Upsert(d("19700"), d("1"))
	asks.Upsert(d("19667"), d("0"))
	asks.Upsert(d("19678"), d("0"))

	got = levels(asks)
	want = []string{"19700"}
	if !equal(got, want) {
		t.Fatalf("asks after removal = %v, want %v", got, want)
	}
}

func TestUpsertZeroEqualsRemove(t *testing.T) {
	present := New(Bid)
	present.Upsert(d("100"), d("1"))
	present.Upsert(d("100"), d("0"))
	if present.Len() != 0 {
		t.Fatalf("upsert(p,0) on present price left %d levels", present.Len())
	}

	absent := New(Bid)
	absent.Upsert(d("100"), d("0"))
	if absent.Len() != 0 {
		t.Fatalf("upsert(p,0) on absent price left %d levels", absent.Len())
	}
}

func TestUniquePricePerSide(t *testing.T) {
	b := New(Ask)
	b.Upsert(d("10"), d("1"))
	b.Upsert(d("10"), d("2"))
	if b.Len() != 1 {
		t.Fatalf("expected a single level at a repeated price, got %d", b.Len())
	}
	lv, err := b.Index(0)
	if err != nil {
		t.Fatalf("Index(0): %v", err)
	}
	if !lv.Size.Equal(d("2")) {
		t.Fatalf("expected overwritten size 2, got %s", lv.Size)
	}
}

func TestIndexOutOfRange(t *testing.T) {
	b := New(Bid)
	if _, err := b.Index(0); err != ErrOutOfRange {
		t.Fatalf("expected ErrOutOfRange on empty book, got %v", err)
	}
	b.Upsert(d("1"), d("1"))
	if _, err := b.Index(1); err != ErrOutOfRange {
		t.Fatalf("expected ErrOutOfRange past the end, got %v", err)
	}
}

// TestDustFilter verifies TopKFiltered skips levels at or below the
// minimum size while still filling out the requested depth.
func TestDustFilter(t *testing.T) {
	bids := New(Bid)
	bids.Upsert(d("100"), d("1"))
	bids.Upsert(d("99"), d("0.4"))
	bids.Upsert(d("98"), d("0.6"))

	got := bids.TopKFiltered(2, d("0.5"))
	if len(got) != 2 || got[0].Price.String() != "100" || got[1].Price.String() != "98" {
		t.Fatalf("dust-filtered top 2 = %+v", got)
	}
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
