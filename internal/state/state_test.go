package state

import (
	"context"
	"testing"
	"time"

	"github.com/BullionBear/obagg/internal/book"
	"github.com/shopspring/decimal"
)

func TestMutateBumpsVersion(t *testing.T) {
	s := New()
	v0 := s.Version()

	s.Mutate(Binance, func(bids, asks *book.Book) {
		bids.Upsert(decimal.NewFromInt(100), decimal.NewFromInt(1))
	})

	if s.Version() != v0+1 {
		t.Fatalf("version after one mutation = %d, want %d", s.Version(), v0+1)
	}

	var bidLen int
	s.Snapshot(func(binance, bitstamp VenueBook) {
		bidLen = binance.Bids.Len()
	})
	if bidLen != 1 {
		t.Fatalf("binance bids len = %d, want 1", bidLen)
	}
}

func TestWaitForAdvanceWakesOnMutate(t *testing.T) {
	s := New()
	start := s.Version()

	done := make(chan uint64, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		done <- s.WaitForAdvance(ctx, start)
	}()

	time.Sleep(10 * time.Millisecond)
	s.Mutate(Bitstamp, func(bids, asks *book.Book) {
		asks.Upsert(decimal.NewFromInt(10), decimal.NewFromInt(1))
	})

	select {
	case v := <-done:
		if v <= start {
			t.Fatalf("WaitForAdvance returned %d, want > %d", v, start)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("WaitForAdvance did not wake up after mutation")
	}
}

func TestWaitForAdvanceRespectsContext(t *testing.T) {
	s := New()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	s.WaitForAdvance(ctx, s.Version())
	if time.Since(start) > time.Second {
		t.Fatal("WaitForAdvance blocked well past context deadline")
	}
}

func TestReplaceIsWholeSideSwap(t *testing.T) {
	s := New()
	first := book.New(book.Bid)
	first.Upsert(decimal.NewFromInt(1), decimal.NewFromInt(1))
	firstAsk := book.New(book.Ask)
	s.Replace(Bitstamp, first, firstAsk)

	second := book.New(book.Bid)
	second.Upsert(decimal.NewFromInt(2), decimal.NewFromInt(1))
	secondAsk := book.New(book.Ask)
	s.Replace(Bitstamp, second, secondAsk)

	var bidLen int
	var price string
	s.Snapshot(func(binance, bitstamp VenueBook) {
		bidLen = bitstamp.Bids.Len()
		lv, _ := bitstamp.Bids.Index(0)
		price = lv.Price.String()
	})
	if bidLen != 1 || price != "2" {
		t.Fatalf("book after second Replace = len %d price %s, want len 1 price 2", bidLen, price)
	}
}
