package bitstamp

import (
	"encoding/json"
	"testing"

	"github.com/BullionBear/obagg/internal/state"
	"github.com/rs/zerolog"
)

type fakeSender struct {
	sent [][]byte
	err  error
}

func (f *fakeSender) Send(frame []byte) error {
	f.sent = append(f.sent, frame)
	return f.err
}

// TestOnOpenSendsSubscriptionPayload verifies the exact subscribe
// frame sent on connect for a given pair.
func TestOnOpenSendsSubscriptionPayload(t *testing.T) {
	r := New("BTC", "USD", state.New(), zerolog.Nop())
	sender := &fakeSender{}

	if err := r.OnOpen(sender); err != nil {
		t.Fatalf("OnOpen returned error: %v", err)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("expected exactly one frame sent, got %d", len(sender.sent))
	}

	var got subscribePayload
	if err := json.Unmarshal(sender.sent[0], &got); err != nil {
		t.Fatalf("subscription payload is not valid JSON: %v", err)
	}
	if got.Event != "bts:subscribe" {
		t.Fatalf("event = %q, want bts:subscribe", got.Event)
	}
	if got.Data.Channel != "order_book_btcusd" {
		t.Fatalf("channel = %q, want order_book_btcusd", got.Data.Channel)
	}
}

// TestOnMessageReplacesWholeBook verifies a later "data" frame leaves
// the book equal to only that frame's contents, with no trace of the
// earlier one.
func TestOnMessageReplacesWholeBook(t *testing.T) {
	shared := state.New()
	r := New("BTC", "USD", shared, zerolog.Nop())

	r.OnMessage([]byte(`{"event":"data","data":{"bids":[["100","1"],["99","2"]],"asks":[["101","1"]]}}`))
	r.OnMessage([]byte(`{"event":"data","data":{"bids":[["50","3"]],"asks":[["55","1"]]}}`))

	var bidLen, askLen int
	var bidPrice string
	shared.Snapshot(func(binance, bitstamp state.VenueBook) {
		bidLen = bitstamp.Bids.Len()
		askLen = bitstamp.Asks.Len()
		lv, _ := bitstamp.Bids.Index(0)
		bidPrice = lv.Price.String()
	})

	if bidLen != 1 || askLen != 1 {
		t.Fatalf("book after second data frame has %d bids, %d asks, want 1 and 1", bidLen, askLen)
	}
	if bidPrice != "50" {
		t.Fatalf("top bid price = %q, want 50 (first frame's 100/99 must be gone)", bidPrice)
	}
}

// TestOnMessageIgnoresNonDataEvents covers subscription acks and any
// other non-"data" event Bitstamp may send on the same channel.
func TestOnMessageIgnoresNonDataEvents(t *testing.T) {
	shared := state.New()
	r := New("BTC", "USD", shared, zerolog.Nop())

	before := shared.Version()
	r.OnMessage([]byte(`{"event":"bts:subscription_succeeded","data":{}}`))
	if shared.Version() != before {
		t.Fatal("a non-data event must not mutate shared state")
	}
}
