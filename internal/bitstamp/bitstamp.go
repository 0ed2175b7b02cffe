// Package bitstamp implements the Bitstamp order book client. Unlike
// Binance, Bitstamp's public order_book channel pushes full snapshots:
// every "data" message replaces the book wholesale rather than patching
// it; other events are ignored.
//
// Grounded on original_source/exchanges/bitstamp.py (BitstampWS), the
// only reference for this venue since none of the retrieved Go repos
// touch Bitstamp; re-expressed as a feed.Handler in this module's idiom
// instead of the original's threading.Lock-guarded dict mutation.
package bitstamp

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BullionBear/obagg/internal/book"
	"github.com/BullionBear/obagg/internal/feed"
	"github.com/BullionBear/obagg/internal/state"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const wsEndpoint = "wss://ws.bitstamp.net"

type level [2]string

// message covers both the subscription ack ("bts:subscription_succeeded")
// and the order book payload ("data"); only the latter carries Data.
type message struct {
	Event string `json:"event"`
	Data  struct {
		Bids []level `json:"bids"`
		Asks []level `json:"asks"`
	} `json:"data"`
}

type subscribePayload struct {
	Event string `json:"event"`
	Data  struct {
		Channel string `json:"channel"`
	} `json:"data"`
}

// Reconstructor mirrors Binance's Reconstructor shape (a feed.Handler
// bound to one Shared state) but needs no sequencing bookkeeping: every
// "data" frame is a complete replacement.
type Reconstructor struct {
	pair   string // upper-cased base+quote, e.g. BTCUSD
	shared *state.Shared
	log    zerolog.Logger
}

// New returns a Reconstructor for the given base/quote asset pair.
func New(base, quote string, shared *state.Shared, log zerolog.Logger) *Reconstructor {
	pair := strings.ToUpper(base) + strings.ToUpper(quote)
	return &Reconstructor{
		pair:   pair,
		shared: shared,
		log:    log.With().Str("venue", "bitstamp").Str("pair", pair).Logger(),
	}
}

// Endpoint returns the Bitstamp streaming WebSocket URL. The channel to
// subscribe to is pair-specific and is sent from OnOpen instead of being
// baked into the URL, per Bitstamp's protocol.
func (r *Reconstructor) Endpoint() string { return wsEndpoint }

// OnOpen sends the order_book_{pair} subscription payload, per
// bitstamp.py's _subscription_payload.
func (r *Reconstructor) OnOpen(s feed.Sender) error {
	var payload subscribePayload
	payload.Event = "bts:subscribe"
	payload.Data.Channel = fmt.Sprintf("order_book_%s", strings.ToLower(r.pair))
	frame, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	r.log.Info().Str("channel", payload.Data.Channel).Msg("subscribing to bitstamp order book")
	return s.Send(frame)
}

// OnClose satisfies feed.Handler.
func (r *Reconstructor) OnClose() {}

// OnError satisfies feed.Handler.
func (r *Reconstructor) OnError(err error) {
	r.log.Warn().Err(err).Msg("bitstamp transport error")
}

// OnMessage replaces the entire Bitstamp book on every "data" event, and
// ignores everything else (subscription acks, heartbeats).
func (r *Reconstructor) OnMessage(frame []byte) {
	var msg message
	if err := json.Unmarshal(frame, &msg); err != nil {
		r.log.Warn().Err(err).Msg("malformed bitstamp frame, dropping")
		return
	}
	if msg.Event != "data" {
		return
	}

	bids := book.New(book.Bid)
	applyLevels(bids, msg.Data.Bids)
	asks := book.New(book.Ask)
	applyLevels(asks, msg.Data.Asks)

	r.shared.Replace(state.Bitstamp, bids, asks)
}

func applyLevels(b *book.Book, levels []level) {
	for _, lv := range levels {
		price, err := decimal.NewFromString(lv[0])
		if err != nil {
			continue
		}
		size, err := decimal.NewFromString(lv[1])
		if err != nil {
			continue
		}
		b.Upsert(price, size)
	}
}
