// Package binance implements the Binance local order book algorithm:
// a REST snapshot bootstrap interleaved with a buffered live-diff
// stream, gated so that only causally-ordered updates are applied.
package binance

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/BullionBear/obagg/internal/book"
	"github.com/BullionBear/obagg/internal/feed"
	"github.com/BullionBear/obagg/internal/state"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	wsEndpointTemplate  = "wss://stream.binance.com:9443/ws/%s%s@depth@100ms"
	restSnapshotBaseURL = "https://www.binance.com/api/v1/depth"
	snapshotDepthLimit  = 100
	snapshotMaxAttempts = 3
	snapshotBaseBackoff = 200 * time.Millisecond
)

// SnapshotError is returned when the REST snapshot fetch exhausts its
// retry budget. The caller drops the current frame; the next live
// frame re-triggers bootstrap.
type SnapshotError struct{ Err error }

func (e *SnapshotError) Error() string { return fmt.Sprintf("binance: snapshot error: %v", e.Err) }
func (e *SnapshotError) Unwrap() error { return e.Err }

type depthLevel [2]string

type snapshotResponse struct {
	LastUpdateID uint64       `json:"lastUpdateId"`
	Bids         []depthLevel `json:"bids"`
	Asks         []depthLevel `json:"asks"`
}

type diffEvent struct {
	FirstUpdateID uint64       `json:"U"`
	FinalUpdateID uint64       `json:"u"`
	Bids          []depthLevel `json:"b"`
	Asks          []depthLevel `json:"a"`
}

// httpDoer is satisfied by *http.Client; narrowed for testability.
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Reconstructor rebuilds Binance's local book from the diff stream,
// bootstrapping from a REST snapshot on first use and after any
// OutOfSync resync. Its bookkeeping fields are thread-local: only the
// single goroutine driving this Reconstructor's feed.Connector touches
// them; only that one goroutine mutates this struct.
type Reconstructor struct {
	base, quote string // lowercase, for the WS path
	symbol      string // uppercase concatenation, for the REST query

	shared *state.Shared
	http   httpDoer
	log    zerolog.Logger

	lastUpdateID         uint64
	initialUpdatePending bool
	bootstrapped         bool
}

// New returns a Reconstructor for the given base/quote asset pair.
func New(base, quote string, shared *state.Shared, log zerolog.Logger) *Reconstructor {
	symbol := strings.ToUpper(base) + strings.ToUpper(quote)
	return &Reconstructor{
		base:                 strings.ToLower(base),
		quote:                strings.ToLower(quote),
		symbol:               symbol,
		shared:               shared,
		http:                 &http.Client{Timeout: 10 * time.Second},
		log:                  log.With().Str("venue", "binance").Str("symbol", symbol).Logger(),
		initialUpdatePending: true,
	}
}

// Endpoint returns the diff-stream WebSocket URL for this symbol.
func (r *Reconstructor) Endpoint() string {
	return fmt.Sprintf(wsEndpointTemplate, r.base, r.quote)
}

// OnOpen satisfies feed.Handler. Binance needs no subscription payload;
// the stream path already selects the symbol and update speed.
func (r *Reconstructor) OnOpen(_ feed.Sender) error { return nil }

// OnClose satisfies feed.Handler.
func (r *Reconstructor) OnClose() {}

// OnError satisfies feed.Handler.
func (r *Reconstructor) OnError(err error) {
	r.log.Warn().Err(err).Msg("binance transport error")
}

// OnMessage implements the bootstrap + gate + apply steady state
// described above.
func (r *Reconstructor) OnMessage(frame []byte) {
	var ev diffEvent
	if err := json.Unmarshal(frame, &ev); err != nil {
		r.log.Warn().Err(err).Msg("malformed binance diff frame, dropping")
		return
	}

	if !r.bootstrapped {
		if err := r.bootstrap(context.Background()); err != nil {
			r.log.Error().Err(err).Msg("binance snapshot bootstrap failed, dropping frame")
			return
		}
	}

	if !r.accept(ev) {
		return
	}

	r.lastUpdateID = ev.FinalUpdateID
	r.shared.Mutate(state.Binance, func(bids, asks *book.Book) {
		applyLevels(bids, ev.Bids)
		applyLevels(asks, ev.Asks)
	})
}

// accept implements the causal-ordering gate: a diff is applied only
// if it overlaps or extends the last applied update id.
func (r *Reconstructor) accept(ev diffEvent) bool {
	straddles := ev.FirstUpdateID <= r.lastUpdateID+1 && r.lastUpdateID+1 <= ev.FinalUpdateID
	contiguous := ev.FirstUpdateID == r.lastUpdateID+1
	if straddles || contiguous {
		return true
	}
	if r.initialUpdatePending {
		r.initialUpdatePending = false
		return false
	}
	r.log.Error().
		Uint64("last_update_id", r.lastUpdateID).
		Uint64("U", ev.FirstUpdateID).
		Uint64("u", ev.FinalUpdateID).
		Msg("binance book out of sync, forcing resync")
	r.resync()
	return false
}

// resync clears the Binance book and re-enters bootstrap on the next
// frame, rather than leaving the book permanently inconsistent.
// lastUpdateID is left as-is; the next successful bootstrap overwrites
// it with the fresh snapshot's id before it's ever read again.
func (r *Reconstructor) resync() {
	r.bootstrapped = false
	r.initialUpdatePending = true
	r.shared.Replace(state.Binance, book.New(book.Bid), book.New(book.Ask))
}

func (r *Reconstructor) bootstrap(ctx context.Context) error {
	snap, err := r.fetchSnapshotWithRetry(ctx)
	if err != nil {
		return &SnapshotError{Err: err}
	}

	bids := book.New(book.Bid)
	applyLevels(bids, snap.Bids)
	asks := book.New(book.Ask)
	applyLevels(asks, snap.Asks)

	r.shared.Replace(state.Binance, bids, asks)
	r.lastUpdateID = snap.LastUpdateID
	r.bootstrapped = true
	return nil
}

func (r *Reconstructor) fetchSnapshotWithRetry(ctx context.Context) (*snapshotResponse, error) {
	var lastErr error
	backoff := snapshotBaseBackoff
	for attempt := 1; attempt <= snapshotMaxAttempts; attempt++ {
		snap, err := r.fetchSnapshot(ctx)
		if err == nil {
			return snap, nil
		}
		lastErr = err
		r.log.Warn().Err(err).Int("attempt", attempt).Msg("binance snapshot fetch failed")
		if attempt == snapshotMaxAttempts {
			break
		}
		time.Sleep(backoff)
		backoff *= 2
	}
	return nil, lastErr
}

func (r *Reconstructor) fetchSnapshot(ctx context.Context) (*snapshotResponse, error) {
	url := fmt.Sprintf("%s?symbol=%s&limit=%d", restSnapshotBaseURL, r.symbol, snapshotDepthLimit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := r.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("snapshot HTTP %d", resp.StatusCode)
	}
	var snap snapshotResponse
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func applyLevels(b *book.Book, levels []depthLevel) {
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
