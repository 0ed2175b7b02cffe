package binance

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/BullionBear/obagg/internal/state"
	"github.com/rs/zerolog"
)

type fakeDoer struct {
	bodies []string
	errs   []error
	calls  int
}

func (f *fakeDoer) Do(req *http.Request) (*http.Response, error) {
	i := f.calls
	f.calls++
	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	body := f.bodies[i]
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(body)),
	}, nil
}

const snapshot100 = `{"lastUpdateId":100,"bids":[["10","1"]],"asks":[["11","1"]]}`

func newTestReconstructor(shared *state.Shared, doer httpDoer) *Reconstructor {
	r := New("BTC", "USDT", shared, zerolog.Nop())
	r.http = doer
	return r
}

// TestBinanceGateAndBootstrapRace verifies the causal-ordering gate
// accepts a diff straddling the snapshot, drops a stale diff, and
// forces a resync on a diff that leaves a gap.
func TestBinanceGateAndBootstrapRace(t *testing.T) {
	shared := state.New()
	r := newTestReconstructor(shared, &fakeDoer{bodies: []string{snapshot100}})

	r.OnMessage([]byte(`{"U":95,"u":99,"b":[],"a":[]}`))
	if r.lastUpdateID != 100 {
		t.Fatalf("after dropped stale diff, lastUpdateID = %d, want 100 (snapshot id)", r.lastUpdateID)
	}
	if r.initialUpdatePending {
		t.Fatal("initialUpdatePending should have cleared after the first dropped diff")
	}

	r.OnMessage([]byte(`{"U":101,"u":105,"b":[["9","2"]],"a":[]}`))
	if r.lastUpdateID != 105 {
		t.Fatalf("after accepted contiguous diff, lastUpdateID = %d, want 105", r.lastUpdateID)
	}

	r.OnMessage([]byte(`{"U":107,"u":110,"b":[],"a":[]}`))
	if r.lastUpdateID != 105 {
		t.Fatalf("gap diff should have been dropped, lastUpdateID changed to %d", r.lastUpdateID)
	}
	if r.bootstrapped {
		t.Fatal("a gap after bootstrap should trigger resync, clearing bootstrapped")
	}
}

func TestBinanceBootstrapRetriesThenSucceeds(t *testing.T) {
	shared := state.New()
	doer := &fakeDoer{
		bodies: []string{"", "", snapshot100},
		errs:   []error{errTransport{}, errTransport{}, nil},
	}
	r := newTestReconstructor(shared, doer)

	r.OnMessage([]byte(`{"U":101,"u":105,"b":[],"a":[]}`))

	if doer.calls != 3 {
		t.Fatalf("expected 3 snapshot attempts, got %d", doer.calls)
	}
	if !r.bootstrapped {
		t.Fatal("expected bootstrap to eventually succeed")
	}
}

func TestBinanceSnapshotErrorDropsFrame(t *testing.T) {
	shared := state.New()
	doer := &fakeDoer{
		bodies: []string{"", "", ""},
		errs:   []error{errTransport{}, errTransport{}, errTransport{}},
	}
	r := newTestReconstructor(shared, doer)

	r.OnMessage([]byte(`{"U":101,"u":105,"b":[],"a":[]}`))

	if r.bootstrapped {
		t.Fatal("bootstrap should not have succeeded")
	}
	if doer.calls != 3 {
		t.Fatalf("expected exactly 3 attempts (spec retry budget), got %d", doer.calls)
	}
}

type errTransport struct{}

func (errTransport) Error() string { return "simulated transport error" }
