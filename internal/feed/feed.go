// Package feed implements the long-lived streaming connection shared by
// every venue client: dial, dispatch frames to a venue-specific Handler,
// and reconnect immediately on any transport error or unexpected close.
// Venue-specific behavior lives behind the Handler interface so one
// Connector drives both Binance and Bitstamp.
package feed

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Sender lets a Handler push frames back over the open connection, e.g.
// to send a subscription payload from OnOpen.
type Sender interface {
	Send(frame []byte) error
}

// Handler implements venue-specific behavior for a Connector. OnMessage
// is mandatory; the rest may be no-ops.
type Handler interface {
	// OnOpen is called once per successful connection, before any
	// messages are dispatched. Implementations that need to
	// (re-)subscribe on every connect do so here.
	OnOpen(s Sender) error
	// OnMessage is called once per inbound text frame.
	OnMessage(frame []byte)
	// OnError is called for transport errors (dial failures, read
	// errors). The Connector reconnects immediately afterward.
	OnError(err error)
	// OnClose is called when a connection ends, before reconnecting.
	OnClose()
}

// Connector owns one venue's socket and reconnect loop. Callers hold one
// per venue; it never shares state with other Connectors.
type Connector struct {
	endpoint string
	handler  Handler
	log      zerolog.Logger
	dialer   websocket.Dialer

	mu   sync.Mutex
	conn *websocket.Conn
}

// New returns a Connector for endpoint, not yet started.
func New(endpoint string, handler Handler, log zerolog.Logger) *Connector {
	return &Connector{
		endpoint: endpoint,
		handler:  handler,
		log:      log,
		dialer:   websocket.Dialer{HandshakeTimeout: 10 * time.Second},
	}
}

// Start launches the client on its own goroutine and returns immediately.
// It runs until ctx is cancelled.
func (c *Connector) Start(ctx context.Context) {
	go c.run(ctx)
}

func (c *Connector) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		// No backoff here by design (spec: re-enter the connect loop
		// immediately on close or transport error). The venue's own
		// rate limiting and TCP backpressure bound the retry rate.
		c.connectAndServe(ctx)
	}
}

func (c *Connector) connectAndServe(ctx context.Context) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		c.handler.OnError(err)
		return
	}

	conn, _, err := c.dialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		c.handler.OnError(err)
		return
	}

	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()
	defer func() {
		conn.Close()
		c.mu.Lock()
		c.conn = nil
		c.mu.Unlock()
		c.handler.OnClose()
	}()

	if err := c.handler.OnOpen(c); err != nil {
		c.handler.OnError(err)
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		_, frame, err := conn.ReadMessage()
		if err != nil {
			c.log.Warn().Err(err).Str("endpoint", c.endpoint).Msg("feed read error, reconnecting")
			c.handler.OnError(err)
			return
		}
		c.handler.OnMessage(frame)
	}
}

// Send implements Sender by writing a text frame on the current
// connection. It is safe to call from OnOpen.
func (c *Connector) Send(frame []byte) error {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return websocket.ErrCloseSent
	}
	return conn.WriteMessage(websocket.TextMessage, frame)
}
