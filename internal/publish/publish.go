// Package publish optionally republishes aggregated summaries onto a
// NATS JetStream subject, so downstream consumers that don't want to
// hold a gRPC stream open can instead tail a durable subject.
package publish

import (
	"encoding/json"

	"github.com/BullionBear/obagg/internal/aggregator"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

// Publisher republishes Summary frames as JSON onto one NATS subject.
type Publisher struct {
	conn    *nats.Conn
	js      nats.JetStreamContext
	subject string
	log     zerolog.Logger
}

// New connects to url and returns a Publisher bound to subject. The
// JetStream stream itself is assumed to already exist (provisioned out
// of band); this package only publishes into it.
func New(url, subject string, log zerolog.Logger) (*Publisher, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}
	js, err := conn.JetStream()
	if err != nil {
		conn.Close()
		return nil, err
	}
	return &Publisher{conn: conn, js: js, subject: subject, log: log.With().Str("component", "nats_publisher").Logger()}, nil
}

// Publish marshals summary as JSON and republishes it. A publish
// failure is logged and swallowed: NATS republication is a best-effort
// side channel, not a requirement of the primary gRPC stream.
func (p *Publisher) Publish(summary aggregator.Summary) {
	data, err := json.Marshal(summaryWire{
		Spread: summary.Spread.String(),
		Bids:   toWireLevels(summary.Bids),
		Asks:   toWireLevels(summary.Asks),
	})
	if err != nil {
		p.log.Warn().Err(err).Msg("failed to marshal summary for NATS republication")
		return
	}
	if _, err := p.js.Publish(p.subject, data); err != nil {
		p.log.Warn().Err(err).Msg("failed to publish summary to NATS")
	}
}

// Close closes the underlying NATS connection (it does not drain it).
func (p *Publisher) Close() {
	p.conn.Close()
}

type wireLevel struct {
	Exchange string `json:"exchange"`
	Price    string `json:"price"`
	Amount   string `json:"amount"`
}

type summaryWire struct {
	Spread string      `json:"spread"`
	Bids   []wireLevel `json:"bids"`
	Asks   []wireLevel `json:"asks"`
}

func toWireLevels(levels []aggregator.Level) []wireLevel {
	out := make([]wireLevel, len(levels))
	for i, lv := range levels {
		out[i] = wireLevel{Exchange: lv.Exchange, Price: lv.Price.String(), Amount: lv.Amount.String()}
	}
	return out
}
