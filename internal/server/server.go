// Package server implements the AggregatorService gRPC surface: one
// server-streaming method that hands each subscriber its own publisher
// loop against Shared State.
package server

import (
	"github.com/BullionBear/obagg/internal/aggregator"
	pb "github.com/BullionBear/obagg/proto/aggregator"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AggregatorServer implements pb.AggregatorServiceServer.
type AggregatorServer struct {
	pb.UnimplementedAggregatorServiceServer

	agg *aggregator.Aggregator
	log zerolog.Logger
}

// New returns an AggregatorServer backed by agg.
func New(agg *aggregator.Aggregator, log zerolog.Logger) *AggregatorServer {
	return &AggregatorServer{agg: agg, log: log.With().Str("component", "rpc_server").Logger()}
}

// BookSummary runs one subscriber's publish loop for the lifetime of
// the stream: block on Shared State's version counter advancing, merge
// a fresh Summary, and send it. It returns when the client disconnects
// (stream.Context() is cancelled) or a send fails (RPCClientGone).
func (s *AggregatorServer) BookSummary(_ *pb.Empty, stream pb.AggregatorService_BookSummaryServer) error {
	ctx := stream.Context()
	out := make(chan aggregator.Summary)
	subscriberID := uuid.New().String()

	log := s.log.With().Str("subscriber_id", subscriberID).Logger()
	log.Info().Msg("subscriber connected")
	defer log.Info().Msg("subscriber disconnected")

	go s.agg.Run(ctx, out)

	for {
		select {
		case <-ctx.Done():
			return nil
		case summary, ok := <-out:
			if !ok {
				return nil
			}
			if err := stream.Send(toWire(summary)); err != nil {
				log.Info().Err(err).Msg("subscriber gone, ending publish loop")
				return nil
			}
		}
	}
}

func toWire(s aggregator.Summary) *pb.Summary {
	return &pb.Summary{
		Spread: s.Spread.String(),
		Bids:   toWireLevels(s.Bids),
		Asks:   toWireLevels(s.Asks),
	}
}

func toWireLevels(levels []aggregator.Level) []*pb.Level {
	out := make([]*pb.Level, len(levels))
	for i, lv := range levels {
		out[i] = &pb.Level{Exchange: lv.Exchange, Price: lv.Price.String(), Amount: lv.Amount.String()}
	}
	return out
}
