// Command obagg-server runs the cross-exchange order book aggregator:
// it connects to Binance and Bitstamp, reconstructs each venue's book,
// and serves the merged top-N summary over a streaming gRPC endpoint.
//
// Grounded on BullionBear-sequex/cmd/order/server.go (grpc.NewServer,
// net.Listen, graceful registration) and cmd/feed/main.go (flag-based
// CLI, pkg/logger + pkg/shutdown wiring).
package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"syscall"

	"github.com/BullionBear/obagg/internal/aggregator"
	"github.com/BullionBear/obagg/internal/binance"
	"github.com/BullionBear/obagg/internal/bitstamp"
	"github.com/BullionBear/obagg/internal/feed"
	"github.com/BullionBear/obagg/internal/publish"
	"github.com/BullionBear/obagg/internal/server"
	"github.com/BullionBear/obagg/internal/state"
	"github.com/BullionBear/obagg/pkg/logger"
	"github.com/BullionBear/obagg/pkg/shutdown"
	pb "github.com/BullionBear/obagg/proto/aggregator"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc"
)

func main() {
	baseAsset := flag.String("base-asset", "", "base asset, e.g. BTC")
	quoteAsset := flag.String("quote-asset", "", "quote asset, e.g. USDT")
	levels := flag.Int("levels", 10, "number of bid/ask levels to publish")
	dustAmount := flag.String("dust-amount", "0", "levels at or below this size are filtered from published output")
	port := flag.Int("port", 50052, "gRPC listen port")
	natsURL := flag.String("nats-url", "", "optional NATS URL to republish summaries to; disabled if empty")
	dev := flag.Bool("dev", false, "enable human-readable development logging")
	flag.Parse()

	logger.InitLogger(*dev)

	if *baseAsset == "" || *quoteAsset == "" {
		logger.Log.Error().Msg("--base-asset and --quote-asset are required")
		os.Exit(1)
	}

	dust, err := decimal.NewFromString(*dustAmount)
	if err != nil {
		logger.Log.Error().Err(err).Str("dust_amount", *dustAmount).Msg("invalid --dust-amount")
		os.Exit(1)
	}

	shared := state.New()
	sd := shutdown.NewShutdown(logger.Log)

	binanceRecon := binance.New(*baseAsset, *quoteAsset, shared, logger.Log)
	binanceConn := feed.New(binanceRecon.Endpoint(), binanceRecon, logger.Log)
	binanceConn.Start(sd.Context())

	bitstampRecon := bitstamp.New(*baseAsset, *quoteAsset, shared, logger.Log)
	bitstampConn := feed.New(bitstampRecon.Endpoint(), bitstampRecon, logger.Log)
	bitstampConn.Start(sd.Context())

	agg := aggregator.New(shared, *levels, dust)

	if *natsURL != "" {
		pub, err := publish.New(*natsURL, fmt.Sprintf("obagg.%s%s.summary", *baseAsset, *quoteAsset), logger.Log)
		if err != nil {
			logger.Log.Error().Err(err).Msg("failed to connect to NATS")
			os.Exit(1)
		}
		sd.HookShutdownCallback("nats_publisher", pub.Close, 0)
		republishOut := make(chan aggregator.Summary)
		go agg.Run(sd.Context(), republishOut)
		go func() {
			for summary := range republishOut {
				pub.Publish(summary)
			}
		}()
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", *port))
	if err != nil {
		logger.Log.Error().Err(err).Int("port", *port).Msg("failed to bind gRPC port")
		os.Exit(1)
	}

	grpcServer := grpc.NewServer()
	pb.RegisterAggregatorServiceServer(grpcServer, server.New(agg, logger.Log))

	sd.HookShutdownCallback("grpc_server", grpcServer.Stop, 0)

	go func() {
		logger.Log.Info().
			Str("addr", lis.Addr().String()).
			Str("pair", *baseAsset+*quoteAsset).
			Int("levels", *levels).
			Msg("obagg-server listening")
		if err := grpcServer.Serve(lis); err != nil {
			logger.Log.Error().Err(err).Msg("gRPC server stopped serving")
		}
	}()

	sd.WaitForShutdown(syscall.SIGINT, syscall.SIGTERM)
}
