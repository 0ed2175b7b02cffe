// Command obagg-client is a minimal stdout consumer of the BookSummary
// stream, useful for smoke-testing obagg-server without a full TUI.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"

	pb "github.com/BullionBear/obagg/proto/aggregator"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func main() {
	addr := flag.String("addr", "localhost:50052", "obagg-server address")
	flag.Parse()

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("failed to dial %s: %v", *addr, err)
	}
	defer conn.Close()

	client := pb.NewAggregatorServiceClient(conn)
	stream, err := client.BookSummary(context.Background(), &pb.Empty{})
	if err != nil {
		log.Fatalf("failed to open BookSummary stream: %v", err)
	}

	for {
		summary, err := stream.Recv()
		if err == io.EOF {
			return
		}
		if err != nil {
			log.Fatalf("stream error: %v", err)
		}
		printSummary(summary)
	}
}

func printSummary(s *pb.Summary) {
	fmt.Printf("spread=%s\n", s.Spread)
	for _, lv := range s.Bids {
		fmt.Printf("  bid %-10s %-15s %s\n", lv.Exchange, lv.Price, lv.Amount)
	}
	for _, lv := range s.Asks {
		fmt.Printf("  ask %-10s %-15s %s\n", lv.Exchange, lv.Price, lv.Amount)
	}
}
