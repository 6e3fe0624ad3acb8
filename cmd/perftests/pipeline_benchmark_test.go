package perftests

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"auction-dashboard/internal/models"
	"auction-dashboard/internal/selection"
	"auction-dashboard/internal/store"
	"auction-dashboard/internal/trend"
)

// Benchmark 1: Synthesize - default twelve point series
func Benchmark_Synthesize_Default(b *testing.B) {
	synth := trend.NewSynthesizer()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := synth.Synthesize(150, trend.DefaultPoints, 40); err != nil {
			b.Fatalf("failed to synthesize: %v", err)
		}
	}
}

// Benchmark 2: Synthesize - shared synthesizer under parallel renders
func Benchmark_Synthesize_Parallel(b *testing.B) {
	synth := trend.NewSynthesizer()

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := synth.Synthesize(99.5, 48, 1000); err != nil {
				b.Errorf("failed to synthesize: %v", err)
				return
			}
		}
	})
}

// Benchmark 3: Select - by id over rosters of increasing size
func Benchmark_Select_ByID(b *testing.B) {
	for _, size := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("roster_%d", size), func(b *testing.B) {
			auctions := makeRoster(size)
			key := selection.ByID(size - 1)

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if got := selection.Select(auctions, key); len(got) != 1 {
					b.Fatalf("expected one auction, got %d", len(got))
				}
			}
		})
	}
}

// Benchmark 4: SetAuctionList - validation plus normalization of a full roster
func Benchmark_Store_SetAuctionList(b *testing.B) {
	payload := rosterPayload(200)
	vm := store.NewMemoryStore()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := vm.SetAuctionList(uint64(i+1), payload); err != nil {
			b.Fatalf("failed to apply roster: %v", err)
		}
	}
}

// Benchmark 5: RunTick - full pipeline against an in-process backend
func Benchmark_RunTick(b *testing.B) {
	svc := setupPipeline(b, 100)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if report := svc.RunTick(context.Background(), uint64(i+1)); !report.OK() {
			b.Fatalf("tick %d failed: %v", i+1, report.Errors)
		}
	}
}

func makeRoster(size int) []models.Auction {
	auctions := make([]models.Auction, size)
	for i := range auctions {
		auctions[i] = models.Auction{
			AuctionID:  i,
			Item:       &models.Item{Name: fmt.Sprintf("item_%d", i)},
			HighestBid: float64(rand.Intn(1000)),
			WinnerID:   models.NoWinner,
			IsActive:   i%2 == 0,
		}
	}
	return auctions
}

func rosterPayload(size int) models.AuctionListPayload {
	var p models.AuctionListPayload
	for i := 0; i < size; i++ {
		id, winner := i+1, i%5
		bid, active := float64(100+i), i%3 == 0
		name := fmt.Sprintf("item_%d", i)
		senderID, amount := 1, float64(100+i)
		p.Auctions = append(p.Auctions, models.AuctionPayload{
			AuctionID:  &id,
			Item:       &models.ItemPayload{Name: &name},
			HighestBid: &bid,
			WinnerID:   &winner,
			IsActive:   &active,
			BidHistory: []models.AuctionBidPayload{{SenderID: &senderID, Amount: &amount}},
		})
	}
	return p
}
