package store

import (
	"fmt"
	"sync"
	"time"

	"auction-dashboard/internal/dashboarderrors"
	"auction-dashboard/internal/models"

	"github.com/go-playground/validator/v10"
)

// Slice names one independently replaceable portion of the view model
type Slice string

const (
	SnapshotSlice    Slice = "auction_snapshot"
	BidHistorySlice  Slice = "bid_history"
	AuctionListSlice Slice = "auction_list"
	StatsSlice       Slice = "stats"
)

// Slices lists every slice in render order
var Slices = []Slice{SnapshotSlice, BidHistorySlice, AuctionListSlice, StatsSlice}

// ViewModelStore is the single source of truth read by the renderers.
// Setters replace a slice wholesale or leave it untouched.
type ViewModelStore interface {
	SetAuctionSnapshot(tick uint64, p models.AuctionStatePayload) error
	SetBidHistory(tick uint64, p models.BidHistoryPayload) error
	SetAuctionList(tick uint64, p models.AuctionListPayload) error
	SetStats(tick uint64, p models.StatsPayload) error

	AuctionSnapshot() (models.AuctionSnapshot, error)
	BidHistory() ([]models.Bid, error)
	AuctionList() ([]models.Auction, error)
	Stats() (models.AggregateStats, error)

	LastApplied(slice Slice) (Applied, bool)
}

// Applied records the tick that last replaced a slice
type Applied struct {
	Tick      uint64    `json:"tick"`
	AppliedAt time.Time `json:"applied_at"`
}

// MemoryStore is a concurrency-safe in-memory implementation of ViewModelStore
type MemoryStore struct {
	mu       sync.RWMutex
	validate *validator.Validate
	now      func() time.Time

	snapshot models.AuctionSnapshot
	bids     []models.Bid
	auctions []models.Auction
	stats    models.AggregateStats

	applied map[Slice]Applied // key: slice -> value: last applied tick
}

// NewMemoryStore creates an empty store; every slice starts "not yet loaded"
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		validate: validator.New(),
		now:      time.Now,
		applied:  make(map[Slice]Applied),
	}
}

// SetAuctionSnapshot replaces the snapshot slice
func (s *MemoryStore) SetAuctionSnapshot(tick uint64, p models.AuctionStatePayload) error {
	if err := s.validate.Struct(p); err != nil {
		return shapeError(SnapshotSlice, err)
	}
	snap := p.ToSnapshot()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.admit(SnapshotSlice, tick); err != nil {
		return err
	}
	s.snapshot = snap
	return nil
}

// SetBidHistory replaces the bid history slice
func (s *MemoryStore) SetBidHistory(tick uint64, p models.BidHistoryPayload) error {
	if p == nil {
		return shapeError(BidHistorySlice, fmt.Errorf("bid history is null"))
	}
	bids := make([]models.Bid, 0, len(p))
	for i := range p {
		if err := s.validate.Struct(p[i]); err != nil {
			return shapeError(BidHistorySlice, fmt.Errorf("bid %d: %w", i, err))
		}
		bids = append(bids, p[i].ToBid())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.admit(BidHistorySlice, tick); err != nil {
		return err
	}
	s.bids = bids
	return nil
}

// SetAuctionList replaces the auction roster
func (s *MemoryStore) SetAuctionList(tick uint64, p models.AuctionListPayload) error {
	if err := s.validate.Struct(p); err != nil {
		return shapeError(AuctionListSlice, err)
	}
	auctions := make([]models.Auction, 0, len(p.Auctions))
	seen := make(map[int]struct{}, len(p.Auctions))
	for _, ap := range p.Auctions {
		a := ap.ToAuction()
		if _, dup := seen[a.AuctionID]; dup {
			return shapeError(AuctionListSlice, fmt.Errorf("duplicate auction_id %d", a.AuctionID))
		}
		seen[a.AuctionID] = struct{}{}
		auctions = append(auctions, a)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.admit(AuctionListSlice, tick); err != nil {
		return err
	}
	s.auctions = auctions
	return nil
}

// SetStats replaces the aggregate statistics slice
func (s *MemoryStore) SetStats(tick uint64, p models.StatsPayload) error {
	if err := s.validate.Struct(p); err != nil {
		return shapeError(StatsSlice, err)
	}
	stats := p.ToStats()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.admit(StatsSlice, tick); err != nil {
		return err
	}
	s.stats = stats
	return nil
}

// AuctionSnapshot returns the last good snapshot
func (s *MemoryStore) AuctionSnapshot() (models.AuctionSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.applied[SnapshotSlice]; !ok {
		return models.AuctionSnapshot{}, fmt.Errorf("get %s: %w", SnapshotSlice, dashboarderrors.ErrNotLoaded)
	}
	return s.snapshot, nil
}

// BidHistory returns a copy of the last good bid history, in server order
func (s *MemoryStore) BidHistory() ([]models.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.applied[BidHistorySlice]; !ok {
		return nil, fmt.Errorf("get %s: %w", BidHistorySlice, dashboarderrors.ErrNotLoaded)
	}
	return append([]models.Bid{}, s.bids...), nil
}

// AuctionList returns a copy of the last good roster, in server order
func (s *MemoryStore) AuctionList() ([]models.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.applied[AuctionListSlice]; !ok {
		return nil, fmt.Errorf("get %s: %w", AuctionListSlice, dashboarderrors.ErrNotLoaded)
	}
	return append([]models.Auction{}, s.auctions...), nil
}

// Stats returns the last good aggregate statistics
func (s *MemoryStore) Stats() (models.AggregateStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.applied[StatsSlice]; !ok {
		return models.AggregateStats{}, fmt.Errorf("get %s: %w", StatsSlice, dashboarderrors.ErrNotLoaded)
	}
	return s.stats, nil
}

// LastApplied reports the tick that last replaced slice
func (s *MemoryStore) LastApplied(slice Slice) (Applied, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.applied[slice]
	return a, ok
}

// admit enforces tick ordering per slice; callers hold s.mu
func (s *MemoryStore) admit(slice Slice, tick uint64) error {
	if last, ok := s.applied[slice]; ok && tick < last.Tick {
		return fmt.Errorf("set %s at tick %d (last applied %d): %w", slice, tick, last.Tick, dashboarderrors.ErrStaleTick)
	}
	s.applied[slice] = Applied{Tick: tick, AppliedAt: s.now()}
	return nil
}

func shapeError(slice Slice, err error) error {
	return &dashboarderrors.ShapeError{Slice: string(slice), Err: err}
}
