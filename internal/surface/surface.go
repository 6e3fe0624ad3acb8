// Package surface holds the rendered fragments of the dashboard, one per mount
// point. It stands in for the page's DOM: renderers replace a mount's content
// wholesale and the HTTP layer serves whatever was rendered last.
package surface

import (
	"fmt"
	"sync"
	"time"

	"auction-dashboard/internal/dashboarderrors"
)

// Content types written by the renderers
const (
	ContentHTML = "text/html; charset=utf-8"
	ContentJSON = "application/json; charset=utf-8"
)

// Mount ids known to the dashboard page
const (
	AuctionStatus       = "auction-status"
	BidHistory          = "bid-history"
	AuctionSelect       = "auction-select"
	AuctionsContainer   = "auctions-container"
	StatsChart          = "statsChart"
	TrendWinningBid     = "trend-average-winning-bid"
	TrendBidsPerAuction = "trend-average-bids"
	StatsExtrema        = "stats-extrema"
	ErrorBanner         = "error-banner"
)

// DefaultMounts lists every mount point of the dashboard page
var DefaultMounts = []string{
	AuctionStatus,
	BidHistory,
	AuctionSelect,
	AuctionsContainer,
	StatsChart,
	TrendWinningBid,
	TrendBidsPerAuction,
	StatsExtrema,
	ErrorBanner,
}

// Fragment is the latest content rendered into a mount point
type Fragment struct {
	ContentType string
	Body        []byte
	Version     uint64
	UpdatedAt   time.Time
}

// Rendered reports whether anything was written to the mount yet
func (f Fragment) Rendered() bool {
	return f.Version > 0
}

// Surface is a concurrency-safe registry of mount points
type Surface struct {
	mu     sync.RWMutex
	mounts map[string]*Fragment // key: mount id
	order  []string
	now    func() time.Time
}

// New creates a surface with the given mount points
func New(mountIDs ...string) *Surface {
	s := &Surface{
		mounts: make(map[string]*Fragment, len(mountIDs)),
		now:    time.Now,
	}
	for _, id := range mountIDs {
		if _, ok := s.mounts[id]; ok {
			continue
		}
		s.mounts[id] = &Fragment{}
		s.order = append(s.order, id)
	}
	return s
}

// Replace swaps the content of mount id
func (s *Surface) Replace(id, contentType string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.mounts[id]
	if !ok {
		return fmt.Errorf("replace %s: %w", id, dashboarderrors.ErrMountMissing)
	}
	f.ContentType = contentType
	f.Body = append([]byte(nil), body...)
	f.Version++
	f.UpdatedAt = s.now()
	return nil
}

// Fragment returns a copy of the content of mount id
func (s *Surface) Fragment(id string) (Fragment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.mounts[id]
	if !ok {
		return Fragment{}, fmt.Errorf("fragment %s: %w", id, dashboarderrors.ErrMountMissing)
	}
	out := *f
	out.Body = append([]byte(nil), f.Body...)
	return out, nil
}

// Mounts returns the mount ids in registration order
func (s *Surface) Mounts() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.order...)
}
