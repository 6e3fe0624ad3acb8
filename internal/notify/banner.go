package notify

import (
	"sort"
	"sync"
	"time"

	"auction-dashboard/utils"
)

// DefaultTTL is how long a banner stays visible
const DefaultTTL = 5 * time.Second

// Banner is a transient, auto-dismissing failure notice
type Banner struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	ShownAt   time.Time `json:"shown_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Board keeps the banners currently on screen. Showing a message that is
// already visible extends it instead of stacking a duplicate.
type Board struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	banners map[string]Banner // key: message
}

// NewBoard creates a board whose banners expire after ttl
func NewBoard(ttl time.Duration) *Board {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Board{
		ttl:     ttl,
		now:     time.Now,
		banners: make(map[string]Banner),
	}
}

// WithClock replaces the board's time source. Intended for tests.
func (b *Board) WithClock(now func() time.Time) *Board {
	b.now = now
	return b
}

// Show displays message for the board's TTL
func (b *Board) Show(message string) Banner {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	banner, ok := b.banners[message]
	if !ok || !now.Before(banner.ExpiresAt) {
		banner = Banner{ID: utils.NewCorrelationID(), Message: message, ShownAt: now}
	}
	banner.ExpiresAt = now.Add(b.ttl)
	b.banners[message] = banner
	return banner
}

// Active returns the unexpired banners, oldest first, and drops expired ones
func (b *Board) Active() []Banner {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	out := make([]Banner, 0, len(b.banners))
	for msg, banner := range b.banners {
		if !now.Before(banner.ExpiresAt) {
			delete(b.banners, msg)
			continue
		}
		out = append(out, banner)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ShownAt.Equal(out[j].ShownAt) {
			return out[i].Message < out[j].Message
		}
		return out[i].ShownAt.Before(out[j].ShownAt)
	})
	return out
}
