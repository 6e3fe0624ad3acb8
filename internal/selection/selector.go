package selection

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"auction-dashboard/internal/dashboarderrors"
	"auction-dashboard/internal/models"
)

// AllKey is the wire form of the "show every auction" selection
const AllKey = "all"

// Key is either "all" or a single auction id
type Key struct {
	all bool
	id  int
}

// All selects every auction
var All = Key{all: true}

// ByID selects a single auction
func ByID(id int) Key {
	return Key{id: id}
}

// IsAll reports whether k selects every auction
func (k Key) IsAll() bool { return k.all }

// ID returns the selected auction id; ok is false for All
func (k Key) ID() (id int, ok bool) {
	return k.id, !k.all
}

func (k Key) String() string {
	if k.all {
		return AllKey
	}
	return strconv.Itoa(k.id)
}

// ParseKey parses "all" or a decimal auction id
func ParseKey(raw string) (Key, error) {
	raw = strings.TrimSpace(raw)
	if strings.EqualFold(raw, AllKey) {
		return All, nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return Key{}, fmt.Errorf("parse selection %q: %w", raw, dashboarderrors.ErrInvalidSelection)
	}
	return ByID(id), nil
}

// Select returns the auctions to display for key. All returns auctions itself;
// an id yields a singleton, or an empty slice when the id is no longer listed.
func Select(auctions []models.Auction, key Key) []models.Auction {
	if key.all {
		return auctions
	}
	for _, a := range auctions {
		if a.AuctionID == key.id {
			return []models.Auction{a}
		}
	}
	return []models.Auction{}
}

// Option is one entry of the auction dropdown
type Option struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// Selector owns the selection state. Only explicit user choices mutate the key;
// polls only grow the option list.
type Selector struct {
	mu    sync.RWMutex
	key   Key
	known []int            // auction ids in first-seen order
	seen  map[int]struct{} // key: auction id
}

// NewSelector starts with every auction selected
func NewSelector() *Selector {
	return &Selector{
		key:  All,
		seen: make(map[int]struct{}),
	}
}

// Key returns the current selection
func (s *Selector) Key() Key {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.key
}

// Choose records an explicit user selection
func (s *Selector) Choose(key Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.key = key
}

// Observe appends ids not seen before, keeping first-seen order
func (s *Selector) Observe(auctions []models.Auction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range auctions {
		if _, ok := s.seen[a.AuctionID]; ok {
			continue
		}
		s.seen[a.AuctionID] = struct{}{}
		s.known = append(s.known, a.AuctionID)
	}
}

// Options returns the dropdown entries: "all" first, then every observed id.
// The selected entry is matched by id, never by position.
func (s *Selector) Options() []Option {
	s.mu.RLock()
	defer s.mu.RUnlock()

	opts := make([]Option, 0, len(s.known)+1)
	opts = append(opts, Option{Key: AllKey, Label: "All auctions", Selected: s.key.all})
	for _, id := range s.known {
		opts = append(opts, Option{
			Key:      strconv.Itoa(id),
			Label:    fmt.Sprintf("Auction %d", id),
			Selected: !s.key.all && s.key.id == id,
		})
	}
	return opts
}

// Apply filters auctions with the current key
func (s *Selector) Apply(auctions []models.Auction) []models.Auction {
	return Select(auctions, s.Key())
}
