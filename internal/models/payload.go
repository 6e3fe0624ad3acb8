package models

// Wire payloads mirror the auction service's JSON. Pointer fields tell an absent
// field apart from a zero value; conversion to domain types happens only after the
// payload passed validation at store ingestion.

// AuctionStatePayload is the body of GET /auction_state
type AuctionStatePayload struct {
	IsActive   *bool    `json:"is_active" validate:"required"`
	HighestBid *float64 `json:"highest_bid" validate:"required,gte=0"`
	WinnerID   *int     `json:"winner_id" validate:"required,gte=-1"`
}

// BidPayload is one element of GET /bids_history. The auction service does not
// always stamp bids, so timestamp is optional.
type BidPayload struct {
	SenderID       *int     `json:"sender_id" validate:"required"`
	Amount         *float64 `json:"bid" validate:"required,gte=0"`
	TimestampMs    *int64   `json:"timestamp"`
	SequenceNumber *int     `json:"sequence_number"`
}

// BidHistoryPayload is the body of GET /bids_history
type BidHistoryPayload []BidPayload

// ItemPayload describes the auctioned lot; every field is optional
type ItemPayload struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// AuctionBidPayload is a bid nested in an auction; the roster does not carry timestamps
type AuctionBidPayload struct {
	SenderID       *int     `json:"sender_id" validate:"required"`
	Amount         *float64 `json:"bid" validate:"required,gte=0"`
	TimestampMs    *int64   `json:"timestamp"`
	SequenceNumber *int     `json:"sequence_number"`
}

// AuctionPayload is one element of GET /all_auctions
type AuctionPayload struct {
	AuctionID  *int                `json:"auction_id" validate:"required"`
	Item       *ItemPayload        `json:"item"`
	HighestBid *float64            `json:"highest_bid" validate:"required,gte=0"`
	WinnerID   *int                `json:"winner_id" validate:"required"`
	IsActive   *bool               `json:"is_active" validate:"required"`
	BidHistory []AuctionBidPayload `json:"bid_history" validate:"required,dive"`
}

// AuctionListPayload is the body of GET /all_auctions
type AuctionListPayload struct {
	Auctions []AuctionPayload `json:"auctions" validate:"required,dive"`
}

// StatsPayload is the body of GET /auction_stats
type StatsPayload struct {
	AverageWinningBid      *float64 `json:"average_winning_bid" validate:"required,gte=0"`
	AverageBidsPerAuction  *float64 `json:"average_bids_per_auction" validate:"required,gte=0"`
	MaxWinningBid          *float64 `json:"max_winning_bid" validate:"required,gte=0"`
	MinWinningBid          *float64 `json:"min_winning_bid" validate:"required,gte=0"`
	TotalActiveAuctions    *int     `json:"total_active_auctions" validate:"required,gte=0"`
	TotalConcludedAuctions *int     `json:"total_concluded_auctions" validate:"required,gte=0"`
}

// ToSnapshot converts a validated payload
func (p AuctionStatePayload) ToSnapshot() AuctionSnapshot {
	return AuctionSnapshot{
		IsActive:   *p.IsActive,
		HighestBid: *p.HighestBid,
		WinnerID:   *p.WinnerID,
	}
}

// ToBid converts a validated payload
func (p BidPayload) ToBid() Bid {
	b := Bid{
		SenderID:       *p.SenderID,
		Amount:         *p.Amount,
		SequenceNumber: intOrZero(p.SequenceNumber),
	}
	if p.TimestampMs != nil {
		b.TimestampMs = *p.TimestampMs
	}
	return b
}

// ToBid converts a validated payload
func (p AuctionBidPayload) ToBid() Bid {
	b := Bid{
		SenderID:       *p.SenderID,
		Amount:         *p.Amount,
		SequenceNumber: intOrZero(p.SequenceNumber),
	}
	if p.TimestampMs != nil {
		b.TimestampMs = *p.TimestampMs
	}
	return b
}

// ToAuction converts a validated payload. The roster marks "no winner" with any
// non-positive id; it is normalized to NoWinner here.
func (p AuctionPayload) ToAuction() Auction {
	a := Auction{
		AuctionID:  *p.AuctionID,
		HighestBid: *p.HighestBid,
		WinnerID:   *p.WinnerID,
		IsActive:   *p.IsActive,
		BidHistory: make([]Bid, 0, len(p.BidHistory)),
	}
	if a.WinnerID <= 0 {
		a.WinnerID = NoWinner
	}
	if p.Item != nil {
		item := &Item{}
		if p.Item.Name != nil {
			item.Name = *p.Item.Name
		}
		if p.Item.Description != nil {
			item.Description = *p.Item.Description
		}
		a.Item = item
	}
	for _, b := range p.BidHistory {
		a.BidHistory = append(a.BidHistory, b.ToBid())
	}
	return a
}

// ToStats converts a validated payload
func (p StatsPayload) ToStats() AggregateStats {
	return AggregateStats{
		AverageWinningBid:      *p.AverageWinningBid,
		AverageBidsPerAuction:  *p.AverageBidsPerAuction,
		MaxWinningBid:          *p.MaxWinningBid,
		MinWinningBid:          *p.MinWinningBid,
		TotalActiveAuctions:    *p.TotalActiveAuctions,
		TotalConcludedAuctions: *p.TotalConcludedAuctions,
	}
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
