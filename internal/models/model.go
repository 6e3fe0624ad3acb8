package models

// NoWinner is the canonical "no winning bidder yet" sentinel across the view model.
const NoWinner = -1

// AuctionSnapshot is the live state of the single current auction
type AuctionSnapshot struct {
	IsActive   bool    `json:"is_active"`
	HighestBid float64 `json:"highest_bid"`
	WinnerID   int     `json:"winner_id"`
}

// HasWinner reports whether a winning bidder is known
func (s AuctionSnapshot) HasWinner() bool {
	return s.WinnerID != NoWinner
}

// Bid is a single offer as received from the auction service
type Bid struct {
	SenderID       int     `json:"sender_id"`
	Amount         float64 `json:"bid"`
	TimestampMs    int64   `json:"timestamp"`
	SequenceNumber int     `json:"sequence_number"`
}

// Item is the lot being auctioned
type Item struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Auction is one entry of the full auction roster, keyed by AuctionID
type Auction struct {
	AuctionID  int     `json:"auction_id"`
	Item       *Item   `json:"item,omitempty"`
	HighestBid float64 `json:"highest_bid"`
	WinnerID   int     `json:"winner_id"`
	IsActive   bool    `json:"is_active"`
	BidHistory []Bid   `json:"bid_history"`
}

// HasWinner reports whether a winning bidder is known
func (a Auction) HasWinner() bool {
	return a.WinnerID != NoWinner
}

// AggregateStats is the point-in-time statistics bundle
type AggregateStats struct {
	AverageWinningBid      float64 `json:"average_winning_bid"`
	AverageBidsPerAuction  float64 `json:"average_bids_per_auction"`
	MaxWinningBid          float64 `json:"max_winning_bid"`
	MinWinningBid          float64 `json:"min_winning_bid"`
	TotalActiveAuctions    int     `json:"total_active_auctions"`
	TotalConcludedAuctions int     `json:"total_concluded_auctions"`
}

// TrendSeries is a derived, chart-ready series. It is never stored.
type TrendSeries struct {
	Labels []string
	Values []float64
}
