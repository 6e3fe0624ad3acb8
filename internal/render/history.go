package render

import "auction-dashboard/internal/models"

// BidEntry is one line of the bid history list
type BidEntry struct {
	Sender string
	Amount string
	Time   string
}

// BidHistoryList is the intended content of the bid history container.
// The container is scrolled to its end after every render so the newest bid stays visible.
type BidHistoryList struct {
	Entries     []BidEntry
	ScrollToEnd bool
}

// BidHistoryView maps bids in arrival order; no re-sorting happens here
func BidHistoryView(bids []models.Bid, loc *Locale) BidHistoryList {
	list := BidHistoryList{
		Entries:     make([]BidEntry, 0, len(bids)),
		ScrollToEnd: true,
	}
	for _, b := range bids {
		list.Entries = append(list.Entries, BidEntry{
			Sender: loc.T("Node %d", b.SenderID),
			Amount: loc.Currency(b.Amount),
			Time:   loc.Time(b.TimestampMs),
		})
	}
	return list
}
