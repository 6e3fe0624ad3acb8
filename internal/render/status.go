package render

import "auction-dashboard/internal/models"

// StatusPanel is the intended content of the auction status panel
type StatusPanel struct {
	Label      string
	StateClass string
	HighestBid string
	Winner     string
}

// StatusPanelView maps the current snapshot onto the status panel
func StatusPanelView(snap models.AuctionSnapshot, loc *Locale) StatusPanel {
	panel := StatusPanel{
		Label:      loc.T("INACTIVE"),
		StateClass: "status inactive",
		HighestBid: loc.Amount(snap.HighestBid),
		Winner:     WinnerLabel(snap.WinnerID),
	}
	if snap.IsActive {
		panel.Label = loc.T("ACTIVE")
		panel.StateClass = "status active"
	}
	return panel
}

// WinnerLabel renders NoWinner as the placeholder glyph and any other id literally
func WinnerLabel(winnerID int) string {
	if winnerID == models.NoWinner {
		return Placeholder
	}
	return itoa(winnerID)
}
