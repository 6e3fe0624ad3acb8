package render

import (
	"time"

	"auction-dashboard/internal/notify"
	"auction-dashboard/internal/selection"
)

// SelectOption is one entry of the auction dropdown
type SelectOption struct {
	Value    string
	Label    string
	Selected bool
}

// SelectOptionsView localizes the dropdown entries kept by the selector
func SelectOptionsView(opts []selection.Option, loc *Locale) []SelectOption {
	out := make([]SelectOption, 0, len(opts))
	for _, o := range opts {
		label := loc.T("Auction %s", o.Key)
		if o.Key == selection.AllKey {
			label = loc.T("All auctions")
		}
		out = append(out, SelectOption{Value: o.Key, Label: label, Selected: o.Selected})
	}
	return out
}

// BannerEntry is one visible failure notice
type BannerEntry struct {
	ID        string
	Message   string
	ExpiresAt string
}

// BannerView localizes the active banners
func BannerView(banners []notify.Banner, loc *Locale) []BannerEntry {
	out := make([]BannerEntry, 0, len(banners))
	for _, b := range banners {
		out = append(out, BannerEntry{
			ID:        b.ID,
			Message:   loc.T(b.Message),
			ExpiresAt: b.ExpiresAt.UTC().Format(time.RFC3339),
		})
	}
	return out
}
