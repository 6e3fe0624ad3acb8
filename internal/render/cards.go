package render

import (
	"html/template"
	"strconv"

	"auction-dashboard/internal/models"

	"github.com/microcosm-cc/bluemonday"
)

// item names and descriptions come from the auction service and are shown as plain text
var namePolicy = bluemonday.StrictPolicy()

// CardBid is one bid nested in an auction card
type CardBid struct {
	Sender string
	Amount string
}

// AuctionCard is the intended content of one auction card
type AuctionCard struct {
	AuctionID       int
	Title           string
	ItemName        template.HTML // sanitized
	ItemDescription template.HTML // sanitized, empty when the item has none
	HighestBid      string
	Winner          string
	StatusBadge     string
	StatusClass     string
	Bids            []CardBid
}

// AuctionCardList replaces every child of the auctions container
type AuctionCardList struct {
	Cards []AuctionCard
}

// AuctionCardsView maps the selected auctions onto cards, keeping their order
func AuctionCardsView(auctions []models.Auction, loc *Locale) AuctionCardList {
	list := AuctionCardList{Cards: make([]AuctionCard, 0, len(auctions))}
	for _, a := range auctions {
		card := AuctionCard{
			AuctionID:       a.AuctionID,
			Title:           loc.T("Auction ID: %d", a.AuctionID),
			ItemName:        itemName(a.Item, loc),
			ItemDescription: itemDescription(a.Item),
			HighestBid:      loc.Currency(a.HighestBid),
			Winner:          WinnerLabel(a.WinnerID),
			StatusBadge:     loc.T("Concluded"),
			StatusClass:     "badge concluded",
			Bids:            make([]CardBid, 0, len(a.BidHistory)),
		}
		if a.IsActive {
			card.StatusBadge = loc.T("Active")
			card.StatusClass = "badge active"
		}
		for _, b := range a.BidHistory {
			card.Bids = append(card.Bids, CardBid{
				Sender: loc.T("Node %d", b.SenderID),
				Amount: loc.Currency(b.Amount),
			})
		}
		list.Cards = append(list.Cards, card)
	}
	return list
}

func itemName(item *models.Item, loc *Locale) template.HTML {
	if item != nil {
		if name := namePolicy.Sanitize(item.Name); name != "" {
			return template.HTML(name)
		}
	}
	return template.HTML(template.HTMLEscapeString(loc.T("Unknown")))
}

func itemDescription(item *models.Item) template.HTML {
	if item == nil {
		return ""
	}
	return template.HTML(namePolicy.Sanitize(item.Description))
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
