package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Placeholder is shown wherever no winner or bid time is known
const Placeholder = "-"

var supported = []language.Tag{language.English, language.Italian}

// translations keyed by the English message
var italian = map[string]string{
	"ACTIVE":                       "ATTIVA",
	"INACTIVE":                     "INATTIVA",
	"Active":                       "Attiva",
	"Concluded":                    "Conclusa",
	"Unknown":                      "Sconosciuto",
	"Node %d":                      "Nodo %d",
	"Auction ID: %d":               "ID asta: %d",
	"Auction %s":                   "Asta %s",
	"All auctions":                 "Tutte le aste",
	"Auction Statistics":           "Statistiche aste",
	"Avg Winning Bid":              "Offerta vincente media",
	"Avg Bids/Auction":             "Offerte medie/asta",
	"Max Winning Bid":              "Offerta vincente massima",
	"Min Winning Bid":              "Offerta vincente minima",
	"Active Auctions":              "Aste attive",
	"Concluded Auctions":           "Aste concluse",
	"Failed to load auction state": "Impossibile caricare lo stato dell'asta",
	"Failed to load bid history":   "Impossibile caricare la cronologia offerte",
	"Failed to load auctions":      "Impossibile caricare le aste",
	"Failed to load statistics":    "Impossibile caricare le statistiche",
}

var timeLayouts = map[language.Tag]string{
	language.English: "1/2/2006, 3:04:05 PM",
	language.Italian: "2/1/2006, 15:04:05",
}

var messages = mustCatalog(buildCatalog(italian))

// buildCatalog registers every key in English and its translation in Italian
func buildCatalog(translations map[string]string) (*catalog.Builder, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, it := range translations {
		if err := b.SetString(language.Italian, key, it); err != nil {
			return nil, fmt.Errorf("render: catalog %q (it): %w", key, err)
		}
		if err := b.SetString(language.English, key, key); err != nil {
			return nil, fmt.Errorf("render: catalog %q (en): %w", key, err)
		}
	}
	return b, nil
}

// mustCatalog stops the process at init when the message catalog is broken
func mustCatalog(b *catalog.Builder, err error) *catalog.Builder {
	if err != nil {
		panic(err)
	}
	return b
}

// Locale formats labels, numbers and timestamps for one display language
type Locale struct {
	tag      language.Tag
	printer  *message.Printer
	location *time.Location
	currency string
}

// NewLocale resolves lang ("en", "it", "it-IT", ...) to a supported language
func NewLocale(lang string, location *time.Location, currencySymbol string) (*Locale, error) {
	requested, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("render: invalid locale %q: %w", lang, err)
	}
	base, _ := requested.Base()
	tag := language.English
	for _, s := range supported {
		if b, _ := s.Base(); b == base {
			tag = s
			break
		}
	}
	if location == nil {
		location = time.Local
	}
	return &Locale{
		tag:      tag,
		printer:  message.NewPrinter(tag, message.Catalog(messages)),
		location: location,
		currency: currencySymbol,
	}, nil
}

// Tag returns the resolved display language
func (l *Locale) Tag() language.Tag { return l.tag }

// T translates a message key, formatting args into it
func (l *Locale) T(key string, args ...any) string {
	return l.printer.Sprintf(key, args...)
}

// Time formats an epoch-millisecond timestamp in the locale's layout. A zero
// timestamp means the bid was never stamped.
func (l *Locale) Time(ms int64) string {
	if ms <= 0 {
		return Placeholder
	}
	return time.UnixMilli(ms).In(l.location).Format(timeLayouts[l.tag])
}

// Amount renders a plain number with the shortest exact representation
func (l *Locale) Amount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Currency renders a monetary amount with two decimals and the currency symbol
func (l *Locale) Currency(v float64) string {
	amount := decimal.NewFromFloat(v).StringFixed(2)
	if l.tag == language.Italian {
		amount = strings.Replace(amount, ".", ",", 1)
	}
	return amount + l.currency
}
