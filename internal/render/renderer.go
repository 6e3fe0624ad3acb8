package render

import (
	"bytes"
	"errors"

	"auction-dashboard/internal/dashboarderrors"
	"auction-dashboard/internal/models"
	"auction-dashboard/internal/notify"
	"auction-dashboard/internal/selection"
	"auction-dashboard/internal/surface"
	"auction-dashboard/internal/trend"
	"auction-dashboard/utils"

	json "github.com/goccy/go-json"
)

// Surface receives rendered fragments
type Surface interface {
	Replace(id, contentType string, body []byte) error
}

// Renderer applies views to the surface. A failure in one panel is logged
// and never stops the other panels from rendering.
type Renderer struct {
	surface     Surface
	locale      *Locale
	synth       *trend.Synthesizer
	trendPoints int
}

// NewRenderer creates a Renderer. trendPoints <= 0 uses trend.DefaultPoints.
func NewRenderer(s Surface, loc *Locale, synth *trend.Synthesizer, trendPoints int) *Renderer {
	if trendPoints <= 0 {
		trendPoints = trend.DefaultPoints
	}
	return &Renderer{surface: s, locale: loc, synth: synth, trendPoints: trendPoints}
}

// RenderStatus renders the status panel
func (r *Renderer) RenderStatus(snap models.AuctionSnapshot) {
	r.applyHTML(surface.AuctionStatus, "status", StatusPanelView(snap, r.locale))
}

// RenderBidHistory replaces the whole bid history list
func (r *Renderer) RenderBidHistory(bids []models.Bid) {
	r.applyHTML(surface.BidHistory, "history", BidHistoryView(bids, r.locale))
}

// RenderAuctionCards replaces every card of the auctions container
func (r *Renderer) RenderAuctionCards(auctions []models.Auction) {
	r.applyHTML(surface.AuctionsContainer, "cards", AuctionCardsView(auctions, r.locale))
}

// RenderSelectOptions renders the auction dropdown
func (r *Renderer) RenderSelectOptions(opts []selection.Option) {
	r.applyHTML(surface.AuctionSelect, "options", SelectOptionsView(opts, r.locale))
}

// RenderBanners renders the visible failure notices
func (r *Renderer) RenderBanners(banners []notify.Banner) {
	r.applyHTML(surface.ErrorBanner, "banners", BannerView(banners, r.locale))
}

// RenderCharts regenerates the bar chart, the synthetic trend lines and the extrema
func (r *Renderer) RenderCharts(stats models.AggregateStats, auctionCount int) {
	set, err := ChartSetView(stats, auctionCount, r.synth, r.trendPoints, r.locale)
	if err != nil {
		utils.Error("render: failed to build chart set", map[string]any{"error": err.Error()})
		return
	}
	r.applyJSON(surface.StatsChart, set.Bar)
	for _, tc := range set.Trends {
		r.applyJSON(tc.Mount, tc.Config)
	}
	r.applyHTML(surface.StatsExtrema, "extrema", set.Extrema)
}

func (r *Renderer) applyHTML(mount, name string, view any) {
	var buf bytes.Buffer
	if err := fragments.ExecuteTemplate(&buf, name, view); err != nil {
		utils.Error("render: template failed", map[string]any{"mount": mount, "template": name, "error": err.Error()})
		return
	}
	r.apply(mount, surface.ContentHTML, buf.Bytes())
}

func (r *Renderer) applyJSON(mount string, cfg ChartConfig) {
	body, err := json.Marshal(cfg)
	if err != nil {
		utils.Error("render: chart encoding failed", map[string]any{"mount": mount, "error": err.Error()})
		return
	}
	r.apply(mount, surface.ContentJSON, body)
}

func (r *Renderer) apply(mount, contentType string, body []byte) {
	if err := r.surface.Replace(mount, contentType, body); err != nil {
		if errors.Is(err, dashboarderrors.ErrMountMissing) {
			utils.Warn("render: mount point missing, skipping panel", map[string]any{"mount": mount})
			return
		}
		utils.Error("render: apply failed", map[string]any{"mount": mount, "error": err.Error()})
	}
}
