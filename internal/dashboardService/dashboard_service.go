package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"auction-dashboard/internal/dashboarderrors"
	"auction-dashboard/internal/gateway"
	"auction-dashboard/internal/models"
	"auction-dashboard/internal/notify"
	"auction-dashboard/internal/render"
	"auction-dashboard/internal/selection"
	"auction-dashboard/internal/store"
	"auction-dashboard/internal/surface"
	"auction-dashboard/utils"
)

// Banner messages per slice
const (
	MsgSnapshotFailed = "Failed to load auction state"
	MsgHistoryFailed  = "Failed to load bid history"
	MsgAuctionsFailed = "Failed to load auctions"
	MsgStatsFailed    = "Failed to load statistics"
)

// DashboardService runs the fetch-reconcile-render pipeline
type DashboardService struct {
	fetcher  gateway.Fetcher
	store    store.ViewModelStore
	selector *selection.Selector
	renderer *render.Renderer
	surface  *surface.Surface
	banners  *notify.Board

	// renderMu serializes read-then-render so a late renderer never paints older data
	renderMu sync.Mutex
}

// NewDashboardService creates a new DashboardService instance
func NewDashboardService(
	fetcher gateway.Fetcher,
	vm store.ViewModelStore,
	selector *selection.Selector,
	renderer *render.Renderer,
	surf *surface.Surface,
	banners *notify.Board,
) *DashboardService {
	return &DashboardService{
		fetcher:  fetcher,
		store:    vm,
		selector: selector,
		renderer: renderer,
		surface:  surf,
		banners:  banners,
	}
}

// TickReport summarizes one tick; errors are per slice and never fatal
type TickReport struct {
	Tick     uint64
	Duration time.Duration
	Errors   map[store.Slice]error
}

// OK reports whether every slice was applied
func (r TickReport) OK() bool { return len(r.Errors) == 0 }

// RunTick fetches every slice concurrently. Each slice continues on its own:
// store it under this tick id, then render the panels that read it.
// A failing slice keeps its previous value and rendering.
func (s *DashboardService) RunTick(ctx context.Context, tick uint64) TickReport {
	start := time.Now()
	passID := utils.NewCorrelationID()

	steps := map[store.Slice]func(context.Context, uint64) error{
		store.SnapshotSlice:    s.refreshSnapshot,
		store.BidHistorySlice:  s.refreshBidHistory,
		store.AuctionListSlice: s.refreshAuctions,
		store.StatsSlice:       s.refreshStats,
	}

	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		errs = make(map[store.Slice]error)
	)
	for slice, step := range steps {
		wg.Add(1)
		go func(slice store.Slice, step func(context.Context, uint64) error) {
			defer wg.Done()
			if err := step(ctx, tick); err != nil {
				s.report(tick, passID, slice, err)
				mu.Lock()
				errs[slice] = err
				mu.Unlock()
			}
		}(slice, step)
	}
	wg.Wait()

	s.renderBanners()

	report := TickReport{Tick: tick, Duration: time.Since(start), Errors: errs}
	utils.Debug("dashboard: tick finished", map[string]any{
		"tick":     tick,
		"pass_id":  passID,
		"failed":   len(errs),
		"duration": report.Duration.String(),
	})
	return report
}

func (s *DashboardService) refreshSnapshot(ctx context.Context, tick uint64) error {
	p, err := gateway.Fetch[models.AuctionStatePayload](ctx, s.fetcher, gateway.AuctionState)
	if err != nil {
		return fmt.Errorf("dashboard: fetch auction state: %w", err)
	}
	if err := s.store.SetAuctionSnapshot(tick, p); err != nil {
		return fmt.Errorf("dashboard: apply auction state: %w", err)
	}

	s.renderMu.Lock()
	defer s.renderMu.Unlock()
	snap, err := s.store.AuctionSnapshot()
	if err != nil {
		return fmt.Errorf("dashboard: read auction state: %w", err)
	}
	s.renderer.RenderStatus(snap)
	return nil
}

func (s *DashboardService) refreshBidHistory(ctx context.Context, tick uint64) error {
	p, err := gateway.Fetch[models.BidHistoryPayload](ctx, s.fetcher, gateway.BidsHistory)
	if err != nil {
		return fmt.Errorf("dashboard: fetch bid history: %w", err)
	}
	if err := s.store.SetBidHistory(tick, p); err != nil {
		return fmt.Errorf("dashboard: apply bid history: %w", err)
	}

	s.renderMu.Lock()
	defer s.renderMu.Unlock()
	bids, err := s.store.BidHistory()
	if err != nil {
		return fmt.Errorf("dashboard: read bid history: %w", err)
	}
	s.renderer.RenderBidHistory(bids)
	return nil
}

func (s *DashboardService) refreshAuctions(ctx context.Context, tick uint64) error {
	p, err := gateway.Fetch[models.AuctionListPayload](ctx, s.fetcher, gateway.AllAuctions)
	if err != nil {
		return fmt.Errorf("dashboard: fetch auctions: %w", err)
	}
	if err := s.store.SetAuctionList(tick, p); err != nil {
		return fmt.Errorf("dashboard: apply auctions: %w", err)
	}
	return s.renderAuctions()
}

func (s *DashboardService) refreshStats(ctx context.Context, tick uint64) error {
	p, err := gateway.Fetch[models.StatsPayload](ctx, s.fetcher, gateway.AuctionStats)
	if err != nil {
		return fmt.Errorf("dashboard: fetch statistics: %w", err)
	}
	if err := s.store.SetStats(tick, p); err != nil {
		return fmt.Errorf("dashboard: apply statistics: %w", err)
	}

	s.renderMu.Lock()
	defer s.renderMu.Unlock()
	stats, err := s.store.Stats()
	if err != nil {
		return fmt.Errorf("dashboard: read statistics: %w", err)
	}
	s.renderer.RenderCharts(stats, s.auctionCount())
	return nil
}

// renderAuctions redraws the dropdown and the cards from the stored roster
func (s *DashboardService) renderAuctions() error {
	s.renderMu.Lock()
	defer s.renderMu.Unlock()

	auctions, err := s.store.AuctionList()
	if err != nil {
		return fmt.Errorf("dashboard: read auctions: %w", err)
	}
	s.selector.Observe(auctions)
	s.renderer.RenderSelectOptions(s.selector.Options())
	s.renderer.RenderAuctionCards(s.selector.Apply(auctions))
	return nil
}

func (s *DashboardService) renderBanners() {
	s.renderMu.Lock()
	defer s.renderMu.Unlock()
	s.renderer.RenderBanners(s.banners.Active())
}

// auctionCount is the number of known auctions; zero before the roster loads
func (s *DashboardService) auctionCount() int {
	auctions, err := s.store.AuctionList()
	if err != nil {
		return 0
	}
	return len(auctions)
}

// report logs a slice failure and raises its banner. Stale writes are expected
// when ticks overlap and are only logged.
func (s *DashboardService) report(tick uint64, passID string, slice store.Slice, err error) {
	fields := map[string]any{
		"tick":    tick,
		"pass_id": passID,
		"slice":   string(slice),
		"error":   err.Error(),
	}
	switch {
	case errors.Is(err, dashboarderrors.ErrStaleTick):
		utils.Debug("dashboard: dropped stale slice", fields)
		return
	case errors.Is(err, context.Canceled):
		utils.Debug("dashboard: fetch cancelled", fields)
		return
	}

	var httpErr *dashboarderrors.HTTPError
	if errors.As(err, &httpErr) {
		fields["status"] = httpErr.Status
	}
	utils.Warn("dashboard: slice update failed", fields)
	s.banners.Show(bannerMessage(slice))
}

func bannerMessage(slice store.Slice) string {
	switch slice {
	case store.SnapshotSlice:
		return MsgSnapshotFailed
	case store.BidHistorySlice:
		return MsgHistoryFailed
	case store.AuctionListSlice:
		return MsgAuctionsFailed
	default:
		return MsgStatsFailed
	}
}

// Select records the user's choice and redraws the cards right away
func (s *DashboardService) Select(raw string) (selection.Key, error) {
	key, err := selection.ParseKey(raw)
	if err != nil {
		return selection.Key{}, fmt.Errorf("service: %w", err)
	}
	s.selector.Choose(key)

	if err := s.renderAuctions(); err != nil && !errors.Is(err, dashboarderrors.ErrNotLoaded) {
		return key, err
	}
	return key, nil
}

// Selection returns the current key and the dropdown entries
func (s *DashboardService) Selection() (selection.Key, []selection.Option) {
	return s.selector.Key(), s.selector.Options()
}

// Fragment returns the latest rendered content of a mount point
func (s *DashboardService) Fragment(mount string) (surface.Fragment, error) {
	if mount == surface.ErrorBanner {
		// banners expire between ticks
		s.renderBanners()
	}
	f, err := s.surface.Fragment(mount)
	if err != nil {
		return surface.Fragment{}, fmt.Errorf("service: %w", err)
	}
	return f, nil
}

// Mounts lists the mount points of the page
func (s *DashboardService) Mounts() []string {
	return s.surface.Mounts()
}

// Banners returns the failure notices currently visible
func (s *DashboardService) Banners() []notify.Banner {
	return s.banners.Active()
}

// SliceStatus reports when each slice was last applied
type SliceStatus struct {
	Slice   store.Slice    `json:"slice"`
	Loaded  bool           `json:"loaded"`
	Applied *store.Applied `json:"applied,omitempty"`
}

// Status reports every slice in render order
func (s *DashboardService) Status() []SliceStatus {
	out := make([]SliceStatus, 0, len(store.Slices))
	for _, slice := range store.Slices {
		st := SliceStatus{Slice: slice}
		if applied, ok := s.store.LastApplied(slice); ok {
			st.Loaded = true
			st.Applied = &applied
		}
		out = append(out, st)
	}
	return out
}
