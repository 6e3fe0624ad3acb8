package integrationtests

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	dashboard "auction-dashboard/internal/dashboardService"
	"auction-dashboard/internal/gateway"
	"auction-dashboard/internal/surface"
	"auction-dashboard/services/dashboard/helpers"

	"github.com/stretchr/testify/require"
)

func TestDashboard_TickRendersEveryMount(t *testing.T) {
	fb := SetupTestBackend(t)
	d := SetupTestDashboard(t, fb, time.Hour)

	// before the first tick nothing has been drawn
	w := ExecuteRequest(t, d.Router, http.MethodGet, "/fragments/"+surface.AuctionStatus, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	report := d.Service.RunTick(context.Background(), 1)
	require.True(t, report.OK(), "errors: %v", report.Errors)

	w = ExecuteRequest(t, d.Router, http.MethodGet, "/fragments/"+surface.AuctionStatus, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `class="status active"`)
	require.Contains(t, w.Body.String(), `<span id="highest-bid">120.5</span>`)
	require.Contains(t, w.Body.String(), `<span id="winner-id">7</span>`)

	w = ExecuteRequest(t, d.Router, http.MethodGet, "/fragments/"+surface.BidHistory, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Node 7")
	require.Contains(t, w.Body.String(), "120.50€")

	w = ExecuteRequest(t, d.Router, http.MethodGet, "/fragments/"+surface.AuctionsContainer, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 2, strings.Count(w.Body.String(), `class="auction-card"`))
	require.Contains(t, w.Body.String(), "Vase")
	require.Contains(t, w.Body.String(), `<p class="item-description">Ming</p>`)
	require.Contains(t, w.Body.String(), "Concluded")

	w = ExecuteRequest(t, d.Router, http.MethodGet, "/fragments/"+surface.StatsChart, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "application/json"))
	var bar map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bar))
	require.Equal(t, "bar", bar["type"])

	w = ExecuteRequest(t, d.Router, http.MethodGet, "/fragments/"+surface.TrendWinningBid, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var line struct {
		Data struct {
			Labels   []string `json:"labels"`
			Datasets []struct {
				Data []float64 `json:"data"`
			} `json:"datasets"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &line))
	values := line.Data.Datasets[0].Data
	require.Len(t, values, 12)
	require.Equal(t, 150.0, values[len(values)-1])
	require.Len(t, line.Data.Labels, 12)

	w = ExecuteRequest(t, d.Router, http.MethodGet, "/fragments/"+surface.ErrorBanner, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = ExecuteRequest(t, d.Router, http.MethodGet, "/fragments/unknown-mount", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDashboard_SelectionNarrowsCards(t *testing.T) {
	fb := SetupTestBackend(t)
	d := SetupTestDashboard(t, fb, time.Hour)
	require.True(t, d.Service.RunTick(context.Background(), 1).OK())

	tests := []struct {
		name       string
		request    any
		wantStatus int
		wantCards  int
	}{
		{name: "Single_Auction", request: helpers.SelectionRequest{Key: "2"}, wantStatus: http.StatusOK, wantCards: 1},
		{name: "Absent_Auction", request: helpers.SelectionRequest{Key: "42"}, wantStatus: http.StatusOK, wantCards: 0},
		{name: "All_Auctions", request: helpers.SelectionRequest{Key: "all"}, wantStatus: http.StatusOK, wantCards: 2},
		{name: "Invalid_Key", request: helpers.SelectionRequest{Key: "two"}, wantStatus: http.StatusBadRequest, wantCards: 2},
		{name: "Invalid_JSON", request: []byte(`{key: 2}`), wantStatus: http.StatusBadRequest, wantCards: 2},
	}

	// subtests share one dashboard and run in order
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, w := ExecuteRequestAndParse(t, d.Router, http.MethodPut, "/selection", tt.request)
			require.Equal(t, tt.wantStatus, w.Code)

			w = ExecuteRequest(t, d.Router, http.MethodGet, "/fragments/"+surface.AuctionsContainer, nil)
			require.Equal(t, tt.wantCards, strings.Count(w.Body.String(), `class="auction-card"`))
		})
	}

	data, w := ExecuteRequestAndParse(t, d.Router, http.MethodGet, "/selection", nil)
	require.Equal(t, http.StatusOK, w.Code)
	sel := data.(map[string]any)
	require.Equal(t, "all", sel["key"])
	require.Len(t, sel["options"], 3)
}

func TestDashboard_BackendFailuresRaiseBanners(t *testing.T) {
	fb := SetupTestBackend(t)
	d := SetupTestDashboard(t, fb, time.Hour)
	require.True(t, d.Service.RunTick(context.Background(), 1).OK())

	before := ExecuteRequest(t, d.Router, http.MethodGet, "/fragments/"+surface.StatsChart, nil).Body.String()

	fb.Respond(gateway.AuctionStats, http.StatusInternalServerError, `{"detail": "boom"}`)
	fb.Respond(gateway.BidsHistory, http.StatusOK, `[{"sender_id": 1, "bid": 10, "timestamp": 1`)
	fb.Respond(gateway.AuctionState, http.StatusOK, `{"is_active": "yes", "highest_bid": 1, "winner_id": 1}`)

	report := d.Service.RunTick(context.Background(), 2)
	require.Len(t, report.Errors, 3)

	// the stats panel still shows tick 1
	after := ExecuteRequest(t, d.Router, http.MethodGet, "/fragments/"+surface.StatsChart, nil).Body.String()
	require.Equal(t, before, after)

	data, w := ExecuteRequestAndParse(t, d.Router, http.MethodGet, "/banners", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var messages []string
	for _, b := range data.([]any) {
		messages = append(messages, b.(map[string]any)["message"].(string))
	}
	require.ElementsMatch(t, []string{
		dashboard.MsgStatsFailed,
		dashboard.MsgHistoryFailed,
		dashboard.MsgSnapshotFailed,
	}, messages)

	w = ExecuteRequest(t, d.Router, http.MethodGet, "/fragments/"+surface.ErrorBanner, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), dashboard.MsgStatsFailed)

	// a repeated failure refreshes the banner instead of stacking another
	d.Service.RunTick(context.Background(), 3)
	data, _ = ExecuteRequestAndParse(t, d.Router, http.MethodGet, "/banners", nil)
	require.Len(t, data.([]any), 3)
}

func TestDashboard_SchedulerPolls(t *testing.T) {
	fb := SetupTestBackend(t)
	d := SetupTestDashboard(t, fb, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, d.Poller.Start(ctx))

	require.Eventually(t, func() bool {
		return fb.Hits(gateway.AllAuctions) >= 3
	}, 3*time.Second, 10*time.Millisecond)

	data, w := ExecuteRequestAndParse(t, d.Router, http.MethodGet, "/status", nil)
	require.Equal(t, http.StatusOK, w.Code)
	status := data.(map[string]any)
	require.Equal(t, "polling", status["scheduler"])
	require.GreaterOrEqual(t, status["last_tick"].(float64), 3.0)
	for _, s := range status["slices"].([]any) {
		require.Equal(t, true, s.(map[string]any)["loaded"])
	}

	cancel()
	d.Poller.Wait()

	w = ExecuteRequest(t, d.Router, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `data-fragment="/fragments/statsChart"`)
}
