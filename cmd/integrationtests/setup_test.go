package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	dashboard "auction-dashboard/internal/dashboardService"
	"auction-dashboard/internal/gateway"
	"auction-dashboard/internal/notify"
	"auction-dashboard/internal/render"
	"auction-dashboard/internal/scheduler"
	"auction-dashboard/internal/selection"
	"auction-dashboard/internal/server"
	"auction-dashboard/internal/store"
	"auction-dashboard/internal/surface"
	"auction-dashboard/internal/trend"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type cannedResponse struct {
	status int
	body   string
}

// FakeBackend stands in for the auction service. Responses can be swapped
// between ticks.
type FakeBackend struct {
	mu        sync.Mutex
	responses map[string]cannedResponse
	hits      map[string]int
	Server    *httptest.Server
}

const (
	stateBody   = `{"is_active": true, "highest_bid": 120.5, "winner_id": 7}`
	historyBody = `[{"sender_id": 7, "bid": 120.5, "timestamp": 1700000000000, "sequence_number": 3}]`
	rosterBody  = `{"auctions": [
		{"auction_id": 1, "item": {"name": "Vase", "description": "Ming"}, "highest_bid": 300, "winner_id": 9, "is_active": false,
		 "bid_history": [{"sender_id": 9, "bid": 300}]},
		{"auction_id": 2, "item": {"name": "Clock"}, "highest_bid": 0, "winner_id": 0, "is_active": true, "bid_history": []}
	]}`
	statsBody = `{"average_winning_bid": 150, "average_bids_per_auction": 4, "max_winning_bid": 500,
		"min_winning_bid": 20, "total_active_auctions": 1, "total_concluded_auctions": 6}`
)

// SetupTestBackend starts a gin server answering the four polled endpoints
func SetupTestBackend(t *testing.T) *FakeBackend {
	t.Helper()
	fb := &FakeBackend{
		responses: map[string]cannedResponse{
			string(gateway.AuctionState): {http.StatusOK, stateBody},
			string(gateway.BidsHistory):  {http.StatusOK, historyBody},
			string(gateway.AllAuctions):  {http.StatusOK, rosterBody},
			string(gateway.AuctionStats): {http.StatusOK, statsBody},
		},
		hits: make(map[string]int),
	}

	router := gin.New()
	router.GET("/:endpoint", func(c *gin.Context) {
		fb.mu.Lock()
		resp, ok := fb.responses[c.Request.URL.Path]
		fb.hits[c.Request.URL.Path]++
		fb.mu.Unlock()
		if !ok {
			c.Status(http.StatusNotFound)
			return
		}
		c.Data(resp.status, "application/json", []byte(resp.body))
	})

	fb.Server = httptest.NewServer(router)
	t.Cleanup(fb.Server.Close)
	return fb
}

// Respond replaces the canned response for one endpoint
func (fb *FakeBackend) Respond(endpoint gateway.Endpoint, status int, body string) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.responses[string(endpoint)] = cannedResponse{status: status, body: body}
}

// Hits reports how often an endpoint was requested
func (fb *FakeBackend) Hits(endpoint gateway.Endpoint) int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.hits[string(endpoint)]
}

// TestDashboard bundles the wired process under test
type TestDashboard struct {
	Service *dashboard.DashboardService
	Poller  *scheduler.Scheduler
	Router  *gin.Engine
}

// SetupTestDashboard wires the full pipeline against the fake backend
func SetupTestDashboard(t *testing.T, fb *FakeBackend, pollInterval time.Duration) TestDashboard {
	t.Helper()

	client, err := gateway.NewClient(fb.Server.URL, fb.Server.Client())
	require.NoError(t, err)

	loc, err := render.NewLocale("en", time.UTC, "€")
	require.NoError(t, err)

	surf := surface.New(surface.DefaultMounts...)
	svc := dashboard.NewDashboardService(
		client,
		store.NewMemoryStore(),
		selection.NewSelector(),
		render.NewRenderer(surf, loc, trend.NewSynthesizer(), trend.DefaultPoints),
		surf,
		notify.NewBoard(notify.DefaultTTL),
	)
	poller := scheduler.New(pollInterval, func(ctx context.Context, tick uint64) {
		svc.RunTick(ctx, tick)
	})

	return TestDashboard{
		Service: svc,
		Poller:  poller,
		Router:  server.SetupRouter(svc, poller, pollInterval),
	}
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the
// JSON envelope, returning its data member
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (any, *httptest.ResponseRecorder) {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := ExecuteRequest(t, router, method, url, reqBody)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp["data"], w
}
