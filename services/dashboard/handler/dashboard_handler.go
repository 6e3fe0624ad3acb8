package handler

import (
	"fmt"
	"net/http"
	"time"

	dashboard "auction-dashboard/internal/dashboardService"
	"auction-dashboard/internal/notify"
	"auction-dashboard/internal/scheduler"
	"auction-dashboard/internal/selection"
	"auction-dashboard/internal/surface"
	"auction-dashboard/services/dashboard/helpers"
	"auction-dashboard/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=dashboard_handler.go -destination=mock_dashboard_handler.go -package=handler

type DashboardServiceInterface interface {
	Select(raw string) (selection.Key, error)
	Selection() (selection.Key, []selection.Option)
	Fragment(mount string) (surface.Fragment, error)
	Mounts() []string
	Banners() []notify.Banner
	Status() []dashboard.SliceStatus
}

type PollerInterface interface {
	State() scheduler.State
	LastTick() uint64
}

type DashboardHandler struct {
	service DashboardServiceInterface
	poller  PollerInterface
	refresh time.Duration
}

func NewDashboardHandler(service DashboardServiceInterface, poller PollerInterface, refresh time.Duration) *DashboardHandler {
	return &DashboardHandler{service: service, poller: poller, refresh: refresh}
}

// PageHandler handles GET /
func (h *DashboardHandler) PageHandler(c *gin.Context) {
	body, err := helpers.RenderPage(h.service.Mounts(), h.refresh.Milliseconds())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err, "internal server error")
		utils.Error("PageHandler: failed to render page", map[string]any{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", body)
}

// FragmentHandler handles GET /fragments/:mount
func (h *DashboardHandler) FragmentHandler(c *gin.Context) {
	mount := c.Param("mount")
	frag, err := h.service.Fragment(mount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("FragmentHandler: fragment unavailable", map[string]any{"mount": mount, "error": err.Error()})
		return
	}

	c.Header("X-Fragment-Version", fmt.Sprintf("%d", frag.Version))
	utils.RawFragment(c, frag.ContentType, frag.Body)
}

// GetSelectionHandler handles GET /selection
func (h *DashboardHandler) GetSelectionHandler(c *gin.Context) {
	key, options := h.service.Selection()
	utils.JSONResponse(c, http.StatusOK, selectionResponse(key, options), "selection retrieved successfully")
}

// PutSelectionHandler handles PUT /selection
func (h *DashboardHandler) PutSelectionHandler(c *gin.Context) {
	var req helpers.SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PutSelectionHandler", err)
		return
	}

	key, err := h.service.Select(req.Key)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("PutSelectionHandler: selection rejected", map[string]any{"key": req.Key, "error": err.Error()})
		return
	}

	_, options := h.service.Selection()
	utils.JSONResponse(c, http.StatusOK, selectionResponse(key, options), "selection updated successfully")
	helpers.LogSuccess("PutSelectionHandler", "selection updated successfully", map[string]any{"key": key.String()})
}

// BannersHandler handles GET /banners
func (h *DashboardHandler) BannersHandler(c *gin.Context) {
	banners := h.service.Banners()
	resp := make([]helpers.BannerResponse, 0, len(banners))
	for _, b := range banners {
		resp = append(resp, helpers.BannerResponse{
			ID:        b.ID,
			Message:   b.Message,
			ShownAt:   b.ShownAt.UTC().Format(time.RFC3339),
			ExpiresAt: b.ExpiresAt.UTC().Format(time.RFC3339),
		})
	}
	utils.JSONResponse(c, http.StatusOK, resp, "banners retrieved successfully")
}

// StatusHandler handles GET /status
func (h *DashboardHandler) StatusHandler(c *gin.Context) {
	slices := h.service.Status()
	resp := helpers.StatusResponse{
		Scheduler: h.poller.State().String(),
		LastTick:  h.poller.LastTick(),
		Slices:    make([]helpers.SliceStatusResponse, 0, len(slices)),
	}
	for _, st := range slices {
		entry := helpers.SliceStatusResponse{Slice: string(st.Slice), Loaded: st.Loaded}
		if st.Applied != nil {
			entry.Tick = st.Applied.Tick
			entry.AppliedAt = st.Applied.AppliedAt.UTC().Format(time.RFC3339Nano)
		}
		resp.Slices = append(resp.Slices, entry)
	}
	utils.JSONResponse(c, http.StatusOK, resp, "status retrieved successfully")
}

func selectionResponse(key selection.Key, options []selection.Option) helpers.SelectionResponse {
	resp := helpers.SelectionResponse{
		Key:     key.String(),
		Options: make([]helpers.OptionResponse, 0, len(options)),
	}
	for _, o := range options {
		resp.Options = append(resp.Options, helpers.OptionResponse{Key: o.Key, Label: o.Label, Selected: o.Selected})
	}
	return resp
}
