package server

import (
	"time"

	"auction-dashboard/services/dashboard/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(service handler.DashboardServiceInterface, poller handler.PollerInterface, refresh time.Duration) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestIDMiddleware)     // correlation id
	router.Use(RequestLoggerMiddleware) // custom request logging

	dashboardHandler := handler.NewDashboardHandler(service, poller, refresh)

	router.GET("/", dashboardHandler.PageHandler)
	router.GET("/fragments/:mount", dashboardHandler.FragmentHandler)
	router.GET("/banners", dashboardHandler.BannersHandler)
	router.GET("/status", dashboardHandler.StatusHandler)

	sel := router.Group("/selection")
	{
		sel.GET("", dashboardHandler.GetSelectionHandler)
		sel.PUT("", dashboardHandler.PutSelectionHandler)
	}

	return router
}
