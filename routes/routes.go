package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/zaxiang/Mini-Amazon/metrics"
	"github.com/zaxiang/Mini-Amazon/middleware"
	"github.com/zaxiang/Mini-Amazon/service"
)

// SetupRoutes is the single entry-point that wires every route group.
func SetupRoutes(r *gin.Engine, svc *service.Registry) {
	SetupCartRoutes(r, svc)
	SetupOrderRoutes(r, svc)
	SetupInventoryRoutes(r, svc)
	SetupUserRoutes(r, svc)
	SetupReviewRoutes(r, svc)

	// Operational endpoints (API-key-protected)
	r.GET("/metrics", middleware.ValidateAPIKey, gin.WrapH(metrics.Handler()))
}
