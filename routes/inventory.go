package routes

import (
	"github.com/gin-gonic/gin"

	inventoryControllers "github.com/zaxiang/Mini-Amazon/controllers/inventory"
	"github.com/zaxiang/Mini-Amazon/middleware"
	"github.com/zaxiang/Mini-Amazon/service"
)

func SetupInventoryRoutes(r *gin.Engine, svc *service.Registry) {
	// Public availability probe.
	r.GET("/offerings/:offeringID/available", inventoryControllers.GetAvailable(svc.Inventory))

	seller := r.Group("/seller/offerings")
	seller.Use(middleware.ValidateToken)
	{
		seller.POST("/", inventoryControllers.CreateOffering(svc.Inventory))                 // POST /seller/offerings
		seller.GET("/", inventoryControllers.GetSellerOfferings(svc.Inventory))              // GET /seller/offerings
		seller.PUT("/:offeringID", inventoryControllers.UpdateOffering(svc.Inventory))       // PUT /seller/offerings/:offeringID
		seller.DELETE("/:offeringID", inventoryControllers.DeleteOffering(svc.Inventory))    // DELETE /seller/offerings/:offeringID
	}
}
