package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"

	"github.com/zaxiang/Mini-Amazon/service"
)

// ExportSellerOrders downloads the seller's order lines as a spreadsheet,
// one row per line the seller owns.
func ExportSellerOrders(svc *service.FulfillmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		orders, err := svc.ListOrdersBySeller(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"OrderRef", "OrderID", "BuyerID", "OfferingID", "UnitPrice",
			"Quantity", "LineTotal", "LineStatus", "OrderStatus",
			"CreatedAt", "FulfilledAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			for _, l := range o.Lines {
				if l.SellerID != userID {
					continue
				}
				row := sheet.AddRow()
				row.AddCell().SetValue(o.OrderRef)
				row.AddCell().SetValue(o.ID)
				row.AddCell().SetValue(o.BuyerID)
				row.AddCell().SetValue(l.OfferingID)
				row.AddCell().SetValue(l.UnitPrice.StringFixed(2))
				row.AddCell().SetValue(l.Quantity)
				total := l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
				row.AddCell().SetValue(total.StringFixed(2))
				row.AddCell().SetValue(string(l.Status))
				row.AddCell().SetValue(string(o.Status))
				row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
				if l.FulfilledAt != nil {
					row.AddCell().SetValue(l.FulfilledAt.Format("2006-01-02 15:04:05"))
				} else {
					row.AddCell().SetValue("")
				}
			}
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
