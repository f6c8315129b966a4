package adminController

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sarthak743/FlashDine/store"
	"github.com/tealeg/xlsx"
)

// ExportOrdersToExcel downloads the session's orders as a spreadsheet
// report for end-of-day reconciliation.
func ExportOrdersToExcel(sess *store.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders := sess.Orders()

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"OrderID", "ReceiptID", "TableID", "Customer", "Phone",
			"Items", "Subtotal", "Tax", "Total", "Status",
			"PaymentMethod", "Paid", "EstimatedTime", "ReceiptBanned",
			"CreatedAt", "UpdatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, o := range orders {
			row := sheet.AddRow()

			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.ReceiptID)
			row.AddCell().SetValue(o.TableID)
			row.AddCell().SetValue(o.CustomerDetails.Name)
			row.AddCell().SetValue(o.CustomerDetails.Phone)

			var lines []string
			for _, item := range o.Items {
				lines = append(lines, item.Name+" x"+strconv.Itoa(item.Quantity))
			}
			row.AddCell().SetValue(strings.Join(lines, ", "))

			row.AddCell().SetValue(o.Subtotal)
			row.AddCell().SetValue(o.Tax)
			row.AddCell().SetValue(o.Total)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(string(o.PaymentMethod))
			row.AddCell().SetValue(o.IsPaid)
			row.AddCell().SetValue(o.EstimatedTime)
			row.AddCell().SetValue(o.ReceiptBannedAt != nil)

			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(o.UpdatedAt.Format("2006-01-02 15:04:05"))
		}

		// Set response headers for download
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
