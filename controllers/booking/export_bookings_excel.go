package bookingControllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/Sudarshan-939/vimala-2/gateway"
	"github.com/Sudarshan-939/vimala-2/pricing"
)

// GET /admin/bookings/export
func ExportBookingsToExcel(gw *gateway.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := gw.FetchBookings(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch bookings"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Bookings")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"BookingID", "Status", "Customer", "Email", "Phone", "Company",
			"ProjectType", "ShootDate", "Items", "RentalDays",
			"TotalAmount", "GrandTotal", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, b := range bookings {
			row := sheet.AddRow()

			row.AddCell().SetValue(b.BookingID)
			row.AddCell().SetValue(string(b.Status))
			row.AddCell().SetValue(b.Customer.Name)
			row.AddCell().SetValue(b.Customer.Email)
			row.AddCell().SetValue(b.Customer.Phone)
			row.AddCell().SetValue(b.Customer.Company)
			row.AddCell().SetValue(b.ProjectDetails.Type)
			row.AddCell().SetValue(b.ProjectDetails.ShootDate)

			var items []string
			for _, item := range b.EquipmentItems {
				items = append(items, item.Name)
			}
			row.AddCell().SetValue(strings.Join(items, ", "))

			row.AddCell().SetValue(b.RentalDays)
			row.AddCell().SetValue(b.TotalAmount) // pre-tax, as the dashboard shows it
			row.AddCell().SetValue(pricing.GrandTotal(b.TotalAmount))
			row.AddCell().SetValue(b.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=bookings.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		// Write file to response
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
