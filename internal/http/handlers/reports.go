package handlers

import (
	"net/http"

	"femida/internal/domain"
	"femida/internal/domain/models"
	"femida/internal/services"
	"femida/internal/utils"

	"github.com/gin-gonic/gin"
)

func reportFilterFromQuery(c *gin.Context) (services.ReportFilter, error) {
	f := services.ReportFilter{
		Search:        c.Query("search"),
		RoomID:        queryInt64(c, "room_id"),
		GuestID:       queryInt64(c, "guest_id"),
		BuildingID:    queryInt64(c, "building_id"),
		Status:        models.BookingStatus(c.Query("status")),
		PaymentStatus: models.PaymentStatus(c.Query("payment_status")),
	}
	if s := c.Query("date_from"); s != "" {
		t, err := utils.ParseDate(s)
		if err != nil {
			return f, err
		}
		f.DateFrom = t
	}
	if s := c.Query("date_to"); s != "" {
		t, err := utils.ParseDate(s)
		if err != nil {
			return f, err
		}
		// The day is inclusive for filtering purposes.
		f.DateTo = t.AddDate(0, 0, 1)
	}
	return f, nil
}

// GET /api/reports
func GetReports(c *gin.Context) {
	filter, err := reportFilterFromQuery(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid date filter", err)
		return
	}
	rows, err := reportSvc(c).Rows(filter, utils.NowUTC())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	page, pagination := services.Page(rows, domain.Pagination{
		Page:     queryInt(c, "page"),
		PageSize: queryInt(c, "page_size"),
	})
	c.JSON(http.StatusOK, gin.H{"pagination": pagination, "results": page})
}

// GET /api/reports/export streams the filtered report as CSV.
func ExportReports(c *gin.Context) {
	filter, err := reportFilterFromQuery(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid date filter", err)
		return
	}
	content, filename, err := reportSvc(c).ExportCSV(filter, utils.NowUTC())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(content))
}
