package handlers

import (
	"net/http"
	"time"

	"femida/internal/domain/models"
	"femida/internal/http/middleware"
	"femida/internal/utils"

	"github.com/gin-gonic/gin"
)

type bookingRequest struct {
	GuestID       int64                `json:"guest_id"`
	RoomID        int64                `json:"room_id"`
	CheckIn       string               `json:"check_in"`
	CheckOut      string               `json:"check_out"`
	PeopleCount   int                  `json:"people_count"`
	PaymentStatus models.PaymentStatus `json:"payment_status"`
	PaymentMethod models.PaymentMethod `json:"payment_method"`
	PaymentAmount float64              `json:"payment_amount"`
	TotalAmount   float64              `json:"total_amount"`
	Comments      string               `json:"comments"`
}

func (r bookingRequest) toModel() (models.Booking, error) {
	var b models.Booking
	checkIn, err := utils.ParseInstant(r.CheckIn)
	if err != nil {
		return b, err
	}
	checkOut, err := utils.ParseInstant(r.CheckOut)
	if err != nil {
		return b, err
	}
	b = models.Booking{
		GuestID:       r.GuestID,
		RoomID:        r.RoomID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		PeopleCount:   r.PeopleCount,
		PaymentStatus: r.PaymentStatus,
		PaymentMethod: r.PaymentMethod,
		PaymentAmount: r.PaymentAmount,
		TotalAmount:   r.TotalAmount,
		Comments:      r.Comments,
	}
	if b.PaymentStatus == "" {
		b.PaymentStatus = models.PaymentPending
	}
	if b.PaymentMethod == "" {
		b.PaymentMethod = models.PayCash
	}
	return b, nil
}

// GET /api/bookings
func GetBookings(c *gin.Context) {
	bookings, err := bookingSvc(c).List(utils.NowUTC())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GET /api/bookings/:id
func GetBookingByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	booking, err := bookingSvc(c).Get(id, utils.NowUTC())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// POST /api/bookings
func CreateBooking(c *gin.Context) {
	var req bookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	in, err := req.toModel()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid check_in/check_out", err)
		return
	}
	created, err := bookingSvc(c).Create(in, middleware.UserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	// Reload to pick up the joined display fields and the derived status.
	booking, err := bookingSvc(c).Get(created.ID, utils.NowUTC())
	if err != nil {
		c.JSON(http.StatusCreated, created)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// PUT /api/bookings/:id
func UpdateBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req bookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	in, err := req.toModel()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid check_in/check_out", err)
		return
	}
	in.ID = id
	if err := bookingSvc(c).Update(in, middleware.UserID(c)); err != nil {
		RespondDomainError(c, err)
		return
	}
	booking, err := bookingSvc(c).Get(id, utils.NowUTC())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// POST /api/bookings/:id/cancel
func CancelBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := bookingSvc(c).Cancel(id, middleware.UserID(c)); err != nil {
		RespondDomainError(c, err)
		return
	}
	booking, err := bookingSvc(c).Get(id, utils.NowUTC())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// DELETE /api/bookings/:id moves the booking to the trash.
func DeleteBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := bookingSvc(c).SoftDelete(id, middleware.UserID(c)); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking moved to trash"})
}

// POST /api/bookings/:id/restore
func RestoreBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := bookingSvc(c).Restore(id, middleware.UserID(c)); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking restored"})
}

// GET /api/bookings/:id/confirmation renders the confirmation PDF.
func BookingConfirmation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	pdf, filename, err := docsSvc(c).GenerateConfirmation(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GET /api/bookings/calendar?year=2024&month=6
func BookingCalendar(c *gin.Context) {
	year := queryInt(c, "year")
	month := queryInt(c, "month")
	now := utils.NowUTC()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if month < 1 || month > 12 || year < 1970 || year > 9999 {
		RespondError(c, http.StatusBadRequest, "invalid year or month", nil)
		return
	}

	grid, err := bookingSvc(c).MonthCalendar(year, time.Month(month), now)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, grid)
}

// GET /api/bookings/grid?from=YYYY-MM-DD&to=YYYY-MM-DD&offset=N&building_id=N
func BookingGrid(c *gin.Context) {
	now := utils.NowUTC()

	from := utils.DayUTC(now)
	if s := c.Query("from"); s != "" {
		parsed, err := utils.ParseDate(s)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid from date", err)
			return
		}
		from = parsed
	}
	to := from.AddDate(0, 0, 29)
	if s := c.Query("to"); s != "" {
		parsed, err := utils.ParseDate(s)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid to date", err)
			return
		}
		to = parsed
	}

	grid, err := bookingSvc(c).DayGrid(from, to, queryInt(c, "offset"), queryInt64(c, "building_id"), now)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, grid)
}
