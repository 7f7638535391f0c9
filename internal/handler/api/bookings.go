package api

import (
	"net/http"

	reqdto "octo-connect/internal/handler/dto/request"
	resdto "octo-connect/internal/handler/dto/response"
	"octo-connect/internal/usecase/commands"
	"octo-connect/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Redeem a booking-intent key: create then confirm with the supplier
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	booking, err := h.bookingCommands.Create(c.Request.Context(), req.Credential.ToDomain(), req.Payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.BookingResponse{Booking: booking})
}

// @Summary Cancel booking
// @Description Cancel a booking at the supplier and return the enriched cancellation
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CancelBookingRequest true "Cancellation request"
// @Success 200 {object} resdto.CancellationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	var req reqdto.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	cancellation, err := h.bookingCommands.Cancel(c.Request.Context(), req.Credential.ToDomain(), req.Payload.ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.CancellationResponse{Cancellation: cancellation})
}

// @Summary Search bookings
// @Description Search by identifier (three parallel strategies) or by travel-date range
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.SearchBookingRequest true "Search request"
// @Success 200 {object} resdto.BookingsResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings/search [post]
func (h *BookingHandler) Search(c *gin.Context) {
	var req reqdto.SearchBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	query, err := req.Payload.ToDomain()
	if err != nil {
		respondError(c, err)
		return
	}

	bookings, err := h.bookingQueries.Search(c.Request.Context(), req.Credential.ToDomain(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.BookingsResponse{Bookings: bookings})
}
