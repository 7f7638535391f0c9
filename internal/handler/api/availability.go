package api

import (
	"net/http"

	reqdto "octo-connect/internal/handler/dto/request"
	resdto "octo-connect/internal/handler/dto/response"
	"octo-connect/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityQueries: availabilityQueries}
}

// @Summary Search availability
// @Description Fan-out availability per (product, option, units) triple; every record carries a booking-intent key
// @Tags availability
// @Accept json
// @Produce json
// @Param request body reqdto.SearchAvailabilityRequest true "Availability query"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /availability/search [post]
func (h *AvailabilityHandler) Search(c *gin.Context) {
	var req reqdto.SearchAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	query, err := req.Payload.ToDomain()
	if err != nil {
		respondError(c, err)
		return
	}

	availability, err := h.availabilityQueries.Search(c.Request.Context(), req.Credential.ToDomain(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.AvailabilityResponse{Availability: availability})
}

// @Summary Availability calendar
// @Description Per-day availability totals; entries are informational, not bookable
// @Tags availability
// @Accept json
// @Produce json
// @Param request body reqdto.SearchAvailabilityRequest true "Availability query"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /availability/calendar [post]
func (h *AvailabilityHandler) Calendar(c *gin.Context) {
	var req reqdto.SearchAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	query, err := req.Payload.ToDomain()
	if err != nil {
		respondError(c, err)
		return
	}

	availability, err := h.availabilityQueries.Calendar(c.Request.Context(), req.Credential.ToDomain(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.AvailabilityResponse{Availability: availability})
}
