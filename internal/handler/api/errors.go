package api

import (
	"errors"
	"net/http"

	"octo-connect/internal/handler/httperr"
	"octo-connect/internal/infra"
	"octo-connect/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// respondError maps usecase and supplier failures onto HTTP statuses. The
// supplier's own error detail survives into the response body.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrMismatchedQueryLengths),
		errors.Is(err, errs.ErrInvalidProductID),
		errors.Is(err, errs.ErrInvalidOptionID),
		errors.Is(err, errs.ErrInvalidDateRange),
		errors.Is(err, errs.ErrAvailabilityKeyRequired),
		errors.Is(err, errs.ErrHolderNameRequired),
		errors.Is(err, errs.ErrBookingIDRequired),
		errors.Is(err, errs.ErrBookingSearchCriteria):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)

	case errors.Is(err, errs.ErrInvalidIntentToken):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "invalid availability key", nil)

	case errors.Is(err, errs.ErrProductNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "product not found", nil)

	case errors.Is(err, errs.ErrSignerNotConfigured):
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "service misconfigured", nil)

	case infra.IsKind(err, infra.KindNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, supplierDetail(err), nil)

	case infra.IsKind(err, infra.KindUnauthorized):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, supplierDetail(err), nil)

	case infra.IsKind(err, infra.KindBadRequest):
		httperr.AbortWithError(c, http.StatusBadRequest, err, supplierDetail(err), nil)

	case infra.IsKind(err, infra.KindUpstream), infra.IsKind(err, infra.KindTransport):
		httperr.AbortWithError(c, http.StatusBadGateway, err, supplierDetail(err), nil)

	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func supplierDetail(err error) string {
	var e infra.SupplierError
	if errors.As(err, &e) {
		return e.Error()
	}
	return "supplier call failed"
}

func bindError(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
}
