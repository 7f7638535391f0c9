package api

import (
	"net/http"

	reqdto "octo-connect/internal/handler/dto/request"
	resdto "octo-connect/internal/handler/dto/response"
	"octo-connect/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	productQueries queries.ProductQueries
	quoteQueries   queries.QuoteQueries
}

func NewProductHandler(productQueries queries.ProductQueries, quoteQueries queries.QuoteQueries) *ProductHandler {
	return &ProductHandler{
		productQueries: productQueries,
		quoteQueries:   quoteQueries,
	}
}

// @Summary Search products
// @Description List or filter the supplier catalog
// @Tags products
// @Accept json
// @Produce json
// @Param request body reqdto.SearchProductsRequest true "Search request"
// @Success 200 {object} resdto.ProductsResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /products/search [post]
func (h *ProductHandler) Search(c *gin.Context) {
	var req reqdto.SearchProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	products, err := h.productQueries.Search(c.Request.Context(), req.Credential.ToDomain(), req.Filter())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ProductsResponse{Products: products})
}

// @Summary Search quote
// @Description Quoting is not implemented by the supplier; always empty
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body reqdto.SearchQuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Router /quotes/search [post]
func (h *ProductHandler) SearchQuote(c *gin.Context) {
	var req reqdto.SearchQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	quote, err := h.quoteQueries.Search(c.Request.Context(), req.Credential.ToDomain(), req.Payload.ProductIDs, req.Payload.OptionIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.QuoteResponse{Quote: quote})
}
