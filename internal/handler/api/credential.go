package api

import (
	"net/http"

	"octo-connect/internal/domain/credential"
	reqdto "octo-connect/internal/handler/dto/request"
	resdto "octo-connect/internal/handler/dto/response"
	"octo-connect/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CredentialHandler struct {
	validator usecase.CredentialValidator
}

func NewCredentialHandler(validator usecase.CredentialValidator) *CredentialHandler {
	return &CredentialHandler{validator: validator}
}

// @Summary Credential template
// @Description Describe the credential fields the host must collect
// @Tags credential
// @Produce json
// @Success 200 {object} resdto.CredentialTemplateResponse
// @Router /credential/template [get]
func (h *CredentialHandler) Template(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.CredentialTemplateResponse{
		Template: credential.Template(),
	})
}

// @Summary Validate credential
// @Description Probe the supplier catalog with the supplied API key
// @Tags credential
// @Accept json
// @Produce json
// @Param request body reqdto.ValidateCredentialRequest true "Credential"
// @Success 200 {object} resdto.ValidateCredentialResponse
// @Failure 400 {object} httperr.Response
// @Router /credential/validate [post]
func (h *CredentialHandler) Validate(c *gin.Context) {
	var req reqdto.ValidateCredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	valid := h.validator.Validate(c.Request.Context(), req.Credential.ToDomain())
	c.JSON(http.StatusOK, resdto.ValidateCredentialResponse{Valid: valid})
}
