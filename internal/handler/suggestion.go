package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stockplan/internal/infra"
	"stockplan/internal/service"
)

// SuggestionHandler serves the production-suggestion endpoints. The route
// never business-fails: empty inventory yields an empty result, not an error.
type SuggestionHandler struct{ svc service.SuggestionService }

func NewSuggestionHandler(svc service.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{svc: svc}
}

func (h *SuggestionHandler) Get(c *gin.Context) {
	resp, err := h.svc.Suggest(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetPDF renders the same suggestion as a downloadable report.
func (h *SuggestionHandler) GetPDF(c *gin.Context) {
	resp, err := h.svc.Suggest(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	data, err := infra.GenerateSuggestionPDF(resp)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="production-suggestion.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
