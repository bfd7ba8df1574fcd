package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/softerio/chatbot-engine/pkg/knowledge"
	"github.com/softerio/chatbot-engine/pkg/models"
)

// CompanyInfoResponse is the payload of GET /company-info.
type CompanyInfoResponse struct {
	Company  models.CompanyProfile `json:"company"`
	Services []models.ServiceEntry `json:"services"`
	Status   string                `json:"status"`
}

// CompanyHandler serves the static company profile.
type CompanyHandler struct {
	kb     *knowledge.KnowledgeBase
	logger *zap.Logger
}

// NewCompanyHandler creates a CompanyHandler.
func NewCompanyHandler(kb *knowledge.KnowledgeBase, logger *zap.Logger) *CompanyHandler {
	return &CompanyHandler{kb: kb, logger: logger}
}

// RegisterRoutes registers the company-info endpoint on the given mux.
func (h *CompanyHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /company-info", h.CompanyInfo)
}

// CompanyInfo handles GET /company-info.
func (h *CompanyHandler) CompanyInfo(w http.ResponseWriter, r *http.Request) {
	resp := CompanyInfoResponse{
		Company:  h.kb.Company(),
		Services: h.kb.Services(),
		Status:   "success",
	}
	if err := WriteJSON(w, http.StatusOK, resp); err != nil {
		h.logger.Error("Failed to encode company-info response", zap.Error(err))
	}
}
