package handlers

import (
	"net/http"

	"github.com/revelve/revelve-backend/internal/api/httpx"
	"github.com/revelve/revelve-backend/internal/middleware"
	"github.com/revelve/revelve-backend/internal/services"
)

type DashboardHandler struct {
	Svc *services.DashboardService
}

func NewDashboardHandler(svc *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{Svc: svc}
}

func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())
	data, err := h.Svc.Summary(r.Context(), uid)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, data)
}
