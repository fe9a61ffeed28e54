package handlers

import (
	"net/http"

	"github.com/revelve/revelve-backend/internal/api/httpx"
	"github.com/revelve/revelve-backend/internal/api/validate"
	"github.com/revelve/revelve-backend/internal/middleware"
	"github.com/revelve/revelve-backend/internal/models"
	"github.com/revelve/revelve-backend/internal/services"
)

type CreditsHandler struct {
	Svc *services.LedgerService
}

func NewCreditsHandler(svc *services.LedgerService) *CreditsHandler {
	return &CreditsHandler{Svc: svc}
}

func (h *CreditsHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())
	txns, total, err := h.Svc.History(r.Context(), uid)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	if txns == nil {
		txns = []models.Transaction{}
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"credits":      txns,
		"totalCredits": total,
	})
}

func (h *CreditsHandler) Deduct(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())
	var req struct {
		CampaignID string `json:"campaignId"`
		Amount     int64  `json:"amount"`
		Type       string `json:"type"`
	}
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid body", nil)
		return
	}
	var errs validate.Errs
	for _, e := range []*validate.ErrField{
		validate.Required("campaignId", req.CampaignID),
		validate.Required("type", req.Type),
		validate.MinInt("amount", req.Amount, 1),
	} {
		if e != nil {
			errs = append(errs, *e)
		}
	}
	if len(errs) > 0 {
		httpx.WriteError(w, http.StatusBadRequest, "missing_fields", errs.Error(), errs)
		return
	}
	if _, err := h.Svc.Charge(r.Context(), uid, req.Amount, req.Type, &req.CampaignID); err != nil {
		writeDomainErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *CreditsHandler) Claim(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())
	var req struct {
		Code string `json:"code"`
	}
	if err := httpx.Decode(r, &req); err != nil || req.Code == "" {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "code required", nil)
		return
	}
	t, err := h.Svc.ClaimPromoCode(r.Context(), uid, req.Code)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"credits": t.CreditsValue,
	})
}

func (h *CreditsHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())
	granted, t, err := h.Svc.WelcomeBonus(r.Context(), uid)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	resp := map[string]any{"isNewUser": granted}
	status := http.StatusOK
	if granted {
		resp["credits"] = t.CreditsValue
		status = http.StatusCreated
	}
	httpx.WriteJSON(w, status, resp)
}
