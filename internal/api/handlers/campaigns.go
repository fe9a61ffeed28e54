package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/revelve/revelve-backend/internal/api/httpx"
	"github.com/revelve/revelve-backend/internal/api/validate"
	"github.com/revelve/revelve-backend/internal/middleware"
	"github.com/revelve/revelve-backend/internal/models"
	"github.com/revelve/revelve-backend/internal/services"
)

type CampaignHandler struct {
	Svc *services.CampaignService
}

func NewCampaignHandler(svc *services.CampaignService) *CampaignHandler {
	return &CampaignHandler{Svc: svc}
}

type campaignReq struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Tone        int      `json:"tone"`
	Links       []string `json:"links"`
}

func (r campaignReq) check() validate.Errs {
	var errs validate.Errs
	for _, e := range []*validate.ErrField{
		validate.Required("title", r.Title),
		validate.Required("description", r.Description),
		validate.RequiredList("keywords", r.Keywords),
		validate.RequiredList("links", r.Links),
		validate.IntRange("tone", int64(r.Tone), 0, 100),
	} {
		if e != nil {
			errs = append(errs, *e)
		}
	}
	return errs
}

func (h *CampaignHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())
	var req campaignReq
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid body", nil)
		return
	}
	if errs := req.check(); len(errs) > 0 {
		httpx.WriteError(w, http.StatusBadRequest, "missing_fields", errs.Error(), errs)
		return
	}
	c, err := h.Svc.Create(r.Context(), services.CampaignDraft{
		UserID:      uid,
		Title:       req.Title,
		Description: req.Description,
		Keywords:    req.Keywords,
		Tone:        req.Tone,
		Links:       req.Links,
	})
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, c)
}

func (h *CampaignHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())
	cs, err := h.Svc.List(r.Context(), uid)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	if cs == nil {
		cs = []models.Campaign{}
	}
	httpx.WriteJSON(w, http.StatusOK, cs)
}

func (h *CampaignHandler) Get(w http.ResponseWriter, r *http.Request) {
	detail, err := h.Svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, detail)
}

func (h *CampaignHandler) UpdateDetails(w http.ResponseWriter, r *http.Request) {
	var req campaignReq
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid body", nil)
		return
	}
	if errs := req.check(); len(errs) > 0 {
		httpx.WriteError(w, http.StatusBadRequest, "missing_fields", errs.Error(), errs)
		return
	}
	c, err := h.Svc.UpdateDetails(r.Context(), chi.URLParam(r, "id"), services.CampaignDraft{
		Title:       req.Title,
		Description: req.Description,
		Keywords:    req.Keywords,
		Tone:        req.Tone,
		Links:       req.Links,
	})
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, c)
}

func (h *CampaignHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status models.CampaignStatus `json:"status"`
	}
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid body", nil)
		return
	}
	c, err := h.Svc.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, c)
}

func (h *CampaignHandler) Superboost(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SuperboostParams models.SuperboostParams `json:"superboostParams"`
	}
	if err := httpx.Decode(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid body", nil)
		return
	}
	c, err := h.Svc.ActivateSuperboost(r.Context(), chi.URLParam(r, "id"), req.SuperboostParams)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, c)
}
