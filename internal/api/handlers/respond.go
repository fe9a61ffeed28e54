package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/revelve/revelve-backend/internal/api/httpx"
	"github.com/revelve/revelve-backend/internal/services"
)

// writeDomainErr maps the service error taxonomy onto HTTP. Anything
// outside the taxonomy is treated as a store failure: fatal for the
// request, not for the process.
func writeDomainErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInsufficientCredits):
		httpx.WriteError(w, http.StatusPaymentRequired, "insufficient_credits", err.Error(), nil)
	case errors.Is(err, services.ErrAlreadyClaimed):
		httpx.WriteError(w, http.StatusConflict, "already_claimed", err.Error(), nil)
	case errors.Is(err, services.ErrInvalidCode):
		httpx.WriteError(w, http.StatusBadRequest, "invalid_code", err.Error(), nil)
	case errors.Is(err, services.ErrAlreadyBoosted):
		httpx.WriteError(w, http.StatusConflict, "already_boosted", err.Error(), nil)
	case errors.Is(err, services.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", err.Error(), nil)
	case errors.Is(err, services.ErrMissingFields):
		httpx.WriteError(w, http.StatusBadRequest, "missing_fields", err.Error(), nil)
	default:
		slog.Error("store failure", "err", err)
		httpx.WriteError(w, http.StatusServiceUnavailable, "store_unavailable", services.ErrStoreUnavailable.Error(), nil)
	}
}
