package http

import (
	"encoding/json"
	"net/http"

	"stockroom/internal/logger"
	"stockroom/internal/utils"
	"stockroom/models"
)

func (h *Handler) addPurchase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result, err := h.services.PurchaseService.AddPurchase(ctx, request, h.cookies.Token(r))
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	log.Debug().Int64("raw_id", request.RawID).Msg("purchase recorded")

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) listPurchases(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.OwnerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	purchases, err := h.services.PurchaseService.ListPurchases(ctx, request.Email, h.cookies.Token(r))
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, purchases, http.StatusOK)
}
