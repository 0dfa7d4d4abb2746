package http

import (
	"encoding/json"
	"net/http"

	"stockroom/internal/logger"
	"stockroom/internal/utils"
	"stockroom/models"
)

func (h *Handler) addRaw(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RawRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result, err := h.services.RawService.AddRaw(ctx, request, h.cookies.Token(r))
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	log.Debug().Int64("id", result.InsertID).Int64("item_id", request.ItemID).Msg("raw added")

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) listRaws(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.OwnerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	raws, err := h.services.RawService.ListRaws(ctx, request.Email, h.cookies.Token(r))
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, raws, http.StatusOK)
}

func (h *Handler) assignProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.AssignProductRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result, err := h.services.RawService.AssignProduct(ctx, request, h.cookies.Token(r))
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	log.Debug().Int64("raw_id", request.RawID).Msg("raw product link updated")

	utils.WriteJSON(w, result, http.StatusOK)
}
