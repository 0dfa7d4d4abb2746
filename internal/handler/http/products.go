package http

import (
	"encoding/json"
	"net/http"

	"stockroom/internal/logger"
	"stockroom/internal/utils"
	"stockroom/models"
)

func (h *Handler) addProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result, err := h.services.ProductService.AddProduct(ctx, request, h.cookies.Token(r))
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	log.Debug().Int64("id", result.InsertID).Int64("item_id", request.ItemID).Msg("product added")

	utils.WriteJSON(w, result, http.StatusOK)
}

// listProducts reads the acting owner's email from the request body. The
// list endpoints have always taken a body, GET or not.
func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.OwnerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	products, err := h.services.ProductService.ListProducts(ctx, request.Email, h.cookies.Token(r))
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	utils.WriteJSON(w, products, http.StatusOK)
}
