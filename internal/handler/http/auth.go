package http

import (
	"encoding/json"
	"net/http"

	"stockroom/internal/logger"
	"stockroom/internal/utils"
	"stockroom/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	response, token, err := h.services.AuthService.Register(ctx, request)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	log.Debug().Int64("id", response.InsertID).Str("email", response.Email).Msg("user registered")

	h.cookies.Set(w, token)
	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	response, token, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	log.Debug().Str("email", response.Email).Msg("user logged in")

	h.cookies.Set(w, token)
	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.cookies.Clear(w)
	utils.WriteJSON(w, models.LogoutResponse{LoggedOut: true}, http.StatusOK)
}
