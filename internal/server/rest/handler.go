package rest

import (
	"net/http"

	"github.com/dmitrijs2005/sensitivv/internal/server/models"
	"github.com/dmitrijs2005/sensitivv/internal/server/services"
)

const rootMessage = "Sensitivv API Server is running 🚀"

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

type validateSessionResponse struct {
	Valid  bool   `json:"valid"`
	UserID string `json:"userId"`
}

func (h *handlers) root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(rootMessage))
}

func (h *handlers) register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	res, err := h.accounts.Register(r.Context(), services.Credentials{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		status, msg := statusFor(err, msgRegisterFailed)
		h.logFailure(r, status, err)
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusCreated, res)
}

func (h *handlers) login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	res, err := h.accounts.Login(r.Context(), services.Credentials{Email: req.Email, Password: req.Password})
	if err != nil {
		status, msg := statusFor(err, msgLoginFailed)
		h.logFailure(r, status, err)
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func (h *handlers) validateSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, validateSessionResponse{Valid: true, UserID: userIDFromContext(r.Context())})
}

func (h *handlers) userProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.accounts.Profile(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		status, msg := statusFor(err, msgServerError)
		h.logFailure(r, status, err)
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *handlers) listFoodItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := h.food.List(r.Context(), models.FoodFilter{
		Category:     q.Get("category"),
		ReactionType: q.Get("reactionType"),
	})
	if err != nil {
		h.logFailure(r, http.StatusInternalServerError, err)
		writeError(w, http.StatusInternalServerError, msgFoodItemsFailed)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

func (h *handlers) logFailure(r *http.Request, status int, err error) {
	if status < http.StatusInternalServerError {
		h.logger.Debug(r.Context(), "request rejected", "path", r.URL.Path, "status", status, "error", err)
		return
	}
	h.logger.Error(r.Context(), "request failed",
		"path", r.URL.Path, "request_id", requestIDFromContext(r.Context()), "error", err)
}
