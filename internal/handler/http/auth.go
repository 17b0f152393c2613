package http

import (
	"encoding/json"
	"net/http"

	"github.com/dquintero/hr-records/internal/logger"
	"github.com/dquintero/hr-records/internal/service"
	"github.com/dquintero/hr-records/internal/utils"
	"github.com/dquintero/hr-records/models"
)

// credentials is the login request body.
type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	token, user, err := h.services.AuthService.Login(ctx, creds.Username, creds.Password)
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("login failed")
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", user.UserID).Msg("user successfully logged in")

	response := models.LoginResponse{
		Success: true,
		Token:   token.SignedString,
		User:    &user,
		Message: "login successful",
	}
	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing login response")
	}
}

// verify re-validates the presented token and returns the account it belongs
// to. The auth middleware already checked the token, the handler re-reads it
// so the response carries the fresh identity view from storage rather than
// stale claim values.
func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
	if err != nil {
		log.Err(err).Send()
		writeError(w, r, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	user, err := h.services.AuthService.UserFromToken(ctx, tokenString)
	if err != nil {
		log.Err(err).Msg("token verification failed")
		writeError(w, r, err)
		return
	}

	response := models.APIResponse{
		Success: true,
		Data:    user,
		Message: "token is valid",
	}
	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing verify response")
	}
}

// logout is a stateless no-op: tokens are not stored server-side, so there is
// nothing to revoke. The client discards its copy; the token stays valid
// until it expires.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	response := models.APIResponse{
		Success: true,
		Message: "logout successful",
	}
	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing logout response")
	}
}

// health reports liveness. With a valid bearer token the response also names
// the caller, which makes the endpoint a cheap token check for clients.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	data := map[string]string{"status": "ok"}
	if user, ok := identityFromContext(r.Context()); ok {
		data["username"] = user.Username
	}

	if _, err := utils.WriteJSON(w, models.APIResponse{Success: true, Data: data}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing health response")
	}
}
