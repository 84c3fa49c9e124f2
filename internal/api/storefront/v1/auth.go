package v1

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/csrf"

	"github.com/harvestlink/harvestlink/internal/api/common"
	"github.com/harvestlink/harvestlink/internal/service"
)

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PasswordChangeRequest is the body of PUT /account/password
type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// CSRFResponse carries the token clients echo in the X-CSRF-Token header
type CSRFResponse struct {
	Token string `json:"token"`
}

// register handles POST /api/v1/auth/register
func (rr *Routes) register(w http.ResponseWriter, r *http.Request) {
	var in service.RegisterInput
	if err := common.DecodeJSON(w, r, &in); err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := rr.service.Register(r.Context(), in)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}

	if err := rr.sessions.Login(r.Context(), user.ID, user.PasswordChangedAt); err != nil {
		common.WriteServiceError(w, r, err)
		return
	}

	common.WriteJSONResponse(w, user, http.StatusCreated)
}

// login handles POST /api/v1/auth/login
func (rr *Routes) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := common.DecodeJSON(w, r, &req); err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := rr.service.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}

	if err := rr.sessions.Login(r.Context(), user.ID, user.PasswordChangedAt); err != nil {
		common.WriteServiceError(w, r, err)
		return
	}

	slog.InfoContext(r.Context(), "User logged in", "user_id", user.ID)
	common.WriteJSONResponse(w, user, http.StatusOK)
}

// logout handles POST /api/v1/auth/logout
func (rr *Routes) logout(w http.ResponseWriter, r *http.Request) {
	if err := rr.sessions.Logout(r.Context()); err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// me handles GET /api/v1/auth/me
func (*Routes) me(w http.ResponseWriter, r *http.Request) {
	common.WriteJSONResponse(w, currentUser(r), http.StatusOK)
}

// csrfToken handles GET /api/v1/auth/csrf. The token is empty when CSRF
// protection is disabled.
func (*Routes) csrfToken(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	common.WriteJSONResponse(w, CSRFResponse{Token: csrf.Token(r)}, http.StatusOK)
}

// updateProfile handles PUT /api/v1/account/profile
func (rr *Routes) updateProfile(w http.ResponseWriter, r *http.Request) {
	var in service.ProfileInput
	if err := common.DecodeJSON(w, r, &in); err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := rr.service.UpdateProfile(r.Context(), currentUser(r).ID, in)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, user, http.StatusOK)
}

// changePassword handles PUT /api/v1/account/password. The caller's session
// is re-issued so only other devices are signed out.
func (rr *Routes) changePassword(w http.ResponseWriter, r *http.Request) {
	var req PasswordChangeRequest
	if err := common.DecodeJSON(w, r, &req); err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := rr.service.ChangePassword(r.Context(), currentUser(r).ID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}

	if err := rr.sessions.Refresh(r.Context(), user.ID, user.PasswordChangedAt); err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, user, http.StatusOK)
}
