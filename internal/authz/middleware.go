package authz

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/harvestlink/harvestlink/internal/auth"
)

// ForbiddenResponse is the JSON body returned when authorization is denied.
type ForbiddenResponse struct {
	Error   string           `json:"error"`
	Message string           `json:"message"`
	Details *ForbiddenDetail `json:"details,omitempty"`
}

// ForbiddenDetail tells the caller which action was required.
type ForbiddenDetail struct {
	RequiredAction string `json:"required_action"`
	Role           string `json:"role"`
}

// Require creates a middleware that allows the request only when the caller's
// role grants action. It runs after auth.LoadIdentity. Anonymous callers that
// are denied get 401 so clients know to log in; everyone else gets 403.
func Require(authorizer Authorizer, action, resource string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := auth.UserFromContext(r.Context())
			role := RoleOf(user)

			req := Request{
				PrincipalID:    RoleAnonymous,
				Role:           role,
				GrantedActions: GrantedActions(role),
				Action:         action,
				Resource:       resource,
			}
			if user != nil {
				req.PrincipalID = user.ID.String()
			}

			decision, err := authorizer.Authorize(r.Context(), req)
			if err != nil {
				slog.ErrorContext(r.Context(), "Authorization evaluation failed",
					"error", err,
					"action", action,
					"path", r.URL.Path,
					"method", r.Method,
				)
				writeJSONError(w, http.StatusInternalServerError, "authorization evaluation failed")
				return
			}

			if !decision.Allowed {
				if user == nil {
					writeJSONError(w, http.StatusUnauthorized, "authentication required")
					return
				}
				slog.WarnContext(r.Context(), "Authorization denied",
					"action", action,
					"path", r.URL.Path,
					"method", r.Method,
					"user_id", user.ID,
					"role", role,
				)
				writeForbidden(w, action, role)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is Require for the admin back office
func RequireAdmin(authorizer Authorizer) func(http.Handler) http.Handler {
	return Require(authorizer, ActionAdmin, "admin")
}

func writeForbidden(w http.ResponseWriter, requiredAction, role string) {
	resp := ForbiddenResponse{
		Error:   "forbidden",
		Message: "You do not have permission to perform this action.",
		Details: &ForbiddenDetail{
			RequiredAction: requiredAction,
			Role:           role,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("Failed to encode forbidden response", "error", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	resp := struct {
		Error string `json:"error"`
	}{
		Error: message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("Failed to encode error response", "error", err)
	}
}
