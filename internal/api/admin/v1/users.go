package v1

import (
	"net/http"
	"strings"

	"github.com/harvestlink/harvestlink/internal/api/common"
	"github.com/harvestlink/harvestlink/internal/service"
)

// dashboard handles GET /api/admin/v1/dashboard
func (rr *Routes) dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := rr.service.Dashboard(r.Context(), rr.settings().LowStockThreshold)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, d, http.StatusOK)
}

// listUsers handles GET /api/admin/v1/users
func (rr *Routes) listUsers(w http.ResponseWriter, r *http.Request) {
	opts, err := pageOptions(r)
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	q := r.URL.Query()
	if search := strings.TrimSpace(q.Get("search")); search != "" {
		opts = append(opts, service.WithSearch(search))
	}
	if role := strings.TrimSpace(q.Get("role")); role != "" {
		opts = append(opts, service.WithRole(service.Role(role)))
	}
	if status := strings.TrimSpace(q.Get("status")); status != "" {
		opts = append(opts, service.WithUserStatus(service.UserStatus(status)))
	}

	page, err := rr.service.ListUsers(r.Context(), opts...)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, page, http.StatusOK)
}

// getUser handles GET /api/admin/v1/users/{id}
func (rr *Routes) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := common.GetUUIDParam(r, "id")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := rr.service.GetUser(r.Context(), id)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, user, http.StatusOK)
}

// updateUser handles PUT /api/admin/v1/users/{id}
func (rr *Routes) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := common.GetUUIDParam(r, "id")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	var in service.UserUpdate
	if err := common.DecodeJSON(w, r, &in); err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := rr.service.UpdateUser(r.Context(), actor(r).ID, id, in)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, user, http.StatusOK)
}

// deleteUser handles DELETE /api/admin/v1/users/{id}
func (rr *Routes) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := common.GetUUIDParam(r, "id")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := rr.service.DeleteUser(r.Context(), actor(r).ID, id); err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// pageOptions reads the cursor and limit query parameters
func pageOptions(r *http.Request) ([]service.Option, error) {
	var opts []service.Option

	if cursor := strings.TrimSpace(r.URL.Query().Get("cursor")); cursor != "" {
		opts = append(opts, service.WithCursor(cursor))
	}

	limit, ok, err := common.QueryInt(r, "limit")
	if err != nil {
		return nil, err
	}
	if ok {
		opts = append(opts, service.WithLimit(limit))
	}

	return opts, nil
}
