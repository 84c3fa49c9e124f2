package v1

import (
	"net/http"

	"github.com/harvestlink/harvestlink/internal/api/common"
	"github.com/harvestlink/harvestlink/internal/service"
)

// listAddresses handles GET /api/v1/addresses
func (rr *Routes) listAddresses(w http.ResponseWriter, r *http.Request) {
	addresses, err := rr.service.ListAddresses(r.Context(), currentUser(r).ID)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, map[string]any{"addresses": addresses}, http.StatusOK)
}

// getAddress handles GET /api/v1/addresses/{id}
func (rr *Routes) getAddress(w http.ResponseWriter, r *http.Request) {
	id, err := common.GetUUIDParam(r, "id")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	address, err := rr.service.GetAddress(r.Context(), currentUser(r).ID, id)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, address, http.StatusOK)
}

// createAddress handles POST /api/v1/addresses
func (rr *Routes) createAddress(w http.ResponseWriter, r *http.Request) {
	var in service.AddressInput
	if err := common.DecodeJSON(w, r, &in); err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	address, err := rr.service.CreateAddress(r.Context(), currentUser(r).ID, in)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, address, http.StatusCreated)
}

// updateAddress handles PUT /api/v1/addresses/{id}
func (rr *Routes) updateAddress(w http.ResponseWriter, r *http.Request) {
	id, err := common.GetUUIDParam(r, "id")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	var in service.AddressInput
	if err := common.DecodeJSON(w, r, &in); err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	address, err := rr.service.UpdateAddress(r.Context(), currentUser(r).ID, id, in)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, address, http.StatusOK)
}

// deleteAddress handles DELETE /api/v1/addresses/{id}
func (rr *Routes) deleteAddress(w http.ResponseWriter, r *http.Request) {
	id, err := common.GetUUIDParam(r, "id")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := rr.service.DeleteAddress(r.Context(), currentUser(r).ID, id); err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// setPrimaryAddress handles POST /api/v1/addresses/{id}/primary
func (rr *Routes) setPrimaryAddress(w http.ResponseWriter, r *http.Request) {
	id, err := common.GetUUIDParam(r, "id")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	address, err := rr.service.SetPrimaryAddress(r.Context(), currentUser(r).ID, id)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, address, http.StatusOK)
}
