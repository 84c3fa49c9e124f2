package v1

import (
	"net/http"
	"strings"

	"github.com/harvestlink/harvestlink/internal/api/common"
	"github.com/harvestlink/harvestlink/internal/service"
)

// checkout handles POST /api/v1/checkout
func (rr *Routes) checkout(w http.ResponseWriter, r *http.Request) {
	var in service.CheckoutInput
	if err := common.DecodeJSON(w, r, &in); err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := rr.service.Checkout(r.Context(), currentUser(r).ID, in)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, result, http.StatusCreated)
}

// listOrders handles GET /api/v1/orders
func (rr *Routes) listOrders(w http.ResponseWriter, r *http.Request) {
	opts, err := pageOptions(r)
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}
	if status := strings.TrimSpace(r.URL.Query().Get("status")); status != "" {
		opts = append(opts, service.WithOrderStatus(status))
	}

	page, err := rr.service.ListMyTransactions(r.Context(), currentUser(r).ID, opts...)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, page, http.StatusOK)
}

// getOrder handles GET /api/v1/orders/{id}
func (rr *Routes) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := common.GetUUIDParam(r, "id")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, err := rr.service.GetMyTransaction(r.Context(), currentUser(r).ID, id)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, tx, http.StatusOK)
}

// cancelOrder handles POST /api/v1/orders/{id}/cancel
func (rr *Routes) cancelOrder(w http.ResponseWriter, r *http.Request) {
	id, err := common.GetUUIDParam(r, "id")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, err := rr.service.CancelMyTransaction(r.Context(), currentUser(r).ID, id)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, tx, http.StatusOK)
}

// getInvoice handles GET /api/v1/orders/{id}/invoice
func (rr *Routes) getInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := common.GetUUIDParam(r, "id")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	invoice, err := rr.service.GetMyInvoice(r.Context(), currentUser(r).ID, id)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, invoice, http.StatusOK)
}
