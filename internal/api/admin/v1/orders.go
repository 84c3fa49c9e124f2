package v1

import (
	"net/http"
	"strings"

	"github.com/harvestlink/harvestlink/internal/api/common"
	"github.com/harvestlink/harvestlink/internal/service"
)

// StatusRequest is the body of the status update endpoints
type StatusRequest struct {
	Status string `json:"status"`
}

// listTransactions handles GET /api/admin/v1/transactions
func (rr *Routes) listTransactions(w http.ResponseWriter, r *http.Request) {
	opts, err := pageOptions(r)
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	q := r.URL.Query()
	if status := strings.TrimSpace(q.Get("status")); status != "" {
		opts = append(opts, service.WithOrderStatus(status))
	}
	if method := strings.TrimSpace(q.Get("payment_method")); method != "" {
		opts = append(opts, service.WithPaymentMethod(method))
	}
	if search := strings.TrimSpace(q.Get("search")); search != "" {
		opts = append(opts, service.WithSearch(search))
	}

	page, err := rr.service.AdminListTransactions(r.Context(), opts...)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, page, http.StatusOK)
}

// getTransaction handles GET /api/admin/v1/transactions/{id}
func (rr *Routes) getTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := common.GetUUIDParam(r, "id")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, err := rr.service.AdminGetTransaction(r.Context(), id)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, tx, http.StatusOK)
}

// getInvoice handles GET /api/admin/v1/transactions/{id}/invoice
func (rr *Routes) getInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := common.GetUUIDParam(r, "id")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	invoice, err := rr.service.AdminGetInvoice(r.Context(), id)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, invoice, http.StatusOK)
}

// updateTransactionStatus handles PUT /api/admin/v1/transactions/{id}/status
func (rr *Routes) updateTransactionStatus(w http.ResponseWriter, r *http.Request) {
	id, err := common.GetUUIDParam(r, "id")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req StatusRequest
	if err := common.DecodeJSON(w, r, &req); err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	status, err := service.ParseOrderStatus(req.Status)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}

	tx, err := rr.service.UpdateTransactionStatus(r.Context(), id, status)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, tx, http.StatusOK)
}

// listContactMessages handles GET /api/admin/v1/contact-messages
func (rr *Routes) listContactMessages(w http.ResponseWriter, r *http.Request) {
	opts, err := pageOptions(r)
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}
	if status := strings.TrimSpace(r.URL.Query().Get("status")); status != "" {
		opts = append(opts, service.WithContactStatus(service.ContactStatus(status)))
	}

	page, err := rr.service.ListContactMessages(r.Context(), opts...)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, page, http.StatusOK)
}

// updateContactMessage handles PUT /api/admin/v1/contact-messages/{id}
func (rr *Routes) updateContactMessage(w http.ResponseWriter, r *http.Request) {
	id, err := common.GetUUIDParam(r, "id")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req StatusRequest
	if err := common.DecodeJSON(w, r, &req); err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	msg, err := rr.service.UpdateContactMessageStatus(r.Context(), id, service.ContactStatus(req.Status))
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, msg, http.StatusOK)
}

// refreshTopProducts handles POST /api/admin/v1/top-products/refresh
func (rr *Routes) refreshTopProducts(w http.ResponseWriter, r *http.Request) {
	settings := rr.settings()

	top, err := rr.service.RefreshTopProducts(r.Context(), settings.TopProductsWindow, settings.TopProductsSize)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, map[string]any{"products": top}, http.StatusOK)
}
