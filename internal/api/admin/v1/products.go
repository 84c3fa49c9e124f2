package v1

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/harvestlink/harvestlink/internal/api/common"
	"github.com/harvestlink/harvestlink/internal/service"
)

// DeleteProductResponse tells the caller whether the product was archived
// instead of deleted
type DeleteProductResponse struct {
	Deleted  bool `json:"deleted"`
	Archived bool `json:"archived"`
}

// listProducts handles GET /api/admin/v1/products
func (rr *Routes) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var opts []service.Option

	if status := strings.TrimSpace(q.Get("status")); status != "" {
		opts = append(opts, service.WithProductStatus(service.ProductStatus(status)))
	}
	if search := strings.TrimSpace(q.Get("search")); search != "" {
		opts = append(opts, service.WithSearch(search))
	}
	if category := strings.TrimSpace(q.Get("category")); category != "" {
		opts = append(opts, service.WithCategory(category))
	}

	for _, p := range []struct {
		name string
		opt  func(int) service.Option
	}{
		{"limit", service.WithLimit},
		{"offset", service.WithOffset},
	} {
		value, ok, err := common.QueryInt(r, p.name)
		if err != nil {
			common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
			return
		}
		if ok {
			opts = append(opts, p.opt(value))
		}
	}

	page, err := rr.service.AdminListProducts(r.Context(), opts...)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, page, http.StatusOK)
}

// getProduct handles GET /api/admin/v1/products/{id}
func (rr *Routes) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := common.GetUUIDParam(r, "id")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	product, err := rr.service.AdminGetProduct(r.Context(), id)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, product, http.StatusOK)
}

// createProduct handles POST /api/admin/v1/products
func (rr *Routes) createProduct(w http.ResponseWriter, r *http.Request) {
	var in service.ProductInput
	if err := common.DecodeJSON(w, r, &in); err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	product, err := rr.service.CreateProduct(r.Context(), in)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, product, http.StatusCreated)
}

// updateProduct handles PUT /api/admin/v1/products/{id}. Archiving and
// restoring are updates of the status field.
func (rr *Routes) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := common.GetUUIDParam(r, "id")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	var in service.ProductInput
	if err := common.DecodeJSON(w, r, &in); err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	product, err := rr.service.UpdateProduct(r.Context(), id, in)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, product, http.StatusOK)
}

// deleteProduct handles DELETE /api/admin/v1/products/{id}
func (rr *Routes) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := common.GetUUIDParam(r, "id")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	archived, err := rr.service.DeleteProduct(r.Context(), id)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, DeleteProductResponse{Deleted: !archived, Archived: archived}, http.StatusOK)
}

// uploadProductImage handles POST /api/admin/v1/products/{id}/image
func (rr *Routes) uploadProductImage(w http.ResponseWriter, r *http.Request) {
	if rr.images == nil {
		common.WriteErrorResponse(w, "image uploads are not configured", http.StatusNotImplemented)
		return
	}

	id, err := common.GetUUIDParam(r, "id")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	current, err := rr.service.AdminGetProduct(r.Context(), id)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}

	url, err := rr.images.SaveFromRequest(w, r)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}

	product, err := rr.service.SetProductImage(r.Context(), id, url)
	if err != nil {
		rr.removeImage(r, url)
		common.WriteServiceError(w, r, err)
		return
	}

	if current.ImageURL != "" && current.ImageURL != url {
		rr.removeImage(r, current.ImageURL)
	}
	common.WriteJSONResponse(w, product, http.StatusOK)
}

func (rr *Routes) removeImage(r *http.Request, url string) {
	if err := rr.images.Remove(url); err != nil {
		slog.WarnContext(r.Context(), "Failed to remove product image", "url", url, "error", err)
	}
}
