package v1

import (
	"net/http"
	"strings"

	"github.com/harvestlink/harvestlink/internal/api/common"
	"github.com/harvestlink/harvestlink/internal/service"
)

// defaultTopProducts is the ranking size returned when no limit is given
const defaultTopProducts = 8

// listProducts handles GET /api/v1/products
func (rr *Routes) listProducts(w http.ResponseWriter, r *http.Request) {
	opts, err := productOptions(r)
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	page, err := rr.service.ListProducts(r.Context(), opts...)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, page, http.StatusOK)
}

// getProduct handles GET /api/v1/products/{idOrSlug}
func (rr *Routes) getProduct(w http.ResponseWriter, r *http.Request) {
	idOrSlug, err := common.GetAndValidateURLParam(r, "idOrSlug")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	product, err := rr.service.GetProduct(r.Context(), idOrSlug)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, product, http.StatusOK)
}

// listCategories handles GET /api/v1/categories
func (rr *Routes) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := rr.service.ListCategories(r.Context())
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, map[string]any{"categories": categories}, http.StatusOK)
}

// listTopProducts handles GET /api/v1/products/top
func (rr *Routes) listTopProducts(w http.ResponseWriter, r *http.Request) {
	limit, ok, err := common.QueryInt(r, "limit")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !ok {
		limit = defaultTopProducts
	}
	if limit < 1 || limit > service.MaxPageSize {
		common.WriteErrorResponse(w, "limit must be between 1 and 100", http.StatusBadRequest)
		return
	}

	top, err := rr.service.ListTopProducts(r.Context(), limit)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, map[string]any{"products": top}, http.StatusOK)
}

// productOptions translates the catalog query string into list options
func productOptions(r *http.Request) ([]service.Option, error) {
	q := r.URL.Query()
	var opts []service.Option

	if category := strings.TrimSpace(q.Get("category")); category != "" {
		opts = append(opts, service.WithCategory(category))
	}
	if search := strings.TrimSpace(q.Get("search")); search != "" {
		opts = append(opts, service.WithSearch(search))
	}
	if tags := service.NormalizeTags(q["tag"]); len(tags) > 0 {
		opts = append(opts, service.WithTags(tags...))
	}

	minPrice, err := common.QueryInt64(r, "min_price")
	if err != nil {
		return nil, err
	}
	maxPrice, err := common.QueryInt64(r, "max_price")
	if err != nil {
		return nil, err
	}
	if minPrice != nil || maxPrice != nil {
		opts = append(opts, service.WithPriceRange(minPrice, maxPrice))
	}

	inStock, err := common.QueryBool(r, "in_stock")
	if err != nil {
		return nil, err
	}
	if inStock {
		opts = append(opts, service.WithInStock())
	}

	if sort := strings.TrimSpace(q.Get("sort")); sort != "" {
		opts = append(opts, service.WithSort(sort))
	}

	limit, ok, err := common.QueryInt(r, "limit")
	if err != nil {
		return nil, err
	}
	if ok {
		opts = append(opts, service.WithLimit(limit))
	}

	offset, ok, err := common.QueryInt(r, "offset")
	if err != nil {
		return nil, err
	}
	if ok {
		opts = append(opts, service.WithOffset(offset))
	}

	return opts, nil
}
