package v1

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/harvestlink/harvestlink/internal/api/common"
)

// AddCartItemRequest is the body of POST /cart/items
type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// UpdateCartItemRequest is the body of PUT /cart/items/{productID}
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// getCart handles GET /api/v1/cart
func (rr *Routes) getCart(w http.ResponseWriter, r *http.Request) {
	cart, err := rr.service.GetCart(r.Context(), currentUser(r).ID)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, cart, http.StatusOK)
}

// addCartItem handles POST /api/v1/cart/items
func (rr *Routes) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req AddCartItemRequest
	if err := common.DecodeJSON(w, r, &req); err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.ProductID == uuid.Nil {
		common.WriteErrorResponse(w, "product_id is required", http.StatusBadRequest)
		return
	}

	cart, err := rr.service.AddCartItem(r.Context(), currentUser(r).ID, req.ProductID, req.Quantity)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, cart, http.StatusOK)
}

// updateCartItem handles PUT /api/v1/cart/items/{productID}
func (rr *Routes) updateCartItem(w http.ResponseWriter, r *http.Request) {
	productID, err := common.GetUUIDParam(r, "productID")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req UpdateCartItemRequest
	if err := common.DecodeJSON(w, r, &req); err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	cart, err := rr.service.UpdateCartItem(r.Context(), currentUser(r).ID, productID, req.Quantity)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, cart, http.StatusOK)
}

// removeCartItem handles DELETE /api/v1/cart/items/{productID}
func (rr *Routes) removeCartItem(w http.ResponseWriter, r *http.Request) {
	productID, err := common.GetUUIDParam(r, "productID")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	cart, err := rr.service.RemoveCartItem(r.Context(), currentUser(r).ID, productID)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, cart, http.StatusOK)
}

// clearCart handles DELETE /api/v1/cart
func (rr *Routes) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := rr.service.ClearCart(r.Context(), currentUser(r).ID); err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
