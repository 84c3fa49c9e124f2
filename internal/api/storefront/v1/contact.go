package v1

import (
	"net/http"

	"github.com/harvestlink/harvestlink/internal/api/common"
	"github.com/harvestlink/harvestlink/internal/service"
)

// submitContact handles POST /api/v1/contact. Logged-in senders are linked
// to their account.
func (rr *Routes) submitContact(w http.ResponseWriter, r *http.Request) {
	var in service.ContactInput
	if err := common.DecodeJSON(w, r, &in); err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}
	if user := currentUser(r); user != nil {
		in.UserID = &user.ID
	}

	msg, err := rr.service.SubmitContactMessage(r.Context(), in)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, msg, http.StatusCreated)
}
