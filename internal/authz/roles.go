package authz

import (
	"github.com/harvestlink/harvestlink/internal/service"
)

// Actions checked by the policies
const (
	ActionBrowse = "browse"
	ActionShop   = "shop"
	ActionAdmin  = "admin"
)

// RoleAnonymous is the role of callers without a session
const RoleAnonymous = "anonymous"

var roleActions = map[string][]string{
	RoleAnonymous:                {ActionBrowse},
	string(service.RoleCustomer): {ActionBrowse, ActionShop},
	string(service.RoleAdmin):    {ActionBrowse, ActionShop, ActionAdmin},
}

// RoleOf returns the authorization role of a user; nil is anonymous.
func RoleOf(user *service.User) string {
	if user == nil {
		return RoleAnonymous
	}
	return string(user.Role)
}

// GrantedActions returns the actions a role holds. Unknown roles hold none.
func GrantedActions(role string) []string {
	return roleActions[role]
}
