// Package authz provides Cedar-based role authorization for the storefront API.
package authz

import "context"

// Authorizer evaluates authorization decisions using Cedar policies.
type Authorizer interface {
	// Authorize checks if the principal can perform the action on the resource.
	Authorize(ctx context.Context, req Request) (Decision, error)
}

// Request represents an authorization request.
type Request struct {
	// PrincipalID identifies the caller; "anonymous" when not logged in.
	PrincipalID string

	// Role is the caller's role (anonymous, customer or admin).
	Role string

	// GrantedActions are the actions the role grants.
	GrantedActions []string

	// Action is the required Cedar action name (browse, shop, admin).
	Action string

	// Resource is the resource identifier, usually the API area.
	Resource string
}

// Decision represents the result of an authorization check.
type Decision struct {
	// Allowed indicates whether the request is permitted.
	Allowed bool

	// Reasons provides policy IDs that contributed to the decision.
	Reasons []string
}
