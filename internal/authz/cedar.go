package authz

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	cedar "github.com/cedar-policy/cedar-go"
)

const cedarNamespace = "HarvestLink"

type cedarAuthorizer struct {
	policySet *cedar.PolicySet
}

// NewCedarAuthorizer creates a new Cedar-based authorizer.
// If policyBytes is nil, built-in default policies are used.
func NewCedarAuthorizer(policyBytes []byte) (*cedarAuthorizer, error) {
	if policyBytes == nil {
		policyBytes = []byte(defaultPolicies)
	}

	ps, err := cedar.NewPolicySetFromBytes("policies.cedar", policyBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Cedar policies: %w", err)
	}

	return &cedarAuthorizer{policySet: ps}, nil
}

// NewCedarAuthorizerFromFile loads policies from path, or the built-in ones when path is empty.
func NewCedarAuthorizerFromFile(path string) (*cedarAuthorizer, error) {
	if path == "" {
		return NewCedarAuthorizer(nil)
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read policy file: %w", err)
	}
	return NewCedarAuthorizer(data)
}

// Authorize evaluates the request against the policy set.
func (a *cedarAuthorizer) Authorize(ctx context.Context, req Request) (Decision, error) {
	principalID := req.PrincipalID
	if principalID == "" {
		principalID = RoleAnonymous
	}
	principalUID := cedar.NewEntityUID(cedar.EntityType(cedarNamespace+"::User"), cedar.String(principalID))

	actionValues := make([]cedar.Value, len(req.GrantedActions))
	for i, action := range req.GrantedActions {
		actionValues[i] = cedar.String(action)
	}

	entities := cedar.EntityMap{
		principalUID: cedar.Entity{
			UID: principalUID,
			Attributes: cedar.NewRecord(cedar.RecordMap{
				"role":           cedar.String(req.Role),
				"grantedActions": cedar.NewSet(actionValues...),
			}),
		},
	}

	actionUID := cedar.NewEntityUID(cedar.EntityType(cedarNamespace+"::Action"), cedar.String(req.Action))

	resource := req.Resource
	if resource == "" {
		resource = "store"
	}
	resourceUID := cedar.NewEntityUID(cedar.EntityType(cedarNamespace+"::Area"), cedar.String(resource))

	cedarReq := cedar.Request{
		Principal: principalUID,
		Action:    actionUID,
		Resource:  resourceUID,
		Context:   cedar.NewRecord(cedar.RecordMap{}),
	}

	decision, diagnostic := cedar.Authorize(a.policySet, entities, cedarReq)

	slog.DebugContext(ctx, "Authorization decision",
		"action", req.Action,
		"decision", decision,
		"role", req.Role,
		"resource", resource,
	)

	var reasons []string
	for _, r := range diagnostic.Reasons {
		reasons = append(reasons, string(r.PolicyID))
	}

	return Decision{
		Allowed: decision == cedar.Allow,
		Reasons: reasons,
	}, nil
}
