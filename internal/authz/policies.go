package authz

// defaultPolicies grant each action to principals whose role carries it.
// Policies check principal.grantedActions rather than role names so a custom
// policy file can narrow access without knowing the role table.
const defaultPolicies = `
permit(
  principal,
  action == HarvestLink::Action::"browse",
  resource
) when {
  principal.grantedActions.contains("browse")
};

permit(
  principal,
  action == HarvestLink::Action::"shop",
  resource
) when {
  principal.grantedActions.contains("shop")
};

permit(
  principal,
  action == HarvestLink::Action::"admin",
  resource
) when {
  principal.grantedActions.contains("admin") && principal.role == "admin"
};
`
