package ratelimit

// Policy is a named (limit, window) pair. Policies are static configuration;
// the table below is the complete set and is never mutated at runtime.
type Policy struct {
	// Name namespaces the stored counters for this policy.
	Name string
	// Limit is the maximum number of actions per window.
	Limit int64
	// Window is the window length in seconds.
	Window int64
}

var (
	// PolicyPublicRead covers public reads (menu, banners).
	PolicyPublicRead = Policy{Name: "public_api", Limit: 100, Window: 60}
	// PolicyOrderCreation covers order submission.
	PolicyOrderCreation = Policy{Name: "create_order", Limit: 10, Window: 60}
	// PolicyPromoValidation covers promo code validation.
	PolicyPromoValidation = Policy{Name: "validate_promo", Limit: 30, Window: 60}
	// PolicyAdmin covers authenticated admin operations.
	PolicyAdmin = Policy{Name: "admin", Limit: 60, Window: 60}
	// PolicyFailedAuth accumulates rejected authentication attempts toward a lockout.
	PolicyFailedAuth = Policy{Name: "auth_fail", Limit: 5, Window: 900}
)

var policies = map[string]Policy{
	PolicyPublicRead.Name:      PolicyPublicRead,
	PolicyOrderCreation.Name:   PolicyOrderCreation,
	PolicyPromoValidation.Name: PolicyPromoValidation,
	PolicyAdmin.Name:           PolicyAdmin,
	PolicyFailedAuth.Name:      PolicyFailedAuth,
}

// PolicyByName looks up a policy by its name.
func PolicyByName(name string) (Policy, bool) {
	p, ok := policies[name]

	return p, ok
}
