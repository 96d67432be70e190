package domain

import "context"

// Role is an EventHub staff role carried in access tokens.
type Role string

const (
	RoleCentralPlanner Role = "central_planner"
	RoleVenueManager   Role = "venue_manager"
	RoleReviewer       Role = "reviewer"
	RoleExecutive      Role = "executive"
)

// Principal is the authenticated caller of a staff endpoint.
type Principal struct {
	UserID string
	Email  string
	Roles  []Role
}

// HasAnyRole reports whether p holds at least one of roles.
func (p *Principal) HasAnyRole(roles ...Role) bool {
	for _, have := range p.Roles {
		for _, want := range roles {
			if have == want {
				return true
			}
		}
	}
	return false
}

// TokenVerifier verifies a bearer token and returns the caller it was issued to.
type TokenVerifier interface {
	Verify(token string) (*Principal, error)
}

// APIKeyChecker validates keys presented to the public API.
type APIKeyChecker interface {
	Valid(ctx context.Context, key string) bool
}
