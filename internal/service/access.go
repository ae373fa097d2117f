package service

import "tableside/internal/domain"

// Resources and actions the gate knows about.
const (
	ResourceOrders = "orders"
	ResourceRoles  = "roles"
	ResourceDishes = "dishes"

	ActionList   = "list"
	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// AccessGate is a pure decision function over the session snapshot. It holds
// no state of its own and is evaluated fresh on every request.
type AccessGate struct{}

func NewAccessGate() *AccessGate {
	return &AccessGate{}
}

// CanAccess reports whether the session's role may perform action on
// resource. A nil session is an unauthenticated caller and is denied
// everything the gate is consulted for.
func (g *AccessGate) CanAccess(session *domain.Session, resource, action string) bool {
	if session == nil {
		return false
	}

	if resource == ResourceRoles {
		return session.RoleName == "admin"
	}

	// Every other guarded resource only requires an authenticated session.
	return true
}

// VisibleStatuses maps a staff role to the status subset its station works
// from. A nil result means no filter.
func (g *AccessGate) VisibleStatuses(roleName string) []string {
	switch roleName {
	case "waiting":
		return []string{"waiting"}
	case "kitchen":
		return []string{"kitchen"}
	default:
		return nil
	}
}
