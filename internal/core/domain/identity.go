package domain

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Session ties an opaque token to an optional identity. A session exists
// before login so an anonymous visitor can carry a cart; login attaches the
// identity, logout detaches it.
type Session struct {
	Token    string
	Identity *Identity
}

func (s Session) IsAuthenticated() bool {
	return s.Identity != nil
}

func (s Session) IsAdmin() bool {
	return s.Identity != nil && s.Identity.Role == RoleAdmin
}

// Capability names an action gated by the identity's role.
type Capability string

const (
	CapViewOrders   Capability = "orders.view"
	CapManageBooks  Capability = "books.manage"
	CapManageOrders Capability = "orders.manage"
)

// Decision is a typed allow/deny verdict for a capability check.
type Decision struct {
	Allowed bool
	Reason  string
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func Deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}
