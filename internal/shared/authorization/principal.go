// Package authorization holds the typed principal model used at the
// boundary. Roles never reach the lifecycle use cases; handlers resolve
// scoping (a portal caller is pinned to its linked contact) before invoking
// the core.
package authorization

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleInternal Role = "internal"
	RolePortal   Role = "portal"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleInternal || r == RolePortal
}

// IsBackOffice reports whether the role may operate on any contact's data.
func (r Role) IsBackOffice() bool {
	return r == RoleAdmin || r == RoleInternal
}

func ParseRole(s string) (Role, bool) {
	role := Role(s)
	return role, role.IsValid()
}

// Principal is the authenticated caller. ContactID is set only for portal
// principals, resolved from the first contact linked to the user.
type Principal struct {
	UserID    uint
	Role      Role
	ContactID uint
}

// IsPortal reports whether the principal is a portal customer. Handlers pin
// portal reads to the principal's contact before invoking a use case.
func (p Principal) IsPortal() bool {
	return p.Role == RolePortal
}
