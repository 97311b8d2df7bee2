package constants

type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleOwner      Role = "OWNER"
	RoleManager    Role = "MANAGER"
	RoleCleaner    Role = "CLEANER"
)

var roleRanks = map[Role]int{
	RoleSuperAdmin: 4,
	RoleOwner:      3,
	RoleManager:    2,
	RoleCleaner:    1,
}

// Rank returns 0 for unknown roles.
func (r Role) Rank() int {
	return roleRanks[r]
}

func (r Role) Valid() bool {
	return r.Rank() > 0
}

// CompareRoles orders roles by rank: negative when a ranks below b, zero when
// equal, positive when a ranks above b.
func CompareRoles(a, b Role) int {
	return a.Rank() - b.Rank()
}

// AtLeast reports whether r ranks at or above min.
func (r Role) AtLeast(min Role) bool {
	return r.Valid() && CompareRoles(r, min) >= 0
}
