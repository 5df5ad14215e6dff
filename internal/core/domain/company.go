package domain

// Company is the tenant boundary: every account and journal entry belongs to
// exactly one company, and cross-company references are rejected.
type Company struct {
	CompanyID           string `json:"companyID"`
	Name                string `json:"name"`
	DefaultCurrencyCode string `json:"defaultCurrencyCode"`
	AuditFields
}

// Role describes what an actor may do inside a company.
type Role string

const (
	RoleReadOnly Role = "READ_ONLY"
	RoleMember   Role = "MEMBER"
	RoleAdmin    Role = "ADMIN"
)

// rank orders roles by capability so a higher role satisfies a lower requirement.
var roleRank = map[Role]int{
	RoleReadOnly: 1,
	RoleMember:   2,
	RoleAdmin:    3,
}

// Satisfies reports whether the role meets or exceeds the required role.
func (r Role) Satisfies(required Role) bool {
	return roleRank[r] >= roleRank[required]
}

// Actor is the opaque authenticated-actor descriptor produced by the
// authentication collaborator. The ledger core never authenticates; it trusts
// this descriptor and uses it only to scope operations and stamp audit fields.
type Actor struct {
	UserID    string `json:"userID"`
	CompanyID string `json:"companyID"`
	Role      Role   `json:"role"`
}
