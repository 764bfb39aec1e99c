// Package authz holds the ownership/role decision applied before every
// mutating store operation. It is a pure predicate: handlers load the target
// entity, ask Allow, and only then touch the store. Ownership always comes
// from the persisted entity, never from anything the client declared.
package authz

// Role values carried in session claims.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Action is the kind of mutation being requested.
type Action string

const (
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// Principal is the authenticated user making a request.
type Principal struct {
	ID    string
	Name  string
	Email string
	Role  string
}

// IsAdmin reports whether the principal holds the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// Allow reports whether the principal may perform the given action on an
// entity owned by ownerID: the principal must be the owner or an admin.
// The action kind is part of the contract even though the current policy is
// the same for edits and deletes.
func Allow(p Principal, ownerID string, action Action) bool {
	if p.IsAdmin() {
		return true
	}
	return p.ID != "" && p.ID == ownerID
}
