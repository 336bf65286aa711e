package auth

import "github.com/kolnlaviste/HireLink/internal/domain"

// CanModify decides whether the principal may mutate or delete a resource
// whose owner reference is ownerID. Admins may modify anything. Pure
// function, no I/O.
func CanModify(ownerID string, principal *Principal) bool {
	if principal == nil {
		return false
	}
	if principal.Role == domain.RoleAdmin {
		return true
	}
	return ownerID == principal.IdentityID
}
