package models

// Role is issued by the external auth provider
type Role string

const (
	RoleGuest Role = "guest"
	RoleHotel Role = "hotel"
	RoleAdmin Role = "admin"
)

// Actor is the authenticated caller of an operation
type Actor struct {
	ID    string
	Email string
	Role  Role
}

// IsOperator reports whether the actor may act on bids for the given listing
func (a Actor) IsOperator(l Listing) bool {
	switch a.Role {
	case RoleAdmin:
		return true
	case RoleHotel:
		return a.ID != "" && a.ID == l.OwnerID
	}
	return false
}
