package models

// Actor is the already-authenticated caller identity resolved by the gateway
// middleware. It is not persisted; the role is re-read from the balance row
// before any admin operation.
type Actor struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
