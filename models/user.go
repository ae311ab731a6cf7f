package models

// User is the account record returned by the gateway auth endpoints.
type User struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
	Role    string `json:"role,omitempty"` // "admin" or empty
}

// AuthResult is the gateway's login/register payload: an opaque token
// plus the user it belongs to.
type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
