package domain

// Role is the privilege level of an admin account.
type Role string

const (
	RoleAdmin Role = "Admin"
	RoleOwner Role = "Owner"
)

// Admin is one of the fixed set of privileged accounts. The password field
// travels with the persisted session record; strip it before returning admin
// data to anonymous callers.
type Admin struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Name     string   `json:"name"`
	Role     Role     `json:"role"`
	Quote    string   `json:"quote"`
	Hashtags []string `json:"hashtags"`
	PhotoURL string   `json:"photoUrl"`
	Password string   `json:"password,omitempty"`
}

// Sanitized returns a copy with the password removed.
func (a Admin) Sanitized() Admin {
	a.Password = ""
	return a
}

// Clone returns a deep copy so callers cannot alias the hashtag slice. The
// copy always carries a non-nil slice so it serializes as a JSON array.
func (a Admin) Clone() Admin {
	cp := a
	cp.Hashtags = append([]string{}, a.Hashtags...)
	return cp
}
