package models

// User is a CRM account
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// FirstName returns the first word of the user's name
func (u *User) FirstName() string {
	if u == nil {
		return ""
	}
	for i, r := range u.Name {
		if r == ' ' {
			return u.Name[:i]
		}
	}
	return u.Name
}

// Session is the locally persisted login: the bearer token attached to every
// request and the user record returned at login.
type Session struct {
	Token string
	User  *User
}
