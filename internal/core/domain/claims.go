package domain

// Claims is the identity carried by a verified session token.
type Claims struct {
	Username string
	Role     string
}

// IsAdmin reports whether the token holder has the admin tier.
func (c Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}
