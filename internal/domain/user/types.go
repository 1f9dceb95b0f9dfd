package user

import "weekly-menu/internal/pkg/errs"

var ErrInvalidRole = errs.New("invalid role")

// Role comes from the identity provider's token claims. The core only
// distinguishes regular users from admins (seeding, moderation tooling).
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	}
	return false
}
