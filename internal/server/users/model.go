// Package users contains the user model, its persistence boundary and the
// registration/login flows built on top of it.
package users

import (
	"strings"
	"time"
)

// User is the persisted account record. PasswordHash is a bcrypt digest and
// is never serialized to clients; use Public for anything that leaves the
// process.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         string
	Language     string
	CreatedAt    time.Time
}

// PublicUser is the client-facing projection of User. The password hash is
// deliberately absent so it can never leak through serialization. Wire field
// names follow the original softjobs API contract.
type PublicUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"rol"`
	Language string `json:"lenguaje"`
}

// Public returns the serializable projection of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Email:    u.Email,
		Role:     u.Role,
		Language: u.Language,
	}
}

// Job-role and language labels accepted at registration. The registration
// form offers exactly these options.
var (
	Roles = []string{
		"Full Stack Developer",
		"Frontend Developer",
		"Backend Developer",
	}

	Languages = []string{
		"JavaScript",
		"Python",
		"Ruby",
	}
)

// ValidRole reports whether s is one of the accepted job-role labels.
func ValidRole(s string) bool {
	return contains(Roles, s)
}

// ValidLanguage reports whether s is one of the accepted language labels.
func ValidLanguage(s string) bool {
	return contains(Languages, s)
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

// NormalizeEmail applies the single normalization policy shared by lookups
// and the uniqueness constraint: trim surrounding whitespace and lowercase.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
