package user

import (
	"os"
	"os/user"
	"strings"

	"github.com/thenoetrevino/funil/internal/models"
)

// GetCurrentUsername returns the current system username.
// It tries multiple methods with fallbacks:
// 1. user.Current() - most reliable, gets username from OS
// 2. USER environment variable - fallback for restricted environments
// 3. "unknown" - final fallback to ensure a non-empty value
func GetCurrentUsername() string {
	currentUser, err := user.Current()
	if err != nil {
		username := os.Getenv("USER")
		if username == "" {
			return "unknown"
		}
		return username
	}
	return currentUser.Username
}

// AuthorName returns the name recorded as creator of local tasks and author
// of comments: the signed-in CRM user's name when there is one, otherwise the
// system username.
func AuthorName(u *models.User) string {
	if u != nil {
		if name := strings.TrimSpace(u.Name); name != "" {
			return name
		}
		if email := strings.TrimSpace(u.Email); email != "" {
			return email
		}
	}
	return GetCurrentUsername()
}
