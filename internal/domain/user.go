package domain

import "strings"

// User lives in the externally-owned identity schema; this service only reads it.
type User struct {
	ID              string  `json:"id"`
	FirstName       *string `json:"firstName"`
	LastName        *string `json:"lastName"`
	ProfileImageURL *string `json:"profileImageUrl"`
}

// DisplayName joins first and last name, falling back to "Anonymous" when the
// identity provider has neither on file.
func (u User) DisplayName() string {
	first := "User"
	if u.FirstName != nil && *u.FirstName != "" {
		first = *u.FirstName
	}

	last := ""
	if u.LastName != nil {
		last = *u.LastName
	}

	name := strings.TrimSpace(first + " " + last)
	if name == "" {
		return "Anonymous"
	}

	return name
}

type LeaderboardEntry struct {
	UserID    string  `json:"userId"`
	Name      string  `json:"name"`
	Points    int     `json:"points"`
	AvatarURL *string `json:"avatarUrl"`
}
