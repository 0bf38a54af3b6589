package model

import "time"

// Profile is the account level information returned by GET /users/{handle}.
// Optional upstream fields are pointers and stay nil when GitHub returns null.
type Profile struct {
	Login           string    `json:"login"`
	ID              int64     `json:"id"`
	AvatarURL       string    `json:"avatarUrl"`
	Name            *string   `json:"name,omitempty"`
	Bio             *string   `json:"bio,omitempty"`
	Location        *string   `json:"location,omitempty"`
	PublicRepos     int       `json:"publicRepos"`
	Followers       int       `json:"followers"`
	Following       int       `json:"following"`
	CreatedAt       time.Time `json:"createdAt"`
	HTMLURL         string    `json:"htmlUrl"`
	Blog            *string   `json:"blog,omitempty"`
	Company         *string   `json:"company,omitempty"`
	TwitterUsername *string   `json:"twitterUsername,omitempty"`
}

// DisplayName falls back to the login when the user has no name set
func (p Profile) DisplayName() string {
	if p.Name != nil && *p.Name != "" {
		return *p.Name
	}

	return p.Login
}
