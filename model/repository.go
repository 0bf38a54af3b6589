package model

import "time"

type Repository struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	FullName        string    `json:"fullName"`
	Description     *string   `json:"description,omitempty"`
	HTMLURL         string    `json:"htmlUrl"`
	StargazersCount int       `json:"stargazersCount"`
	ForksCount      int       `json:"forksCount"`
	Language        *string   `json:"language,omitempty"` // primary language, nil for empty repositories
	UpdatedAt       time.Time `json:"updatedAt"`
	Topics          []string  `json:"topics"`
}

// UserSummary is what the JSON endpoint returns for a handle
type UserSummary struct {
	Profile      Profile      `json:"profile"`
	Repositories []Repository `json:"repositories"`
}
