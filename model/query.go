package model

import "strings"

type SearchQuery struct {
	Username string `form:"username"`
}

// Handle returns the submitted username without surrounding spaces
func (q SearchQuery) Handle() string {
	return strings.TrimSpace(q.Username)
}

type SignInForm struct {
	Name     string `form:"name" binding:"required"`
	Username string `form:"username" binding:"required"`
	Avatar   string `form:"avatar"`
	Email    string `form:"email"`
}

// Identity builds the display-only session identity from the submitted form
func (f SignInForm) Identity() Identity {
	return Identity{
		Name:     strings.TrimSpace(f.Name),
		Username: strings.TrimSpace(f.Username),
		Avatar:   strings.TrimSpace(f.Avatar),
		Email:    strings.TrimSpace(f.Email),
	}
}
