package model

// Identity is who is "signed in" on this client.
// It is supplied by the visitor and never verified against GitHub.
type Identity struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	Email    string `json:"email"`
}
