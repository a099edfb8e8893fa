package models

// User is the mock session identity. No credentials are stored; presence of a
// persisted User record is what makes a session authenticated.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email" example:"jane@example.com"`
	Name  string `json:"name" example:"jane"`
}
