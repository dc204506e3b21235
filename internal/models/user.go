package models

import "fmt"

// User is a single stored person record.
// IDs are assigned by the store on insert and are never reused, so the
// highest ID is always the most recently inserted user.
type User struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// GetID returns the user ID
func (u *User) GetID() int {
	return u.ID
}

// DisplayLine renders the user the way the listing shows it
func (u *User) DisplayLine() string {
	return fmt.Sprintf("%s - %s", u.FirstName, u.LastName)
}
