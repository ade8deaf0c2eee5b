package model

import (
	"errors"
	"strings"
)

// User is the authenticated principal. The persisted session record is a
// serialized User, nothing more.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (u User) Validate() error {
	if strings.TrimSpace(u.ID) == "" {
		return errors.New("model: user id is required")
	}
	if strings.TrimSpace(u.Email) == "" {
		return errors.New("model: user email is required")
	}
	return nil
}
