package users

import "time"

// User is the stored identity record. PasswordHash never leaves the service.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
