package domain

import "time"

// User models a login account for the HR tool. PasswordDigest holds the
// bcrypt hash of the password and is never serialized into a response.
type User struct {
	ID             int64     `json:"id" bson:"_id"`
	Email          string    `json:"email" bson:"email"`
	PasswordDigest string    `json:"-" bson:"password_digest"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" bson:"updated_at"`
}
