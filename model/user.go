package model

import "time"

// User is a registered account. Password holds the bcrypt hash, never the
// plain text, and is excluded from every JSON response.
type User struct {
	UserID    string    `bson:"_id" json:"_id"`
	FullName  string    `bson:"full_name" json:"fullName"`
	Email     string    `bson:"email" json:"email"`
	Password  string    `bson:"password" json:"-"`
	CreatedAt time.Time `bson:"created_at" json:"createdOn"`
}
