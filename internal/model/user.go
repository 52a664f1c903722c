package model

import "time"

// User represents an application user record as stored in the
// `users` table. Each field corresponds to a column in the
// database. The json tags on public fields match the wire shape
// returned by the auth endpoints; the password hash is never
// serialized.
//
// Fields:
//  ID           – UUID primary key of the user.
//  FirstName    – given name as submitted at registration.
//  LastName     – family name as submitted at registration.
//  Email        – unique email address, stored lower-cased.
//  PasswordHash – bcrypt hashed password.
//  CreatedAt    – timestamp of creation (UTC).
type User struct {
	ID           string    `json:"id"`         // users.id
	FirstName    string    `json:"first_name"` // users.first_name
	LastName     string    `json:"last_name"`  // users.last_name
	Email        string    `json:"email"`      // users.email
	PasswordHash string    `json:"-"`          // users.password_hash
	CreatedAt    time.Time `json:"created_at"` // users.created_at
}
