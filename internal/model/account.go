package model

// Account roles.  Guests are simply unauthenticated requests and have no
// account at all.
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
)

// Account is an application login.  Passwords are stored only as bcrypt
// hashes; the hash is never serialized into API responses.
//
// Fields:
//  ID           – unique identifier.
//  Username     – unique login name.
//  PasswordHash – bcrypt hash of the password.
//  Name         – display name shown in schedules.
//  Role         – admin | teacher.
type Account struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	Role         string `json:"role"`
}
