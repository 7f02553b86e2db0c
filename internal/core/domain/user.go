package domain

import "time"

// User is a registered account. Username is the natural key.
type User struct {
	Username     string
	PasswordHash string
	// LegacyPassword holds the plaintext password of records created before
	// hashing was introduced. Empty for every account registered since.
	LegacyPassword string
	VK             string
	Created        time.Time
}

// HasLegacyPassword reports whether the record still stores a plaintext password.
func (u *User) HasLegacyPassword() bool {
	return u.PasswordHash == "" && u.LegacyPassword != ""
}
