// Package models defines the data types shared across the tourist guide
// services: user accounts and attraction records.
package models

import "strings"

// UserRecord is a simulated account stored in the local profile. Passwords
// are kept in plain text on purpose: the whole identity system is a local
// demo, there is nothing to protect.
//
// The JSON field names are part of the on-disk format under the
// "tg_fake_users" key and must not change.
type UserRecord struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// EmailEquals reports whether the record's email matches other,
// case-insensitively. Email comparison is case-insensitive everywhere in
// the identity service.
func (u UserRecord) EmailEquals(other string) bool {
	return strings.EqualFold(u.Email, other)
}
