// Package domain contains core concepts of the chat system.
// This file defines User entities and how their identifiers are built.
// No runtime, storage, or UI logic should be added here.
package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

const (
	// IDDomain is appended to every generated user id.
	IDDomain = "@echosphere"

	avatarBaseURL = "https://i.pravatar.cc/150?u="
)

// User is a registered member of the directory. Users are immutable once created.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// SeedUsers are persisted on the very first run.
var SeedUsers = []User{
	{ID: "alice" + IDDomain, Name: "Alice", Avatar: AvatarURL("alice")},
	{ID: "bob" + IDDomain, Name: "Bob", Avatar: AvatarURL("bob")},
}

// NewUser builds a user for a trimmed, non-empty name created at the given instant.
func NewUser(name string, at time.Time) User {
	id := UserID(name, at)
	return User{
		ID:     id,
		Name:   name,
		Avatar: AvatarURL(id),
	}
}

// UserID lowercases the name, strips whitespace and appends the epoch-ms
// timestamp and the id domain.
func UserID(name string, at time.Time) string {
	return fmt.Sprintf("%s%d%s", Slug(name), at.UnixMilli(), IDDomain)
}

func Slug(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, name)
}

func AvatarURL(seed string) string {
	return avatarBaseURL + seed
}

// SameName reports whether two display names collide (case-insensitive).
func SameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
