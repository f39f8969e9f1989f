// Package session derives authentication state from the persisted key/value
// store. The email identifier is the sole session credential: its presence in
// storage is what "signed in" means, with no token and no expiry.
package session

import (
	"strings"

	"github.com/vkstore/resume-dashboard/internal/storage"
	"github.com/vkstore/resume-dashboard/internal/types"
)

// Storage keys owned by the session store. Preference keys (theme, phone,
// displayName, ...) live alongside them in the same store but are written by
// the profile and settings screens, not by this package.
const (
	KeyEmail = "email"
	KeyUser  = "user"
)

// Store exposes the session contract over the shared key/value store.
// It is the sole writer of the email key.
type Store struct {
	kv *storage.Store
}

// New wraps the given key/value store.
func New(kv *storage.Store) *Store {
	return &Store{kv: kv}
}

// IsAuthenticated reports whether a non-empty identifier is persisted.
func (s *Store) IsAuthenticated() bool {
	return s.CurrentIdentifier() != ""
}

// CurrentIdentifier returns the persisted email identifier, or "".
func (s *Store) CurrentIdentifier() string {
	return s.kv.GetDefault(KeyEmail, "")
}

// Establish writes the identifier and the raw user record, overwriting any
// prior session without merging. Idempotent.
func (s *Store) Establish(identifier string, user types.UserRecord) {
	s.kv.Set(KeyUser, string(user.Raw))
	s.kv.Set(KeyEmail, identifier)
}

// Terminate removes the identifier. The stored user record and all preference
// keys deliberately survive; only the credential itself is cleared.
func (s *Store) Terminate() {
	s.kv.Remove(KeyEmail)
}

// UserRecord returns the persisted user record, which may be zero.
func (s *Store) UserRecord() types.UserRecord {
	return types.ParseUserRecord([]byte(s.kv.GetDefault(KeyUser, "")))
}

// DisplayName resolves the name shown for the current session, in order of
// preference: the stored user record's userName, its name, the displayName
// preference key, then the capitalized local part of the email.
func (s *Store) DisplayName() string {
	user := s.UserRecord()
	if n := user.UserName(); n != "" {
		return n
	}
	if n := user.Name(); n != "" {
		return n
	}
	if n := s.kv.GetDefault("displayName", ""); n != "" {
		return n
	}
	email := s.CurrentIdentifier()
	if email == "" {
		return ""
	}
	local, _, _ := strings.Cut(email, "@")
	if local == "" {
		return ""
	}
	return strings.ToUpper(local[:1]) + local[1:]
}

// Initials derives up to two uppercase initials from a display name: the
// first letters of the first two words, the first two letters of a single
// word, or "U" when the name is empty.
func Initials(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "U"
	}
	parts := strings.Fields(name)
	if len(parts) >= 2 {
		return strings.ToUpper(firstRune(parts[0]) + firstRune(parts[1]))
	}
	runes := []rune(name)
	if len(runes) == 1 {
		return strings.ToUpper(string(runes))
	}
	return strings.ToUpper(string(runes[:2]))
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
