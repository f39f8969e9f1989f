package types

import "encoding/json"

// UserRecord is the raw user object returned by GET /api/user/{email}.
// The client never depends on its full shape; it keeps the raw JSON for
// persistence and extracts only the fields needed for display.
type UserRecord struct {
	Raw json.RawMessage
}

// userFields is the subset of the record the client reads.
type userFields struct {
	UserName string `json:"userName"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// ParseUserRecord wraps raw JSON as a UserRecord. Invalid JSON is kept as-is;
// field lookups on it simply return empty strings.
func ParseUserRecord(raw []byte) UserRecord {
	return UserRecord{Raw: json.RawMessage(raw)}
}

func (u UserRecord) fields() userFields {
	var f userFields
	_ = json.Unmarshal(u.Raw, &f)
	return f
}

// UserName returns the record's userName field, or "".
func (u UserRecord) UserName() string { return u.fields().UserName }

// Name returns the record's name field, or "".
func (u UserRecord) Name() string { return u.fields().Name }

// Email returns the record's email field, or "".
func (u UserRecord) Email() string { return u.fields().Email }

// IsZero reports whether the record carries no payload.
func (u UserRecord) IsZero() bool { return len(u.Raw) == 0 }
