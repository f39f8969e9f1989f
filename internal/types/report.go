// Package types provides type definitions for structured data used throughout the resume-dashboard client.
package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ReportID is a report identifier that the server emits either as a JSON
// string or as a JSON number, depending on the endpoint. It is kept as a
// string internally; numeric values are formatted without an exponent.
type ReportID string

// UnmarshalJSON accepts both `"42"` and `42` on the wire.
func (id *ReportID) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*id = ""
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("failed to parse report id: %w", err)
		}
		*id = ReportID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("failed to parse report id: %w", err)
	}
	*id = ReportID(n.String())
	return nil
}

// MarshalJSON emits the id as a string.
func (id ReportID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

// String returns the canonical string form of the id.
func (id ReportID) String() string {
	return string(id)
}

// Equals reports whether the id matches the given string, comparing the
// canonical forms (so "42" matches a numeric 42 from the wire).
func (id ReportID) Equals(other string) bool {
	if string(id) == other {
		return true
	}
	// Normalize numeric forms such as "42.0" vs "42".
	a, errA := strconv.ParseFloat(string(id), 64)
	b, errB := strconv.ParseFloat(other, 64)
	return errA == nil && errB == nil && a == b
}

// Report is a server-produced resume analysis artifact scoped to one user.
// The client treats reports as read-only; the only mutation is deletion.
type Report struct {
	ID                ReportID `json:"id"`
	Summary           string   `json:"summary"`
	ATSScore          float64  `json:"atsScore"`
	JobMatch          float64  `json:"jobMatch"`
	Strengths         []string `json:"strengths"`
	MissingKeywords   []string `json:"missingKeywords"`
	Improvements      []string `json:"improvements"`
	JobRecommendation []string `json:"jobRecommendation"`
	GeneratedText     string   `json:"generatedText"`
}

// ShortSummary returns the summary truncated to max runes, with an ellipsis
// appended when truncation occurred.
func (r *Report) ShortSummary(max int) string {
	runes := []rune(r.Summary)
	if len(runes) <= max {
		return r.Summary
	}
	return string(runes[:max]) + "..."
}
