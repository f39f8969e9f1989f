// Package upload drives the multi-step resume upload: client-side validation,
// multipart submission, and a simulated progress indicator bridging real
// request latency with user feedback.
package upload

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MaxFileSize is the upload ceiling: 5 MiB.
const MaxFileSize = 5 * 1024 * 1024

// User-facing validation messages.
const (
	MsgNoFile             = "Please select a file."
	MsgNoFileAtSubmit     = "Please select a resume file."
	MsgBadExtension       = "Only PDF or DOCX allowed."
	MsgTooLarge           = "File exceeds 5MB limit."
	MsgMissingDescription = "Please enter target role or job description."
)

// allowedExtensions are checked case-insensitively on the filename's final
// dot segment.
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// ValidationError is a local, non-fatal rejection; it never reaches the
// gateway and the form stays editable.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateFile checks a candidate's name and size against the upload rules.
// A missing file (empty name) is rejected before the extension or size is
// ever looked at.
func ValidateFile(name string, size int64) error {
	if name == "" {
		return &ValidationError{Message: MsgNoFile}
	}
	ext := strings.ToLower(filepath.Ext(name))
	if !allowedExtensions[ext] {
		return &ValidationError{Message: MsgBadExtension}
	}
	if size > MaxFileSize {
		return &ValidationError{Message: MsgTooLarge}
	}
	return nil
}

// Candidate is one upload attempt: a file plus the target-role description.
// It lives until the upload succeeds or the user discards it; a failed
// submission keeps it so the user can retry without reselecting.
type Candidate struct {
	Path        string
	Name        string
	Size        int64
	Description string
}

// NewCandidate stats the file at path and validates it. The description may
// be attached later; it is checked at submit time, not here.
func NewCandidate(path string) (*Candidate, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ValidationError{Message: MsgNoFile}
		}
		return nil, fmt.Errorf("failed to inspect resume file %s: %w", path, err)
	}
	name := filepath.Base(path)
	if err := ValidateFile(name, info.Size()); err != nil {
		return nil, err
	}
	return &Candidate{Path: path, Name: name, Size: info.Size()}, nil
}

// SizeMB renders the candidate size in megabytes for display.
func (c *Candidate) SizeMB() string {
	return fmt.Sprintf("%.2f MB", float64(c.Size)/1024/1024)
}
