package upload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFile_BadExtensionRejected(t *testing.T) {
	err := ValidateFile("resume.exe", 100)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, MsgBadExtension, verr.Message)
}

func TestValidateFile_OversizeRejected(t *testing.T) {
	err := ValidateFile("resume.pdf", 6*1024*1024)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, MsgTooLarge, verr.Message)
}

func TestValidateFile_ValidDocxPasses(t *testing.T) {
	assert.NoError(t, ValidateFile("resume.docx", 1024*1024))
}

func TestValidateFile_ExactLimitPasses(t *testing.T) {
	assert.NoError(t, ValidateFile("resume.pdf", MaxFileSize))
	assert.Error(t, ValidateFile("resume.pdf", MaxFileSize+1))
}

func TestValidateFile_ExtensionCaseInsensitive(t *testing.T) {
	assert.NoError(t, ValidateFile("Resume.PDF", 100))
	assert.NoError(t, ValidateFile("Resume.DocX", 100))
}

func TestValidateFile_MissingFileDistinctFromBadFile(t *testing.T) {
	err := ValidateFile("", 0)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, MsgNoFile, verr.Message)
}

func TestValidateFile_NoExtensionRejected(t *testing.T) {
	err := ValidateFile("resume", 100)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, MsgBadExtension, verr.Message)
}

func TestNewCandidate_StatsRealFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 fake"), 0o600))

	candidate, err := NewCandidate(path)
	require.NoError(t, err)
	assert.Equal(t, "resume.pdf", candidate.Name)
	assert.Equal(t, int64(13), candidate.Size)
	assert.Equal(t, "0.00 MB", candidate.SizeMB())
}

func TestNewCandidate_MissingFile(t *testing.T) {
	_, err := NewCandidate(filepath.Join(t.TempDir(), "nope.pdf"))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, MsgNoFile, verr.Message)
}
