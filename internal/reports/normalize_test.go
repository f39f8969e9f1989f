package reports

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkstore/resume-dashboard/internal/api"
)

func envelopeOf(t *testing.T, body string) api.Envelope {
	t.Helper()
	return api.Envelope{Body: json.RawMessage(body)}
}

func TestNormalize_BareSequence(t *testing.T) {
	collection, _, ok := Normalize(envelopeOf(t, `[{"id":1,"summary":"a"},{"id":2,"summary":"b"}]`))
	require.True(t, ok)
	require.Len(t, collection, 2)
	assert.Equal(t, "1", collection[0].ID.String())
	assert.Equal(t, "b", collection[1].Summary)
}

func TestNormalize_WrappedReports(t *testing.T) {
	collection, _, ok := Normalize(envelopeOf(t, `{"reports":[{"id":"a"},{"id":"b"},{"id":"c"}]}`))
	require.True(t, ok)
	require.Len(t, collection, 3)
	assert.Equal(t, "a", collection[0].ID.String())
	assert.Equal(t, "c", collection[2].ID.String())
}

func TestNormalize_WrappedData(t *testing.T) {
	collection, _, ok := Normalize(envelopeOf(t, `{"data":[{"id":"x"}]}`))
	require.True(t, ok)
	require.Len(t, collection, 1)
	assert.Equal(t, "x", collection[0].ID.String())
}

func TestNormalize_ReportsFieldWinsOverData(t *testing.T) {
	collection, _, ok := Normalize(envelopeOf(t, `{"reports":[{"id":"r"}],"data":[{"id":"d"}]}`))
	require.True(t, ok)
	require.Len(t, collection, 1)
	assert.Equal(t, "r", collection[0].ID.String())
}

func TestNormalize_FailureWithMessage(t *testing.T) {
	_, message, ok := Normalize(envelopeOf(t, `{"status":false,"message":"server exploded"}`))
	assert.False(t, ok)
	assert.Equal(t, "server exploded", message)
}

func TestNormalize_FailureWithoutMessageUsesDefault(t *testing.T) {
	_, message, ok := Normalize(envelopeOf(t, `{"status":false}`))
	assert.False(t, ok)
	assert.Equal(t, DefaultFetchErrorMessage, message)
}

func TestNormalize_StatusTrueWithoutCollectionIsEmpty(t *testing.T) {
	collection, _, ok := Normalize(envelopeOf(t, `{"status":true,"message":"fine"}`))
	require.True(t, ok)
	assert.Empty(t, collection)
}

func TestNormalize_UnrecognizedObjectIsEmpty(t *testing.T) {
	collection, _, ok := Normalize(envelopeOf(t, `{"something":"else"}`))
	require.True(t, ok)
	assert.Empty(t, collection)
}

func TestNormalize_CoercionFailureDegradesToEmpty(t *testing.T) {
	// `reports` present but not a sequence of reports.
	collection, _, ok := Normalize(envelopeOf(t, `{"reports":"not-a-list"}`))
	require.True(t, ok)
	assert.Empty(t, collection)

	// Bare value that is neither array nor object.
	collection, _, ok = Normalize(envelopeOf(t, `"just a string"`))
	require.True(t, ok)
	assert.Empty(t, collection)
}

func TestNormalize_EmptyBodyIsEmpty(t *testing.T) {
	collection, _, ok := Normalize(api.Envelope{})
	require.True(t, ok)
	assert.Empty(t, collection)
}

func TestNormalize_PreservesServerOrder(t *testing.T) {
	collection, _, ok := Normalize(envelopeOf(t, `{"data":[{"id":9},{"id":3},{"id":7}]}`))
	require.True(t, ok)
	require.Len(t, collection, 3)
	assert.Equal(t, "9", collection[0].ID.String())
	assert.Equal(t, "3", collection[1].ID.String())
	assert.Equal(t, "7", collection[2].ID.String())
}
