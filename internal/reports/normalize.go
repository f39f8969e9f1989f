// Package reports fetches a user's report collection, normalizes the API's
// heterogeneous response envelopes into one ordered sequence, and performs
// server-confirmed local deletion against that sequence.
package reports

import (
	"bytes"
	"encoding/json"

	"github.com/vkstore/resume-dashboard/internal/api"
	"github.com/vkstore/resume-dashboard/internal/types"
)

// DefaultFetchErrorMessage is used when a failure envelope carries no message.
const DefaultFetchErrorMessage = "Failed to fetch reports"

// envelopeKind tags the recognized list-response shapes.
type envelopeKind int

const (
	kindSequence envelopeKind = iota // bare JSON array
	kindWrappedReports               // object with a `reports` field
	kindWrappedData                  // object with a `data` field
	kindFailure                      // object with status:false
	kindEmpty                        // anything else
)

// normalized is the outcome of envelope normalization: either an ordered
// report sequence or a failure message, never both.
type normalized struct {
	kind    envelopeKind
	reports []types.Report
	message string
}

// Normalize resolves an envelope into an ordered report sequence or a
// failure message. Precedence: bare sequence, then `reports`, then `data`,
// then status:false, then empty. A candidate that fails to coerce into a
// report sequence degrades to an empty sequence rather than an error, so a
// malformed body never takes down the whole screen.
func Normalize(envelope api.Envelope) ([]types.Report, string, bool) {
	n := normalize(envelope)
	if n.kind == kindFailure {
		return nil, n.message, false
	}
	return n.reports, "", true
}

func normalize(envelope api.Envelope) normalized {
	body := bytes.TrimSpace(envelope.Body)
	if len(body) == 0 {
		return normalized{kind: kindEmpty, reports: []types.Report{}}
	}

	if body[0] == '[' {
		return normalized{kind: kindSequence, reports: coerce(body)}
	}

	var probe struct {
		Reports json.RawMessage `json:"reports"`
		Data    json.RawMessage `json:"data"`
		Status  *bool           `json:"status"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return normalized{kind: kindEmpty, reports: []types.Report{}}
	}

	switch {
	case probe.Reports != nil:
		return normalized{kind: kindWrappedReports, reports: coerce(probe.Reports)}
	case probe.Data != nil:
		return normalized{kind: kindWrappedData, reports: coerce(probe.Data)}
	case probe.Status != nil && !*probe.Status:
		message := probe.Message
		if message == "" {
			message = DefaultFetchErrorMessage
		}
		return normalized{kind: kindFailure, message: message}
	default:
		return normalized{kind: kindEmpty, reports: []types.Report{}}
	}
}

// coerce parses raw JSON as a report sequence, falling back to an empty
// sequence when the payload is not one.
func coerce(raw json.RawMessage) []types.Report {
	var parsed []types.Report
	if err := json.Unmarshal(raw, &parsed); err != nil || parsed == nil {
		return []types.Report{}
	}
	return parsed
}
