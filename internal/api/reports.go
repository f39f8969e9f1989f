package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vkstore/resume-dashboard/internal/types"
)

// Envelope is the unparsed list-reports response. The server's shape is not
// fixed: the body may be a bare array, an object carrying `reports`, an
// object carrying `data`, or a failure object with status:false. The gateway
// passes the body through untouched; normalization belongs to the reports
// synchronizer.
type Envelope struct {
	Body json.RawMessage
}

// FailureEnvelope synthesizes the failure shape the server itself uses, so
// a transport fault and a business rejection look identical downstream.
func FailureEnvelope(message string) Envelope {
	encoded, _ := json.Marshal(types.Status{Status: false, Message: message})
	return Envelope{Body: encoded}
}

// ListReports fetches the report collection for one identifier. It never
// returns a Go error: any transport failure is folded into a failure
// envelope.
func (g *Gateway) ListReports(ctx context.Context, email string) Envelope {
	body, err := g.do(ctx, "list-reports", http.MethodGet, "/api/resume/report/"+escape(email), nil, "")
	if err != nil {
		return FailureEnvelope(failureMessage(err, "Failed to fetch reports"))
	}
	return Envelope{Body: body}
}

// DeleteReport asks the server to delete one report. Like ListReports it
// never returns a Go error; transport failures fold into a false status.
func (g *Gateway) DeleteReport(ctx context.Context, id string) types.Status {
	body, err := g.do(ctx, "delete-report", http.MethodDelete, "/api/resume/delete/"+escape(id), nil, "")
	if err != nil {
		return types.Status{Status: false, Message: failureMessage(err, "Failed to delete report")}
	}
	status, err := decodeStatus("delete-report", body)
	if err != nil {
		return types.Status{Status: false, Message: "Failed to delete report"}
	}
	return status
}

// failureMessage prefers the non-2xx status line ("HTTP error! status: N")
// over the operation default; network faults use the default.
func failureMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Cause == nil {
		return apiErr.Message
	}
	return fallback
}
