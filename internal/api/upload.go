package api

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/vkstore/resume-dashboard/internal/types"
)

// SubmitResume uploads a resume file with its target-role description as a
// multipart form: field `file` carries the document, field `description` the
// free text. The server replies with the usual status acknowledgement once
// analysis has been queued.
func (g *Gateway) SubmitResume(ctx context.Context, email, filename string, file io.Reader, description string) (types.Status, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return types.Status{}, &Error{Op: "submit-resume", URL: g.baseURL, Message: "failed to build multipart body", Cause: err}
	}
	if _, err := io.Copy(part, file); err != nil {
		return types.Status{}, &Error{Op: "submit-resume", URL: g.baseURL, Message: "failed to read resume file", Cause: err}
	}
	if err := writer.WriteField("description", description); err != nil {
		return types.Status{}, &Error{Op: "submit-resume", URL: g.baseURL, Message: "failed to build multipart body", Cause: err}
	}
	if err := writer.Close(); err != nil {
		return types.Status{}, &Error{Op: "submit-resume", URL: g.baseURL, Message: "failed to build multipart body", Cause: err}
	}

	body, err := g.do(ctx, "submit-resume", http.MethodPost,
		"/api/resume/upload/"+escape(email), &buf, writer.FormDataContentType())
	if err != nil {
		return types.Status{}, err
	}
	return decodeStatus("submit-resume", body)
}
