// Package errs holds the error types shared by the upstream clients and
// the workers built on top of them.
package errs

import (
	"fmt"
	"net/http"
)

const bodyPreviewLimit = 2048

// RequiredParamError is returned when a required constructor or call
// parameter is missing. It indicates a programming or configuration error.
type RequiredParamError struct {
	Param string
	Type  string
}

func (e *RequiredParamError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("parameter '%s' (type: %s) is required", e.Param, e.Type)
	}
	return fmt.Sprintf("parameter '%s' is required", e.Param)
}

// ResponseSnapshot is a redacted copy of an upstream HTTP exchange, kept on
// UnexpectedResponseError for diagnosability. Request bodies are reduced to
// a short preview so credentials or large payloads never end up in logs.
type ResponseSnapshot struct {
	StatusCode    int
	Headers       http.Header
	Body          string
	RequestMethod string
	RequestURL    string
	RequestBody   string
}

// UnexpectedResponseError is returned when an upstream API responds with a
// non-2xx status or a structurally invalid body.
type UnexpectedResponseError struct {
	Response ResponseSnapshot
}

func (e *UnexpectedResponseError) Error() string {
	return fmt.Sprintf("unexpected response from server (status %d)", e.Response.StatusCode)
}

// Snapshot builds a redacted ResponseSnapshot from a completed HTTP exchange.
// body is the already-read response body; reqBody is the request body, if any.
func Snapshot(resp *http.Response, body []byte, reqBody string) ResponseSnapshot {
	snap := ResponseSnapshot{
		Body: preview(string(body)),
	}

	if resp == nil {
		return snap
	}

	snap.StatusCode = resp.StatusCode
	snap.Headers = resp.Header

	if resp.Request != nil {
		snap.RequestMethod = resp.Request.Method
		if resp.Request.URL != nil {
			snap.RequestURL = resp.Request.URL.String()
		}
	}

	snap.RequestBody = preview(reqBody)

	return snap
}

// IsOK reports whether statusCode is in the 2xx range.
func IsOK(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

func preview(s string) string {
	if len(s) > bodyPreviewLimit {
		return s[:bodyPreviewLimit]
	}
	return s
}
