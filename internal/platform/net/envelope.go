package net

import (
	"net/http"

	perr "addressbook/internal/platform/errors"
)

// Envelope is the JSON body every endpoint answers with
// successes carry Data, failures carry Code and Error, never both
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// Success is a status envelope around data
func Success(status int, data any, reqID string) Envelope {
	return Envelope{
		StatusCode: status,
		Status:     http.StatusText(status),
		RequestID:  reqID,
		Data:       data,
	}
}

// Failure picks the status for err and builds its envelope
// errors outside perr and postgres read as the generic internal message
func Failure(err error, reqID string) (int, Envelope) {
	if err == nil {
		return http.StatusOK, Success(http.StatusOK, nil, reqID)
	}
	status := perr.HTTPStatus(err)
	w := perr.WireFrom(err)
	env := Success(status, nil, reqID)
	env.Code, env.Error = w.Code, w.Message
	return status, env
}
