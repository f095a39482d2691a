package net

import (
	"net/http"

	perr "netmatch/internal/platform/errors"
)

// Wire is the JSON envelope of every API reply
// Data is set on success; Code and Error are set on failure
type Wire struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

func head(status int, reqID string) Wire {
	return Wire{StatusCode: status, Status: http.StatusText(status), RequestID: reqID}
}

// Success is the envelope for data served with status
func Success(status int, data any, reqID string) Wire {
	w := head(status, reqID)
	w.Data = data
	return w
}

// Failure is the envelope for err; status and code come from perr
// nil is not a failure and yields an empty 200
func Failure(err error, reqID string) Wire {
	if err == nil {
		return head(http.StatusOK, reqID)
	}
	w := head(perr.HTTPStatus(err), reqID)
	e := perr.WireFrom(err)
	w.Code, w.Error = e.Code, e.Message
	return w
}
