package session

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/dmitrijs2005/versioncheck/internal/common"
	"github.com/google/uuid"
)

// Request describes an authenticated call. The body is kept as bytes so the
// same Request can be sent a second time after a refresh.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// NewRequest returns a Request tagged with a fresh request ID. The ID is kept
// across the retry so both attempts correlate in server logs.
func NewRequest(method, url string, body []byte) *Request {
	h := make(http.Header)
	h.Set(common.RequestIDHeaderName, uuid.NewString())
	return &Request{Method: method, URL: url, Header: h, Body: body}
}

func (r *Request) build(ctx context.Context, accessToken string) (*http.Request, error) {
	var body io.Reader
	if r.Body != nil {
		body = bytes.NewReader(r.Body)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL, body)
	if err != nil {
		return nil, err
	}

	req.Header = r.Header.Clone()
	if req.Header == nil {
		req.Header = make(http.Header)
	}
	req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+accessToken)
	return req, nil
}
