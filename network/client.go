// Package network builds the HTTP client used to reach the schedule service.
package network

import (
	"net/http"
	"time"
)

// NewClient returns a client with a tuned transport that stamps every request
// with userAgent. A zero timeout leaves requests bounded only by their context.
func NewClient(timeout time.Duration, userAgent string) *http.Client {
	var rt http.RoundTripper = newTransport()
	if userAgent != "" {
		rt = &userAgentTransport{base: rt, userAgent: userAgent}
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: rt,
	}
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 10
	t.MaxIdleConnsPerHost = 2
	t.IdleConnTimeout = 30 * time.Second
	t.ExpectContinueTimeout = time.Second
	return t
}

type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return t.base.RoundTrip(req)
	}

	clone := req.Clone(req.Context())
	clone.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(clone)
}
