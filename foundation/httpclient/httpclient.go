// Package httpclient provides basic http functions
package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds requests made by clients from MakeClient when no timeout is configured
const DefaultTimeout = 10 * time.Second

// Response contains the status and fully read body of a completed request
type Response struct {
	URL        string
	StatusCode int
	Body       []byte
	ReceivedAt time.Time
}

// IsSuccess returns true if the response carries a 2xx status
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// MakeClient builds an http.Client with timeout, or DefaultTimeout if timeout is not positive
func MakeClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// Get performs a GET request on url and reads the whole body.
// Non 2xx statuses are not errors, callers inspect Response.StatusCode
func Get(ctx context.Context, client *http.Client, url string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &Response{
		URL:        url,
		StatusCode: resp.StatusCode,
		Body:       body,
		ReceivedAt: time.Now(),
	}, nil
}
