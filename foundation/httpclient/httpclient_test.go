package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestGet(t *testing.T) {
	is := is.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") != "application/json" {
			w.WriteHeader(http.StatusNotAcceptable)
			return
		}
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))
	defer server.Close()

	resp, err := Get(context.Background(), server.Client(), server.URL)
	is.NoErr(err)
	is.Equal(resp.StatusCode, http.StatusTeapot)
	is.Equal(string(resp.Body), "short and stout")
	is.Equal(resp.URL, server.URL)
	is.True(!resp.IsSuccess())
}

func TestGet_cancelledContext(t *testing.T) {
	is := is.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Get(ctx, server.Client(), server.URL)
	is.True(err != nil)
}

func TestMakeClient(t *testing.T) {
	tests := []struct {
		name    string
		timeout time.Duration
		want    time.Duration
	}{
		{name: "configured", timeout: 3 * time.Second, want: 3 * time.Second},
		{name: "zero uses default", timeout: 0, want: DefaultTimeout},
		{name: "negative uses default", timeout: -time.Second, want: DefaultTimeout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			is.Equal(MakeClient(tt.timeout).Timeout, tt.want)
		})
	}
}

func TestResponse_IsSuccess(t *testing.T) {
	is := is.New(t)
	is.True((&Response{StatusCode: 200}).IsSuccess())
	is.True((&Response{StatusCode: 204}).IsSuccess())
	is.True(!(&Response{StatusCode: 301}).IsSuccess())
	is.True(!(&Response{StatusCode: 401}).IsSuccess())
}
