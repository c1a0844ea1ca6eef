package subscription

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	method      string
	path        string
	contentType string
	body        string
}

func newRecordingServer(t *testing.T, status int, response string) (*httptest.Server, <-chan capturedRequest) {
	t.Helper()

	captured := make(chan capturedRequest, 8)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		captured <- capturedRequest{
			method:      r.Method,
			path:        r.URL.Path,
			contentType: r.Header.Get("Content-Type"),
			body:        string(body),
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, response)
	}))
	t.Cleanup(srv.Close)

	return srv, captured
}

func TestNewClient_Defaults(t *testing.T) {
	c, err := NewClient(Config{})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/projects/4/subscriptions", c.Endpoint())
	assert.Zero(t, c.httpClient.Timeout, "requests must not time out by default")
}

func TestNewClient_Endpoint(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		want    string
		wantErr bool
	}{
		{
			name:   "custom project",
			config: Config{BaseURL: "http://api.example.com", ProjectID: 12},
			want:   "http://api.example.com/projects/12/subscriptions",
		},
		{
			name:   "trailing slash",
			config: Config{BaseURL: "http://localhost:8080/"},
			want:   "http://localhost:8080/projects/4/subscriptions",
		},
		{
			name:    "missing scheme",
			config:  Config{BaseURL: "localhost"},
			wantErr: true,
		},
		{
			name:    "unparseable",
			config:  Config{BaseURL: "http://[::1"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClient(tt.config)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidBaseURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Endpoint())
		})
	}
}

func TestSubscribe_WireFormat(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		wantBody string
	}{
		{name: "plain address", email: "a@b.com", wantBody: `{"email":"a@b.com"}`},
		{name: "empty string", email: "", wantBody: `{"email":""}`},
		{name: "not an address", email: "<not an email>", wantBody: `{"email":"<not an email>"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, captured := newRecordingServer(t, http.StatusCreated, `{"status":"ok"}`)

			c, err := NewClient(Config{BaseURL: srv.URL})
			require.NoError(t, err)

			_, err = c.Subscribe(context.Background(), Request{Email: tt.email})
			require.NoError(t, err)

			got := <-captured
			assert.Equal(t, http.MethodPost, got.method)
			assert.Equal(t, "/projects/4/subscriptions", got.path)
			assert.Equal(t, "application/json", got.contentType)
			assert.Equal(t, tt.wantBody, got.body)
		})
	}
}

func TestSubscribe_DecodesResponse(t *testing.T) {
	srv, _ := newRecordingServer(t, http.StatusOK, `{"status":"ok"}`)

	c, err := NewClient(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	got, err := c.Subscribe(context.Background(), Request{Email: "a@b.com"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"status": "ok"}, got)
}

func TestSubscribe_IgnoresStatusCode(t *testing.T) {
	srv, _ := newRecordingServer(t, http.StatusInternalServerError, `{"error":"boom"}`)

	c, err := NewClient(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	got, err := c.Subscribe(context.Background(), Request{Email: "a@b.com"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"error": "boom"}, got)
}

func TestSubscribe_NonJSONResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "html", body: "<html>bad gateway</html>"},
		{name: "empty", body: ""},
		{name: "trailing garbage", body: `{"status":"ok"} trailing`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newRecordingServer(t, http.StatusBadGateway, tt.body)

			c, err := NewClient(Config{BaseURL: srv.URL})
			require.NoError(t, err)

			got, err := c.Subscribe(context.Background(), Request{Email: "a@b.com"})
			require.ErrorIs(t, err, ErrDecodeResponse)
			assert.Nil(t, got)
		})
	}
}

func TestSubscribe_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	c, err := NewClient(Config{BaseURL: baseURL})
	require.NoError(t, err)

	got, err := c.Subscribe(context.Background(), Request{Email: "a@b.com"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrDecodeResponse)
	assert.Contains(t, err.Error(), "executing request")
	assert.Nil(t, got)
}

func TestSubscribe_CanceledContext(t *testing.T) {
	srv, _ := newRecordingServer(t, http.StatusOK, `{}`)

	c, err := NewClient(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = c.Subscribe(ctx, Request{Email: "a@b.com"})
	require.ErrorIs(t, err, context.Canceled)
}
