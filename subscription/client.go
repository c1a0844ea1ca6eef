package subscription

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/statictask/newsletter/webutil"
)

const (
	DefaultBaseURL         = "http://localhost:8080"
	DefaultProjectID int64 = 4

	subscriptionsPathFormat = "%s/projects/%d/subscriptions"
)

var (
	ErrInvalidBaseURL = errors.New("invalid base url")
	ErrDecodeResponse = errors.New("decoding response")
)

type Config struct {
	BaseURL   string
	ProjectID int64
	// HTTPClient defaults to a client without a timeout.
	HTTPClient *http.Client
}

// Client talks to the subscriptions collection of a single project.
type Client struct {
	httpClient *http.Client
	endpoint   string
}

func NewClient(config Config) (*Client, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidBaseURL, baseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("%w %q: scheme and host are required", ErrInvalidBaseURL, baseURL)
	}

	projectID := config.ProjectID
	if projectID == 0 {
		projectID = DefaultProjectID
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		httpClient: httpClient,
		endpoint:   fmt.Sprintf(subscriptionsPathFormat, strings.TrimRight(baseURL, "/"), projectID),
	}, nil
}

// Endpoint returns the URL subscriptions are posted to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Subscribe posts the request and decodes whatever JSON comes back.
// The HTTP status code is not inspected: an error status with a JSON body
// is returned as a regular response.
func (c *Client) Subscribe(ctx context.Context, request Request) (Response, error) {
	body, err := encodeRequest(request)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set(webutil.HeaderContentType, webutil.ContentTypeJSON)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	var result Response
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("%w (status %d): %w", ErrDecodeResponse, resp.StatusCode, err)
	}

	return result, nil
}

// encodeRequest serializes without HTML escaping and without the trailing
// newline json.Encoder appends, so "a<b>@c.com" goes out as typed.
func encodeRequest(request Request) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(request); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
