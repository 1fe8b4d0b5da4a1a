// Package interestsapi is the HTTP client for the remote interests API.
package interestsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/vinylcourses/coursehub/internal/platform/timeouts"
	apperrors "github.com/vinylcourses/coursehub/internal/services/web/platform/errors"
)

// maxResponseBytes bounds how much of an API reply is read.
const maxResponseBytes = 1 << 20

// Interest is one catalog entry as the API returns it.
type Interest struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// SaveResult is the API's reply to a selection replace.
type SaveResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type saveRequest struct {
	InterestIDs []int64 `json:"interestIds"`
}

// Doer sends HTTP requests.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client calls the interests API rooted at a base URL.
type Client struct {
	base string
	http Doer
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default instrumented HTTP client.
func WithHTTPClient(doer Doer) Option {
	return func(c *Client) {
		if doer != nil {
			c.http = doer
		}
	}
}

// NewClient builds a client for baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	raw := strings.TrimSpace(baseURL)
	if raw == "" {
		return nil, fmt.Errorf("interests api base url is required")
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse interests api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("interests api base url must be http or https: %q", raw)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("interests api base url must include a host: %q", raw)
	}
	c := &Client{
		base: strings.TrimRight(parsed.String(), "/"),
		http: &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// ListInterests returns the full catalog in API order.
func (c *Client) ListInterests(ctx context.Context) ([]Interest, error) {
	var interests []Interest
	if err := c.getArray(ctx, "/api/interests", &interests); err != nil {
		return nil, err
	}
	return interests, nil
}

// ListUserInterestIDs returns the ids of the user's saved interests.
func (c *Client) ListUserInterestIDs(ctx context.Context, userID int64) ([]int64, error) {
	var interests []Interest
	if err := c.getArray(ctx, userInterestsPath(userID), &interests); err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(interests))
	for _, interest := range interests {
		ids = append(ids, interest.ID)
	}
	return ids, nil
}

// SaveUserInterests replaces the user's selection with ids. The reply body is
// decoded whatever the status, since the API reports business failures there.
func (c *Client) SaveUserInterests(ctx context.Context, userID int64, ids []int64) (SaveResult, error) {
	if ids == nil {
		ids = []int64{}
	}
	body, err := json.Marshal(saveRequest{InterestIDs: ids})
	if err != nil {
		return SaveResult{}, fmt.Errorf("encode save request: %w", err)
	}
	resp, err := c.do(ctx, http.MethodPost, userInterestsPath(userID), bytes.NewReader(body))
	if err != nil {
		return SaveResult{}, err
	}
	defer resp.Body.Close()

	var result SaveResult
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&result); err != nil {
		return SaveResult{}, apperrors.Wrap(apperrors.KindUnavailable, "decode save interests response", err)
	}
	return result, nil
}

func (c *Client) getArray(ctx context.Context, path string, target any) error {
	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return apperrors.E(apperrors.KindFromAPIStatus(resp.StatusCode), fmt.Sprintf("GET %s: unexpected status %d", path, resp.StatusCode))
	}
	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return apperrors.Wrap(apperrors.KindUnavailable, fmt.Sprintf("GET %s: read body", path), err)
	}
	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 || payload[0] != '[' {
		return apperrors.E(apperrors.KindUnknown, fmt.Sprintf("GET %s: response is not an array", path))
	}
	if err := json.Unmarshal(payload, target); err != nil {
		return apperrors.Wrap(apperrors.KindUnknown, fmt.Sprintf("GET %s: decode body", path), err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	if c == nil || c.http == nil || c.base == "" {
		return nil, apperrors.E(apperrors.KindUnavailable, "interests api client is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, timeouts.APIRequest)
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		cancel()
		return nil, apperrors.Wrap(apperrors.KindUnavailable, fmt.Sprintf("%s %s", method, path), err)
	}
	resp.Body = cancelOnClose{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

func userInterestsPath(userID int64) string {
	return "/api/users/" + strconv.FormatInt(userID, 10) + "/interests"
}

type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c cancelOnClose) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}
