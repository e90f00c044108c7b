// Package taxonomy provides a client for the O*NET occupational taxonomy web
// services: classification-code search and per-code skill listings for the
// technology, knowledge, and soft-skill categories.
package taxonomy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jonathan/skill-search/internal/types"
)

// DefaultBaseURL is the production O*NET OnLine services endpoint.
const DefaultBaseURL = "https://services.onetcenter.org/ws/online"

// DefaultTimeout is the per-request timeout against the taxonomy service.
const DefaultTimeout = 5 * time.Second

// userAgent identifies this service to the taxonomy provider.
const userAgent = "skill-search/1.0"

// ServiceError represents a failed call against the taxonomy service.
type ServiceError struct {
	Endpoint string
	Message  string
	Cause    error
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("taxonomy error for %s: %s: %v", e.Endpoint, e.Message, e.Cause)
	}
	return fmt.Sprintf("taxonomy error for %s: %s", e.Endpoint, e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// Options configures the taxonomy client.
type Options struct {
	BaseURL string
	Timeout time.Duration
}

// DefaultOptions returns sensible defaults for the production service.
func DefaultOptions() *Options {
	return &Options{
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// Client issues authenticated read-only requests against the taxonomy
// service. All fetches are side-effect free and safe to run concurrently.
type Client struct {
	baseURL    string
	user       string
	password   string
	httpClient *http.Client
}

// NewClient creates a taxonomy client with HTTP basic-auth credentials.
func NewClient(user, password string, opts *Options) *Client {
	if opts == nil {
		opts = DefaultOptions()
	}
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		user:       user,
		password:   password,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// searchResponse is the shape of /search results.
type searchResponse struct {
	Occupation []struct {
		Code string `json:"code"`
	} `json:"occupation"`
}

// Search resolves a sanitized title query to an ordered sequence of
// classification codes. An empty result is not an error.
func (c *Client) Search(ctx context.Context, query string) ([]string, error) {
	if query == "" {
		return nil, nil
	}

	endpoint := fmt.Sprintf("%s/search?keyword=%s&start=1&end=5", c.baseURL, url.QueryEscape(query))
	var payload searchResponse
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	var codes []string
	for _, occupation := range payload.Occupation {
		if occupation.Code != "" {
			codes = append(codes, occupation.Code)
		}
	}
	return codes, nil
}

// TechnologySkills fetches the technology-category skills for a code.
// Category names carry relevance 1.0; hot-technology examples carry a tiered
// relevance derived from the example-list length.
func (c *Client) TechnologySkills(ctx context.Context, code string) ([]types.SkillItem, error) {
	endpoint := fmt.Sprintf("%s/occupations/%s/summary/technology?display=long", c.baseURL, url.PathEscape(code))
	var payload elementPayload
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return parseTechnologyPayload(&payload), nil
}

// KnowledgeSkills fetches the knowledge-category skills for a code. It
// prefers the details endpoint (which includes importance scores) and falls
// back to the summary endpoint when details yield nothing.
func (c *Client) KnowledgeSkills(ctx context.Context, code string) ([]types.SkillItem, error) {
	detailEndpoint := fmt.Sprintf("%s/occupations/%s/details/knowledge?display=long", c.baseURL, url.PathEscape(code))
	var payload elementPayload
	err := c.getJSON(ctx, detailEndpoint, &payload)
	if err == nil {
		if items := parseScoredPayload(&payload); len(items) > 0 {
			return items, nil
		}
	} else if !isNotFound(err) {
		return nil, err
	}

	summaryEndpoint := fmt.Sprintf("%s/occupations/%s/summary/knowledge?display=long", c.baseURL, url.PathEscape(code))
	var summary elementPayload
	if err := c.getJSON(ctx, summaryEndpoint, &summary); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return parseScoredPayload(&summary), nil
}

// SoftSkills fetches the soft-skill descriptors for a code.
func (c *Client) SoftSkills(ctx context.Context, code string) ([]types.SkillItem, error) {
	endpoint := fmt.Sprintf("%s/occupations/%s/details/skills?display=long", c.baseURL, url.PathEscape(code))
	var payload elementPayload
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return parseScoredPayload(&payload), nil
}

// notFoundError marks a 404/422 so KnowledgeSkills can fall back.
type notFoundError struct {
	inner *ServiceError
}

func (e *notFoundError) Error() string { return e.inner.Error() }
func (e *notFoundError) Unwrap() error { return e.inner }

func isNotFound(err error) bool {
	_, ok := err.(*notFoundError)
	return ok
}

// getJSON issues an authenticated GET and decodes the JSON body into out.
// A 422 response carries a JSON validation-error body; it is treated like a
// not-found so callers see an empty result rather than a hard failure.
func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &ServiceError{Endpoint: endpoint, Message: "failed to create request", Cause: err}
	}
	req.SetBasicAuth(c.user, c.password)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &ServiceError{Endpoint: endpoint, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return &ServiceError{Endpoint: endpoint, Message: "failed to read response body", Cause: err}
		}
		if err := json.Unmarshal(body, out); err != nil {
			return &ServiceError{Endpoint: endpoint, Message: "failed to decode response", Cause: err}
		}
		return nil
	case http.StatusNotFound, http.StatusUnprocessableEntity:
		return &notFoundError{inner: &ServiceError{
			Endpoint: endpoint,
			Message:  fmt.Sprintf("HTTP status %d", resp.StatusCode),
		}}
	default:
		return &ServiceError{
			Endpoint: endpoint,
			Message:  fmt.Sprintf("HTTP status %d", resp.StatusCode),
		}
	}
}
