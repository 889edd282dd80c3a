// Package commentclient talks to the comment HTTP API and keeps a local copy
// of one thread consistent with the server.
package commentclient

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
	"time"

	pkghttp "github.com/goto/remark/pkg/http"
)

var ErrStale = errors.New("comment thread could not be refreshed after a successful post")

// APIError is a categorized failure reported by the server.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, e.Status, e.Message)
}

type Comment struct {
	ID            string    `json:"id"`
	Body          string    `json:"body"`
	CreatedBy     string    `json:"createdBy"`
	CreatedByName string    `json:"createdByName"`
	ParentType    string    `json:"parentType"`
	ParentID      string    `json:"parentId"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// New returns a client sending token as a Bearer credential.
func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = pkghttp.NewClient("commentclient", pkghttp.ClientConfig{Timeout: 10 * time.Second})
	}
	return c
}

func (c *Client) CreateComment(ctx context.Context, parentType, parentID, body string) (*Comment, error) {
	payload, err := json.Marshal(map[string]string{
		"parentType": parentType,
		"parentId":   parentID,
		"body":       body,
	})
	if err != nil {
		return nil, err
	}

	var created Comment
	if err := c.do(ctx, http.MethodPost, "/api/v1/comments", bytes.NewReader(payload), http.StatusCreated, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) ListComments(ctx context.Context, parentType, parentID string) ([]Comment, error) {
	q := url.Values{}
	q.Set("parentType", parentType)
	q.Set("parentId", parentID)

	comments := []Comment{}
	if err := c.do(ctx, http.MethodGet, "/api/v1/comments?"+q.Encode(), nil, http.StatusOK, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, wantStatus int, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		apiErr := &APIError{Status: resp.StatusCode, Code: "UNKNOWN", Message: http.StatusText(resp.StatusCode)}
		var e struct {
			Code  string `json:"code"`
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&e); err == nil && e.Code != "" {
			apiErr.Code = e.Code
			apiErr.Message = e.Error
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
