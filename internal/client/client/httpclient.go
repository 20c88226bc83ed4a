package client

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

	"github.com/dmitrijs2005/sensitivv/internal/client/models"
	"github.com/dmitrijs2005/sensitivv/internal/common"
)

// HTTPClient talks to the Sensitivv JSON API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

func (c *HTTPClient) Register(ctx context.Context, email, password, name string) (*models.AuthResult, error) {
	var out models.AuthResult
	err := c.do(ctx, http.MethodPost, "/api/register", "", credentials{Email: email, Password: password, Name: name}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.AuthResult, error) {
	var out models.AuthResult
	err := c.do(ctx, http.MethodPost, "/api/login", "", credentials{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ValidateSession(ctx context.Context, token string) (string, error) {
	var out struct {
		Valid  bool   `json:"valid"`
		UserID string `json:"userId"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/validate-session", token, nil, &out); err != nil {
		return "", err
	}
	if !out.Valid {
		return "", &APIError{StatusCode: http.StatusForbidden, Message: "session not valid"}
	}
	return out.UserID, nil
}

func (c *HTTPClient) Profile(ctx context.Context, token string) (*models.Profile, error) {
	var out models.Profile
	if err := c.do(ctx, http.MethodGet, "/api/user-profile", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) FoodItems(ctx context.Context, category, reactionType string) ([]models.FoodItem, error) {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	if reactionType != "" {
		q.Set("reactionType", reactionType)
	}
	path := "/api/food-items"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out []models.FoodItem
	if err := c.do(ctx, http.MethodGet, path, "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Ping checks that the server answers its root endpoint.
func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/", "", nil, nil)
}

func (c *HTTPClient) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerHeader(token))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&payload); err == nil {
		apiErr.Message = payload.Error
	}
	return apiErr
}
