package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL+"/", time.Second)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestLogin_SendsCredentialsAndDecodes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"email": "a@x.com", "password": "pw"}, body)

		writeJSON(w, http.StatusOK, map[string]string{"userId": "u1", "name": "a", "token": "t1", "language": "en"})
	})

	res, err := c.Login(context.Background(), "a@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "u1", res.UserID)
	assert.Equal(t, "a", res.Name)
	assert.Equal(t, "t1", res.Token)
	assert.Equal(t, "en", res.Language)
}

func TestRegister_SendsNameWhenGiven(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/register", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Ann", body["name"])
		writeJSON(w, http.StatusCreated, map[string]string{"userId": "u2", "name": "Ann", "token": "t2", "language": "en"})
	})

	res, err := c.Register(context.Background(), "a@x.com", "pw", "Ann")
	require.NoError(t, err)
	assert.Equal(t, "u2", res.UserID)
}

func TestAPIErrors_MapToSentinels(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusInternalServerError, ErrServer},
		{http.StatusBadGateway, ErrServer},
	}
	for _, tc := range cases {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, tc.status, map[string]string{"error": "nope"})
		})

		_, err := c.Login(context.Background(), "a@x.com", "pw")
		require.ErrorIs(t, err, tc.want, "status %d", tc.status)

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, tc.status, apiErr.StatusCode)
		assert.Equal(t, "nope", apiErr.Error())
	}
}

func TestAPIError_NonJSONBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	err := c.Ping(context.Background())
	require.ErrorIs(t, err, ErrServer)
	assert.Equal(t, "Internal Server Error", err.Error())
}

func TestValidateSession_SendsBearer(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/validate-session", r.URL.Path)
		assert.Equal(t, "Bearer t1", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, map[string]any{"valid": true, "userId": "u1"})
	})

	id, err := c.ValidateSession(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, "u1", id)
}

func TestValidateSession_NotValidBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"valid": false})
	})

	_, err := c.ValidateSession(context.Background(), "t1")
	require.ErrorIs(t, err, ErrForbidden)
}

func TestProfile(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "Bearer t1", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, map[string]any{
			"id": "u1", "email": "a@x.com", "name": "a", "createdAt": created, "language": "de",
		})
	})

	p, err := c.Profile(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", p.Email)
	assert.True(t, created.Equal(p.CreatedAt))
	assert.Equal(t, "de", p.Language)
}

func TestFoodItems_QueryString(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/food-items", r.URL.Path)
		assert.Equal(t, "dairy", r.URL.Query().Get("category"))
		assert.Equal(t, "critic", r.URL.Query().Get("reactionType"))
		writeJSON(w, http.StatusOK, []map[string]string{{"id": "1", "name": "Milk", "emoji": "🥛"}})
	})

	items, err := c.FoodItems(context.Background(), "dairy", "critic")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Milk", items[0].Name)
}

func TestUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewHTTPClient(url, time.Second)
	err := c.Ping(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestPing_OK(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("Sensitivv API Server is running"))
	})
	require.NoError(t, c.Ping(context.Background()))
}
