package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantSkip  int
		wantLimit int
		wantErr   bool
	}{
		{"defaults", "", 0, 100, false},
		{"explicit", "skip=20&limit=50", 20, 50, false},
		{"limit at cap", "limit=500", 0, 500, false},
		{"limit over cap clamps", "limit=501", 0, 500, false},
		{"huge limit clamps", "limit=100000", 0, 500, false},
		{"zero limit", "limit=0", 0, 0, true},
		{"negative skip", "skip=-1", 0, 0, true},
		{"non-numeric skip", "skip=abc", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/users?"+tt.query, nil)
			skip, limit, err := parsePagination(r)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSkip, skip)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func requestWithURLParam(param, value string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(param, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestGetIDFromURL(t *testing.T) {
	id, err := getIDFromURL(requestWithURLParam("userID", "7"), "userID")
	require.NoError(t, err)
	assert.Equal(t, 7, id)

	_, err = getIDFromURL(requestWithURLParam("userID", "0"), "userID")
	assert.Error(t, err)

	_, err = getIDFromURL(requestWithURLParam("userID", "-3"), "userID")
	assert.Error(t, err)

	_, err = getIDFromURL(requestWithURLParam("userID", "abc"), "userID")
	assert.Error(t, err)
}

func TestReadJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("valid body", func(t *testing.T) {
		var dst payload
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Valorant"}`))
		require.NoError(t, readJSON(httptest.NewRecorder(), r, &dst))
		assert.Equal(t, "Valorant", dst.Name)
	})

	t.Run("unknown field", func(t *testing.T) {
		var dst payload
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x","bogus":1}`))
		err := readJSON(httptest.NewRecorder(), r, &dst)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown key")
	})

	t.Run("empty body", func(t *testing.T) {
		var dst payload
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		err := readJSON(httptest.NewRecorder(), r, &dst)
		require.Error(t, err)
		assert.Equal(t, "body must not be empty", err.Error())
	})

	t.Run("multiple JSON values", func(t *testing.T) {
		var dst payload
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a"}{"name":"b"}`))
		err := readJSON(httptest.NewRecorder(), r, &dst)
		require.Error(t, err)
		assert.Equal(t, "body must only contain a single JSON value", err.Error())
	})

	t.Run("malformed JSON", func(t *testing.T) {
		var dst payload
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
		err := readJSON(httptest.NewRecorder(), r, &dst)
		assert.Error(t, err)
	})
}
