package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMyProfile(t *testing.T) {
	app, _ := newTestApp(t)
	token := signup(t, app, "alice", "s3cret")

	t.Run("returns own record", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet, "/api/users/me", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "alice", body["username"])
	})

	t.Run("requires authentication", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, "/api/users/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestUpdateMyProfile(t *testing.T) {
	app, _ := newTestApp(t)
	token := signup(t, app, "alice", "s3cret")

	t.Run("replaces bio", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPut, "/api/users/me", token, map[string]string{
			"bio": "gardener and writer",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "gardener and writer", body["bio"])

		// A later empty update clears it; PUT replaces, never merges.
		resp, body = doJSON(t, app, http.MethodPut, "/api/users/me", token, map[string]string{
			"bio": "",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "", body["bio"])
	})
}

func TestGetAllUsers(t *testing.T) {
	app, _ := newTestApp(t)
	token := signup(t, app, "alice", "s3cret")
	signup(t, app, "bob", "s3cret")

	resp, users := doJSONList(t, app, http.MethodGet, "/api/users", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, users, 2)
}
