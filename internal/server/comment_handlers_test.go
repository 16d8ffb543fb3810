package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComment(t *testing.T) {
	app, _ := newTestApp(t)
	alice := signup(t, app, "alice", "s3cret")
	bob := signup(t, app, "bob", "s3cret")
	createPost(t, app, alice, "A post", "content")

	t.Run("success includes commenter", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, "/api/posts/1/comments", bob, map[string]string{
			"content": "first!",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "first!", body["content"])

		user, ok := body["user"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "bob", user["username"])
	})

	t.Run("empty content rejected", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, "/api/posts/1/comments", bob, map[string]string{
			"content": "   ",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "VALIDATION_ERROR", body["code"])
	})

	t.Run("missing post", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, "/api/posts/999/comments", bob, map[string]string{
			"content": "hello?",
		})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", body["code"])
	})

	t.Run("requires authentication", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/posts/1/comments", "", map[string]string{
			"content": "anon",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestGetComments(t *testing.T) {
	app, _ := newTestApp(t)
	alice := signup(t, app, "alice", "s3cret")
	createPost(t, app, alice, "A post", "content")

	for _, content := range []string{"one", "two", "three"} {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/posts/1/comments", alice, map[string]string{
			"content": content,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	t.Run("newest first", func(t *testing.T) {
		resp, comments := doJSONList(t, app, http.MethodGet, "/api/posts/1/comments", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, comments, 3)
		assert.Equal(t, "three", comments[0]["content"])
		assert.Equal(t, "one", comments[2]["content"])
	})

	t.Run("missing post", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, "/api/posts/999/comments", "", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
