package server

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentEndpoints_AuthRequired(t *testing.T) {
	app, _ := setupTestServer(t)

	tests := []struct {
		method string
		path   string
	}{
		{"POST", "/comments/1"},
		{"PUT", "/comments/1"},
		{"DELETE", "/comments/1"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			resp, body := doJSON(t, app, tt.method, tt.path, "", fiber.Map{"comment": "hi"})
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
			assert.Equal(t, "login required", body["errorMessage"])
		})
	}
}

func TestCreateComment(t *testing.T) {
	app, _ := setupTestServer(t)
	token := signupAndLogin(t, app, "alice")

	resp, _ := doJSON(t, app, "POST", "/posts", token, fiber.Map{"title": "Post", "content": "body"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	t.Run("Valid", func(t *testing.T) {
		resp, _ := doJSON(t, app, "POST", "/comments/1", token, fiber.Map{"comment": "nice post"})
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})

	t.Run("Missing Text Is 400", func(t *testing.T) {
		resp, body := doJSON(t, app, "POST", "/comments/1", token, fiber.Map{"comment": ""})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "please enter comment text", body["errorMessage"])
	})

	t.Run("Malformed PostId Is 412", func(t *testing.T) {
		resp, _ := doJSON(t, app, "POST", "/comments/abc", token, fiber.Map{"comment": "hi"})
		assert.Equal(t, fiber.StatusPreconditionFailed, resp.StatusCode)
	})

	t.Run("Unknown PostId Still Accepted", func(t *testing.T) {
		resp, _ := doJSON(t, app, "POST", "/comments/999", token, fiber.Map{"comment": "into the void"})
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})
}

func TestGetComments(t *testing.T) {
	app, _ := setupTestServer(t)
	token := signupAndLogin(t, app, "alice")

	resp, _ := doJSON(t, app, "POST", "/posts", token, fiber.Map{"title": "Post", "content": "body"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	for _, text := range []string{"first", "second"} {
		resp, _ := doJSON(t, app, "POST", "/comments/1", token, fiber.Map{"comment": text})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	t.Run("Listing Is Public", func(t *testing.T) {
		resp, body := doJSON(t, app, "GET", "/comments/1", "", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		data := body["data"].([]any)
		require.Len(t, data, 2)
		first := data[0].(map[string]any)
		assert.Equal(t, "alice", first["nickname"])
	})

	t.Run("Unknown Post Yields Empty List", func(t *testing.T) {
		resp, body := doJSON(t, app, "GET", "/comments/999", "", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Empty(t, body["data"])
		assert.NotNil(t, body["data"])
	})

	t.Run("Malformed PostId Is 400", func(t *testing.T) {
		resp, _ := doJSON(t, app, "GET", "/comments/abc", "", nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestUpdateComment(t *testing.T) {
	app, _ := setupTestServer(t)
	aliceToken := signupAndLogin(t, app, "alice")
	bobToken := signupAndLogin(t, app, "bob")

	resp, _ := doJSON(t, app, "POST", "/posts", aliceToken, fiber.Map{"title": "Post", "content": "body"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp, _ = doJSON(t, app, "POST", "/comments/1", aliceToken, fiber.Map{"comment": "draft"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	t.Run("Stranger Rejected", func(t *testing.T) {
		resp, body := doJSON(t, app, "PUT", "/comments/1", bobToken, fiber.Map{"comment": "hijacked"})
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "only the author can edit this comment", body["errorMessage"])
	})

	t.Run("Missing Text Is 412", func(t *testing.T) {
		resp, _ := doJSON(t, app, "PUT", "/comments/1", aliceToken, fiber.Map{"comment": ""})
		assert.Equal(t, fiber.StatusPreconditionFailed, resp.StatusCode)
	})

	t.Run("Malformed Id Is 400", func(t *testing.T) {
		resp, _ := doJSON(t, app, "PUT", "/comments/abc", aliceToken, fiber.Map{"comment": "hi"})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Owner Edits", func(t *testing.T) {
		resp, _ := doJSON(t, app, "PUT", "/comments/1", aliceToken, fiber.Map{"comment": "final"})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		resp, body := doJSON(t, app, "GET", "/comments/1", "", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		data := body["data"].([]any)
		require.Len(t, data, 1)
		assert.Equal(t, "final", data[0].(map[string]any)["comment"])
	})

	t.Run("Unknown Id", func(t *testing.T) {
		resp, _ := doJSON(t, app, "PUT", "/comments/999", aliceToken, fiber.Map{"comment": "ghost"})
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestDeleteComment(t *testing.T) {
	app, _ := setupTestServer(t)
	aliceToken := signupAndLogin(t, app, "alice")
	bobToken := signupAndLogin(t, app, "bob")

	resp, _ := doJSON(t, app, "POST", "/posts", aliceToken, fiber.Map{"title": "Post", "content": "body"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp, _ = doJSON(t, app, "POST", "/comments/1", aliceToken, fiber.Map{"comment": "temp"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, app, "DELETE", "/comments/1", bobToken, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, app, "DELETE", "/comments/1", aliceToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, "DELETE", "/comments/1", aliceToken, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
