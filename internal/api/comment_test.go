package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) createRecipe(t *testing.T, token, title string) uint {
	t.Helper()
	w := e.request(t, http.MethodPost, "/api/v1/recipes", token, map[string]interface{}{"title": title})
	require.Equal(t, http.StatusCreated, w.Code)
	return uint(decodeBody(t, w)["recipe"].(map[string]interface{})["id"].(float64))
}

func TestAddAndListComments(t *testing.T) {
	env := setupTest(t)
	token := env.registerUser(t, "lea@example.com", "lea")
	id := env.createRecipe(t, token, "Tiramisu")
	path := fmt.Sprintf("/api/v1/recipes/%d/comments", id)

	w := env.request(t, http.MethodPost, path, "", map[string]interface{}{
		"user": "Léa", "rating": 5, "text": "Parfait !",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	first := decodeBody(t, w)
	assert.Equal(t, "Léa", first["user"])
	// The display date is filled in server-side when omitted.
	assert.NotEmpty(t, first["date"])

	w = env.request(t, http.MethodPost, path, "", map[string]interface{}{
		"user": "Paul", "rating": 4, "text": "Très bon", "date": "3 mars",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.request(t, http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	comments := body["comments"].([]interface{})
	require.Len(t, comments, 2)
	assert.Equal(t, 4.5, body["averageRating"])
}

func TestAddCommentValidation(t *testing.T) {
	env := setupTest(t)
	token := env.registerUser(t, "lea@example.com", "lea")
	id := env.createRecipe(t, token, "Clafoutis")
	path := fmt.Sprintf("/api/v1/recipes/%d/comments", id)

	cases := []map[string]interface{}{
		{"rating": 5, "text": "sans nom"},
		{"user": "Léa", "text": "sans note"},
		{"user": "Léa", "rating": 5},
		{"user": "Léa", "rating": 0, "text": "note nulle"},
		{"user": "Léa", "rating": 6, "text": "note trop haute"},
	}
	for _, payload := range cases {
		w := env.request(t, http.MethodPost, path, "", payload)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	// Nothing was written.
	w := env.request(t, http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Empty(t, body["comments"])
	assert.Equal(t, 0.0, body["averageRating"])
}

func TestAddCommentUnknownRecipe(t *testing.T) {
	env := setupTest(t)

	w := env.request(t, http.MethodPost, "/api/v1/recipes/9999/comments", "", map[string]interface{}{
		"user": "Léa", "rating": 3, "text": "perdu",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
