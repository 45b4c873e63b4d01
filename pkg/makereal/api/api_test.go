package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kgeyst.com/makereal/pkg/common"
	"kgeyst.com/makereal/pkg/makereal/domain"
	"kgeyst.com/makereal/pkg/makereal/infrastructure/inmemory"
	"kgeyst.com/makereal/pkg/makereal/infrastructure/ollama"
)

const wireframe = `
shapes:
  - id: box
    kind: geo
    x: 0
    y: 0
    w: 100
    h: 50
    text: Sign in
selected: [box]
`

func newOllamaServer(t *testing.T, response string, requests *[]domain.CompletionRequest) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != ollama.EndpointGenerate {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		var request domain.CompletionRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		*requests = append(*requests, request)
		_ = json.NewEncoder(w).Encode(domain.CompletionResponse{Model: request.Model, Response: response, Done: true})
	}))
}

func TestMakeRealAgainstOllama(t *testing.T) {
	var requests []domain.CompletionRequest
	server := newOllamaServer(t, "Sure!\n<!DOCTYPE html><html><head><title>Login</title></head><body><p>Hi</p></body></html>\nEnjoy.", &requests)
	defer server.Close()
	canvas, err := inmemory.ParseDocument([]byte(wireframe))
	require.NoError(t, err)
	makeReal, err := NewAPIWithLogger(common.NewConfig(map[string]any{ConfigKeyOllamaEndpoint: server.URL}), canvas, common.NewNopLogger())
	require.NoError(t, err)

	id, err := makeReal.MakeReal(context.Background())
	require.NoError(t, err)

	shape := canvas.GetShape(id)
	require.NotNil(t, shape)
	assert.Equal(t, "<!DOCTYPE html><html><head><title>Login</title></head><body><p>Hi</p></body></html>", shape.HTML)
	assert.Equal(t, 160.0, shape.X)
	assert.Equal(t, 0.0, shape.Y)

	require.Len(t, requests, 1)
	assert.Equal(t, "llava", requests[0].Model)
	assert.False(t, requests[0].Stream)
	assert.Equal(t, "Generate html based on the wireframes and the following notes: Sign in", requests[0].Prompt)
	require.Len(t, requests[0].Images, 1)
	assert.False(t, strings.HasPrefix(requests[0].Images[0], "data:"))

	preview, err := makeReal.Preview(id)
	require.NoError(t, err)
	assert.Equal(t, "Login", preview.Title)
	assert.Equal(t, "Hi", preview.Text)

	require.NoError(t, canvas.Select(id))
	html, found, err := makeReal.PreviousResponse()
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, shape.HTML, html)
}

func TestMakeRealOllamaDown(t *testing.T) {
	canvas, err := inmemory.ParseDocument([]byte(wireframe))
	require.NoError(t, err)
	makeReal, err := NewAPIWithLogger(common.NewConfig(map[string]any{ConfigKeyOllamaEndpoint: "http://127.0.0.1:59996"}), canvas, common.NewNopLogger())
	require.NoError(t, err)

	_, err = makeReal.MakeReal(context.Background())

	assert.ErrorIs(t, err, ollama.ErrFetchFailed)
	assert.Len(t, canvas.Shapes(), 1)
}

func TestPreviewErrors(t *testing.T) {
	canvas, err := inmemory.ParseDocument([]byte(wireframe))
	require.NoError(t, err)
	makeReal, err := NewAPIWithLogger(common.NewConfig(nil), canvas, common.NewNopLogger())
	require.NoError(t, err)

	_, err = makeReal.Preview("missing")
	assert.Error(t, err)
	_, err = makeReal.Preview("box")
	assert.ErrorIs(t, err, ErrNotAResponse)
}

func TestNewAPIInvalidSystemPromptPath(t *testing.T) {
	_, err := NewAPIWithLogger(common.NewConfig(map[string]any{domain.ConfigKeySystemPromptPath: "/nonexistent/system.txt"}), inmemory.NewCanvas(), common.NewNopLogger())
	assert.Error(t, err)
}
