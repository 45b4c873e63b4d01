package inmemory

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kgeyst.com/makereal/pkg/makereal/domain"
)

const loginDocument = `
shapes:
  - id: form
    kind: frame
    x: 0
    y: 0
    w: 100
    h: 50
  - kind: text
    parent: form
    x: 10
    y: 10
    text: Sign in
  - id: hint
    kind: note
    x: 200
    y: 0
    w: 80
    h: 80
    text: "button should be blue"
selected: [form]
`

func TestParseDocument(t *testing.T) {
	canvas, err := ParseDocument([]byte(loginDocument))
	require.NoError(t, err)

	shapes := canvas.Shapes()
	require.Len(t, shapes, 3)
	assert.Equal(t, domain.ShapeID("form"), shapes[0].ID)
	assert.True(t, strings.HasPrefix(string(shapes[1].ID), "shape:"))
	assert.Equal(t, domain.ShapeID("form"), shapes[1].ParentID)
	assert.Equal(t, "Sign in", shapes[1].Text)
	assert.Equal(t, []domain.ShapeID{"form"}, canvas.GetSelectedShapeIDs())
	assert.Equal(t, &domain.Box{X: 0, Y: 0, W: 100, H: 50}, canvas.GetSelectionPageBounds())
}

func TestParseDocumentErrors(t *testing.T) {
	tests := []struct {
		name     string
		document string
	}{
		{name: "invalid YAML", document: "shapes: [a"},
		{name: "no kind", document: "shapes:\n  - id: a\n"},
		{name: "child before parent", document: "shapes:\n  - id: a\n    kind: text\n    parent: b\n  - id: b\n    kind: frame\n"},
		{name: "duplicate ID", document: "shapes:\n  - id: a\n    kind: text\n  - id: a\n    kind: geo\n"},
		{name: "unknown selection", document: "shapes:\n  - id: a\n    kind: text\nselected: [b]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDocument([]byte(tt.document))
			assert.Error(t, err)
		})
	}
}

func TestMarshalDocumentRoundTrip(t *testing.T) {
	canvas, err := ParseDocument([]byte(loginDocument))
	require.NoError(t, err)
	html := "<!DOCTYPE html><html><body>Hi</body></html>"
	require.NoError(t, canvas.CreateShape(domain.Shape{ID: "response", Kind: domain.ShapeKindResponse, X: 160}))
	require.NoError(t, canvas.UpdateShape(domain.ShapeUpdate{ID: "response", HTML: &html}))

	data, err := canvas.MarshalDocument()
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "canvas.yaml")
	require.NoError(t, os.WriteFile(path, data, 0644))

	loaded, err := LoadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, canvas.Shapes(), loaded.Shapes())
	assert.Equal(t, canvas.GetSelectedShapeIDs(), loaded.GetSelectedShapeIDs())
	assert.Equal(t, html, loaded.GetShape("response").HTML)
}

func TestLoadDocumentMissingFile(t *testing.T) {
	_, err := LoadDocument(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
