package inmemory

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"kgeyst.com/makereal/pkg/makereal/domain"
)

// A canvas document as stored on disk:
//
//	shapes:
//	  - id: login
//	    kind: frame
//	    x: 0
//	    y: 0
//	    w: 400
//	    h: 300
//	  - kind: text
//	    parent: login
//	    text: Sign in
//	selected: [login]
//
// Parents must be listed before their children. Shapes without an ID get a generated one.
type document struct {
	Shapes   []documentShape `yaml:"shapes"`
	Selected []string        `yaml:"selected,omitempty"`
}

type documentShape struct {
	ID     string  `yaml:"id,omitempty"`
	Kind   string  `yaml:"kind"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	W      float64 `yaml:"w"`
	H      float64 `yaml:"h"`
	Parent string  `yaml:"parent,omitempty"`
	Text   string  `yaml:"text,omitempty"`
	HTML   string  `yaml:"html,omitempty"`
}

// LoadDocument reads a canvas document from a YAML file.
func LoadDocument(path string) (*Canvas, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read canvas document %q", path)
	}
	return ParseDocument(data)
}

// ParseDocument creates a canvas out of a YAML document.
func ParseDocument(data []byte) (*Canvas, error) {
	var doc document
	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse canvas document")
	}
	canvas := NewCanvas()
	for index, docShape := range doc.Shapes {
		id := domain.ShapeID(docShape.ID)
		if id == "" {
			id = canvas.CreateShapeID()
		}
		if docShape.Kind == "" {
			return nil, errors.Errorf("shape #%d has no kind", index)
		}
		err = canvas.CreateShape(domain.Shape{
			ID:       id,
			Kind:     domain.ShapeKind(docShape.Kind),
			X:        docShape.X,
			Y:        docShape.Y,
			W:        docShape.W,
			H:        docShape.H,
			ParentID: domain.ShapeID(docShape.Parent),
			Text:     docShape.Text,
			HTML:     docShape.HTML,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "shape #%d", index)
		}
	}
	selected := make([]domain.ShapeID, 0, len(doc.Selected))
	for _, id := range doc.Selected {
		selected = append(selected, domain.ShapeID(id))
	}
	err = canvas.Select(selected...)
	if err != nil {
		return nil, errors.Wrap(err, "invalid selection")
	}
	return canvas, nil
}

// MarshalDocument saves the canvas, including the selection, in the format read by ParseDocument.
func (c *Canvas) MarshalDocument() ([]byte, error) {
	var doc document
	for _, shape := range c.Shapes() {
		doc.Shapes = append(doc.Shapes, documentShape{
			ID:     string(shape.ID),
			Kind:   string(shape.Kind),
			X:      shape.X,
			Y:      shape.Y,
			W:      shape.W,
			H:      shape.H,
			Parent: string(shape.ParentID),
			Text:   shape.Text,
			HTML:   shape.HTML,
		})
	}
	for _, id := range c.GetSelectedShapeIDs() {
		doc.Selected = append(doc.Selected, string(id))
	}
	return yaml.Marshal(&doc)
}
