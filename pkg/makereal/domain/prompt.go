package domain

import "strings"

const (
	promptWithoutNotes = "Generate html based on the wireframes."
	promptWithNotes    = "Generate html based on the wireframes and the following notes: "
)

// Only these kinds of shapes carry text the user typed.
var annotatedShapeKinds = map[ShapeKind]struct{}{
	ShapeKindText:  {},
	ShapeKindGeo:   {},
	ShapeKindArrow: {},
	ShapeKindNote:  {},
}

// BuildPrompt builds the instruction for the model out of the notes found in the selection.
func BuildPrompt(canvas Canvas) string {
	referenceText := GetSelectionAsText(canvas)
	if referenceText == "" {
		return promptWithoutNotes
	}
	return promptWithNotes + referenceText
}

// GetSelectionAsText collects the text of the selected shapes and their descendants, one line per shape.
func GetSelectionAsText(canvas Canvas) string {
	ids := canvas.GetShapeAndDescendantIDs(canvas.GetSelectedShapeIDs())
	texts := make([]string, 0, len(ids))
	for _, id := range ids {
		shape := canvas.GetShape(id)
		if shape == nil {
			continue
		}
		if _, ok := annotatedShapeKinds[shape.Kind]; !ok {
			continue
		}
		if shape.Text == "" {
			continue
		}
		texts = append(texts, shape.Text)
	}
	return strings.Join(texts, "\n")
}
