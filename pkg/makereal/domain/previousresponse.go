package domain

// GetContentOfPreviousResponse returns the HTML of the response shape found among the selected shapes, so that
// the model could iterate on a previous design. Returns false if no response shape is selected.
// MakeReal doesn't use it yet.
func GetContentOfPreviousResponse(canvas Canvas) (string, bool, error) {
	var previousResponses []*Shape
	for _, shape := range canvas.GetSelectedShapes() {
		if shape.Kind == ShapeKindResponse {
			previousResponses = append(previousResponses, shape)
		}
	}
	if len(previousResponses) == 0 {
		return "", false, nil
	}
	if len(previousResponses) > 1 {
		return "", false, ErrMultiplePreviousResponses
	}
	return previousResponses[0].HTML, true, nil
}
