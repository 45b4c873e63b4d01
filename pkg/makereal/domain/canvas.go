package domain

// Canvas is the subset of the whiteboard engine we depend on. Shapes are returned as snapshots; mutations go
// through CreateShape/UpdateShape/DeleteShape.
type Canvas interface {
	// GetSelectedShapes returns the shapes the user selected, in selection order (descendants are not included).
	GetSelectedShapes() []*Shape
	// GetSelectedShapeIDs is the same as GetSelectedShapes but only IDs.
	GetSelectedShapeIDs() []ShapeID
	// GetShapeAndDescendantIDs returns the given IDs together with the IDs of all their descendants, parents first.
	GetShapeAndDescendantIDs(ids []ShapeID) []ShapeID
	// GetShape returns nil if the shape doesn't exist.
	GetShape(id ShapeID) *Shape
	// GetSelectionPageBounds returns nil if nothing is selected.
	GetSelectionPageBounds() *Box
	CreateShape(shape Shape) error
	UpdateShape(update ShapeUpdate) error
	DeleteShape(id ShapeID) error
	// CreateShapeID generates a new unique shape ID.
	CreateShapeID() ShapeID
}
