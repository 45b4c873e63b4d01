package domain

// ShapeID identifies a shape on the canvas, for example "shape:4f1c...".
type ShapeID string

// ShapeKind is the type of the shape as the canvas engine knows it.
type ShapeKind string

const (
	ShapeKindText  = ShapeKind("text")
	ShapeKindGeo   = ShapeKind("geo")
	ShapeKindArrow = ShapeKind("arrow")
	ShapeKindNote  = ShapeKind("note")
	ShapeKindFrame = ShapeKind("frame")
	ShapeKindGroup = ShapeKind("group")
	ShapeKindDraw  = ShapeKind("draw")
	ShapeKindImage = ShapeKind("image")
	// ShapeKindResponse a shape which holds a generated HTML page
	ShapeKindResponse = ShapeKind("response")
)

var allShapeKinds = []ShapeKind{
	ShapeKindText,
	ShapeKindGeo,
	ShapeKindArrow,
	ShapeKindNote,
	ShapeKindFrame,
	ShapeKindGroup,
	ShapeKindDraw,
	ShapeKindImage,
	ShapeKindResponse,
}

// ShapeKindNames lists the names of all known shape kinds.
func ShapeKindNames() []string {
	names := make([]string, 0, len(allShapeKinds))
	for _, kind := range allShapeKinds {
		names = append(names, string(kind))
	}
	return names
}

// Box is an axis-aligned rectangle in page coordinates.
type Box struct {
	X float64
	Y float64
	W float64
	H float64
}

func (b Box) MaxX() float64 {
	return b.X + b.W
}

func (b Box) MaxY() float64 {
	return b.Y + b.H
}

// Union returns the smallest box which contains both boxes.
func (b Box) Union(other Box) Box {
	minX := min(b.X, other.X)
	minY := min(b.Y, other.Y)
	maxX := max(b.MaxX(), other.MaxX())
	maxY := max(b.MaxY(), other.MaxY())
	return Box{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Shape is a snapshot of a canvas shape. Coordinates are page coordinates, even for children.
type Shape struct {
	ID       ShapeID
	Kind     ShapeKind
	X        float64
	Y        float64
	W        float64
	H        float64
	ParentID ShapeID // empty for top-level shapes
	Text     string  // only text, geo, arrow and note shapes carry text
	HTML     string  // only response shapes carry HTML
}

func (s *Shape) Bounds() Box {
	return Box{X: s.X, Y: s.Y, W: s.W, H: s.H}
}

// ShapeUpdate is a partial update of a shape: nil fields are left as they are.
type ShapeUpdate struct {
	ID   ShapeID
	Text *string
	HTML *string
}
