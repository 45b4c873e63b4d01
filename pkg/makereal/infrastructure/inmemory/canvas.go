package inmemory

import (
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"kgeyst.com/makereal/pkg/makereal/domain"
)

var (
	ErrShapeNotFound      = errors.New("shape not found")
	ErrShapeAlreadyExists = errors.New("shape already exists")
	ErrParentNotFound     = errors.New("parent shape not found")
)

// Response shapes are created without a size; this is what they get.
const (
	defaultResponseWidth  = 640.0
	defaultResponseHeight = 360.0
)

// Canvas keeps shapes in memory, in creation order. Safe for concurrent use.
type Canvas struct {
	mutex    sync.RWMutex
	shapes   map[domain.ShapeID]*domain.Shape
	order    []domain.ShapeID
	selected []domain.ShapeID
}

func NewCanvas() *Canvas {
	return &Canvas{
		shapes: make(map[domain.ShapeID]*domain.Shape),
	}
}

func (c *Canvas) CreateShapeID() domain.ShapeID {
	return domain.ShapeID("shape:" + uuid.NewString())
}

func (c *Canvas) CreateShape(shape domain.Shape) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if shape.ID == "" {
		return errors.New("shape ID is empty")
	}
	if _, ok := c.shapes[shape.ID]; ok {
		return errors.Wrapf(ErrShapeAlreadyExists, "shape %s", shape.ID)
	}
	if shape.ParentID != "" {
		if _, ok := c.shapes[shape.ParentID]; !ok {
			return errors.Wrapf(ErrParentNotFound, "shape %s", shape.ParentID)
		}
	}
	if shape.Kind == domain.ShapeKindResponse && shape.W == 0 && shape.H == 0 {
		shape.W = defaultResponseWidth
		shape.H = defaultResponseHeight
	}
	c.shapes[shape.ID] = &shape
	c.order = append(c.order, shape.ID)
	return nil
}

func (c *Canvas) UpdateShape(update domain.ShapeUpdate) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	shape, ok := c.shapes[update.ID]
	if !ok {
		return errors.Wrapf(ErrShapeNotFound, "shape %s", update.ID)
	}
	if update.Text != nil {
		shape.Text = *update.Text
	}
	if update.HTML != nil {
		shape.HTML = *update.HTML
	}
	return nil
}

// DeleteShape deletes the shape together with its descendants.
func (c *Canvas) DeleteShape(id domain.ShapeID) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if _, ok := c.shapes[id]; !ok {
		return errors.Wrapf(ErrShapeNotFound, "shape %s", id)
	}
	deleted := make(map[domain.ShapeID]struct{})
	for _, deletedID := range c.shapeAndDescendantIDs([]domain.ShapeID{id}) {
		deleted[deletedID] = struct{}{}
		delete(c.shapes, deletedID)
	}
	c.order = removeIDs(c.order, deleted)
	c.selected = removeIDs(c.selected, deleted)
	return nil
}

func (c *Canvas) GetShape(id domain.ShapeID) *domain.Shape {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	shape, ok := c.shapes[id]
	if !ok {
		return nil
	}
	result := *shape
	return &result
}

// Shapes returns all the shapes in creation order.
func (c *Canvas) Shapes() []*domain.Shape {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	result := make([]*domain.Shape, 0, len(c.order))
	for _, id := range c.order {
		shape := *c.shapes[id]
		result = append(result, &shape)
	}
	return result
}

// Select replaces the selection. Unknown IDs are rejected and the selection is left as it was.
func (c *Canvas) Select(ids ...domain.ShapeID) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	selected := make([]domain.ShapeID, 0, len(ids))
	seen := make(map[domain.ShapeID]struct{})
	for _, id := range ids {
		if _, ok := c.shapes[id]; !ok {
			return errors.Wrapf(ErrShapeNotFound, "shape %s", id)
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		selected = append(selected, id)
	}
	c.selected = selected
	return nil
}

// SelectAll selects all top-level shapes.
func (c *Canvas) SelectAll() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.selected = c.selected[:0]
	for _, id := range c.order {
		if c.shapes[id].ParentID == "" {
			c.selected = append(c.selected, id)
		}
	}
}

func (c *Canvas) SelectNone() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.selected = nil
}

func (c *Canvas) GetSelectedShapeIDs() []domain.ShapeID {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return append([]domain.ShapeID(nil), c.selected...)
}

func (c *Canvas) GetSelectedShapes() []*domain.Shape {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	result := make([]*domain.Shape, 0, len(c.selected))
	for _, id := range c.selected {
		shape := *c.shapes[id]
		result = append(result, &shape)
	}
	return result
}

func (c *Canvas) GetShapeAndDescendantIDs(ids []domain.ShapeID) []domain.ShapeID {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.shapeAndDescendantIDs(ids)
}

func (c *Canvas) GetSelectionPageBounds() *domain.Box {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	if len(c.selected) == 0 {
		return nil
	}
	bounds := c.shapes[c.selected[0]].Bounds()
	for _, id := range c.selected[1:] {
		bounds = bounds.Union(c.shapes[id].Bounds())
	}
	return &bounds
}

// Depth-first, parents before children; every ID is returned once. Unknown IDs are skipped.
func (c *Canvas) shapeAndDescendantIDs(ids []domain.ShapeID) []domain.ShapeID {
	var result []domain.ShapeID
	visited := make(map[domain.ShapeID]struct{})
	var visit func(id domain.ShapeID)
	visit = func(id domain.ShapeID) {
		if _, ok := visited[id]; ok {
			return
		}
		if _, ok := c.shapes[id]; !ok {
			return
		}
		visited[id] = struct{}{}
		result = append(result, id)
		for _, childID := range c.order {
			if c.shapes[childID].ParentID == id {
				visit(childID)
			}
		}
	}
	for _, id := range ids {
		visit(id)
	}
	return result
}

func removeIDs(ids []domain.ShapeID, removed map[domain.ShapeID]struct{}) []domain.ShapeID {
	result := ids[:0]
	for _, id := range ids {
		if _, ok := removed[id]; !ok {
			result = append(result, id)
		}
	}
	return result
}
