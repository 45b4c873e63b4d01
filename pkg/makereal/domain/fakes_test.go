package domain_test

import (
	"context"

	"kgeyst.com/makereal/pkg/makereal/domain"
	"kgeyst.com/makereal/pkg/makereal/infrastructure/inmemory"
)

type fakeModel struct {
	complete func(ctx context.Context, request *domain.CompletionRequest) (*domain.CompletionResponse, error)
	calls    int
}

func (f *fakeModel) Name() string {
	return "fake"
}

func (f *fakeModel) Complete(ctx context.Context, request *domain.CompletionRequest) (*domain.CompletionResponse, error) {
	f.calls++
	return f.complete(ctx, request)
}

type fakeRasterizer struct {
	rasterize func(ctx context.Context, canvas domain.Canvas) (string, error)
}

func (f *fakeRasterizer) GetSelectionAsImageDataURL(ctx context.Context, canvas domain.Canvas) (string, error) {
	return f.rasterize(ctx, canvas)
}

func staticRasterizer(dataURL string) *fakeRasterizer {
	return &fakeRasterizer{
		rasterize: func(ctx context.Context, canvas domain.Canvas) (string, error) {
			return dataURL, nil
		},
	}
}

// boundlessCanvas pretends the selection became invalid right after it was checked.
type boundlessCanvas struct {
	*inmemory.Canvas
}

func (b *boundlessCanvas) GetSelectionPageBounds() *domain.Box {
	return nil
}

func mustCreate(canvas *inmemory.Canvas, shape domain.Shape) domain.ShapeID {
	if shape.ID == "" {
		shape.ID = canvas.CreateShapeID()
	}
	err := canvas.CreateShape(shape)
	if err != nil {
		panic(err)
	}
	return shape.ID
}
