package domain

import "context"

// Rasterizer renders the current selection of the canvas (with descendants) into a single image.
type Rasterizer interface {
	// GetSelectionAsImageDataURL returns the image as a base64-encoded data URL ("data:image/png;base64,...").
	GetSelectionAsImageDataURL(ctx context.Context, canvas Canvas) (string, error)
}
