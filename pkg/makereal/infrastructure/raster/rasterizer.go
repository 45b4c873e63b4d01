// Package raster draws a simplified picture of the selection: good enough for a vision model to see the layout.
package raster

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"strings"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"

	"kgeyst.com/makereal/pkg/common"
	"kgeyst.com/makereal/pkg/makereal/domain"
)

const (
	// ConfigKeyMaxSize the longest side of the produced image, in pixels; larger pictures are scaled down
	ConfigKeyMaxSize = "rasterMaxSize"
	// ConfigKeyPadding white space around the selection, in pixels
	ConfigKeyPadding = "rasterPadding"
)

const (
	dataURLPrefix  = "data:image/png;base64,"
	defaultMaxSize = 1024
)

var ErrEmptySelection = errors.New("nothing to rasterize")

var (
	colorOutline  = color.RGBA{R: 0x1d, G: 0x1d, B: 0x1d, A: 0xff}
	colorText     = color.RGBA{R: 0x9e, G: 0x9e, B: 0x9e, A: 0xff}
	colorNote     = color.RGBA{R: 0xfe, G: 0xe5, B: 0x8a, A: 0xff}
	colorFrame    = color.RGBA{R: 0x70, G: 0x70, B: 0x70, A: 0xff}
	colorResponse = color.RGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 0xff}
)

type rasterizer struct {
	maxSize int
	padding int
}

func NewRasterizer(config *common.Config) domain.Rasterizer {
	maxSize := config.GetIntOrDefault(ConfigKeyMaxSize, defaultMaxSize)
	if maxSize < 1 {
		maxSize = defaultMaxSize
	}
	return &rasterizer{
		maxSize: maxSize,
		padding: max(config.GetIntOrDefault(ConfigKeyPadding, 16), 0),
	}
}

func (r *rasterizer) GetSelectionAsImageDataURL(ctx context.Context, canvas domain.Canvas) (string, error) {
	bounds := canvas.GetSelectionPageBounds()
	if bounds == nil {
		return "", ErrEmptySelection
	}
	padding := float64(r.padding)
	pageWidth := bounds.W + 2*padding
	pageHeight := bounds.H + 2*padding
	// The image is never allocated larger than twice maxSize, however far apart the selected shapes are.
	// Downscaled pictures are drawn at double resolution and then thumbnailed for smoother lines.
	scale := min(1, float64(r.maxSize)/max(pageWidth, pageHeight, 1))
	if scale < 1 {
		scale = min(1, 2*scale)
	}
	width := min(max(int(math.Ceil(pageWidth*scale)), 1), 2*r.maxSize)
	height := min(max(int(math.Ceil(pageHeight*scale)), 1), 2*r.maxSize)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	for _, id := range canvas.GetShapeAndDescendantIDs(canvas.GetSelectedShapeIDs()) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		shape := canvas.GetShape(id)
		if shape == nil {
			continue
		}
		rect := image.Rect(
			toPixel(shape.X-bounds.X+padding, scale),
			toPixel(shape.Y-bounds.Y+padding, scale),
			toPixel(shape.X-bounds.X+shape.W+padding, scale),
			toPixel(shape.Y-bounds.Y+shape.H+padding, scale),
		)
		drawShape(img, shape, rect, scale)
	}
	var result image.Image = img
	if width > r.maxSize || height > r.maxSize {
		result = resize.Thumbnail(uint(r.maxSize), uint(r.maxSize), img, resize.Bilinear)
	}
	var buf bytes.Buffer
	err := png.Encode(&buf, result)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode the selection")
	}
	return dataURLPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func toPixel(coordinate, scale float64) int {
	return int(math.Round(coordinate * scale))
}

func drawShape(img *image.RGBA, shape *domain.Shape, rect image.Rectangle, scale float64) {
	// Descendants may lie far outside the selection bounds: clip so that lines stay short.
	limit := img.Bounds().Inset(-2)
	if rect.Max.X < limit.Min.X || rect.Min.X > limit.Max.X || rect.Max.Y < limit.Min.Y || rect.Min.Y > limit.Max.Y {
		return
	}
	rect = image.Rectangle{Min: clampPoint(rect.Min, limit), Max: clampPoint(rect.Max, limit)}
	switch shape.Kind {
	case domain.ShapeKindNote:
		fillRect(img, rect, colorNote)
		drawTextLines(img, rect, shape.Text, scale)
	case domain.ShapeKindText:
		drawTextLines(img, rect, shape.Text, scale)
	case domain.ShapeKindGeo:
		strokeRect(img, rect, colorOutline)
		drawTextLines(img, rect, shape.Text, scale)
	case domain.ShapeKindArrow:
		drawLine(img, rect.Min, rect.Max, colorOutline)
	case domain.ShapeKindFrame:
		strokeRect(img, rect, colorFrame)
	case domain.ShapeKindResponse:
		// Previous designs are shown as white rectangles (see DefaultSystemPrompt).
		fillRect(img, rect, color.White)
		strokeRect(img, rect, colorResponse)
	case domain.ShapeKindGroup:
		// Groups are invisible, their children are drawn on their own.
	default:
		strokeRect(img, rect, colorOutline)
	}
}

func fillRect(img *image.RGBA, rect image.Rectangle, c color.Color) {
	draw.Draw(img, rect.Intersect(img.Bounds()), &image.Uniform{C: c}, image.Point{}, draw.Src)
}

func strokeRect(img *image.RGBA, rect image.Rectangle, c color.Color) {
	topRight := image.Pt(rect.Max.X, rect.Min.Y)
	bottomLeft := image.Pt(rect.Min.X, rect.Max.Y)
	drawLine(img, rect.Min, topRight, c)
	drawLine(img, topRight, rect.Max, c)
	drawLine(img, rect.Max, bottomLeft, c)
	drawLine(img, bottomLeft, rect.Min, c)
}

// We can't render fonts without a font library, so every line of text becomes a gray bar proportional to its
// length. The model gets the actual text in the prompt anyway.
func drawTextLines(img *image.RGBA, rect image.Rectangle, text string, scale float64) {
	lineHeight := max(int(12*scale), 2)
	charWidth := max(int(6*scale), 1)
	margin := int(4 * scale)
	if text == "" {
		return
	}
	y := rect.Min.Y + margin
	for _, line := range strings.Split(text, "\n") {
		if y+lineHeight/2 > rect.Max.Y && rect.Dy() > 0 {
			break
		}
		barWidth := min(len(line)*charWidth, max(rect.Dx()-2*margin, len(line)*charWidth/2))
		fillRect(img, image.Rect(rect.Min.X+margin, y, rect.Min.X+margin+barWidth, y+lineHeight/2), colorText)
		y += lineHeight
	}
}

// Bresenham.
func drawLine(img *image.RGBA, from, to image.Point, c color.Color) {
	dx := abs(to.X - from.X)
	dy := -abs(to.Y - from.Y)
	sx, sy := 1, 1
	if from.X > to.X {
		sx = -1
	}
	if from.Y > to.Y {
		sy = -1
	}
	e := dx + dy
	x, y := from.X, from.Y
	for {
		img.Set(x, y, c)
		if x == to.X && y == to.Y {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

func clampPoint(p image.Point, limit image.Rectangle) image.Point {
	return image.Pt(min(max(p.X, limit.Min.X), limit.Max.X), min(max(p.Y, limit.Min.Y), limit.Max.Y))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
