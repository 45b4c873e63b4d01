package domain

import (
	"context"
	"fmt"

	"kgeyst.com/makereal/pkg/common"
)

// MakeRealService turns the current selection into a working HTML page: it shows an empty response shape next to
// the selection, asks the model and fills the shape with the generated page. If anything goes wrong, the response
// shape is removed and the error is returned as is.
type MakeRealService struct {
	canvas              Canvas
	rasterizer          Rasterizer
	model               CompletionModel
	logger              common.Logger
	modelName           string
	systemPrompt        string
	responseShapeOffset float64
	debug               bool
}

func NewMakeRealService(
	canvas Canvas,
	rasterizer Rasterizer,
	model CompletionModel,
	systemPrompt string,
	config *common.Config,
	logger common.Logger,
) *MakeRealService {
	return &MakeRealService{
		canvas:              canvas,
		rasterizer:          rasterizer,
		model:               model,
		logger:              logger,
		modelName:           config.GetStringOrDefault(ConfigKeyModel, DefaultModel),
		systemPrompt:        systemPrompt,
		responseShapeOffset: config.GetFloatOrDefault(ConfigKeyResponseShapeOffset, DefaultResponseShapeOffset),
		debug:               config.GetBoolOrDefault(ConfigKeyDebug, false),
	}
}

// MakeReal returns the ID of the populated response shape.
// Concurrent calls are not excluded from each other: each creates its own response shape.
func (s *MakeRealService) MakeReal(ctx context.Context) (ShapeID, error) {
	// We can't make anything real if there's nothing selected.
	if len(s.canvas.GetSelectedShapes()) == 0 {
		return "", ErrNothingSelected
	}
	responseShapeID, err := s.makeEmptyResponseShape()
	if err != nil {
		return "", err
	}
	err = s.populateResponseShape(ctx, responseShapeID)
	if err != nil {
		// The empty response shape is useless now.
		deleteErr := s.canvas.DeleteShape(responseShapeID)
		if deleteErr != nil {
			s.logger.Log(fmt.Sprintf("failed to delete response shape %s: %s", responseShapeID, deleteErr.Error()))
		}
		s.logger.Log(fmt.Sprintf("make real failed: %s", err.Error()))
		return "", err
	}
	return responseShapeID, nil
}

func (s *MakeRealService) makeEmptyResponseShape() (ShapeID, error) {
	selectionBounds := s.canvas.GetSelectionPageBounds()
	if selectionBounds == nil {
		return "", ErrNoSelectionBounds
	}
	id := s.canvas.CreateShapeID()
	err := s.canvas.CreateShape(Shape{
		ID:   id,
		Kind: ShapeKindResponse,
		X:    selectionBounds.MaxX() + s.responseShapeOffset,
		Y:    selectionBounds.Y,
	})
	if err != nil {
		return "", err
	}
	s.logger.Log(fmt.Sprintf("created response shape %s", id))
	return id, nil
}

func (s *MakeRealService) populateResponseShape(ctx context.Context, responseShapeID ShapeID) error {
	prompt := BuildPrompt(s.canvas)
	image, err := s.rasterizer.GetSelectionAsImageDataURL(ctx, s.canvas)
	if err != nil {
		return err
	}
	request := &CompletionRequest{
		Model:  s.modelName,
		Prompt: prompt,
		System: s.systemPrompt,
		Images: []string{image},
	}
	if s.debug {
		s.logger.Log(fmt.Sprintf("request: model=%s prompt=%q system=%q image=%s",
			request.Model, request.Prompt, common.Truncate(request.System, 80), common.Truncate(image, 64)))
	}
	response, err := s.model.Complete(ctx, request)
	if err != nil {
		return err
	}
	if s.debug {
		s.logger.Log(fmt.Sprintf("response: model=%s done=%t eval_count=%d response=%q",
			response.Model, response.Done, response.EvalCount, response.Response))
	}
	html, err := ExtractHTML(response.Response)
	if err != nil {
		return err
	}
	return s.canvas.UpdateShape(ShapeUpdate{
		ID:   responseShapeID,
		HTML: &html,
	})
}
