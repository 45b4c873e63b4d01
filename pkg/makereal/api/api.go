package api

import (
	"context"

	"github.com/pkg/errors"

	"kgeyst.com/makereal/pkg/common"
	"kgeyst.com/makereal/pkg/makereal/domain"
	"kgeyst.com/makereal/pkg/makereal/infrastructure/logging"
	"kgeyst.com/makereal/pkg/makereal/infrastructure/ollama"
	"kgeyst.com/makereal/pkg/makereal/infrastructure/raster"
	"kgeyst.com/makereal/pkg/makereal/infrastructure/web"
)

type api struct {
	canvas          domain.Canvas
	makeRealService *domain.MakeRealService
	pagePreview     *web.PagePreview
}

// See domain/config.go and the infrastructure packages.
const (
	ConfigKeyLogPath        = domain.ConfigKeyLogPath
	ConfigKeyModel          = domain.ConfigKeyModel
	ConfigKeyDebug          = domain.ConfigKeyDebug
	ConfigKeyOllamaEndpoint = ollama.ConfigKeyEndpoint
	ConfigKeyOllamaTimeout  = ollama.ConfigKeyTimeout
)

var ErrNotAResponse = errors.New("not a generated page")

type Preview = web.Preview

// API is the entrypoint. It shouldn't contain any logic of its own; it glues all the components together around
// the given canvas. It can be used from a console, a CLI or a server which owns a canvas.
type API interface {
	// MakeReal turns the current selection into an HTML page placed in a new response shape next to the selection.
	// Returns the ID of the new shape.
	MakeReal(ctx context.Context) (domain.ShapeID, error)
	// PreviousResponse returns the HTML of the single selected response shape, if any.
	PreviousResponse() (string, bool, error)
	// Preview summarizes the page held by the given response shape.
	Preview(id domain.ShapeID) (*Preview, error)
}

// NewAPI logs to the file specified by ConfigKeyLogPath.
func NewAPI(config *common.Config, canvas domain.Canvas) (API, error) {
	logger := common.NewFileLogger(config.GetStringOrDefault(ConfigKeyLogPath, "log.txt"))
	return NewAPIWithLogger(config, canvas, logger)
}

func NewAPIWithLogger(config *common.Config, canvas domain.Canvas, logger common.Logger) (API, error) {
	systemPrompt, err := domain.SystemPromptFromConfig(config)
	if err != nil {
		return nil, err
	}
	model := logging.NewCompletionModelDecorator(ollama.NewCompletionModel(config, logger), logger)
	makeRealService := domain.NewMakeRealService(
		canvas,
		raster.NewRasterizer(config),
		model,
		systemPrompt,
		config,
		logger,
	)
	return &api{
		canvas:          canvas,
		makeRealService: makeRealService,
		pagePreview:     web.NewPagePreview(),
	}, nil
}

func (a *api) MakeReal(ctx context.Context) (domain.ShapeID, error) {
	return a.makeRealService.MakeReal(ctx)
}

func (a *api) PreviousResponse() (string, bool, error) {
	return domain.GetContentOfPreviousResponse(a.canvas)
}

func (a *api) Preview(id domain.ShapeID) (*Preview, error) {
	shape := a.canvas.GetShape(id)
	if shape == nil {
		return nil, errors.Errorf("shape %s not found", id)
	}
	if shape.Kind != domain.ShapeKindResponse || shape.HTML == "" {
		return nil, errors.Wrapf(ErrNotAResponse, "shape %s", id)
	}
	return a.pagePreview.Preview(shape.HTML)
}
