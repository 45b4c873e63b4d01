package logging

import (
	"context"
	"fmt"
	"time"

	"kgeyst.com/makereal/pkg/common"
	"kgeyst.com/makereal/pkg/makereal/domain"
)

type completionModelDecorator struct {
	wrappedCompletionModel domain.CompletionModel
	logger                 common.Logger
}

func NewCompletionModelDecorator(wrappedCompletionModel domain.CompletionModel, logger common.Logger) domain.CompletionModel {
	return &completionModelDecorator{
		wrappedCompletionModel: wrappedCompletionModel,
		logger:                 logger,
	}
}

func (c *completionModelDecorator) Name() string {
	return c.wrappedCompletionModel.Name()
}

func (c *completionModelDecorator) Complete(ctx context.Context, request *domain.CompletionRequest) (*domain.CompletionResponse, error) {
	c.logger.Log(fmt.Sprintf("\n================\n prompt (using '%s', model '%s', %d image(s)):\n%s\n================\n", c.Name(), request.Model, len(request.Images), request.Prompt))
	t := time.Now()
	response, err := c.wrappedCompletionModel.Complete(ctx, request)
	if err != nil {
		c.logger.Log(fmt.Sprintf("\n================\n completion failed: %s\n (took %d ms)\n================\n", err.Error(), time.Since(t).Milliseconds()))
		return nil, err
	}
	c.logger.Log(fmt.Sprintf("\n================\n response:\n%s\n (took %d ms)\n================\n", response.Response, time.Since(t).Milliseconds()))
	return response, nil
}
