package logging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kgeyst.com/makereal/pkg/makereal/domain"
)

type recordingLogger struct {
	messages []string
}

func (r *recordingLogger) Log(message string) {
	r.messages = append(r.messages, message)
}

type stubModel struct {
	response *domain.CompletionResponse
	err      error
}

func (s *stubModel) Name() string {
	return "stub"
}

func (s *stubModel) Complete(ctx context.Context, request *domain.CompletionRequest) (*domain.CompletionResponse, error) {
	return s.response, s.err
}

func TestDecoratorLogsPromptAndResponse(t *testing.T) {
	logger := &recordingLogger{}
	model := NewCompletionModelDecorator(&stubModel{response: &domain.CompletionResponse{Response: "<!DOCTYPE html>"}}, logger)

	response, err := model.Complete(context.Background(), &domain.CompletionRequest{Model: "llava", Prompt: "make it real", Images: []string{"AAAA"}})
	require.NoError(t, err)

	assert.Equal(t, "stub", model.Name())
	assert.Equal(t, "<!DOCTYPE html>", response.Response)
	require.Len(t, logger.messages, 2)
	assert.Contains(t, logger.messages[0], "make it real")
	assert.Contains(t, logger.messages[0], "1 image(s)")
	assert.Contains(t, logger.messages[1], "<!DOCTYPE html>")
}

func TestDecoratorPassesErrorsThrough(t *testing.T) {
	logger := &recordingLogger{}
	errFetch := errors.New("fetch failed")
	model := NewCompletionModelDecorator(&stubModel{err: errFetch}, logger)

	response, err := model.Complete(context.Background(), &domain.CompletionRequest{})

	assert.Nil(t, response)
	assert.Equal(t, errFetch, err)
	require.Len(t, logger.messages, 2)
	assert.Contains(t, logger.messages[1], "fetch failed")
}
