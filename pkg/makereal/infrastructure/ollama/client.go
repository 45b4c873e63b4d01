// Package ollama talks to a local Ollama server over its HTTP API.
package ollama

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"kgeyst.com/makereal/pkg/common"
	"kgeyst.com/makereal/pkg/makereal/domain"
)

const (
	// ConfigKeyEndpoint the base URL of the Ollama server
	ConfigKeyEndpoint = "ollamaEndpoint"
	// ConfigKeyTimeout when to give up waiting for the whole response, in milliseconds. No timeout by default:
	// generating a page with a local model can take minutes.
	ConfigKeyTimeout = "ollamaTimeout"
)

const (
	DefaultEndpoint  = "http://localhost:11434"
	EndpointGenerate = "/api/generate"
)

// ErrFetchFailed is returned for any failure to get a response. The cause is only logged.
var ErrFetchFailed = errors.New("sorry, there was an error fetching from Ollama")

type client struct {
	endpoint   string
	httpClient *http.Client
	logger     common.Logger
}

// NewCompletionModel creates a client for the /api/generate endpoint of Ollama.
func NewCompletionModel(config *common.Config, logger common.Logger) domain.CompletionModel {
	return newClient(
		config.GetStringOrDefault(ConfigKeyEndpoint, DefaultEndpoint),
		config.GetDurationOrDefault(ConfigKeyTimeout, 0),
		logger,
	)
}

func newClient(endpoint string, timeout time.Duration, logger common.Logger) *client {
	return &client{
		endpoint:   strings.TrimSuffix(endpoint, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (c *client) Name() string {
	return "ollama@" + c.endpoint
}

func (c *client) Complete(ctx context.Context, request *domain.CompletionRequest) (*domain.CompletionResponse, error) {
	var response domain.CompletionResponse
	err := common.PostJSON(ctx, c.httpClient, c.endpoint+EndpointGenerate, normalizeRequest(request), &response)
	if err != nil {
		c.logger.Log(fmt.Sprintf("request to %s failed: %s", c.endpoint, err.Error()))
		return nil, ErrFetchFailed
	}
	return &response, nil
}

// normalizeRequest is applied to every outgoing request: we never stream, and Ollama expects bare base64 images
// rather than data URLs. The caller's request is left untouched.
func normalizeRequest(request *domain.CompletionRequest) *domain.CompletionRequest {
	normalized := *request
	normalized.Stream = false
	if len(request.Images) > 0 {
		normalized.Images = make([]string, 0, len(request.Images))
		for _, image := range request.Images {
			if common.IsImageDataURL(image) {
				image = common.StripDataURLPrefix(image)
			}
			normalized.Images = append(normalized.Images, image)
		}
	}
	return &normalized
}
