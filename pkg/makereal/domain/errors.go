package domain

import "github.com/pkg/errors"

var (
	ErrNothingSelected           = errors.New("first select something to make real")
	ErrNoSelectionBounds         = errors.New("no selection bounds")
	ErrHTMLNotFound              = errors.New("could not find html in response")
	ErrMultiplePreviousResponses = errors.New("you can only have one previous response selected")
)
