package domain

import (
	"github.com/pkg/errors"

	"kgeyst.com/makereal/pkg/common"
)

// DefaultSystemPrompt tells the model what we expect from it. llava tends to ignore long system prompts, so it is
// only sent when ConfigKeyUseSystemPrompt is set.
const DefaultSystemPrompt = `You are a web developer who turns low-fidelity wireframes into working website prototypes.
You receive a picture of the wireframes and reply with a single HTML file which implements them using HTML, CSS and JavaScript.
Style the page with Tailwind. Put extra CSS into a style tag and JavaScript into a script tag.
Import dependencies from unpkg or skypack and fonts from Google Fonts.
Load images from Unsplash or use solid colored rectangles instead.

Wireframes may contain flow charts, diagrams, labels, arrows, sticky notes and other annotations. Decide for yourself
what belongs to the user interface and what is just a note about it. Screenshots hint at colors, fonts and layout.
Fill in the implicit business logic the wireframes suggest.

A white rectangle in the wireframes is the previous design. If its HTML is provided, iterate on it using the notes.

Handwriting can be hard to read, so all text found in the wireframes is also given to you as a list of lines.

Reply ONLY with the contents of the HTML file, starting with <!DOCTYPE html>.`

// SystemPromptFromConfig returns the system prompt to send, or an empty string if none should be sent.
func SystemPromptFromConfig(config *common.Config) (string, error) {
	path := config.GetString(ConfigKeySystemPromptPath)
	if path != "" {
		text, err := common.ReadAllText(path)
		if err != nil {
			return "", errors.Wrap(err, "failed to read the system prompt")
		}
		return text, nil
	}
	if config.GetBoolOrDefault(ConfigKeyUseSystemPrompt, false) {
		return DefaultSystemPrompt, nil
	}
	return "", nil
}
