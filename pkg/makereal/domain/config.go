package domain

// A list of config keys used by the core (infrastructure packages define their own keys).

const (
	// ConfigKeyModel the name of the multimodal model to ask (as known by the inference server)
	ConfigKeyModel = "ollamaModel"
	// ConfigKeyLogPath file path where to save the logs
	ConfigKeyLogPath = "logPath"
	// ConfigKeyDebug logs full requests and responses
	ConfigKeyDebug = "debug"
	// ConfigKeyUseSystemPrompt sends DefaultSystemPrompt along with every request
	ConfigKeyUseSystemPrompt = "useSystemPrompt"
	// ConfigKeySystemPromptPath a file whose contents replace DefaultSystemPrompt (implies useSystemPrompt)
	ConfigKeySystemPromptPath = "systemPromptPath"
	// ConfigKeyResponseShapeOffset the horizontal gap between the selection and the created response shape
	ConfigKeyResponseShapeOffset = "responseShapeOffset"
)

const (
	DefaultModel               = "llava"
	DefaultResponseShapeOffset = 60.0
)
