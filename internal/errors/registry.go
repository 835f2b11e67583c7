package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Configuration (E100-E199)

	"E101": {
		Category:   CategoryConfig,
		Message:    "Invalid configuration file",
		Detail:     "daisy.yaml could not be parsed as YAML.",
		Suggestion: "Check indentation and that every key is followed by a colon.",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A value in daisy.yaml failed validation.",
	},
	"E103": {
		Category:   CategoryConfig,
		Message:    "Project root not found",
		Detail:     "No daisy.yaml was found in this directory or any parent.",
		Suggestion: "Run the command from your project directory or pass --config.",
	},
	"E104": {
		Category: CategoryConfig,
		Message:  "Failed to write configuration",
	},
	"E105": {
		Category:   CategoryConfig,
		Message:    "Unknown theme",
		Detail:     "The theme is not one of the built-in DaisyUI themes.",
		Suggestion: "Run 'daisy themes' to list valid names.",
	},

	// Catalog (E200-E299)

	"E201": {
		Category: CategoryCatalog,
		Message:  "Invalid catalog manifest",
		Detail:   "The embedded component catalog failed to parse or validate.",
	},
	"E202": {
		Category:   CategoryCatalog,
		Message:    "Component not found",
		Suggestion: "Run 'daisy list' to see available components.",
	},
	"E203": {
		Category:   CategoryCatalog,
		Message:    "Demo not found",
		Suggestion: "Run 'daisy show <component>' to render every demo of a component.",
	},
	"E204": {
		Category: CategoryCatalog,
		Message:  "Catalog and demo functions disagree",
		Detail:   "Every catalog demo needs a demo function and every demo function needs a catalog entry.",
	},

	// Render (E300-E399)

	"E301": {
		Category: CategoryRender,
		Message:  "Render failed",
	},
	"E302": {
		Category: CategoryRender,
		Message:  "Failed to write output file",
	},
	"E303": {
		Category: CategoryRender,
		Message:  "Gallery build failed",
		Detail:   "One or more pages could not be rendered or written.",
	},

	// Preview (E400-E499)

	"E401": {
		Category:   CategoryPreview,
		Message:    "Preview server failed",
		Suggestion: "Is another process listening on the same port? Try --addr.",
	},
	"E402": {
		Category:   CategoryPreview,
		Message:    "Nothing to watch",
		Suggestion: "List files or directories under preview.watch in daisy.yaml.",
	},
	"E403": {
		Category: CategoryPreview,
		Message:  "Live reload connection failed",
	},

	// Publish (E500-E599)

	"E501": {
		Category:   CategoryPublish,
		Message:    "No bucket configured",
		Suggestion: "Set publish.bucket in daisy.yaml or pass --bucket.",
	},
	"E502": {
		Category: CategoryPublish,
		Message:  "Upload failed",
	},
	"E503": {
		Category:   CategoryPublish,
		Message:    "Nothing to publish",
		Detail:     "The gallery directory is missing or empty.",
		Suggestion: "Run 'daisy build' first.",
	},
	"E504": {
		Category:   CategoryPublish,
		Message:    "Failed to load AWS configuration",
		Suggestion: "Check AWS_PROFILE, AWS_REGION and your credentials.",
	},
}

// GetAllCodes returns all registered error codes in sorted order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
