package templates

// TemplateData contains data for feature template rendering.
type TemplateData struct {
	// PackageName is the plugin's Go package name (e.g., "userreviews").
	PackageName string

	// PluginBase is the kebab-case plugin name without the plugin suffix
	// (e.g., "user-reviews").
	PluginBase string

	// EntityType is the exported entity struct name (e.g., "Review").
	EntityType string

	// ServiceType is the exported service struct name (e.g., "ReviewService").
	ServiceType string
}
