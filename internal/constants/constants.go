package constants

const (
	EnvDevelopment   = "development"
	EnvProduction    = "production"
	EnvTest          = "test"
	LayoutContextKey = "view.layout"
	AppName          = "Htmx Todo"
)
