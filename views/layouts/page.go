package layouts

import (
	"htmxtodo/internal/constants"
)

const (
	htmxSrc        = "https://unpkg.com/htmx.org@2.0.4"
	hyperscriptSrc = "https://unpkg.com/hyperscript.org@0.9.13"
)

// Title is the document title for a page titled title.
func Title(title string) string {
	if title == "" {
		return constants.AppName
	}
	return constants.AppName + " | " + title
}
