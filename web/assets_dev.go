//go:build dev

package web

import "net/http"

const Dev = true

// Unbundled sources are served straight from disk so edits show up without a rebuild.
// The reload script is served by `templ generate --watch --proxy`.
var (
	Stylesheets = []string{"/static/src/style.css"}
	Scripts     = []string{"/static/src/bundle.js", "/_templ/reload/script.js"}
)

func Static() http.FileSystem {
	return http.Dir("web/static")
}
