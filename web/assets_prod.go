//go:build !dev

package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static/style.css static/bundle.js
var embedded embed.FS

// Dev reports whether this binary was built with the dev tag.
const Dev = false

// Stylesheets and Scripts are the asset URLs the page shell links to.
var (
	Stylesheets = []string{"/static/style.css"}
	Scripts     = []string{"/static/bundle.js"}
)

// Static returns the asset root mounted at /static.
func Static() http.FileSystem {
	sub, err := fs.Sub(embedded, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
