// Package web embeds the single-page chat UI.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

// Title is the page title shown in the browser tab and header.
const Title = "AUB Compass - Tutoring & Course Advisor"

//go:embed static
var staticFS embed.FS

// Assets returns the embedded UI files rooted at static/.
func Assets() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("web: failed to create sub filesystem: " + err.Error())
	}
	return sub
}

// Handler serves the UI. Unknown paths fall back to index.html.
func Handler() http.Handler {
	assets := Assets()
	fileServer := http.FileServer(http.FS(assets))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if len(path) > 0 && path[0] == '/' {
			path = path[1:]
		}
		if path != "" {
			if f, err := assets.Open(path); err == nil {
				_ = f.Close()
				fileServer.ServeHTTP(w, r)
				return
			}
		}

		r2 := r.Clone(r.Context())
		r2.URL.Path = "/"
		fileServer.ServeHTTP(w, r2)
	})
}
