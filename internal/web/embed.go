package web

import (
	"embed"
	"io"
	"io/fs"
	"mime"
	"net/http"
	"path/filepath"
)

//go:embed all:static
var staticFS embed.FS

// StaticFS returns the embedded front-end filesystem rooted at static/.
func StaticFS() (fs.FS, error) {
	return fs.Sub(staticFS, "static")
}

// StaticHandler returns an http.Handler serving the embedded front-end.
// Unknown paths fall back to index.html so the page owns its own routing.
func StaticHandler() (http.Handler, error) {
	sub, err := StaticFS()
	if err != nil {
		return nil, err
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if path == "/" || path == "" {
			path = "index.html"
		} else {
			path = path[1:]
		}

		if serveFile(w, sub, path) {
			return
		}

		serveFile(w, sub, "index.html")
	}), nil
}

// serveFile serves a file from the filesystem and returns true if successful.
func serveFile(w http.ResponseWriter, fsys fs.FS, path string) bool {
	f, err := fsys.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil || stat.IsDir() {
		return false
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)

	_, _ = io.Copy(w, f)
	return true
}
