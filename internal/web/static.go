package web

import (
	"embed"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

//go:embed static
var staticFiles embed.FS

var frontendFS = func() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return sub
}()

// handleFrontend serves the bundled frontend. Real files are served
// as-is; any other path gets the entry document so client-side routing
// keeps working after a hard reload.
func (s *Server) handleFrontend(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(path.Clean(r.URL.Path), "/")
	if name != "" && name != "." {
		if info, err := fs.Stat(frontendFS, name); err == nil && !info.IsDir() {
			http.ServeFileFS(w, r, frontendFS, name)
			return
		}
	}
	http.ServeFileFS(w, r, frontendFS, "index.html")
}
